package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mentorverse/mentorverse-api/internal/cache"
	"github.com/mentorverse/mentorverse-api/internal/domain"
	"github.com/mentorverse/mentorverse-api/internal/events"
	"github.com/mentorverse/mentorverse-api/internal/repository"
	apperrors "github.com/mentorverse/mentorverse-api/pkg/util"
)

// AdminService backs the admin panel. Callers reach it only through the
// admin authorization gate.
type AdminService struct {
	users       repository.UserRepository
	courses     repository.CourseRepository
	internships repository.InternshipRepository
	content     repository.ContentRepository
	cache       *cache.Catalog
	events      publisher
}

// AdminDependencies bundles collaborators for the admin service.
type AdminDependencies struct {
	UserRepo       repository.UserRepository
	CourseRepo     repository.CourseRepository
	InternshipRepo repository.InternshipRepository
	ContentRepo    repository.ContentRepository
	Cache          *cache.Catalog
	Dispatcher     events.Dispatcher
}

func NewAdminService(deps AdminDependencies) *AdminService {
	return &AdminService{
		users:       deps.UserRepo,
		courses:     deps.CourseRepo,
		internships: deps.InternshipRepo,
		content:     deps.ContentRepo,
		cache:       deps.Cache,
		events:      publisher{dispatcher: deps.Dispatcher},
	}
}

func (s *AdminService) Stats(ctx context.Context) (*domain.PlatformStats, error) {
	return s.content.Stats(ctx)
}

func (s *AdminService) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// CreateCourse adds a course and drops the cached course listing.
func (s *AdminService) CreateCourse(ctx context.Context, course *domain.Course) error {
	course.Title = strings.TrimSpace(course.Title)
	if course.Title == "" {
		return apperrors.NewValidationError("title is required", map[string]any{"field": "title"})
	}
	if course.Price < 0 {
		return apperrors.NewValidationError("price must not be negative", map[string]any{"field": "price"})
	}
	if course.Price == 0 {
		course.IsFree = true
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.KeyCourses)
	return nil
}

func (s *AdminService) PendingApplications(ctx context.Context) ([]domain.InternshipApplication, error) {
	return s.internships.ListPendingApplications(ctx)
}

// ReviewApplication moves an application to a new status.
func (s *AdminService) ReviewApplication(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.InternshipApplication, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{
			"allowed": []domain.ApplicationStatus{
				domain.ApplicationPending,
				domain.ApplicationShortlisted,
				domain.ApplicationAccepted,
				domain.ApplicationRejected,
			},
		})
	}

	app, err := s.internships.UpdateApplicationStatus(ctx, id, status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Application", nil)
	}
	if err != nil {
		return nil, err
	}

	s.events.publish(ctx, events.Event{
		Type:   events.EventApplicationStatusChanged,
		UserID: app.UserID,
		Email:  app.Email,
		Payload: events.ApplicationStatusChangedPayload{
			ApplicationID: app.ID,
			NewStatus:     app.Status,
		},
	})
	return app, nil
}
