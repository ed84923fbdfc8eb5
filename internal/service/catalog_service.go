package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mentorverse/mentorverse-api/internal/cache"
	"github.com/mentorverse/mentorverse-api/internal/domain"
	"github.com/mentorverse/mentorverse-api/internal/events"
	"github.com/mentorverse/mentorverse-api/internal/repository"
	"github.com/mentorverse/mentorverse-api/internal/storage"
	apperrors "github.com/mentorverse/mentorverse-api/pkg/util"
)

const (
	msgAlreadyEnrolled   = "Already enrolled in this course"
	msgAlreadyRegistered = "Already registered for this webinar"
)

// CatalogService covers the public catalog and the student actions on it.
type CatalogService struct {
	courses     repository.CourseRepository
	internships repository.InternshipRepository
	webinars    repository.WebinarRepository
	content     repository.ContentRepository
	cache       *cache.Catalog
	resumes     storage.ResumeStore
	events      publisher
}

// CatalogDependencies bundles collaborators for the catalog service.
type CatalogDependencies struct {
	CourseRepo     repository.CourseRepository
	InternshipRepo repository.InternshipRepository
	WebinarRepo    repository.WebinarRepository
	ContentRepo    repository.ContentRepository
	Cache          *cache.Catalog
	Resumes        storage.ResumeStore
	Dispatcher     events.Dispatcher
}

func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		courses:     deps.CourseRepo,
		internships: deps.InternshipRepo,
		webinars:    deps.WebinarRepo,
		content:     deps.ContentRepo,
		cache:       deps.Cache,
		resumes:     deps.Resumes,
		events:      publisher{dispatcher: deps.Dispatcher},
	}
}

func (s *CatalogService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return cache.Fetch(ctx, s.cache, cache.KeyCourses, s.courses.ListActive)
}

func (s *CatalogService) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Course", nil)
	}
	return course, err
}

// Enroll adds the caller to a course. Enrolling twice is a client error.
func (s *CatalogService) Enroll(ctx context.Context, who domain.Identity, courseID int64) (*domain.Enrollment, error) {
	enrollment, err := s.courses.Enroll(ctx, who.UserID, courseID)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, apperrors.NewBadRequest(msgAlreadyEnrolled)
	case errors.Is(err, repository.ErrReferenceNotFound):
		return nil, apperrors.NewNotFound("Course", nil)
	case err != nil:
		return nil, err
	}

	s.events.publish(ctx, events.Event{
		Type:   events.EventCourseEnrolled,
		UserID: who.UserID,
		Email:  who.Email,
		Payload: events.CourseEnrolledPayload{
			EnrollmentID: enrollment.ID,
			CourseID:     courseID,
		},
	})
	return enrollment, nil
}

func (s *CatalogService) ListInternships(ctx context.Context) ([]domain.Internship, error) {
	return cache.Fetch(ctx, s.cache, cache.KeyInternships, s.internships.ListActive)
}

// ResumeUpload is an optional file attached to an application.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ApplicationInput is the internship application form.
type ApplicationInput struct {
	domain.ApplicantDetails
	WhyInternship *string
	Resume        *ResumeUpload
}

// Apply stores the resume, if any, and records the application.
func (s *CatalogService) Apply(ctx context.Context, who domain.Identity, internshipID int64, in ApplicationInput) (*domain.InternshipApplication, error) {
	if _, err := s.internships.GetByID(ctx, internshipID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Internship", nil)
		}
		return nil, err
	}

	app := &domain.InternshipApplication{
		UserID:           who.UserID,
		InternshipID:     internshipID,
		ApplicantDetails: withDefaults(in.ApplicantDetails, who),
		WhyInternship:    in.WhyInternship,
	}
	if app.FullName == "" {
		return nil, apperrors.NewValidationError(msgFieldsRequired, map[string]any{"field": "full_name"})
	}

	if in.Resume != nil && s.resumes != nil {
		stored, err := s.resumes.Save(ctx, in.Resume.Filename, in.Resume.ContentType, in.Resume.Body)
		if err != nil {
			return nil, fmt.Errorf("store resume: %w", err)
		}
		app.ResumePath = &stored
	}

	if err := s.internships.CreateApplication(ctx, app); err != nil {
		if app.ResumePath != nil {
			// Best effort; the insert error is what the caller sees.
			_ = s.resumes.Delete(context.WithoutCancel(ctx), *app.ResumePath)
		}
		if errors.Is(err, repository.ErrReferenceNotFound) {
			return nil, apperrors.NewNotFound("Internship", nil)
		}
		return nil, err
	}

	s.events.publish(ctx, events.Event{
		Type:   events.EventApplicationSubmitted,
		UserID: who.UserID,
		Email:  app.Email,
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID: app.ID,
			InternshipID:  internshipID,
			ResumeStored:  app.ResumePath != nil,
			FullName:      app.FullName,
		},
	})
	return app, nil
}

func (s *CatalogService) ListWebinars(ctx context.Context) ([]domain.Webinar, error) {
	return cache.Fetch(ctx, s.cache, cache.KeyWebinars, s.webinars.ListUpcoming)
}

// RegisterWebinar reserves a seat for the caller.
func (s *CatalogService) RegisterWebinar(ctx context.Context, who domain.Identity, webinarID int64, details domain.ApplicantDetails) (*domain.WebinarRegistration, error) {
	webinar, err := s.webinars.GetByID(ctx, webinarID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Webinar", nil)
	}
	if err != nil {
		return nil, err
	}

	reg := &domain.WebinarRegistration{
		UserID:           who.UserID,
		WebinarID:        webinarID,
		ApplicantDetails: withDefaults(details, who),
	}
	if reg.FullName == "" {
		return nil, apperrors.NewValidationError(msgFieldsRequired, map[string]any{"field": "full_name"})
	}

	if err := s.webinars.Register(ctx, reg); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperrors.NewBadRequest(msgAlreadyRegistered)
		case errors.Is(err, repository.ErrReferenceNotFound):
			return nil, apperrors.NewNotFound("Webinar", nil)
		}
		return nil, err
	}
	reg.Title = webinar.Title
	reg.WebinarDate = &webinar.WebinarDate

	s.events.publish(ctx, events.Event{
		Type:   events.EventWebinarRegistered,
		UserID: who.UserID,
		Email:  reg.Email,
		Payload: events.WebinarRegisteredPayload{
			RegistrationID: reg.ID,
			WebinarID:      webinarID,
			Title:          webinar.Title,
			WebinarDate:    webinar.WebinarDate,
		},
	})
	return reg, nil
}

func (s *CatalogService) ListLearning(ctx context.Context, category string) ([]domain.LearningContent, error) {
	return s.content.ListLearning(ctx, strings.TrimSpace(category))
}

// SubmitContact stores a message from the public contact form.
func (s *CatalogService) SubmitContact(ctx context.Context, msg *domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	if msg.Name == "" || msg.Email == "" || strings.TrimSpace(msg.Message) == "" {
		return apperrors.NewValidationError(msgFieldsRequired, nil)
	}
	return s.content.CreateContactMessage(ctx, msg)
}

// withDefaults fills the contact email from the token when the form omits it.
func withDefaults(d domain.ApplicantDetails, who domain.Identity) domain.ApplicantDetails {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Email = strings.TrimSpace(d.Email)
	if d.Email == "" {
		d.Email = who.Email
	}
	return d
}
