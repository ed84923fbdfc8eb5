package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/mentorverse/mentorverse-api/internal/domain"
	"github.com/mentorverse/mentorverse-api/internal/repository"
	apperrors "github.com/mentorverse/mentorverse-api/pkg/util"
)

const recentApplications = 5

// ProfileService serves the signed-in user's own data.
type ProfileService struct {
	users        repository.UserRepository
	courses      repository.CourseRepository
	internships  repository.InternshipRepository
	webinars     repository.WebinarRepository
	certificates repository.CertificateRepository
}

// ProfileDependencies bundles repositories for the profile service.
type ProfileDependencies struct {
	UserRepo        repository.UserRepository
	CourseRepo      repository.CourseRepository
	InternshipRepo  repository.InternshipRepository
	WebinarRepo     repository.WebinarRepository
	CertificateRepo repository.CertificateRepository
}

func NewProfileService(deps ProfileDependencies) *ProfileService {
	return &ProfileService{
		users:        deps.UserRepo,
		courses:      deps.CourseRepo,
		internships:  deps.InternshipRepo,
		webinars:     deps.WebinarRepo,
		certificates: deps.CertificateRepo,
	}
}

// Profile returns the user row without the password hash.
func (s *ProfileService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("User", nil)
	}
	return user, err
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) error {
	update.FullName = strings.TrimSpace(update.FullName)
	if update.FullName == "" {
		return apperrors.NewValidationError("full_name is required", map[string]any{"field": "full_name"})
	}
	err := s.users.UpdateProfile(ctx, userID, update)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("User", nil)
	}
	return err
}

// Dashboard loads the four activity lists concurrently.
func (s *ProfileService) Dashboard(ctx context.Context, userID int64) (*domain.Dashboard, error) {
	var d domain.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Enrollments, err = s.courses.ListActiveEnrollments(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.Applications, err = s.internships.ListRecentApplications(gctx, userID, recentApplications)
		return err
	})
	g.Go(func() (err error) {
		d.Registrations, err = s.webinars.ListRegistrations(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.Certificates, err = s.certificates.ListByUser(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
