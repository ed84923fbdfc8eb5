package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mentorverse/mentorverse-api/internal/domain"
	"github.com/mentorverse/mentorverse-api/internal/events"
	"github.com/mentorverse/mentorverse-api/internal/repository"
	apperrors "github.com/mentorverse/mentorverse-api/pkg/util"
)

const codeAttempts = 3

// CertificateService issues and verifies certificates.
type CertificateService struct {
	certificates repository.CertificateRepository
	users        repository.UserRepository
	events       publisher
	newCode      func() string
}

func NewCertificateService(certificates repository.CertificateRepository, users repository.UserRepository, dispatcher events.Dispatcher) *CertificateService {
	return &CertificateService{
		certificates: certificates,
		users:        users,
		events:       publisher{dispatcher: dispatcher},
		newCode:      generateCertificateCode,
	}
}

// generateCertificateCode returns "MV-" followed by 12 uppercase hex digits.
func generateCertificateCode() string {
	return "MV-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func (s *CertificateService) ListForUser(ctx context.Context, userID int64) ([]domain.Certificate, error) {
	return s.certificates.ListByUser(ctx, userID)
}

// Verify looks a certificate up by its public code.
func (s *CertificateService) Verify(ctx context.Context, code string) (*domain.Certificate, error) {
	cert, err := s.certificates.GetByCode(ctx, strings.TrimSpace(code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Certificate", nil)
	}
	return cert, err
}

// IssueInput describes a certificate to grant.
type IssueInput struct {
	UserID          int64
	Title           string
	CertificateType string
	ReferenceID     *int64
}

// Issue grants a certificate with a fresh code, retrying on the rare
// code collision.
func (s *CertificateService) Issue(ctx context.Context, in IssueInput) (*domain.Certificate, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.UserID <= 0 || in.Title == "" {
		return nil, apperrors.NewValidationError(msgFieldsRequired, nil)
	}
	switch in.CertificateType {
	case domain.CertificateCourse, domain.CertificateInternship, domain.CertificateWebinar:
	default:
		return nil, apperrors.NewValidationError("invalid certificate_type", map[string]any{
			"allowed": []string{domain.CertificateCourse, domain.CertificateInternship, domain.CertificateWebinar},
		})
	}

	holder, err := s.users.GetByID(ctx, in.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("User", nil)
	}
	if err != nil {
		return nil, err
	}

	cert := &domain.Certificate{
		UserID:          in.UserID,
		Title:           in.Title,
		CertificateType: in.CertificateType,
		ReferenceID:     in.ReferenceID,
		HolderName:      holder.FullName,
	}
	for attempt := 0; ; attempt++ {
		cert.Code = s.newCode()
		err = s.certificates.Create(ctx, cert)
		if !errors.Is(err, repository.ErrDuplicate) || attempt+1 >= codeAttempts {
			break
		}
	}
	switch {
	case errors.Is(err, repository.ErrReferenceNotFound):
		return nil, apperrors.NewNotFound("User", nil)
	case errors.Is(err, repository.ErrDuplicate):
		return nil, apperrors.NewConflict("Could not allocate a certificate code", nil)
	case err != nil:
		return nil, err
	}

	s.events.publish(ctx, events.Event{
		Type:   events.EventCertificateIssued,
		UserID: holder.ID,
		Email:  holder.Email,
		Payload: events.CertificateIssuedPayload{
			CertificateID: cert.ID,
			Code:          cert.Code,
			Title:         cert.Title,
		},
	})
	return cert, nil
}
