package repository

import (
	"context"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

// CertificateRepository manages issued certificates.
type CertificateRepository interface {
	Create(ctx context.Context, cert *domain.Certificate) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Certificate, error)
	GetByCode(ctx context.Context, code string) (*domain.Certificate, error)
}

type certificateRepository struct {
	db DB
}

// NewCertificateRepository constructs repository.
func NewCertificateRepository(db DB) CertificateRepository {
	return &certificateRepository{db: db}
}

// Create stores a certificate. A code collision returns ErrDuplicate and an
// unknown user returns ErrReferenceNotFound.
func (r *certificateRepository) Create(ctx context.Context, cert *domain.Certificate) error {
	const query = `
        INSERT INTO certificates (user_id, certificate_code, title, certificate_type, reference_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING certificate_id, issue_date`

	err := r.db.QueryRow(ctx, query,
		cert.UserID,
		cert.Code,
		cert.Title,
		cert.CertificateType,
		cert.ReferenceID,
	).Scan(&cert.ID, &cert.IssueDate)
	return translate(err)
}

func (r *certificateRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Certificate, error) {
	const query = `
        SELECT certificate_id, user_id, certificate_code, title, certificate_type, reference_id, issue_date
        FROM certificates WHERE user_id = $1 ORDER BY issue_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Certificate, 0)
	for rows.Next() {
		var c domain.Certificate
		if err := rows.Scan(&c.ID, &c.UserID, &c.Code, &c.Title, &c.CertificateType, &c.ReferenceID, &c.IssueDate); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByCode returns the certificate with its holder's name, or pgx.ErrNoRows.
func (r *certificateRepository) GetByCode(ctx context.Context, code string) (*domain.Certificate, error) {
	const query = `
        SELECT c.certificate_id, c.user_id, c.certificate_code, c.title, c.certificate_type, c.reference_id, c.issue_date, u.full_name
        FROM certificates c
        JOIN users u ON c.user_id = u.user_id
        WHERE c.certificate_code = $1`

	var c domain.Certificate
	if err := r.db.QueryRow(ctx, query, code).Scan(
		&c.ID,
		&c.UserID,
		&c.Code,
		&c.Title,
		&c.CertificateType,
		&c.ReferenceID,
		&c.IssueDate,
		&c.HolderName,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
