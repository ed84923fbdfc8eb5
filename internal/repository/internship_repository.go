package repository

import (
	"context"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

// InternshipRepository manages internships and their applications.
type InternshipRepository interface {
	ListActive(ctx context.Context) ([]domain.Internship, error)
	GetByID(ctx context.Context, id int64) (*domain.Internship, error)
	CreateApplication(ctx context.Context, app *domain.InternshipApplication) error
	ListRecentApplications(ctx context.Context, userID int64, limit int) ([]domain.InternshipApplication, error)
	ListPendingApplications(ctx context.Context) ([]domain.InternshipApplication, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.InternshipApplication, error)
}

type internshipRepository struct {
	db DB
}

// NewInternshipRepository constructs repository.
func NewInternshipRepository(db DB) InternshipRepository {
	return &internshipRepository{db: db}
}

func (r *internshipRepository) ListActive(ctx context.Context) ([]domain.Internship, error) {
	const query = `
        SELECT internship_id, title, description, duration, stipend, location, status, created_at
        FROM internship WHERE status = 'active' ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Internship, 0)
	for rows.Next() {
		var i domain.Internship
		if err := rows.Scan(&i.ID, &i.Title, &i.Description, &i.Duration, &i.Stipend, &i.Location, &i.Status, &i.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *internshipRepository) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	const query = `
        SELECT internship_id, title, description, duration, stipend, location, status, created_at
        FROM internship WHERE internship_id=$1`

	var i domain.Internship
	if err := r.db.QueryRow(ctx, query, id).Scan(&i.ID, &i.Title, &i.Description, &i.Duration, &i.Stipend, &i.Location, &i.Status, &i.CreatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *internshipRepository) CreateApplication(ctx context.Context, app *domain.InternshipApplication) error {
	const query = `
        INSERT INTO internship_applications
            (user_id, internship_id, full_name, email, mobile, college_name, branch, year, resume_path, why_internship)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING application_id, application_status, applied_at`

	err := r.db.QueryRow(ctx, query,
		app.UserID,
		app.InternshipID,
		app.FullName,
		app.Email,
		app.Mobile,
		app.CollegeName,
		app.Branch,
		app.Year,
		app.ResumePath,
		app.WhyInternship,
	).Scan(&app.ID, &app.Status, &app.AppliedAt)
	return translate(err)
}

const applicationColumns = `ia.application_id, ia.user_id, ia.internship_id, ia.full_name, ia.email, ia.mobile,
        ia.college_name, ia.branch, ia.year, ia.resume_path, ia.why_internship, ia.application_status,
        ia.applied_at, ia.reviewed_at, i.title`

func (r *internshipRepository) ListRecentApplications(ctx context.Context, userID int64, limit int) ([]domain.InternshipApplication, error) {
	query := `SELECT ` + applicationColumns + `
        FROM internship_applications ia
        JOIN internship i ON ia.internship_id = i.internship_id
        WHERE ia.user_id = $1
        ORDER BY ia.applied_at DESC
        LIMIT $2`
	return r.queryApplications(ctx, query, userID, limit)
}

func (r *internshipRepository) ListPendingApplications(ctx context.Context) ([]domain.InternshipApplication, error) {
	query := `SELECT ` + applicationColumns + `
        FROM internship_applications ia
        JOIN internship i ON ia.internship_id = i.internship_id
        WHERE ia.application_status = 'pending'
        ORDER BY ia.applied_at DESC`
	return r.queryApplications(ctx, query)
}

func (r *internshipRepository) queryApplications(ctx context.Context, query string, args ...any) ([]domain.InternshipApplication, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.InternshipApplication, 0)
	for rows.Next() {
		var a domain.InternshipApplication
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.InternshipID,
			&a.FullName,
			&a.Email,
			&a.Mobile,
			&a.CollegeName,
			&a.Branch,
			&a.Year,
			&a.ResumePath,
			&a.WhyInternship,
			&a.Status,
			&a.AppliedAt,
			&a.ReviewedAt,
			&a.InternshipTitle,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateApplicationStatus sets the review status and returns the reviewed
// application. An unknown id returns pgx.ErrNoRows.
func (r *internshipRepository) UpdateApplicationStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.InternshipApplication, error) {
	const query = `
        UPDATE internship_applications SET application_status=$1, reviewed_at=NOW()
        WHERE application_id=$2
        RETURNING application_id, user_id, internship_id, full_name, email, application_status, reviewed_at`

	var a domain.InternshipApplication
	if err := r.db.QueryRow(ctx, query, status, id).Scan(
		&a.ID,
		&a.UserID,
		&a.InternshipID,
		&a.FullName,
		&a.Email,
		&a.Status,
		&a.ReviewedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
