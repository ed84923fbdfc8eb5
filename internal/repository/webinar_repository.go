package repository

import (
	"context"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

// WebinarRepository manages webinars and registrations.
type WebinarRepository interface {
	ListUpcoming(ctx context.Context) ([]domain.Webinar, error)
	GetByID(ctx context.Context, id int64) (*domain.Webinar, error)
	Register(ctx context.Context, reg *domain.WebinarRegistration) error
	ListRegistrations(ctx context.Context, userID int64) ([]domain.WebinarRegistration, error)
}

type webinarRepository struct {
	db DB
}

// NewWebinarRepository constructs repository.
func NewWebinarRepository(db DB) WebinarRepository {
	return &webinarRepository{db: db}
}

const webinarColumns = `webinar_id, title, description, speaker, webinar_date, duration_minutes, meeting_link, status, created_at`

func scanWebinar(row interface{ Scan(...any) error }, w *domain.Webinar) error {
	return row.Scan(
		&w.ID,
		&w.Title,
		&w.Description,
		&w.Speaker,
		&w.WebinarDate,
		&w.DurationMinutes,
		&w.MeetingLink,
		&w.Status,
		&w.CreatedAt,
	)
}

func (r *webinarRepository) ListUpcoming(ctx context.Context) ([]domain.Webinar, error) {
	query := `SELECT ` + webinarColumns + `
        FROM webinars WHERE status IN ('scheduled', 'ongoing') ORDER BY webinar_date ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Webinar, 0)
	for rows.Next() {
		var w domain.Webinar
		if err := scanWebinar(rows, &w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *webinarRepository) GetByID(ctx context.Context, id int64) (*domain.Webinar, error) {
	query := `SELECT ` + webinarColumns + ` FROM webinars WHERE webinar_id=$1`

	var w domain.Webinar
	if err := scanWebinar(r.db.QueryRow(ctx, query, id), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Register inserts a registration. Registering twice returns ErrDuplicate.
func (r *webinarRepository) Register(ctx context.Context, reg *domain.WebinarRegistration) error {
	const query = `
        INSERT INTO webinar_registrations (user_id, webinar_id, full_name, email, mobile, college_name, branch, year)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING registration_id, registered_at`

	err := r.db.QueryRow(ctx, query,
		reg.UserID,
		reg.WebinarID,
		reg.FullName,
		reg.Email,
		reg.Mobile,
		reg.CollegeName,
		reg.Branch,
		reg.Year,
	).Scan(&reg.ID, &reg.RegisteredAt)
	return translate(err)
}

func (r *webinarRepository) ListRegistrations(ctx context.Context, userID int64) ([]domain.WebinarRegistration, error) {
	const query = `
        SELECT wr.registration_id, wr.user_id, wr.webinar_id, wr.full_name, wr.email, wr.mobile,
               wr.college_name, wr.branch, wr.year, wr.registered_at, w.title, w.webinar_date
        FROM webinar_registrations wr
        JOIN webinars w ON wr.webinar_id = w.webinar_id
        WHERE wr.user_id = $1
        ORDER BY w.webinar_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.WebinarRegistration, 0)
	for rows.Next() {
		var reg domain.WebinarRegistration
		if err := rows.Scan(
			&reg.ID,
			&reg.UserID,
			&reg.WebinarID,
			&reg.FullName,
			&reg.Email,
			&reg.Mobile,
			&reg.CollegeName,
			&reg.Branch,
			&reg.Year,
			&reg.RegisteredAt,
			&reg.Title,
			&reg.WebinarDate,
		); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}
