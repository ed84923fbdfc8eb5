package repository

import (
	"context"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

// ContentRepository covers the learning hub, the contact form and the admin
// dashboard counters.
type ContentRepository interface {
	ListLearning(ctx context.Context, category string) ([]domain.LearningContent, error)
	CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error
	Stats(ctx context.Context) (*domain.PlatformStats, error)
}

type contentRepository struct {
	db DB
}

// NewContentRepository constructs repository.
func NewContentRepository(db DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) ListLearning(ctx context.Context, category string) ([]domain.LearningContent, error) {
	const query = `
        SELECT content_id, title, description, category, content_url, content_type, status, created_at
        FROM learning_content
        WHERE category = $1 AND status = 'active'
        ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.LearningContent, 0)
	for rows.Next() {
		var c domain.LearningContent
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.ContentURL, &c.ContentType, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *contentRepository) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	const query = `
        INSERT INTO contact_messages (name, email, message, ip_address)
        VALUES ($1, $2, $3, $4)
        RETURNING message_id, created_at`

	return r.db.QueryRow(ctx, query, msg.Name, msg.Email, msg.Message, msg.IPAddress).
		Scan(&msg.ID, &msg.CreatedAt)
}

func (r *contentRepository) Stats(ctx context.Context) (*domain.PlatformStats, error) {
	const query = `
        SELECT total_users, active_courses, total_enrollments, pending_applications, upcoming_webinars, certificates_issued
        FROM dashboard_stats`

	var s domain.PlatformStats
	if err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalUsers,
		&s.ActiveCourses,
		&s.TotalEnrollments,
		&s.PendingApplications,
		&s.UpcomingWebinars,
		&s.CertificatesIssued,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
