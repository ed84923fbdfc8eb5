package repository

import (
	"context"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

// CourseRepository manages courses and enrollments.
type CourseRepository interface {
	ListActive(ctx context.Context) ([]domain.Course, error)
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	Create(ctx context.Context, course *domain.Course) error
	Enroll(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error)
	ListActiveEnrollments(ctx context.Context, userID int64) ([]domain.Enrollment, error)
}

type courseRepository struct {
	db DB
}

// NewCourseRepository constructs repository.
func NewCourseRepository(db DB) CourseRepository {
	return &courseRepository{db: db}
}

const courseColumns = `course_id, title, description, category, duration, price, is_free, thumbnail, status, created_at`

func scanCourse(row interface{ Scan(...any) error }, c *domain.Course) error {
	return row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Category,
		&c.Duration,
		&c.Price,
		&c.IsFree,
		&c.Thumbnail,
		&c.Status,
		&c.CreatedAt,
	)
}

func (r *courseRepository) ListActive(ctx context.Context) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE status = 'active' ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]domain.Course, 0)
	for rows.Next() {
		var c domain.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE course_id=$1`

	var c domain.Course
	if err := scanCourse(r.db.QueryRow(ctx, query, id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	const query = `
        INSERT INTO courses (title, description, category, duration, price, is_free, thumbnail, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING course_id, created_at`

	if course.Status == "" {
		course.Status = domain.CourseStatusActive
	}
	return r.db.QueryRow(ctx, query,
		course.Title,
		course.Description,
		course.Category,
		course.Duration,
		course.Price,
		course.IsFree,
		course.Thumbnail,
		course.Status,
	).Scan(&course.ID, &course.CreatedAt)
}

// Enroll inserts an enrollment. A repeat enrollment returns ErrDuplicate and
// an unknown course returns ErrReferenceNotFound.
func (r *courseRepository) Enroll(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	const query = `
        INSERT INTO course_enrollments (user_id, course_id)
        VALUES ($1, $2)
        RETURNING enrollment_id, status, progress, enrolled_at`

	e := domain.Enrollment{UserID: userID, CourseID: courseID}
	if err := r.db.QueryRow(ctx, query, userID, courseID).Scan(
		&e.ID,
		&e.Status,
		&e.Progress,
		&e.EnrolledAt,
	); err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *courseRepository) ListActiveEnrollments(ctx context.Context, userID int64) ([]domain.Enrollment, error) {
	const query = `
        SELECT ce.enrollment_id, ce.user_id, ce.course_id, ce.status, ce.progress, ce.enrolled_at, c.title, c.thumbnail
        FROM course_enrollments ce
        JOIN courses c ON ce.course_id = c.course_id
        WHERE ce.user_id = $1 AND ce.status = 'active'
        ORDER BY ce.enrolled_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := make([]domain.Enrollment, 0)
	for rows.Next() {
		var e domain.Enrollment
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.CourseID,
			&e.Status,
			&e.Progress,
			&e.EnrolledAt,
			&e.Title,
			&e.Thumbnail,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}
