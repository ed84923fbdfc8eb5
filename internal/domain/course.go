package domain

import "time"

// Course is a catalog entry students can enroll in.
type Course struct {
	ID          int64     `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Duration    string    `json:"duration"`
	Price       float64   `json:"price"`
	IsFree      bool      `json:"is_free"`
	Thumbnail   *string   `json:"thumbnail"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Enrollment links a user to a course.
type Enrollment struct {
	ID         int64     `json:"enrollment_id"`
	UserID     int64     `json:"user_id"`
	CourseID   int64     `json:"course_id"`
	Status     string    `json:"status"`
	Progress   int       `json:"progress"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Title      string    `json:"title,omitempty"`
	Thumbnail  *string   `json:"thumbnail,omitempty"`
}

const (
	CourseStatusActive   = "active"
	CourseStatusInactive = "inactive"
)
