package domain

import "time"

// ApplicationStatus tracks an internship application through review.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationShortlisted, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Internship is an open position students can apply for.
type Internship struct {
	ID          int64     `json:"internship_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Stipend     *string   `json:"stipend"`
	Location    *string   `json:"location"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ApplicantDetails are the form fields shared by applications and registrations.
type ApplicantDetails struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Mobile      *string `json:"mobile"`
	CollegeName *string `json:"college_name"`
	Branch      *string `json:"branch"`
	Year        *string `json:"year"`
}

// InternshipApplication is a submitted application.
type InternshipApplication struct {
	ID           int64 `json:"application_id"`
	UserID       int64 `json:"user_id"`
	InternshipID int64 `json:"internship_id"`
	ApplicantDetails
	ResumePath      *string           `json:"resume_path"`
	WhyInternship   *string           `json:"why_internship"`
	Status          ApplicationStatus `json:"application_status"`
	AppliedAt       time.Time         `json:"applied_at"`
	ReviewedAt      *time.Time        `json:"reviewed_at"`
	InternshipTitle string            `json:"internship_title,omitempty"`
}
