package domain

import "time"

// User is a registered student or administrator.
type User struct {
	ID           int64     `json:"user_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CollegeName  *string   `json:"college_name"`
	Branch       *string   `json:"branch"`
	Year         *string   `json:"year"`
	Mobile       *string   `json:"mobile"`
	ProfilePic   *string   `json:"profile_pic,omitempty"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileUpdate carries the user-editable profile fields.
type ProfileUpdate struct {
	FullName    string
	CollegeName *string
	Branch      *string
	Year        *string
	Mobile      *string
}

// Dashboard aggregates a user's activity across the platform.
type Dashboard struct {
	Enrollments   []Enrollment            `json:"enrollments"`
	Applications  []InternshipApplication `json:"applications"`
	Registrations []WebinarRegistration   `json:"registrations"`
	Certificates  []Certificate           `json:"certificates"`
}

// PlatformStats are the counters shown on the admin dashboard.
type PlatformStats struct {
	TotalUsers          int64 `json:"total_users"`
	ActiveCourses       int64 `json:"active_courses"`
	TotalEnrollments    int64 `json:"total_enrollments"`
	PendingApplications int64 `json:"pending_applications"`
	UpcomingWebinars    int64 `json:"upcoming_webinars"`
	CertificatesIssued  int64 `json:"certificates_issued"`
}
