package domain

import "time"

// Certificate proves completion of a course, internship or webinar.
type Certificate struct {
	ID              int64     `json:"certificate_id"`
	UserID          int64     `json:"user_id"`
	Code            string    `json:"certificate_code"`
	Title           string    `json:"title"`
	CertificateType string    `json:"certificate_type"`
	ReferenceID     *int64    `json:"reference_id"`
	IssueDate       time.Time `json:"issue_date"`
	HolderName      string    `json:"full_name,omitempty"`
}

const (
	CertificateCourse     = "course"
	CertificateInternship = "internship"
	CertificateWebinar    = "webinar"
)
