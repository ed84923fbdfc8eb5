package events

import (
	"time"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventApplicationSubmitted     EventType = "application_submitted"
	EventApplicationStatusChanged EventType = "application_status_changed"
	EventCourseEnrolled           EventType = "course_enrolled"
	EventWebinarRegistered        EventType = "webinar_registered"
	EventCertificateIssued        EventType = "certificate_issued"
)

// Event is a domain event emitted by services after a successful write.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

type ApplicationSubmittedPayload struct {
	ApplicationID int64  `json:"application_id"`
	InternshipID  int64  `json:"internship_id"`
	ResumeStored  bool   `json:"resume_stored"`
	FullName      string `json:"full_name"`
}

type ApplicationStatusChangedPayload struct {
	ApplicationID int64                    `json:"application_id"`
	NewStatus     domain.ApplicationStatus `json:"new_status"`
}

type CourseEnrolledPayload struct {
	EnrollmentID int64 `json:"enrollment_id"`
	CourseID     int64 `json:"course_id"`
}

type WebinarRegisteredPayload struct {
	RegistrationID int64     `json:"registration_id"`
	WebinarID      int64     `json:"webinar_id"`
	Title          string    `json:"title"`
	WebinarDate    time.Time `json:"webinar_date"`
}

type CertificateIssuedPayload struct {
	CertificateID int64  `json:"certificate_id"`
	Code          string `json:"certificate_code"`
	Title         string `json:"title"`
}
