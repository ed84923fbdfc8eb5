package domain

import "time"

const (
	WebinarScheduled = "scheduled"
	WebinarOngoing   = "ongoing"
	WebinarCompleted = "completed"
)

// Webinar is a live session students can register for.
type Webinar struct {
	ID              int64     `json:"webinar_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Speaker         *string   `json:"speaker"`
	WebinarDate     time.Time `json:"webinar_date"`
	DurationMinutes int       `json:"duration_minutes"`
	MeetingLink     *string   `json:"meeting_link"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// WebinarRegistration is a user's seat in a webinar.
type WebinarRegistration struct {
	ID        int64 `json:"registration_id"`
	UserID    int64 `json:"user_id"`
	WebinarID int64 `json:"webinar_id"`
	ApplicantDetails
	RegisteredAt time.Time  `json:"registered_at"`
	Title        string     `json:"title,omitempty"`
	WebinarDate  *time.Time `json:"webinar_date,omitempty"`
}
