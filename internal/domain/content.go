package domain

import "time"

// LearningContent is an item in the learning hub.
type LearningContent struct {
	ID          int64     `json:"content_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ContentURL  *string   `json:"content_url"`
	ContentType string    `json:"content_type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	ID        int64     `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}
