package dto

import "github.com/mentorverse/mentorverse-api/internal/domain"

// CreateCourseRequest payload for POST /api/admin/courses.
type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"max=100"`
	Duration    string  `json:"duration" validate:"max=50"`
	Price       float64 `json:"price" validate:"gte=0"`
	IsFree      bool    `json:"is_free"`
	Thumbnail   *string `json:"thumbnail" validate:"omitempty,max=500"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r CreateCourseRequest) Course() *domain.Course {
	return &domain.Course{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Duration:    r.Duration,
		Price:       r.Price,
		IsFree:      r.IsFree,
		Thumbnail:   optional(r.Thumbnail),
		Status:      r.Status,
	}
}

// UpdateApplicationRequest payload for PUT /api/admin/applications/:id.
type UpdateApplicationRequest struct {
	Status domain.ApplicationStatus `json:"application_status" validate:"required,oneof=pending shortlisted accepted rejected"`
}

// IssueCertificateRequest payload for POST /api/admin/certificates.
type IssueCertificateRequest struct {
	UserID          int64  `json:"user_id" validate:"required,gt=0"`
	Title           string `json:"title" validate:"required,max=200"`
	CertificateType string `json:"certificate_type" validate:"required,oneof=course internship webinar"`
	ReferenceID     *int64 `json:"reference_id" validate:"omitempty,gt=0"`
}
