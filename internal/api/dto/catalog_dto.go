package dto

import "github.com/mentorverse/mentorverse-api/internal/domain"

// ApplicantRequest is the form shared by internship applications and webinar
// registrations. It is read from JSON or multipart form fields.
type ApplicantRequest struct {
	FullName    string  `json:"full_name" form:"full_name" validate:"required,max=150"`
	Email       string  `json:"email" form:"email" validate:"omitempty,email,max=255"`
	Mobile      *string `json:"mobile" form:"mobile" validate:"omitempty,max=20"`
	CollegeName *string `json:"college_name" form:"college_name" validate:"omitempty,max=200"`
	Branch      *string `json:"branch" form:"branch" validate:"omitempty,max=100"`
	Year        *string `json:"year" form:"year" validate:"omitempty,max=20"`
}

func (r ApplicantRequest) Details() domain.ApplicantDetails {
	return domain.ApplicantDetails{
		FullName:    r.FullName,
		Email:       r.Email,
		Mobile:      optional(r.Mobile),
		CollegeName: optional(r.CollegeName),
		Branch:      optional(r.Branch),
		Year:        optional(r.Year),
	}
}

// ApplyRequest is the internship application form, sent as multipart
// alongside the optional resume file.
type ApplyRequest struct {
	FullName      string  `json:"full_name" form:"full_name" validate:"required,max=150"`
	Email         string  `json:"email" form:"email" validate:"omitempty,email,max=255"`
	Mobile        *string `json:"mobile" form:"mobile" validate:"omitempty,max=20"`
	CollegeName   *string `json:"college_name" form:"college_name" validate:"omitempty,max=200"`
	Branch        *string `json:"branch" form:"branch" validate:"omitempty,max=100"`
	Year          *string `json:"year" form:"year" validate:"omitempty,max=20"`
	WhyInternship *string `json:"why_internship" form:"why_internship" validate:"omitempty,max=5000"`
}

func (r ApplyRequest) Details() domain.ApplicantDetails {
	return ApplicantRequest{
		FullName:    r.FullName,
		Email:       r.Email,
		Mobile:      r.Mobile,
		CollegeName: r.CollegeName,
		Branch:      r.Branch,
		Year:        r.Year,
	}.Details()
}

// ContactRequest payload for the public contact form.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}
