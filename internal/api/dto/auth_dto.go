package dto

import (
	"time"

	"github.com/mentorverse/mentorverse-api/internal/domain"
	"github.com/mentorverse/mentorverse-api/internal/service"
)

// RegisterRequest payload for new students.
type RegisterRequest struct {
	FullName    string  `json:"full_name" validate:"required,max=150"`
	Email       string  `json:"email" validate:"required,max=255"`
	Password    string  `json:"password" validate:"required,max=72"`
	CollegeName *string `json:"college_name" validate:"omitempty,max=200"`
	Branch      *string `json:"branch" validate:"omitempty,max=100"`
	Year        *string `json:"year" validate:"omitempty,max=20"`
	Mobile      *string `json:"mobile" validate:"omitempty,max=20"`
}

func (r RegisterRequest) Input() service.RegisterInput {
	return service.RegisterInput{
		FullName:    r.FullName,
		Email:       r.Email,
		Password:    r.Password,
		CollegeName: optional(r.CollegeName),
		Branch:      optional(r.Branch),
		Year:        optional(r.Year),
		Mobile:      optional(r.Mobile),
	}
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginUser is the public part of the account returned on login.
type LoginUser struct {
	UserID   int64       `json:"user_id"`
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

// LoginResponse standard response for login.
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      LoginUser `json:"user"`
}

func NewLoginResponse(res *service.LoginResult) LoginResponse {
	return LoginResponse{
		Message:   "Login successful",
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User: LoginUser{
			UserID:   res.User.UserID,
			FullName: res.User.FullName,
			Email:    res.User.Email,
			Role:     res.User.Role,
		},
	}
}

// UpdateProfileRequest carries editable profile fields.
type UpdateProfileRequest struct {
	FullName    string  `json:"full_name" validate:"required,max=150"`
	CollegeName *string `json:"college_name" validate:"omitempty,max=200"`
	Branch      *string `json:"branch" validate:"omitempty,max=100"`
	Year        *string `json:"year" validate:"omitempty,max=20"`
	Mobile      *string `json:"mobile" validate:"omitempty,max=20"`
}

func (r UpdateProfileRequest) Update() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		FullName:    r.FullName,
		CollegeName: optional(r.CollegeName),
		Branch:      optional(r.Branch),
		Year:        optional(r.Year),
		Mobile:      optional(r.Mobile),
	}
}
