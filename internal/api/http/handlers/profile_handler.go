package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mentorverse/mentorverse-api/internal/api/dto"
	"github.com/mentorverse/mentorverse-api/internal/service"
)

// ProfileHandler serves /api/users for the signed-in user.
type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Profile GET /api/users/profile.
func (h *ProfileHandler) Profile(c *fiber.Ctx) error {
	who, err := identity(c)
	if err != nil {
		return err
	}
	user, err := h.profiles.Profile(c.UserContext(), who.UserID)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// UpdateProfile PUT /api/users/profile.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	who, err := identity(c)
	if err != nil {
		return err
	}
	var req dto.UpdateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req, "Invalid profile"); err != nil {
		return err
	}
	if err := h.profiles.UpdateProfile(c.UserContext(), who.UserID, req.Update()); err != nil {
		return err
	}
	return c.JSON(message("Profile updated successfully"))
}

// Dashboard GET /api/users/dashboard.
func (h *ProfileHandler) Dashboard(c *fiber.Ctx) error {
	who, err := identity(c)
	if err != nil {
		return err
	}
	d, err := h.profiles.Dashboard(c.UserContext(), who.UserID)
	if err != nil {
		return err
	}
	return c.JSON(d)
}
