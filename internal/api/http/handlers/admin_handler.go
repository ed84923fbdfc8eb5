package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mentorverse/mentorverse-api/internal/api/dto"
	"github.com/mentorverse/mentorverse-api/internal/service"
)

// AdminHandler exposes the admin panel. Every route sits behind the admin gate.
type AdminHandler struct {
	admin *service.AdminService
}

func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Stats GET /api/admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.admin.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Users GET /api/admin/users.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.admin.Users(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// CreateCourse POST /api/admin/courses.
func (h *AdminHandler) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req, "Invalid course"); err != nil {
		return err
	}
	course := req.Course()
	if err := h.admin.CreateCourse(c.UserContext(), course); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":   "Course added successfully",
		"course_id": course.ID,
	})
}

// PendingApplications GET /api/admin/applications/pending.
func (h *AdminHandler) PendingApplications(c *fiber.Ctx) error {
	apps, err := h.admin.PendingApplications(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(apps)
}

// UpdateApplication PUT /api/admin/applications/:id.
func (h *AdminHandler) UpdateApplication(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateApplicationRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req, "Invalid application status"); err != nil {
		return err
	}
	if _, err := h.admin.ReviewApplication(c.UserContext(), id, req.Status); err != nil {
		return err
	}
	return c.JSON(message("Application updated successfully"))
}
