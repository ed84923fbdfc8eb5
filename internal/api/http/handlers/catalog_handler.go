package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mentorverse/mentorverse-api/internal/api/dto"
	"github.com/mentorverse/mentorverse-api/internal/domain"
	"github.com/mentorverse/mentorverse-api/internal/service"
)

// CatalogHandler serves courses, internships, webinars, the learning hub
// and the contact form.
type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCourses GET /api/courses.
func (h *CatalogHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.catalog.ListCourses(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

// GetCourse GET /api/courses/:id.
func (h *CatalogHandler) GetCourse(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	course, err := h.catalog.GetCourse(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(course)
}

// Enroll POST /api/courses/:id/enroll.
func (h *CatalogHandler) Enroll(c *fiber.Ctx) error {
	who, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.catalog.Enroll(c.UserContext(), who, id); err != nil {
		return err
	}
	return c.JSON(message("Enrolled successfully"))
}

// ListInternships GET /api/internship.
func (h *CatalogHandler) ListInternships(c *fiber.Ctx) error {
	items, err := h.catalog.ListInternships(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Apply POST /api/internship/:id/apply. Accepts JSON or a multipart form
// with an optional "resume" file part.
func (h *CatalogHandler) Apply(c *fiber.Ctx) error {
	who, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ApplyRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req, "All fields are required"); err != nil {
		return err
	}

	in := service.ApplicationInput{
		ApplicantDetails: req.Details(),
		WhyInternship:    req.WhyInternship,
	}
	if fh, err := c.FormFile("resume"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return err
		}
		defer f.Close()
		in.Resume = &service.ResumeUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Body:        f,
		}
	}

	app, err := h.catalog.Apply(c.UserContext(), who, id, in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":        "Application submitted successfully",
		"application_id": app.ID,
	})
}

// ListWebinars GET /api/webinars.
func (h *CatalogHandler) ListWebinars(c *fiber.Ctx) error {
	items, err := h.catalog.ListWebinars(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// RegisterWebinar POST /api/webinars/:id/register.
func (h *CatalogHandler) RegisterWebinar(c *fiber.Ctx) error {
	who, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ApplicantRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req, "All fields are required"); err != nil {
		return err
	}
	if _, err := h.catalog.RegisterWebinar(c.UserContext(), who, id, req.Details()); err != nil {
		return err
	}
	return c.JSON(message("Registration successful"))
}

// Learning GET /api/learning/:category.
func (h *CatalogHandler) Learning(c *fiber.Ctx) error {
	items, err := h.catalog.ListLearning(c.UserContext(), c.Params("category"))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Contact POST /api/contact.
func (h *CatalogHandler) Contact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req, "All fields are required"); err != nil {
		return err
	}
	msg := &domain.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message, IPAddress: c.IP()}
	if err := h.catalog.SubmitContact(c.UserContext(), msg); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(message("Message sent successfully"))
}
