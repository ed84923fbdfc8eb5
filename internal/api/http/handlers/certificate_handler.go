package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mentorverse/mentorverse-api/internal/api/dto"
	"github.com/mentorverse/mentorverse-api/internal/service"
)

// CertificateHandler lists, verifies and issues certificates.
type CertificateHandler struct {
	certificates *service.CertificateService
}

func NewCertificateHandler(certificates *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certificates: certificates}
}

// Mine GET /api/certificates.
func (h *CertificateHandler) Mine(c *fiber.Ctx) error {
	who, err := identity(c)
	if err != nil {
		return err
	}
	certs, err := h.certificates.ListForUser(c.UserContext(), who.UserID)
	if err != nil {
		return err
	}
	return c.JSON(certs)
}

// Verify GET /api/certificates/verify/:code.
func (h *CertificateHandler) Verify(c *fiber.Ctx) error {
	cert, err := h.certificates.Verify(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(cert)
}

// Issue POST /api/admin/certificates.
func (h *CertificateHandler) Issue(c *fiber.Ctx) error {
	var req dto.IssueCertificateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req, "Invalid certificate"); err != nil {
		return err
	}
	cert, err := h.certificates.Issue(c.UserContext(), service.IssueInput{
		UserID:          req.UserID,
		Title:           req.Title,
		CertificateType: req.CertificateType,
		ReferenceID:     req.ReferenceID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(cert)
}
