package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mentorverse/mentorverse-api/internal/auth"
	"github.com/mentorverse/mentorverse-api/internal/domain"
	apperrors "github.com/mentorverse/mentorverse-api/pkg/util"
)

// identity returns the caller attached by the authentication gate. Handlers
// mounted behind the gate always have one; the error covers misrouting.
func identity(c *fiber.Ctx) (domain.Identity, error) {
	id, ok := auth.IdentityFromContext(c)
	if !ok {
		return domain.Identity{}, apperrors.NewUnauthorized("Access denied")
	}
	return id, nil
}

func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequest("invalid " + name)
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	return nil
}

func message(text string) fiber.Map {
	return fiber.Map{"message": text}
}
