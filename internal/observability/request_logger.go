package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mentorverse/mentorverse-api/internal/auth"
	apperrors "github.com/mentorverse/mentorverse-api/pkg/util"
)

// RequestLogger logs one line per request and feeds request metrics.
// Paths are labelled by route pattern to keep metric cardinality bounded.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		// The error middleware sits outside this one, so a returned error has
		// not been written yet.
		status := c.Response().StatusCode()
		if err != nil {
			status = apperrors.ToDomainError(err).HTTPStatus
		}
		route := c.Route().Path

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
			zap.String("ip", c.IP()),
		}
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			fields = append(fields, zap.String("request_id", rid))
		}
		if who, ok := auth.IdentityFromContext(c); ok {
			fields = append(fields, zap.Int64("user_id", who.UserID))
		}
		logger.Info("request", fields...)

		metrics.RecordRequest(route, c.Method(), status, elapsed)
		return err
	}
}
