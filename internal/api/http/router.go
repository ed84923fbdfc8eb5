package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mentorverse/mentorverse-api/internal/api/http/handlers"
	"github.com/mentorverse/mentorverse-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Profile      *handlers.ProfileHandler
	Catalog      *handlers.CatalogHandler
	Certificates *handlers.CertificateHandler
	Admin        *handlers.AdminHandler
	Gates        *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Protected routes run the authentication
// gate; admin routes add the admin authorization gate after it.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")
	authenticated := cfg.Gates.Authenticated()

	api.Get("/health", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)

	api.Post("/auth/register", cfg.Auth.Register)
	api.Post("/auth/login", cfg.Auth.Login)

	users := api.Group("/users", authenticated)
	users.Get("/profile", cfg.Profile.Profile)
	users.Put("/profile", cfg.Profile.UpdateProfile)
	users.Get("/dashboard", cfg.Profile.Dashboard)

	api.Get("/courses", cfg.Catalog.ListCourses)
	api.Get("/courses/:id", cfg.Catalog.GetCourse)
	api.Post("/courses/:id/enroll", authenticated, cfg.Catalog.Enroll)

	api.Get("/internship", cfg.Catalog.ListInternships)
	api.Post("/internship/:id/apply", authenticated, cfg.Catalog.Apply)

	api.Get("/webinars", cfg.Catalog.ListWebinars)
	api.Post("/webinars/:id/register", authenticated, cfg.Catalog.RegisterWebinar)

	api.Get("/learning/:category", cfg.Catalog.Learning)
	api.Post("/contact", cfg.Catalog.Contact)

	api.Get("/certificates", authenticated, cfg.Certificates.Mine)
	api.Get("/certificates/verify/:code", cfg.Certificates.Verify)

	admin := api.Group("/admin", cfg.Gates.Admin())
	admin.Get("/stats", cfg.Admin.Stats)
	admin.Get("/users", cfg.Admin.Users)
	admin.Post("/courses", cfg.Admin.CreateCourse)
	admin.Get("/applications/pending", cfg.Admin.PendingApplications)
	admin.Put("/applications/:id", cfg.Admin.UpdateApplication)
	admin.Post("/certificates", cfg.Certificates.Issue)
}
