package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumefill/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
// authMW may be nil: then the resume and form routes are public.
func Register(app *fiber.App, health *handlers.HealthHandler, resume *handlers.ResumeHandler, forms *handlers.FormsHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	protected := []fiber.Handler{}
	if authMW != nil {
		protected = append(protected, authMW)
	}

	// One-shot extraction
	rg := v1.Group("/resume", protected...)
	rg.Get("/types", resume.AllowedTypes)
	rg.Post("/parse", resume.Parse)

	// Form sessions
	fg := v1.Group("/forms", protected...)
	fg.Post("/", forms.Create)
	fg.Get("/:id", forms.Get)
	fg.Put("/:id", forms.Update)
	fg.Delete("/:id", forms.Delete)
	fg.Post("/:id/upload", forms.Upload)
	fg.Post("/:id/reset", forms.Reset)
}
