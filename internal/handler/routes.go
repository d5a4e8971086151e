package handler

import (
	"kidsedu/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler the server exposes
type Handlers struct {
	Pages      *PageHandler
	Math       *MathHandler
	Vocabulary *VocabularyHandler
	Health     *HealthHandler
}

// RegisterRoutes mounts the pages, game APIs and health probes on app.
func RegisterRoutes(app *fiber.App, h Handlers) {
	validationMiddleware := middleware.NewValidationMiddleware()

	app.Get("/", h.Pages.Page("index.html"))
	app.Get("/math", h.Pages.Page("math.html"))
	app.Get("/vocabulary", h.Pages.Page("vocabulary.html"))
	app.Get("/vocabulary/config", h.Pages.Page("vocabulary_config.html"))

	mathGroup := app.Group("/math")
	mathGroup.Post("/generate", h.Math.Generate)
	mathGroup.Post("/check", h.Math.Check)

	vocabularyGroup := app.Group("/vocabulary")
	vocabularyGroup.Get("/items", h.Vocabulary.Items)
	vocabularyGroup.Post("/upload", h.Vocabulary.Upload)
	vocabularyGroup.Post("/update/:itemId", validationMiddleware.ValidateItemID(), h.Vocabulary.UpdateLabel)
	vocabularyGroup.Post("/generate", h.Vocabulary.Generate)
	vocabularyGroup.Post("/check", h.Vocabulary.Check)

	app.Get("/health", h.Health.Health)
	app.Get("/health/ready", h.Health.Ready)
}
