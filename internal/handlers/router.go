package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, page *PageHandler, analyze *AnalyzeHandler) {
	// HTML
	app.Get("/", page.HandleIndex)
	app.Post("/analyze", page.HandleAnalyze)

	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyze.HandleAnalyze)
	api.Post("/analyze/text", analyze.HandleAnalyzeText)
}
