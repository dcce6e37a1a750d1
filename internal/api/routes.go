package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/config"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/service"
)

func RegisterRoutes(app *fiber.App, rag *service.RAGService, cfg *config.Config) {
	h := NewHandler(rag, cfg)

	app.Get("/health", h.Health)
	app.Get("/status", h.Status)
	app.Get("/examples", h.Examples)
	app.Post("/rebuild", h.Rebuild)
	app.Post("/ask", h.Ask)
}
