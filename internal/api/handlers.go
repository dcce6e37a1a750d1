package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/config"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/model"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/service"
)

// exampleQuestions are the canned shortcuts shown to the user.
var exampleQuestions = []string{
	"LangChain nedir?",
	"LangChain nasıl kurulur?",
	"LangChain ne işe yarar?",
	"LangChain'in temel bileşenleri nelerdir?",
	"RAG (Retrieval Augmented Generation) nedir?",
	"LangChain ile neler yapılabilir?",
}

// Handler holds handler dependencies.
type Handler struct {
	rag *service.RAGService
	cfg *config.Config
}

func NewHandler(rag *service.RAGService, cfg *config.Config) *Handler {
	return &Handler{rag: rag, cfg: cfg}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// Status reports whether the system is ready to answer questions.
func (h *Handler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"index_ready": h.rag.Ready(),
		"data_path":   h.cfg.DataPath,
		"index_dir":   h.cfg.IndexDir,
	})
}

// Examples lists the canned example questions.
func (h *Handler) Examples(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"examples": exampleQuestions})
}

// Rebuild chunks the configured corpus and replaces the index.
func (h *Handler) Rebuild(c *fiber.Ctx) error {
	n, err := h.rag.RebuildIndex(c.Context(), h.cfg.DataPath)
	if err != nil {
		log.Printf("rebuild error: %v", err)
		return h.mapError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok", "chunks": n})
}

// Ask answers a question from the indexed corpus.
func (h *Handler) Ask(c *fiber.Ctx) error {
	var req model.AskRequest
	if err := c.BodyParser(&req); err != nil || req.Question == "" {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request, expected JSON: {\"question\":\"...\"}"})
	}

	ans, err := h.rag.AnswerQuestion(c.Context(), req.Question, req.TopK)
	if err != nil {
		log.Printf("ask error: %v", err)
		return h.mapError(c, err)
	}
	return c.JSON(ans)
}

func (h *Handler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrIndexNotFound), errors.Is(err, model.ErrEmptyIndex):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "index yok — önce index oluşturun (POST /rebuild)",
		})
	case errors.Is(err, model.ErrLoad):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, model.ErrEmbed):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
