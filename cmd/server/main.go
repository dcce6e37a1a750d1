package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/answer"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/api"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/chunker"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/config"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/index"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/service"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/store"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/textclean"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.Load()

	cleaner := textclean.New(textclean.Options{TagCountThreshold: cfg.TagCountThreshold})

	var emb index.Embedder
	if cfg.EmbedBaseURL != "" {
		emb = index.NewOpenAIEmbedder(cfg.EmbedBaseURL, cfg.EmbedAPIKey, cfg.EmbedModel, cfg.EmbedDim)
	} else {
		emb = index.NewHashEmbedder(cfg.EmbedDim)
	}

	var vs service.VectorStore
	switch cfg.StoreBackend {
	case "postgres":
		pg, err := store.NewPgStore(cfg.PgConn, emb)
		if err != nil {
			log.Fatal(err)
		}
		vs = pg
	default:
		vs = index.NewStore(cfg.IndexDir, emb)
	}

	opts := answer.PresetA()
	if strings.EqualFold(cfg.Heuristics, "b") {
		opts = answer.PresetB()
	}

	ch := chunker.New(cleaner, chunker.Config{ChunkSize: cfg.ChunkSize, Overlap: cfg.ChunkOverlap})
	templater := answer.New(cleaner, opts)
	rag := service.NewRAGService(vs, ch, templater, cleaner, cfg.TopK)

	app := fiber.New()
	api.RegisterRoutes(app, rag, cfg)

	log.Printf("🚀 Server started at %s (backend=%s, embedder=%s)", cfg.ServerAddr, cfg.StoreBackend, emb.Model())
	log.Fatal(app.Listen(cfg.ServerAddr))
}
