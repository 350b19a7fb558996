package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/mfortin/shopshelf/internal/ai"
	"github.com/mfortin/shopshelf/internal/ai/gemini"
	"github.com/mfortin/shopshelf/internal/config"
	"github.com/mfortin/shopshelf/internal/db"
	"github.com/mfortin/shopshelf/internal/logging"
	"github.com/mfortin/shopshelf/internal/service"
	"github.com/mfortin/shopshelf/internal/store"
	"github.com/mfortin/shopshelf/internal/web"
)

func main() {
	// A missing .env is fine; the environment is the source of truth.
	_ = godotenv.Load()

	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	ctx := context.Background()

	states := store.NewStateStore(database)
	state, err := states.Load(ctx)
	if err != nil {
		logger.Error("failed to load state", "error", err)
		return
	}
	if state == nil {
		logger.Info("no saved state, seeding sample data")
		state = store.Seed()
		if err := states.Save(ctx, state); err != nil {
			logger.Error("failed to save seed state", "error", err)
			return
		}
	}

	textGen := newTextGenerator(ctx, cfg, logger)

	merchant := service.NewCatalogService(state, states, textGen, logger)
	shopper := service.NewShopperService(merchant, logger)
	server := web.NewServer(merchant, shopper, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

// newTextGenerator returns nil when no AI backend is configured; the service
// layer falls back to canned copy in that case.
func newTextGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) ai.TextGenerator {
	switch cfg.AIBackend {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Error("GEMINI_API_KEY is required when AI_BACKEND=gemini")
			return nil
		}
		gen, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("failed to initialize gemini backend", "error", err)
			return nil
		}
		logger.Info("using Gemini text backend", "model", cfg.GeminiModel)
		return gen
	default:
		logger.Info("AI text generation disabled, using fallback copy")
		return nil
	}
}
