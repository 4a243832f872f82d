package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http"
	"github.com/artem13815/resume-analyzer/api/http/handlers"
	"github.com/artem13815/resume-analyzer/pkg/config"
	"github.com/artem13815/resume-analyzer/pkg/health"
	healthpg "github.com/artem13815/resume-analyzer/pkg/health/checkers"
	"github.com/artem13815/resume-analyzer/pkg/llm/gemini"
	"github.com/artem13815/resume-analyzer/pkg/logger"
	pgrepo "github.com/artem13815/resume-analyzer/pkg/repository/postgres"
	"github.com/artem13815/resume-analyzer/pkg/resume"
	"github.com/artem13815/resume-analyzer/pkg/storage/postgres"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The pool is owned here and released on shutdown; everything else
	// borrows it.
	pool, err := postgres.Connect(ctx, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect")
	}
	defer pool.Close()

	repo := pgrepo.NewResumeRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		// keep serving: health reports the database as disconnected
		log.Warn().Err(err).Msg("schema init failed, database unreachable at startup")
	} else {
		log.Info().Msg("connected to postgres")
	}

	llmClient := gemini.New(cfg.GeminiAPIKey, "")
	analyzer := resume.NewService(llmClient, cfg.GeminiModel, cfg.GeminiFallbackModel, log)

	readiness := health.NewService(healthpg.NewPostgresChecker(pool))
	healthHandler := handlers.NewHealthHandler(readiness, cfg.Env)
	resumesHandler := handlers.NewResumesHandler(analyzer, repo, log)

	app := fiber.New(fiber.Config{
		// multipart overhead on top of the 5MB document limit
		BodyLimit: 10 << 20,
	})
	http.Register(app, healthHandler, resumesHandler)

	if cfg.Env == "production" {
		app.Static("/", cfg.StaticDir)
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
}
