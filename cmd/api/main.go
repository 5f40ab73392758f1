package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"ecoavobot/config"
	_ "ecoavobot/docs" // Swagger docs
	"ecoavobot/internal/catalogwatch"
	"ecoavobot/internal/httpserver"
	fileRepo "ecoavobot/internal/intent/repository/file"
	"ecoavobot/internal/intent/usecase"
	"ecoavobot/internal/middleware"
	"ecoavobot/pkg/log"
)

// @title       EcoAvoBot API
// @description Intent classification chatbot for environmental questions (TF-IDF + cosine similarity).
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting EcoAvoBot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Catalog: %s", cfg.Catalog.Path)

	// 3. Intent domain
	repo := fileRepo.New(cfg.Catalog.Path, logger)
	intentUC, err := usecase.New(repo, cfg.EngineConfig(), logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize intent use case: ", err)
		os.Exit(1)
	}

	// A missing or broken catalog is not fatal: the bot answers "not understood"
	// until a valid catalog is reloaded.
	if out, err := intentUC.Reload(ctx); err != nil {
		logger.Warnf(ctx, "Starting with an empty catalog: %v", err)
	} else {
		logger.Infof(ctx, "Catalog loaded: %d intents, %d patterns", out.Intents, out.Patterns)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		IntentUseCase: intentUC,
		Messages:      cfg.IntentMessages(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	if cfg.Catalog.Watch {
		watcher := catalogwatch.New(cfg.Catalog.Path, cfg.Catalog.ReloadDebounce, intentUC, logger)
		g.Go(func() error {
			// Watcher failures are not fatal.
			if err := watcher.Run(gctx); err != nil {
				logger.Warnf(gctx, "Catalog watcher stopped: %v", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
