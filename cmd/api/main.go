package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"paintpro-backend/internal/config"
	"paintpro-backend/pkg/container"
	"paintpro-backend/pkg/logger"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	c, err := container.New(ctx, cfg)
	cancel()
	if err != nil {
		logger.Error("failed to initialize application", err)
		os.Exit(1)
	}
	defer c.Cleanup()

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      setupRouter(c),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", map[string]interface{}{
			"port":    cfg.App.Port,
			"env":     cfg.App.Environment,
			"backend": cfg.Content.Backend,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", err)
	}
}
