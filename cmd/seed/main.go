// Seeds the configured backend with the default content for every section so
// a fresh install serves complete pages immediately. Safe to re-run: each run
// appends a new version, it never destroys existing content.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/joho/godotenv"

	"paintpro-backend/internal/config"
	"paintpro-backend/internal/domains/clients"
	"paintpro-backend/internal/domains/content"
	"paintpro-backend/internal/domains/projects"
	"paintpro-backend/internal/domains/services"
	"paintpro-backend/pkg/container"
	"paintpro-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c, err := container.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize application", err)
		os.Exit(1)
	}
	defer c.Cleanup()

	failed := false

	for _, key := range content.SimpleSections {
		payload, ok := content.DefaultPayload(key)
		if !ok {
			continue
		}
		data, err := json.Marshal(payload)
		if err != nil {
			logger.Error("failed to encode default payload", err)
			failed = true
			continue
		}
		if _, err := c.Services.Content.Update(ctx, key, data); err != nil {
			logger.Error("failed to seed section "+string(key), err)
			failed = true
			continue
		}
		logger.Info("seeded section", map[string]interface{}{"section": string(key)})
	}

	if _, err := c.Services.Services.Update(ctx, services.DefaultSection()); err != nil {
		logger.Error("failed to seed services", err)
		failed = true
	} else {
		logger.Info("seeded section", map[string]interface{}{"section": "services"})
	}

	if _, err := c.Services.Projects.Update(ctx, projects.DefaultSection()); err != nil {
		logger.Error("failed to seed projects", err)
		failed = true
	} else {
		logger.Info("seeded section", map[string]interface{}{"section": "projects"})
	}

	if _, err := c.Services.Clients.Update(ctx, clients.DefaultSection()); err != nil {
		logger.Error("failed to seed clients", err)
		failed = true
	} else {
		logger.Info("seeded section", map[string]interface{}{"section": "clients"})
	}

	// The blog store seeds itself on first hydrate, which container init
	// already performed.

	if failed {
		os.Exit(1)
	}
	logger.Info("seed complete", map[string]interface{}{"backend": cfg.Content.Backend})
}
