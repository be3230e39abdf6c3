package main

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/config"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/repository"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/service"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/validation"
)

// runtime holds what every subcommand needs: config, logger and an open
// store with its schema in place.
type runtime struct {
	cfg   *config.Config
	log   *logger.Logger
	store repository.Store
}

func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := bootstrap.OpenStore(ctx, cfg.Store, bootstrap.StoreOptions{})
	if err != nil {
		log.Error("store unavailable", "backend", cfg.Store.Backend, "error", err)
		log.Sync()
		return nil, err
	}

	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	log.Info("store ready", "backend", store.Backend())
	return &runtime{cfg: cfg, log: log, store: store}, nil
}

func (rt *runtime) service() *service.ContentService {
	return service.NewContentService(rt.store, validation.New(), rt.log)
}

func (rt *runtime) close() {
	if err := rt.store.Close(); err != nil {
		rt.log.Warn("store close failed", "error", err)
	}
	rt.log.Sync()
}
