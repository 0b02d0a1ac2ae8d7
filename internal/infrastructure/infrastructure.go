// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, storage, vision) that domain systems require.
package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/JaimeStill/handnotes/internal/config"
	"github.com/JaimeStill/handnotes/internal/vision"
	"github.com/JaimeStill/handnotes/pkg/database"
	"github.com/JaimeStill/handnotes/pkg/lifecycle"
	"github.com/JaimeStill/handnotes/pkg/logging"
	"github.com/JaimeStill/handnotes/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle   *lifecycle.Coordinator
	Logger      *slog.Logger
	Database    database.System
	Storage     storage.System
	Transcriber vision.Transcriber
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	transcriber, err := vision.New(context.Background(), &cfg.Vision, logger)
	if err != nil {
		return nil, fmt.Errorf("vision init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle:   lc,
		Logger:      logger,
		Database:    db,
		Storage:     store,
		Transcriber: transcriber,
	}, nil
}

// Start initializes all infrastructure systems and registers them with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}

	// Cloud-backed transcribers hold a client connection.
	if c, ok := i.Transcriber.(io.Closer); ok {
		i.Lifecycle.OnShutdown(func() {
			<-i.Lifecycle.Context().Done()
			if err := c.Close(); err != nil {
				i.Logger.Error("vision client close failed", "error", err)
			}
		})
	}
	return nil
}
