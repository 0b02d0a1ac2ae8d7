// Package storage provides object storage for uploaded binaries. It defines
// a System interface with a local filesystem implementation and a Google
// Cloud Storage implementation, both able to resolve a public URL per key.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/JaimeStill/handnotes/pkg/lifecycle"
)

// Storage errors returned by System implementations.
var (
	// ErrNotFound indicates the requested key does not exist in storage.
	ErrNotFound = errors.New("storage: key not found")

	// ErrExists indicates an object is already stored at the key.
	ErrExists = errors.New("storage: key already exists")

	// ErrPermissionDenied indicates insufficient permissions to access the key.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidKey indicates the key is malformed or contains invalid characters.
	// This includes empty keys and path traversal attempts.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// System defines object storage operations.
type System interface {
	// Store saves data at key with the given content type. Existing objects
	// are never overwritten; ErrExists is returned instead.
	Store(ctx context.Context, key string, data []byte, contentType string) error

	// Retrieve returns the data stored at key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete removes the object at key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Validate reports whether key exists and is readable.
	Validate(ctx context.Context, key string) (bool, error)

	// PublicURL returns the URL through which key can be fetched.
	// An empty string means no public URL can be produced.
	PublicURL(key string) string

	// Start registers lifecycle hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}

// New creates the System selected by cfg.Backend.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	switch cfg.Backend {
	case BackendGCS:
		return NewGCS(context.Background(), cfg, logger)
	case BackendFilesystem, "":
		return NewFilesystem(cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Backend)
	}
}

func joinURL(base, key string) string {
	if base == "" {
		return ""
	}

	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return base + "/" + strings.Join(segments, "/")
}
