package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/JaimeStill/handnotes/pkg/lifecycle"
)

type gcsStore struct {
	client    *gcs.Client
	bucket    *gcs.BucketHandle
	name      string
	publicURL string
	logger    *slog.Logger
}

// NewGCS creates a Google Cloud Storage System for cfg.Bucket. Credentials
// come from cfg.CredentialsFile when set, otherwise from the environment.
func NewGCS(ctx context.Context, cfg *Config, logger *slog.Logger) (System, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = "https://storage.googleapis.com/" + cfg.Bucket
	}

	return &gcsStore{
		client:    client,
		bucket:    client.Bucket(cfg.Bucket),
		name:      cfg.Bucket,
		publicURL: publicURL,
		logger:    logger.With("system", "storage", "backend", "gcs"),
	}, nil
}

func (g *gcsStore) Start(lc *lifecycle.Coordinator) error {
	g.logger.Info("starting storage system", "bucket", g.name)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := g.client.Close(); err != nil {
			g.logger.Error("gcs client close failed", "error", err)
		}
	})

	return nil
}

func (g *gcsStore) Store(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return ErrInvalidKey
	}

	w := g.bucket.Object(key).If(gcs.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		w.Close()
		return mapGCSError(err)
	}
	if err := w.Close(); err != nil {
		return mapGCSError(err)
	}

	return nil
}

func (g *gcsStore) Retrieve(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	r, err := g.bucket.Object(key).NewReader(ctx)
	if err != nil {
		return nil, mapGCSError(err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	return data, nil
}

func (g *gcsStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	err := g.bucket.Object(key).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return mapGCSError(err)
}

func (g *gcsStore) Validate(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}

	_, err := g.bucket.Object(key).Attrs(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, mapGCSError(err)
	}
	return true, nil
}

func (g *gcsStore) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return joinURL(g.publicURL, key)
}

func mapGCSError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return ErrNotFound
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		switch gErr.Code {
		case http.StatusPreconditionFailed:
			return ErrExists
		case http.StatusForbidden, http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
	}
	return fmt.Errorf("gcs: %w", err)
}
