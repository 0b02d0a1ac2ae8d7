package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"
)

// Backend selects the object store implementation.
type Backend string

const (
	BackendFilesystem Backend = "filesystem"
	BackendGCS        Backend = "gcs"
)

// Config contains object storage configuration.
type Config struct {
	Backend Backend `toml:"backend"`

	// BasePath is the root directory for filesystem storage.
	// Default: ".data/blobs"
	BasePath string `toml:"base_path"`

	// Bucket is the GCS bucket name. Default: "handnotes"
	Bucket          string `toml:"bucket"`
	CredentialsFile string `toml:"credentials_file"`

	// PublicURL prefixes object keys to form their public URL. Required for
	// the filesystem backend; for GCS it overrides the default
	// storage.googleapis.com URL.
	PublicURL string `toml:"public_url"`

	MaxUploadSize    string `toml:"max_upload_size"`
	maxUploadSizeVal int64
}

// Env maps environment variable names for storage configuration.
type Env struct {
	Backend         string
	BasePath        string
	Bucket          string
	CredentialsFile string
	PublicURL       string
	MaxUploadSize   string
}

func (c *Config) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Bucket != "" {
		c.Bucket = overlay.Bucket
	}
	if overlay.CredentialsFile != "" {
		c.CredentialsFile = overlay.CredentialsFile
	}
	if overlay.PublicURL != "" {
		c.PublicURL = overlay.PublicURL
	}
	if size, err := units.FromHumanSize(overlay.MaxUploadSize); err == nil {
		c.MaxUploadSize = overlay.MaxUploadSize
		c.maxUploadSizeVal = size
	}
}

func (c *Config) loadDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFilesystem
	}
	if c.BasePath == "" {
		c.BasePath = ".data/blobs"
	}
	if c.Bucket == "" {
		c.Bucket = "handnotes"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "20MB"
	}
}

func (c *Config) loadEnv(env *Env) {
	lookup := func(name string, apply func(string)) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			apply(v)
		}
	}

	lookup(env.Backend, func(v string) { c.Backend = Backend(v) })
	lookup(env.BasePath, func(v string) { c.BasePath = v })
	lookup(env.Bucket, func(v string) { c.Bucket = v })
	lookup(env.CredentialsFile, func(v string) { c.CredentialsFile = v })
	lookup(env.PublicURL, func(v string) { c.PublicURL = v })
	lookup(env.MaxUploadSize, func(v string) { c.MaxUploadSize = v })
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendFilesystem:
		if c.BasePath == "" {
			return fmt.Errorf("base_path required")
		}
	case BackendGCS:
		if c.Bucket == "" {
			return fmt.Errorf("bucket required")
		}
	default:
		return fmt.Errorf("invalid backend: %s (must be filesystem or gcs)", c.Backend)
	}

	c.PublicURL = strings.TrimSuffix(c.PublicURL, "/")

	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadSizeVal = size

	return nil
}
