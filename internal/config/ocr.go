package config

import (
	"fmt"
	"os"
	"time"

	"github.com/docker/go-units"
)

const (
	EnvOCRMaxImageSize = "OCR_MAX_IMAGE_SIZE"
	EnvOCRFetchTimeout = "OCR_FETCH_TIMEOUT"
)

// OCRConfig limits the image download that precedes each transcription.
type OCRConfig struct {
	// MaxImageSize accepts human-readable sizes such as "20MB".
	MaxImageSize    string `toml:"max_image_size"`
	FetchTimeout    string `toml:"fetch_timeout"`
	maxImageSizeVal int64
}

func (c *OCRConfig) MaxImageSizeBytes() int64 {
	return c.maxImageSizeVal
}

func (c *OCRConfig) FetchTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.FetchTimeout)
	return d
}

func (c *OCRConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *OCRConfig) Merge(overlay *OCRConfig) {
	if overlay.MaxImageSize != "" {
		c.MaxImageSize = overlay.MaxImageSize
	}
	if overlay.FetchTimeout != "" {
		c.FetchTimeout = overlay.FetchTimeout
	}
}

func (c *OCRConfig) loadDefaults() {
	if c.MaxImageSize == "" {
		c.MaxImageSize = "20MB"
	}
	if c.FetchTimeout == "" {
		c.FetchTimeout = "30s"
	}
}

func (c *OCRConfig) loadEnv() {
	if v := os.Getenv(EnvOCRMaxImageSize); v != "" {
		c.MaxImageSize = v
	}
	if v := os.Getenv(EnvOCRFetchTimeout); v != "" {
		c.FetchTimeout = v
	}
}

func (c *OCRConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxImageSize)
	if err != nil {
		return fmt.Errorf("invalid max_image_size: %w", err)
	}
	c.maxImageSizeVal = size

	if d, err := time.ParseDuration(c.FetchTimeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid fetch_timeout: %s", c.FetchTimeout)
	}
	return nil
}
