package vision

import (
	"fmt"
	"os"
	"time"
)

// Provider selects the Transcriber implementation.
type Provider string

const (
	ProviderAgents Provider = "agents"
	ProviderGemini Provider = "gemini"
	ProviderVertex Provider = "vertex"
)

// Config contains vision model configuration.
type Config struct {
	Provider Provider `toml:"provider"`

	// Model is the model identifier sent to the provider and reported
	// back with every transcription. Default depends on Provider.
	Model string `toml:"model"`

	// AgentProvider is the go-agents provider name used by the agents
	// backend. Default: "openai"
	AgentProvider string `toml:"agent_provider"`
	BaseURL       string `toml:"base_url"`
	Token         string `toml:"token"`

	// Project and Region address the Vertex AI endpoint.
	Project string `toml:"project"`
	Region  string `toml:"region"`

	// Detail is the image detail hint. Default: "high"
	Detail  string `toml:"detail"`
	Timeout string `toml:"timeout"`
}

// Env maps environment variable names for vision configuration.
type Env struct {
	Provider      string
	Model         string
	AgentProvider string
	BaseURL       string
	Token         string
	Project       string
	Region        string
	Detail        string
	Timeout       string
}

// TimeoutDuration returns the per-request model timeout.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the vision configuration.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.loadEnv(env)
	}
	c.loadDefaults()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.AgentProvider != "" {
		c.AgentProvider = overlay.AgentProvider
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.Project != "" {
		c.Project = overlay.Project
	}
	if overlay.Region != "" {
		c.Region = overlay.Region
	}
	if overlay.Detail != "" {
		c.Detail = overlay.Detail
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

// Model defaults depend on the provider, so env overrides load first.
func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderAgents
	}
	if c.Model == "" {
		switch c.Provider {
		case ProviderGemini, ProviderVertex:
			c.Model = "gemini-1.5-pro"
		default:
			c.Model = "gpt-4.1-mini"
		}
	}
	if c.AgentProvider == "" {
		c.AgentProvider = "openai"
	}
	if c.BaseURL == "" && c.Provider == ProviderAgents {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Region == "" {
		c.Region = "us-central1"
	}
	if c.Detail == "" {
		c.Detail = "high"
	}
	if c.Timeout == "" {
		c.Timeout = "2m"
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

	lookup(env.Provider, func(v string) { c.Provider = Provider(v) })
	lookup(env.Model, func(v string) { c.Model = v })
	lookup(env.AgentProvider, func(v string) { c.AgentProvider = v })
	lookup(env.BaseURL, func(v string) { c.BaseURL = v })
	lookup(env.Token, func(v string) { c.Token = v })
	lookup(env.Project, func(v string) { c.Project = v })
	lookup(env.Region, func(v string) { c.Region = v })
	lookup(env.Detail, func(v string) { c.Detail = v })
	lookup(env.Timeout, func(v string) { c.Timeout = v })
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderAgents, ProviderGemini:
	case ProviderVertex:
		if c.Project == "" {
			return fmt.Errorf("project required for vertex provider")
		}
	default:
		return fmt.Errorf("invalid provider: %s (must be agents, gemini, or vertex)", c.Provider)
	}

	switch c.Detail {
	case "low", "high", "auto":
	default:
		return fmt.Errorf("invalid detail: %s (must be low, high, or auto)", c.Detail)
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
