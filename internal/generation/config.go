package generation

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderLorem  = "lorem"
)

// Config selects the backend and the ranked model chain.
type Config struct {
	Provider       string       `toml:"provider"`
	AttemptTimeout string       `toml:"attempt_timeout"`
	LoremDelay     string       `toml:"lorem_delay"`
	Models         []Model      `toml:"models"`
	Gemini         GeminiConfig `toml:"gemini"`
	OpenAI         OpenAIConfig `toml:"openai"`
}

// GeminiConfig locates the Vertex AI project.
type GeminiConfig struct {
	Project string `toml:"project"`
	Region  string `toml:"region"`
}

// OpenAIConfig holds credentials for an OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Provider       string
	AttemptTimeout string
	GeminiProject  string
	GeminiRegion   string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
}

// AttemptTimeoutDuration returns AttemptTimeout as a time.Duration.
func (c *Config) AttemptTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.AttemptTimeout)
	return d
}

// LoremDelayDuration returns LoremDelay as a time.Duration.
func (c *Config) LoremDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.LoremDelay)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay. A non-empty overlay model
// list replaces the base list.
func (c *Config) Merge(overlay *Config) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.AttemptTimeout != "" {
		c.AttemptTimeout = overlay.AttemptTimeout
	}
	if overlay.LoremDelay != "" {
		c.LoremDelay = overlay.LoremDelay
	}
	if len(overlay.Models) > 0 {
		c.Models = slices.Clone(overlay.Models)
	}
	if overlay.Gemini.Project != "" {
		c.Gemini.Project = overlay.Gemini.Project
	}
	if overlay.Gemini.Region != "" {
		c.Gemini.Region = overlay.Gemini.Region
	}
	if overlay.OpenAI.APIKey != "" {
		c.OpenAI.APIKey = overlay.OpenAI.APIKey
	}
	if overlay.OpenAI.BaseURL != "" {
		c.OpenAI.BaseURL = overlay.OpenAI.BaseURL
	}
}

func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderLorem
	}
	if c.AttemptTimeout == "" {
		c.AttemptTimeout = "60s"
	}
	if c.LoremDelay == "" {
		c.LoremDelay = "0s"
	}
	if len(c.Models) == 0 {
		c.Models = DefaultModels()
	}
	if c.Gemini.Region == "" {
		c.Gemini.Region = "us-central1"
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(name string, target *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*target = v
		}
	}

	set(env.Provider, &c.Provider)
	set(env.AttemptTimeout, &c.AttemptTimeout)
	set(env.GeminiProject, &c.Gemini.Project)
	set(env.GeminiRegion, &c.Gemini.Region)
	set(env.OpenAIAPIKey, &c.OpenAI.APIKey)
	set(env.OpenAIBaseURL, &c.OpenAI.BaseURL)
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.AttemptTimeout); err != nil {
		return fmt.Errorf("invalid attempt_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.LoremDelay); err != nil {
		return fmt.Errorf("invalid lorem_delay: %w", err)
	}
	for i, m := range c.Models {
		if m.ID == "" {
			return fmt.Errorf("models[%d]: model required", i)
		}
	}

	switch c.Provider {
	case ProviderGemini:
		if c.Gemini.Project == "" {
			return fmt.Errorf("gemini project required")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" && c.OpenAI.BaseURL == "" {
			return fmt.Errorf("openai api_key or base_url required")
		}
	case ProviderLorem:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}

// NewBackend constructs the configured backend.
func NewBackend(ctx context.Context, cfg *Config) (Backend, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGemini(ctx, cfg.Gemini.Project, cfg.Gemini.Region)
	case ProviderOpenAI:
		return NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL), nil
	case ProviderLorem:
		return NewLorem(cfg.LoremDelayDuration()), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
