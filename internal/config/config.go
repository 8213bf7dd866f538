// Package config assembles the service configuration from config.toml,
// an optional config.<env>.toml overlay, and DOCUDASH_ environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/docudash/internal/documents"
	"github.com/JaimeStill/docudash/internal/generation"
	"github.com/JaimeStill/docudash/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvDocudashEnv             = "DOCUDASH_ENV"
	EnvDocudashShutdownTimeout = "DOCUDASH_SHUTDOWN_TIMEOUT"
	EnvDocudashVersion         = "DOCUDASH_VERSION"
)

var storageEnv = &storage.Env{
	Provider:         "DOCUDASH_STORAGE_PROVIDER",
	Path:             "DOCUDASH_STORAGE_PATH",
	ContainerName:    "DOCUDASH_STORAGE_CONTAINER_NAME",
	ConnectionString: "DOCUDASH_STORAGE_CONNECTION_STRING",
	AccountURL:       "DOCUDASH_STORAGE_ACCOUNT_URL",
}

var generationEnv = &generation.Env{
	Provider:       "DOCUDASH_GENERATION_PROVIDER",
	AttemptTimeout: "DOCUDASH_GENERATION_ATTEMPT_TIMEOUT",
	GeminiProject:  "DOCUDASH_GEMINI_PROJECT",
	GeminiRegion:   "DOCUDASH_GEMINI_REGION",
	OpenAIAPIKey:   "DOCUDASH_OPENAI_API_KEY",
	OpenAIBaseURL:  "DOCUDASH_OPENAI_BASE_URL",
}

var storeEnv = &documents.Env{
	BatchSize:      "DOCUDASH_STORE_BATCH_SIZE",
	SkipSeed:       "DOCUDASH_STORE_SKIP_SEED",
	PersistTimeout: "DOCUDASH_STORE_PERSIST_TIMEOUT",
}

// Config is the root configuration for the docudash service.
type Config struct {
	Server          ServerConfig      `toml:"server"`
	API             APIConfig         `toml:"api"`
	Storage         storage.Config    `toml:"storage"`
	Generation      generation.Config `toml:"generation"`
	Store           documents.Config  `toml:"store"`
	ShutdownTimeout string            `toml:"shutdown_timeout"`
	Version         string            `toml:"version"`
}

// Env returns the DOCUDASH_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvDocudashEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config at path (config.toml when empty), applies the
// overlay for DOCUDASH_ENV found beside it, and finalizes all values.
// A missing base file leaves defaults and environment variables in charge.
func Load(path string) (*Config, error) {
	if path == "" {
		path = BaseConfigFile
	}

	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		loaded, err := load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if overlay := overlayPath(path); overlay != "" {
		o, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(o)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Storage.Merge(&overlay.Storage)
	c.Generation.Merge(&overlay.Generation)
	c.Store.Merge(&overlay.Store)
}

// Finalize applies defaults, environment overrides and validation to
// every section.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Generation.Finalize(generationEnv); err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	if err := c.Store.Finalize(storeEnv); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvDocudashShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvDocudashVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(base string) string {
	env := os.Getenv(EnvDocudashEnv)
	if env == "" {
		return ""
	}
	path := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, env))
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
