package documents

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config tunes the document store.
type Config struct {
	BatchSize      int    `toml:"batch_size"`
	SkipSeed       bool   `toml:"skip_seed"`
	PersistTimeout string `toml:"persist_timeout"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	BatchSize      string
	SkipSeed       string
	PersistTimeout string
}

// PersistTimeoutDuration returns PersistTimeout as a time.Duration.
func (c *Config) PersistTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.PersistTimeout)
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

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.BatchSize != 0 {
		c.BatchSize = overlay.BatchSize
	}
	if overlay.SkipSeed {
		c.SkipSeed = true
	}
	if overlay.PersistTimeout != "" {
		c.PersistTimeout = overlay.PersistTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.BatchSize <= 0 {
		c.BatchSize = 12
	}
	if c.PersistTimeout == "" {
		c.PersistTimeout = "10s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BatchSize != "" {
		if v := os.Getenv(env.BatchSize); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.BatchSize = n
			}
		}
	}
	if env.SkipSeed != "" {
		if v := os.Getenv(env.SkipSeed); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.SkipSeed = b
			}
		}
	}
	if env.PersistTimeout != "" {
		if v := os.Getenv(env.PersistTimeout); v != "" {
			c.PersistTimeout = v
		}
	}
}

func (c *Config) validate() error {
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be positive")
	}
	if d, err := time.ParseDuration(c.PersistTimeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid persist_timeout %q", c.PersistTimeout)
	}
	return nil
}
