package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/docudash/pkg/formatting"
	"github.com/JaimeStill/docudash/pkg/middleware"
	"github.com/JaimeStill/docudash/pkg/openapi"
	"github.com/JaimeStill/docudash/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "DOCUDASH_CORS_ENABLED",
	Origins:          "DOCUDASH_CORS_ORIGINS",
	AllowedMethods:   "DOCUDASH_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "DOCUDASH_CORS_ALLOWED_HEADERS",
	AllowCredentials: "DOCUDASH_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "DOCUDASH_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "DOCUDASH_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "DOCUDASH_PAGINATION_MAX_PAGE_SIZE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "DOCUDASH_OPENAPI_TITLE",
	Description: "DOCUDASH_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, request limits, CORS, OpenAPI and pagination settings.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	OpenAPI     openapi.Config        `toml:"openapi"`
	Pagination  pagination.Config     `toml:"pagination"`
}

// MaxBodySizeBytes returns MaxBodySize as a byte count.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 1 << 20
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if _, err := formatting.ParseBytes(c.MaxBodySize); err != nil {
		return fmt.Errorf("max_body_size: %w", err)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("DOCUDASH_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("DOCUDASH_API_MAX_BODY_SIZE"); v != "" {
		c.MaxBodySize = v
	}
}
