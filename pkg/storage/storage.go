// Package storage provides key-value blob persistence with Azure Blob Storage,
// local filesystem, and in-memory implementations.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/docudash/pkg/lifecycle"
)

const (
	ProviderLocal  = "local"
	ProviderAzure  = "azure"
	ProviderMemory = "memory"
)

// System manages blob storage operations and lifecycle coordination.
type System interface {
	// Start registers a startup hook that prepares the backing container or directory.
	Start(lc *lifecycle.Coordinator) error
	// Put writes data to the blob at key, replacing any previous value.
	Put(ctx context.Context, key string, data []byte) error
	// Get returns the blob at key. Returns ErrNotFound if the blob does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes the blob at key. Returns ErrNotFound if the blob does not exist.
	Delete(ctx context.Context, key string) error
	// Exists reports whether a blob exists at key.
	Exists(ctx context.Context, key string) (bool, error)
}

// New creates a storage system for the configured provider.
// Remote clients are constructed here but not contacted until Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	logger = logger.With("system", "storage", "provider", cfg.Provider)

	switch cfg.Provider {
	case ProviderLocal:
		return newLocal(cfg.Path, logger), nil
	case ProviderAzure:
		return newAzure(cfg, logger)
	case ProviderMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}
