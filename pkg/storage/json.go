package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// Save serializes v as JSON and writes it under key.
// Failures are returned as *PersistenceError; callers treat them as best effort.
func Save(ctx context.Context, sys System, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &PersistenceError{Op: "encode", Key: key, Err: err}
	}
	if err := sys.Put(ctx, key, data); err != nil {
		return &PersistenceError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// Load reads and decodes the JSON value stored under key.
// A missing key or an unparsable value yields def; only the latter is logged.
func Load[T any](ctx context.Context, sys System, logger *slog.Logger, key string, def T) T {
	data, err := sys.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("stored value unreadable, using default", "key", key, "error", err)
		}
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("stored value malformed, using default", "key", key, "error", err)
		return def
	}
	return v
}
