package infrastructure_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/docudash/internal/config"
	"github.com/JaimeStill/docudash/internal/infrastructure"
	"github.com/JaimeStill/docudash/pkg/storage"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{Storage: storage.Config{Provider: storage.ProviderMemory}}
	require.NoError(t, cfg.Finalize())
	return cfg
}

func TestNew(t *testing.T) {
	infra, err := infrastructure.New(memoryConfig(t), infrastructure.Options{Output: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.NotNil(t, infra.Lifecycle)
	assert.NotNil(t, infra.Logger)
	assert.IsType(t, &storage.Memory{}, infra.Storage)

	families, err := infra.Metrics.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	require.NoError(t, infra.Start())
	infra.Lifecycle.WaitForStartup()
	assert.True(t, infra.Lifecycle.Ready())
}

func TestNewInvalidStorage(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Storage.Provider = "tape"

	_, err := infrastructure.New(cfg, infrastructure.Options{})
	assert.Error(t, err)
}

func TestLoggerVerbosity(t *testing.T) {
	var quiet, verbose bytes.Buffer

	infrastructure.NewLogger(infrastructure.Options{Output: &quiet}).Debug("hidden")
	infrastructure.NewLogger(infrastructure.Options{Output: &verbose, Verbose: true}).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "shown")
}
