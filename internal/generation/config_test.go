package generation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/docudash/internal/generation"
)

func TestConfigDefaults(t *testing.T) {
	c := generation.Config{}
	require.NoError(t, c.Finalize(nil))

	assert.Equal(t, generation.ProviderLorem, c.Provider)
	assert.Equal(t, 60*time.Second, c.AttemptTimeoutDuration())
	assert.Equal(t, generation.DefaultModels(), c.Models)
	assert.Len(t, c.Models, 6)
	assert.Equal(t, "gemini-2.5-flash", c.Models[0].ID)
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("TEST_GEN_PROVIDER", "gemini")
	t.Setenv("TEST_GEN_PROJECT", "demo-project")
	t.Setenv("TEST_GEN_TIMEOUT", "5s")

	c := generation.Config{}
	require.NoError(t, c.Finalize(&generation.Env{
		Provider:       "TEST_GEN_PROVIDER",
		GeminiProject:  "TEST_GEN_PROJECT",
		AttemptTimeout: "TEST_GEN_TIMEOUT",
	}))

	assert.Equal(t, generation.ProviderGemini, c.Provider)
	assert.Equal(t, "demo-project", c.Gemini.Project)
	assert.Equal(t, "us-central1", c.Gemini.Region)
	assert.Equal(t, 5*time.Second, c.AttemptTimeoutDuration())
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  generation.Config
	}{
		{"gemini without project", generation.Config{Provider: generation.ProviderGemini}},
		{"openai without credentials", generation.Config{Provider: generation.ProviderOpenAI}},
		{"unknown provider", generation.Config{Provider: "claude"}},
		{"bad timeout", generation.Config{AttemptTimeout: "soon"}},
		{"model without id", generation.Config{Models: []generation.Model{{Name: "x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Finalize(nil))
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := generation.Config{Provider: "lorem", Models: generation.DefaultModels()}
	base.Merge(&generation.Config{
		Provider: "openai",
		Models:   []generation.Model{{Name: "Local", ID: "llama3", Available: true}},
		OpenAI:   generation.OpenAIConfig{BaseURL: "http://localhost:11434/v1"},
	})

	assert.Equal(t, "openai", base.Provider)
	assert.Len(t, base.Models, 1)
	assert.Equal(t, "http://localhost:11434/v1", base.OpenAI.BaseURL)
}

func TestNewBackendLorem(t *testing.T) {
	c := generation.Config{}
	require.NoError(t, c.Finalize(nil))

	backend, err := generation.NewBackend(context.Background(), &c)
	require.NoError(t, err)

	out, err := backend.Generate(context.Background(), "gemini-2.5-flash", "prompt")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "# ")
}

func TestLoremHonorsContext(t *testing.T) {
	backend := generation.NewLorem(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := backend.Generate(ctx, "any", "prompt")
	assert.ErrorIs(t, err, context.Canceled)
}
