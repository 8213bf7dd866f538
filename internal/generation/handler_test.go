package generation_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/docudash/internal/generation"
	"github.com/JaimeStill/docudash/pkg/routes"
)

func TestHandlerList(t *testing.T) {
	backend := generation.BackendFunc(func(_ context.Context, model, _ string) (string, error) {
		if model == "bravo" {
			return "ok", nil
		}
		return "", io.ErrUnexpectedEOF
	})
	client := generation.NewClient(backend, testModels)
	_, err := client.Generate(context.Background(), req)
	require.NoError(t, err)

	mux := http.NewServeMux()
	h := generation.NewHandler(client, slog.New(slog.NewTextHandler(io.Discard, nil)))
	routes.Register(mux, h.Routes())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/ai-models", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body generation.ModelsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, testModels, body.Models)
	assert.Equal(t, "bravo", body.CurrentModel.ID)
}

func TestHandlerJSONShape(t *testing.T) {
	client := generation.NewClient(&scripted{}, testModels)
	h := generation.NewHandler(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/ai-models", nil))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	current := raw["currentModel"].(map[string]any)
	assert.Equal(t, "alpha", current["model"])
	assert.Equal(t, "Alpha", current["name"])
	assert.Equal(t, true, current["available"])
}
