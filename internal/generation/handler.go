package generation

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/docudash/pkg/handlers"
	"github.com/JaimeStill/docudash/pkg/openapi"
	"github.com/JaimeStill/docudash/pkg/routes"
)

// ModelsResponse lists the ranked chain and the model at the fallback cursor.
type ModelsResponse struct {
	Success      bool    `json:"success"`
	Models       []Model `json:"models"`
	CurrentModel Model   `json:"currentModel"`
}

// Handler exposes the model chain over HTTP.
type Handler struct {
	client *Client
	logger *slog.Logger
}

// NewHandler creates a Handler for client.
func NewHandler(client *Client, logger *slog.Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger.With("handler", "generation"),
	}
}

// Routes returns the route group definition for model endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/ai-models",
		Tags:   []string{"Models"},
		Schemas: map[string]*openapi.Schema{
			"Model": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"name":      {Type: "string", Example: "Gemini 2.5 Flash"},
					"model":     {Type: "string", Example: "gemini-2.5-flash"},
					"available": {Type: "boolean"},
				},
			},
			"ModelsResponse": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"success":      {Type: "boolean"},
					"models":       {Type: "array", Items: openapi.SchemaRef("Model")},
					"currentModel": openapi.SchemaRef("Model"),
				},
			},
		},
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "",
				Handler: h.List,
				OpenAPI: &openapi.Operation{
					Summary:   "List generation models in fallback order",
					Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("Model chain", "ModelsResponse")},
				},
			},
		},
	}
}

// List returns the ranked model chain and the current cursor model.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ModelsResponse{
		Success:      true,
		Models:       h.client.Models(),
		CurrentModel: h.client.Current(),
	})
}
