package preferences

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/docudash/pkg/handlers"
	"github.com/JaimeStill/docudash/pkg/openapi"
	"github.com/JaimeStill/docudash/pkg/routes"
)

// Response wraps the current preferences.
type Response struct {
	Success     bool        `json:"success"`
	Preferences Preferences `json:"preferences"`
}

// Handler provides HTTP endpoints for preferences.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxBodySize int64
}

// NewHandler creates a Handler for sys.
func NewHandler(sys System, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "preferences"),
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for preference endpoints.
func (h *Handler) Routes() routes.Group {
	ok := map[int]*openapi.Response{200: openapi.ResponseJSON("Current preferences", "PreferencesResponse")}
	enum := func(values ...any) *openapi.Schema {
		return &openapi.Schema{Type: "string", Enum: values}
	}

	return routes.Group{
		Prefix: "/preferences",
		Tags:   []string{"Preferences"},
		Schemas: map[string]*openapi.Schema{
			"Preferences": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"theme":          enum(ThemeLight, ThemeDark),
					"viewMode":       enum(ViewGrid, ViewList),
					"paginationMode": enum(PaginationInfinite, PaginationTraditional),
					"itemsPerPage":   {Type: "integer", Example: 12},
				},
			},
			"PreferencesResponse": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"success":     {Type: "boolean"},
					"preferences": openapi.SchemaRef("Preferences"),
				},
			},
		},
		Routes: []routes.Route{
			{
				Method: "GET", Pattern: "", Handler: h.Get,
				OpenAPI: &openapi.Operation{Summary: "Get preferences", Responses: ok},
			},
			{
				Method: "PUT", Pattern: "", Handler: h.Update,
				OpenAPI: &openapi.Operation{
					Summary:     "Update preferences",
					Description: "Fields omitted from the body keep their current value.",
					RequestBody: openapi.RequestBodyJSON("Preferences", true),
					Responses: map[int]*openapi.Response{
						200: ok[200],
						400: openapi.ResponseRef("BadRequest"),
					},
				},
			},
			{
				Method: "POST", Pattern: "/theme", Handler: h.ToggleTheme,
				OpenAPI: &openapi.Operation{Summary: "Toggle between light and dark theme", Responses: ok},
			},
		},
	}
}

// Get returns the current preferences.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.sys.Get())
}

// Update merges a partial preferences body.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var update Update
	if err := handlers.DecodeJSON(w, r, h.maxBodySize, &update); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrInvalid, err))
		return
	}

	prefs, err := h.sys.Update(r.Context(), update)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	h.respond(w, prefs)
}

// ToggleTheme flips the theme.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.sys.ToggleTheme(r.Context()))
}

func (h *Handler) respond(w http.ResponseWriter, prefs Preferences) {
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Preferences: prefs})
}
