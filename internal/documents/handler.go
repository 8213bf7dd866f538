package documents

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/docudash/internal/generation"
	"github.com/JaimeStill/docudash/pkg/handlers"
	"github.com/JaimeStill/docudash/pkg/openapi"
	"github.com/JaimeStill/docudash/pkg/pagination"
	"github.com/JaimeStill/docudash/pkg/routes"
)

// CreateResponse is returned when a document is generated and stored.
type CreateResponse struct {
	Success  bool             `json:"success"`
	Content  string           `json:"content"`
	Model    generation.Model `json:"model"`
	Document Document         `json:"document"`
}

// ListResponse is one page of a stateless document listing.
type ListResponse struct {
	Success    bool            `json:"success"`
	Documents  []Document      `json:"documents"`
	Pagination pagination.Meta `json:"pagination"`
}

// DocumentResponse wraps a single document.
type DocumentResponse struct {
	Success  bool     `json:"success"`
	Document Document `json:"document"`
}

// ViewResponse wraps the session view.
type ViewResponse struct {
	Success bool `json:"success"`
	View
}

// Handler provides HTTP endpoints for document operations.
type Handler struct {
	sys         System
	logger      *slog.Logger
	pagination  pagination.Config
	maxBodySize int64
}

// NewHandler creates a Handler with the given system, logger, pagination config, and body size limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxBodySize int64,
) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "documents"),
		pagination:  pagination,
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for document endpoints.
func (h *Handler) Routes() routes.Group {
	id := openapi.PathParam("id", "Document ID")
	id.Schema = &openapi.Schema{Type: "string"}

	return routes.Group{
		Prefix:  "/documents",
		Tags:    []string{"Documents"},
		Schemas: schemas(),
		Routes: []routes.Route{
			{
				Method: "GET", Pattern: "", Handler: h.List,
				OpenAPI: &openapi.Operation{
					Summary: "List documents",
					Parameters: []*openapi.Parameter{
						openapi.QueryParam("search", "string", "Matches title, content and tags", false),
						openapi.EnumParam("type", "Document type", All, string(TypeDocument), string(TypeSlide), string(TypeSpreadsheet)),
						openapi.EnumParam("category", "Document category", All, string(CategoryBusiness), string(CategoryPersonal), string(CategoryAcademic)),
						openapi.QueryParam("from", "string", "Earliest createdAt (RFC 3339)", false),
						openapi.QueryParam("to", "string", "Latest createdAt (RFC 3339)", false),
						openapi.EnumParam("sortBy", "Sort field", string(SortCreatedAt), string(SortTitle), string(SortType)),
						openapi.EnumParam("sortOrder", "Sort direction", string(SortDesc), string(SortAsc)),
						openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
						openapi.QueryParam("limit", "integer", "Items per page", false),
					},
					Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("Document page", "ListResponse")},
				},
			},
			{
				Method: "POST", Pattern: "", Handler: h.Create,
				OpenAPI: &openapi.Operation{
					Summary:     "Generate and store a document",
					RequestBody: openapi.RequestBodyJSON("CreateRequest", true),
					Responses: map[int]*openapi.Response{
						201: openapi.ResponseJSON("Generated document", "CreateResponse"),
						400: openapi.ResponseRef("BadRequest"),
						409: openapi.ResponseRef("Conflict"),
						500: openapi.ResponseRef("ServerError"),
					},
				},
			},
			{
				Method: "GET", Pattern: "/view", Handler: h.View,
				OpenAPI: &openapi.Operation{
					Summary:   "Current session view",
					Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("Session view", "ViewResponse")},
				},
			},
			{
				Method: "PUT", Pattern: "/search", Handler: h.Search,
				OpenAPI: &openapi.Operation{
					Summary:     "Update the session search",
					Description: "Changing the query or filters returns the view to its first page and batch.",
					RequestBody: openapi.RequestBodyJSON("SearchUpdate", true),
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Session view", "ViewResponse"),
						400: openapi.ResponseRef("BadRequest"),
					},
				},
			},
			{
				Method: "PUT", Pattern: "/pagination", Handler: h.Paginate,
				OpenAPI: &openapi.Operation{
					Summary:     "Update the session page window",
					RequestBody: openapi.RequestBodyJSON("PaginationUpdate", true),
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Session view", "ViewResponse"),
						400: openapi.ResponseRef("BadRequest"),
					},
				},
			},
			{
				Method: "POST", Pattern: "/load-more", Handler: h.LoadMore,
				OpenAPI: &openapi.Operation{
					Summary:   "Extend the infinite-scroll batch",
					Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("Session view", "ViewResponse")},
				},
			},
			{
				Method: "DELETE", Pattern: "/error", Handler: h.ClearError,
				OpenAPI: &openapi.Operation{
					Summary:   "Clear the last creation error",
					Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("Session view", "ViewResponse")},
				},
			},
			{
				Method: "GET", Pattern: "/{id}", Handler: h.Find,
				OpenAPI: &openapi.Operation{
					Summary:    "Find a document",
					Parameters: []*openapi.Parameter{id},
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Document", "DocumentResponse"),
						404: openapi.ResponseRef("NotFound"),
					},
				},
			},
			{
				Method: "PATCH", Pattern: "/{id}", Handler: h.Update,
				OpenAPI: &openapi.Operation{
					Summary:     "Update a document's title or content",
					Parameters:  []*openapi.Parameter{id},
					RequestBody: openapi.RequestBodyJSON("UpdateCommand", true),
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Updated document", "DocumentResponse"),
						400: openapi.ResponseRef("BadRequest"),
						404: openapi.ResponseRef("NotFound"),
					},
				},
			},
			{
				Method: "DELETE", Pattern: "/{id}", Handler: h.Delete,
				OpenAPI: &openapi.Operation{
					Summary:    "Delete a document",
					Parameters: []*openapi.Parameter{id},
					Responses:  map[int]*openapi.Response{204: {Description: "Deleted or already absent"}},
				},
			},
		},
	}
}

// List returns a page of documents filtered by query parameters.
// It reads the collection without touching the session view.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	page := pagination.PageRequestFromQuery(values, h.pagination)

	result := h.sys.Query(SearchFromQuery(values), page)

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Success:    true,
		Documents:  result.Data,
		Pagination: result.Pagination,
	})
}

// Create generates a document from the JSON request body and stores it.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := handlers.DecodeJSON(w, r, h.maxBodySize, &req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrValidation, err))
		return
	}

	result, err := h.sys.Create(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, CreateResponse{
		Success:  true,
		Content:  result.Document.Content,
		Model:    result.Model,
		Document: result.Document,
	})
}

// Find returns a single document by its id path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.sys.Get(r.PathValue("id"))
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DocumentResponse{Success: true, Document: doc})
}

// Update applies a partial title or content change.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := handlers.DecodeJSON(w, r, h.maxBodySize, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrValidation, err))
		return
	}

	doc, err := h.sys.Update(r.Context(), r.PathValue("id"), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DocumentResponse{Success: true, Document: doc})
}

// Delete removes a document. Unknown ids also succeed.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.sys.Delete(r.Context(), r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// View returns the session view.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	h.respondView(w, h.sys.View())
}

// Search merges a partial search state into the session.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var update SearchUpdate
	if err := handlers.DecodeJSON(w, r, h.maxBodySize, &update); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrValidation, err))
		return
	}

	view, err := h.sys.UpdateSearch(update)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	h.respondView(w, view)
}

// Paginate merges a partial pagination state into the session.
func (h *Handler) Paginate(w http.ResponseWriter, r *http.Request) {
	var update PaginationUpdate
	if err := handlers.DecodeJSON(w, r, h.maxBodySize, &update); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrValidation, err))
		return
	}

	view, err := h.sys.UpdatePagination(update)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	h.respondView(w, view)
}

// LoadMore extends the infinite-scroll batch by one increment.
func (h *Handler) LoadMore(w http.ResponseWriter, r *http.Request) {
	h.respondView(w, h.sys.LoadMore())
}

// ClearError dismisses the last creation failure.
func (h *Handler) ClearError(w http.ResponseWriter, r *http.Request) {
	h.respondView(w, h.sys.ClearError())
}

func (h *Handler) respondView(w http.ResponseWriter, view View) {
	handlers.RespondJSON(w, http.StatusOK, ViewResponse{Success: true, View: view})
}

func schemas() map[string]*openapi.Schema {
	str := func(desc string) *openapi.Schema {
		return &openapi.Schema{Type: "string", Description: desc}
	}
	docs := &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Document")}
	minPrompt := MinPromptLength

	return map[string]*openapi.Schema{
		"Document": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          str("Document ID"),
				"title":       str("Title"),
				"type":        {Type: "string", Enum: []any{"document", "slide", "spreadsheet"}},
				"category":    {Type: "string", Enum: []any{"business", "personal", "academic"}},
				"content":     str("Generated text"),
				"createdAt":   {Type: "string", Format: "date-time"},
				"aiGenerated": {Type: "boolean"},
				"tags":        {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"CreateRequest": {
			Type:     "object",
			Required: []string{"title", "type", "prompt", "category"},
			Properties: map[string]*openapi.Schema{
				"title":    str("Document title"),
				"type":     {Type: "string", Enum: []any{"document", "slide", "spreadsheet"}},
				"prompt":   {Type: "string", MinLength: &minPrompt},
				"category": {Type: "string", Enum: []any{"business", "personal", "academic"}},
			},
		},
		"CreateResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success":  {Type: "boolean"},
				"content":  str("Cleaned generated text"),
				"model":    openapi.SchemaRef("Model"),
				"document": openapi.SchemaRef("Document"),
			},
		},
		"ListResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success":    {Type: "boolean"},
				"documents":  docs,
				"pagination": openapi.SchemaRef("Pagination"),
			},
		},
		"DocumentResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success":  {Type: "boolean"},
				"document": openapi.SchemaRef("Document"),
			},
		},
		"UpdateCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"title":   str("New title"),
				"content": str("New content"),
			},
		},
		"SearchUpdate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"query": str("Search text"),
				"filters": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"type":     str("Document type or \"all\""),
						"category": str("Document category or \"all\""),
						"dateRange": {
							Type: "object",
							Properties: map[string]*openapi.Schema{
								"start": {Type: "string", Format: "date-time"},
								"end":   {Type: "string", Format: "date-time"},
							},
						},
					},
				},
				"sortBy":    {Type: "string", Enum: []any{"createdAt", "title", "type"}},
				"sortOrder": {Type: "string", Enum: []any{"asc", "desc"}},
			},
		},
		"PaginationUpdate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"currentPage":  {Type: "integer"},
				"itemsPerPage": {Type: "integer"},
			},
		},
		"ViewResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success":        {Type: "boolean"},
				"documents":      docs,
				"page":           docs,
				"hasMore":        {Type: "boolean"},
				"batch":          {Type: "integer"},
				"pagination":     openapi.SchemaRef("Pagination"),
				"totalDocuments": {Type: "integer"},
				"isLoading":      {Type: "boolean"},
				"error":          str("Last creation failure"),
			},
		},
	}
}
