package openapi

import "maps"

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("Error")},
		},
	}
}

// NewComponents creates Components with the shared error envelope and error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"success", "error"},
				Properties: map[string]*Schema{
					"success": {Type: "boolean", Example: false},
					"error":   {Type: "string", Description: "Error message"},
				},
			},
			"Pagination": {
				Type: "object",
				Properties: map[string]*Schema{
					"currentPage":  {Type: "integer", Description: "Page number (1-indexed)", Example: 1},
					"totalPages":   {Type: "integer", Example: 3},
					"totalItems":   {Type: "integer", Example: 30},
					"itemsPerPage": {Type: "integer", Example: 12},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":  errorResponse("Invalid request"),
			"NotFound":    errorResponse("Resource not found"),
			"Conflict":    errorResponse("Conflicting operation in progress"),
			"ServerError": errorResponse("Internal failure"),
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}
