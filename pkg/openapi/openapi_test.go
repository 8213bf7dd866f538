package openapi_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/docudash/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("openapi version: got %s, want 3.1.0", spec.OpenAPI)
	}
	if spec.Info.Title != "Test API" {
		t.Errorf("title: got %s, want Test API", spec.Info.Title)
	}
	if spec.Components == nil || spec.Paths == nil {
		t.Fatal("components and paths should be initialized")
	}

	for _, name := range []string{"Error", "Pagination"} {
		if _, ok := spec.Components.Schemas[name]; !ok {
			t.Errorf("missing default schema: %s", name)
		}
	}
	for _, name := range []string{"BadRequest", "NotFound", "Conflict", "ServerError"} {
		if _, ok := spec.Components.Responses[name]; !ok {
			t.Errorf("missing default response: %s", name)
		}
	}
}

func TestAddOperation(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")
	get := &openapi.Operation{Summary: "get"}
	patch := &openapi.Operation{Summary: "patch"}

	spec.AddOperation("GET", "/documents/{id}", get)
	spec.AddOperation("patch", "/documents/{id}", patch)
	spec.AddOperation("TRACE", "/documents/{id}", &openapi.Operation{})

	item := spec.Paths["/documents/{id}"]
	if item.Get != get || item.Patch != patch {
		t.Errorf("operations not attached: %+v", item)
	}
}

func TestEnumParam(t *testing.T) {
	p := openapi.EnumParam("type", "Document type", "document", "slide")

	if p.In != "query" || p.Required {
		t.Errorf("param: in=%s required=%v", p.In, p.Required)
	}
	if len(p.Schema.Enum) != 2 || p.Schema.Enum[1] != "slide" {
		t.Errorf("enum: got %v", p.Schema.Enum)
	}
}

func TestRefs(t *testing.T) {
	if got := openapi.SchemaRef("Document").Ref; got != "#/components/schemas/Document" {
		t.Errorf("schema ref: got %s", got)
	}
	if got := openapi.ResponseRef("NotFound").Ref; got != "#/components/responses/NotFound" {
		t.Errorf("response ref: got %s", got)
	}

	rb := openapi.RequestBodyJSON("CreateDocumentRequest", true)
	if rb.Content["application/json"].Schema.Ref != "#/components/schemas/CreateDocumentRequest" {
		t.Error("request body ref mismatch")
	}
}

func TestServeAndWriteSpec(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")
	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	rec := httptest.NewRecorder()
	openapi.ServeSpec(data)(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	body, _ := io.ReadAll(rec.Body)
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if parsed["openapi"] != "3.1.0" {
		t.Errorf("openapi: got %v", parsed["openapi"])
	}

	path := filepath.Join(t.TempDir(), "openapi.json")
	if err := openapi.WriteJSON(spec, path); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("spec file missing: %v", err)
	}
}

func TestConfigFinalize(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "Custom")

	c := openapi.Config{}
	if err := c.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if c.Title != "Custom" {
		t.Errorf("title: got %s", c.Title)
	}
	if c.Description == "" {
		t.Error("description default not applied")
	}
}
