// Package documents implements the document domain for docudash.
// It owns the document collection, the search and pagination view
// derived from it, and creation through the generation fallback chain.
package documents

import (
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/JaimeStill/docudash/internal/generation"
)

// CollectionKey is the blob storage key holding the persisted collection.
const CollectionKey = "documents"

// MinPromptLength is the minimum prompt length in characters.
const MinPromptLength = 10

// Type is the kind of artifact a document represents.
type Type string

const (
	TypeDocument    Type = "document"
	TypeSlide       Type = "slide"
	TypeSpreadsheet Type = "spreadsheet"
)

// Category is the audience a document is written for.
type Category string

const (
	CategoryBusiness Category = "business"
	CategoryPersonal Category = "personal"
	CategoryAcademic Category = "academic"
)

// All disables a type or category filter.
const All = "all"

// Types lists every document type.
func Types() []Type {
	return []Type{TypeDocument, TypeSlide, TypeSpreadsheet}
}

// Categories lists every document category.
func Categories() []Category {
	return []Category{CategoryBusiness, CategoryPersonal, CategoryAcademic}
}

// Document is a generated or seeded artifact owned by the store.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        Type      `json:"type"`
	Category    Category  `json:"category"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	AIGenerated bool      `json:"aiGenerated"`
	Tags        []string  `json:"tags"`
}

func (d Document) clone() Document {
	if d.Tags == nil {
		d.Tags = []string{}
	} else {
		d.Tags = slices.Clone(d.Tags)
	}
	return d
}

// CreateRequest carries the user input for a new generated document.
type CreateRequest struct {
	Title    string   `json:"title"`
	Type     Type     `json:"type"`
	Prompt   string   `json:"prompt"`
	Category Category `json:"category"`
}

// Validate checks that every field is present, the prompt is long
// enough, and type and category are known values.
func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Type, validation.Required, validation.In(TypeDocument, TypeSlide, TypeSpreadsheet)),
		validation.Field(&r.Prompt, validation.Required, validation.Length(MinPromptLength, 0)),
		validation.Field(&r.Category, validation.Required, validation.In(CategoryBusiness, CategoryPersonal, CategoryAcademic)),
	)
}

func (r CreateRequest) normalize() CreateRequest {
	r.Title = strings.TrimSpace(r.Title)
	r.Prompt = strings.TrimSpace(r.Prompt)
	return r
}

func (r CreateRequest) generationRequest() generation.Request {
	return generation.Request{
		Title:    r.Title,
		Type:     string(r.Type),
		Category: string(r.Category),
		Prompt:   r.Prompt,
	}
}

// CreateResult is a stored document together with the model that wrote it.
type CreateResult struct {
	Document Document
	Model    generation.Model
}

// UpdateCommand holds the mutable fields of a document. Nil fields are left unchanged.
type UpdateCommand struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// Validate rejects a blank title when one is provided.
func (c UpdateCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
	)
}

func (c UpdateCommand) normalize() UpdateCommand {
	if c.Title != nil {
		title := strings.TrimSpace(*c.Title)
		c.Title = &title
	}
	return c
}

func (c UpdateCommand) apply(d *Document) {
	if c.Title != nil {
		d.Title = *c.Title
	}
	if c.Content != nil {
		d.Content = *c.Content
	}
}
