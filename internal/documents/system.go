package documents

import (
	"context"

	"github.com/JaimeStill/docudash/internal/generation"
	"github.com/JaimeStill/docudash/pkg/lifecycle"
	"github.com/JaimeStill/docudash/pkg/pagination"
)

// Generator produces document content. *generation.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) (generation.Result, error)
}

// System defines the public contract for document domain operations.
// Reads return copies; the store keeps exclusive ownership of the collection.
type System interface {
	Handler(maxBodySize int64) *Handler

	// Start loads the collection during lifecycle startup and gates readiness on it.
	Start(lc *lifecycle.Coordinator)
	// Initialize loads the persisted collection, or the seed set when none is
	// stored. Only the first call has any effect.
	Initialize(ctx context.Context)
	Ready() bool

	Create(ctx context.Context, req CreateRequest) (CreateResult, error)
	Get(id string) (Document, bool)
	Update(ctx context.Context, id string, cmd UpdateCommand) (Document, error)
	Delete(ctx context.Context, id string) bool

	// Query is a stateless listing that does not touch the session view.
	Query(search SearchState, page pagination.PageRequest) pagination.PageResult[Document]

	View() View
	UpdateSearch(update SearchUpdate) (View, error)
	UpdatePagination(update PaginationUpdate) (View, error)
	LoadMore() View
	ClearError() View
}
