package documents_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/docudash/internal/documents"
	"github.com/JaimeStill/docudash/internal/generation"
	"github.com/JaimeStill/docudash/pkg/lifecycle"
	"github.com/JaimeStill/docudash/pkg/pagination"
	"github.com/JaimeStill/docudash/pkg/storage"
)

var models = []generation.Model{
	{Name: "Alpha", ID: "alpha", Available: true},
	{Name: "Bravo", ID: "bravo", Available: true},
}

var budgetPlan = documents.CreateRequest{
	Title:    "Budget Plan",
	Type:     documents.TypeSpreadsheet,
	Category: documents.CategoryBusiness,
	Prompt:   "Generate a budget tracking template with income and expense categories",
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func answer(text string) generation.Backend {
	return generation.BackendFunc(func(context.Context, string, string) (string, error) {
		return text, nil
	})
}

func failing() generation.Backend {
	return generation.BackendFunc(func(context.Context, string, string) (string, error) {
		return "", errors.New("quota exceeded")
	})
}

type fixture struct {
	sys   documents.System
	blobs *storage.Memory
}

// newFixture builds an initialized store with a page size and batch size of 2.
func newFixture(t *testing.T, backend generation.Backend) fixture {
	t.Helper()

	blobs := storage.NewMemory()
	sys := newStore(backend, blobs)
	sys.Initialize(context.Background())
	require.True(t, sys.Ready())

	return fixture{sys: sys, blobs: blobs}
}

func newStore(backend generation.Backend, blobs storage.System) documents.System {
	client := generation.NewClient(backend, models)
	return documents.New(
		client,
		blobs,
		discard(),
		pagination.Config{DefaultPageSize: 2, MaxPageSize: 50},
		documents.Config{BatchSize: 2, PersistTimeout: "1s"},
	)
}

func persisted(t *testing.T, blobs storage.System) []documents.Document {
	t.Helper()
	return storage.Load[[]documents.Document](context.Background(), blobs, discard(), documents.CollectionKey, nil)
}

func TestInitializeSeeds(t *testing.T) {
	blobs := storage.NewMemory()
	sys := newStore(answer("x"), blobs)

	assert.False(t, sys.Ready())
	assert.Equal(t, 0, sys.View().TotalDocuments)

	sys.Initialize(context.Background())

	assert.True(t, sys.Ready())
	assert.Equal(t, 5, sys.View().TotalDocuments)
	assert.Equal(t, 0, blobs.Puts())
}

func TestInitializeLoadsPersisted(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemory()
	stored := []documents.Document{{ID: "only", Title: "Stored", Type: documents.TypeSlide, Category: documents.CategoryPersonal}}
	require.NoError(t, storage.Save(ctx, blobs, documents.CollectionKey, stored))

	sys := newStore(answer("x"), blobs)
	sys.Initialize(ctx)

	doc, ok := sys.Get("only")
	require.True(t, ok)
	assert.Equal(t, "Stored", doc.Title)
	assert.Equal(t, []string{}, doc.Tags)
	assert.Equal(t, 1, sys.View().TotalDocuments)
}

func TestInitializeMalformedFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemory()
	require.NoError(t, blobs.Put(ctx, documents.CollectionKey, []byte(`{"broken":`)))

	sys := newStore(answer("x"), blobs)
	sys.Initialize(ctx)

	assert.Equal(t, 5, sys.View().TotalDocuments)
}

func TestInitializeSkipSeed(t *testing.T) {
	sys := documents.New(
		generation.NewClient(answer("x"), models),
		storage.NewMemory(),
		discard(),
		pagination.Config{DefaultPageSize: 2, MaxPageSize: 50},
		documents.Config{BatchSize: 2, PersistTimeout: "1s", SkipSeed: true},
	)
	sys.Initialize(context.Background())

	assert.True(t, sys.Ready())
	assert.Equal(t, 0, sys.View().TotalDocuments)
}

func TestInitializeRunsOnce(t *testing.T) {
	f := newFixture(t, answer("x"))
	require.True(t, f.sys.Delete(context.Background(), "1"))

	f.sys.Initialize(context.Background())

	assert.Equal(t, 4, f.sys.View().TotalDocuments)
}

func TestStartGatesReadiness(t *testing.T) {
	sys := newStore(answer("x"), storage.NewMemory())
	lc := lifecycle.New()

	sys.Start(lc)
	lc.WaitForStartup()

	assert.True(t, sys.Ready())
	assert.True(t, lc.Ready())
}

func TestCreate(t *testing.T) {
	f := newFixture(t, answer("Income\nExpenses\n..."))

	result, err := f.sys.Create(context.Background(), budgetPlan)
	require.NoError(t, err)

	doc := result.Document
	_, err = uuid.Parse(doc.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Budget Plan", doc.Title)
	assert.Equal(t, documents.TypeSpreadsheet, doc.Type)
	assert.Equal(t, documents.CategoryBusiness, doc.Category)
	assert.Equal(t, "Income\nExpenses\n...", doc.Content)
	assert.True(t, doc.AIGenerated)
	assert.False(t, doc.CreatedAt.IsZero())
	assert.Equal(t, []string{"budget", "plan", "tracking", "template", "business"}, doc.Tags)
	assert.Equal(t, "alpha", result.Model.ID)

	view := f.sys.View()
	assert.Equal(t, 6, view.TotalDocuments)
	assert.Equal(t, doc.ID, view.Documents[0].ID)
	assert.False(t, view.IsLoading)
	assert.Empty(t, view.Error)

	stored := persisted(t, f.blobs)
	require.Len(t, stored, 6)
	assert.Equal(t, doc.ID, stored[0].ID)
}

func TestCreateTrimsInput(t *testing.T) {
	f := newFixture(t, answer("body"))
	req := budgetPlan
	req.Title = "  Budget Plan  "

	result, err := f.sys.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Budget Plan", result.Document.Title)
}

func TestCreateValidation(t *testing.T) {
	calls := 0
	backend := generation.BackendFunc(func(context.Context, string, string) (string, error) {
		calls++
		return "text", nil
	})
	f := newFixture(t, backend)

	tests := []struct {
		name   string
		modify func(*documents.CreateRequest)
	}{
		{"missing title", func(r *documents.CreateRequest) { r.Title = "" }},
		{"blank title", func(r *documents.CreateRequest) { r.Title = "   " }},
		{"missing type", func(r *documents.CreateRequest) { r.Type = "" }},
		{"unknown type", func(r *documents.CreateRequest) { r.Type = "memo" }},
		{"missing category", func(r *documents.CreateRequest) { r.Category = "" }},
		{"unknown category", func(r *documents.CreateRequest) { r.Category = "legal" }},
		{"missing prompt", func(r *documents.CreateRequest) { r.Prompt = "" }},
		{"short prompt", func(r *documents.CreateRequest) { r.Prompt = "too short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := budgetPlan
			tt.modify(&req)

			_, err := f.sys.Create(context.Background(), req)
			assert.ErrorIs(t, err, documents.ErrValidation)
		})
	}

	assert.Equal(t, 0, calls)
	assert.Equal(t, 5, f.sys.View().TotalDocuments)
	assert.Empty(t, f.sys.View().Error)
}

func TestCreateBeforeInitialize(t *testing.T) {
	sys := newStore(answer("text"), storage.NewMemory())

	_, err := sys.Create(context.Background(), budgetPlan)
	assert.ErrorIs(t, err, documents.ErrNotReady)
}

func TestCreateGenerationFailure(t *testing.T) {
	f := newFixture(t, failing())

	_, err := f.sys.Create(context.Background(), budgetPlan)

	var genErr *generation.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, 2, genErr.Attempts)

	view := f.sys.View()
	assert.Equal(t, 5, view.TotalDocuments)
	assert.False(t, view.IsLoading)
	assert.Contains(t, view.Error, "all AI models failed")
	assert.Equal(t, 0, f.blobs.Puts())

	assert.Empty(t, f.sys.ClearError().Error)
}

func TestCreateRejectsConcurrent(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	backend := generation.BackendFunc(func(ctx context.Context, _, _ string) (string, error) {
		close(started)
		<-release
		return "done", nil
	})
	f := newFixture(t, backend)

	var wg sync.WaitGroup
	var firstErr error
	wg.Go(func() {
		_, firstErr = f.sys.Create(context.Background(), budgetPlan)
	})

	<-started
	assert.True(t, f.sys.View().IsLoading)

	_, err := f.sys.Create(context.Background(), budgetPlan)
	assert.ErrorIs(t, err, documents.ErrGenerationInProgress)

	close(release)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.False(t, f.sys.View().IsLoading)
	assert.Equal(t, 6, f.sys.View().TotalDocuments)
}

func TestGet(t *testing.T) {
	f := newFixture(t, answer("x"))

	doc, ok := f.sys.Get("4")
	require.True(t, ok)
	assert.Equal(t, "Research Paper: AI in Education", doc.Title)

	doc.Tags[0] = "mutated"
	again, _ := f.sys.Get("4")
	assert.Equal(t, "AI", again.Tags[0])

	_, ok = f.sys.Get("missing")
	assert.False(t, ok)
}

func TestDeleteIsIdempotent(t *testing.T) {
	f := newFixture(t, answer("x"))
	ctx := context.Background()

	assert.True(t, f.sys.Delete(ctx, "3"))
	assert.False(t, f.sys.Delete(ctx, "3"))
	assert.False(t, f.sys.Delete(ctx, "missing"))

	_, ok := f.sys.Get("3")
	assert.False(t, ok)
	assert.Equal(t, 4, f.sys.View().TotalDocuments)
	assert.Equal(t, 1, f.blobs.Puts())
	assert.Len(t, persisted(t, f.blobs), 4)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t, answer("x"))
	ctx := context.Background()
	title := "  Marketing Strategy Q2  "
	content := "Revised."

	doc, err := f.sys.Update(ctx, "1", documents.UpdateCommand{Title: &title, Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "Marketing Strategy Q2", doc.Title)
	assert.Equal(t, "Revised.", doc.Content)
	assert.Equal(t, []string{"marketing", "strategy", "Q1"}, doc.Tags)
	assert.Equal(t, documents.TypeDocument, doc.Type)

	stored := persisted(t, f.blobs)
	assert.Equal(t, "Marketing Strategy Q2", stored[0].Title)

	_, err = f.sys.Update(ctx, "missing", documents.UpdateCommand{Content: &content})
	assert.ErrorIs(t, err, documents.ErrNotFound)

	blank := "   "
	_, err = f.sys.Update(ctx, "1", documents.UpdateCommand{Title: &blank})
	assert.ErrorIs(t, err, documents.ErrValidation)

	assert.Equal(t, 1, f.blobs.Puts())
}

func TestPersistenceFailureIsSilent(t *testing.T) {
	f := newFixture(t, answer("text"))
	f.blobs.FailWrites(errors.New("disk full"))

	assert.True(t, f.sys.Delete(context.Background(), "1"))
	result, err := f.sys.Create(context.Background(), budgetPlan)
	require.NoError(t, err)

	_, ok := f.sys.Get(result.Document.ID)
	assert.True(t, ok)
	assert.Equal(t, 5, f.sys.View().TotalDocuments)
}

func TestModesSliceOneSequence(t *testing.T) {
	f := newFixture(t, answer("x"))
	all := []string{"1", "2", "3", "4", "5"}

	view := f.sys.View()
	assert.Equal(t, all[:2], ids(view.Documents))
	assert.Equal(t, all[:2], ids(view.Page))
	assert.True(t, view.HasMore)
	assert.Equal(t, pagination.Meta{CurrentPage: 1, TotalPages: 3, TotalItems: 5, ItemsPerPage: 2}, view.Pagination)

	view = f.sys.LoadMore()
	assert.Equal(t, all[:4], ids(view.Documents))
	assert.Equal(t, all[:2], ids(view.Page))

	page := 2
	view, err := f.sys.UpdatePagination(documents.PaginationUpdate{CurrentPage: &page})
	require.NoError(t, err)
	assert.Equal(t, all[2:4], ids(view.Page))
	assert.Equal(t, ids(view.Documents)[2:4], ids(view.Page))

	view = f.sys.LoadMore()
	assert.Equal(t, all, ids(view.Documents))
	assert.False(t, view.HasMore)
	assert.Equal(t, 3, view.Batch)

	view = f.sys.LoadMore()
	assert.Equal(t, 3, view.Batch)
	assert.Equal(t, all, ids(view.Documents))
}

func TestSearchResetsCursors(t *testing.T) {
	f := newFixture(t, answer("x"))
	page := 2

	f.sys.LoadMore()
	_, err := f.sys.UpdatePagination(documents.PaginationUpdate{CurrentPage: &page})
	require.NoError(t, err)

	order := documents.SortAsc
	view, err := f.sys.UpdateSearch(documents.SearchUpdate{SortOrder: &order})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Pagination.CurrentPage)
	assert.Equal(t, 2, view.Batch)
	assert.Equal(t, []string{"5", "4", "3", "2"}, ids(view.Documents))

	query := "business"
	view, err = f.sys.UpdateSearch(documents.SearchUpdate{Query: &query})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Pagination.CurrentPage)
	assert.Equal(t, 1, view.Batch)
	assert.Equal(t, "business", view.Search.Query)
	assert.Equal(t, documents.SortAsc, view.Search.SortOrder)

	f.sys.LoadMore()
	filters := documents.Filters{Type: documents.TypeSpreadsheet}
	view, err = f.sys.UpdateSearch(documents.SearchUpdate{Filters: &filters})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Batch)
}

func TestSearchViewIsCopied(t *testing.T) {
	f := newFixture(t, answer("x"))
	r := documents.DateRange{Start: day("2025-01-13T00:00:00Z")}
	filters := documents.Filters{DateRange: &r}

	_, err := f.sys.UpdateSearch(documents.SearchUpdate{Filters: &filters})
	require.NoError(t, err)
	r.Start = day("2030-01-01T00:00:00Z")

	view := f.sys.View()
	assert.Equal(t, []string{"1", "2"}, ids(view.Documents))
	assert.Equal(t, 3, view.Pagination.TotalItems)
}

func TestUpdateSearchValidation(t *testing.T) {
	f := newFixture(t, answer("x"))
	before := f.sys.View()

	sortBy := documents.SortField("size")
	empty := documents.SortField("")
	order := documents.SortOrder("sideways")
	badType := documents.Filters{Type: "video"}
	badCategory := documents.Filters{Category: "secret"}

	tests := []struct {
		name   string
		update documents.SearchUpdate
	}{
		{"unknown sort field", documents.SearchUpdate{SortBy: &sortBy}},
		{"empty sort field", documents.SearchUpdate{SortBy: &empty}},
		{"unknown sort order", documents.SearchUpdate{SortOrder: &order}},
		{"unknown type", documents.SearchUpdate{Filters: &badType}},
		{"unknown category", documents.SearchUpdate{Filters: &badCategory}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.sys.UpdateSearch(tt.update)
			assert.ErrorIs(t, err, documents.ErrValidation)
		})
	}

	assert.Equal(t, before.Search, f.sys.View().Search)

	all := documents.Filters{Type: documents.All, Category: documents.All}
	_, err := f.sys.UpdateSearch(documents.SearchUpdate{Filters: &all})
	assert.NoError(t, err)
}

func TestUpdatePagination(t *testing.T) {
	f := newFixture(t, answer("x"))

	page := 3
	view, err := f.sys.UpdatePagination(documents.PaginationUpdate{CurrentPage: &page})
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, ids(view.Page))

	perPage := 4
	view, err = f.sys.UpdatePagination(documents.PaginationUpdate{ItemsPerPage: &perPage})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Pagination.CurrentPage)
	assert.Equal(t, 2, view.Pagination.TotalPages)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(view.Page))

	zero := 0
	_, err = f.sys.UpdatePagination(documents.PaginationUpdate{CurrentPage: &zero})
	assert.ErrorIs(t, err, documents.ErrValidation)

	huge := 500
	_, err = f.sys.UpdatePagination(documents.PaginationUpdate{ItemsPerPage: &huge})
	assert.ErrorIs(t, err, documents.ErrValidation)
}

func TestUpdatePaginationRejectsHugePage(t *testing.T) {
	f := newFixture(t, answer("x"))
	before := f.sys.View()

	page := 1 << 62
	assert.NotPanics(t, func() {
		_, err := f.sys.UpdatePagination(documents.PaginationUpdate{CurrentPage: &page})
		assert.ErrorIs(t, err, documents.ErrValidation)
	})

	view := f.sys.View()
	assert.Equal(t, before.Pagination, view.Pagination)
	assert.Equal(t, ids(before.Page), ids(view.Page))

	last := pagination.MaxPage
	view, err := f.sys.UpdatePagination(documents.PaginationUpdate{CurrentPage: &last})
	require.NoError(t, err)
	assert.Empty(t, view.Page)
}

func TestQueryLeavesSessionAlone(t *testing.T) {
	f := newFixture(t, answer("x"))
	search := documents.DefaultSearch()
	search.Filters.Type = documents.TypeSpreadsheet

	result := f.sys.Query(search, pagination.PageRequest{Page: 1, Limit: 1})

	assert.Equal(t, []string{"3"}, ids(result.Data))
	assert.Equal(t, pagination.Meta{CurrentPage: 1, TotalPages: 2, TotalItems: 2, ItemsPerPage: 1}, result.Pagination)
	assert.Equal(t, documents.DefaultSearch(), f.sys.View().Search)
}

func TestQueryNormalizesPage(t *testing.T) {
	f := newFixture(t, answer("x"))

	result := f.sys.Query(documents.DefaultSearch(), pagination.PageRequest{})

	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Equal(t, 2, result.Pagination.ItemsPerPage)
	assert.Len(t, result.Data, 2)
}

func TestQueryHugePage(t *testing.T) {
	f := newFixture(t, answer("x"))
	page := pagination.PageRequestFromQuery(url.Values{"page": {"4611686018427387904"}}, pagination.Config{DefaultPageSize: 2, MaxPageSize: 50})

	var result pagination.PageResult[documents.Document]
	assert.NotPanics(t, func() {
		result = f.sys.Query(documents.DefaultSearch(), page)
	})
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, pagination.MaxPage, result.Pagination.CurrentPage)
}
