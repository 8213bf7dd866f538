package documents

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/JaimeStill/docudash/internal/tags"
	"github.com/JaimeStill/docudash/pkg/lifecycle"
	"github.com/JaimeStill/docudash/pkg/pagination"
	"github.com/JaimeStill/docudash/pkg/storage"
)

// View is the session's derived view of the collection. Documents is the
// infinite-scroll batch and Page the traditional page; both slice the same
// filtered and sorted sequence.
type View struct {
	Documents      []Document      `json:"documents"`
	Page           []Document      `json:"page"`
	HasMore        bool            `json:"hasMore"`
	Batch          int             `json:"batch"`
	Pagination     pagination.Meta `json:"pagination"`
	Search         SearchState     `json:"search"`
	TotalDocuments int             `json:"totalDocuments"`
	IsLoading      bool            `json:"isLoading"`
	Error          string          `json:"error,omitempty"`
}

// PaginationUpdate is a partial pagination state. Nil fields are left unchanged.
type PaginationUpdate struct {
	CurrentPage  *int `json:"currentPage,omitempty"`
	ItemsPerPage *int `json:"itemsPerPage,omitempty"`
}

type store struct {
	gen        Generator
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
	cfg        Config

	slot   *semaphore.Weighted
	saveMu sync.Mutex

	mu          sync.RWMutex
	ready       bool
	docs        []Document
	search      SearchState
	currentPage int
	perPage     int
	batch       int
	loading     bool
	lastErr     string
}

// New creates a document store implementing the System interface.
// The store holds no documents until Initialize runs.
func New(
	gen Generator,
	blobs storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
	cfg Config,
) System {
	return &store{
		gen:         gen,
		storage:     blobs,
		logger:      logger.With("system", "documents"),
		pagination:  pagination,
		cfg:         cfg,
		slot:        semaphore.NewWeighted(1),
		docs:        []Document{},
		search:      DefaultSearch(),
		currentPage: 1,
		perPage:     pagination.DefaultPageSize,
		batch:       1,
	}
}

func (s *store) Handler(maxBodySize int64) *Handler {
	return NewHandler(s, s.logger, s.pagination, maxBodySize)
}

func (s *store) Start(lc *lifecycle.Coordinator) {
	lc.Require(s)
	lc.OnStartup(func() {
		s.Initialize(lc.Context())
	})
}

func (s *store) Initialize(ctx context.Context) {
	if s.Ready() {
		return
	}

	def := []Document{}
	if !s.cfg.SkipSeed {
		def = Seed()
	}
	docs := storage.Load(ctx, s.storage, s.logger, CollectionKey, def)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return
	}
	s.docs = make([]Document, 0, len(docs))
	for _, d := range docs {
		s.docs = append(s.docs, d.clone())
	}
	s.ready = true
	s.logger.Info("documents loaded", "count", len(s.docs))
}

func (s *store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *store) Create(ctx context.Context, req CreateRequest) (CreateResult, error) {
	req = req.normalize()
	if err := req.Validate(); err != nil {
		return CreateResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if !s.Ready() {
		return CreateResult{}, ErrNotReady
	}
	if !s.slot.TryAcquire(1) {
		return CreateResult{}, ErrGenerationInProgress
	}
	defer s.slot.Release(1)

	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	result, err := s.gen.Generate(ctx, req.generationRequest())
	if err != nil {
		s.mu.Lock()
		s.loading = false
		s.lastErr = err.Error()
		s.mu.Unlock()
		return CreateResult{}, fmt.Errorf("create document: %w", err)
	}

	doc := Document{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Type:        req.Type,
		Category:    req.Category,
		Content:     result.Content,
		CreatedAt:   time.Now().UTC(),
		AIGenerated: true,
		Tags:        tags.Extract(req.Title, req.Prompt, string(req.Category), string(req.Type)),
	}

	s.mu.Lock()
	s.docs = slices.Insert(s.docs, 0, doc)
	s.loading = false
	s.mu.Unlock()

	s.logger.Info("document created", "id", doc.ID, "model", result.Model.ID, "attempts", result.Attempts)
	s.persist(ctx)

	return CreateResult{Document: doc.clone(), Model: result.Model}, nil
}

func (s *store) Get(id string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Document{}, false
	}
	return s.docs[i].clone(), true
}

func (s *store) Update(ctx context.Context, id string, cmd UpdateCommand) (Document, error) {
	cmd = cmd.normalize()
	if err := cmd.Validate(); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return Document{}, ErrNotFound
	}
	cmd.apply(&s.docs[i])
	doc := s.docs[i].clone()
	s.mu.Unlock()

	s.persist(ctx)
	return doc, nil
}

func (s *store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.docs = slices.Delete(s.docs, i, i+1)
	s.mu.Unlock()

	s.logger.Info("document deleted", "id", id)
	s.persist(ctx)
	return true
}

func (s *store) Query(search SearchState, page pagination.PageRequest) pagination.PageResult[Document] {
	page.Normalize(s.pagination)

	s.mu.RLock()
	seq := Apply(s.docs, search)
	s.mu.RUnlock()

	result := pagination.NewPageResult(seq, page)
	result.Data = clones(result.Data)
	return result
}

func (s *store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view()
}

func (s *store) UpdateSearch(update SearchUpdate) (View, error) {
	if err := update.Validate(); err != nil {
		return View{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.search = s.search.merge(update)
	if update.resets() {
		s.currentPage = 1
		s.batch = 1
	}
	return s.view(), nil
}

func (s *store) UpdatePagination(update PaginationUpdate) (View, error) {
	err := validation.ValidateStruct(&update,
		validation.Field(&update.CurrentPage, validation.NilOrNotEmpty, validation.Min(1), validation.Max(pagination.MaxPage)),
		validation.Field(&update.ItemsPerPage, validation.NilOrNotEmpty, validation.Min(1), validation.Max(s.pagination.MaxPageSize)),
	)
	if err != nil {
		return View{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if update.ItemsPerPage != nil && *update.ItemsPerPage != s.perPage {
		s.perPage = *update.ItemsPerPage
		s.currentPage = 1
	}
	if update.CurrentPage != nil {
		s.currentPage = *update.CurrentPage
	}
	return s.view(), nil
}

func (s *store) LoadMore() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(Apply(s.docs, s.search))
	if pagination.HasMore(total, s.batch, s.cfg.BatchSize) {
		s.batch++
	}
	return s.view()
}

func (s *store) ClearError() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = ""
	return s.view()
}

// view derives the session view. Callers hold s.mu.
func (s *store) view() View {
	seq := Apply(s.docs, s.search)

	return View{
		Documents:      clones(pagination.Batch(seq, s.batch, s.cfg.BatchSize)),
		Page:           clones(pagination.Paginate(seq, s.currentPage, s.perPage)),
		HasMore:        pagination.HasMore(len(seq), s.batch, s.cfg.BatchSize),
		Batch:          s.batch,
		Pagination:     pagination.NewMeta(len(seq), s.currentPage, s.perPage),
		Search:         s.search.clone(),
		TotalDocuments: len(s.docs),
		IsLoading:      s.loading,
		Error:          s.lastErr,
	}
}

// indexOf returns the position of id in the collection or -1. Callers hold s.mu.
func (s *store) indexOf(id string) int {
	return slices.IndexFunc(s.docs, func(d Document) bool {
		return d.ID == id
	})
}

// persist writes the latest collection. Writes are serialized so a slow
// save never overwrites a newer snapshot. Failures are logged only.
func (s *store) persist(ctx context.Context) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	snapshot := slices.Clone(s.docs)
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PersistTimeoutDuration())
	defer cancel()

	if err := storage.Save(ctx, s.storage, CollectionKey, snapshot); err != nil {
		s.logger.Warn("documents not persisted", "error", err)
	}
}

func clones(docs []Document) []Document {
	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = d.clone()
	}
	return out
}
