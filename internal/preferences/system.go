package preferences

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/JaimeStill/docudash/pkg/lifecycle"
	"github.com/JaimeStill/docudash/pkg/storage"
)

const persistTimeout = 5 * time.Second

// System defines the public contract for preference operations.
type System interface {
	Handler(maxBodySize int64) *Handler

	Start(lc *lifecycle.Coordinator)
	Initialize(ctx context.Context)
	Ready() bool

	Get() Preferences
	Update(ctx context.Context, update Update) (Preferences, error)
	ToggleTheme(ctx context.Context) Preferences
}

type prefs struct {
	storage  storage.System
	logger   *slog.Logger
	maxItems int

	saveMu sync.Mutex

	mu    sync.RWMutex
	ready bool
	value Preferences
}

// New creates a preferences store. maxItems bounds ItemsPerPage.
func New(blobs storage.System, logger *slog.Logger, maxItems int) System {
	return &prefs{
		storage:  blobs,
		logger:   logger.With("system", "preferences"),
		maxItems: maxItems,
		value:    Default(),
	}
}

func (p *prefs) Handler(maxBodySize int64) *Handler {
	return NewHandler(p, p.logger, maxBodySize)
}

func (p *prefs) Start(lc *lifecycle.Coordinator) {
	lc.Require(p)
	lc.OnStartup(func() {
		p.Initialize(lc.Context())
	})
}

func (p *prefs) Initialize(ctx context.Context) {
	if p.Ready() {
		return
	}

	loaded := storage.Load(ctx, p.storage, p.logger, Key, Default()).withDefaults()
	if err := loaded.validate(p.maxItems); err != nil {
		p.logger.Warn("stored preferences invalid, using defaults", "error", err)
		loaded = Default()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return
	}
	p.value = loaded
	p.ready = true
}

func (p *prefs) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ready
}

func (p *prefs) Get() Preferences {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

func (p *prefs) Update(ctx context.Context, update Update) (Preferences, error) {
	p.mu.Lock()
	next := p.value.merge(update)
	if err := next.validate(p.maxItems); err != nil {
		p.mu.Unlock()
		return Preferences{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	p.value = next
	p.mu.Unlock()

	p.persist(ctx)
	return next, nil
}

func (p *prefs) ToggleTheme(ctx context.Context) Preferences {
	p.mu.Lock()
	p.value.Theme = toggle(p.value.Theme)
	next := p.value
	p.mu.Unlock()

	p.persist(ctx)
	return next
}

func (p *prefs) persist(ctx context.Context) {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	value := p.Get()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if err := storage.Save(ctx, p.storage, Key, value); err != nil {
		p.logger.Warn("preferences not persisted", "error", err)
	}
}
