package generation

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
)

// Result is a successful generation.
type Result struct {
	Content  string
	Model    Model
	Attempts int
}

// Client generates content by walking a ranked model chain.
// Each Generate starts from the first available model and advances
// on any failure until one succeeds or the chain is exhausted.
type Client struct {
	backend Backend
	models  []Model
	timeout time.Duration
	logger  *slog.Logger
	metrics *Metrics

	mu     sync.RWMutex
	cursor int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithAttemptTimeout bounds each model attempt. Zero disables the bound.
func WithAttemptTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithMetrics records attempt outcomes and latency.
func WithMetrics(m *Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a Client over backend with the given ranked models.
func NewClient(backend Backend, models []Model, opts ...ClientOption) *Client {
	c := &Client{
		backend: backend,
		models:  slices.Clone(models),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("system", "generation")
	return c
}

// Models returns the ranked chain.
func (c *Client) Models() []Model {
	return slices.Clone(c.models)
}

// Current returns the model at the fallback cursor: the model that produced
// the last success, or the last model attempted if the chain was exhausted.
func (c *Client) Current() Model {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.models) == 0 {
		return Model{}
	}
	return c.models[c.cursor]
}

// Generate renders the prompt for req and tries each available model in rank
// order. The returned content is trimmed and date-cleaned. When every model
// fails the error is a *GenerationError wrapping the last failure.
func (c *Client) Generate(ctx context.Context, req Request) (Result, error) {
	prompt := BuildPrompt(req)

	st, ok := c.start()
	if !ok {
		return Result{}, &GenerationError{Last: ErrNoModels}
	}

	for {
		c.setCursor(st.index())
		model := st.current()

		switch r := c.attempt(ctx, model, prompt).(type) {
		case success:
			c.logger.Info("generation succeeded", "model", model.ID, "attempts", st.attempts)
			return Result{
				Content:  CleanContent(r.text),
				Model:    model,
				Attempts: st.attempts,
			}, nil
		case failure:
			st.last = r.err
			c.logger.Warn("model failed, trying fallback", "model", model.ID, "error", r.err)
		}

		if ctx.Err() != nil {
			return Result{}, &GenerationError{Attempts: st.attempts, Last: ctx.Err()}
		}

		next, ok := st.advance()
		if !ok {
			c.logger.Error("all models failed", "attempts", st.attempts, "error", st.last)
			return Result{}, &GenerationError{Attempts: st.attempts, Last: st.last}
		}
		st = next
	}
}

// attemptResult is the tagged outcome of one model attempt: success or failure.
type attemptResult interface {
	attemptResult()
}

type success struct{ text string }

type failure struct{ err error }

func (success) attemptResult() {}
func (failure) attemptResult() {}

func (c *Client) attempt(ctx context.Context, model Model, prompt string) attemptResult {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := c.backend.Generate(ctx, model.ID, prompt)
	elapsed := time.Since(start)

	var result attemptResult
	switch {
	case err != nil:
		result = failure{err: &BackendError{Model: model.ID, Err: err}}
	case strings.TrimSpace(text) == "":
		result = failure{err: &BackendError{Model: model.ID, Err: ErrEmptyResponse}}
	default:
		result = success{text: strings.TrimSpace(text)}
	}

	c.metrics.observe(model.ID, result, elapsed)
	return result
}

// fallbackState is the position in the chain: the model being attempted
// and those left after it.
type fallbackState struct {
	remaining []int
	attempts  int
	last      error
	models    []Model
}

func (s fallbackState) index() int     { return s.remaining[0] }
func (s fallbackState) current() Model { return s.models[s.remaining[0]] }

func (s fallbackState) advance() (fallbackState, bool) {
	if len(s.remaining) <= 1 {
		return s, false
	}
	s.remaining = s.remaining[1:]
	s.attempts++
	return s, true
}

func (c *Client) start() (fallbackState, bool) {
	var available []int
	for i, m := range c.models {
		if m.Available {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return fallbackState{}, false
	}
	return fallbackState{remaining: available, attempts: 1, models: c.models}, true
}

func (c *Client) setCursor(i int) {
	c.mu.Lock()
	c.cursor = i
	c.mu.Unlock()
}
