package router

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. If unset, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithExtensions sets the recognized source-file extensions, replacing
// DefaultExtensions. Earlier extensions win when a directory carries the
// same convention file under several of them.
func WithExtensions(exts ...string) Option {
	return func(e *Engine) {
		e.exts = exts
	}
}

// WithMetrics attaches Prometheus metrics to the engine.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithTracing attaches OpenTelemetry tracing to the engine.
func WithTracing(t *Tracing) Option {
	return func(e *Engine) {
		e.tracing = t
	}
}

// Engine holds one built route table per root directory. Tables are built
// on first request and held until Invalidate; published tables are
// immutable, so a rebuild replaces the reference and in-flight matches
// against the old table are unaffected.
type Engine struct {
	mu     sync.RWMutex
	tables map[string]*RouteTable

	exts    []string
	logger  *slog.Logger
	metrics *Metrics
	tracing *Tracing
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		tables: make(map[string]*RouteTable),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Build returns the route table for root, building and caching it on the
// first request. Subsequent calls return the cached table until
// Invalidate(root) drops it.
func (e *Engine) Build(ctx context.Context, root string) (*RouteTable, error) {
	e.mu.RLock()
	t := e.tables[root]
	e.mu.RUnlock()
	if t != nil {
		return t, nil
	}
	return e.rebuild(ctx, root)
}

// Invalidate drops any cached table for root. The next Build scans the
// filesystem again.
func (e *Engine) Invalidate(root string) {
	e.mu.Lock()
	delete(e.tables, root)
	e.mu.Unlock()
}

// Match resolves a request path against root's table, building the table
// first if needed. A nil route with a nil error means no route matched.
func (e *Engine) Match(ctx context.Context, root, path string) (*Route, Params, error) {
	t, err := e.Build(ctx, root)
	if err != nil {
		return nil, nil, err
	}

	_, span := e.tracing.startMatch(ctx, path)
	route, params, ok := Match(path, t)
	e.tracing.endMatch(span, route)

	e.metrics.observeMatch(root, ok)
	if !ok {
		return nil, nil, nil
	}
	return route, params, nil
}

func (e *Engine) rebuild(ctx context.Context, root string) (*RouteTable, error) {
	_, span := e.tracing.startBuild(ctx, root)

	start := time.Now()
	sc := newScanContext(root, e.exts)
	table, err := buildTable(sc)
	elapsed := time.Since(start)

	if err != nil {
		e.tracing.endBuild(span, 0, err)
		e.metrics.observeBuild(root, elapsed, 0, err)
		e.logger.Error("route table build failed", "root", root, "error", err)
		return nil, err
	}

	e.mu.Lock()
	e.tables[root] = table
	e.mu.Unlock()

	e.tracing.endBuild(span, len(table.Routes), nil)
	e.metrics.observeBuild(root, elapsed, len(table.Routes), nil)
	e.logger.Info("route table built",
		"root", root,
		"routes", len(table.Routes),
		"fingerprint", table.Fingerprint(),
		"duration", elapsed,
	)
	return table, nil
}
