package router

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for the routing engine.
const defaultTracerName = "appdir"

// TracingConfig configures the OpenTelemetry tracing hooks.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "appdir").
	TracerName string
}

// TracingOption configures the OpenTelemetry tracing hooks.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// Tracing wraps table builds and matches in OpenTelemetry spans. A nil
// *Tracing is valid and records nothing.
type Tracing struct {
	tracer trace.Tracer
}

// NewTracing creates the tracing hooks.
func NewTracing(opts ...TracingOption) *Tracing {
	cfg := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tracing{tracer: otel.Tracer(cfg.TracerName)}
}

func (t *Tracing) startBuild(ctx context.Context, root string) (context.Context, trace.Span) {
	if t == nil {
		return ctx, nil
	}
	return t.tracer.Start(ctx, "router.build",
		trace.WithAttributes(attribute.String("router.root", root)))
}

func (t *Tracing) endBuild(span trace.Span, routes int, err error) {
	if t == nil || span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("router.routes", routes))
	}
	span.End()
}

func (t *Tracing) startMatch(ctx context.Context, path string) (context.Context, trace.Span) {
	if t == nil {
		return ctx, nil
	}
	return t.tracer.Start(ctx, "router.match",
		trace.WithAttributes(attribute.String("router.path", path)))
}

func (t *Tracing) endMatch(span trace.Span, route *Route) {
	if t == nil || span == nil {
		return
	}
	if route != nil {
		span.SetAttributes(attribute.String("router.pattern", route.Pattern.String()))
	}
	span.End()
}
