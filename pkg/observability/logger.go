package observability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID  = "trace_id"
	attrSpanID   = "span_id"
	attrService  = "service"
	attrMode     = "mode"
	attrReport   = "report"
	attrDir      = "dir"
	attrProject  = "project"
	attrBranch   = "branch"
	attrAnalysis = "analysis_date"
)

// ReportScope names the report a unit of work operates on. Empty fields are
// omitted from log records.
type ReportScope struct {
	AnalysisDate time.Time
	Dir          string
	Project      string
	Branch       string
}

type reportScopeKey struct{}

// WithReportScope returns a context whose log records carry scope as a
// "report" group.
func WithReportScope(ctx context.Context, scope ReportScope) context.Context {
	return context.WithValue(ctx, reportScopeKey{}, scope)
}

func (s ReportScope) attr() (slog.Attr, bool) {
	var attrs []any

	if s.Dir != "" {
		attrs = append(attrs, slog.String(attrDir, s.Dir))
	}

	if s.Project != "" {
		attrs = append(attrs, slog.String(attrProject, s.Project))
	}

	if s.Branch != "" {
		attrs = append(attrs, slog.String(attrBranch, s.Branch))
	}

	if !s.AnalysisDate.IsZero() {
		attrs = append(attrs, slog.Time(attrAnalysis, s.AnalysisDate.UTC()))
	}

	if len(attrs) == 0 {
		return slog.Attr{}, false
	}

	return slog.Group(attrReport, attrs...), true
}

// TracingHandler is an [slog.Handler] that injects OpenTelemetry trace context
// (trace_id, span_id), service metadata and the report scope carried by the
// context into every log record.
// Service attributes are pre-attached at construction so they remain at the
// top level even when groups are used.
type TracingHandler struct {
	inner slog.Handler
}

// NewTracingHandler wraps an [slog.Handler], injecting trace context and service metadata.
func NewTracingHandler(inner slog.Handler, service string, appMode AppMode) *TracingHandler {
	return &TracingHandler{
		inner: inner.WithAttrs([]slog.Attr{
			slog.String(attrService, service),
			slog.String(attrMode, string(appMode)),
		}),
	}
}

// Enabled delegates to the inner handler.
func (th *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return th.inner.Enabled(ctx, level)
}

// Handle adds trace and report attributes from ctx, then delegates.
func (th *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	sc := trace.SpanContextFromContext(ctx)
	if sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	if scope, ok := ctx.Value(reportScopeKey{}).(ReportScope); ok {
		if attr, hasAttrs := scope.attr(); hasAttrs {
			record.AddAttrs(attr)
		}
	}

	err := th.inner.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("tracing handler: %w", err)
	}

	return nil
}

// WithAttrs returns a new TracingHandler with additional attributes on the inner handler.
func (th *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{
		inner: th.inner.WithAttrs(attrs),
	}
}

// WithGroup returns a new TracingHandler with a group prefix on the inner handler.
func (th *TracingHandler) WithGroup(name string) slog.Handler {
	return &TracingHandler{
		inner: th.inner.WithGroup(name),
	}
}
