package traversal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

const (
	tracerName        = "scanreport"
	stackInitCap      = 64
	visitorInitCap    = 4
	spanTraversal     = "scanreport.traversal"
	attrComponents    = "traversal.components"
	attrVisitors      = "traversal.visitors"
	attrIssues        = "traversal.issues"
	attrMeasures      = "traversal.measures"
	attrReadMeasures  = "traversal.read_measures"
	attrRootComponent = "traversal.root_ref"
)

// Source streams the per-component data the driver dispatches.
// *report.Reader implements it.
type Source interface {
	ReadIssues(ref int32) (*report.Iterator[report.Issue], error)
	ReadMeasures(ref int32) (*report.Iterator[report.Measure], error)
}

// Stats summarizes one run.
type Stats struct {
	ByType     map[report.ComponentType]int
	Components int
	Issues     int
	Measures   int
	Duration   time.Duration
}

// StatsRecorder receives the statistics of every finished run.
type StatsRecorder interface {
	RecordTraversal(ctx context.Context, stats Stats)
}

// Driver runs registered visitors over a component tree.
type Driver struct {
	src      Source
	logger   *slog.Logger
	tracer   trace.Tracer
	recorder StatsRecorder
	visitors []Visitor
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger for run start and finish messages.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithTracer sets the tracer used for the run span. When unset the global
// provider is used.
func WithTracer(tracer trace.Tracer) Option {
	return func(d *Driver) {
		d.tracer = tracer
	}
}

// WithStatsRecorder sets the recorder that receives run statistics.
func WithStatsRecorder(rec StatsRecorder) Option {
	return func(d *Driver) {
		d.recorder = rec
	}
}

// NewDriver creates a driver reading component data from src.
func NewDriver(src Source, opts ...Option) *Driver {
	d := &Driver{
		src:      src,
		logger:   slog.Default(),
		visitors: make([]Visitor, 0, visitorInitCap),
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.tracer == nil {
		d.tracer = otel.Tracer(tracerName)
	}

	return d
}

// Register appends v to the visitors and returns its handle. Hooks run in
// registration order.
func (d *Driver) Register(v Visitor) Handle {
	d.visitors = append(d.visitors, v)

	return Handle(len(d.visitors) - 1)
}

// Run traverses t in post-order. For each component, BeforeComponent runs on
// every visitor, then each issue is passed to every visitor, then each measure
// to every MeasureVisitor, then the children are traversed, then
// AfterComponent runs and the component's aggregates are merged into its
// parent's. The first error aborts the run.
func (d *Driver) Run(ctx context.Context, t *tree.Tree) (Stats, error) {
	stats := Stats{ByType: make(map[report.ComponentType]int)}

	if t == nil || t.Root == nil || len(d.visitors) == 0 {
		return stats, nil
	}

	measureVisitors := d.measureVisitors()
	start := time.Now()

	ctx, span := d.tracer.Start(ctx, spanTraversal, trace.WithAttributes(
		attribute.Int(attrComponents, t.Size()),
		attribute.Int(attrVisitors, len(d.visitors)),
		attribute.Bool(attrReadMeasures, len(measureVisitors) > 0),
		attribute.Int(attrRootComponent, int(t.Root.Ref)),
	))
	defer span.End()

	d.logger.InfoContext(ctx, "traversal started",
		slog.Int("components", t.Size()),
		slog.Int("visitors", len(d.visitors)),
	)

	err := d.walk(ctx, t.Root, measureVisitors, &stats)

	stats.Duration = time.Since(start)

	span.SetAttributes(
		attribute.Int(attrIssues, stats.Issues),
		attribute.Int(attrMeasures, stats.Measures),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return stats, err
	}

	if d.recorder != nil {
		d.recorder.RecordTraversal(ctx, stats)
	}

	d.logger.InfoContext(ctx, "traversal finished",
		slog.Int("components", stats.Components),
		slog.Int("issues", stats.Issues),
		slog.Int("measures", stats.Measures),
		slog.Duration("duration", stats.Duration),
	)

	return stats, nil
}

// measureVisitor is a MeasureVisitor with its registration handle.
type measureVisitor struct {
	v MeasureVisitor
	h Handle
}

func (d *Driver) measureVisitors() []measureVisitor {
	var out []measureVisitor

	for i, v := range d.visitors {
		if mv, ok := v.(MeasureVisitor); ok {
			out = append(out, measureVisitor{v: mv, h: Handle(i)})
		}
	}

	return out
}

// walk is an iterative post-order traversal. childIdx -1 marks a frame whose
// component has not been entered yet.
func (d *Driver) walk(ctx context.Context, root *tree.Component, measureVisitors []measureVisitor, stats *Stats) error {
	stack := make([]*Context, 0, stackInitCap)
	stack = append(stack, d.newFrame(root, nil))

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.childIdx == -1 {
			err := ctx.Err()
			if err != nil {
				return fmt.Errorf("traversal interrupted: %w", err)
			}

			err = d.enter(top, measureVisitors, stats)
			if err != nil {
				return fmt.Errorf("component %d: %w", top.comp.Ref, err)
			}

			top.childIdx = 0
		}

		if top.childIdx < len(top.comp.Children) {
			child := top.comp.Children[top.childIdx]
			top.childIdx++

			stack = append(stack, d.newFrame(child, top))

			continue
		}

		for i, v := range d.visitors {
			top.active = Handle(i)

			err := v.AfterComponent(top, top.comp)
			if err != nil {
				return fmt.Errorf("component %d: after: %w", top.comp.Ref, err)
			}
		}

		if top.parent != nil {
			top.mergeInto(top.parent)
		}

		stats.Components++
		stats.ByType[top.comp.Type]++

		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]
	}

	return nil
}

func (d *Driver) newFrame(c *tree.Component, parent *Context) *Context {
	tc := &Context{
		comp:       c,
		parent:     parent,
		aggregates: make([]Aggregate, len(d.visitors)),
		childIdx:   -1,
	}

	for i, v := range d.visitors {
		if a, ok := v.(Aggregating); ok {
			tc.aggregates[i] = a.NewAggregate(c)
		}
	}

	return tc
}

// enter runs the hooks that precede the children of tc's component.
func (d *Driver) enter(tc *Context, measureVisitors []measureVisitor, stats *Stats) error {
	c := tc.comp

	for i, v := range d.visitors {
		tc.active = Handle(i)

		err := v.BeforeComponent(tc, c)
		if err != nil {
			return fmt.Errorf("before: %w", err)
		}
	}

	issues, err := d.src.ReadIssues(c.Ref)
	if err != nil {
		return fmt.Errorf("read issues: %w", err)
	}

	err = report.Each(issues, func(issue report.Issue) error {
		stats.Issues++

		for i, v := range d.visitors {
			tc.active = Handle(i)

			hookErr := v.OnIssue(tc, c, issue)
			if hookErr != nil {
				return hookErr
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("issues: %w", err)
	}

	if len(measureVisitors) == 0 {
		return nil
	}

	measures, err := d.src.ReadMeasures(c.Ref)
	if err != nil {
		return fmt.Errorf("read measures: %w", err)
	}

	err = report.Each(measures, func(m report.Measure) error {
		stats.Measures++

		for _, mv := range measureVisitors {
			tc.active = mv.h

			hookErr := mv.v.OnMeasure(tc, c, m)
			if hookErr != nil {
				return hookErr
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("measures: %w", err)
	}

	return nil
}
