// Package traversal walks a component tree in post-order and dispatches each
// component's issues and measures to registered visitors. Per-component
// aggregates live in the traversal Context and are folded into the parent's
// aggregates once the component is finished.
package traversal

import (
	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

// Visitor receives traversal events for every component. Returning an error
// aborts the run.
type Visitor interface {
	// BeforeComponent is called before any issue of c and before its children.
	BeforeComponent(tc *Context, c *tree.Component) error
	// OnIssue is called once per issue stored for c.
	OnIssue(tc *Context, c *tree.Component, issue report.Issue) error
	// AfterComponent is called once every descendant of c is finished.
	AfterComponent(tc *Context, c *tree.Component) error
}

// MeasureVisitor is implemented by visitors that consume raw measures.
// Measures are only read when at least one registered visitor implements it.
type MeasureVisitor interface {
	OnMeasure(tc *Context, c *tree.Component, m report.Measure) error
}

// Handle identifies a registered visitor. Aggregates are looked up by handle,
// so visitors need not be comparable.
type Handle int

// Aggregate is per-component state owned by one visitor.
type Aggregate interface {
	// MergeChild folds the finished aggregate of a child into the receiver.
	MergeChild(child Aggregate)
}

// Aggregating is implemented by visitors that roll state up the tree. The
// driver creates one aggregate per component before BeforeComponent.
type Aggregating interface {
	NewAggregate(c *tree.Component) Aggregate
}

// BaseVisitor implements Visitor with no-op hooks. Embed it to override only
// the hooks you need.
type BaseVisitor struct{}

// BeforeComponent does nothing.
func (BaseVisitor) BeforeComponent(*Context, *tree.Component) error { return nil }

// OnIssue does nothing.
func (BaseVisitor) OnIssue(*Context, *tree.Component, report.Issue) error { return nil }

// AfterComponent does nothing.
func (BaseVisitor) AfterComponent(*Context, *tree.Component) error { return nil }
