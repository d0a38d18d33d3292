package traversal

import "github.com/Sumatoshi-tech/scanreport/pkg/tree"

// Context is the traversal frame of one component. It owns the aggregates
// created for that component and is discarded once the component is merged
// into its parent.
type Context struct {
	comp       *tree.Component
	parent     *Context
	aggregates []Aggregate
	childIdx   int
	active     Handle
}

// Component returns the component of this frame.
func (tc *Context) Component() *tree.Component {
	return tc.comp
}

// Depth returns the distance from the root, which has depth zero.
func (tc *Context) Depth() int {
	return tc.comp.Depth
}

// Parent returns the frame of the parent component, or nil at the root.
func (tc *Context) Parent() *Context {
	return tc.parent
}

// Aggregate returns the aggregate created for this component by the visitor
// registered under h, or nil when that visitor does not aggregate.
func (tc *Context) Aggregate(h Handle) Aggregate {
	if h < 0 || int(h) >= len(tc.aggregates) {
		return nil
	}

	return tc.aggregates[h]
}

// Own returns the aggregate of the visitor whose hook is running.
func (tc *Context) Own() Aggregate {
	return tc.Aggregate(tc.active)
}

// AggregateOf returns the aggregate of the visitor registered under h with
// its concrete type.
func AggregateOf[A Aggregate](tc *Context, h Handle) (A, bool) {
	agg, ok := tc.Aggregate(h).(A)

	return agg, ok
}

// OwnAggregate returns the aggregate of the visitor whose hook is running
// with its concrete type.
func OwnAggregate[A Aggregate](tc *Context) (A, bool) {
	agg, ok := tc.Own().(A)

	return agg, ok
}

// mergeInto folds every aggregate of tc into the matching aggregate of parent.
func (tc *Context) mergeInto(parent *Context) {
	for i, agg := range tc.aggregates {
		if agg == nil || parent.aggregates[i] == nil {
			continue
		}

		parent.aggregates[i].MergeChild(agg)
	}

	tc.aggregates = nil
}
