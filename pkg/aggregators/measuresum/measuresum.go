// Package measuresum sums raw integer measures, such as lines of code, over
// every directory, module and project.
package measuresum

import (
	"fmt"

	"github.com/Sumatoshi-tech/scanreport/pkg/accumulator"
	"github.com/Sumatoshi-tech/scanreport/pkg/measure"
	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/traversal"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

// Sums holds the per-metric totals of a subtree.
type Sums struct {
	*accumulator.Accumulator[string]
}

// MergeChild implements traversal.Aggregate.
func (s Sums) MergeChild(child traversal.Aggregate) {
	other, ok := child.(Sums)
	if !ok {
		return
	}

	s.Merge(other.Accumulator)
}

// Visitor sums the configured integer measures of files and emits the sums on
// every non-FILE component that has at least one contributing measure.
type Visitor struct {
	traversal.BaseVisitor
	sink    measure.Sink
	metrics map[string]struct{}
	order   []string
}

var (
	_ traversal.Visitor        = (*Visitor)(nil)
	_ traversal.MeasureVisitor = (*Visitor)(nil)
	_ traversal.Aggregating    = (*Visitor)(nil)
)

// New returns a visitor summing metrics. Duplicates and empty keys are dropped.
func New(metrics []string, sink measure.Sink) *Visitor {
	v := &Visitor{sink: sink, metrics: make(map[string]struct{}, len(metrics))}

	for _, m := range metrics {
		if _, dup := v.metrics[m]; dup || m == "" {
			continue
		}

		v.metrics[m] = struct{}{}
		v.order = append(v.order, m)
	}

	return v
}

// NewAggregate implements traversal.Aggregating.
func (v *Visitor) NewAggregate(*tree.Component) traversal.Aggregate {
	return Sums{accumulator.New[string]()}
}

// OnMeasure adds integer measures with a configured key.
func (v *Visitor) OnMeasure(tc *traversal.Context, c *tree.Component, m report.Measure) error {
	if m.Kind != report.MeasureKindInt {
		return nil
	}

	if _, ok := v.metrics[m.MetricKey]; !ok {
		return nil
	}

	sums, ok := traversal.OwnAggregate[Sums](tc)
	if !ok {
		return fmt.Errorf("measure sums missing for component %d", c.Ref)
	}

	sums.Add(m.MetricKey, m.IntValue)

	return nil
}

// AfterComponent emits the sums of non-FILE components. Files already carry
// their raw measures.
func (v *Visitor) AfterComponent(tc *traversal.Context, c *tree.Component) error {
	if c.IsFile() {
		return nil
	}

	sums, ok := traversal.OwnAggregate[Sums](tc)
	if !ok {
		return fmt.Errorf("measure sums missing for component %d", c.Ref)
	}

	for _, metric := range v.order {
		if !sums.Has(metric) {
			continue
		}

		err := v.sink.Add(c, measure.Measure{Metric: metric, Value: sums.Total(metric)})
		if err != nil {
			return fmt.Errorf("emit %s: %w", metric, err)
		}
	}

	return nil
}
