// Package issuecount counts unresolved issues per severity for every
// component subtree.
package issuecount

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/scanreport/pkg/accumulator"
	"github.com/Sumatoshi-tech/scanreport/pkg/measure"
	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/traversal"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

// Metric is the total number of unresolved issues.
const Metric = "violations"

// SeverityMetric returns the metric key counting issues of severity s.
func SeverityMetric(s report.Severity) string {
	return strings.ToLower(s.String()) + "_" + Metric
}

// Counts is the issue tally of a subtree. Issues without a severity count
// towards Total only.
type Counts struct {
	BySeverity *accumulator.Accumulator[report.Severity]
	Total      int64
}

// MergeChild implements traversal.Aggregate.
func (c *Counts) MergeChild(child traversal.Aggregate) {
	other, ok := child.(*Counts)
	if !ok {
		return
	}

	c.Total += other.Total
	c.BySeverity.Merge(other.BySeverity)
}

// Visitor counts issues and emits the counts to a sink.
type Visitor struct {
	traversal.BaseVisitor
	sink measure.Sink
}

var (
	_ traversal.Visitor     = (*Visitor)(nil)
	_ traversal.Aggregating = (*Visitor)(nil)
)

// New returns an issue counting visitor.
func New(sink measure.Sink) *Visitor {
	return &Visitor{sink: sink}
}

// NewAggregate implements traversal.Aggregating.
func (v *Visitor) NewAggregate(*tree.Component) traversal.Aggregate {
	return &Counts{BySeverity: accumulator.New[report.Severity]()}
}

// OnIssue counts unresolved issues.
func (v *Visitor) OnIssue(tc *traversal.Context, c *tree.Component, issue report.Issue) error {
	if !issue.Unresolved() {
		return nil
	}

	counts, ok := traversal.OwnAggregate[*Counts](tc)
	if !ok {
		return fmt.Errorf("issue counts missing for component %d", c.Ref)
	}

	counts.Total++
	counts.BySeverity.Add(issue.Severity, 1)

	return nil
}

// AfterComponent emits the total and one count per severity present.
func (v *Visitor) AfterComponent(tc *traversal.Context, c *tree.Component) error {
	counts, ok := traversal.OwnAggregate[*Counts](tc)
	if !ok {
		return fmt.Errorf("issue counts missing for component %d", c.Ref)
	}

	err := v.sink.Add(c, measure.Measure{Metric: Metric, Value: counts.Total})
	if err != nil {
		return fmt.Errorf("emit %s: %w", Metric, err)
	}

	for _, s := range report.Severities() {
		n := counts.BySeverity.Total(s)
		if n == 0 {
			continue
		}

		metric := SeverityMetric(s)

		err = v.sink.Add(c, measure.Measure{Metric: metric, Value: n})
		if err != nil {
			return fmt.Errorf("emit %s: %w", metric, err)
		}
	}

	return nil
}
