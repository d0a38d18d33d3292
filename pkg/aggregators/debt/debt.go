// Package debt rolls the remediation cost of unresolved issues up the
// component tree, in total and per rule.
package debt

import (
	"fmt"

	"github.com/Sumatoshi-tech/scanreport/pkg/accumulator"
	"github.com/Sumatoshi-tech/scanreport/pkg/measure"
	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/rules"
	"github.com/Sumatoshi-tech/scanreport/pkg/traversal"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

// Metric is the key of the emitted measures.
const Metric = "technical_debt"

// Debt is the remediation cost of a subtree.
type Debt struct {
	ByRule  *accumulator.Accumulator[rules.Key]
	Minutes int64
}

// MergeChild implements traversal.Aggregate.
func (d *Debt) MergeChild(child traversal.Aggregate) {
	c, ok := child.(*Debt)
	if !ok {
		return
	}

	d.Minutes += c.Minutes
	d.ByRule.Merge(c.ByRule)
}

// Visitor computes Debt for every component and emits it to a sink.
type Visitor struct {
	traversal.BaseVisitor
	rules rules.Repository
	sink  measure.Sink
}

var (
	_ traversal.Visitor     = (*Visitor)(nil)
	_ traversal.Aggregating = (*Visitor)(nil)
)

// New returns a debt visitor resolving rules with repo.
func New(repo rules.Repository, sink measure.Sink) *Visitor {
	return &Visitor{rules: repo, sink: sink}
}

// NewAggregate implements traversal.Aggregating.
func (v *Visitor) NewAggregate(*tree.Component) traversal.Aggregate {
	return &Debt{ByRule: accumulator.New[rules.Key]()}
}

// OnIssue adds the debt of an unresolved issue. Issues whose rule cannot be
// resolved count towards the total but not the per-rule breakdown.
func (v *Visitor) OnIssue(tc *traversal.Context, _ *tree.Component, issue report.Issue) error {
	minutes := issue.Debt()
	if !issue.Unresolved() || minutes == 0 {
		return nil
	}

	d, ok := traversal.OwnAggregate[*Debt](tc)
	if !ok {
		return errNoAggregate
	}

	d.Minutes += minutes

	var key rules.Key
	if rule, found := v.rules.Rule(rules.KeyOf(issue)); found {
		key = rule.Key
	}

	d.ByRule.Add(key, minutes)

	return nil
}

// AfterComponent emits the total and one measure per rule with non-zero debt.
func (v *Visitor) AfterComponent(tc *traversal.Context, c *tree.Component) error {
	d, ok := traversal.OwnAggregate[*Debt](tc)
	if !ok {
		return errNoAggregate
	}

	err := v.sink.Add(c, measure.Measure{Metric: Metric, Value: d.Minutes})
	if err != nil {
		return fmt.Errorf("emit %s: %w", Metric, err)
	}

	for _, key := range accumulator.SortedKeys(d.ByRule) {
		total := d.ByRule.Total(key)
		if total == 0 {
			continue
		}

		err = v.sink.Add(c, measure.Measure{Metric: Metric, Rule: key, Value: total})
		if err != nil {
			return fmt.Errorf("emit %s for %s: %w", Metric, key, err)
		}
	}

	return nil
}
