// Package measure defines the computed measures emitted by aggregators and
// the sinks that receive them.
package measure

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/Sumatoshi-tech/scanreport/pkg/rules"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

// Measure is one computed value for a component. Rule is set for per-rule
// breakdown measures and empty otherwise.
type Measure struct {
	Metric string
	Rule   rules.Key
	Value  int64
}

// Sink receives computed measures.
type Sink interface {
	Add(c *tree.Component, m Measure) error
}

// Entry is a measure stored by a MemorySink.
type Entry struct {
	ComponentKey string
	Measure
	Ref int32
}

type entryKey struct {
	metric string
	rule   rules.Key
	ref    int32
}

// MemorySink keeps every measure in memory. It is not safe for concurrent use.
type MemorySink struct {
	index   map[entryKey]int
	entries []Entry
}

// NewMemorySink returns an empty sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{index: make(map[entryKey]int)}
}

// Add implements Sink. A second measure with the same component, metric and
// rule is rejected.
func (s *MemorySink) Add(c *tree.Component, m Measure) error {
	key := entryKey{ref: c.Ref, metric: m.Metric, rule: m.Rule}

	if _, dup := s.index[key]; dup {
		return fmt.Errorf("%w: %s on component %d", ErrDuplicateMeasure, describe(m), c.Ref)
	}

	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Entry{Ref: c.Ref, ComponentKey: c.Key, Measure: m})

	return nil
}

// Value returns the value of metric on component ref.
func (s *MemorySink) Value(ref int32, metric string) (int64, bool) {
	return s.RuleValue(ref, metric, "")
}

// RuleValue returns the value of metric bound to rule on component ref.
func (s *MemorySink) RuleValue(ref int32, metric string, rule rules.Key) (int64, bool) {
	i, ok := s.index[entryKey{ref: ref, metric: metric, rule: rule}]
	if !ok {
		return 0, false
	}

	return s.entries[i].Value, true
}

// Len returns the number of stored measures.
func (s *MemorySink) Len() int {
	return len(s.entries)
}

// Entries returns the stored measures ordered by component, metric and rule.
func (s *MemorySink) Entries() []Entry {
	out := slices.Clone(s.entries)

	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.Ref, b.Ref),
			cmp.Compare(a.Metric, b.Metric),
			cmp.Compare(a.Rule, b.Rule),
		)
	})

	return out
}

func describe(m Measure) string {
	if m.Rule == "" {
		return m.Metric
	}

	return m.Metric + "[" + string(m.Rule) + "]"
}
