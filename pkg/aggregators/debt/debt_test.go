package debt_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/scanreport/pkg/aggregators/debt"
	"github.com/Sumatoshi-tech/scanreport/pkg/measure"
	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/rules"
	"github.com/Sumatoshi-tech/scanreport/pkg/traversal"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

func minutes(m int64) *int64 {
	return &m
}

func issue(rule string, debtMinutes int64) report.Issue {
	return report.Issue{RuleKey: rule, DebtMinutes: minutes(debtMinutes)}
}

func writeReport(t *testing.T, comps []report.Component, issues map[int32][]report.Issue) string {
	t.Helper()

	dir := t.TempDir()
	w := report.NewWriter(dir)

	require.NoError(t, w.WriteMetadata(report.Metadata{ProjectKey: "p", RootComponentRef: comps[0].Ref}))

	for _, c := range comps {
		require.NoError(t, w.WriteComponent(c))
	}

	for ref, batch := range issues {
		require.NoError(t, w.WriteIssues(ref, batch))
	}

	return dir
}

func run(t *testing.T, dir string, repo rules.Repository) *measure.MemorySink {
	t.Helper()

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	tr, err := tree.Load(r)
	require.NoError(t, err)

	sink := measure.NewMemorySink()

	d := traversal.NewDriver(r)
	d.Register(debt.New(repo, sink))

	_, err = d.Run(context.Background(), tr)
	require.NoError(t, err)

	return sink
}

func TestDebt_RootScenario(t *testing.T) {
	t.Parallel()

	dir := writeReport(t,
		[]report.Component{
			{Ref: 1, Type: report.ComponentTypeProject, ChildRefs: []int32{2}},
			{Ref: 2, Type: report.ComponentTypeFile},
		},
		map[int32][]report.Issue{
			2: {issue("R1", 10), issue("R1", 15)},
			1: {issue("R1", 5)},
		},
	)

	sink := run(t, dir, rules.Implicit{})

	total, ok := sink.Value(1, debt.Metric)
	require.True(t, ok)
	assert.Equal(t, int64(30), total)

	byRule, ok := sink.RuleValue(1, debt.Metric, "R1")
	require.True(t, ok)
	assert.Equal(t, int64(30), byRule)

	child, ok := sink.Value(2, debt.Metric)
	require.True(t, ok)
	assert.Equal(t, int64(25), child)
}

func TestDebt_SiblingOrderIndependent(t *testing.T) {
	t.Parallel()

	issues := map[int32][]report.Issue{
		2: {issue("R1", 3), issue("R2", 4)},
		3: {issue("R2", 8)},
		4: {issue("R1", 16), issue("R3", 32)},
	}

	orders := [][]int32{{2, 3, 4}, {4, 2, 3}, {3, 4, 2}}

	var results []map[string]int64

	for _, order := range orders {
		dir := writeReport(t,
			[]report.Component{
				{Ref: 1, Type: report.ComponentTypeProject, ChildRefs: order},
				{Ref: 2, Type: report.ComponentTypeFile},
				{Ref: 3, Type: report.ComponentTypeFile},
				{Ref: 4, Type: report.ComponentTypeFile},
			},
			issues,
		)

		sink := run(t, dir, rules.Implicit{})
		root := map[string]int64{}

		for _, e := range sink.Entries() {
			if e.Ref == 1 {
				root[string(e.Rule)] = e.Value
			}
		}

		results = append(results, root)
	}

	assert.Equal(t, map[string]int64{"": 63, "R1": 19, "R2": 12, "R3": 32}, results[0])
	assert.Equal(t, results[0], results[1])
	assert.Equal(t, results[0], results[2])
}

func TestDebt_IgnoredIssues(t *testing.T) {
	t.Parallel()

	resolved := issue("R1", 50)
	resolved.Resolution = "FIXED"

	dir := writeReport(t,
		[]report.Component{{Ref: 1, Type: report.ComponentTypeFile}},
		map[int32][]report.Issue{
			1: {resolved, issue("R1", 0), {RuleKey: "R1"}, issue("R2", 7)},
		},
	)

	sink := run(t, dir, rules.Implicit{})

	total, ok := sink.Value(1, debt.Metric)
	require.True(t, ok)
	assert.Equal(t, int64(7), total)

	_, ok = sink.RuleValue(1, debt.Metric, "R1")
	assert.False(t, ok)
	assert.Equal(t, 2, sink.Len())
}

func TestDebt_UnknownRule(t *testing.T) {
	t.Parallel()

	repo, err := rules.NewIndex([]rules.Rule{{Key: "go:KNOWN"}})
	require.NoError(t, err)

	dir := writeReport(t,
		[]report.Component{{Ref: 1, Type: report.ComponentTypeFile}},
		map[int32][]report.Issue{
			1: {
				{RuleRepository: "go", RuleKey: "KNOWN", DebtMinutes: minutes(4)},
				{RuleRepository: "go", RuleKey: "GONE", DebtMinutes: minutes(6)},
			},
		},
	)

	sink := run(t, dir, repo)

	total, _ := sink.Value(1, debt.Metric)
	assert.Equal(t, int64(10), total)

	known, ok := sink.RuleValue(1, debt.Metric, "go:KNOWN")
	require.True(t, ok)
	assert.Equal(t, int64(4), known)

	_, ok = sink.RuleValue(1, debt.Metric, "go:GONE")
	assert.False(t, ok)
}

func TestDebt_IndependentReports(t *testing.T) {
	t.Parallel()

	comps := []report.Component{
		{Ref: 1, Type: report.ComponentTypeProject, ChildRefs: []int32{2}},
		{Ref: 2, Type: report.ComponentTypeFile},
	}

	dirs := []string{
		writeReport(t, comps, map[int32][]report.Issue{2: {issue("R1", 10)}}),
		writeReport(t, comps, map[int32][]report.Issue{2: {issue("R1", 100)}, 1: {issue("R2", 1)}}),
	}

	sinks := make([]*measure.MemorySink, len(dirs))
	errs := make([]error, len(dirs))

	var wg sync.WaitGroup

	for i, dir := range dirs {
		wg.Add(1)

		go func() {
			defer wg.Done()

			r, err := report.NewReader(dir)
			if err != nil {
				errs[i] = err

				return
			}

			tr, err := tree.Load(r)
			if err != nil {
				errs[i] = err

				return
			}

			sinks[i] = measure.NewMemorySink()

			d := traversal.NewDriver(r)
			d.Register(debt.New(rules.Implicit{}, sinks[i]))

			_, errs[i] = d.Run(context.Background(), tr)
		}()
	}

	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	first, _ := sinks[0].Value(1, debt.Metric)
	second, _ := sinks[1].Value(1, debt.Metric)

	assert.Equal(t, int64(10), first)
	assert.Equal(t, int64(101), second)

	_, ok := sinks[0].RuleValue(1, debt.Metric, "R2")
	assert.False(t, ok)
}
