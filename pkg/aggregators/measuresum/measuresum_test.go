package measuresum_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/scanreport/pkg/aggregators/debt"
	"github.com/Sumatoshi-tech/scanreport/pkg/aggregators/issuecount"
	"github.com/Sumatoshi-tech/scanreport/pkg/aggregators/measuresum"
	"github.com/Sumatoshi-tech/scanreport/pkg/measure"
	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/rules"
	"github.com/Sumatoshi-tech/scanreport/pkg/traversal"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

func load(t *testing.T) (*report.Reader, *tree.Tree) {
	t.Helper()

	dir := t.TempDir()
	w := report.NewWriter(dir)

	require.NoError(t, w.WriteMetadata(report.Metadata{RootComponentRef: 1}))
	require.NoError(t, w.WriteComponent(report.Component{Ref: 1, Type: report.ComponentTypeProject, ChildRefs: []int32{2, 5}}))
	require.NoError(t, w.WriteComponent(report.Component{Ref: 2, Type: report.ComponentTypeDirectory, ChildRefs: []int32{3, 4}}))
	require.NoError(t, w.WriteComponent(report.Component{Ref: 3, Type: report.ComponentTypeFile}))
	require.NoError(t, w.WriteComponent(report.Component{Ref: 4, Type: report.ComponentTypeFile}))
	require.NoError(t, w.WriteComponent(report.Component{Ref: 5, Type: report.ComponentTypeDirectory}))

	require.NoError(t, w.WriteMeasures(3, []report.Measure{
		report.IntMeasure("ncloc", 100),
		report.IntMeasure("functions", 4),
		{MetricKey: "ncloc", Kind: report.MeasureKindDouble, DoubleValue: 1000},
		report.IntMeasure("statements", 9),
	}))
	require.NoError(t, w.WriteMeasures(4, []report.Measure{report.IntMeasure("ncloc", 20)}))
	require.NoError(t, w.WriteIssues(4, []report.Issue{{RuleKey: "R1", Severity: report.SeverityMinor, DebtMinutes: new(int64)}}))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	tr, err := tree.Load(r)
	require.NoError(t, err)

	return r, tr
}

func TestVisitor(t *testing.T) {
	t.Parallel()

	r, tr := load(t)
	sink := measure.NewMemorySink()

	d := traversal.NewDriver(r)
	d.Register(measuresum.New([]string{"ncloc", "functions", "ncloc", ""}, sink))

	_, err := d.Run(context.Background(), tr)
	require.NoError(t, err)

	ncloc, ok := sink.Value(1, "ncloc")
	require.True(t, ok)
	assert.Equal(t, int64(120), ncloc)

	dirNcloc, _ := sink.Value(2, "ncloc")
	assert.Equal(t, int64(120), dirNcloc)

	functions, _ := sink.Value(1, "functions")
	assert.Equal(t, int64(4), functions)

	_, ok = sink.Value(1, "statements")
	assert.False(t, ok, "unconfigured metric")

	_, ok = sink.Value(3, "ncloc")
	assert.False(t, ok, "files are not emitted")

	_, ok = sink.Value(5, "ncloc")
	assert.False(t, ok, "no contributing measure")
}

func TestVisitors_SharedRun(t *testing.T) {
	t.Parallel()

	r, tr := load(t)
	sink := measure.NewMemorySink()

	d := traversal.NewDriver(r)
	d.Register(debt.New(rules.Implicit{}, sink))
	d.Register(issuecount.New(sink))
	d.Register(measuresum.New([]string{"ncloc"}, sink))

	stats, err := d.Run(context.Background(), tr)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Measures)

	violations, _ := sink.Value(1, issuecount.Metric)
	assert.Equal(t, int64(1), violations)

	minor, _ := sink.Value(2, "minor_violations")
	assert.Equal(t, int64(1), minor)

	technicalDebt, ok := sink.Value(1, debt.Metric)
	require.True(t, ok)
	assert.Zero(t, technicalDebt)

	ncloc, _ := sink.Value(1, "ncloc")
	assert.Equal(t, int64(120), ncloc)
}
