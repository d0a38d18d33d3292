package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/scanreport/pkg/measure"
	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

var _ measure.Sink = (*measure.MemorySink)(nil)

func component(ref int32, key string) *tree.Component {
	return &tree.Component{Component: report.Component{Ref: ref, Key: key}}
}

func TestMemorySink(t *testing.T) {
	t.Parallel()

	s := measure.NewMemorySink()
	root := component(1, "p")
	file := component(2, "p:a.go")

	require.NoError(t, s.Add(file, measure.Measure{Metric: "violations", Value: 3}))
	require.NoError(t, s.Add(root, measure.Measure{Metric: "technical_debt", Value: 30}))
	require.NoError(t, s.Add(root, measure.Measure{Metric: "technical_debt", Rule: "R1", Value: 30}))

	err := s.Add(root, measure.Measure{Metric: "technical_debt", Value: 1})
	require.ErrorIs(t, err, measure.ErrDuplicateMeasure)

	v, ok := s.Value(1, "technical_debt")
	require.True(t, ok)
	assert.Equal(t, int64(30), v)

	v, ok = s.RuleValue(1, "technical_debt", "R1")
	require.True(t, ok)
	assert.Equal(t, int64(30), v)

	_, ok = s.Value(2, "technical_debt")
	assert.False(t, ok)

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, int32(1), entries[0].Ref)
	assert.Empty(t, entries[0].Rule)
	assert.Equal(t, "p", entries[0].ComponentKey)
	assert.Equal(t, int32(2), entries[2].Ref)
	assert.Equal(t, 3, s.Len())
}
