package report_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/scanreport/pkg/report"
)

func debt(minutes int64) *int64 {
	return &minutes
}

type countingRecorder struct {
	written map[string]int
	read    map[string]int
	bytes   int64
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{written: map[string]int{}, read: map[string]int{}}
}

func (r *countingRecorder) FileWritten(domain string, records int, bytes int64) {
	r.written[domain] += records
	r.bytes += bytes
}

func (r *countingRecorder) RecordsRead(domain string, records int) {
	r.read[domain] += records
}

var _ report.Recorder = (*countingRecorder)(nil)

func TestMetadata_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)

	meta := report.Metadata{
		AnalysisDate:     time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		ProjectKey:       "acme:shop",
		Branch:           "main",
		RootComponentRef: 1,
	}

	require.NoError(t, w.WriteMetadata(meta))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	got, err := r.Metadata()
	require.NoError(t, err)

	meta.FormatVersion = report.FormatVersion
	assert.Equal(t, meta, got)
}

func TestMetadata_EpochDate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)

	epoch := time.Unix(0, 0).UTC()
	require.NoError(t, w.WriteMetadata(report.Metadata{AnalysisDate: epoch, ProjectKey: "p"}))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	got, err := r.Metadata()
	require.NoError(t, err)
	assert.Equal(t, epoch, got.AnalysisDate)
}

func TestSingleRecordFiles_TrailingFrame(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)

	require.NoError(t, w.WriteMetadata(report.Metadata{ProjectKey: "p", RootComponentRef: 1}))
	require.NoError(t, w.WriteComponent(report.Component{Ref: 1, Key: "p"}))

	fs := w.FileStructure()

	for _, path := range []string{fs.MetadataFile(), fs.ComponentFile(1)} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, append(data, data...), 0o600))
	}

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	_, err = r.Metadata()
	require.ErrorIs(t, err, report.ErrCorruptReport)

	_, err = r.Component(1)
	require.ErrorIs(t, err, report.ErrCorruptReport)
}

func TestMetadata_WrittenTwice(t *testing.T) {
	t.Parallel()

	w := report.NewWriter(t.TempDir())

	require.NoError(t, w.WriteMetadata(report.Metadata{ProjectKey: "p"}))
	require.ErrorIs(t, w.WriteMetadata(report.Metadata{ProjectKey: "p"}), report.ErrMetadataWritten)
}

func TestMetadata_Missing(t *testing.T) {
	t.Parallel()

	r, err := report.NewReader(t.TempDir())
	require.NoError(t, err)

	_, err = r.Metadata()
	require.ErrorIs(t, err, report.ErrMetadataNotFound)
}

func TestMetadata_NewerVersion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)
	require.NoError(t, w.WriteMetadata(report.Metadata{FormatVersion: report.FormatVersion + 1}))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	_, err = r.Metadata()
	require.ErrorIs(t, err, report.ErrUnsupportedVersion)
}

func TestComponent_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)

	comp := report.Component{
		Ref:       2,
		UUID:      "c2",
		Type:      report.ComponentTypeFile,
		Key:       "acme:shop:src/cart.go",
		Name:      "cart.go",
		Path:      "src/cart.go",
		Language:  "go",
		IsTest:    true,
		ChildRefs: []int32{7, 3, 5},
	}

	require.NoError(t, w.WriteComponent(comp))
	require.ErrorIs(t, w.WriteComponent(comp), report.ErrAlreadyWritten)

	r, err := report.NewReader(dir, report.WithComponentCacheSize(0))
	require.NoError(t, err)

	got, err := r.Component(2)
	require.NoError(t, err)
	assert.Equal(t, comp, got)

	_, err = r.Component(9)
	require.ErrorIs(t, err, report.ErrComponentNotFound)
}

func TestComponent_InvalidRef(t *testing.T) {
	t.Parallel()

	w := report.NewWriter(t.TempDir())

	require.ErrorIs(t, w.WriteComponent(report.Component{Ref: 0}), report.ErrInvalidRef)
	require.ErrorIs(t, w.WriteIssues(-1, nil), report.ErrInvalidRef)
}

func TestComponent_Cached(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)
	require.NoError(t, w.WriteComponent(report.Component{Ref: 1, Key: "root"}))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	first, err := r.Component(1)
	require.NoError(t, err)

	require.NoError(t, os.Remove(r.FileStructure().ComponentFile(1)))

	second, err := r.Component(1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIssues_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, compress := range []bool{false, true} {
		dir := t.TempDir()
		rec := newCountingRecorder()
		w := report.NewWriter(dir, report.WithCompression(compress), report.WithWriterRecorder(rec))

		issues := []report.Issue{
			{
				UUID:           "i1",
				RuleRepository: "go",
				RuleKey:        "S100",
				Message:        "rename this function",
				Line:           12,
				Severity:       report.SeverityMajor,
				DebtMinutes:    debt(10),
				Tags:           []string{"convention", "style"},
			},
			{UUID: "i2", RuleKey: "S200", Resolution: "FIXED", DebtMinutes: debt(0)},
			{UUID: "i3", RuleKey: "S300", Severity: report.SeverityBlocker},
		}

		require.NoError(t, w.WriteIssues(5, issues))
		assert.Equal(t, 3, rec.written[report.DomainIssues.String()])
		assert.Equal(t, report.WriterStats{Files: 1, Records: 3, Bytes: rec.bytes}, w.Stats())

		r, err := report.NewReader(dir, report.WithReaderRecorder(rec))
		require.NoError(t, err)

		it, err := r.ReadIssues(5)
		require.NoError(t, err)

		got, err := report.Collect(it)
		require.NoError(t, err)
		assert.Equal(t, issues, got)
		assert.Equal(t, 3, rec.read[report.DomainIssues.String()])
	}
}

func TestIssues_WrittenTwice(t *testing.T) {
	t.Parallel()

	w := report.NewWriter(t.TempDir())

	require.NoError(t, w.WriteIssues(3, []report.Issue{{RuleKey: "a"}}))
	require.ErrorIs(t, w.WriteIssues(3, []report.Issue{{RuleKey: "b"}}), report.ErrAlreadyWritten)

	// Other domains and refs are independent.
	require.NoError(t, w.WriteMeasures(3, nil))
	require.NoError(t, w.WriteIssues(4, nil))
}

func TestHasData(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	assert.False(t, r.HasData(report.DomainIssues, 1))
	assert.False(t, w.FileStructure().HasData(report.DomainIssues, 1))

	require.NoError(t, w.WriteIssues(1, []report.Issue{{RuleKey: "x"}}))

	assert.True(t, r.HasData(report.DomainIssues, 1))
	assert.False(t, r.HasData(report.DomainMeasures, 1))
	assert.False(t, r.HasData(report.DomainDeletedIssues, 1))
	assert.False(t, r.HasData(report.DomainIssues, 2))
}

func TestHasData_DoesNotCreateDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "missing")

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	assert.False(t, r.HasData(report.DomainSource, 1))

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestEmptyBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)

	require.NoError(t, w.WriteIssues(4, nil))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	assert.True(t, r.HasData(report.DomainIssues, 4))

	it, err := r.ReadIssues(4)
	require.NoError(t, err)

	got, err := report.Collect(it)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_NeverWritten(t *testing.T) {
	t.Parallel()

	r, err := report.NewReader(t.TempDir())
	require.NoError(t, err)

	it, err := r.ReadMeasures(42)
	require.NoError(t, err)
	assert.False(t, it.Next())
	require.NoError(t, it.Err())
	require.NoError(t, it.Close())
}

func TestAllDomains_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir, report.WithCompression(true))

	date := time.Date(2023, 11, 5, 8, 0, 0, 0, time.UTC)
	rng := report.TextRange{StartLine: 1, EndLine: 3, StartOffset: 2, EndOffset: 10}

	measures := []report.Measure{
		report.IntMeasure("ncloc", 120),
		{MetricKey: "coverage", Kind: report.MeasureKindDouble, DoubleValue: 81.5},
		{MetricKey: "alert", Kind: report.MeasureKindString, StringValue: "OK"},
		{MetricKey: "generated", Kind: report.MeasureKindBool, BoolValue: true},
	}
	coverage := []report.LineCoverage{
		{Line: 1, UTHits: true, Conditions: 2, UTCoveredConditions: 1, OverallCoveredConditions: 1},
		{Line: 2, ITHits: true, ITCoveredConditions: 3},
	}
	dups := []report.Duplication{{
		Origin: rng,
		Duplicates: []report.Duplicate{
			{Range: report.TextRange{StartLine: 20, EndLine: 22}},
			{Range: rng, OtherFileRef: 9},
		},
	}}
	changesets := []report.Changeset{{Line: 1, Revision: "abc", Author: "dev@acme.io", Date: date}}
	symbols := []report.Symbol{{Declaration: rng, References: []report.TextRange{{StartLine: 7, EndLine: 7}}}}
	highlighting := []report.SyntaxHighlighting{{Range: rng, Type: report.HighlightingKeyword}}
	source := []report.SourceLine{{Line: 1, Text: "package cart"}, {Line: 2}, {Line: 3, Text: "func Add() {}"}}

	require.NoError(t, w.WriteMeasures(2, measures))
	require.NoError(t, w.WriteCoverage(2, coverage))
	require.NoError(t, w.WriteDuplications(2, dups))
	require.NoError(t, w.WriteChangesets(2, changesets))
	require.NoError(t, w.WriteSymbols(2, symbols))
	require.NoError(t, w.WriteSyntaxHighlighting(2, highlighting))
	require.NoError(t, w.WriteSource(2, source))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	assertRead(t, measures, r.ReadMeasures)
	assertRead(t, coverage, r.ReadCoverage)
	assertRead(t, dups, r.ReadDuplications)
	assertRead(t, changesets, r.ReadChangesets)
	assertRead(t, symbols, r.ReadSymbols)
	assertRead(t, highlighting, r.ReadSyntaxHighlighting)
	assertRead(t, source, r.ReadSource)

	for _, d := range report.Domains() {
		if d == report.DomainIssues || d == report.DomainDeletedIssues {
			continue
		}

		refs, refsErr := r.Refs(d)
		require.NoError(t, refsErr)
		assert.Equal(t, []int32{2}, refs, d.String())
	}
}

func assertRead[T any](t *testing.T, want []T, read func(int32) (*report.Iterator[T], error)) {
	t.Helper()

	it, err := read(2)
	require.NoError(t, err)

	got, err := report.Collect(it)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeletedComponentIssues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)

	issues := []report.Issue{{UUID: "old-1", RuleKey: "S1", Status: "CLOSED"}}

	require.ErrorIs(t, w.WriteDeletedComponentIssues(6, "", issues), report.ErrInvalidUUID)
	require.NoError(t, w.WriteDeletedComponentIssues(6, "gone-uuid", issues))
	require.NoError(t, w.WriteIssues(6, []report.Issue{{UUID: "live", RuleKey: "S2"}}))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	key, it, err := r.ReadDeletedComponentIssues(6)
	require.NoError(t, err)

	uuid, ok := key.UUID()
	require.True(t, ok)
	assert.Equal(t, "gone-uuid", uuid)

	got, err := report.Collect(it)
	require.NoError(t, err)
	assert.Equal(t, issues, got)

	live, err := r.ReadIssues(6)
	require.NoError(t, err)

	liveIssues, err := report.Collect(live)
	require.NoError(t, err)
	require.Len(t, liveIssues, 1)
	assert.Equal(t, "live", liveIssues[0].UUID)

	refs, err := r.DeletedComponentRefs()
	require.NoError(t, err)
	assert.Equal(t, []int32{6}, refs)

	refs, err = r.Refs(report.DomainIssues)
	require.NoError(t, err)
	assert.Equal(t, []int32{6}, refs)
}

func TestRead_EnvelopeMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)
	require.NoError(t, w.WriteIssues(1, []report.Issue{{RuleKey: "a"}}))

	fs := w.FileStructure()
	require.NoError(t, os.Rename(fs.Path(report.DomainIssues, 1), fs.Path(report.DomainIssues, 2)))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	_, err = r.ReadIssues(2)
	require.ErrorIs(t, err, report.ErrCorruptReport)

	// A ref-keyed file is not a deleted-component file.
	require.NoError(t, os.Rename(fs.Path(report.DomainIssues, 2), fs.Path(report.DomainDeletedIssues, 2)))

	_, _, err = r.ReadDeletedComponentIssues(2)
	require.ErrorIs(t, err, report.ErrCorruptReport)
}

func TestRead_Corrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)
	require.NoError(t, w.WriteIssues(1, []report.Issue{{RuleKey: "a", Message: "long enough message"}}))

	path := w.FileStructure().Path(report.DomainIssues, 1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)-4], 0o600))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	it, err := r.ReadIssues(1)
	require.NoError(t, err)

	_, err = report.Collect(it)
	require.ErrorIs(t, err, report.ErrCorruptReport)

	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err = r.ReadIssues(1)
	require.ErrorIs(t, err, report.ErrCorruptReport)
}

func TestEach_StopsAndCloses(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)
	require.NoError(t, w.WriteSource(1, []report.SourceLine{{Line: 1}, {Line: 2}, {Line: 3}}))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	it, err := r.ReadSource(1)
	require.NoError(t, err)

	stop := assert.AnError

	var seen int

	err = report.Each(it, func(report.SourceLine) error {
		seen++
		if seen == 2 {
			return stop
		}

		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seen)
	assert.False(t, it.Next())
	require.NoError(t, it.Close())
}

func TestIterator_All(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)
	require.NoError(t, w.WriteSource(1, []report.SourceLine{{Line: 1}, {Line: 2}}))

	r, err := report.NewReader(dir)
	require.NoError(t, err)

	it, err := r.ReadSource(1)
	require.NoError(t, err)

	defer it.Close()

	var lines []int32

	for line, iterErr := range it.All() {
		require.NoError(t, iterErr)

		lines = append(lines, line.Line)
	}

	assert.Equal(t, []int32{1, 2}, lines)
	assert.Equal(t, 2, it.Count())
}

func TestWriter_NoTemporaryFilesLeft(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := report.NewWriter(dir)

	require.NoError(t, w.WriteMetadata(report.Metadata{ProjectKey: "p", RootComponentRef: 1}))
	require.NoError(t, w.WriteComponent(report.Component{Ref: 1}))
	require.NoError(t, w.WriteIssues(1, nil))

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
