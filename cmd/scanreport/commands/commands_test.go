package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/scanreport/cmd/scanreport/commands"
	"github.com/Sumatoshi-tech/scanreport/pkg/config"
)

const projectFixture = "../../../internal/fixture/testdata/project.yaml"

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeReport(t *testing.T, extra ...string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "report")
	args := append([]string{projectFixture, "-o", dir}, extra...)

	out, err := execute(t, commands.NewWriteCommand(&commands.Options{}), args...)
	require.NoError(t, err)
	assert.Contains(t, out, "components: 5")

	return dir
}

func findResult(results []commands.Result, ref int32, metric, rule string) (commands.Result, bool) {
	for _, r := range results {
		if r.Ref == ref && r.Metric == metric && r.Rule == rule {
			return r, true
		}
	}

	return commands.Result{}, false
}

func TestWriteAndInspect(t *testing.T) {
	t.Parallel()

	dir := writeReport(t, "--compress")

	out, err := execute(t, commands.NewInspectCommand(&commands.Options{}), dir)
	require.NoError(t, err)

	assert.Contains(t, out, "acme:src/main.go")
	assert.Contains(t, out, "ISSUES")
	assert.Contains(t, out, "DELETED_ISSUES")
}

func TestAggregate_JSON(t *testing.T) {
	t.Parallel()

	dir := writeReport(t)

	out, err := execute(t, commands.NewAggregateCommand(&commands.Options{}), dir, "--format", "json")
	require.NoError(t, err)

	var results []commands.Result

	require.NoError(t, json.Unmarshal([]byte(out), &results))

	debtRoot, ok := findResult(results, 1, "technical_debt", "")
	require.True(t, ok)
	assert.Equal(t, int64(15), debtRoot.Value)
	assert.Equal(t, "acme", debtRoot.Component)

	perRule, ok := findResult(results, 2, "technical_debt", "go:S1192")
	require.True(t, ok)
	assert.Equal(t, int64(10), perRule.Value)

	violations, ok := findResult(results, 1, "violations", "")
	require.True(t, ok)
	assert.Equal(t, int64(2), violations.Value)

	ncloc, ok := findResult(results, 1, "ncloc", "")
	require.True(t, ok)
	assert.Equal(t, int64(13), ncloc.Value)

	lines, ok := findResult(results, 1, "lines", "")
	require.True(t, ok)
	assert.Equal(t, int64(35), lines.Value)

	_, ok = findResult(results, 3, "ncloc", "")
	assert.False(t, ok, "raw measures are not re-emitted on files")
}

func TestAggregate_YAMLWithRules(t *testing.T) {
	t.Parallel()

	dir := writeReport(t)

	rulesPath := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rulesPath, []byte(`
rules:
  - key: go:S1186
    name: Functions should not be empty
    severity: MAJOR
`), 0o600))

	out, err := execute(t, commands.NewAggregateCommand(&commands.Options{}),
		dir, "--format", "yaml", "--rules", rulesPath, "--measures", "ncloc")
	require.NoError(t, err)

	var results []commands.Result

	require.NoError(t, yaml.Unmarshal([]byte(out), &results))

	debtRoot, ok := findResult(results, 1, "technical_debt", "")
	require.True(t, ok)
	assert.Equal(t, int64(15), debtRoot.Value)

	_, ok = findResult(results, 1, "technical_debt", "go:S1186")
	assert.True(t, ok)

	_, ok = findResult(results, 1, "technical_debt", "go:S1192")
	assert.False(t, ok, "rules outside the catalogue have no breakdown")

	_, ok = findResult(results, 1, "lines", "")
	assert.False(t, ok, "only the requested measures are summed")
}

func TestAggregate_SQLiteSink(t *testing.T) {
	t.Parallel()

	dir := writeReport(t)
	dbPath := filepath.Join(t.TempDir(), "measures.db")

	for range 2 {
		out, err := execute(t, commands.NewAggregateCommand(&commands.Options{}),
			dir, "--format", "json", "--sink", "sqlite", "--sqlite-path", dbPath)
		require.NoError(t, err)

		var results []commands.Result

		require.NoError(t, json.Unmarshal([]byte(out), &results))

		debtRoot, ok := findResult(results, 1, "technical_debt", "")
		require.True(t, ok)
		assert.Equal(t, int64(15), debtRoot.Value)
	}
}

func TestAggregate_Table(t *testing.T) {
	t.Parallel()

	dir := writeReport(t)

	out, err := execute(t, commands.NewAggregateCommand(&commands.Options{}), dir)
	require.NoError(t, err)

	assert.Contains(t, out, "technical_debt")
	assert.Contains(t, out, "Measures")
}

func TestAggregate_UnknownFormat(t *testing.T) {
	t.Parallel()

	dir := writeReport(t)

	_, err := execute(t, commands.NewAggregateCommand(&commands.Options{}), dir, "--format", "xml")
	require.ErrorIs(t, err, commands.ErrUnknownFormat)
}

func TestAggregate_InvalidSinkFlag(t *testing.T) {
	t.Parallel()

	dir := writeReport(t)

	_, err := execute(t, commands.NewAggregateCommand(&commands.Options{}), dir, "--sink", "bogus")
	require.ErrorIs(t, err, config.ErrInvalidSinkBackend)
}

func TestAggregate_SQLiteSinkWithoutPath(t *testing.T) {
	t.Parallel()

	dir := writeReport(t)

	_, err := execute(t, commands.NewAggregateCommand(&commands.Options{}), dir, "--sink", "sqlite")
	require.ErrorIs(t, err, config.ErrMissingSQLitePath)
}

func TestAggregate_MissingReport(t *testing.T) {
	t.Parallel()

	_, err := execute(t, commands.NewAggregateCommand(&commands.Options{}), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestWrite_InvalidFixture(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project: p\n"), 0o600))

	_, err := execute(t, commands.NewWriteCommand(&commands.Options{}), path, "-o", t.TempDir())
	require.Error(t, err)
}

func TestSession_WritesMetricsTextfile(t *testing.T) {
	t.Parallel()

	metricsPath := filepath.Join(t.TempDir(), "scanreport.prom")
	configPath := filepath.Join(t.TempDir(), "scanreport.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("telemetry:\n  metrics_file: "+metricsPath+"\n"), 0o600))

	dir := filepath.Join(t.TempDir(), "report")

	_, err := execute(t, commands.NewWriteCommand(&commands.Options{ConfigPath: configPath}),
		projectFixture, "-o", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scanreport_report_files_written_total")
}
