package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/scanreport/pkg/aggregators/debt"
	"github.com/Sumatoshi-tech/scanreport/pkg/aggregators/issuecount"
	"github.com/Sumatoshi-tech/scanreport/pkg/aggregators/measuresum"
	"github.com/Sumatoshi-tech/scanreport/pkg/config"
	"github.com/Sumatoshi-tech/scanreport/pkg/measure"
	"github.com/Sumatoshi-tech/scanreport/pkg/measure/sqlitesink"
	"github.com/Sumatoshi-tech/scanreport/pkg/observability"
	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/rules"
	"github.com/Sumatoshi-tech/scanreport/pkg/traversal"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// Result is one computed measure as printed by the aggregate command.
type Result struct {
	Component string `json:"component" yaml:"component"`
	Metric    string `json:"metric" yaml:"metric"`
	Rule      string `json:"rule,omitempty" yaml:"rule,omitempty"`
	Value     int64  `json:"value" yaml:"value"`
	Ref       int32  `json:"ref" yaml:"ref"`
}

type aggregateFlags struct {
	rulesFile  string
	sink       string
	sqlitePath string
	format     string
	measures   []string
}

// NewAggregateCommand creates the aggregate subcommand.
func NewAggregateCommand(opts *Options) *cobra.Command {
	var flags aggregateFlags

	cmd := &cobra.Command{
		Use:   "aggregate [report-dir]",
		Short: "Roll debt, issue counts and measures up the component tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}

			err = applyAggregateFlags(cmd, s.cfg, flags)
			if err != nil {
				return errors.Join(err, s.close(context.WithoutCancel(cmd.Context())))
			}

			runErr := runAggregate(cmd.Context(), cmd.OutOrStdout(), s, reportDir(s, args), flags.format)

			return errors.Join(runErr, s.close(context.WithoutCancel(cmd.Context())))
		},
	}

	cmd.Flags().StringVar(&flags.rulesFile, "rules", "", "rule catalogue (YAML); issues of unknown rules count without breakdown")
	cmd.Flags().StringVar(&flags.sink, "sink", "", "measure sink: memory or sqlite")
	cmd.Flags().StringVar(&flags.sqlitePath, "sqlite-path", "", "database file for the sqlite sink")
	cmd.Flags().StringVarP(&flags.format, "format", "f", formatTable, "output format: table, json or yaml")
	cmd.Flags().StringSliceVar(&flags.measures, "measures", nil, "raw measures summed over directories")

	return cmd
}

// applyAggregateFlags overrides the loaded configuration and validates the
// result.
func applyAggregateFlags(cmd *cobra.Command, cfg *config.Config, flags aggregateFlags) error {
	if flags.rulesFile != "" {
		cfg.Aggregation.RulesFile = flags.rulesFile
	}

	if flags.sink != "" {
		cfg.Sink.Backend = flags.sink
	}

	if flags.sqlitePath != "" {
		cfg.Sink.SQLitePath = flags.sqlitePath
	}

	if cmd.Flags().Changed("measures") {
		cfg.Aggregation.MeasureKeys = flags.measures
	}

	return cfg.Validate()
}

func runAggregate(ctx context.Context, out io.Writer, s *session, dir, format string) error {
	if format != formatTable && format != formatJSON && format != formatYAML {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	repo, err := loadRules(s.cfg.Aggregation.RulesFile)
	if err != nil {
		return err
	}

	reader, err := report.NewReader(dir,
		report.WithComponentCacheSize(s.cfg.Report.ComponentCacheSize),
		report.WithReaderLogger(s.logger),
		report.WithReaderRecorder(s.metrics),
	)
	if err != nil {
		return err
	}

	t, err := tree.Load(reader)
	if err != nil {
		return err
	}

	ctx = observability.WithReportScope(ctx, observability.ReportScope{
		AnalysisDate: t.Meta.AnalysisDate,
		Dir:          dir,
		Project:      t.Meta.ProjectKey,
		Branch:       t.Meta.Branch,
	})

	var results []Result

	switch s.cfg.Sink.Backend {
	case config.SinkSQLite:
		results, err = aggregateToSQLite(ctx, s, reader, t, repo)
	default:
		results, err = aggregateInMemory(ctx, s, reader, t, repo)
	}

	if err != nil {
		return err
	}

	return printResults(out, format, results)
}

func loadRules(path string) (rules.Repository, error) {
	if path == "" {
		return rules.Implicit{}, nil
	}

	idx, err := rules.LoadYAML(path)
	if err != nil {
		return nil, err
	}

	return idx, nil
}

func newDriver(s *session, reader *report.Reader, repo rules.Repository, sink measure.Sink) *traversal.Driver {
	driver := traversal.NewDriver(reader,
		traversal.WithLogger(s.logger),
		traversal.WithTracer(s.providers.Tracer),
		traversal.WithStatsRecorder(s.metrics),
	)

	driver.Register(debt.New(repo, sink))
	driver.Register(issuecount.New(sink))
	driver.Register(measuresum.New(s.cfg.Aggregation.MeasureKeys, sink))

	return driver
}

func aggregateInMemory(
	ctx context.Context, s *session, reader *report.Reader, t *tree.Tree, repo rules.Repository,
) ([]Result, error) {
	sink := measure.NewMemorySink()

	_, err := newDriver(s, reader, repo, sink).Run(ctx, t)
	if err != nil {
		return nil, err
	}

	entries := sink.Entries()
	results := make([]Result, 0, len(entries))

	for _, e := range entries {
		results = append(results, Result{
			Component: e.ComponentKey,
			Metric:    e.Metric,
			Rule:      string(e.Rule),
			Value:     e.Value,
			Ref:       e.Ref,
		})
	}

	return results, nil
}

func aggregateToSQLite(
	ctx context.Context, s *session, reader *report.Reader, t *tree.Tree, repo rules.Repository,
) ([]Result, error) {
	analysis := analysisID(t.Meta)

	sink, err := sqlitesink.Open(ctx, s.cfg.Sink.SQLitePath, analysis)
	if err != nil {
		return nil, err
	}

	_, err = newDriver(s, reader, repo, sink).Run(ctx, t)
	if err != nil {
		return nil, errors.Join(err, sink.Abort())
	}

	err = sink.Close()
	if err != nil {
		return nil, err
	}

	rows, err := sqlitesink.Query(ctx, s.cfg.Sink.SQLitePath, analysis)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(rows))

	for _, row := range rows {
		results = append(results, Result{
			Component: row.ComponentKey,
			Metric:    row.Metric,
			Rule:      string(row.Rule),
			Value:     row.Value,
			Ref:       row.ComponentRef,
		})
	}

	return results, nil
}

// analysisID names one analysis in the sqlite sink. Re-aggregating the same
// report replaces its rows.
func analysisID(meta report.Metadata) string {
	id := meta.ProjectKey
	if meta.Branch != "" {
		id += "@" + meta.Branch
	}

	if !meta.AnalysisDate.IsZero() {
		id += "/" + strconv.FormatInt(meta.AnalysisDate.Unix(), 10)
	}

	return id
}

func printResults(out io.Writer, format string, results []Result) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		err := enc.Encode(results)
		if err != nil {
			return fmt.Errorf("encode results: %w", err)
		}

		return nil
	case formatYAML:
		enc := yaml.NewEncoder(out)

		err := enc.Encode(results)
		if err != nil {
			return fmt.Errorf("encode results: %w", err)
		}

		return enc.Close()
	default:
		tbl := newTable()
		tbl.AppendHeader(table.Row{"Ref", "Component", "Metric", "Rule", "Value"})

		for _, r := range results {
			tbl.AppendRow(table.Row{r.Ref, r.Component, r.Metric, r.Rule, r.Value})
		}

		tbl.AppendFooter(table.Row{"Total: " + strconv.Itoa(len(results)) + " measures"})

		color.New(color.FgCyan, color.Bold).Fprintln(out, "Measures")
		fmt.Fprintln(out, tbl.Render())

		return nil
	}
}
