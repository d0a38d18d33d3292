package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/scanreport/internal/fixture"
	"github.com/Sumatoshi-tech/scanreport/pkg/observability"
	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/safeconv"
)

// NewWriteCommand creates the write subcommand.
func NewWriteCommand(opts *Options) *cobra.Command {
	var (
		outputDir string
		compress  bool
	)

	cmd := &cobra.Command{
		Use:   "write <fixture.yaml>",
		Short: "Build a report directory from a YAML scan fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}

			if outputDir == "" {
				outputDir = s.cfg.Report.Directory
			}

			if !cmd.Flags().Changed("compress") {
				compress = s.cfg.Report.Compress
			}

			runErr := runWrite(cmd.Context(), cmd.OutOrStdout(), s, args[0], outputDir, compress)

			return errors.Join(runErr, s.close(context.WithoutCancel(cmd.Context())))
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "report directory (defaults to report.directory)")
	cmd.Flags().BoolVar(&compress, "compress", false, "LZ4-compress report files")

	return cmd
}

func runWrite(ctx context.Context, out io.Writer, s *session, fixturePath, outputDir string, compress bool) error {
	fx, err := fixture.Load(fixturePath)
	if err != nil {
		return err
	}

	w := report.NewWriter(outputDir,
		report.WithCompression(compress),
		report.WithWriterLogger(s.logger),
		report.WithWriterRecorder(s.metrics),
	)

	summary, err := fixture.Build(fx, w)
	if err != nil {
		return err
	}

	stats := w.Stats()

	ctx = observability.WithReportScope(ctx, observability.ReportScope{
		AnalysisDate: fx.AnalysisDate,
		Dir:          outputDir,
		Project:      fx.Project,
		Branch:       fx.Branch,
	})

	s.logger.InfoContext(ctx, "report written",
		"files", stats.Files,
		"bytes", stats.Bytes,
	)

	color.New(color.FgGreen).Fprintf(out, "Report written to %s\n", outputDir)
	fmt.Fprintf(out, "  components: %d\n", summary.Components)
	fmt.Fprintf(out, "  issues:     %d\n", summary.Issues)
	fmt.Fprintf(out, "  measures:   %d\n", summary.Measures)
	fmt.Fprintf(out, "  deleted:    %d\n", summary.Deleted)
	fmt.Fprintf(out, "  files:      %d (%s)\n", stats.Files, humanize.Bytes(safeconv.MustInt64ToUint64(stats.Bytes)))

	return nil
}
