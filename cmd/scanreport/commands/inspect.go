package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/safeconv"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

// NewInspectCommand creates the inspect subcommand.
func NewInspectCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [report-dir]",
		Short: "Show the metadata, component tree and files of a report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}

			runErr := runInspect(cmd.OutOrStdout(), s, reportDir(s, args))

			return errors.Join(runErr, s.close(context.WithoutCancel(cmd.Context())))
		},
	}
}

func runInspect(out io.Writer, s *session, dir string) error {
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

	heading := color.New(color.FgCyan, color.Bold)

	heading.Fprintln(out, "Metadata")
	fmt.Fprintln(out, metadataTable(t.Meta))

	heading.Fprintln(out, "Components")
	fmt.Fprintln(out, componentTable(t, reader.FileStructure()))

	files, err := domainTable(reader)
	if err != nil {
		return err
	}

	heading.Fprintln(out, "Files")
	fmt.Fprintln(out, files)

	return nil
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}

func metadataTable(meta report.Metadata) string {
	tbl := newTable()

	date := "-"
	if !meta.AnalysisDate.IsZero() {
		date = meta.AnalysisDate.UTC().Format(time.RFC3339)
	}

	tbl.AppendRows([]table.Row{
		{"project", meta.ProjectKey},
		{"branch", meta.Branch},
		{"analysis date", date},
		{"root ref", meta.RootComponentRef},
		{"format version", meta.FormatVersion},
	})

	return tbl.Render()
}

func componentTable(t *tree.Tree, fs report.FileStructure) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Ref", "Type", "Key", "Language", "Children", "Issues"})

	t.Walk(func(c *tree.Component) bool {
		issues := "-"
		if fs.HasData(report.DomainIssues, c.Ref) {
			issues = "yes"
		}

		tbl.AppendRow(table.Row{
			c.Ref, c.Type, indent(c.Depth) + c.Key, c.Language, len(c.Children), issues,
		})

		return true
	})

	tbl.AppendFooter(table.Row{"Total: " + strconv.Itoa(t.Size()) + " components"})

	return tbl.Render()
}

func domainTable(reader *report.Reader) (string, error) {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Domain", "Files", "Size"})

	fs := reader.FileStructure()

	var total uint64

	for _, domain := range report.Domains() {
		refs, err := reader.Refs(domain)
		if err != nil {
			return "", err
		}

		if len(refs) == 0 {
			continue
		}

		var size uint64

		for _, ref := range refs {
			info, statErr := os.Stat(fs.Path(domain, ref))
			if statErr != nil {
				return "", fmt.Errorf("stat %s file %d: %w", domain, ref, statErr)
			}

			size += safeconv.MustInt64ToUint64(info.Size())
		}

		total += size

		tbl.AppendRow(table.Row{domain.String(), len(refs), humanize.Bytes(size)})
	}

	tbl.AppendFooter(table.Row{"Total", "", humanize.Bytes(total)})

	return tbl.Render(), nil
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
