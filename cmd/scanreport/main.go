// Package main provides the entry point for the scanreport CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/scanreport/cmd/scanreport/commands"
	"github.com/Sumatoshi-tech/scanreport/pkg/version"
)

func main() {
	opts := &commands.Options{}

	rootCmd := &cobra.Command{
		Use:   "scanreport",
		Short: "Scanner report storage and aggregation",
		Long: `scanreport writes, inspects and aggregates analysis reports.

Commands:
  write      Build a report directory from a YAML scan fixture
  inspect    Show the metadata, component tree and files of a report
  aggregate  Roll debt, issue counts and measures up the component tree`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to scanreport.yaml")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(commands.NewWriteCommand(opts))
	rootCmd.AddCommand(commands.NewInspectCommand(opts))
	rootCmd.AddCommand(commands.NewAggregateCommand(opts))
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
