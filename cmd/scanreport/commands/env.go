// Package commands implements the scanreport CLI subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/Sumatoshi-tech/scanreport/pkg/config"
	"github.com/Sumatoshi-tech/scanreport/pkg/observability"
	"github.com/Sumatoshi-tech/scanreport/pkg/version"
)

// Options are the flags shared by every subcommand.
type Options struct {
	ConfigPath string
	Verbose    bool
}

// session bundles the configuration and telemetry of one command run.
type session struct {
	cfg       *config.Config
	providers observability.Providers
	metrics   *observability.ReportMetrics
	textfile  *observability.Textfile
	logger    *slog.Logger
}

func openSession(opts *Options) (*session, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	obsCfg := observability.FromAppConfig(cfg)
	obsCfg.ServiceVersion = version.Version

	if opts.Verbose {
		obsCfg.LogLevel = slog.LevelDebug
	}

	s := &session{cfg: cfg}

	var readers []sdkmetric.Reader

	if cfg.Telemetry.MetricsFile != "" {
		s.textfile, err = observability.NewTextfile()
		if err != nil {
			return nil, err
		}

		readers = append(readers, s.textfile.Reader())
	}

	s.providers, err = observability.Init(obsCfg, readers...)
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}

	s.logger = s.providers.Logger

	s.metrics, err = observability.NewReportMetrics(s.providers.Meter)
	if err != nil {
		return nil, errors.Join(err, s.providers.Shutdown(context.Background()))
	}

	return s, nil
}

// close dumps the metrics textfile when configured and flushes telemetry.
func (s *session) close(ctx context.Context) error {
	var writeErr error

	if s.textfile != nil {
		writeErr = s.textfile.WriteTo(s.cfg.Telemetry.MetricsFile)
	}

	return errors.Join(writeErr, s.providers.Shutdown(ctx))
}

func reportDir(s *session, args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return s.cfg.Report.Directory
}
