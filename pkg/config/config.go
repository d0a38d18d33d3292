// Package config provides configuration loading and validation for scanreport.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidLogLevel    = errors.New("invalid logging level")
	ErrInvalidLogFormat   = errors.New("invalid logging format")
	ErrInvalidCacheSize   = errors.New("component cache size must not be negative")
	ErrInvalidSampleRatio = errors.New("sample ratio must be between 0 and 1")
	ErrInvalidSinkBackend = errors.New("invalid sink backend")
	ErrMissingSQLitePath  = errors.New("sqlite sink requires sink.sqlite_path")
)

// Sink backends.
const (
	SinkMemory = "memory"
	SinkSQLite = "sqlite"
)

const envPrefix = "SCANREPORT"

var (
	logLevels   = []string{"debug", "info", "warn", "error"}
	logFormats  = []string{"json", "text"}
	sinkBackend = []string{SinkMemory, SinkSQLite}
)

// Config holds all configuration for scanreport.
type Config struct {
	Report      ReportConfig      `mapstructure:"report"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Telemetry   TelemetryConfig   `mapstructure:"telemetry"`
	Aggregation AggregationConfig `mapstructure:"aggregation"`
	Sink        SinkConfig        `mapstructure:"sink"`
}

// ReportConfig holds report storage settings.
type ReportConfig struct {
	Directory          string `mapstructure:"directory"`
	ComponentCacheSize int    `mapstructure:"component_cache_size"`
	Compress           bool   `mapstructure:"compress"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	MetricsFile  string  `mapstructure:"metrics_file"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
}

// AggregationConfig selects what the aggregate command computes.
type AggregationConfig struct {
	RulesFile   string   `mapstructure:"rules_file"`
	MeasureKeys []string `mapstructure:"measure_keys"`
}

// SinkConfig selects where computed measures go.
type SinkConfig struct {
	Backend    string `mapstructure:"backend"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// LoadConfig loads configuration from file and environment variables. With
// an empty path, scanreport.yaml is looked up in the working directory and
// /etc/scanreport; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("scanreport")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("/etc/scanreport")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("report.directory", DefaultReportDirectory)
	viperCfg.SetDefault("report.compress", DefaultReportCompress)
	viperCfg.SetDefault("report.component_cache_size", DefaultComponentCacheSize)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", false)
	viperCfg.SetDefault("telemetry.sample_ratio", DefaultSampleRatio)
	viperCfg.SetDefault("telemetry.metrics_file", "")

	viperCfg.SetDefault("aggregation.rules_file", "")
	viperCfg.SetDefault("aggregation.measure_keys", DefaultMeasureKeys)

	viperCfg.SetDefault("sink.backend", DefaultSinkBackend)
	viperCfg.SetDefault("sink.sqlite_path", "")
}

// Validate normalizes and checks cfg. Callers that override fields after
// LoadConfig, such as command-line flags, must validate again.
func (config *Config) Validate() error {
	err := config.validate()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

func (config *Config) validate() error {
	config.Logging.Level = strings.ToLower(config.Logging.Level)
	config.Logging.Format = strings.ToLower(config.Logging.Format)

	if !slices.Contains(logLevels, config.Logging.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	if !slices.Contains(logFormats, config.Logging.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	if config.Report.ComponentCacheSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, config.Report.ComponentCacheSize)
	}

	if config.Telemetry.SampleRatio < 0 || config.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRatio, config.Telemetry.SampleRatio)
	}

	if !slices.Contains(sinkBackend, config.Sink.Backend) {
		return fmt.Errorf("%w: %q", ErrInvalidSinkBackend, config.Sink.Backend)
	}

	if config.Sink.Backend == SinkSQLite && config.Sink.SQLitePath == "" {
		return ErrMissingSQLitePath
	}

	return nil
}
