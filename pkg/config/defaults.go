package config

// Report defaults.
const (
	DefaultReportDirectory    = "scanner-report"
	DefaultReportCompress     = false
	DefaultComponentCacheSize = 1024
)

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Telemetry defaults.
const (
	DefaultSampleRatio = 1.0
)

// Sink defaults.
const (
	DefaultSinkBackend = SinkMemory
)

// DefaultMeasureKeys are the raw measures summed over directories by default.
var DefaultMeasureKeys = []string{"ncloc", "lines", "functions", "classes", "statements"}
