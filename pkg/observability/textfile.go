package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Textfile collects OTel metrics into a private Prometheus registry and dumps
// them in the node_exporter textfile format at the end of a batch run.
type Textfile struct {
	registry *prometheus.Registry
	exporter *promexporter.Exporter
}

// NewTextfile creates the exporter. Pass [Textfile.Reader] to [Init] so the
// meter provider feeds it.
func NewTextfile() (*Textfile, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	return &Textfile{registry: registry, exporter: exporter}, nil
}

// Reader returns the metric reader backing the textfile.
func (tf *Textfile) Reader() sdkmetric.Reader {
	return tf.exporter
}

// WriteTo atomically writes the current metric values to path.
func (tf *Textfile) WriteTo(path string) error {
	err := prometheus.WriteToTextfile(path, tf.registry)
	if err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}
