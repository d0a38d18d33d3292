package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Sumatoshi-tech/scanreport/pkg/report"
	"github.com/Sumatoshi-tech/scanreport/pkg/traversal"
)

const (
	metricFilesWritten      = "scanreport.report.files.written.total"
	metricBytesWritten      = "scanreport.report.bytes.written.total"
	metricRecordsWritten    = "scanreport.report.records.written.total"
	metricRecordsRead       = "scanreport.report.records.read.total"
	metricComponentsVisited = "scanreport.traversal.components.total"
	metricIssuesVisited     = "scanreport.traversal.issues.total"
	metricMeasuresVisited   = "scanreport.traversal.measures.total"
	metricTraversalDuration = "scanreport.traversal.duration.seconds"

	attrDomain        = "domain"
	attrComponentType = "component_type"

	unitFiles      = "{file}"
	unitRecords    = "{record}"
	unitComponents = "{component}"
	unitBytes      = "By"
	unitSeconds    = "s"

	descFilesWritten      = "Report files committed to disk"
	descBytesWritten      = "Bytes committed to report files"
	descRecordsWritten    = "Records written to report files"
	descRecordsRead       = "Records read from report files"
	descComponentsVisited = "Components visited by traversals"
	descIssuesVisited     = "Issues dispatched to visitors"
	descMeasuresVisited   = "Measures dispatched to visitors"
	descTraversalDuration = "Duration of a complete traversal"
)

// ReportMetrics holds OTel instruments for report I/O and traversal runs.
// It satisfies [report.Recorder] and [traversal.StatsRecorder].
type ReportMetrics struct {
	filesWritten   metric.Int64Counter
	bytesWritten   metric.Int64Counter
	recordsWritten metric.Int64Counter
	recordsRead    metric.Int64Counter
	components     metric.Int64Counter
	issues         metric.Int64Counter
	measures       metric.Int64Counter
	duration       metric.Float64Histogram
}

var (
	_ report.Recorder         = (*ReportMetrics)(nil)
	_ traversal.StatsRecorder = (*ReportMetrics)(nil)
)

// NewReportMetrics creates report and traversal metric instruments from the given meter.
func NewReportMetrics(mt metric.Meter) (*ReportMetrics, error) {
	rm := &ReportMetrics{}

	var err error

	counters := []struct {
		target *metric.Int64Counter
		name   string
		desc   string
		unit   string
	}{
		{&rm.filesWritten, metricFilesWritten, descFilesWritten, unitFiles},
		{&rm.bytesWritten, metricBytesWritten, descBytesWritten, unitBytes},
		{&rm.recordsWritten, metricRecordsWritten, descRecordsWritten, unitRecords},
		{&rm.recordsRead, metricRecordsRead, descRecordsRead, unitRecords},
		{&rm.components, metricComponentsVisited, descComponentsVisited, unitComponents},
		{&rm.issues, metricIssuesVisited, descIssuesVisited, unitRecords},
		{&rm.measures, metricMeasuresVisited, descMeasuresVisited, unitRecords},
	}

	for _, c := range counters {
		*c.target, err = mt.Int64Counter(c.name,
			metric.WithDescription(c.desc),
			metric.WithUnit(c.unit),
		)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", c.name, err)
		}
	}

	rm.duration, err = mt.Float64Histogram(metricTraversalDuration,
		metric.WithDescription(descTraversalDuration),
		metric.WithUnit(unitSeconds),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricTraversalDuration, err)
	}

	return rm, nil
}

// FileWritten records one committed report file. Safe to call on nil receiver.
func (rm *ReportMetrics) FileWritten(domain string, records int, bytes int64) {
	if rm == nil {
		return
	}

	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String(attrDomain, domain))

	rm.filesWritten.Add(ctx, 1, attrs)
	rm.bytesWritten.Add(ctx, bytes, attrs)
	rm.recordsWritten.Add(ctx, int64(records), attrs)
}

// RecordsRead records records consumed from one report file. Safe to call on nil receiver.
func (rm *ReportMetrics) RecordsRead(domain string, records int) {
	if rm == nil {
		return
	}

	rm.recordsRead.Add(context.Background(), int64(records),
		metric.WithAttributes(attribute.String(attrDomain, domain)))
}

// RecordTraversal records the statistics of a completed traversal. Safe to call on nil receiver.
func (rm *ReportMetrics) RecordTraversal(ctx context.Context, stats traversal.Stats) {
	if rm == nil {
		return
	}

	for typ, n := range stats.ByType {
		rm.components.Add(ctx, int64(n),
			metric.WithAttributes(attribute.String(attrComponentType, typ.String())))
	}

	rm.issues.Add(ctx, int64(stats.Issues))
	rm.measures.Add(ctx, int64(stats.Measures))
	rm.duration.Record(ctx, stats.Duration.Seconds())
}
