// Package report stores static-analysis output as a directory of binary
// files: one metadata file, one descriptor per component and one file per
// (domain, component) pair holding a stream of length-delimited records.
package report

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/RoaringBitmap/roaring"
	"google.golang.org/protobuf/proto"

	"github.com/Sumatoshi-tech/scanreport/pkg/report/wire"
	"github.com/Sumatoshi-tech/scanreport/pkg/safeconv"
)

// Recorder receives I/O statistics from writers and readers.
type Recorder interface {
	FileWritten(domain string, records int, bytes int64)
	RecordsRead(domain string, records int)
}

// WriterStats summarizes what a Writer has persisted.
type WriterStats struct {
	Files   int
	Records int
	Bytes   int64
}

// Writer persists one report. It is not safe for concurrent use: a report
// has exactly one producer.
type Writer struct {
	logger   *slog.Logger
	recorder Recorder
	written  map[Domain]*roaring.Bitmap
	comps    *roaring.Bitmap
	fs       FileStructure
	stats    WriterStats
	compress bool
	rootDone bool
	metaDone bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithCompression enables LZ4 compression of every written file.
func WithCompression(enabled bool) WriterOption {
	return func(w *Writer) {
		w.compress = enabled
	}
}

// WithWriterLogger sets the logger used for debug output.
func WithWriterLogger(logger *slog.Logger) WriterOption {
	return func(w *Writer) {
		w.logger = logger
	}
}

// WithWriterRecorder sets the statistics recorder.
func WithWriterRecorder(rec Recorder) WriterOption {
	return func(w *Writer) {
		w.recorder = rec
	}
}

// NewWriter creates a writer for the report directory dir. The directory is
// created on the first write.
func NewWriter(dir string, opts ...WriterOption) *Writer {
	w := &Writer{
		fs:      NewFileStructure(dir),
		logger:  slog.Default(),
		written: make(map[Domain]*roaring.Bitmap),
		comps:   roaring.New(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// FileStructure returns the layout of the report being written.
func (w *Writer) FileStructure() FileStructure {
	return w.fs
}

// Stats returns the totals written so far.
func (w *Writer) Stats() WriterStats {
	return w.stats
}

// WriteMetadata writes the report metadata. It may be called once.
// A zero FormatVersion is replaced by the current FormatVersion.
func (w *Writer) WriteMetadata(meta Metadata) error {
	if w.metaDone {
		return ErrMetadataWritten
	}

	if meta.FormatVersion == 0 {
		meta.FormatVersion = FormatVersion
	}

	err := w.writeFile(w.fs.MetadataFile(), "METADATA", func(fw *wire.FrameWriter) (int, error) {
		return 1, fw.WriteMessage(meta.toProto())
	})
	if err != nil {
		return err
	}

	w.metaDone = true

	return nil
}

// WriteComponent writes the descriptor of one component. Each ref may be
// written once.
func (w *Writer) WriteComponent(c Component) error {
	if c.Ref <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRef, c.Ref)
	}

	if w.comps.Contains(safeconv.MustRefToUint32(c.Ref)) {
		return fmt.Errorf("%w: component %d", ErrAlreadyWritten, c.Ref)
	}

	err := w.writeFile(w.fs.ComponentFile(c.Ref), "COMPONENT", func(fw *wire.FrameWriter) (int, error) {
		return 1, fw.WriteMessage(c.toProto())
	})
	if err != nil {
		return err
	}

	w.comps.Add(safeconv.MustRefToUint32(c.Ref))

	return nil
}

// WriteIssues writes the issues raised on component ref.
func (w *Writer) WriteIssues(ref int32, issues []Issue) error {
	return writeBatch(w, DomainIssues, ref, ByRef(ref), issues, issueCodec)
}

// WriteDeletedComponentIssues writes the issues of a component that no
// longer exists. The file is stored under ref but its envelope carries the
// component uuid.
func (w *Writer) WriteDeletedComponentIssues(ref int32, uuid string, issues []Issue) error {
	if uuid == "" {
		return ErrInvalidUUID
	}

	return writeBatch(w, DomainDeletedIssues, ref, ByUUID(uuid), issues, issueCodec)
}

// WriteMeasures writes the raw measures of component ref.
func (w *Writer) WriteMeasures(ref int32, measures []Measure) error {
	return writeBatch(w, DomainMeasures, ref, ByRef(ref), measures, measureCodec)
}

// WriteCoverage writes per-line coverage of component ref.
func (w *Writer) WriteCoverage(ref int32, lines []LineCoverage) error {
	return writeBatch(w, DomainCoverage, ref, ByRef(ref), lines, coverageCodec)
}

// WriteDuplications writes the duplicated blocks of component ref.
func (w *Writer) WriteDuplications(ref int32, dups []Duplication) error {
	return writeBatch(w, DomainDuplications, ref, ByRef(ref), dups, duplicationCodec)
}

// WriteChangesets writes per-line SCM blame of component ref.
func (w *Writer) WriteChangesets(ref int32, changesets []Changeset) error {
	return writeBatch(w, DomainSCM, ref, ByRef(ref), changesets, changesetCodec)
}

// WriteSymbols writes the symbol table of component ref.
func (w *Writer) WriteSymbols(ref int32, symbols []Symbol) error {
	return writeBatch(w, DomainSymbols, ref, ByRef(ref), symbols, symbolCodec)
}

// WriteSyntaxHighlighting writes the highlighting rules of component ref.
func (w *Writer) WriteSyntaxHighlighting(ref int32, rules []SyntaxHighlighting) error {
	return writeBatch(w, DomainSyntaxHighlighting, ref, ByRef(ref), rules, highlightingCodec)
}

// WriteSource writes the source lines of component ref.
func (w *Writer) WriteSource(ref int32, lines []SourceLine) error {
	return writeBatch(w, DomainSource, ref, ByRef(ref), lines, sourceCodec)
}

// writeBatch writes the envelope followed by one frame per record. An empty
// batch still produces a file holding only the envelope, so HasData
// distinguishes "analyzed, nothing found" from "never analyzed".
func writeBatch[T any, M proto.Message](
	w *Writer, domain Domain, ref int32, key ComponentKey, records []T, c codec[T, M],
) error {
	if ref <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRef, ref)
	}

	seen, ok := w.written[domain]
	if !ok {
		seen = roaring.New()
		w.written[domain] = seen
	}

	if seen.Contains(safeconv.MustRefToUint32(ref)) {
		return fmt.Errorf("%w: %s for component %d", ErrAlreadyWritten, domain, ref)
	}

	err := w.writeFile(w.fs.Path(domain, ref), domain.String(), func(fw *wire.FrameWriter) (int, error) {
		frameErr := fw.WriteMessage(envelopeToProto(key))
		if frameErr != nil {
			return 0, frameErr
		}

		for i := range records {
			frameErr = fw.WriteMessage(c.toProto(&records[i]))
			if frameErr != nil {
				return i, frameErr
			}
		}

		return len(records), nil
	})
	if err != nil {
		return err
	}

	seen.Add(safeconv.MustRefToUint32(ref))

	return nil
}

// writeFile writes frames to a temporary file and renames it into place once
// it has been synced, so a reader never observes a partial file.
func (w *Writer) writeFile(path, label string, body func(fw *wire.FrameWriter) (int, error)) error {
	err := w.ensureRoot()
	if err != nil {
		return err
	}

	tmpPath := path + tmpExtension

	fd, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("report writer create %s: %w", label, err)
	}

	fw := wire.NewFrameWriter(fd, w.compress)

	records, err := body(fw)
	if err == nil {
		err = fw.Close()
	}

	if err == nil {
		err = fd.Sync()
	}

	closeErr := fd.Close()

	if err != nil || closeErr != nil {
		removeErr := os.Remove(tmpPath)

		return fmt.Errorf("report writer %s: %w", label, errors.Join(err, closeErr, removeErr))
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		return fmt.Errorf("report writer rename %s: %w", label, err)
	}

	w.stats.Files++
	w.stats.Records += records
	w.stats.Bytes += fw.Written()

	if w.recorder != nil {
		w.recorder.FileWritten(label, records, fw.Written())
	}

	w.logger.Debug("report file written",
		slog.String("domain", label),
		slog.String("path", path),
		slog.Int("records", records),
		slog.Int64("bytes", fw.Written()),
	)

	return nil
}

func (w *Writer) ensureRoot() error {
	if w.rootDone {
		return nil
	}

	err := os.MkdirAll(w.fs.Root(), dirPerm)
	if err != nil {
		return fmt.Errorf("report writer create dir: %w", err)
	}

	w.rootDone = true

	return nil
}
