package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/Sumatoshi-tech/scanreport/pkg/report/reportpb"
	"github.com/Sumatoshi-tech/scanreport/pkg/report/wire"
)

// DefaultComponentCacheSize is the number of component descriptors a Reader
// keeps in memory by default.
const DefaultComponentCacheSize = 1024

// Reader reads a report written by [Writer]. Domain data is streamed from
// disk on demand; only component descriptors are cached.
type Reader struct {
	logger    *slog.Logger
	recorder  Recorder
	cache     *lru.Cache[int32, Component]
	meta      *Metadata
	fs        FileStructure
	cacheSize int
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithComponentCacheSize sets the component descriptor cache size. Zero or a
// negative size disables caching.
func WithComponentCacheSize(size int) ReaderOption {
	return func(r *Reader) {
		r.cacheSize = size
	}
}

// WithReaderLogger sets the logger used for debug output.
func WithReaderLogger(logger *slog.Logger) ReaderOption {
	return func(r *Reader) {
		r.logger = logger
	}
}

// WithReaderRecorder sets the statistics recorder.
func WithReaderRecorder(rec Recorder) ReaderOption {
	return func(r *Reader) {
		r.recorder = rec
	}
}

// NewReader opens the report rooted at dir.
func NewReader(dir string, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		fs:        NewFileStructure(dir),
		logger:    slog.Default(),
		cacheSize: DefaultComponentCacheSize,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.cacheSize > 0 {
		cache, err := lru.New[int32, Component](r.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("report reader cache: %w", err)
		}

		r.cache = cache
	}

	return r, nil
}

// FileStructure returns the layout of the report being read.
func (r *Reader) FileStructure() FileStructure {
	return r.fs
}

// HasData reports whether a file exists for (domain, ref).
func (r *Reader) HasData(domain Domain, ref int32) bool {
	return r.fs.HasData(domain, ref)
}

// Metadata returns the report metadata.
func (r *Reader) Metadata() (Metadata, error) {
	if r.meta != nil {
		return *r.meta, nil
	}

	var msg reportpb.Metadata

	err := readSingle(r.fs.MetadataFile(), &msg)
	if errors.Is(err, os.ErrNotExist) {
		return Metadata{}, fmt.Errorf("%w: %s", ErrMetadataNotFound, r.fs.Root())
	}

	if err != nil {
		return Metadata{}, err
	}

	meta := metadataFromProto(&msg)

	if meta.FormatVersion > FormatVersion {
		return Metadata{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, meta.FormatVersion)
	}

	r.meta = &meta

	return meta, nil
}

// Component returns the descriptor of component ref.
func (r *Reader) Component(ref int32) (Component, error) {
	if r.cache != nil {
		if c, ok := r.cache.Get(ref); ok {
			return c, nil
		}
	}

	var msg reportpb.Component

	path := r.fs.ComponentFile(ref)

	err := readSingle(path, &msg)
	if errors.Is(err, os.ErrNotExist) {
		return Component{}, fmt.Errorf("%w: %d", ErrComponentNotFound, ref)
	}

	if err != nil {
		return Component{}, err
	}

	c := componentFromProto(&msg)

	if c.Ref != ref {
		return Component{}, fmt.Errorf("%w: %s: descriptor has ref %d", ErrCorruptReport, path, c.Ref)
	}

	if r.cache != nil {
		r.cache.Add(ref, c)
	}

	return c, nil
}

// ReadIssues streams the issues of component ref.
func (r *Reader) ReadIssues(ref int32) (*Iterator[Issue], error) {
	return readByRef(r, DomainIssues, ref, issueCodec)
}

// ReadMeasures streams the raw measures of component ref.
func (r *Reader) ReadMeasures(ref int32) (*Iterator[Measure], error) {
	return readByRef(r, DomainMeasures, ref, measureCodec)
}

// ReadCoverage streams the per-line coverage of component ref.
func (r *Reader) ReadCoverage(ref int32) (*Iterator[LineCoverage], error) {
	return readByRef(r, DomainCoverage, ref, coverageCodec)
}

// ReadDuplications streams the duplications of component ref.
func (r *Reader) ReadDuplications(ref int32) (*Iterator[Duplication], error) {
	return readByRef(r, DomainDuplications, ref, duplicationCodec)
}

// ReadChangesets streams the SCM blame of component ref.
func (r *Reader) ReadChangesets(ref int32) (*Iterator[Changeset], error) {
	return readByRef(r, DomainSCM, ref, changesetCodec)
}

// ReadSymbols streams the symbols of component ref.
func (r *Reader) ReadSymbols(ref int32) (*Iterator[Symbol], error) {
	return readByRef(r, DomainSymbols, ref, symbolCodec)
}

// ReadSyntaxHighlighting streams the highlighting rules of component ref.
func (r *Reader) ReadSyntaxHighlighting(ref int32) (*Iterator[SyntaxHighlighting], error) {
	return readByRef(r, DomainSyntaxHighlighting, ref, highlightingCodec)
}

// ReadSource streams the source lines of component ref.
func (r *Reader) ReadSource(ref int32) (*Iterator[SourceLine], error) {
	return readByRef(r, DomainSource, ref, sourceCodec)
}

// ReadDeletedComponentIssues streams the issues stored for a deleted
// component under ref, together with the uuid-based key from its envelope.
// When nothing is stored the key is zero and the iterator is empty.
func (r *Reader) ReadDeletedComponentIssues(ref int32) (ComponentKey, *Iterator[Issue], error) {
	return openBatch(r, DomainDeletedIssues, ref, issueCodec, func(key ComponentKey) bool {
		uuid, ok := key.UUID()

		return ok && uuid != ""
	})
}

// DeletedComponentRefs lists the refs holding deleted-component issues.
func (r *Reader) DeletedComponentRefs() ([]int32, error) {
	return r.Refs(DomainDeletedIssues)
}

// Refs lists, in ascending order, every ref that has a file for domain.
func (r *Reader) Refs(domain Domain) ([]int32, error) {
	entries, err := os.ReadDir(r.fs.Root())
	if err != nil {
		return nil, fmt.Errorf("report reader list %s: %w", domain, err)
	}

	var refs []int32

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if ref, ok := refFromName(domain, entry.Name()); ok {
			refs = append(refs, ref)
		}
	}

	slices.Sort(refs)

	return refs, nil
}

func readByRef[T any, M proto.Message](r *Reader, domain Domain, ref int32, c codec[T, M]) (*Iterator[T], error) {
	_, it, err := openBatch(r, domain, ref, c, func(key ComponentKey) bool {
		got, ok := key.Ref()

		return ok && got == ref
	})

	return it, err
}

// openBatch opens the (domain, ref) file and validates its envelope. A
// missing file yields an empty iterator; anything unreadable in an existing
// file is reported as ErrCorruptReport.
func openBatch[T any, M proto.Message](
	r *Reader, domain Domain, ref int32, c codec[T, M], accept func(ComponentKey) bool,
) (ComponentKey, *Iterator[T], error) {
	path := r.fs.Path(domain, ref)

	if !isFile(path) {
		return ComponentKey{}, emptyIterator[T](), nil
	}

	fd, err := os.Open(path)
	if err != nil {
		return ComponentKey{}, nil, fmt.Errorf("report reader open %s: %w", domain, err)
	}

	frames, err := wire.NewFrameReader(fd)
	if err != nil {
		return ComponentKey{}, nil, closeOnError(fd, fmt.Errorf("%w: %s: %w", ErrCorruptReport, path, err))
	}

	var head reportpb.Envelope

	err = frames.Next(&head)
	if errors.Is(err, io.EOF) {
		return ComponentKey{}, nil, closeOnError(fd, fmt.Errorf("%w: %s: missing envelope", ErrCorruptReport, path))
	}

	if err != nil {
		return ComponentKey{}, nil, closeOnError(fd, fmt.Errorf("%w: %s: %w", ErrCorruptReport, path, err))
	}

	key, err := envelopeFromProto(&head)
	if err != nil {
		return ComponentKey{}, nil, closeOnError(fd, fmt.Errorf("%w: %s: envelope: %w", ErrCorruptReport, path, err))
	}

	if !accept(key) {
		return ComponentKey{}, nil, closeOnError(fd, fmt.Errorf("%w: %s: envelope does not match component %d",
			ErrCorruptReport, path, ref))
	}

	r.logger.Debug("report file opened", slog.String("domain", domain.String()), slog.String("path", path))

	return key, &Iterator[T]{
		file:     fd,
		frames:   frames,
		recorder: r.recorder,
		path:     path,
		domain:   domain.String(),
		read: func(fr *wire.FrameReader) (T, error) {
			msg := c.newMessage()

			readErr := fr.Next(msg)
			if readErr != nil {
				var zero T

				return zero, readErr
			}

			return c.fromProto(msg), nil
		},
	}, nil
}

func closeOnError(fd *os.File, err error) error {
	return errors.Join(err, fd.Close())
}

// readSingle decodes a file holding exactly one message. A missing file is
// reported with an error wrapping os.ErrNotExist; an empty file or one with
// trailing frames is corrupt.
func readSingle(path string, msg proto.Message) error {
	fd, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("report reader open: %w", err)
	}

	defer fd.Close()

	frames, err := wire.NewFrameReader(fd)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptReport, path, err)
	}

	err = frames.Next(msg)
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: empty file", ErrCorruptReport, path)
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptReport, path, err)
	}

	var extra emptypb.Empty

	err = frames.Next(&extra)
	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: trailing data after record", ErrCorruptReport, path)
	}

	return nil
}
