// Package wire implements the framing used by report files: a sequence of
// varint length-delimited protobuf messages, optionally wrapped in an LZ4
// frame stream.
package wire

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/proto"
)

// MaxFrameSize bounds a single message. Larger length prefixes are treated
// as corruption rather than allocated.
const MaxFrameSize = 64 << 20

const bufferSize = 32 << 10

// lz4Magic is the little-endian LZ4 frame magic number 0x184D2204.
var lz4Magic = []byte{0x04, 0x22, 0x4d, 0x18}

// Sentinel errors for frame decoding.
var (
	ErrTruncated     = errors.New("wire: truncated frame")
	ErrFrameTooLarge = errors.New("wire: frame exceeds maximum size")
)

var (
	marshalOpts   = protodelim.MarshalOptions{MarshalOptions: proto.MarshalOptions{Deterministic: true}}
	unmarshalOpts = protodelim.UnmarshalOptions{MaxSize: MaxFrameSize}
)

// FrameWriter writes length-delimited messages to an underlying writer.
// Close must be called to flush buffered and compressed data; it does not
// close the underlying writer.
type FrameWriter struct {
	buf     *bufio.Writer
	lz      *lz4.Writer
	written int64
	frames  int
}

// NewFrameWriter creates a FrameWriter. When compress is true the output is
// an LZ4 frame stream.
func NewFrameWriter(w io.Writer, compress bool) *FrameWriter {
	fw := &FrameWriter{}

	if compress {
		fw.lz = lz4.NewWriter(w)
		fw.buf = bufio.NewWriterSize(fw.lz, bufferSize)
	} else {
		fw.buf = bufio.NewWriterSize(w, bufferSize)
	}

	return fw
}

// WriteMessage writes msg preceded by its varint length.
func (fw *FrameWriter) WriteMessage(msg proto.Message) error {
	size := proto.Size(msg)
	if size > MaxFrameSize {
		return fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, size)
	}

	n, err := marshalOpts.MarshalTo(fw.buf, msg)
	if err != nil {
		return fmt.Errorf("wire: write frame: %w", err)
	}

	fw.written += int64(n)
	fw.frames++

	return nil
}

// Written returns the number of uncompressed bytes written so far.
func (fw *FrameWriter) Written() int64 {
	return fw.written
}

// Frames returns the number of frames written so far.
func (fw *FrameWriter) Frames() int {
	return fw.frames
}

// Close flushes all buffered data and terminates the LZ4 stream if any.
func (fw *FrameWriter) Close() error {
	err := fw.buf.Flush()
	if err != nil {
		return fmt.Errorf("wire: flush: %w", err)
	}

	if fw.lz != nil {
		err = fw.lz.Close()
		if err != nil {
			return fmt.Errorf("wire: close lz4 stream: %w", err)
		}
	}

	return nil
}

// FrameReader reads messages written by [FrameWriter]. Compression is
// detected from the stream header.
type FrameReader struct {
	r *bufio.Reader
}

// NewFrameReader wraps r. It peeks at the first bytes to decide whether the
// stream is LZ4-compressed. An empty stream is valid and yields no frames.
func NewFrameReader(r io.Reader) (*FrameReader, error) {
	br := bufio.NewReaderSize(r, bufferSize)

	head, err := br.Peek(len(lz4Magic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("wire: peek header: %w", err)
	}

	if bytes.Equal(head, lz4Magic) {
		br = bufio.NewReaderSize(lz4.NewReader(br), bufferSize)
	}

	return &FrameReader{r: br}, nil
}

// Next decodes the next frame into msg. It returns io.EOF when the stream
// ends on a frame boundary and ErrTruncated when it ends inside a frame.
func (fr *FrameReader) Next(msg proto.Message) error {
	err := unmarshalOpts.UnmarshalFrom(fr.r, msg)
	if err == nil {
		return nil
	}

	var tooLarge *protodelim.SizeTooLargeError

	switch {
	case errors.Is(err, io.EOF):
		return io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return ErrTruncated
	case errors.As(err, &tooLarge):
		return fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, tooLarge.Size)
	default:
		return fmt.Errorf("wire: read frame: %w", err)
	}
}
