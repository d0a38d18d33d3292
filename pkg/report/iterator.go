package report

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/Sumatoshi-tech/scanreport/pkg/report/wire"
)

// Iterator streams decoded records of one (domain, component) file. Only the
// current record is held in memory. Callers must Close every iterator they
// obtain, on every path; [Each] and [Collect] do so automatically.
type Iterator[T any] struct {
	cur      T
	err      error
	file     *os.File
	frames   *wire.FrameReader
	read     func(*wire.FrameReader) (T, error)
	recorder Recorder
	path     string
	domain   string
	count    int
	done     bool
	closed   bool
}

func emptyIterator[T any]() *Iterator[T] {
	return &Iterator[T]{done: true}
}

// Next advances to the next record. It returns false at the end of the
// stream or on error; check Err afterwards.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}

	v, err := it.read(it.frames)
	if errors.Is(err, io.EOF) {
		it.done = true

		return false
	}

	if err != nil {
		it.fail(fmt.Errorf("record %d: %w", it.count, err))

		return false
	}

	it.cur = v
	it.count++

	return true
}

func (it *Iterator[T]) fail(err error) {
	it.err = fmt.Errorf("%w: %s: %w", ErrCorruptReport, it.path, err)
	it.done = true
}

// Value returns the record read by the last successful Next.
func (it *Iterator[T]) Value() T {
	return it.cur
}

// Err returns the first decode error, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Count returns the number of records decoded so far.
func (it *Iterator[T]) Count() int {
	return it.count
}

// Close releases the underlying file. It is safe to call more than once.
func (it *Iterator[T]) Close() error {
	if it.closed {
		return nil
	}

	it.closed = true
	it.done = true

	if it.recorder != nil && it.file != nil {
		it.recorder.RecordsRead(it.domain, it.count)
	}

	if it.file == nil {
		return nil
	}

	err := it.file.Close()
	if err != nil {
		return fmt.Errorf("report reader close %s: %w", it.path, err)
	}

	return nil
}

// All adapts the iterator to a range-over-func sequence. A decode error is
// yielded once as the last element. All does not close the iterator.
func (it *Iterator[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for it.Next() {
			if !yield(it.cur, nil) {
				return
			}
		}

		if it.err != nil {
			var zero T

			yield(zero, it.err)
		}
	}
}

// Each calls fn for every record and closes the iterator, whatever the outcome.
func Each[T any](it *Iterator[T], fn func(T) error) (err error) {
	defer func() {
		err = errors.Join(err, it.Close())
	}()

	for it.Next() {
		fnErr := fn(it.Value())
		if fnErr != nil {
			return fnErr
		}
	}

	return it.Err()
}

// Collect drains the iterator into a slice and closes it.
func Collect[T any](it *Iterator[T]) ([]T, error) {
	var out []T

	err := Each(it, func(v T) error {
		out = append(out, v)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
