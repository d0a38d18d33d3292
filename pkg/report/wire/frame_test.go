package wire_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Sumatoshi-tech/scanreport/pkg/report/wire"
)

func writeFrames(t *testing.T, compress bool, values ...string) []byte {
	t.Helper()

	var buf bytes.Buffer

	fw := wire.NewFrameWriter(&buf, compress)

	for _, v := range values {
		require.NoError(t, fw.WriteMessage(wrapperspb.String(v)))
	}

	require.NoError(t, fw.Close())
	assert.Equal(t, len(values), fw.Frames())

	return buf.Bytes()
}

func readAll(t *testing.T, data []byte) ([]string, error) {
	t.Helper()

	fr, err := wire.NewFrameReader(bytes.NewReader(data))
	require.NoError(t, err)

	var out []string

	for {
		var msg wrapperspb.StringValue

		nextErr := fr.Next(&msg)
		if errors.Is(nextErr, io.EOF) {
			return out, nil
		}

		if nextErr != nil {
			return out, nextErr
		}

		out = append(out, msg.GetValue())
	}
}

func TestFrames_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, compress := range []bool{false, true} {
		data := writeFrames(t, compress, "alpha", "", "gamma")

		got, err := readAll(t, data)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "", "gamma"}, got)
	}
}

func TestFrames_CompressedIsSmallerForRepetitiveData(t *testing.T) {
	t.Parallel()

	payload := strings.Repeat("func main() {}\n", 512)

	plain := writeFrames(t, false, payload)
	packed := writeFrames(t, true, payload)

	assert.Less(t, len(packed), len(plain))

	got, err := readAll(t, packed)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, payload, got[0])
}

func TestFrameReader_EmptyStream(t *testing.T) {
	t.Parallel()

	got, err := readAll(t, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFrameReader_TruncatedPayload(t *testing.T) {
	t.Parallel()

	data := writeFrames(t, false, "complete", "truncated")

	got, err := readAll(t, data[:len(data)-3])
	require.ErrorIs(t, err, wire.ErrTruncated)
	assert.Equal(t, []string{"complete"}, got)
}

func TestFrameReader_TruncatedLength(t *testing.T) {
	t.Parallel()

	// 0x80 announces a continuation byte that never arrives.
	_, err := readAll(t, []byte{0x80})
	require.ErrorIs(t, err, wire.ErrTruncated)
}

func TestFrameReader_OversizedFrame(t *testing.T) {
	t.Parallel()

	// varint of 1<<40.
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x20}

	_, err := readAll(t, data)
	require.ErrorIs(t, err, wire.ErrFrameTooLarge)
}

func TestFrameReader_UndecodablePayload(t *testing.T) {
	t.Parallel()

	// One-byte frame holding a tag with field number zero.
	_, err := readAll(t, []byte{0x01, 0x00})
	require.Error(t, err)
	require.NotErrorIs(t, err, wire.ErrTruncated)
}

func TestFrameWriter_Written(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	fw := wire.NewFrameWriter(&buf, false)
	require.NoError(t, fw.WriteMessage(wrapperspb.String("abc")))
	require.NoError(t, fw.Close())

	// One length byte, one tag byte, one string length byte and the text.
	assert.Equal(t, int64(6), fw.Written())
	assert.Equal(t, 6, buf.Len())
}
