package decode

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"

	"github.com/arcanegate/objprop/format"
)

func deflatePrefixed(t *testing.T, payload []byte) []byte {
	t.Helper()

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	_, err := zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var out bytes.Buffer
	var sizeBuf [4]byte
	binary.LittleEndian.PutUint32(sizeBuf[:], uint32(len(payload)))
	out.Write(sizeBuf[:])
	out.Write(compressed.Bytes())

	return out.Bytes()
}

func TestConfigure_StatefulFlagsOnly(t *testing.T) {
	payload := []byte{0xAA, 0xBB, 0xCC, 0xDD}

	var data []byte
	flagsWord := make([]byte, 4)
	binary.LittleEndian.PutUint32(flagsWord, uint32(format.CompactLengthPrefixes))
	data = append(data, flagsWord...)
	data = append(data, payload...)

	cs := &callState{opts: Options{Flags: format.StatefulFlags}}
	require.NoError(t, cs.configure(data))

	require.True(t, cs.opts.Flags.Has(format.CompactLengthPrefixes))
	require.False(t, cs.opts.Flags.Has(format.StatefulFlags))

	b, err := cs.reader.ReadBytes(4)
	require.NoError(t, err)
	require.Equal(t, payload, b)
}

func TestConfigure_ManualCompression(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	data := deflatePrefixed(t, payload)

	cs := &callState{opts: Options{ManualCompression: true}}
	require.NoError(t, cs.configure(data))

	b, err := cs.reader.ReadBytes(len(payload))
	require.NoError(t, err)
	require.Equal(t, payload, b)
}

func TestConfigure_WithCompressionInnerLayer(t *testing.T) {
	payload := []byte{9, 8, 7, 6}
	inner := deflatePrefixed(t, payload)

	data := append([]byte{1}, inner...) // non-zero marker byte precedes the inner stream

	cs := &callState{opts: Options{Flags: format.WithCompression}}
	require.NoError(t, cs.configure(data))

	b, err := cs.reader.ReadBytes(len(payload))
	require.NoError(t, err)
	require.Equal(t, payload, b)
}

func TestConfigure_WithCompressionZeroMarkerSkipsInflate(t *testing.T) {
	payload := []byte{1, 2, 3}
	data := append([]byte{0}, payload...)

	cs := &callState{opts: Options{Flags: format.WithCompression}}
	require.NoError(t, cs.configure(data))

	b, err := cs.reader.ReadBytes(len(payload))
	require.NoError(t, err)
	require.Equal(t, payload, b)
}
