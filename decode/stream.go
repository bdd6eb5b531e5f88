package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/arcanegate/objprop/bitio"
	"github.com/arcanegate/objprop/errs"
	"github.com/arcanegate/objprop/format"
)

// configure prepares cs.reader from the raw input buffer, following the
// outer-compression / stateful-flags / inner-compression ordering the
// reference deserializer's `configure` method uses.
func (cs *callState) configure(data []byte) error {
	if cs.opts.ManualCompression {
		inflated, err := decompressPrefixed(data)
		if err != nil {
			return err
		}
		data = inflated
	}

	if cs.opts.Flags.Has(format.StatefulFlags) {
		word, rest, err := takeUint32(data)
		if err != nil {
			return err
		}
		cs.opts.Flags = format.SerializerFlags(word)
		data = rest
	}

	if cs.opts.Flags.Has(format.WithCompression) {
		if len(data) < 1 {
			return errs.ErrIO
		}
		marker, rest := data[0], data[1:]
		if marker != 0 {
			inflated, err := decompressPrefixed(rest)
			if err != nil {
				return err
			}
			data = inflated
		} else {
			data = rest
		}
	}

	cs.reader = bitio.New(data)

	return nil
}

// decompressPrefixed reads a little-endian u32 uncompressed-size prefix
// from data, inflates the remainder as a zlib stream, and verifies the
// inflated length matches the declared size.
func decompressPrefixed(data []byte) ([]byte, error) {
	size, rest, err := takeUint32(data)
	if err != nil {
		return nil, err
	}

	zr, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecompress, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecompress, err)
	}

	if uint32(len(out)) != size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrDecompressedSizeMismatch, size, len(out))
	}

	return out, nil
}

func takeUint32(data []byte) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, errs.ErrIO
	}

	return binary.LittleEndian.Uint32(data), data[4:], nil
}
