// Package bitio implements a little-endian, LSB-first pull-style bit reader
// over an immutable byte slice.
//
// ObjectProperty's wire format freely mixes byte-aligned reads (most
// primitives, strings, floats) with sub-byte reads (bit-packed integers,
// booleans, compact length prefixes), and the boundary between the two is
// governed by explicit realignment rules rather than a uniform grid. This
// package exposes the small set of primitives (refill, peek, consume,
// byte slicing, realignment) that the decode package composes into those
// rules; it does not know anything about ObjectProperty itself.
//
// Every multi-byte quantity on the wire is little-endian, and within a byte
// bits are consumed starting from the least significant bit, working
// towards the most significant one.
package bitio

import (
	"encoding/binary"

	"github.com/arcanegate/objprop/errs"
)

// maxLookaheadBits is the largest number of bits refillBits keeps resident
// before it stops pulling in more bytes. Refilling only ever adds whole
// bytes, so the low 3 bits of bitCount are invariant across a refill; this
// bound just keeps bitCount comfortably under 64 so shift arithmetic never
// has to special-case a full-width shift.
const maxLookaheadBits = 55

// Reader is a pull-style bit reader over a borrowed byte slice.
//
// A Reader never copies the slice it is constructed over; ReadBytes returns
// sub-slices of it directly. Callers must keep the backing slice alive for
// as long as the Reader (and any slices it returned) are in use.
type Reader struct {
	data    []byte
	bytePos int
	bitBuf  uint64
	bitCnt  int
}

// New constructs a Reader over data starting at bit 0.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// RemainingBits reports how many bits are left to read, counting both the
// bits already buffered in the lookahead and the untouched bytes beyond it.
func (r *Reader) RemainingBits() int {
	return (len(r.data)-r.bytePos)*8 + r.bitCnt
}

// BufferedBits reports how many bits currently sit in the lookahead buffer.
func (r *Reader) BufferedBits() int {
	return r.bitCnt
}

// UntouchedBytes reports how many bytes beyond the lookahead have not yet
// been pulled into the buffer at all.
func (r *Reader) UntouchedBytes() int {
	return len(r.data) - r.bytePos
}

// refillBits tops up the lookahead buffer to between 56 and 63 buffered
// bits (or as many as remain in the stream), and returns the new count.
//
// The fast path triggers when the buffer is empty and at least 8 source
// bytes remain: it loads a single little-endian word and masks off its top
// byte, advancing the byte cursor by 7. Otherwise bytes are folded in one
// at a time until the buffer is full enough or the stream is exhausted.
func (r *Reader) refillBits() uint32 {
	if r.bitCnt > maxLookaheadBits {
		return uint32(r.bitCnt)
	}

	if r.bitCnt == 0 && len(r.data)-r.bytePos >= 8 {
		word := binary.LittleEndian.Uint64(r.data[r.bytePos:])
		r.bitBuf = word & (1<<56 - 1)
		r.bitCnt = 56
		r.bytePos += 7

		return uint32(r.bitCnt)
	}

	for r.bitCnt <= maxLookaheadBits && r.bytePos < len(r.data) {
		r.bitBuf |= uint64(r.data[r.bytePos]) << uint(r.bitCnt)
		r.bitCnt += 8
		r.bytePos++
	}

	return uint32(r.bitCnt)
}

// peek returns the low n bits of the lookahead without consuming them.
func (r *Reader) peek(n int) (uint64, error) {
	if n < 0 || n > 63 {
		return 0, errs.ErrBitCountOutOfRange
	}
	if r.bitCnt < n {
		return 0, errs.ErrIO
	}

	return r.bitBuf & (uint64(1)<<uint(n) - 1), nil
}

// consume discards the low n bits of the lookahead.
func (r *Reader) consume(n int) error {
	if n > r.bitCnt {
		return errs.ErrIO
	}

	r.bitBuf >>= uint(n)
	r.bitCnt -= n

	return nil
}

// ReadBits reads n (0-63) bits from the stream and returns them
// right-aligned in the low bits of the result.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 63 {
		return 0, errs.ErrBitCountOutOfRange
	}
	if r.bitCnt < n {
		r.refillBits()
	}

	v, err := r.peek(n)
	if err != nil {
		return 0, err
	}
	if err := r.consume(n); err != nil {
		return 0, err
	}

	return v, nil
}

// ReadBit reads a single bit as a bool.
func (r *Reader) ReadBit() (bool, error) {
	v, err := r.ReadBits(1)
	return v != 0, err
}

// ReadSignedBits reads n bits and sign-extends the result as if it were a
// two's-complement integer of that width.
func (r *Reader) ReadSignedBits(n int) (int64, error) {
	v, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}

	return SignExtend(v, n), nil
}

// SignExtend interprets the low n bits of v as a two's-complement integer
// and sign-extends it to a full int64.
func SignExtend(v uint64, n int) int64 {
	shift := uint(64 - n)
	return int64(v<<shift) >> shift
}

// RealignToByte discards the lookahead buffer and rewinds the byte cursor
// so the next read starts at the first byte with no bits already consumed.
//
// Any bits still sitting unconsumed in the lookahead correspond to bytes
// the cursor has already advanced past; only whole unconsumed bytes
// (bufferedBits/8) are rewound, any leftover fractional bits are simply
// dropped, matching the wire format's byte-alignment padding.
func (r *Reader) RealignToByte() {
	r.bytePos -= r.bitCnt / 8
	r.bitBuf = 0
	r.bitCnt = 0
}

// ReadBytes realigns to the next byte boundary and returns a sub-slice of
// length n from the underlying data, without copying. The byte cursor
// advances past the returned slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	r.RealignToByte()

	if n < 0 || r.bytePos+n > len(r.data) {
		return nil, errs.ErrIO
	}

	out := r.data[r.bytePos : r.bytePos+n]
	r.bytePos += n

	return out, nil
}

// ReadUint16 reads a little-endian u16, realigning to a byte boundary
// first.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads a little-endian u32, realigning to a byte boundary
// first.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads a little-endian u64, realigning to a byte boundary
// first.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b), nil
}
