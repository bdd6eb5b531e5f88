package decode

import (
	"encoding/binary"

	"github.com/arcanegate/objprop/format"
	"github.com/arcanegate/objprop/typelist"
)

// binMagic is the 4-byte prefix a persisted client object file carries.
const binMagic = "BINd"

// knownFlagBits is the OR of every SerializerFlags bit this package
// recognises; a candidate flags word outside this range can't be a real
// flags word.
const knownFlagBits = format.StatefulFlags | format.CompactLengthPrefixes |
	format.HumanReadableEnums | format.WithCompression | format.ForbidDeltaEncode

// Guess derives a likely Options for an unlabeled byte stream, following
// the fast path for BINd-prefixed files and a general heuristic pass
// otherwise. Its output is a starting point for an attempted decode, not
// a guarantee: callers should be prepared for the resulting Options to
// still fail against the actual data.
func Guess(types *typelist.TypeList, data []byte) (*Options, error) {
	if len(data) >= 4 && string(data[:4]) == binMagic {
		return NewOptions(WithShallow(false), WithFlags(format.StatefulFlags))
	}

	manual := false
	working := data

	if len(data) >= 6 && isZlibMagic(data[4:6]) {
		if inflated, err := decompressPrefixed(data); err == nil {
			manual = true
			working = inflated
		}
	}

	var flags format.SerializerFlags
	statefulAdopted := false

	if len(working) >= 4 {
		x := binary.LittleEndian.Uint32(working[:4])
		if x > 0 && format.SerializerFlags(x)&^knownFlagBits == 0 {
			flags = format.SerializerFlags(x)
			statefulAdopted = true
			working = working[4:]
		}
	}

	if len(working) >= 7 && working[0] == 1 && isZlibMagic(working[5:7]) {
		if inflated, err := decompressPrefixed(working[1:]); err == nil {
			flags |= format.WithCompression
			working = inflated
		}
	}

	shallow := true
	foundType := false

	if len(working) >= 4 {
		w0 := binary.LittleEndian.Uint32(working[0:4])
		if _, ok := types.Get(w0); ok {
			foundType = true
		} else if len(working) >= 5 {
			w1 := binary.LittleEndian.Uint32(working[1:5])
			if working[0] == 0 {
				if _, ok := types.Get(w1); ok {
					foundType = true
					flags |= format.WithCompression
					working = working[1:]
				}
			}
		}
	}

	if foundType && len(working) >= 8 {
		sizeCandidate := binary.LittleEndian.Uint32(working[4:8])
		remainingBits := (len(working) - 8) * 8
		if int(sizeCandidate) >= 32 && int(sizeCandidate)-32 == remainingBits {
			shallow = false
		}
	}

	if !statefulAdopted {
		if looksCompact(working) {
			flags |= format.CompactLengthPrefixes
		}
	}

	opts := []Option{WithShallow(shallow), WithFlags(flags)}
	if manual {
		opts = append(opts, WithManualCompression(true))
	}

	return NewOptions(opts...)
}

func isZlibMagic(b []byte) bool {
	if len(b) < 2 || b[0] != 0x78 {
		return false
	}

	switch b[1] {
	case 0x01, 0x9c, 0xda, 0x5e:
		return true
	default:
		return false
	}
}

// looksCompact scans data for printable-ASCII runs of length >= 4 and
// checks whether the 32-bit word, the 31-bit "large" compact reading, or
// the 7-bit "small" compact reading immediately preceding each run equals
// the run's length. The first run whose prefix matches decides: a plain
// 32-bit word means fixed-width prefixes (false), a compact reading means
// the stream uses COMPACT_LENGTH_PREFIXES (true).
func looksCompact(data []byte) bool {
	runStart := -1

	checkRun := func(start, length int) (compact, decided bool) {
		if length < 4 {
			return false, false
		}
		if start >= 4 {
			w := binary.LittleEndian.Uint32(data[start-4 : start])
			if w == uint32(length) {
				return false, true
			}
			if w&1 == 1 && w>>1 == uint32(length) {
				return true, true
			}
		}
		if start >= 1 {
			b := data[start-1]
			if b&1 == 0 && int(b>>1) == length {
				return true, true
			}
		}

		return false, false
	}

	for i := 0; i <= len(data); i++ {
		isPrintable := i < len(data) && data[i] >= 0x20 && data[i] < 0x7f
		if isPrintable {
			if runStart < 0 {
				runStart = i
			}

			continue
		}

		if runStart >= 0 {
			if compact, decided := checkRun(runStart, i-runStart); decided {
				return compact
			}
			runStart = -1
		}
	}

	return false
}
