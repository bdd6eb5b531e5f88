package decode

import "github.com/arcanegate/objprop/format"

// readLength reads a length prefix (for strings, fixedWidthBits is 16; for
// sequences, 32), realigning to a byte boundary first and honoring the
// stream's COMPACT_LENGTH_PREFIXES flag.
func (cs *callState) readLength(fixedWidthBits int) (int, error) {
	cs.reader.RealignToByte()

	if cs.opts.Flags.Has(format.CompactLengthPrefixes) {
		return cs.readCompactLengthPrefix()
	}

	switch fixedWidthBits {
	case 16:
		v, err := cs.reader.ReadUint16()
		return int(v), err
	default:
		v, err := cs.reader.ReadUint32()
		return int(v), err
	}
}

// readCompactLengthPrefix reads a one-bit size class followed by either a
// 7-bit ("small") or 31-bit ("large") value.
func (cs *callState) readCompactLengthPrefix() (int, error) {
	large, err := cs.reader.ReadBit()
	if err != nil {
		return 0, err
	}

	width := 7
	if large {
		width = 31
	}

	v, err := cs.reader.ReadBits(width)
	return int(v), err
}
