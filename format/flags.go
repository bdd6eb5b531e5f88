// Package format defines the bit-level flag vocabularies ObjectProperty
// streams and TypeList schemas are built from.
package format

// SerializerFlags control how a stream is framed: whether the flags
// themselves are carried on the wire, how length prefixes and enums are
// encoded, and whether the payload is compressed.
type SerializerFlags uint32

const (
	// StatefulFlags indicates the flags word itself is present at the
	// start of the stream, overriding whatever flags the caller configured.
	StatefulFlags SerializerFlags = 1 << 0
	// CompactLengthPrefixes indicates string and sequence lengths are
	// encoded as a one-bit size class plus a 7- or 31-bit value instead of
	// a fixed-width integer.
	CompactLengthPrefixes SerializerFlags = 1 << 1
	// HumanReadableEnums indicates enum and bitflag properties are encoded
	// as length-prefixed names instead of raw integers.
	HumanReadableEnums SerializerFlags = 1 << 2
	// WithCompression indicates the stream may be zlib-compressed, gated
	// by a leading non-zero marker byte.
	WithCompression SerializerFlags = 1 << 3
	// ForbidDeltaEncode indicates every DELTA_ENCODE property must have
	// its presence bit set; a clear presence bit is an error rather than
	// meaning "unchanged".
	ForbidDeltaEncode SerializerFlags = 1 << 4
)

// Has reports whether every bit in mask is set in f.
func (f SerializerFlags) Has(mask SerializerFlags) bool {
	return f&mask == mask
}

func (f SerializerFlags) String() string {
	if f == 0 {
		return "none"
	}

	names := []struct {
		bit  SerializerFlags
		name string
	}{
		{StatefulFlags, "stateful_flags"},
		{CompactLengthPrefixes, "compact_length_prefixes"},
		{HumanReadableEnums, "human_readable_enums"},
		{WithCompression, "with_compression"},
		{ForbidDeltaEncode, "forbid_delta_encode"},
	}

	s := ""
	for _, n := range names {
		if f.Has(n.bit) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return "unknown"
	}

	return s
}
