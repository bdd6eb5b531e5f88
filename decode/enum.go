package decode

import (
	"fmt"
	"unicode/utf8"

	"github.com/arcanegate/objprop/errs"
	"github.com/arcanegate/objprop/format"
	"github.com/arcanegate/objprop/typelist"
	"github.com/arcanegate/objprop/value"
)

// decodeEnum decodes an enum or bitflag property. Under
// HUMAN_READABLE_ENUMS the wire carries a length-prefixed name (or, for a
// bitflag set, several names joined by " | "), resolved back to an
// integer through the property's enum_options table; otherwise the wire
// carries the raw 32-bit integer directly. Both forms must agree on the
// resulting Enum value for the same semantic option.
func (cs *callState) decodeEnum(prop typelist.Property) (value.Value, error) {
	if !cs.opts.Flags.Has(format.HumanReadableEnums) {
		u, err := cs.reader.ReadUint32()
		if err != nil {
			return nil, err
		}

		return value.Enum(int64(u)), nil
	}

	n, err := cs.readLength(16)
	if err != nil {
		return nil, err
	}

	var text string
	if n > 0 {
		b, err := cs.reader.ReadBytes(n)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b) {
			return nil, errs.ErrDecode
		}
		text = string(b)
	}

	v, err := prop.EncodeEnumVariant(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnknownEnumName, err)
	}

	return value.Enum(v), nil
}
