package typelist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanegate/objprop/errs"
	"github.com/arcanegate/objprop/format"
	"github.com/arcanegate/objprop/hash"
)

// Property describes one member of a TypeDef: its wire type, its ordering
// key, its flags, and (for enum-like properties) its named options.
type Property struct {
	Name        string
	Type        string
	ID          uint32
	Flags       format.PropertyFlags
	Dynamic     bool
	Hash        uint32
	EnumOptions map[string]StringOrInt
}

// TypeHash recovers the type hash folded into Hash, which is defined as
// the property's own DJB2 name hash plus its type's hash (mod 2^32).
func (p Property) TypeHash() uint32 {
	return p.Hash - hash.DJB2String(p.Name)
}

// IsEnumLike reports whether a property is decoded through the enum/bitflag
// codec rather than the plain primitive dispatcher: it is set ENUM or BITS
// in flags, or its type string is prefixed with "enum".
func (p Property) IsEnumLike() bool {
	return p.Flags.Has(format.PropEnum) || p.Flags.Has(format.PropBits) ||
		strings.HasPrefix(p.Type, "enum")
}

// DecodeEnumVariant renders a numeric enum/bitflag value as its
// human-readable option name(s), using this property's enum_options table.
//
// A single-valued enum (ENUM set, not BITS) looks up the one matching
// option. A bitflag set (BITS, or ENUM unset) ORs together every option
// whose bit is set in value, joined with " | ".
func (p Property) DecodeEnumVariant(value int64) (string, error) {
	if p.Flags.Has(format.PropEnum) && !p.Flags.Has(format.PropBits) {
		for name, opt := range p.EnumOptions {
			if opt.EqualsInt(value) {
				return name, nil
			}
		}

		return "", fmt.Errorf("%w: %d for property %q", errs.ErrUnknownEnumValue, value, p.Name)
	}

	var names []string
	for name, opt := range p.EnumOptions {
		bit, ok := opt.AsInt()
		if !ok {
			continue
		}
		if value&bit != 0 {
			names = append(names, name)
		}
	}

	return strings.Join(names, " | "), nil
}

// EncodeEnumVariant resolves a human-readable enum or bitflag name (or a
// " | "-joined set of bitflag names) back to its numeric value.
func (p Property) EncodeEnumVariant(text string) (int64, error) {
	if p.Flags.Has(format.PropEnum) && !p.Flags.Has(format.PropBits) {
		opt, ok := p.EnumOptions[text]
		if !ok {
			return 0, fmt.Errorf("objprop: unknown enum option %q for property %q", text, p.Name)
		}

		return opt.AsInt64(), nil
	}

	var total int64
	for _, part := range strings.Split(text, "|") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		opt, ok := p.EnumOptions[name]
		if !ok {
			return 0, fmt.Errorf("objprop: unknown bitflag option %q for property %q", name, p.Name)
		}
		total |= opt.AsInt64()
	}

	return total, nil
}

// StringOrInt is an enum_options value, which the game's dumps emit as
// either a JSON string or a JSON number interchangeably.
type StringOrInt struct {
	str    string
	num    int64
	isText bool
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (s *StringOrInt) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := jsonUnmarshal(data, &str); err != nil {
			return err
		}
		s.str = str
		s.isText = true

		return nil
	}

	var num int64
	if err := jsonUnmarshal(data, &num); err != nil {
		return err
	}
	s.num = num
	s.isText = false

	return nil
}

// AsInt reports the option's integer value and whether it could be
// determined, parsing a textual option if necessary.
func (s StringOrInt) AsInt() (int64, bool) {
	if !s.isText {
		return s.num, true
	}

	v, err := strconv.ParseInt(s.str, 10, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// AsInt64 is AsInt without the ok flag, for callers that already know the
// option parses cleanly.
func (s StringOrInt) AsInt64() int64 {
	v, _ := s.AsInt()
	return v
}

// EqualsInt reports whether this option's value equals rhs, whichever
// representation it was stored in.
func (s StringOrInt) EqualsInt(rhs int64) bool {
	v, ok := s.AsInt()
	return ok && v == rhs
}
