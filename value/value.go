// Package value implements the dynamically-typed tree that ObjectProperty
// decoding produces: a tagged union of scalars, strings, composite math
// types, and two recursive containers (List and Object).
//
// Value is modeled as a sealed interface rather than a Rust-style enum;
// each variant is its own Go type implementing the unexported isValue
// marker, so the compiler still enforces exhaustiveness everywhere a
// switch over a Value needs it, and callers outside the package cannot
// manufacture new variants.
package value

// Value is a decoded ObjectProperty value. The concrete dynamic type
// identifies the variant; a type switch is the idiomatic way to interpret
// one.
type Value interface {
	isValue()
}

// Empty represents a null or absent value, including the result of
// decoding a null object pointer (type hash 0) and an un-set delta-encoded
// property.
type Empty struct{}

func (Empty) isValue() {}

// Unsigned is any unsigned integer value.
type Unsigned uint64

func (Unsigned) isValue() {}

// Signed is any signed integer value.
type Signed int64

func (Signed) isValue() {}

// Float is any floating-point value.
type Float float64

func (Float) isValue() {}

// Bool is a boolean value.
type Bool bool

func (Bool) isValue() {}

// Str is a C++ narrow string: raw bytes, not null-terminated and not
// necessarily valid UTF-8.
type Str []byte

func (Str) isValue() {}

// WStr is a C++ wide string: a sequence of UTF-16 code units, not
// null-terminated.
type WStr []uint16

func (WStr) isValue() {}

// Enum is a decoded enum or bitflag value in its numeric form. Both wire
// encodings (integer and human-readable string) decode to the same Enum
// value, so two object graphs that differ only in which encoding produced
// them compare equal.
type Enum int64

func (Enum) isValue() {}
