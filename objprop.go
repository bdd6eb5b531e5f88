// Package objprop decodes KingsIsle's ObjectProperty binary format: a
// reflection-driven serialization scheme used throughout the Wizard101 and
// Pirate101 client to persist and transmit game object state.
//
// A TypeList loaded from the game's exported JSON metadata describes every
// class and property the format can encode; a Decoder interprets a raw
// byte stream against that TypeList and produces a value.Value tree. The
// decode package implements the bit-level mechanics (stream
// configuration, primitive dispatch, shallow/deep object framing); this
// package is a thin, convenience-oriented front door over it, the same
// role the teacher package plays over its own blob package.
//
// # Basic usage
//
//	types, _ := objprop.LoadTypeList(typeListJSON)
//	dec, _ := objprop.NewDecoder(types)
//	v, _ := dec.Decode(rawBytes)
//	j, _ := objprop.RenderJSON(v)
package objprop

import (
	"fmt"

	"github.com/arcanegate/objprop/decode"
	"github.com/arcanegate/objprop/format"
	"github.com/arcanegate/objprop/render"
	"github.com/arcanegate/objprop/typelist"
	"github.com/arcanegate/objprop/value"
)

type (
	// Decoder decodes ObjectProperty streams against a fixed TypeList.
	Decoder = decode.Decoder
	// Options configures a single decode call.
	Options = decode.Options
	// Option configures an Options value.
	Option = decode.Option
	// TypeList is the loaded catalogue of class and property metadata.
	TypeList = typelist.TypeList
	// TypeDef describes one class: its name and its ordered properties.
	TypeDef = typelist.TypeDef
	// Property describes one reflected class member.
	Property = typelist.Property
	// Value is a decoded ObjectProperty value.
	Value = value.Value
)

// Re-exported Option constructors, so callers need only import this
// package for the common path.
var (
	NewOptions            = decode.NewOptions
	WithFlags             = decode.WithFlags
	WithPropertyMask       = decode.WithPropertyMask
	WithShallow            = decode.WithShallow
	WithManualCompression  = decode.WithManualCompression
	WithRecursionLimit     = decode.WithRecursionLimit
	WithSkipUnknownTypes   = decode.WithSkipUnknownTypes
)

// NewDecoder constructs a Decoder over types, applying opts on top of the
// package defaults.
func NewDecoder(types *TypeList, opts ...Option) (*Decoder, error) {
	return decode.New(types, opts...)
}

// LoadTypeList parses a TypeList JSON document in either the version-1 or
// version-2 on-disk shape.
func LoadTypeList(data []byte) (*TypeList, error) {
	return typelist.Load(data)
}

// RenderJSON renders a decoded Value to its textual JSON form, per
// spec.md section 6.6: objects flatten their fields alongside a
// "$__type" key carrying the numeric type hash.
func RenderJSON(v Value) ([]byte, error) {
	return render.JSON(v)
}

// Guess derives a likely Options for an unlabeled byte stream. Its output
// is advisory: the starting point for an attempted decode, which may
// still fail.
func Guess(types *TypeList, data []byte) (*Options, error) {
	return decode.Guess(types, data)
}

const binMagic = "BINd"

// DecodeBINd strips a leading "BINd" magic from data -- the marker a
// persisted client object file carries -- and decodes the remainder with
// deep framing and STATEFUL_FLAGS forced on, per spec.md section 6.4. Any
// opts are layered on top of that fixed configuration.
func DecodeBINd(types *TypeList, data []byte, opts ...Option) (Value, error) {
	if len(data) < len(binMagic) || string(data[:len(binMagic)]) != binMagic {
		return nil, fmt.Errorf("objprop: missing %q magic", binMagic)
	}

	forced := append([]Option{
		decode.WithShallow(false),
		decode.WithFlags(format.StatefulFlags),
	}, opts...)

	d, err := decode.New(types, forced...)
	if err != nil {
		return nil, err
	}

	return d.Decode(data[len(binMagic):])
}
