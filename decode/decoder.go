package decode

import (
	"github.com/arcanegate/objprop/bitio"
	"github.com/arcanegate/objprop/typelist"
	"github.com/arcanegate/objprop/value"
)

// Decoder decodes ObjectProperty streams against a fixed TypeList and a
// template Options. TypeList is shared read-only across every call; the
// template Options is copied into a fresh callState per Decode, so a
// single Decoder is safe for concurrent use.
type Decoder struct {
	types *typelist.TypeList
	base  Options
}

// New constructs a Decoder over types, applying opts on top of the
// package defaults.
func New(types *typelist.TypeList, opts ...Option) (*Decoder, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Decoder{types: types, base: *o}, nil
}

// callState is the per-call working state: a private copy of the
// configured options (the stream configurator may replace Flags), the
// reader over the (possibly decompressed) payload, and the recursion
// budget.
type callState struct {
	types     *typelist.TypeList
	opts      Options
	reader    *bitio.Reader
	recursion int8
}

func (d *Decoder) newCall() *callState {
	return &callState{
		types:     d.types,
		opts:      d.base,
		recursion: d.base.RecursionLimit,
	}
}

// Decode configures the stream and decodes the root object from data.
func (d *Decoder) Decode(data []byte) (value.Value, error) {
	cs := d.newCall()
	if err := cs.configure(data); err != nil {
		return nil, err
	}

	return cs.decodeRootObject()
}
