// Package decode implements the ObjectProperty binary decoder: stream
// configuration, primitive dispatch, and the property/object decoding
// loops that turn a byte buffer plus a TypeList into a value.Value.
package decode

import (
	"github.com/arcanegate/objprop/errs"
	"github.com/arcanegate/objprop/format"
	"github.com/arcanegate/objprop/internal/options"
)

// Options configures a single decode call. The zero value is not ready to
// use; construct one with NewOptions, which applies the package defaults
// before any caller-supplied Option is applied.
type Options struct {
	Flags             format.SerializerFlags
	PropertyMask      format.PropertyFlags
	Shallow           bool
	ManualCompression bool
	RecursionLimit    int8
	SkipUnknownTypes  bool
}

// Option configures an Options value.
type Option = options.Option[*Options]

// defaultRecursionLimit mirrors the reference implementation's
// u8::MAX / 2: high enough for legitimately deep object graphs, low
// enough to guarantee the recursion counter can't be made to wrap.
const defaultRecursionLimit = 127

// NewOptions builds an Options value from the package defaults plus any
// supplied overrides, validating the result.
func NewOptions(opts ...Option) (*Options, error) {
	o := &Options{
		PropertyMask:   format.DefaultPropertyMask,
		Shallow:        true,
		RecursionLimit: defaultRecursionLimit,
	}

	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	if o.Shallow && o.SkipUnknownTypes {
		return nil, errs.ErrBadConfig
	}

	return o, nil
}

// WithFlags sets the initial SerializerFlags. Stream Configurator may
// still replace these if STATEFUL_FLAGS is set.
func WithFlags(flags format.SerializerFlags) Option {
	return options.NoError(func(o *Options) {
		o.Flags = flags
	})
}

// WithPropertyMask overrides which properties are visited in shallow
// framing.
func WithPropertyMask(mask format.PropertyFlags) Option {
	return options.NoError(func(o *Options) {
		o.PropertyMask = mask
	})
}

// WithShallow selects shallow (true) or deep (false) object framing.
func WithShallow(shallow bool) Option {
	return options.NoError(func(o *Options) {
		o.Shallow = shallow
	})
}

// WithManualCompression marks the input as outer-zlib-compressed ahead
// of any stream-flag-driven inner compression.
func WithManualCompression(manual bool) Option {
	return options.NoError(func(o *Options) {
		o.ManualCompression = manual
	})
}

// WithRecursionLimit overrides the recursion budget for nested objects
// and lists.
func WithRecursionLimit(limit int8) Option {
	return options.NoError(func(o *Options) {
		o.RecursionLimit = limit
	})
}

// WithSkipUnknownTypes allows unrecognised type tags to be skipped by
// consuming their framed size instead of failing the whole decode. Valid
// only combined with deep framing; NewOptions validates the combination
// once every option has been applied, since options may be given in any
// order.
func WithSkipUnknownTypes(skip bool) Option {
	return options.NoError(func(o *Options) {
		o.SkipUnknownTypes = skip
	})
}
