package decode

import (
	"fmt"

	"github.com/arcanegate/objprop/errs"
	"github.com/arcanegate/objprop/format"
	"github.com/arcanegate/objprop/typelist"
	"github.com/arcanegate/objprop/value"
)

// enter charges one level of the recursion budget against a descent into
// a nested object or list; leave restores it on the way back out. The
// limit is the only safeguard against a hostile or malformed stream
// driving the decoder into unbounded nesting.
func (cs *callState) enter() error {
	cs.recursion--
	if cs.recursion < 0 {
		return errs.ErrRecursion
	}

	return nil
}

func (cs *callState) leave() {
	cs.recursion++
}

// decodeRootObject decodes the single top-level object a Decode call
// produces. Unlike a nested object reference, a null type tag at the root
// is an error rather than a valid Empty value.
func (cs *callState) decodeRootObject() (value.Value, error) {
	tag, err := cs.reader.ReadUint32()
	if err != nil {
		return nil, err
	}
	if tag == 0 {
		return nil, errs.ErrNullRoot
	}

	return cs.decodeObjectBody(tag)
}

// decodeNestedObject decodes an object referenced by another object's
// property. A null type tag here is a valid null pointer and decodes to
// Empty.
func (cs *callState) decodeNestedObject() (value.Value, error) {
	tag, err := cs.reader.ReadUint32()
	if err != nil {
		return nil, err
	}
	if tag == 0 {
		return value.Empty{}, nil
	}

	return cs.decodeObjectBody(tag)
}

// decodeObjectBody runs the shared prelude (TypeList lookup, unknown-type
// handling) and then branches to the shallow or deep property loop.
func (cs *callState) decodeObjectBody(tag uint32) (value.Value, error) {
	td, ok := cs.types.Get(tag)
	if !ok {
		if cs.opts.SkipUnknownTypes {
			return cs.skipUnknownDeep()
		}

		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownType, tag)
	}

	if cs.opts.Shallow {
		return cs.decodeShallow(tag, td)
	}

	return cs.decodeDeep(tag, td)
}

// skipUnknownDeep consumes a deep-framed object whose type tag is absent
// from the TypeList: the encoded-bit-size prefix tells us exactly how many
// bits to discard without needing to interpret a single property. Only
// valid in deep framing; NewOptions rejects the shallow+skip-unknown
// combination up front so this is never reached under shallow framing.
func (cs *callState) skipUnknownDeep() (value.Value, error) {
	size, err := cs.reader.ReadUint32()
	if err != nil {
		return nil, err
	}

	remaining := int(size) - 32
	if remaining < 0 {
		return nil, errs.ErrObjectSizeMismatch
	}

	if wholeBytes := remaining / 8; wholeBytes > 0 {
		if _, err := cs.reader.ReadBytes(wholeBytes); err != nil {
			return nil, err
		}
	}
	if leftover := remaining % 8; leftover > 0 {
		if _, err := cs.reader.ReadBits(leftover); err != nil {
			return nil, err
		}
	}

	return value.Empty{}, nil
}

// decodeShallow iterates a TypeDef's properties in their sorted (stable)
// order, skipping deprecated properties and any whose flags share no bit
// with the stream's property mask. No per-object or per-property size is
// written in this framing.
func (cs *callState) decodeShallow(tag uint32, td typelist.TypeDef) (value.Value, error) {
	obj := value.NewObject(tag)

	for _, prop := range td.Properties {
		if prop.Flags&cs.opts.PropertyMask == 0 {
			continue
		}
		if prop.Flags.Has(format.PropDeprecated) {
			continue
		}

		v, err := cs.decodeProperty(prop)
		if err != nil {
			return nil, err
		}

		obj.Insert(prop.Name, v)
	}

	return obj, nil
}

// decodeDeep reads the object's encoded-bit-size prefix and then loops,
// reading one property_size/property_hash framing pair per iteration,
// until the declared size is exhausted. Every property's actual bit
// consumption (including its own size/hash prefix) must equal its
// declared property_size exactly.
func (cs *callState) decodeDeep(tag uint32, td typelist.TypeDef) (value.Value, error) {
	sizeWord, err := cs.reader.ReadUint32()
	if err != nil {
		return nil, err
	}

	remaining := int64(sizeWord) - 32
	obj := value.NewObject(tag)

	for remaining > 0 {
		cursor := cs.reader.RemainingBits()

		propSize, err := cs.reader.ReadUint32()
		if err != nil {
			return nil, err
		}
		propHash, err := cs.reader.ReadUint32()
		if err != nil {
			return nil, err
		}

		prop, ok := findPropertyByHash(td, propHash)
		if !ok {
			return nil, fmt.Errorf("%w: %d", errs.ErrUnknownProperty, propHash)
		}

		v, err := cs.decodeProperty(prop)
		if err != nil {
			return nil, err
		}

		consumed := cursor - cs.reader.RemainingBits()
		if consumed != int(propSize) {
			return nil, fmt.Errorf("%w: expected %d, got %d", errs.ErrPropertySizeMismatch, propSize, consumed)
		}

		remaining -= int64(propSize)
		if remaining < 0 {
			return nil, errs.ErrObjectSizeMismatch
		}

		obj.Insert(prop.Name, v)
	}

	return obj, nil
}

func findPropertyByHash(td typelist.TypeDef, h uint32) (typelist.Property, bool) {
	for _, p := range td.Properties {
		if p.Hash == h {
			return p, true
		}
	}

	return typelist.Property{}, false
}
