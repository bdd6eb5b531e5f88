package decode

import (
	"github.com/arcanegate/objprop/errs"
	"github.com/arcanegate/objprop/format"
	"github.com/arcanegate/objprop/typelist"
	"github.com/arcanegate/objprop/value"
)

// decodeProperty runs the full property decoding protocol for prop:
// optional delta-encode gating, dynamic (list) vs single-value framing,
// and dispatch to the enum codec, the primitive table, or a nested
// object.
func (cs *callState) decodeProperty(prop typelist.Property) (value.Value, error) {
	if prop.Flags.Has(format.PropDeltaEncode) {
		present, err := cs.reader.ReadBit()
		if err != nil {
			return nil, err
		}
		if !present {
			if cs.opts.Flags.Has(format.ForbidDeltaEncode) {
				return nil, errs.ErrMissingDelta
			}

			return value.Empty{}, nil
		}
	}

	if prop.Dynamic {
		return cs.decodeList(prop)
	}

	return cs.decodeSingleValue(prop)
}

func (cs *callState) decodeList(prop typelist.Property) (value.Value, error) {
	n, err := cs.readLength(32)
	if err != nil {
		return nil, err
	}

	if err := cs.enter(); err != nil {
		return nil, err
	}
	defer cs.leave()

	items := make([]value.Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := cs.decodeSingleValue(prop)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}

	return value.List{Items: items}, nil
}

func (cs *callState) decodeSingleValue(prop typelist.Property) (value.Value, error) {
	if prop.IsEnumLike() {
		return cs.decodeEnum(prop)
	}

	if entry, ok := lookupPrimitive(prop.Type); ok {
		if !entry.bitAligned {
			cs.reader.RealignToByte()
		}

		return entry.decode(cs)
	}

	if err := cs.enter(); err != nil {
		return nil, err
	}
	defer cs.leave()

	return cs.decodeNestedObject()
}
