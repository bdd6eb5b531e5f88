package value

import "github.com/arcanegate/objprop/internal/intern"

// Object is a decoded instance of a TypeDef: a type hash plus an ordered
// mapping from property name to value.
//
// Field order follows discovery order (the order properties were decoded
// in, which for shallow framing is the TypeDef's sorted property order and
// for deep framing is wire order). Re-inserting an already-present key
// updates its value in place without disturbing its position, matching
// the reference implementation's IndexMap-backed object model.
type Object struct {
	TypeHash uint32

	keys  []string
	index map[string]int
	vals  []Value
}

func (*Object) isValue() {}

// NewObject constructs an empty Object for the given type hash.
func NewObject(typeHash uint32) *Object {
	return &Object{TypeHash: typeHash}
}

// Insert sets key to v, interning key through the shared string pool.
// If key is already present its value is replaced but its position in
// iteration order is unchanged.
func (o *Object) Insert(key string, v Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return
	}

	key = intern.Default.String(key)
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Field looks up key and reports whether it was present.
func (o *Object) Field(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}

	return o.vals[i], true
}

// Len reports the number of fields in the object.
func (o *Object) Len() int {
	return len(o.keys)
}

// All iterates fields in insertion order.
func (o *Object) All() func(yield func(key string, v Value) bool) {
	return func(yield func(key string, v Value) bool) {
		for i, k := range o.keys {
			if !yield(k, o.vals[i]) {
				return
			}
		}
	}
}
