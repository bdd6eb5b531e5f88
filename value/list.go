package value

// List is a decoded dynamic (sequence-typed) property: an ordered run of
// values of the same element type.
type List struct {
	Items []Value
}

func (List) isValue() {}

// Len reports the number of elements in the list.
func (l List) Len() int {
	return len(l.Items)
}
