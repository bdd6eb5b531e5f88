package value

// PointNumeric enumerates the component types Point supports. The wire
// format stores Point<u8> and Point<u32> alongside the more common
// integer and float variants.
type PointNumeric interface {
	int32 | float32 | uint32 | uint8
}

// RectNumeric enumerates the component types Size and Rect support.
type RectNumeric interface {
	int32 | float32
}

// Point is a generic 2-component point, parameterized over the wire's
// element type.
type Point[T PointNumeric] struct {
	X, Y T
}

func (Point[T]) isValue() {}

// Size is a generic width/height pair.
type Size[T RectNumeric] struct {
	Width, Height T
}

func (Size[T]) isValue() {}

// Rect is a generic axis-aligned rectangle given as two opposite corners.
type Rect[T RectNumeric] struct {
	Left, Top, Right, Bottom T
}

func (Rect[T]) isValue() {}
