package value

// Color is an RGBA color value. On the wire its bytes are read in the
// order blue, green, red, alpha; decoders are responsible for that
// reordering; the fields here are always named for what they represent,
// not for wire position.
type Color struct {
	R, G, B, A uint8
}

func (Color) isValue() {}

// Vec3 is a 3-component float vector.
type Vec3 struct {
	X, Y, Z float32
}

func (Vec3) isValue() {}

// Quaternion is a 4-component rotation quaternion.
type Quaternion struct {
	X, Y, Z, W float32
}

func (Quaternion) isValue() {}

// Euler is a set of Euler rotation angles. The wire reads these in the
// order pitch, roll, yaw; the struct fields follow that same order.
type Euler struct {
	Pitch, Roll, Yaw float32
}

func (Euler) isValue() {}

// Mat3x3 is a row-major 3x3 matrix.
type Mat3x3 struct {
	I, J, K [3]float32
}

func (Mat3x3) isValue() {}
