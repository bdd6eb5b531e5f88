package decode

import (
	"fmt"
	"math"
	"strings"

	"github.com/arcanegate/objprop/value"
)

// primitiveEntry is one row of the type-name-keyed primitive dispatch
// table. bitAligned marks entries that read bits directly with no
// expectation of byte alignment (bool, packed bit-integers); all other
// entries expect the reader sitting at a byte boundary, which callers
// ensure by realigning before invoking decode.
type primitiveEntry struct {
	bitAligned bool
	decode     func(cs *callState) (value.Value, error)
}

func signedBits(n int) func(cs *callState) (value.Value, error) {
	return func(cs *callState) (value.Value, error) {
		v, err := cs.reader.ReadSignedBits(n)
		return value.Signed(v), err
	}
}

func unsignedBits(n int) func(cs *callState) (value.Value, error) {
	return func(cs *callState) (value.Value, error) {
		v, err := cs.reader.ReadBits(n)
		return value.Unsigned(v), err
	}
}

func signedBytes(n int) func(cs *callState) (value.Value, error) {
	return func(cs *callState) (value.Value, error) {
		b, err := cs.reader.ReadBytes(n)
		if err != nil {
			return nil, err
		}

		return value.Signed(signExtendBytes(b)), nil
	}
}

func unsignedBytes(n int) func(cs *callState) (value.Value, error) {
	return func(cs *callState) (value.Value, error) {
		b, err := cs.reader.ReadBytes(n)
		if err != nil {
			return nil, err
		}

		return value.Unsigned(leUint(b)), nil
	}
}

func signExtendBytes(b []byte) int64 {
	u := leUint(b)
	n := len(b) * 8

	return (int64(u) << (64 - n)) >> (64 - n)
}

func leUint(b []byte) uint64 {
	var v uint64
	for i, x := range b {
		v |= uint64(x) << (8 * i)
	}

	return v
}

func decodeFloat32(cs *callState) (value.Value, error) {
	b, err := cs.reader.ReadBytes(4)
	if err != nil {
		return nil, err
	}

	return value.Float(float64(math.Float32frombits(uint32(leUint(b))))), nil
}

func decodeFloat64(cs *callState) (value.Value, error) {
	b, err := cs.reader.ReadBytes(8)
	if err != nil {
		return nil, err
	}

	return value.Float(math.Float64frombits(leUint(b))), nil
}

func decodeBool(cs *callState) (value.Value, error) {
	v, err := cs.reader.ReadBit()
	return value.Bool(v), err
}

func decodeString(cs *callState) (value.Value, error) {
	n, err := cs.readLength(16)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return value.Str(nil), nil
	}

	b, err := cs.reader.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)

	return value.Str(out), nil
}

func decodeWString(cs *callState) (value.Value, error) {
	n, err := cs.readLength(16)
	if err != nil {
		return nil, err
	}

	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		u, err := cs.reader.ReadUint16()
		if err != nil {
			return nil, err
		}
		out[i] = u
	}

	return value.WStr(out), nil
}

func decodeColor(cs *callState) (value.Value, error) {
	b, err := cs.reader.ReadBytes(4)
	if err != nil {
		return nil, err
	}

	return value.Color{B: b[0], G: b[1], R: b[2], A: b[3]}, nil
}

func readF32(cs *callState) (float32, error) {
	b, err := cs.reader.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(leUint(b))), nil
}

func decodeVec3(cs *callState) (value.Value, error) {
	x, err := readF32(cs)
	if err != nil {
		return nil, err
	}
	y, err := readF32(cs)
	if err != nil {
		return nil, err
	}
	z, err := readF32(cs)
	if err != nil {
		return nil, err
	}

	return value.Vec3{X: x, Y: y, Z: z}, nil
}

func decodeQuaternion(cs *callState) (value.Value, error) {
	x, err := readF32(cs)
	if err != nil {
		return nil, err
	}
	y, err := readF32(cs)
	if err != nil {
		return nil, err
	}
	z, err := readF32(cs)
	if err != nil {
		return nil, err
	}
	w, err := readF32(cs)
	if err != nil {
		return nil, err
	}

	return value.Quaternion{X: x, Y: y, Z: z, W: w}, nil
}

func decodeEuler(cs *callState) (value.Value, error) {
	pitch, err := readF32(cs)
	if err != nil {
		return nil, err
	}
	roll, err := readF32(cs)
	if err != nil {
		return nil, err
	}
	yaw, err := readF32(cs)
	if err != nil {
		return nil, err
	}

	return value.Euler{Pitch: pitch, Roll: roll, Yaw: yaw}, nil
}

func decodeMatrix3x3(cs *callState) (value.Value, error) {
	var m value.Mat3x3
	for _, row := range []*[3]float32{&m.I, &m.J, &m.K} {
		for i := range row {
			f, err := readF32(cs)
			if err != nil {
				return nil, err
			}
			row[i] = f
		}
	}

	return m, nil
}

var primitiveTable = map[string]primitiveEntry{
	"bool": {bitAligned: true, decode: decodeBool},

	"char":  {decode: signedBytes(1)},
	"short": {decode: signedBytes(2)},
	"int":   {decode: signedBytes(4)},
	"long":  {decode: signedBytes(4)},

	"unsigned char":  {decode: unsignedBytes(1)},
	"unsigned short": {decode: unsignedBytes(2)},
	"wchar_t":        {decode: unsignedBytes(2)},
	"unsigned int":   {decode: unsignedBytes(4)},
	"unsigned long":  {decode: unsignedBytes(4)},

	"float":  {decode: decodeFloat32},
	"double": {decode: decodeFloat64},

	"unsigned __int64": {decode: unsignedBytes(8)},
	"gid":              {decode: unsignedBytes(8)},
	"union gid":        {decode: unsignedBytes(8)},

	"bi2": {bitAligned: true, decode: signedBits(2)},
	"bi3": {bitAligned: true, decode: signedBits(3)},
	"bi4": {bitAligned: true, decode: signedBits(4)},
	"bi5": {bitAligned: true, decode: signedBits(5)},
	"bi6": {bitAligned: true, decode: signedBits(6)},
	"bi7": {bitAligned: true, decode: signedBits(7)},
	"s24": {bitAligned: true, decode: signedBits(24)},

	"bui2": {bitAligned: true, decode: unsignedBits(2)},
	"bui3": {bitAligned: true, decode: unsignedBits(3)},
	"bui4": {bitAligned: true, decode: unsignedBits(4)},
	"bui5": {bitAligned: true, decode: unsignedBits(5)},
	"bui6": {bitAligned: true, decode: unsignedBits(6)},
	"bui7": {bitAligned: true, decode: unsignedBits(7)},
	"u24":  {bitAligned: true, decode: unsignedBits(24)},

	"std::string": {decode: decodeString},
	"char*":       {decode: decodeString},
	"std::wstring": {decode: decodeWString},
	"wchar_t*":     {decode: decodeWString},

	"class Color":      {decode: decodeColor},
	"class Vector3D":   {decode: decodeVec3},
	"class Quaternion": {decode: decodeQuaternion},
	"class Euler":      {decode: decodeEuler},
	"class Matrix3x3":  {decode: decodeMatrix3x3},
}

// lookupPrimitive resolves a property type string to a primitive table
// entry, handling the generic Size<T>/Point<T>/Rect<T> forms by parsing
// their type argument. Each component is then read by readRectComponent,
// which accepts int, float, unsigned int and unsigned char, not by a
// lookup in the primitive table; Size and Rect accept only int and float.
func lookupPrimitive(typeName string) (primitiveEntry, bool) {
	if e, ok := primitiveTable[typeName]; ok {
		return e, true
	}

	switch {
	case strings.HasPrefix(typeName, "class Size<"):
		arg := genericArgument(typeName)
		return primitiveEntry{decode: func(cs *callState) (value.Value, error) { return decodeSize(cs, arg) }}, true
	case strings.HasPrefix(typeName, "class Point<"):
		arg := genericArgument(typeName)
		return primitiveEntry{decode: func(cs *callState) (value.Value, error) { return decodePoint(cs, arg) }}, true
	case strings.HasPrefix(typeName, "class Rect<"):
		arg := genericArgument(typeName)
		return primitiveEntry{decode: func(cs *callState) (value.Value, error) { return decodeRect(cs, arg) }}, true
	}

	return primitiveEntry{}, false
}

// genericArgument extracts the substring between the first `<` and the
// last `>` in a type string like "class Point<float>".
func genericArgument(typeName string) string {
	start := strings.IndexByte(typeName, '<')
	end := strings.LastIndexByte(typeName, '>')
	if start < 0 || end < 0 || end <= start {
		return ""
	}

	return typeName[start+1 : end]
}

func readRectComponent(cs *callState, arg string) (int32, float32, uint32, uint8, error) {
	switch arg {
	case "int":
		b, err := cs.reader.ReadBytes(4)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		return int32(signExtendBytes(b)), 0, 0, 0, nil
	case "float":
		f, err := readF32(cs)
		return 0, f, 0, 0, err
	case "unsigned int":
		b, err := cs.reader.ReadBytes(4)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		return 0, 0, uint32(leUint(b)), 0, nil
	case "unsigned char":
		b, err := cs.reader.ReadBytes(1)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		return 0, 0, 0, b[0], nil
	default:
		return 0, 0, 0, 0, fmt.Errorf("objprop: unsupported generic component type %q", arg)
	}
}

func decodePoint(cs *callState, arg string) (value.Value, error) {
	x1, x2, x3, x4, err := readRectComponent(cs, arg)
	if err != nil {
		return nil, err
	}
	y1, y2, y3, y4, err := readRectComponent(cs, arg)
	if err != nil {
		return nil, err
	}

	switch arg {
	case "int":
		return value.Point[int32]{X: x1, Y: y1}, nil
	case "float":
		return value.Point[float32]{X: x2, Y: y2}, nil
	case "unsigned int":
		return value.Point[uint32]{X: x3, Y: y3}, nil
	case "unsigned char":
		return value.Point[uint8]{X: x4, Y: y4}, nil
	default:
		return nil, fmt.Errorf("objprop: unsupported Point<%s>", arg)
	}
}

func decodeSize(cs *callState, arg string) (value.Value, error) {
	w1, w2, _, _, err := readRectComponent(cs, arg)
	if err != nil {
		return nil, err
	}
	h1, h2, _, _, err := readRectComponent(cs, arg)
	if err != nil {
		return nil, err
	}

	switch arg {
	case "int":
		return value.Size[int32]{Width: w1, Height: h1}, nil
	case "float":
		return value.Size[float32]{Width: w2, Height: h2}, nil
	default:
		return nil, fmt.Errorf("objprop: unsupported Size<%s>", arg)
	}
}

func decodeRect(cs *callState, arg string) (value.Value, error) {
	l1, l2, _, _, err := readRectComponent(cs, arg)
	if err != nil {
		return nil, err
	}
	t1, t2, _, _, err := readRectComponent(cs, arg)
	if err != nil {
		return nil, err
	}
	r1, r2, _, _, err := readRectComponent(cs, arg)
	if err != nil {
		return nil, err
	}
	b1, b2, _, _, err := readRectComponent(cs, arg)
	if err != nil {
		return nil, err
	}

	switch arg {
	case "int":
		return value.Rect[int32]{Left: l1, Top: t1, Right: r1, Bottom: b1}, nil
	case "float":
		return value.Rect[float32]{Left: l2, Top: t2, Right: r2, Bottom: b2}, nil
	default:
		return nil, fmt.Errorf("objprop: unsupported Rect<%s>", arg)
	}
}
