// Package render converts a decoded value.Value tree into the textual
// JSON rendering ObjectProperty tooling and tests expect: objects flatten
// their fields alongside a "$__type" marker carrying the numeric type
// hash, and every other variant renders through its natural JSON shape.
package render

import (
	"unicode/utf16"

	gojson "github.com/goccy/go-json"

	"github.com/arcanegate/objprop/value"
)

// typeKey is the field injected into a rendered Object carrying its
// numeric type hash, per spec.md section 6.6.
const typeKey = "$__type"

// JSON renders v as its textual JSON form.
func JSON(v value.Value) ([]byte, error) {
	return gojson.Marshal(toNative(v))
}

// toNative flattens a value.Value into plain Go data (maps, slices,
// scalars) that the JSON marshaler can render without any custom
// MarshalJSON methods on value's types -- keeping the wire/value model
// free of a rendering-specific dependency.
func toNative(v value.Value) any {
	switch t := v.(type) {
	case value.Empty:
		return nil
	case value.Unsigned:
		return uint64(t)
	case value.Signed:
		return int64(t)
	case value.Float:
		return float64(t)
	case value.Bool:
		return bool(t)
	case value.Str:
		return string(t)
	case value.WStr:
		return string(utf16.Decode(t))
	case value.Enum:
		return int64(t)
	case value.Color:
		return map[string]any{"r": t.R, "g": t.G, "b": t.B, "a": t.A}
	case value.Vec3:
		return map[string]any{"x": t.X, "y": t.Y, "z": t.Z}
	case value.Quaternion:
		return map[string]any{"x": t.X, "y": t.Y, "z": t.Z, "w": t.W}
	case value.Euler:
		return map[string]any{"pitch": t.Pitch, "roll": t.Roll, "yaw": t.Yaw}
	case value.Mat3x3:
		return map[string]any{"i": t.I, "j": t.J, "k": t.K}
	case value.Point[int32]:
		return map[string]any{"x": t.X, "y": t.Y}
	case value.Point[float32]:
		return map[string]any{"x": t.X, "y": t.Y}
	case value.Point[uint32]:
		return map[string]any{"x": t.X, "y": t.Y}
	case value.Point[uint8]:
		return map[string]any{"x": t.X, "y": t.Y}
	case value.Size[int32]:
		return map[string]any{"width": t.Width, "height": t.Height}
	case value.Size[float32]:
		return map[string]any{"width": t.Width, "height": t.Height}
	case value.Rect[int32]:
		return map[string]any{"left": t.Left, "top": t.Top, "right": t.Right, "bottom": t.Bottom}
	case value.Rect[float32]:
		return map[string]any{"left": t.Left, "top": t.Top, "right": t.Right, "bottom": t.Bottom}
	case value.List:
		items := make([]any, len(t.Items))
		for i, it := range t.Items {
			items[i] = toNative(it)
		}

		return items
	case *value.Object:
		out := make(map[string]any, t.Len()+1)
		out[typeKey] = t.TypeHash
		for k, fv := range t.All() {
			out[k] = toNative(fv)
		}

		return out
	default:
		return nil
	}
}
