package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanegate/objprop/errs"
	"github.com/arcanegate/objprop/format"
	"github.com/arcanegate/objprop/typelist"
	"github.com/arcanegate/objprop/value"
)

const transmit = uint32(format.PropTransmit)

// Scenario A: all scalars, shallow framing, no compression, fixed-width
// length prefixes. See spec.md section 8.
func TestScenario_AllScalarsShallow(t *testing.T) {
	const tag = uint32(0xAAAA0001)

	tl := newTestTypeList(t, classFixture{
		Hash: tag,
		Name: "AllScalars",
		Props: map[string]propFixture{
			"p0": {Type: "bool", ID: 0, Flags: transmit},
			"p1": {Type: "char", ID: 1, Flags: transmit},
			"p2": {Type: "unsigned char", ID: 2, Flags: transmit},
			"p3": {Type: "short", ID: 3, Flags: transmit},
			"p4": {Type: "unsigned short", ID: 4, Flags: transmit},
			"p5": {Type: "int", ID: 5, Flags: transmit},
			"p6": {Type: "unsigned int", ID: 6, Flags: transmit},
			"p7": {Type: "float", ID: 7, Flags: transmit},
			"p8": {Type: "double", ID: 8, Flags: transmit},
			"p9": {Type: "unsigned __int64", ID: 9, Flags: transmit},
		},
	})

	w := &bitWriter{}
	w.WriteUint32(tag)
	w.WriteBit(true)                     // p0 bool
	w.WriteBytes([]byte{0xFB})            // p1 char = -5
	w.WriteBytes([]byte{200})             // p2 unsigned char
	w.WriteUint16(uint16(int16(-1000)))   // p3 short
	w.WriteUint16(50000)                  // p4 unsigned short
	w.WriteUint32(uint32(int32(-123456))) // p5 int
	w.WriteUint32(3000000000)             // p6 unsigned int
	w.WriteFloat32(3.5)                   // p7 float
	w.WriteFloat64(2.25)                  // p8 double
	w.WriteUint64(123456789012345)        // p9 unsigned __int64

	dec, err := New(tl, WithShallow(true))
	require.NoError(t, err)

	v, err := dec.Decode(w.Bytes())
	require.NoError(t, err)

	obj, ok := v.(*value.Object)
	require.True(t, ok)
	assert.Equal(t, tag, obj.TypeHash)

	var keys []string
	for k := range obj.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"p0", "p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9"}, keys)

	expect := map[string]value.Value{
		"p0": value.Bool(true),
		"p1": value.Signed(-5),
		"p2": value.Unsigned(200),
		"p3": value.Signed(-1000),
		"p4": value.Unsigned(50000),
		"p5": value.Signed(-123456),
		"p6": value.Unsigned(3000000000),
		"p7": value.Float(3.5),
		"p8": value.Float(2.25),
		"p9": value.Unsigned(123456789012345),
	}
	for k, want := range expect {
		got, ok := obj.Field(k)
		require.True(t, ok, k)
		assert.Equal(t, want, got, k)
	}
}

// Scenario B: compact length prefixes on a std::string property.
func TestScenario_StringsCompact(t *testing.T) {
	const tag = uint32(2)

	tl := newTestTypeList(t, classFixture{
		Hash: tag,
		Name: "StrObj",
		Props: map[string]propFixture{
			"s": {Type: "std::string", ID: 0, Flags: transmit},
		},
	})

	w := &bitWriter{}
	w.WriteUint32(tag)
	w.WriteBit(false)      // small (7-bit) length class
	w.WriteBits(3, 7)      // length 3
	w.WriteBytes([]byte("abc"))

	dec, err := New(tl, WithShallow(true), WithFlags(format.CompactLengthPrefixes))
	require.NoError(t, err)

	v, err := dec.Decode(w.Bytes())
	require.NoError(t, err)

	obj := v.(*value.Object)
	got, ok := obj.Field("s")
	require.True(t, ok)
	assert.Equal(t, value.Str([]byte("abc")), got)
}

// Scenario C: deep framing, delta-encoded property absent, both permissive
// and FORBID_DELTA_ENCODE variants over the same bytes.
func TestScenario_DeepDeltaAbsent(t *testing.T) {
	const tag = uint32(3)
	const propHash = uint32(555)

	tl := newTestTypeList(t, classFixture{
		Hash: tag,
		Name: "DeltaObj",
		Props: map[string]propFixture{
			"x": {Type: "int", ID: 0, Flags: transmit | uint32(format.PropDeltaEncode), Hash: propHash},
		},
	})

	const propSize = 32 + 32 + 1 // property_size + property_hash + presence bit
	w := &bitWriter{}
	w.WriteUint32(tag)
	w.WriteUint32(propSize + 32) // object size prefix (usable size + 32)
	w.WriteUint32(propSize)
	w.WriteUint32(propHash)
	w.WriteBit(false) // presence bit: absent

	data := w.Bytes()

	dec, err := New(tl, WithShallow(false))
	require.NoError(t, err)

	v, err := dec.Decode(data)
	require.NoError(t, err)

	obj := v.(*value.Object)
	got, ok := obj.Field("x")
	require.True(t, ok)
	assert.Equal(t, value.Empty{}, got)

	strictDec, err := New(tl, WithShallow(false), WithFlags(format.ForbidDeltaEncode))
	require.NoError(t, err)

	_, err = strictDec.Decode(data)
	assert.ErrorIs(t, err, errs.ErrMissingDelta)
}

// Scenario D: a BITS-flagged property encoded under HUMAN_READABLE_ENUMS
// as a combined "A | C" bitflag string.
func TestScenario_BitflagsTextual(t *testing.T) {
	const tag = uint32(4)

	tl := newTestTypeList(t, classFixture{
		Hash: tag,
		Name: "BitsObj",
		Props: map[string]propFixture{
			"flags": {
				Type:        "int",
				ID:          0,
				Flags:       transmit | uint32(format.PropBits),
				EnumOptions: map[string]any{"A": 1, "B": 2, "C": 4},
			},
		},
	})

	w := &bitWriter{}
	w.WriteUint32(tag)
	w.WriteUint16(5) // len("A | C")
	w.WriteBytes([]byte("A | C"))

	dec, err := New(tl, WithShallow(true), WithFlags(format.HumanReadableEnums))
	require.NoError(t, err)

	v, err := dec.Decode(w.Bytes())
	require.NoError(t, err)

	obj := v.(*value.Object)
	got, ok := obj.Field("flags")
	require.True(t, ok)
	assert.Equal(t, value.Enum(5), got)
}

// Scenario E: a shallow stream with one nested object reference.
func TestScenario_NestedObject(t *testing.T) {
	const outerHash = uint32(10)
	const innerHash = uint32(20)

	tl := newTestTypeList(t,
		classFixture{
			Hash: outerHash,
			Name: "Outer",
			Props: map[string]propFixture{
				"inner": {Type: "class Inner", ID: 0, Flags: transmit},
			},
		},
		classFixture{
			Hash: innerHash,
			Name: "Inner",
			Props: map[string]propFixture{
				"x": {Type: "int", ID: 0, Flags: transmit},
			},
		},
	)

	w := &bitWriter{}
	w.WriteUint32(outerHash)
	w.WriteUint32(innerHash)
	w.WriteUint32(uint32(int32(7)))

	dec, err := New(tl, WithShallow(true))
	require.NoError(t, err)

	v, err := dec.Decode(w.Bytes())
	require.NoError(t, err)

	outer := v.(*value.Object)
	assert.Equal(t, outerHash, outer.TypeHash)

	innerVal, ok := outer.Field("inner")
	require.True(t, ok)
	inner, ok := innerVal.(*value.Object)
	require.True(t, ok)
	assert.Equal(t, innerHash, inner.TypeHash)

	x, ok := inner.Field("x")
	require.True(t, ok)
	assert.Equal(t, value.Signed(7), x)
}

// Testable property 9: a null root type tag is an error, not an Empty
// value.
func TestNullRootIsError(t *testing.T) {
	tl := typelist.New()
	dec, err := New(tl, WithShallow(true))
	require.NoError(t, err)

	w := &bitWriter{}
	w.WriteUint32(0)

	_, err = dec.Decode(w.Bytes())
	assert.ErrorIs(t, err, errs.ErrNullRoot)
}

// Testable property 8: an unrecognised property hash in deep framing is
// rejected.
func TestDeepMode_UnknownPropertyRejected(t *testing.T) {
	const tag = uint32(77)

	tl := newTestTypeList(t, classFixture{
		Hash: tag,
		Name: "Obj",
		Props: map[string]propFixture{
			"x": {Type: "int", ID: 0, Flags: transmit, Hash: 1},
		},
	})

	w := &bitWriter{}
	w.WriteUint32(tag)
	w.WriteUint32(32 + 32 + 32) // object size: hash + value, no match
	w.WriteUint32(32 + 32)
	w.WriteUint32(999) // unknown hash
	w.WriteUint32(uint32(int32(1)))

	dec, err := New(tl, WithShallow(false))
	require.NoError(t, err)

	_, err = dec.Decode(w.Bytes())
	assert.ErrorIs(t, err, errs.ErrUnknownProperty)
}

// Testable property 7: a mutated deep-mode property size is caught.
func TestDeepMode_PropertySizeMismatch(t *testing.T) {
	const tag = uint32(78)
	const propHash = uint32(1)

	tl := newTestTypeList(t, classFixture{
		Hash: tag,
		Name: "Obj",
		Props: map[string]propFixture{
			"x": {Type: "int", ID: 0, Flags: transmit, Hash: propHash},
		},
	})

	const actualSize = 32 + 32 + 32 // size + hash + a 32-bit int value
	w := &bitWriter{}
	w.WriteUint32(tag)
	w.WriteUint32(actualSize + 32)
	w.WriteUint32(actualSize + 1) // wrong declared size
	w.WriteUint32(propHash)
	w.WriteUint32(uint32(int32(1)))

	dec, err := New(tl, WithShallow(false))
	require.NoError(t, err)

	_, err = dec.Decode(w.Bytes())
	assert.ErrorIs(t, err, errs.ErrPropertySizeMismatch)
}

func TestUnknownTypeRejectedByDefault(t *testing.T) {
	tl := typelist.New()

	w := &bitWriter{}
	w.WriteUint32(12345)

	dec, err := New(tl, WithShallow(true))
	require.NoError(t, err)

	_, err = dec.Decode(w.Bytes())
	assert.ErrorIs(t, err, errs.ErrUnknownType)
}

func TestSkipUnknownTypes_DeepFraming(t *testing.T) {
	tl := typelist.New()

	const usableBits = 9 // one padding byte plus a bit, just to exercise leftover handling
	w := &bitWriter{}
	w.WriteUint32(999) // unknown tag
	w.WriteUint32(usableBits + 32)
	w.WriteUint32(0xBEEF)

	dec, err := New(tl, WithShallow(false), WithSkipUnknownTypes(true))
	require.NoError(t, err)

	v, err := dec.Decode(w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, value.Empty{}, v)
}

func TestBadConfig_ShallowWithSkipUnknown(t *testing.T) {
	tl := typelist.New()
	_, err := New(tl, WithShallow(true), WithSkipUnknownTypes(true))
	assert.ErrorIs(t, err, errs.ErrBadConfig)
}
