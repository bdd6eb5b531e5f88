package format

// PropertyFlags are the configuration bits a TypeList attaches to each
// Property, controlling persistence, visibility, and wire behavior.
type PropertyFlags uint32

const (
	PropSave              PropertyFlags = 1 << 0
	PropCopy              PropertyFlags = 1 << 1
	PropPublic            PropertyFlags = 1 << 2
	PropTransmit          PropertyFlags = 1 << 3
	PropPrivilegedTransmit PropertyFlags = 1 << 4
	PropPersist           PropertyFlags = 1 << 5
	PropDeprecated        PropertyFlags = 1 << 6
	PropNoScript          PropertyFlags = 1 << 7
	PropDeltaEncode       PropertyFlags = 1 << 8
	PropBlob              PropertyFlags = 1 << 9

	PropNoEdit          PropertyFlags = 1 << 16
	PropFilename        PropertyFlags = 1 << 17
	PropColor           PropertyFlags = 1 << 18
	PropConstrainedValue PropertyFlags = 1 << 19
	PropBits            PropertyFlags = 1 << 20
	PropEnum            PropertyFlags = 1 << 21
	PropLocalized       PropertyFlags = 1 << 22
	PropStringKey       PropertyFlags = 1 << 23
	PropObjectID        PropertyFlags = 1 << 24
	PropReferenceID     PropertyFlags = 1 << 25
	PropRadians         PropertyFlags = 1 << 26
	PropObjectName      PropertyFlags = 1 << 27
	PropHasBaseclass    PropertyFlags = 1 << 28
	PropIsBehavior      PropertyFlags = 1 << 29
	PropAsset           PropertyFlags = 1 << 30
)

// Has reports whether every bit in mask is set in f.
func (f PropertyFlags) Has(mask PropertyFlags) bool {
	return f&mask == mask
}

// DefaultPropertyMask is the property_mask a deserializer uses when the
// caller hasn't overridden it: transmit and privileged-transmit
// properties only.
const DefaultPropertyMask = PropTransmit | PropPrivilegedTransmit
