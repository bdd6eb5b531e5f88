// Package errs defines the sentinel errors returned across objprop.
//
// Every error a caller might want to compare against with errors.Is is
// declared here as a package-level value. Call sites that need to attach
// dynamic detail (an offset, a hash, an expected/actual pair) wrap one of
// these with fmt.Errorf("%w: ...", ErrXxx, detail) rather than introducing
// bespoke error types.
package errs

import "errors"

var (
	// ErrIO indicates the underlying byte slice was exhausted before a read
	// could complete.
	ErrIO = errors.New("objprop: unexpected end of stream")

	// ErrDecompress indicates a zlib stream was rejected by the inflater.
	ErrDecompress = errors.New("objprop: decompression failed")

	// ErrDecompressedSizeMismatch indicates an inflated buffer did not match
	// its declared uncompressed size.
	ErrDecompressedSizeMismatch = errors.New("objprop: decompressed size mismatch")

	// ErrNullRoot indicates the top-level object tag was the null type tag.
	ErrNullRoot = errors.New("objprop: root object is null")

	// ErrBadConfig indicates an invalid combination of decoder options was
	// requested at construction time.
	ErrBadConfig = errors.New("objprop: invalid decoder configuration")

	// ErrRecursion indicates the decoder's recursion limit was exceeded.
	ErrRecursion = errors.New("objprop: recursion limit exceeded")

	// ErrDecode indicates invalid UTF-8 where a textual enum name was
	// expected.
	ErrDecode = errors.New("objprop: invalid encoded text")

	// ErrUnknownEnumValue indicates no enum option matched an integer value
	// being rendered to its readable form.
	ErrUnknownEnumValue = errors.New("objprop: unknown enum value")

	// ErrUnknownEnumName indicates no enum option matched a readable name
	// while decoding a human-readable enum.
	ErrUnknownEnumName = errors.New("objprop: unknown enum option name")

	// ErrUnknownType indicates a type tag was not present in the TypeList.
	ErrUnknownType = errors.New("objprop: unknown type hash")

	// ErrUnknownProperty indicates a property hash in deep framing was not
	// present in the TypeDef being decoded.
	ErrUnknownProperty = errors.New("objprop: unknown property hash")

	// ErrPropertySizeMismatch indicates the bits consumed decoding a deep
	// property did not match its declared size prefix.
	ErrPropertySizeMismatch = errors.New("objprop: property size mismatch")

	// ErrObjectSizeMismatch indicates the sum of a deep object's property
	// sizes overran its declared object size, or that the declared size was
	// smaller than its own 32-bit prefix.
	ErrObjectSizeMismatch = errors.New("objprop: object size mismatch")

	// ErrMissingDelta indicates a delta-encoded property's presence bit was
	// zero while FORBID_DELTA_ENCODE was set on the stream.
	ErrMissingDelta = errors.New("objprop: missing delta-encoded value")

	// ErrInvalidTypeList indicates a TypeList JSON document could not be
	// interpreted as either the version-1 or version-2 shape.
	ErrInvalidTypeList = errors.New("objprop: invalid type list document")

	// ErrBitCountOutOfRange indicates a BitReader call requested a bit
	// count outside the supported range.
	ErrBitCountOutOfRange = errors.New("objprop: bit count out of range")
)
