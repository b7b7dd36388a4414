// Package bitendian provides type-inferred encoding and decoding of fixed-width
// numeric values in big-endian or little-endian byte order.
//
// The standard encoding/binary package exposes one method per width
// (PutUint16, PutUint32, ...), forcing call sites to name the width and to
// hand-convert signed and floating-point values. This package replaces that
// family with a single generic surface where the value's type selects the
// conversion:
//
//	import "github.com/arloliu/bitendian"
//
//	buf := make([]byte, 4)
//	bitendian.EncodeBE(buf, int32(-1))     // FF FF FF FF
//	v := bitendian.DecodeBE[int32](buf)    // -1
//
// # Byte Order Selection
//
// Byte order can be fixed at the call site (EncodeBE/EncodeLE and friends) or
// chosen at run time through an endian.Endian value, typically parsed from a
// file or protocol header:
//
//	order := endian.Little
//	v := bitendian.DecodeEndian[uint16](hdr[4:6], order)
//
// All functions also come in an engine-parameterized form taking an
// endian.EndianEngine directly, which composes with code that already
// threads an engine through its encoders.
//
// # Supported Types
//
// The Value constraint covers exactly the fixed-width primitives: uint8,
// uint16, uint32, uint64, int8, int16, int32, int64, float32 and float64.
// Platform-width int and uint are deliberately excluded; their encoded width
// would vary across architectures.
//
// # Stream Operations
//
// The ioext, ctxio and connio subpackages layer this package onto synchronous,
// context-aware and deadline-based byte streams respectively.
package bitendian

import (
	"math"
	"unsafe"

	"github.com/arloliu/bitendian/endian"
)

// Value constrains the fixed-width numeric primitives supported by the
// conversion layer. Each member has an intrinsic byte width of 1, 2, 4 or 8,
// fixed by its type.
type Value interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64
}

// Size returns the encoded byte width of T: 1, 2, 4 or 8.
func Size[T Value]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Encode writes v into b using the byte order of engine.
//
// b must be at least Size[T]() bytes long; passing a shorter slice is a
// contract violation and panics. Only the first Size[T]() bytes are written.
//
// Parameters:
//   - engine: Endian engine selecting the byte order
//   - b: Destination slice, at least Size[T]() bytes
//   - v: Value to encode
func Encode[T Value](engine endian.EndianEngine, b []byte, v T) {
	switch n := any(v).(type) {
	case uint8:
		b[0] = n
	case int8:
		b[0] = byte(n)
	case uint16:
		engine.PutUint16(b, n)
	case int16:
		engine.PutUint16(b, uint16(n))
	case uint32:
		engine.PutUint32(b, n)
	case int32:
		engine.PutUint32(b, uint32(n))
	case uint64:
		engine.PutUint64(b, n)
	case int64:
		engine.PutUint64(b, uint64(n))
	case float32:
		engine.PutUint32(b, math.Float32bits(n))
	case float64:
		engine.PutUint64(b, math.Float64bits(n))
	}
}

// Decode reads a value of type T from the first Size[T]() bytes of b using
// the byte order of engine.
//
// b must be at least Size[T]() bytes long; passing a shorter slice is a
// contract violation and panics.
//
// Parameters:
//   - engine: Endian engine selecting the byte order
//   - b: Source slice, at least Size[T]() bytes
//
// Returns:
//   - T: The decoded value
func Decode[T Value](engine endian.EndianEngine, b []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = b[0]
	case *int8:
		*p = int8(b[0])
	case *uint16:
		*p = engine.Uint16(b)
	case *int16:
		*p = int16(engine.Uint16(b))
	case *uint32:
		*p = engine.Uint32(b)
	case *int32:
		*p = int32(engine.Uint32(b))
	case *uint64:
		*p = engine.Uint64(b)
	case *int64:
		*p = int64(engine.Uint64(b))
	case *float32:
		*p = math.Float32frombits(engine.Uint32(b))
	case *float64:
		*p = math.Float64frombits(engine.Uint64(b))
	}

	return v
}

// Append appends the encoding of v to buf using the byte order of engine and
// returns the extended slice.
//
// This uses the engine's append fast path and avoids the intermediate buffer
// an Encode-then-append sequence would need.
func Append[T Value](engine endian.EndianEngine, buf []byte, v T) []byte {
	switch n := any(v).(type) {
	case uint8:
		return append(buf, n)
	case int8:
		return append(buf, byte(n))
	case uint16:
		return engine.AppendUint16(buf, n)
	case int16:
		return engine.AppendUint16(buf, uint16(n))
	case uint32:
		return engine.AppendUint32(buf, n)
	case int32:
		return engine.AppendUint32(buf, uint32(n))
	case uint64:
		return engine.AppendUint64(buf, n)
	case int64:
		return engine.AppendUint64(buf, uint64(n))
	case float32:
		return engine.AppendUint32(buf, math.Float32bits(n))
	case float64:
		return engine.AppendUint64(buf, math.Float64bits(n))
	}

	return buf
}

// EncodeBE writes v into b in big-endian (network) byte order.
func EncodeBE[T Value](b []byte, v T) {
	Encode(endian.GetBigEndianEngine(), b, v)
}

// EncodeLE writes v into b in little-endian byte order.
func EncodeLE[T Value](b []byte, v T) {
	Encode(endian.GetLittleEndianEngine(), b, v)
}

// EncodeEndian writes v into b in the run-time selected byte order.
func EncodeEndian[T Value](b []byte, v T, order endian.Endian) {
	Encode(order.Engine(), b, v)
}

// DecodeBE reads a value of type T from b in big-endian (network) byte order.
func DecodeBE[T Value](b []byte) T {
	return Decode[T](endian.GetBigEndianEngine(), b)
}

// DecodeLE reads a value of type T from b in little-endian byte order.
func DecodeLE[T Value](b []byte) T {
	return Decode[T](endian.GetLittleEndianEngine(), b)
}

// DecodeEndian reads a value of type T from b in the run-time selected byte order.
func DecodeEndian[T Value](b []byte, order endian.Endian) T {
	return Decode[T](order.Engine(), b)
}

// AppendBE appends the big-endian encoding of v to buf.
func AppendBE[T Value](buf []byte, v T) []byte {
	return Append(endian.GetBigEndianEngine(), buf, v)
}

// AppendLE appends the little-endian encoding of v to buf.
func AppendLE[T Value](buf []byte, v T) []byte {
	return Append(endian.GetLittleEndianEngine(), buf, v)
}

// AppendEndian appends the encoding of v to buf in the run-time selected byte order.
func AppendEndian[T Value](buf []byte, v T, order endian.Endian) []byte {
	return Append(order.Engine(), buf, v)
}
