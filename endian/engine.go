// Package endian provides byte order selection for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface,
// and adds a compact run-time Endian enum for protocols whose byte order is not
// known until execution (e.g., parsed from a file header).
//
// # Compile-Time Selection
//
// When the byte order is fixed at the call site, use an engine directly:
//
//	engine := endian.GetBigEndianEngine()
//	v := bitendian.Decode[uint32](engine, buf)
//
// # Run-Time Selection
//
// When the byte order is decided during execution, construct an Endian value
// once per parsing context and pass it by value to every call that needs it:
//
//	order := endian.Little
//	if magicIsBigEndian {
//	    order = endian.Big
//	}
//	v := bitendian.DecodeEndian[uint32](buf, order)
//
// Endian has exactly two valid values; there is no "native order" value, so
// encoded output never depends on the executing machine's architecture. The
// host-inspection helpers (CheckEndianness, Native, ...) report what the host
// is, they never influence a conversion unless the caller explicitly feeds the
// result back in.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// EndianEngine instances and Endian values are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Endian selects a byte order at run time. It is a two-valued enum; the zero
// value is invalid so an unset order cannot silently pick one.
type Endian uint8

const (
	Big    Endian = 0x1 // Big is big-endian (network) byte order: most-significant byte first.
	Little Endian = 0x2 // Little is little-endian byte order: least-significant byte first.
)

func (e Endian) String() string {
	switch e {
	case Big:
		return "Big"
	case Little:
		return "Little"
	default:
		return "Unknown"
	}
}

// IsValid reports whether e is one of the two defined byte orders.
func (e Endian) IsValid() bool {
	return e == Big || e == Little
}

// Engine returns the EndianEngine implementing this byte order.
//
// Panics if e is not a valid Endian value; an unset or corrupted order is a
// contract violation, not a recoverable condition.
func (e Endian) Engine() EndianEngine {
	switch e {
	case Big:
		return binary.BigEndian
	case Little:
		return binary.LittleEndian
	default:
		panic("endian: invalid Endian value")
	}
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[2]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Native returns the host's byte order as a run-time Endian value.
//
// The result describes the executing machine only; callers that want portable
// output should pass Big or Little explicitly instead.
func Native() Endian {
	if CheckEndianness() == binary.BigEndian {
		return Big
	}

	return Little
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
