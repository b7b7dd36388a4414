// Package ioext layers bitendian's conversion layer onto synchronous byte
// streams, adding endian-aware read and write operations to any io.Reader or
// io.Writer.
//
// Go methods cannot take type parameters, so the operations are package-level
// generic functions with the stream as first argument rather than methods on
// the stream:
//
//	import "github.com/arloliu/bitendian/ioext"
//
//	var buf bytes.Buffer
//	if err := ioext.WriteBE(&buf, uint16(256)); err != nil { ... }
//	swapped, err := ioext.ReadLE[uint16](&buf) // 1
//
// # Error Semantics
//
// Reads pull exactly Size[T]() bytes via io.ReadFull: a stream that ends
// before the first byte yields io.EOF, a stream that ends mid-value yields
// io.ErrUnexpectedEOF, and every other transport error passes through
// unchanged. Writes issue a single Write call and propagate its error. The
// layer performs no retry or recovery and holds no state beyond a transient
// stack buffer; on failure the stream position is wherever the underlying
// stream left it.
package ioext

import (
	"io"

	"github.com/arloliu/bitendian"
	"github.com/arloliu/bitendian/endian"
)

// ReadBE reads one big-endian value of type T from r.
func ReadBE[T bitendian.Value](r io.Reader) (T, error) {
	return read[T](r, endian.GetBigEndianEngine())
}

// ReadLE reads one little-endian value of type T from r.
func ReadLE[T bitendian.Value](r io.Reader) (T, error) {
	return read[T](r, endian.GetLittleEndianEngine())
}

// ReadEndian reads one value of type T from r in the run-time selected byte order.
func ReadEndian[T bitendian.Value](r io.Reader, order endian.Endian) (T, error) {
	return read[T](r, order.Engine())
}

// WriteBE writes v to w in big-endian byte order.
func WriteBE[T bitendian.Value](w io.Writer, v T) error {
	return write(w, endian.GetBigEndianEngine(), v)
}

// WriteLE writes v to w in little-endian byte order.
func WriteLE[T bitendian.Value](w io.Writer, v T) error {
	return write(w, endian.GetLittleEndianEngine(), v)
}

// WriteEndian writes v to w in the run-time selected byte order.
func WriteEndian[T bitendian.Value](w io.Writer, v T, order endian.Endian) error {
	return write(w, order.Engine(), v)
}

func read[T bitendian.Value](r io.Reader, engine endian.EndianEngine) (T, error) {
	var buf [8]byte
	b := buf[:bitendian.Size[T]()]
	if _, err := io.ReadFull(r, b); err != nil {
		var zero T
		return zero, err
	}

	return bitendian.Decode[T](engine, b), nil
}

func write[T bitendian.Value](w io.Writer, engine endian.EndianEngine, v T) error {
	var buf [8]byte
	b := buf[:bitendian.Size[T]()]
	bitendian.Encode(engine, b, v)
	_, err := w.Write(b)

	return err
}
