// Package connio layers bitendian's conversion layer onto deadline-based byte
// streams: connections in the net.Conn mold, where a pending read or write is
// interrupted by a deadline on the connection rather than by a context check.
//
// The operation surface is identical to ctxio; only the suspension glue
// differs. Each operation projects the context's deadline (if any) onto the
// connection for its own duration, clears it afterwards, and reports a
// deadline-exceeded transport error as the context's own error so callers see
// context.DeadlineExceeded regardless of which layer noticed first:
//
//	ctx, cancel := context.WithTimeout(ctx, time.Second)
//	defer cancel()
//	v, err := connio.ReadBE[uint32](ctx, conn)
//
// Operations never spawn goroutines, so plain cancellation (a context without
// a deadline) is honored at operation start only; once blocked, only the
// connection's deadline machinery can interrupt. Bytes consumed before a
// failure are lost, as with any non-seekable stream.
package connio

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/arloliu/bitendian"
	"github.com/arloliu/bitendian/endian"
)

// Conn is the minimal deadline-capable stream surface consumed by this
// package. *net.TCPConn, net.Pipe ends and every other net.Conn satisfy it.
type Conn interface {
	io.Reader
	io.Writer
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

// ReadBE reads one big-endian value of type T from c.
func ReadBE[T bitendian.Value](ctx context.Context, c Conn) (T, error) {
	return read[T](ctx, c, endian.GetBigEndianEngine())
}

// ReadLE reads one little-endian value of type T from c.
func ReadLE[T bitendian.Value](ctx context.Context, c Conn) (T, error) {
	return read[T](ctx, c, endian.GetLittleEndianEngine())
}

// ReadEndian reads one value of type T from c in the run-time selected byte order.
func ReadEndian[T bitendian.Value](ctx context.Context, c Conn, order endian.Endian) (T, error) {
	return read[T](ctx, c, order.Engine())
}

// WriteBE writes v to c in big-endian byte order.
func WriteBE[T bitendian.Value](ctx context.Context, c Conn, v T) error {
	return write(ctx, c, endian.GetBigEndianEngine(), v)
}

// WriteLE writes v to c in little-endian byte order.
func WriteLE[T bitendian.Value](ctx context.Context, c Conn, v T) error {
	return write(ctx, c, endian.GetLittleEndianEngine(), v)
}

// WriteEndian writes v to c in the run-time selected byte order.
func WriteEndian[T bitendian.Value](ctx context.Context, c Conn, v T, order endian.Endian) error {
	return write(ctx, c, order.Engine(), v)
}

func read[T bitendian.Value](ctx context.Context, c Conn, engine endian.EndianEngine) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	restore, err := applyDeadline(ctx, c.SetReadDeadline)
	if err != nil {
		return zero, err
	}
	defer restore()

	var buf [8]byte
	b := buf[:bitendian.Size[T]()]
	if _, err := io.ReadFull(c, b); err != nil {
		return zero, mapTimeout(ctx, err)
	}

	return bitendian.Decode[T](engine, b), nil
}

func write[T bitendian.Value](ctx context.Context, c Conn, engine endian.EndianEngine, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	restore, err := applyDeadline(ctx, c.SetWriteDeadline)
	if err != nil {
		return err
	}
	defer restore()

	var buf [8]byte
	b := buf[:bitendian.Size[T]()]
	bitendian.Encode(engine, b, v)
	if _, err := c.Write(b); err != nil {
		return mapTimeout(ctx, err)
	}

	return nil
}

// applyDeadline projects the context deadline onto the connection and returns
// a restore func clearing it again. A context without a deadline leaves the
// connection untouched.
func applyDeadline(ctx context.Context, set func(time.Time) error) (restore func(), err error) {
	d, ok := ctx.Deadline()
	if !ok {
		return func() {}, nil
	}
	if err := set(d); err != nil {
		return nil, err
	}

	return func() { _ = set(time.Time{}) }, nil
}

// mapTimeout reports a timeout caused by the projected deadline as the
// context's own error; unrelated transport errors pass through unchanged.
func mapTimeout(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && isTimeout(err) {
		return ctxErr
	}

	return err
}

func isTimeout(err error) bool {
	var ne net.Error

	return errors.As(err, &ne) && ne.Timeout()
}
