// Package ctxio layers bitendian's conversion layer onto context-aware byte
// streams: asynchronous readers and writers whose calls may block pending
// external completion and are cancelled through a context.Context.
//
// The operation surface mirrors the synchronous ioext package with a context
// as first argument:
//
//	v, err := ctxio.ReadBE[uint32](ctx, stream)
//	err = ctxio.WriteLE(ctx, stream, uint16(256))
//
// Each operation is a single sequential unit of work: it loops internally to
// accumulate the required bytes across partial completions and never spawns
// goroutines. Cancellation is observed between partial attempts; bytes already
// consumed from the stream when the context is cancelled are lost, matching
// the usual byte-stream cancellation semantics. No buffering or rollback layer
// is provided.
//
// WrapReader and WrapWriter adapt plain io.Reader/io.Writer values into this
// ecosystem for callers mixing the two.
package ctxio

import (
	"context"
	"io"

	"github.com/arloliu/bitendian"
	"github.com/arloliu/bitendian/endian"
)

// Reader is the context-aware analog of io.Reader. Read may block until data
// is available or ctx is done, and reports partial progress exactly as
// io.Reader does.
type Reader interface {
	Read(ctx context.Context, p []byte) (n int, err error)
}

// Writer is the context-aware analog of io.Writer. Write may block until the
// stream accepts data or ctx is done.
type Writer interface {
	Write(ctx context.Context, p []byte) (n int, err error)
}

// ReadFull reads exactly len(buf) bytes from r into buf.
//
// Error semantics follow io.ReadFull: io.EOF when no bytes were read,
// io.ErrUnexpectedEOF when the stream ends after partial progress, and the
// context's own error when ctx is done between attempts. On error the bytes
// already read remain in buf[:n] but are not returned to the stream.
func ReadFull(ctx context.Context, r Reader, buf []byte) (n int, err error) {
	for n < len(buf) && err == nil {
		if err = ctx.Err(); err != nil {
			return n, err
		}

		var m int
		m, err = r.Read(ctx, buf[n:])
		n += m
	}
	if n >= len(buf) {
		return n, nil
	}
	if n > 0 && err == io.EOF {
		err = io.ErrUnexpectedEOF
	}

	return n, err
}

// WriteFull writes all of buf to w, looping over partial writes.
//
// A Write that reports no progress and no error surfaces as io.ErrShortWrite;
// any other error passes through unchanged.
func WriteFull(ctx context.Context, w Writer, buf []byte) (n int, err error) {
	for n < len(buf) {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		m, err := w.Write(ctx, buf[n:])
		n += m
		if err != nil {
			return n, err
		}
		if m == 0 {
			return n, io.ErrShortWrite
		}
	}

	return n, nil
}

// ReadBE reads one big-endian value of type T from r.
func ReadBE[T bitendian.Value](ctx context.Context, r Reader) (T, error) {
	return read[T](ctx, r, endian.GetBigEndianEngine())
}

// ReadLE reads one little-endian value of type T from r.
func ReadLE[T bitendian.Value](ctx context.Context, r Reader) (T, error) {
	return read[T](ctx, r, endian.GetLittleEndianEngine())
}

// ReadEndian reads one value of type T from r in the run-time selected byte order.
func ReadEndian[T bitendian.Value](ctx context.Context, r Reader, order endian.Endian) (T, error) {
	return read[T](ctx, r, order.Engine())
}

// WriteBE writes v to w in big-endian byte order.
func WriteBE[T bitendian.Value](ctx context.Context, w Writer, v T) error {
	return write(ctx, w, endian.GetBigEndianEngine(), v)
}

// WriteLE writes v to w in little-endian byte order.
func WriteLE[T bitendian.Value](ctx context.Context, w Writer, v T) error {
	return write(ctx, w, endian.GetLittleEndianEngine(), v)
}

// WriteEndian writes v to w in the run-time selected byte order.
func WriteEndian[T bitendian.Value](ctx context.Context, w Writer, v T, order endian.Endian) error {
	return write(ctx, w, order.Engine(), v)
}

func read[T bitendian.Value](ctx context.Context, r Reader, engine endian.EndianEngine) (T, error) {
	var buf [8]byte
	b := buf[:bitendian.Size[T]()]
	if _, err := ReadFull(ctx, r, b); err != nil {
		var zero T
		return zero, err
	}

	return bitendian.Decode[T](engine, b), nil
}

func write[T bitendian.Value](ctx context.Context, w Writer, engine endian.EndianEngine, v T) error {
	var buf [8]byte
	b := buf[:bitendian.Size[T]()]
	bitendian.Encode(engine, b, v)
	_, err := WriteFull(ctx, w, b)

	return err
}

type wrappedReader struct {
	r io.Reader
}

func (w wrappedReader) Read(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return w.r.Read(p)
}

type wrappedWriter struct {
	w io.Writer
}

func (w wrappedWriter) Write(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return w.w.Write(p)
}

// WrapReader adapts a synchronous io.Reader into a context-aware Reader.
// The context is checked before each read; an in-flight blocking read is not
// interrupted.
func WrapReader(r io.Reader) Reader {
	return wrappedReader{r: r}
}

// WrapWriter adapts a synchronous io.Writer into a context-aware Writer.
// The context is checked before each write; an in-flight blocking write is not
// interrupted.
func WrapWriter(w io.Writer) Writer {
	return wrappedWriter{w: w}
}
