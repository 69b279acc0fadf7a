// Package wire holds the primitive big-endian readers and writers every
// ghostwire encoding bottoms out in.
package wire

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/danmuck/ghostwire/internal/protocol"
)

// Reader is a cursor over an immutable byte buffer. Every read either
// consumes exactly the bytes it needs or fails without moving the cursor.
type Reader struct {
	buf  []byte
	pos  int
	base int

	// short is returned when a read runs past the end of buf: truncation for
	// top-level readers, an invalid length for readers bounded by a header.
	short error
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, short: protocol.ErrTruncated}
}

// NewReaderAt is NewReader for a buffer that starts at offset base of some
// larger message, so Pos reports offsets in that message.
func NewReaderAt(buf []byte, base int) *Reader {
	return &Reader{buf: buf, base: base, short: protocol.ErrTruncated}
}

// NewBoundedReaderAt is NewReaderAt for a buffer whose full length was
// already announced by an enclosing header. Reads past its end fail with
// ErrInvalidLength rather than ErrTruncated.
func NewBoundedReaderAt(buf []byte, base int) *Reader {
	return &Reader{buf: buf, base: base, short: protocol.ErrInvalidLength}
}

// Pos returns the cursor offset from the start of the outermost buffer, so
// offsets stay meaningful inside bounded sub readers.
func (r *Reader) Pos() int {
	return r.base + r.pos
}

func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

func (r *Reader) Done() bool {
	return r.pos >= len(r.buf)
}

func (r *Reader) need(n int) error {
	if n < 0 || len(r.buf)-r.pos < n {
		return r.short
	}
	return nil
}

func (r *Reader) ReadBool() (bool, error) {
	if err := r.need(1); err != nil {
		return false, err
	}
	v := r.buf[r.pos] != 0
	r.pos++
	return v, nil
}

func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

// ReadString reads a NUL-terminated string whose length includes the
// terminator. The terminator byte itself is skipped, not inspected.
func (r *Reader) ReadString(length int) (string, error) {
	if length < 1 {
		return "", protocol.ErrInvalidLength
	}
	if err := r.need(length); err != nil {
		return "", err
	}
	raw := r.buf[r.pos : r.pos+length-1]
	if !utf8.Valid(raw) {
		return "", protocol.ErrInvalidUTF8
	}
	r.pos += length
	return string(raw), nil
}

// ReadBytes copies length raw bytes out of the buffer.
func (r *Reader) ReadBytes(length int) ([]byte, error) {
	if err := r.need(length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, r.buf[r.pos:r.pos+length])
	r.pos += length
	return out, nil
}

// Sub carves the next length bytes into a bounded reader and advances r past
// them. Reads past the end of the sub reader fail with ErrInvalidLength.
func (r *Reader) Sub(length int) (*Reader, error) {
	if err := r.need(length); err != nil {
		return nil, err
	}
	sub := &Reader{
		buf:   r.buf[r.pos : r.pos+length],
		base:  r.base + r.pos,
		short: protocol.ErrInvalidLength,
	}
	r.pos += length
	return sub, nil
}
