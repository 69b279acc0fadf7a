package wire

import "encoding/binary"

// Writer appends big-endian encodings to a growable buffer.
type Writer struct {
	buf []byte
}

func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteBool writes the canonical 1/0 byte.
func (w *Writer) WriteBool(v bool) {
	b := byte(0)
	if v {
		b = 1
	}
	w.buf = append(w.buf, b)
}

func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

func (w *Writer) WriteU64(v uint64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

// WriteString appends the UTF-8 bytes of v followed by one NUL.
func (w *Writer) WriteString(v string) {
	w.buf = append(w.buf, v...)
	w.buf = append(w.buf, 0)
}

func (w *Writer) WriteBytes(v []byte) {
	w.buf = append(w.buf, v...)
}

// PutU32At overwrites four bytes at offset, used to backfill a length
// prefix once the framed payload has been written.
func (w *Writer) PutU32At(offset int, v uint32) {
	binary.BigEndian.PutUint32(w.buf[offset:offset+4], v)
}
