// Package state implements the bounded byte cursors used to snapshot the
// emulator. Writers never grow past the caller's buffer and readers never
// read past the end of theirs; both latch the first failure and turn every
// later call into a no-op so callers check Err once at the end.
package state

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is reported when a snapshot does not fit the buffer it is
// written to, or when a snapshot ends before all fields were read.
var ErrShortBuffer = errors.New("state: short buffer")

// Stater is implemented by every component that takes part in a snapshot.
type Stater interface {
	Save(*Writer)
	Load(*Reader)
}

// Writer serializes little-endian values into a fixed buffer.
type Writer struct {
	buf []byte
	pos int
	err error
}

func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

func (w *Writer) next(n int) []byte {
	if w.err != nil {
		return nil
	}
	if len(w.buf)-w.pos < n {
		w.err = ErrShortBuffer
		return nil
	}
	p := w.buf[w.pos : w.pos+n]
	w.pos += n
	return p
}

func (w *Writer) Write8(v uint8) {
	if p := w.next(1); p != nil {
		p[0] = v
	}
}

func (w *Writer) Write16(v uint16) {
	if p := w.next(2); p != nil {
		binary.LittleEndian.PutUint16(p, v)
	}
}

func (w *Writer) Write32(v uint32) {
	if p := w.next(4); p != nil {
		binary.LittleEndian.PutUint32(p, v)
	}
}

// WriteInt stores a signed value as 32 bits.
func (w *Writer) WriteInt(v int) {
	w.Write32(uint32(int32(v)))
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.Write8(1)
	} else {
		w.Write8(0)
	}
}

func (w *Writer) WriteData(data []byte) {
	if p := w.next(len(data)); p != nil {
		copy(p, data)
	}
}

// WriteString stores a length-prefixed string of at most 0xFFFF bytes.
func (w *Writer) WriteString(s string) {
	if len(s) > 0xFFFF {
		s = s[:0xFFFF]
	}
	w.Write16(uint16(len(s)))
	w.WriteData([]byte(s))
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.pos
}

func (w *Writer) Err() error {
	return w.err
}

// Reader deserializes values produced by Writer.
type Reader struct {
	buf []byte
	pos int
	err error
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf)-r.pos < n {
		r.err = ErrShortBuffer
		return nil
	}
	p := r.buf[r.pos : r.pos+n]
	r.pos += n
	return p
}

func (r *Reader) Read8() uint8 {
	if p := r.next(1); p != nil {
		return p[0]
	}
	return 0
}

func (r *Reader) Read16() uint16 {
	if p := r.next(2); p != nil {
		return binary.LittleEndian.Uint16(p)
	}
	return 0
}

func (r *Reader) Read32() uint32 {
	if p := r.next(4); p != nil {
		return binary.LittleEndian.Uint32(p)
	}
	return 0
}

func (r *Reader) ReadInt() int {
	return int(int32(r.Read32()))
}

func (r *Reader) ReadBool() bool {
	return r.Read8() != 0
}

// ReadData fills p completely or fails.
func (r *Reader) ReadData(p []byte) {
	if src := r.next(len(p)); src != nil {
		copy(p, src)
	}
}

func (r *Reader) ReadString() string {
	n := int(r.Read16())
	if p := r.next(n); p != nil {
		return string(p)
	}
	return ""
}

// Fail latches err unless an earlier failure is already recorded. It lets
// Load implementations report semantic problems through the same channel.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Len returns the number of bytes consumed so far.
func (r *Reader) Len() int {
	return r.pos
}

func (r *Reader) Err() error {
	return r.err
}
