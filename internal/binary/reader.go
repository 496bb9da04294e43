// Package binary provides positioned block reads over raw element storage.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader reads blocks of element data from an io.ReaderAt at an explicit
// position and carries the byte order in which the elements were written.
// A nil byte order defaults to little-endian, the layout in which raw
// gridded files are most commonly written.
type Reader struct {
	r     io.ReaderAt
	order binary.ByteOrder
	pos   int64
}

// NewReader creates a reader positioned at offset zero.
func NewReader(r io.ReaderAt, order binary.ByteOrder) *Reader {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Reader{r: r, order: order}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying io.ReaderAt but has independent position.
func (r *Reader) At(offset int64) *Reader {
	return &Reader{r: r.r, order: r.order, pos: offset}
}

// ReadInto fills dst from the current position and advances past it.
// The read is all-or-nothing: a short read is an error.
func (r *Reader) ReadInto(dst []byte) error {
	if len(dst) == 0 {
		return nil
	}
	n, err := r.r.ReadAt(dst, r.pos)
	if n < len(dst) {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("reading %d bytes at offset %d: %w", len(dst), r.pos, err)
	}
	r.pos += int64(len(dst))
	return nil
}

// ByteOrder returns the configured byte order.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}
