// Package bytecursor provides sequential reads over byte slices, fixed-size
// padding and 1, 2 and 4 byte little-endian unsigned integer encoding.
package bytecursor

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Cursor is a single-pass reader over a byte slice. It does not copy the
// slice it wraps, so the caller must not modify it while the cursor is in use.
// A Cursor is not safe for concurrent use.
type Cursor struct {
	buffer []byte
	offset int
}

// NewCursor returns a Cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{buffer: b}
}

// GetBytes returns a copy of the next count bytes and advances the cursor past
// them. If fewer than count bytes remain it returns ErrOutOfRange and the
// cursor does not move.
func (c *Cursor) GetBytes(count int) ([]byte, error) {
	if err := c.require("get_bytes", count); err != nil {
		return nil, err
	}
	b := make([]byte, count)
	copy(b, c.nextBytes(count))
	return b, nil
}

// ReadUint reads width bytes and decodes them as a little-endian unsigned
// integer. On error the cursor does not move.
func (c *Cursor) ReadUint(width Width) (uint32, error) {
	if !width.Valid() {
		return 0, reject("read_uint", logrus.Fields{"width": int(width), "offset": c.offset},
			fmt.Errorf("%w: %d", ErrUnsupportedWidth, int(width)))
	}
	if err := c.require("read_uint", int(width)); err != nil {
		return 0, err
	}
	return decodeUint(c.nextBytes(int(width))), nil
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buffer) - c.offset
}

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.buffer)
}

// require checks that n bytes are available at the current offset.
func (c *Cursor) require(op string, n int) error {
	if n < 0 {
		return reject(op, logrus.Fields{"count": n, "offset": c.offset},
			fmt.Errorf("%w: count %d", ErrNegativeLength, n))
	}
	if n > c.Remaining() {
		return reject(op, logrus.Fields{"count": n, "offset": c.offset, "len": len(c.buffer)},
			fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrOutOfRange, n, c.offset, c.Remaining()))
	}
	return nil
}

// nextBytes returns the next n bytes without copying. Callers check bounds first.
func (c *Cursor) nextBytes(n int) []byte {
	c.offset += n
	return c.buffer[c.offset-n : c.offset]
}
