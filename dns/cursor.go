package dns

import (
	"encoding/binary"
	"fmt"
)

// cursor is a read-only, position-tracked view over a borrowed byte slice.
// Every read is bounds-checked; a read that would cross the end of data
// returns ErrInsufficientData instead of panicking. Grounded on
// internal/packet/parser.go's Parser{msg []byte, offset int} and its
// manual big-endian field extraction.
type cursor struct {
	data   []byte
	offset int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// hasRemaining reports whether at least one more byte can be read.
func (c *cursor) hasRemaining() bool {
	return c.offset < len(c.data)
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int {
	return len(c.data) - c.offset
}

// advance moves the cursor forward by n bytes without reading them.
func (c *cursor) advance(n int) error {
	if n < 0 || c.offset+n > len(c.data) {
		return ErrInsufficientData
	}
	c.offset += n
	return nil
}

func (c *cursor) getU8() (uint8, error) {
	if c.offset+1 > len(c.data) {
		return 0, ErrInsufficientData
	}
	v := c.data[c.offset]
	c.offset++
	return v, nil
}

func (c *cursor) getU16() (uint16, error) {
	if c.offset+2 > len(c.data) {
		return 0, ErrInsufficientData
	}
	v := binary.BigEndian.Uint16(c.data[c.offset : c.offset+2])
	c.offset += 2
	return v, nil
}

func (c *cursor) getU32() (uint32, error) {
	if c.offset+4 > len(c.data) {
		return 0, ErrInsufficientData
	}
	v := binary.BigEndian.Uint32(c.data[c.offset : c.offset+4])
	c.offset += 4
	return v, nil
}

func (c *cursor) getI32() (int32, error) {
	v, err := c.getU32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func (c *cursor) getU128() ([16]byte, error) {
	var out [16]byte
	if c.offset+16 > len(c.data) {
		return out, ErrInsufficientData
	}
	copy(out[:], c.data[c.offset:c.offset+16])
	c.offset += 16
	return out, nil
}

// peekU16In reads a big-endian u16 at offset+k without advancing.
func (c *cursor) peekU16In(k int) (uint16, error) {
	at := c.offset + k
	if at+2 > len(c.data) || at < 0 {
		return 0, ErrInsufficientData
	}
	return binary.BigEndian.Uint16(c.data[at : at+2]), nil
}

// peekU32In reads a big-endian u32 at offset+k without advancing.
func (c *cursor) peekU32In(k int) (uint32, error) {
	at := c.offset + k
	if at+4 > len(c.data) || at < 0 {
		return 0, ErrInsufficientData
	}
	return binary.BigEndian.Uint32(c.data[at : at+4]), nil
}

// getSlice returns a borrowed slice of exactly n bytes, advancing past it.
func (c *cursor) getSlice(n int) ([]byte, error) {
	if n < 0 || c.offset+n > len(c.data) {
		return nil, ErrInsufficientData
	}
	s := c.data[c.offset : c.offset+n]
	c.offset += n
	return s, nil
}

// getRemaining returns every unread byte and advances to the end.
func (c *cursor) getRemaining() []byte {
	s := c.data[c.offset:]
	c.offset = len(c.data)
	return s
}

// newAt returns a clone of the cursor positioned at pos. It only
// succeeds when pos < self.offset - 1, i.e. strictly before the current
// label's own length-byte position; this is the backward-only rule that
// prevents compression-pointer cycles (grounded on parser.go's
// `ptr >= origOffset` rejection, tightened to a cursor-local invariant).
func (c *cursor) newAt(pos int) (*cursor, error) {
	if pos < 0 || pos >= c.offset-1 {
		return nil, fmt.Errorf("%w: compression pointer to %d not strictly before %d", ErrInvalidPacket, pos, c.offset)
	}
	return &cursor{data: c.data, offset: pos}, nil
}

// newLimitedTo splits off a sub-cursor whose data is truncated to
// offset+n, used to parse variable-length rdata bounded by rdlength.
func (c *cursor) newLimitedTo(n int) (*cursor, error) {
	end := c.offset + n
	if n < 0 || end > len(c.data) {
		return nil, ErrInsufficientData
	}
	return &cursor{data: c.data[:end], offset: c.offset}, nil
}
