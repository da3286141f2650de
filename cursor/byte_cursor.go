// Package cursor provides the sequential readers the GP3/GP5/GPX decoders
// walk: a little-endian ByteCursor, and two bit-level cursors (MSB-first
// for the GPX LZ stream, LSB-first for DEFLATE).
package cursor

import (
	"math"

	"github.com/jsphweid/gptab/gperr"
	"github.com/jsphweid/gptab/util"
	"golang.org/x/text/encoding/charmap"
)

// ByteCursor is a position-tracked little-endian reader over an immutable
// byte slice. All multibyte reads are little-endian per spec.
type ByteCursor struct {
	buf []byte
	pos int
}

// New wraps buf in a ByteCursor starting at position 0.
func New(buf []byte) *ByteCursor {
	return &ByteCursor{buf: buf}
}

// Pos returns the current read offset.
func (c *ByteCursor) Pos() int { return c.pos }

// Len returns the total buffer length.
func (c *ByteCursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread bytes.
func (c *ByteCursor) Remaining() int { return len(c.buf) - c.pos }

func (c *ByteCursor) require(n int) error {
	if n < 0 || c.pos+n > len(c.buf) {
		return gperr.Newf(gperr.Truncated, "need %d bytes at offset %d, have %d", n, c.pos, len(c.buf)-c.pos)
	}
	return nil
}

// Skip advances the cursor by n bytes, failing if that passes the end.
func (c *ByteCursor) Skip(n int) error {
	if n < 0 {
		return nil
	}
	if err := c.require(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// Bytes reads the next n raw bytes.
func (c *ByteCursor) Bytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	out := c.buf[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}

// U8 reads an unsigned 8-bit integer.
func (c *ByteCursor) U8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// I8 reads a signed 8-bit integer.
func (c *ByteCursor) I8() (int8, error) {
	v, err := c.U8()
	return int8(v), err
}

// U16 reads an unsigned 16-bit little-endian integer.
func (c *ByteCursor) U16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := uint16(c.buf[c.pos]) | uint16(c.buf[c.pos+1])<<8
	c.pos += 2
	return v, nil
}

// I16 reads a signed 16-bit little-endian integer.
func (c *ByteCursor) I16() (int16, error) {
	v, err := c.U16()
	return int16(v), err
}

// U32 reads an unsigned 32-bit little-endian integer.
func (c *ByteCursor) U32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := uint32(c.buf[c.pos]) | uint32(c.buf[c.pos+1])<<8 |
		uint32(c.buf[c.pos+2])<<16 | uint32(c.buf[c.pos+3])<<24
	c.pos += 4
	return v, nil
}

// I32 reads a signed 32-bit little-endian integer.
func (c *ByteCursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// F64 reads a 64-bit little-endian IEEE-754 float.
func (c *ByteCursor) F64() (float64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	var bits uint64
	for i := 0; i < 8; i++ {
		bits |= uint64(c.buf[c.pos+i]) << (8 * i)
	}
	c.pos += 8
	return math.Float64frombits(bits), nil
}

// Bool reads one byte and treats any nonzero value as true.
func (c *ByteCursor) Bool() (bool, error) {
	v, err := c.U8()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// DecodeLatin1 decodes bytes as Latin-1 (ISO-8859-1): one byte, one code
// point. Delegated to x/text rather than a hand-rolled table. Exported so
// other packages (e.g. gpx's sector filenames) can share it.
func DecodeLatin1(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", gperr.Wrap(gperr.Truncated, "latin1 decode", err)
	}
	return string(out), nil
}

// IntByteSizeString reads: int32 totalSize, uint8 strLen, strLen bytes,
// then skips max(0, totalSize-1-strLen) padding bytes.
func (c *ByteCursor) IntByteSizeString() (string, error) {
	totalSize, err := c.I32()
	if err != nil {
		return "", err
	}
	strLen, err := c.U8()
	if err != nil {
		return "", err
	}
	raw, err := c.Bytes(int(strLen))
	if err != nil {
		return "", err
	}
	pad := int(totalSize) - 1 - int(strLen)
	if pad > 0 {
		if err := c.Skip(pad); err != nil {
			return "", err
		}
	}
	return DecodeLatin1(raw)
}

// IntString reads: int32 len, len bytes (empty if len <= 0).
func (c *ByteCursor) IntString() (string, error) {
	n, err := c.I32()
	if err != nil {
		return "", err
	}
	if n <= 0 {
		return "", nil
	}
	raw, err := c.Bytes(int(n))
	if err != nil {
		return "", err
	}
	return DecodeLatin1(raw)
}

// ByteSizeString reads: uint8 strLen, min(strLen, fixedLen) bytes, then
// skips to fixedLen total bytes of data after the length byte.
func (c *ByteCursor) ByteSizeString(fixedLen int) (string, error) {
	strLen, err := c.U8()
	if err != nil {
		return "", err
	}
	readLen := util.Min(int(strLen), fixedLen)
	raw, err := c.Bytes(readLen)
	if err != nil {
		return "", err
	}
	rest := fixedLen - readLen
	if rest > 0 {
		if err := c.Skip(rest); err != nil {
			return "", err
		}
	}
	return DecodeLatin1(raw)
}
