package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestU32LittleEndian(t *testing.T) {
	c := New([]byte{0x01, 0x00, 0x00, 0x00})
	v, err := c.U32()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(uint32(1), v)
	assert.Equal(4, c.Pos())
}

func TestI16Negative(t *testing.T) {
	c := New([]byte{0xFF, 0xFF})
	v, err := c.I16()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(int16(-1), v)
}

func TestBoolNonZero(t *testing.T) {
	c := New([]byte{0x00, 0x05})
	a, _ := c.Bool()
	b, _ := c.Bool()

	assert := assert.New(t)
	assert.False(a)
	assert.True(b)
}

func TestTruncatedRead(t *testing.T) {
	c := New([]byte{0x01})
	_, err := c.U32()
	assert.Error(t, err)
}

func TestIntByteSizeString(t *testing.T) {
	// totalSize=5 (1 len byte + "Hi" + 2 pad bytes), strLen=2, "Hi", 2 pad
	buf := []byte{5, 0, 0, 0, 2, 'H', 'i', 0, 0}
	c := New(buf)
	s, err := c.IntByteSizeString()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Hi", s)
	assert.Equal(len(buf), c.Pos())
}

func TestIntStringEmptyOnNonPositiveLen(t *testing.T) {
	c := New([]byte{0, 0, 0, 0})
	s, err := c.IntString()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("", s)
}

func TestIntStringReadsBytes(t *testing.T) {
	buf := []byte{3, 0, 0, 0, 'G', 'P', '5'}
	c := New(buf)
	s, err := c.IntString()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("GP5", s)
}

func TestByteSizeStringPadsToFixedLen(t *testing.T) {
	buf := append([]byte{3, 'a', 'b', 'c'}, make([]byte, 10-3)...)
	c := New(buf)
	s, err := c.ByteSizeString(10)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("abc", s)
	assert.Equal(11, c.Pos())
}

func TestByteSizeStringTruncatesLongerDeclaredLen(t *testing.T) {
	buf := append([]byte{5, 'a', 'b', 'c'}, make([]byte, 1)...)
	c := New(buf)
	s, err := c.ByteSizeString(3)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("abc", s)
	assert.Equal(4, c.Pos())
}
