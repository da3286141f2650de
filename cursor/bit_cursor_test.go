package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitCursorMSBReadBitsBigEndian(t *testing.T) {
	// 0b1011_0000 -> reading 4 bits MSB-first gives 0b1011 = 11
	c := NewMSB([]byte{0b10110000})
	v, err := c.ReadBits(4)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(uint32(0b1011), v)
}

func TestBitCursorMSBReadReversed(t *testing.T) {
	// stream bits in read order: 1,0,1,1 -> reversed assembly: bit0(1)->pos0,
	// bit1(0)->pos1, bit2(1)->pos2, bit3(1)->pos3 => 0b1101 = 13
	c := NewMSB([]byte{0b10110000})
	v, err := c.ReadReversed(4)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(uint32(0b1101), v)
}

func TestBitCursorMSBAlignToByte(t *testing.T) {
	c := NewMSB([]byte{0xFF, 0xAA})
	_, _ = c.ReadBits(3)
	c.AlignToByte()
	v, err := c.ReadBits(8)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(uint32(0xAA), v)
}

func TestBitCursorMSBEOFTolerated(t *testing.T) {
	c := NewMSB([]byte{0xFF})
	_, _ = c.ReadBits(8)
	_, err := c.ReadBit()
	assert.ErrorIs(t, err, ErrBitEOF)
}

func TestBitCursorLSBReadBitsLittleEndian(t *testing.T) {
	// 0b0000_1101 -> reading 4 bits LSB-first gives 0b1101 = 13
	c := NewLSB([]byte{0b00001101})
	v, err := c.ReadBits(4)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(uint32(0b1101), v)
}

func TestBitCursorLSBAlignAndReadByte(t *testing.T) {
	c := NewLSB([]byte{0b00000011, 0x42})
	_, _ = c.ReadBits(2)
	c.AlignToByte()
	v, err := c.ReadByte()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(byte(0x42), v)
}
