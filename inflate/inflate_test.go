package inflate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// bitWriter packs bits LSB-of-current-byte-first, matching
// cursor.BitCursorLSB's read convention, so tests can hand-build tiny
// DEFLATE streams without needing a real compressor.
type bitWriter struct {
	bytes  []byte
	bitPos uint
}

func (w *bitWriter) pushBit(bit uint32) {
	if w.bitPos == 0 {
		w.bytes = append(w.bytes, 0)
	}
	if bit != 0 {
		w.bytes[len(w.bytes)-1] |= byte(1) << w.bitPos
	}
	w.bitPos++
	if w.bitPos == 8 {
		w.bitPos = 0
	}
}

// pushField pushes an ordinary multi-bit field least-significant-bit-first
// (RFC 1951 §3.1.1 for things like BTYPE, HLIT, extra bits).
func (w *bitWriter) pushField(value uint32, n int) {
	for i := 0; i < n; i++ {
		w.pushBit((value >> uint(i)) & 1)
	}
}

// pushHuffman pushes a Huffman code most-significant-bit-first (RFC 1951
// §3.1.1's special case for Huffman codes themselves).
func (w *bitWriter) pushHuffman(code uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		w.pushBit((code >> uint(i)) & 1)
	}
}

func fixedLitCode(sym int) (uint32, int) {
	length := fixedLitLengths[sym]
	// Derive the code directly from the well-known RFC 1951 fixed ranges;
	// the decoder's table is not consulted.
	switch {
	case sym <= 143:
		return uint32(48 + sym), length
	case sym <= 255:
		return uint32(400 + (sym - 144)), length
	case sym <= 279:
		return uint32(sym - 256), length
	default:
		return uint32(192 + (sym - 280)), length
	}
}

func TestInflateFixedHuffmanHello(t *testing.T) {
	w := &bitWriter{}
	w.pushField(1, 1) // BFINAL = 1
	w.pushField(1, 2) // BTYPE = 01 (fixed Huffman)

	for _, ch := range []byte("Hello") {
		code, length := fixedLitCode(int(ch))
		w.pushHuffman(code, length)
	}
	eobCode, eobLen := fixedLitCode(endOfBlockSymbol)
	w.pushHuffman(eobCode, eobLen)

	out, err := Inflate(w.bytes, 5)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Hello", string(out))
}

func TestInflateStoredBlock(t *testing.T) {
	w := &bitWriter{}
	w.pushField(1, 1) // BFINAL = 1
	w.pushField(0, 2) // BTYPE = 00 (stored)
	// align to byte boundary before LEN/NLEN per RFC 1951 §3.2.4
	for w.bitPos != 0 {
		w.pushBit(0)
	}
	data := []byte("Hi!")
	length := uint16(len(data))
	w.bytes = append(w.bytes, byte(length), byte(length>>8))
	nlen := ^length
	w.bytes = append(w.bytes, byte(nlen), byte(nlen>>8))
	w.bytes = append(w.bytes, data...)

	out, err := Inflate(w.bytes, len(data))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Hi!", string(out))
}

func TestInflateBackReference(t *testing.T) {
	w := &bitWriter{}
	w.pushField(1, 1) // BFINAL
	w.pushField(1, 2) // fixed huffman

	for _, ch := range []byte("ab") {
		code, length := fixedLitCode(int(ch))
		w.pushHuffman(code, length)
	}
	// length symbol 257 == length 3, 0 extra bits; distance symbol 1 == distance 2
	lenCode, lenLen := fixedLitCode(257)
	w.pushHuffman(lenCode, lenLen)
	// distance table is 5 bits flat, code for symbol 1 == 1
	w.pushHuffman(1, 5)

	eobCode, eobLen := fixedLitCode(endOfBlockSymbol)
	w.pushHuffman(eobCode, eobLen)

	out, err := Inflate(w.bytes, 10)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("ababa", string(out))
}

func TestInflateRejectsInvalidBlockType(t *testing.T) {
	w := &bitWriter{}
	w.pushField(1, 1)
	w.pushField(3, 2) // BTYPE == 3, reserved/invalid

	_, err := Inflate(w.bytes, 10)
	assert.Error(t, err)
}

func TestInflateRejectsOversizedBackReference(t *testing.T) {
	w := &bitWriter{}
	w.pushField(1, 1)
	w.pushField(1, 2)

	lenCode, lenLen := fixedLitCode(257) // length 3
	w.pushHuffman(lenCode, lenLen)
	w.pushHuffman(5, 5) // distance symbol 5 -> distance 7, nothing decoded yet

	_, err := Inflate(w.bytes, 10)
	assert.Error(t, err)
}
