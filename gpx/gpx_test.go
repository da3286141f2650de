package gpx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/gptab/gperr"
)

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// buildBCFSImage returns a BCFS image (without its leading "BCFS" magic)
// containing one file-entry sector at 0x1000 describing score.gpif, whose
// payload lives in the block at sector index 2.
func buildBCFSImage(payload []byte) []byte {
	image := make([]byte, 0x3000)
	putUint32LE(image[0x1000:], fileEntryMarker)
	copy(image[0x1000+filenameOffset:], []byte(scoreFilename))
	putUint32LE(image[0x1000+fileSizeOffset:], uint32(len(payload)))
	putUint32LE(image[0x1000+blockListOffset:], 2) // block id 2 -> absolute offset 0x2000
	copy(image[0x2000:], payload)
	return image
}

func TestExtractScoreGpifFindsEntry(t *testing.T) {
	payload := []byte(`<?xml version="1.0"?><GPIF/>`)
	image := buildBCFSImage(payload)

	out, err := extractScoreGpif(image)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(payload, out)
}

func TestExtractScoreGpifMissingFileIsBadContainer(t *testing.T) {
	image := make([]byte, 0x2000) // no file-entry sector anywhere

	_, err := extractScoreGpif(image)

	assert.Error(t, err)
	assert.ErrorIs(t, err, &gperr.Error{Code: gperr.BadContainer})
}

func TestDecodeUncompressedBCFS(t *testing.T) {
	payload := []byte(`<?xml version="1.0"?><GPIF/>`)
	image := buildBCFSImage(payload)
	data := append([]byte(magicUncompressed), image...)

	out, err := Decode(data)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(payload, out)
}

func TestDecodeRejectsUnknownMagic(t *testing.T) {
	_, err := Decode([]byte("NOPE1234"))
	assert.Error(t, err)
}

func TestDecodeTruncatedInputIsError(t *testing.T) {
	_, err := Decode([]byte("BC"))
	assert.Error(t, err)
}

// msbBitWriter packs bits most-significant-bit-first within each byte,
// matching cursor.BitCursorMSB's read order.
type msbBitWriter struct {
	bytes  []byte
	bitPos uint
}

func (w *msbBitWriter) pushBit(bit uint32) {
	if w.bitPos == 0 {
		w.bytes = append(w.bytes, 0)
	}
	if bit != 0 {
		w.bytes[len(w.bytes)-1] |= byte(1) << (7 - w.bitPos)
	}
	w.bitPos++
	if w.bitPos == 8 {
		w.bitPos = 0
	}
}

// pushBitsMSB matches BitCursorMSB.ReadBits: the first bit pushed becomes
// the most significant bit of the decoded value.
func (w *msbBitWriter) pushBitsMSB(value uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		w.pushBit((value >> uint(i)) & 1)
	}
}

// pushBitsReversed matches BitCursorMSB.ReadReversed: the first bit pushed
// becomes the least significant bit of the decoded value.
func (w *msbBitWriter) pushBitsReversed(value uint32, n int) {
	for i := 0; i < n; i++ {
		w.pushBit((value >> uint(i)) & 1)
	}
}

// pushLiteralRuns encodes data as a sequence of literal runs, each at most
// 3 bytes (the 2-bit size field's max value).
func (w *msbBitWriter) pushLiteralRuns(data []byte) {
	for i := 0; i < len(data); i += 3 {
		end := i + 3
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]
		w.pushBit(0)
		w.pushBitsReversed(uint32(len(chunk)), 2)
		for _, b := range chunk {
			w.pushBitsMSB(uint32(b), 8)
		}
	}
}

func TestDecompressBCFZLiteralThenBackReference(t *testing.T) {
	w := &msbBitWriter{}
	w.pushLiteralRuns([]byte("Hi"))
	w.pushBit(1)             // back-reference
	w.pushBitsMSB(4, 4)      // wordSize = 4
	w.pushBitsReversed(2, 4) // offset = 2
	w.pushBitsReversed(2, 4) // size = 2

	out := decompressBCFZ(w.bytes, 4)

	assert.Equal(t, "HiHi", string(out))
}

func TestDecompressBCFZTruncatedStreamKeepsPartialOutput(t *testing.T) {
	w := &msbBitWriter{}
	w.pushLiteralRuns([]byte("Hi"))
	// declare a longer expected length than the stream actually provides

	out := decompressBCFZ(w.bytes, 10)

	assert.Equal(t, "Hi", string(out))
}

func TestDecodeCompressedBCFZRoundTrips(t *testing.T) {
	payload := []byte(`<?xml version="1.0"?><GPIF/>`)
	bcfsImage := buildBCFSImage(payload)

	dummyHeader := make([]byte, 4)
	uncompressed := append(dummyHeader, bcfsImage...)

	w := &msbBitWriter{}
	w.pushLiteralRuns(uncompressed)

	data := make([]byte, 0, 8+len(w.bytes))
	data = append(data, []byte(magicCompressed)...)
	lenField := make([]byte, 4)
	putUint32LE(lenField, uint32(len(uncompressed)))
	data = append(data, lenField...)
	data = append(data, w.bytes...)

	out, err := Decode(data)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(payload, out)
}
