package gpx

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/util"
)

// decompressBCFZ runs the GPX LZ stream: bit 1 starts a back-reference,
// bit 0 starts a literal run. It stops once expectedLen bytes have been
// produced, or the stream runs out first — a truncated final block is
// tolerated and whatever was already decoded is returned.
func decompressBCFZ(lzStream []byte, expectedLen int) []byte {
	br := cursor.NewMSB(lzStream)
	out := make([]byte, 0, expectedLen)

	for len(out) < expectedLen {
		bit, err := br.ReadBit()
		if err != nil {
			break
		}

		if bit == 1 {
			wordSize, err := br.ReadBits(4)
			if err != nil {
				break
			}
			offset, err := br.ReadReversed(int(wordSize))
			if err != nil {
				break
			}
			size, err := br.ReadReversed(int(wordSize))
			if err != nil {
				break
			}
			copyLen := util.Min(int(offset), int(size))
			start := len(out) - int(offset)
			if start < 0 {
				break
			}
			for i := 0; i < copyLen && len(out) < expectedLen; i++ {
				out = append(out, out[start+i])
			}
		} else {
			size, err := br.ReadReversed(2)
			if err != nil {
				break
			}
			done := false
			for i := 0; i < int(size) && len(out) < expectedLen; i++ {
				b, err := br.ReadBits(8)
				if err != nil {
					done = true
					break
				}
				out = append(out, byte(b))
			}
			if done {
				break
			}
		}
	}
	return out
}
