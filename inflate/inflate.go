// Package inflate implements an RFC 1951 DEFLATE decompressor from
// scratch, driven by the LSB-first bit cursor in package cursor. It is
// used to extract Content/score.gpif from a GP7 archive.
package inflate

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/gperr"
)

var fixedLitTable = buildHuffmanTable(fixedLitLengths)
var fixedDistTable = buildHuffmanTable(fixedDistLengths)

// Inflate decompresses a raw DEFLATE stream. maxSize, when positive, is
// used only to size the output buffer's initial capacity; it is not a
// hard cap.
func Inflate(data []byte, maxSize int) ([]byte, error) {
	if maxSize < 0 {
		maxSize = 0
	}
	br := cursor.NewLSB(data)
	out := make([]byte, 0, maxSize)

	for {
		bfinal, err := br.ReadBits(1)
		if err != nil {
			return nil, gperr.Wrap(gperr.CorruptDeflate, "reading BFINAL", err)
		}
		btype, err := br.ReadBits(2)
		if err != nil {
			return nil, gperr.Wrap(gperr.CorruptDeflate, "reading BTYPE", err)
		}

		switch btype {
		case 0:
			out, err = inflateStored(br, out)
		case 1:
			out, err = inflateHuffmanBlock(br, out, fixedLitTable, fixedDistTable)
		case 2:
			out, err = inflateDynamicBlock(br, out)
		default:
			return nil, gperr.Newf(gperr.CorruptDeflate, "invalid BTYPE %d", btype)
		}
		if err != nil {
			return nil, err
		}

		if bfinal == 1 {
			break
		}
	}
	return out, nil
}

func inflateStored(br *cursor.BitCursorLSB, out []byte) ([]byte, error) {
	br.AlignToByte()
	lenLo, err := br.ReadByte()
	if err != nil {
		return nil, gperr.Wrap(gperr.CorruptDeflate, "reading stored block LEN", err)
	}
	lenHi, err := br.ReadByte()
	if err != nil {
		return nil, gperr.Wrap(gperr.CorruptDeflate, "reading stored block LEN", err)
	}
	// NLEN (one's complement of LEN) follows but is not revalidated here;
	// a mismatched NLEN on an otherwise well-formed archive is not worth
	// detecting separately from any other corruption.
	if _, err := br.ReadByte(); err != nil {
		return nil, gperr.Wrap(gperr.CorruptDeflate, "reading stored block NLEN", err)
	}
	if _, err := br.ReadByte(); err != nil {
		return nil, gperr.Wrap(gperr.CorruptDeflate, "reading stored block NLEN", err)
	}

	length := int(lenLo) | int(lenHi)<<8
	for i := 0; i < length; i++ {
		b, err := br.ReadByte()
		if err != nil {
			return nil, gperr.Wrap(gperr.CorruptDeflate, "reading stored block data", err)
		}
		out = append(out, b)
	}
	return out, nil
}

func inflateDynamicBlock(br *cursor.BitCursorLSB, out []byte) ([]byte, error) {
	hlit, err := br.ReadBits(5)
	if err != nil {
		return nil, gperr.Wrap(gperr.CorruptDeflate, "reading HLIT", err)
	}
	hdist, err := br.ReadBits(5)
	if err != nil {
		return nil, gperr.Wrap(gperr.CorruptDeflate, "reading HDIST", err)
	}
	hclen, err := br.ReadBits(4)
	if err != nil {
		return nil, gperr.Wrap(gperr.CorruptDeflate, "reading HCLEN", err)
	}

	numLit := int(hlit) + 257
	numDist := int(hdist) + 1
	numClen := int(hclen) + 4

	clLengths := make([]int, 19)
	for i := 0; i < numClen; i++ {
		v, err := br.ReadBits(3)
		if err != nil {
			return nil, gperr.Wrap(gperr.CorruptDeflate, "reading code-length alphabet", err)
		}
		clLengths[codeLengthOrder[i]] = int(v)
	}
	clTable := buildHuffmanTable(clLengths)

	total := numLit + numDist
	lengths := make([]int, 0, total)
	for len(lengths) < total {
		sym, err := clTable.decode(br)
		if err != nil {
			return nil, err
		}
		switch {
		case sym < 16:
			lengths = append(lengths, sym)
		case sym == 16:
			if len(lengths) == 0 {
				return nil, gperr.New(gperr.CorruptDeflate, "repeat code 16 with no previous length")
			}
			repeat, err := br.ReadBits(2)
			if err != nil {
				return nil, gperr.Wrap(gperr.CorruptDeflate, "reading repeat-16 count", err)
			}
			prev := lengths[len(lengths)-1]
			for i := 0; i < int(repeat)+3; i++ {
				lengths = append(lengths, prev)
			}
		case sym == 17:
			repeat, err := br.ReadBits(3)
			if err != nil {
				return nil, gperr.Wrap(gperr.CorruptDeflate, "reading repeat-17 count", err)
			}
			for i := 0; i < int(repeat)+3; i++ {
				lengths = append(lengths, 0)
			}
		case sym == 18:
			repeat, err := br.ReadBits(7)
			if err != nil {
				return nil, gperr.Wrap(gperr.CorruptDeflate, "reading repeat-18 count", err)
			}
			for i := 0; i < int(repeat)+11; i++ {
				lengths = append(lengths, 0)
			}
		default:
			return nil, gperr.Newf(gperr.CorruptDeflate, "code-length symbol %d out of range", sym)
		}
		if len(lengths) > total {
			return nil, gperr.New(gperr.CorruptDeflate, "code-length repeat overruns alphabet")
		}
	}

	litLengths := lengths[:numLit]
	distLengths := lengths[numLit:]
	litTable := buildHuffmanTable(litLengths)
	distTable := buildHuffmanTable(distLengths)

	return inflateHuffmanBlock(br, out, litTable, distTable)
}

func inflateHuffmanBlock(br *cursor.BitCursorLSB, out []byte, litTable, distTable *huffmanTable) ([]byte, error) {
	for {
		sym, err := litTable.decode(br)
		if err != nil {
			return nil, err
		}
		if sym == endOfBlockSymbol {
			return out, nil
		}
		if sym < endOfBlockSymbol {
			out = append(out, byte(sym))
			continue
		}

		li := sym - 257
		if li < 0 || li >= len(lengthBase) {
			return nil, gperr.Newf(gperr.CorruptDeflate, "length symbol %d out of range", sym)
		}
		extra, err := br.ReadBits(lengthExtraBits[li])
		if err != nil {
			return nil, gperr.Wrap(gperr.CorruptDeflate, "reading length extra bits", err)
		}
		length := lengthBase[li] + int(extra)

		distSym, err := distTable.decode(br)
		if err != nil {
			return nil, err
		}
		if distSym < 0 || distSym >= len(distBase) {
			return nil, gperr.Newf(gperr.CorruptDeflate, "distance symbol %d out of range", distSym)
		}
		distExtra, err := br.ReadBits(distExtraBits[distSym])
		if err != nil {
			return nil, gperr.Wrap(gperr.CorruptDeflate, "reading distance extra bits", err)
		}
		distance := distBase[distSym] + int(distExtra)

		if distance > len(out) {
			return nil, gperr.Newf(gperr.CorruptDeflate, "back-reference distance %d exceeds decoded output %d", distance, len(out))
		}
		start := len(out) - distance
		for i := 0; i < length; i++ {
			out = append(out, out[start+i])
		}
	}
}
