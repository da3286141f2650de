package inflate

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/gperr"
)

// huffmanTable is a canonical Huffman decode table built from per-symbol
// code lengths (RFC 1951 §3.2.2): codesByLength[length][code] == symbol.
type huffmanTable struct {
	codesByLength map[int]map[uint32]int
	maxBits       int
}

func buildHuffmanTable(lengths []int) *huffmanTable {
	maxBits := 0
	for _, l := range lengths {
		if l > maxBits {
			maxBits = l
		}
	}

	blCount := make([]int, maxBits+1)
	for _, l := range lengths {
		if l > 0 {
			blCount[l]++
		}
	}

	code := 0
	nextCode := make([]int, maxBits+1)
	for bits := 1; bits <= maxBits; bits++ {
		code = (code + blCount[bits-1]) << 1
		nextCode[bits] = code
	}

	t := &huffmanTable{codesByLength: make(map[int]map[uint32]int), maxBits: maxBits}
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		c := nextCode[l]
		nextCode[l]++
		if t.codesByLength[l] == nil {
			t.codesByLength[l] = make(map[uint32]int)
		}
		t.codesByLength[l][uint32(c)] = sym
	}
	return t
}

// decode reads bits one at a time, building the code most-significant-bit
// first (RFC 1951 §3.1.1), until a match is found at some length.
func (t *huffmanTable) decode(br *cursor.BitCursorLSB) (int, error) {
	if len(t.codesByLength) == 0 {
		return 0, gperr.New(gperr.CorruptDeflate, "huffman table has no codes")
	}
	var code uint32
	for length := 1; length <= t.maxBits; length++ {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, gperr.Wrap(gperr.CorruptDeflate, "huffman code truncated", err)
		}
		code = (code << 1) | bit
		if m, ok := t.codesByLength[length]; ok {
			if sym, ok2 := m[code]; ok2 {
				return sym, nil
			}
		}
	}
	return 0, gperr.New(gperr.CorruptDeflate, "huffman code not found")
}
