// Package gpx decodes the GPX (BCFZ/BCFS) container used by Guitar Pro
// 6 files into the raw score.gpif XML bytes.
package gpx

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/gperr"
)

const (
	magicCompressed   = "BCFZ"
	magicUncompressed = "BCFS"
)

// Decode turns a whole GPX file into the UTF-8 bytes of its score.gpif
// entry.
func Decode(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, gperr.New(gperr.Truncated, "GPX container shorter than its magic")
	}

	switch string(data[:4]) {
	case magicCompressed:
		return decodeCompressed(data)
	case magicUncompressed:
		return extractScoreGpif(data[4:])
	default:
		return nil, gperr.New(gperr.BadHeader, "missing BCFZ/BCFS magic")
	}
}

func decodeCompressed(data []byte) ([]byte, error) {
	if len(data) < 8 {
		return nil, gperr.New(gperr.Truncated, "BCFZ header missing expected-length field")
	}
	expectedLen, err := cursor.New(data[4:8]).U32()
	if err != nil {
		return nil, err
	}

	decompressed := decompressBCFZ(data[8:], int(expectedLen))
	if len(decompressed) < 4 {
		return nil, gperr.New(gperr.BadContainer, "BCFZ stream decompressed shorter than its length header")
	}
	return extractScoreGpif(decompressed[4:])
}
