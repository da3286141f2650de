package gpx

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/gperr"
)

const (
	sectorSize       = 0x1000
	fileEntryMarker  = 2
	filenameOffset   = 0x04
	maxFilenameBytes = 127
	fileSizeOffset   = 0x8C
	blockListOffset  = 0x94
	scoreFilename    = "score.gpif"
)

// extractScoreGpif walks the BCFS sector directory looking for
// score.gpif and returns its payload, already valid UTF-8.
func extractScoreGpif(image []byte) ([]byte, error) {
	for base := sectorSize; base+4 <= len(image); base += sectorSize {
		marker, err := cursor.New(image[base:]).U32()
		if err != nil {
			break
		}
		if marker != fileEntryMarker {
			continue
		}

		name, payload, err := readFileEntry(image, base)
		if err != nil {
			return nil, err
		}
		if name == scoreFilename {
			return payload, nil
		}
	}
	return nil, gperr.New(gperr.BadContainer, "score.gpif not found in GPX container")
}

func readFileEntry(image []byte, base int) (string, []byte, error) {
	nameStart := base + filenameOffset
	if nameStart >= len(image) {
		return "", nil, gperr.New(gperr.Truncated, "file-entry sector has no filename")
	}
	nameEnd := nameStart
	for nameEnd < len(image) && nameEnd < nameStart+maxFilenameBytes && image[nameEnd] != 0 {
		nameEnd++
	}
	name, err := cursor.DecodeLatin1(image[nameStart:nameEnd])
	if err != nil {
		return "", nil, err
	}

	sizeOff := base + fileSizeOffset
	if sizeOff+4 > len(image) {
		return "", nil, gperr.New(gperr.Truncated, "file-entry sector missing declared size")
	}
	declaredSize, err := cursor.New(image[sizeOff : sizeOff+4]).U32()
	if err != nil {
		return "", nil, err
	}

	var blockIDs []uint32
	pos := base + blockListOffset
	sectorEnd := base + sectorSize
	for pos+4 <= len(image) && pos+4 <= sectorEnd {
		id, err := cursor.New(image[pos : pos+4]).U32()
		if err != nil {
			break
		}
		if id == 0 {
			break
		}
		blockIDs = append(blockIDs, id)
		pos += 4
	}

	payload := make([]byte, 0, declaredSize)
	remaining := int(declaredSize)
	for _, id := range blockIDs {
		if remaining <= 0 {
			break
		}
		chunkLen := sectorSize
		if remaining < chunkLen {
			chunkLen = remaining
		}
		chunkStart := int(id) * sectorSize
		if chunkStart < 0 || chunkStart >= len(image) {
			break
		}
		if chunkStart+chunkLen > len(image) {
			chunkLen = len(image) - chunkStart
		}
		payload = append(payload, image[chunkStart:chunkStart+chunkLen]...)
		remaining -= chunkLen
	}

	return name, payload, nil
}
