// Package archive reads the standard zip-style container GP7+ files use,
// extracting Content/score.gpif.
package archive

import (
	"bytes"

	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/gperr"
	"github.com/jsphweid/gptab/inflate"
)

const (
	eocdSignature       = 0x06054b50
	centralDirSignature = 0x02014b50
	localFileSignature  = 0x04034b50

	methodStored  = 0
	methodDeflate = 8

	targetEntryName = "Content/score.gpif"

	minEOCDSize = 22
)

var eocdSignatureBytes = []byte{0x50, 0x4b, 0x05, 0x06}

type centralDirEntry struct {
	name              string
	method            uint16
	compressedSize    uint32
	uncompressedSize  uint32
	localHeaderOffset uint32
}

// Decode extracts the UTF-8 bytes of Content/score.gpif from a GP7+ zip
// archive.
func Decode(data []byte) ([]byte, error) {
	eocdOffset, err := findEOCD(data)
	if err != nil {
		return nil, err
	}

	entries, err := parseCentralDirectory(data, eocdOffset)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.name == targetEntryName {
			return readEntryPayload(data, entry)
		}
	}
	return nil, gperr.Newf(gperr.BadContainer, "%s not found in archive", targetEntryName)
}

// findEOCD scans backwards for the end-of-central-directory signature,
// since a zip comment of unknown length can follow it.
func findEOCD(data []byte) (int, error) {
	for i := len(data) - minEOCDSize; i >= 0; i-- {
		if bytes.Equal(data[i:i+4], eocdSignatureBytes) {
			return i, nil
		}
	}
	return 0, gperr.New(gperr.BadHeader, "missing end-of-central-directory record")
}

func parseCentralDirectory(data []byte, eocdOffset int) ([]centralDirEntry, error) {
	c := cursor.New(data[eocdOffset:])
	if _, err := c.Bytes(4); err != nil { // signature, already matched
		return nil, err
	}
	c.Skip(2) // disk number
	c.Skip(2) // disk with cd start
	c.Skip(2) // entries on this disk
	totalEntries, err := c.U16()
	if err != nil {
		return nil, err
	}
	if _, err := c.U32(); err != nil { // cd size, unused
		return nil, err
	}
	cdOffset, err := c.U32()
	if err != nil {
		return nil, err
	}

	entries := make([]centralDirEntry, 0, totalEntries)
	pos := int(cdOffset)
	for i := 0; i < int(totalEntries); i++ {
		if pos+46 > len(data) {
			return nil, gperr.New(gperr.Truncated, "central directory entry runs past end of file")
		}
		ec := cursor.New(data[pos:])
		sig, err := ec.U32()
		if err != nil {
			return nil, err
		}
		if sig != centralDirSignature {
			return nil, gperr.New(gperr.BadHeader, "bad central directory file header magic")
		}
		ec.Skip(2) // version made by
		ec.Skip(2) // version needed
		ec.Skip(2) // flags
		method, err := ec.U16()
		if err != nil {
			return nil, err
		}
		ec.Skip(2) // mod time
		ec.Skip(2) // mod date
		ec.Skip(4) // crc32
		compSize, err := ec.U32()
		if err != nil {
			return nil, err
		}
		uncompSize, err := ec.U32()
		if err != nil {
			return nil, err
		}
		nameLen, err := ec.U16()
		if err != nil {
			return nil, err
		}
		extraLen, err := ec.U16()
		if err != nil {
			return nil, err
		}
		commentLen, err := ec.U16()
		if err != nil {
			return nil, err
		}
		ec.Skip(2) // disk number start
		ec.Skip(2) // internal attributes
		ec.Skip(4) // external attributes
		localOffset, err := ec.U32()
		if err != nil {
			return nil, err
		}
		nameBytes, err := ec.Bytes(int(nameLen))
		if err != nil {
			return nil, err
		}
		name, err := cursor.DecodeLatin1(nameBytes)
		if err != nil {
			return nil, err
		}

		entries = append(entries, centralDirEntry{
			name:              name,
			method:            method,
			compressedSize:    compSize,
			uncompressedSize:  uncompSize,
			localHeaderOffset: localOffset,
		})
		pos += 46 + int(nameLen) + int(extraLen) + int(commentLen)
	}
	return entries, nil
}

func readEntryPayload(data []byte, entry centralDirEntry) ([]byte, error) {
	pos := int(entry.localHeaderOffset)
	if pos+30 > len(data) {
		return nil, gperr.New(gperr.Truncated, "local file header runs past end of file")
	}
	c := cursor.New(data[pos:])
	sig, err := c.U32()
	if err != nil {
		return nil, err
	}
	if sig != localFileSignature {
		return nil, gperr.New(gperr.BadHeader, "bad local file header magic")
	}
	c.Skip(2) // version needed
	c.Skip(2) // flags
	c.Skip(2) // method (authoritative value already known from the central directory)
	c.Skip(2) // mod time
	c.Skip(2) // mod date
	c.Skip(4) // crc32
	c.Skip(4) // compressed size
	c.Skip(4) // uncompressed size
	nameLen, err := c.U16()
	if err != nil {
		return nil, err
	}
	extraLen, err := c.U16()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(int(nameLen)); err != nil {
		return nil, err
	}
	if err := c.Skip(int(extraLen)); err != nil {
		return nil, err
	}

	raw, err := c.Bytes(int(entry.compressedSize))
	if err != nil {
		return nil, err
	}

	switch entry.method {
	case methodStored:
		return raw, nil
	case methodDeflate:
		return inflate.Inflate(raw, int(entry.uncompressedSize))
	default:
		return nil, gperr.Newf(gperr.UnsupportedCompression, "unsupported archive compression method %d", entry.method)
	}
}
