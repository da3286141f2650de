// Package format sniffs a tablature file's container format from its
// magic bytes (or, failing that, its filename) and dispatches to the
// matching decoder.
package format

import (
	"bytes"
	"strings"

	"github.com/jsphweid/gptab/archive"
	"github.com/jsphweid/gptab/gp3"
	"github.com/jsphweid/gptab/gp5"
	"github.com/jsphweid/gptab/gperr"
	"github.com/jsphweid/gptab/gpif"
	"github.com/jsphweid/gptab/gpx"
	"github.com/jsphweid/gptab/model"
)

// Format names the four decoders the dispatcher can route to.
type Format string

const (
	GPX Format = "gpx"
	GP7 Format = "gp7"
	GP5 Format = "gp5"
	GP3 Format = "gp3"
)

// Detect runs the five ordered recognition rules against data and an
// optional filename (empty string if none was supplied): GPX magic,
// GP7's zip magic, the GP3/GP5 version banner, then a filename-suffix
// fallback.
func Detect(data []byte, filename string) (Format, error) {
	if len(data) >= 4 {
		magic := data[:4]
		if bytes.Equal(magic, []byte("BCFZ")) || bytes.Equal(magic, []byte("BCFS")) {
			return GPX, nil
		}
	}
	if len(data) >= 2 && data[0] == 0x50 && data[1] == 0x4B {
		return GP7, nil
	}
	if f, ok := detectVersionString(data); ok {
		return f, nil
	}
	if filename != "" {
		if f, ok := detectBySuffix(data, filename); ok {
			return f, nil
		}
	}
	if len(data) < 4 {
		return "", gperr.New(gperr.Truncated, "buffer is too short to evaluate any format's magic bytes")
	}
	return "", gperr.New(gperr.UnrecognizedFormat, "no format magic matched and no usable filename was supplied")
}

// detectVersionString implements rule 3: a leading string-length byte
// in (10, 50) whose declared bytes contain "GUITAR PRO" selects GP3 or
// GP5 by the version string's major number.
func detectVersionString(data []byte) (Format, bool) {
	if len(data) < 1 {
		return "", false
	}
	length := int(data[0])
	if length <= 10 || length >= 50 {
		return "", false
	}
	readLen := length
	if readLen > 40 {
		readLen = 40
	}
	if len(data) < 1+readLen {
		return "", false
	}
	banner := string(data[1 : 1+readLen])
	if !strings.Contains(banner, "GUITAR PRO") {
		return "", false
	}
	if strings.Contains(banner, "v3") {
		return GP3, true
	}
	return GP5, true
}

func detectBySuffix(data []byte, filename string) (Format, bool) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".gpx"):
		return GPX, true
	case strings.HasSuffix(lower, ".gp5"), strings.HasSuffix(lower, ".gp4"), strings.HasSuffix(lower, ".gp3"):
		if f, ok := detectVersionString(data); ok {
			return f, true
		}
		return GP5, true
	case strings.HasSuffix(lower, ".gp"):
		return GP7, true
	}
	return "", false
}

// Parse detects data's format and dispatches to the matching decoder.
func Parse(data []byte, filename string) (*model.Song, error) {
	f, err := Detect(data, filename)
	if err != nil {
		return nil, err
	}
	return ParseAs(data, f)
}

// ParseAs runs the decoder for an already-known format, skipping
// detection.
func ParseAs(data []byte, f Format) (*model.Song, error) {
	switch f {
	case GPX:
		return ParseGpx(data)
	case GP7:
		return ParseGp7(data)
	case GP5:
		return ParseGp5(data)
	case GP3:
		return ParseGp3(data)
	default:
		return nil, gperr.Newf(gperr.UnrecognizedFormat, "unknown format %q", f)
	}
}

func ParseGpx(data []byte) (*model.Song, error) {
	xmlBytes, err := gpx.Decode(data)
	if err != nil {
		return nil, err
	}
	song, err := gpif.Decode(xmlBytes)
	if err != nil {
		return nil, err
	}
	stampSourceFormat(song, "gpx")
	return song, nil
}

func ParseGp7(data []byte) (*model.Song, error) {
	xmlBytes, err := archive.Decode(data)
	if err != nil {
		return nil, err
	}
	song, err := gpif.Decode(xmlBytes)
	if err != nil {
		return nil, err
	}
	stampSourceFormat(song, "gp7")
	return song, nil
}

func ParseGp5(data []byte) (*model.Song, error) {
	return gp5.Decode(data)
}

func ParseGp3(data []byte) (*model.Song, error) {
	return gp3.Decode(data)
}

func stampSourceFormat(song *model.Song, sourceFormat string) {
	for i := range song.Tracks {
		song.Tracks[i].SourceFormat = sourceFormat
	}
}
