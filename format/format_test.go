package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/gptab/gperr"
)

func TestDetectGPXMagic(t *testing.T) {
	f, err := Detect([]byte("BCFZ\x00\x00\x00\x00"), "")
	assert.NoError(t, err)
	assert.Equal(t, GPX, f)
}

func TestDetectGP7Magic(t *testing.T) {
	f, err := Detect([]byte{0x50, 0x4B, 0x03, 0x04}, "")
	assert.NoError(t, err)
	assert.Equal(t, GP7, f)
}

func TestDetectVersionStringGP5(t *testing.T) {
	banner := versionBanner("FICHIER GUITAR PRO v5.10")
	f, err := Detect(banner, "")
	assert.NoError(t, err)
	assert.Equal(t, GP5, f)
}

func TestDetectVersionStringGP3(t *testing.T) {
	banner := versionBanner("FICHIER GUITAR PRO v3.00")
	f, err := Detect(banner, "")
	assert.NoError(t, err)
	assert.Equal(t, GP3, f)
}

func TestDetectFallsBackToFilenameSuffix(t *testing.T) {
	f, err := Detect([]byte{0x00}, "song.gpx")
	assert.NoError(t, err)
	assert.Equal(t, GPX, f)

	f, err = Detect([]byte{0x00}, "song.gp")
	assert.NoError(t, err)
	assert.Equal(t, GP7, f)
}

func TestDetectUnrecognizedFormat(t *testing.T) {
	_, err := Detect([]byte{0x00, 0x01, 0x02, 0x03}, "")
	assert.Error(t, err)
	assert.True(t, errorsIsCode(err, gperr.UnrecognizedFormat))
}

func TestDetectTruncatedBuffer(t *testing.T) {
	_, err := Detect([]byte{0x00, 0x01}, "")
	assert.Error(t, err)
	assert.True(t, errorsIsCode(err, gperr.Truncated))
}

func errorsIsCode(err error, code gperr.Code) bool {
	e, ok := err.(*gperr.Error)
	return ok && e.Code == code
}

func versionBanner(s string) []byte {
	buf := []byte{byte(len(s))}
	buf = append(buf, []byte(s)...)
	return buf
}
