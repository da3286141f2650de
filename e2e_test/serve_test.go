//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/gptab/cmd"
)

func TestMain(m *testing.M) {
	os.Setenv("GPTAB_BUCKET", "gptab-e2e-test")
	os.Exit(m.Run())
}

func multipartUpload(filename string, content []byte) (*bytes.Buffer, string) {
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, _ := w.CreateFormFile("file", filename)
	part.Write(content)
	w.Close()
	return body, w.FormDataContentType()
}

func TestParseRejectsUnrecognizedFormat(t *testing.T) {
	body, contentType := multipartUpload("song.bin", []byte{0x00, 0x01, 0x02})

	req := httptest.NewRequest(http.MethodPost, "/parse", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	cmd.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Result().StatusCode)
}

func TestParseRejectsMissingFileField(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader(nil))
	w := httptest.NewRecorder()

	cmd.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestGetSongUnknownKeyIsNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/songs/does-not-exist", nil)
	w := httptest.NewRecorder()

	cmd.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
