package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader by round-tripping a request
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="resume"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	headers := req.MultipartForm.File["resume"]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestSaveUpload(t *testing.T) {
	dir := t.TempDir()
	content := []byte("%PDF-1.4 fake content")
	header := fileHeader(t, "resume.pdf", "application/pdf", content)

	path, mimeType, cleanup, err := SaveUpload(header, dir, PDFOnly, 1<<20)
	require.NoError(t, err)
	require.NotNil(t, cleanup)

	assert.Equal(t, "application/pdf", mimeType)

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, saved)

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "cleanup should remove the stored file")
}

func TestSaveUploadUniqueNames(t *testing.T) {
	dir := t.TempDir()

	header := fileHeader(t, "resume.pdf", "application/pdf", []byte("one"))
	pathA, _, cleanupA, err := SaveUpload(header, dir, PDFOnly, 1<<20)
	require.NoError(t, err)
	defer cleanupA()

	pathB, _, cleanupB, err := SaveUpload(header, dir, PDFOnly, 1<<20)
	require.NoError(t, err)
	defer cleanupB()

	assert.NotEqual(t, pathA, pathB)
}

func TestSaveUploadRejections(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, _, _, err := SaveUpload(nil, dir, PDFOnly, 1<<20)
		require.ErrorIs(t, err, ErrMissingFile)
	})

	t.Run("over the size limit", func(t *testing.T) {
		header := fileHeader(t, "big.pdf", "application/pdf", bytes.Repeat([]byte("x"), 2048))
		_, _, _, err := SaveUpload(header, dir, PDFOnly, 1024)
		require.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("image rejected by pdf-only list", func(t *testing.T) {
		header := fileHeader(t, "photo.png", "image/png", []byte("png bytes"))
		_, _, _, err := SaveUpload(header, dir, PDFOnly, 1<<20)
		require.ErrorIs(t, err, ErrDisallowedType)
	})

	t.Run("image accepted where allowed", func(t *testing.T) {
		header := fileHeader(t, "photo.png", "image/png", []byte("png bytes"))
		_, mimeType, cleanup, err := SaveUpload(header, dir, PDFOrImages, 1<<20)
		require.NoError(t, err)
		defer cleanup()
		assert.Equal(t, "image/png", mimeType)
	})
}
