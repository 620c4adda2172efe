package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["resume"][0]
}

func TestUploadService_ReadResume(t *testing.T) {
	uploads := NewUploadService(64)

	t.Run("missing file", func(t *testing.T) {
		_, err := uploads.ReadResume(nil)
		assert.ErrorIs(t, err, ErrMissingResume)
	})

	t.Run("reads pdf into memory", func(t *testing.T) {
		content := []byte("%PDF-1.4 small")
		resume, err := uploads.ReadResume(newFileHeader(t, "Resume.pdf", content))
		require.NoError(t, err)
		assert.Equal(t, "Resume.pdf", resume.Filename)
		assert.Equal(t, ".pdf", resume.Ext())
		assert.Equal(t, content, resume.Data)
	})

	t.Run("accepts docx", func(t *testing.T) {
		_, err := uploads.ReadResume(newFileHeader(t, "resume.docx", []byte("PK")))
		assert.NoError(t, err)
	})

	t.Run("rejects other extensions", func(t *testing.T) {
		_, err := uploads.ReadResume(newFileHeader(t, "resume.exe", []byte("MZ")))
		assert.ErrorIs(t, err, ErrUnsupportedFileType)
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		_, err := uploads.ReadResume(newFileHeader(t, "resume.pdf", bytes.Repeat([]byte("a"), 65)))
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("exactly the limit is fine", func(t *testing.T) {
		resume, err := uploads.ReadResume(newFileHeader(t, "resume.pdf", bytes.Repeat([]byte("a"), 64)))
		require.NoError(t, err)
		assert.EqualValues(t, 64, resume.Size())
	})
}
