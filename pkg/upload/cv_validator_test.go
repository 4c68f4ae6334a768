package upload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pdfBytes() []byte {
	return append([]byte("%PDF-1.7"), bytes.Repeat([]byte{0x20}, 64)...)
}

func TestValidateCV(t *testing.T) {
	t.Run("Should accept a well-formed PDF", func(t *testing.T) {
		result := ValidateCV("resume.pdf", pdfBytes(), "application/pdf")
		assert.True(t, result.Valid)
		assert.Equal(t, ".pdf", result.Extension)
	})

	t.Run("Should accept a DOCX with an octet-stream MIME", func(t *testing.T) {
		data := append([]byte{0x50, 0x4B, 0x03, 0x04}, bytes.Repeat([]byte{0x00}, 32)...)
		result := ValidateCV("resume.docx", data, "application/octet-stream")
		assert.True(t, result.Valid)
	})

	t.Run("Should reject oversized files", func(t *testing.T) {
		data := make([]byte, MaxCVSize+1)
		copy(data, "%PDF")
		result := ValidateCV("resume.pdf", data, "application/pdf")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "5MB")
	})

	t.Run("Should reject disallowed extensions", func(t *testing.T) {
		result := ValidateCV("resume.exe", pdfBytes(), "application/pdf")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "PDF or Word")
	})

	t.Run("Should reject content that does not match the extension", func(t *testing.T) {
		result := ValidateCV("resume.pdf", []byte("plain text pretending to be a pdf"), "application/pdf")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "spoofing")
	})

	t.Run("Should reject octet-stream PDFs", func(t *testing.T) {
		result := ValidateCV("resume.pdf", pdfBytes(), "application/octet-stream")
		assert.False(t, result.Valid)
	})

	t.Run("Should reject files without an extension", func(t *testing.T) {
		result := ValidateCV("resume", pdfBytes(), "application/pdf")
		assert.False(t, result.Valid)
	})
}

func TestValidateExtension(t *testing.T) {
	assert.NoError(t, ValidateExtension("cv.pdf"))
	assert.NoError(t, ValidateExtension("cv.DOCX"))
	assert.Error(t, ValidateExtension("cv.txt"))
	assert.Error(t, ValidateExtension("cv"))
}
