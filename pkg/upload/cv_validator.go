package upload

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// MaxCVSize is the maximum accepted CV upload size (5 MB).
const MaxCVSize = 5 * 1024 * 1024

// ValidationResult contains the result of CV file validation
type ValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Detected MIME type
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed CV file types
// Maps lowercase extension to possible magic byte prefixes
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

// Allowed file extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Strict MIME types - DO NOT include application/octet-stream
var strictMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	// ZIP-based documents (DOCX detection fallback)
	"application/zip": true,
}

// ValidateCV performs 4-layer CV file validation:
// 1. Size limit (5 MB)
// 2. Extension whitelist check
// 3. Magic byte verification (content matches extension)
// 4. MIME type whitelist (application/octet-stream rejected except DOC/DOCX)
func ValidateCV(filename string, data []byte, detectedMIME string) ValidationResult {
	result := ValidationResult{
		DetectedMIME: detectedMIME,
	}

	if len(data) > MaxCVSize {
		result.Error = "file size must be less than 5MB"
		return result
	}

	// Sanitize and extract extension
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	// Layer 2: Extension whitelist
	if !allowedExtensions[ext] {
		result.Error = "please upload a PDF or Word document"
		return result
	}

	// Layer 3: Magic byte validation
	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension (potential file spoofing detected)"
		return result
	}

	// Layer 4: MIME type whitelist
	// application/octet-stream allows arbitrary binary uploads, so it is only
	// tolerated for DOC/DOCX where magic bytes already proved the content.
	if detectedMIME == "application/octet-stream" {
		if ext != ".docx" && ext != ".doc" {
			result.Error = "binary files not allowed; file type could not be determined"
			return result
		}
	} else if detectedMIME != "" && !strictMIMETypes[detectedMIME] {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false // Unknown extension
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}

	return false
}

// ValidateExtension checks only the extension (for quick pre-validation)
func ValidateExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	if !allowedExtensions[ext] {
		return errors.New("file extension not allowed: " + ext)
	}
	return nil
}

// AllowedExtensions returns a list of allowed extensions for error messages
func AllowedExtensions() []string {
	extensions := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		extensions = append(extensions, ext)
	}
	return extensions
}
