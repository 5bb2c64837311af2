// Package media validates, re-encodes and stores dress photos.
package media

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
)

var (
	ErrInvalidImage   = httperr.ErrBusiness("invalid_image")
	ErrUploadTooLarge = httperr.ErrBusiness("upload_too_large")
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// AllowedExtension checks the extension after the last dot, case-insensitively.
func AllowedExtension(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[i+1:])]
}

// SecureFilename reduces an uploaded name to a safe ASCII base name.
func SecureFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r > unicode.MaxASCII:
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}

	return strings.Trim(b.String(), "._")
}
