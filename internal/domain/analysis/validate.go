package analysis

import "strings"

// ValidateUpload enforces the upload constraints, first failure wins:
// a file must be present, its declared content type must be image/*,
// and it must not exceed MaxUploadBytes (inclusive). No decoding happens
// here; a corrupt but correctly-typed image is left to the inference step.
func ValidateUpload(contentType string, size int64) error {
	if size == 0 {
		return ErrMissingFile
	}
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	if size > MaxUploadBytes {
		return ErrTooLarge
	}
	return nil
}
