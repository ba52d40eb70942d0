package analysis

import "errors"

// Upload validation failures, surfaced to the client as 400 responses.
var (
	ErrMissingFile = errors.New("no file was uploaded")
	ErrNotAnImage  = errors.New("file must be an image")
	ErrTooLarge    = errors.New("image size must be 5MB or less")
)

// ErrInferenceUnavailable indicates the external vision service failed
// (timeout, transport error, provider error). The reason stays in the logs;
// the client gets an empty report.
var ErrInferenceUnavailable = errors.New("inference service unavailable")

// IsValidationError reports whether err belongs to the upload validation taxonomy.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFile) ||
		errors.Is(err, ErrNotAnImage) ||
		errors.Is(err, ErrTooLarge)
}
