package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/balagh-app/vision-api/internal/domain/analysis"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     error
	}{
		{"valid png", "image/png", 2 * 1024 * 1024, nil},
		{"valid jpeg at exact cap", "image/jpeg", analysis.MaxUploadBytes, nil},
		{"one byte over cap", "image/png", analysis.MaxUploadBytes + 1, analysis.ErrTooLarge},
		{"absent file", "", 0, analysis.ErrMissingFile},
		{"text file", "text/plain", 128, analysis.ErrNotAnImage},
		{"pdf", "application/pdf", 1024, analysis.ErrNotAnImage},
		{"empty content type", "", 1024, analysis.ErrNotAnImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := analysis.ValidateUpload(tt.contentType, tt.size)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUploadOrder(t *testing.T) {
	// first failure wins: an oversized non-image is reported as not-an-image
	err := analysis.ValidateUpload("text/plain", analysis.MaxUploadBytes+1)
	assert.ErrorIs(t, err, analysis.ErrNotAnImage)
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, analysis.IsValidationError(analysis.ErrMissingFile))
	assert.True(t, analysis.IsValidationError(analysis.ErrNotAnImage))
	assert.True(t, analysis.IsValidationError(analysis.ErrTooLarge))
	assert.False(t, analysis.IsValidationError(analysis.ErrInferenceUnavailable))
	assert.False(t, analysis.IsValidationError(nil))
}
