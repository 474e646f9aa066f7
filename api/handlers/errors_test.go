package handlers

import (
	"fmt"
	"testing"

	"headmeta-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
			expectedInMsg:  "",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "html", Message: "must not be empty"},
			expectedStatus: 400,
			expectedInMsg:  "html",
		},
		{
			name:           "InvalidDocumentError returns 422",
			input:          &errors.InvalidDocumentError{Reason: "document has no head element"},
			expectedStatus: 422,
			expectedInMsg:  "no head element",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("something broke"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
		{
			name:           "wrapped InvalidDocumentError still returns 422",
			input:          errors.WrapError(&errors.InvalidDocumentError{Reason: "parse failure"}, "render"),
			expectedStatus: 422,
			expectedInMsg:  "parse failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			statusErr, ok := result.(huma.StatusError)
			assert.True(t, ok, "expected a huma.StatusError")
			assert.Equal(t, tt.expectedStatus, statusErr.GetStatus())
			assert.Contains(t, result.Error(), tt.expectedInMsg)
		})
	}
}
