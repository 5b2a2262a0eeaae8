package handlers

import (
	"context"
	"fmt"
	"testing"

	"newsagg-api/core/errors"

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
			name:           "InterruptedError returns 503",
			input:          &errors.InterruptedError{Cause: context.Canceled},
			expectedStatus: 503,
			expectedInMsg:  "aggregation interrupted",
		},
		{
			name:           "wrapped InterruptedError returns 503",
			input:          fmt.Errorf("handler: %w", &errors.InterruptedError{Cause: context.DeadlineExceeded}),
			expectedStatus: 503,
			expectedInMsg:  "aggregation interrupted",
		},
		{
			name:           "RejectedError returns 503",
			input:          &errors.RejectedError{Target: "bbc", Cause: fmt.Errorf("job queue is full")},
			expectedStatus: 503,
			expectedInMsg:  "aggregation unavailable",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "url", Message: "invalid format"},
			expectedStatus: 400,
			expectedInMsg:  "url': invalid format",
		},
		{
			name:           "ExternalAPIError with 500 returns 503",
			input:          &errors.ExternalAPIError{StatusCode: 500, Message: "server error"},
			expectedStatus: 503,
			expectedInMsg:  "External service error",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &errors.ExternalAPIError{StatusCode: 429, Message: "rate limited"},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited by external service",
		},
		{
			name:           "ExternalAPIError with 401 returns 400",
			input:          &errors.ExternalAPIError{StatusCode: 401, Message: "apiKeyInvalid"},
			expectedStatus: 400,
			expectedInMsg:  "External service request error",
		},
		{
			name:           "ExternalAPIError with unexpected status returns 500",
			input:          &errors.ExternalAPIError{StatusCode: 200, Message: "ok but error"},
			expectedStatus: 500,
			expectedInMsg:  "Unexpected external service response",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			assert.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}
