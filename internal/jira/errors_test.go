package jira

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeForStatus(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   ErrorType
	}{
		{statusCode: 401, expected: ErrorTypeAuthentication},
		{statusCode: 403, expected: ErrorTypeAuthentication},
		{statusCode: 404, expected: ErrorTypeNotFound},
		{statusCode: 429, expected: ErrorTypeRateLimit},
		{statusCode: 500, expected: ErrorTypeServerError},
		{statusCode: 503, expected: ErrorTypeServerError},
		{statusCode: 400, expected: ErrorTypeUnknown},
		{statusCode: 405, expected: ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.statusCode), func(t *testing.T) {
			assert.Equal(t, tt.expected, errorTypeForStatus(tt.statusCode))
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{
		Type:       ErrorTypeNotFound,
		StatusCode: 404,
		Message:    "Issue does not exist",
		Endpoint:   "/issue/ABC-1",
	}
	assert.Contains(t, err.Error(), "NotFound")
	assert.Contains(t, err.Error(), "/issue/ABC-1")
	assert.Contains(t, err.Error(), "404")

	withoutEndpoint := &APIError{Type: ErrorTypeServerError, StatusCode: 500, Message: "boom"}
	assert.Contains(t, withoutEndpoint.Error(), "ServerError")
}

func TestErrorPredicates(t *testing.T) {
	authErr := &APIError{Type: ErrorTypeAuthentication, StatusCode: 401}
	notFoundErr := &APIError{Type: ErrorTypeNotFound, StatusCode: 404}
	rateLimitErr := &APIError{Type: ErrorTypeRateLimit, StatusCode: 429}

	assert.True(t, IsAuthenticationError(authErr))
	assert.False(t, IsAuthenticationError(notFoundErr))

	assert.True(t, IsNotFoundError(notFoundErr))
	assert.False(t, IsNotFoundError(authErr))

	assert.True(t, IsRateLimitError(rateLimitErr))
	assert.False(t, IsRateLimitError(authErr))

	// ラップされたエラーも判定できる
	wrapped := fmt.Errorf("search failed: %w", authErr)
	assert.True(t, IsAuthenticationError(wrapped))

	// APIError以外は常にfalse
	assert.False(t, IsAuthenticationError(errors.New("plain error")))
	assert.False(t, IsAuthenticationError(nil))
}
