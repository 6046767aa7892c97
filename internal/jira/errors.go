package jira

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of Jira API error
type ErrorType int

const (
	// ErrorTypeAuthentication indicates authentication failure (401/403)
	ErrorTypeAuthentication ErrorType = iota
	// ErrorTypeNotFound indicates resource not found (404)
	ErrorTypeNotFound
	// ErrorTypeRateLimit indicates rate limit exceeded (429)
	ErrorTypeRateLimit
	// ErrorTypeServerError indicates server error (5xx)
	ErrorTypeServerError
	// ErrorTypeUnknown indicates unknown error type
	ErrorTypeUnknown
)

// String returns the string representation of the error type
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeAuthentication:
		return "Authentication"
	case ErrorTypeNotFound:
		return "NotFound"
	case ErrorTypeRateLimit:
		return "RateLimit"
	case ErrorTypeServerError:
		return "ServerError"
	default:
		return "Unknown"
	}
}

// APIError represents a structured Jira API error
type APIError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Endpoint   string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("Jira API error [%s] %s: %s (status %d)", e.Type, e.Endpoint, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("Jira API error [%s]: %s (status %d)", e.Type, e.Message, e.StatusCode)
}

// errorTypeForStatus maps an HTTP status code to an ErrorType
func errorTypeForStatus(statusCode int) ErrorType {
	switch {
	case statusCode == 401 || statusCode == 403:
		return ErrorTypeAuthentication
	case statusCode == 404:
		return ErrorTypeNotFound
	case statusCode == 429:
		return ErrorTypeRateLimit
	case statusCode >= 500:
		return ErrorTypeServerError
	default:
		return ErrorTypeUnknown
	}
}

// IsAuthenticationError checks if the error is an authentication error
func IsAuthenticationError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeAuthentication
	}
	return false
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeNotFound
	}
	return false
}

// IsRateLimitError checks if the error is a rate limit error
func IsRateLimitError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeRateLimit
	}
	return false
}
