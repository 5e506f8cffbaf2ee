package catalogsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents a non-success envelope returned by the catalog
// service. It implements the error interface.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int

	// Message is the human-readable message from the error envelope.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalogsdk: %d %s", e.StatusCode, e.Message)
}

// IsAuthError reports whether the error is an authentication rejection.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// decodeError builds an APIError from a failed response body.
func decodeError(resp *http.Response) error {
	var envelope ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
}
