package lava

import (
	"errors"

	"github.com/1ort/lava-go/internal/types"
)

// Re-export shared SDK errors so callers compare against a single symbol.
type (
	// APIError is a business failure reported by the service inside a
	// structurally successful response.
	APIError = types.APIError
	// TransportError is a failure of the HTTP exchange itself, including a
	// response body that is not valid JSON.
	TransportError = types.TransportError
	// ValidationError is one field that failed local validation.
	ValidationError = types.ValidationError
	// ValidationErrors collects every failed field of one request; the
	// request made zero network calls.
	ValidationErrors = types.ValidationErrors
)

// IsAPIError reports whether err is a remote business failure.
func IsAPIError(err error) bool {
	var target *APIError
	return errors.As(err, &target)
}

// IsTransportError reports whether err is an HTTP or decoding failure.
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsValidationError reports whether err is a local pre-network validation
// failure.
func IsValidationError(err error) bool {
	var target ValidationErrors
	return errors.As(err, &target)
}
