package dto

import (
	"errors"
	"net/http"

	"github.com/financebook/backend/internal/domain/shared"
)

// Error code constants returned in response envelopes
const (
	// ErrCodeValidation is used for business-rule violations
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeConfiguration is used for unknown tables or strategy names
	ErrCodeConfiguration = "ERR_CONFIGURATION"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeSerialization is used for malformed documents
	ErrCodeSerialization = "ERR_SERIALIZATION"
	// ErrCodeStorage is used when the backing store fails
	ErrCodeStorage = "ERR_STORAGE"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInternal is used for unclassified failures
	ErrCodeInternal = "ERR_INTERNAL"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:    http.StatusBadRequest,
	ErrCodeConfiguration: http.StatusBadRequest,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeSerialization: http.StatusUnprocessableEntity,
	ErrCodeStorage:       http.StatusBadGateway,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeInternal:      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ClassifyError maps a domain error to its response code. The order checks
// the most specific sentinels first; unclassified errors become internal.
func ClassifyError(err error) string {
	switch {
	case errors.Is(err, shared.ErrValidation):
		return ErrCodeValidation
	case errors.Is(err, shared.ErrConfiguration):
		return ErrCodeConfiguration
	case errors.Is(err, shared.ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, shared.ErrSerialization):
		return ErrCodeSerialization
	case errors.Is(err, shared.ErrStorage):
		return ErrCodeStorage
	default:
		return ErrCodeInternal
	}
}
