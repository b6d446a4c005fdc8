package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrScanNotFound indicates no stored scan has the requested ID
type ErrScanNotFound struct {
	ScanID uuid.UUID
}

func (e *ErrScanNotFound) Error() string {
	return fmt.Sprintf("scan not found: %s", e.ScanID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ErrAINotConfigured indicates the AI scan endpoint was called without an
// API key configured
type ErrAINotConfigured struct{}

func (e *ErrAINotConfigured) Error() string {
	return "AI analysis is not configured on this server"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrScanNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrAINotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
