package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/meetoza/resume-analyzer/internal/ingestion"
)

// ErrMissingField indicates a required request field was absent.
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		missingField *ErrMissingField
		validation   *ErrValidation
		unsupported  *ingestion.UnsupportedFormatError
		extraction   *ingestion.ExtractionError
		fetch        *ingestion.FetchError
	)
	switch {
	case errors.As(err, &missingField), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
