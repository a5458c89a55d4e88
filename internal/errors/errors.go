package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvoiceNotFound is returned when an invoice lookup matches no row.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvalidCredentials is returned for any failed sign-in attempt.
	ErrInvalidCredentials = errors.New("Invalid credentials.")
	// ErrDeleteInvoice is returned when the store fails to delete an invoice.
	ErrDeleteInvoice = errors.New("Failed to delete invoice.")
	// ErrFetchFailed matches every *FetchError through errors.Is.
	ErrFetchFailed = errors.New("fetch failed")
)

// FetchError is the translated form of a failed read. It carries no storage detail.
type FetchError struct {
	Resource string
}

// NewFetchError builds the error reported when reading resource fails.
func NewFetchError(resource string) *FetchError {
	return &FetchError{Resource: resource}
}

func (e *FetchError) Error() string {
	return "Failed to fetch " + e.Resource + "."
}

// Is reports whether target is ErrFetchFailed.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvoiceNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "INVOICE_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrDeleteInvoice):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "DELETE_FAILED")
	case errors.Is(err, ErrFetchFailed):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "FETCH_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
