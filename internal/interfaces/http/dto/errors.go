package dto

import "net/http"

// Error codes used by the API. Domain errors carry most of these codes
// already; the rest are produced by the HTTP layer itself.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,

	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,
	"FORBIDDEN":      http.StatusForbidden,

	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_QUANTITY":     http.StatusBadRequest,
	"INVALID_PRICE":        http.StatusBadRequest,
	"INVALID_STOCK":        http.StatusBadRequest,
	"INVALID_STORE_NAME":   http.StatusBadRequest,
	"INVALID_PRODUCT_NAME": http.StatusBadRequest,
	"INVALID_ADDRESS":      http.StatusBadRequest,
	"INVALID_STATUS":       http.StatusBadRequest,
	"INVALID_USER":         http.StatusBadRequest,
	"INVALID_STORE":        http.StatusBadRequest,

	// Business rule violations map to 422
	"INVALID_STATE":      http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK": http.StatusUnprocessableEntity,
	"EMPTY_CART":         http.StatusUnprocessableEntity,
	"MISSING_ADDRESS":    http.StatusUnprocessableEntity,

	// Import file problems
	"UNSUPPORTED_FORMAT": http.StatusBadRequest,
	"ENCODING_ERROR":     http.StatusBadRequest,
	"EMPTY_FILE":         http.StatusBadRequest,
	"MISSING_HEADER":     http.StatusBadRequest,
	"SHEET_NOT_FOUND":    http.StatusBadRequest,
	"FILE_TOO_LARGE":     http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting
// to 500 for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
