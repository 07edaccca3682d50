package dto

import "net/http"

// Transport-level error codes. Domain errors carry their own codes;
// these cover failures that never reach the application layer.
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeTokenExpired  = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid  = "INVALID_TOKEN"
	ErrCodeTokenRevoked  = "TOKEN_REVOKED"
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeTooManyOpen   = "TOO_MANY_REQUESTS"
	ErrCodePayloadLimit  = "PAYLOAD_TOO_LARGE"
	ErrCodeAdminRequired = "ADMIN_REQUIRED"
)

// errorCodeHTTPStatus maps every error code the API emits, domain and
// transport alike, to its HTTP status. Unknown codes fall back to 500
// so a new domain error can never leak as a false success.
var errorCodeHTTPStatus = map[string]int{
	// malformed or invalid input
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeValidation:        http.StatusBadRequest,
	"INVALID_INPUT":          http.StatusBadRequest,
	"INVALID_EMAIL":          http.StatusBadRequest,
	"INVALID_PASSWORD":       http.StatusBadRequest,
	"INVALID_PHONE":          http.StatusBadRequest,
	"INVALID_PINCODE":        http.StatusBadRequest,
	"INVALID_PRICE":          http.StatusBadRequest,
	"INVALID_PRODUCT_NAME":   http.StatusBadRequest,
	"INVALID_CATEGORY":       http.StatusBadRequest,
	"INVALID_QUANTITY":       http.StatusBadRequest,
	"INVALID_REASON":         http.StatusBadRequest,
	"INVALID_PAYMENT_METHOD": http.StatusBadRequest,
	"INVALID_VARIANT":        http.StatusBadRequest,
	"SIZE_REQUIRED":          http.StatusBadRequest,

	// authn and authz
	ErrCodeUnauthorized:  http.StatusUnauthorized,
	ErrCodeTokenExpired:  http.StatusUnauthorized,
	ErrCodeTokenInvalid:  http.StatusUnauthorized,
	ErrCodeTokenRevoked:  http.StatusUnauthorized,
	ErrCodeForbidden:     http.StatusForbidden,
	ErrCodeAdminRequired: http.StatusForbidden,

	// missing and conflicting resources
	ErrCodeNotFound:        http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// business rules the request cannot satisfy
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"EMPTY_CART":           http.StatusUnprocessableEntity,
	"EMPTY_ORDER":          http.StatusUnprocessableEntity,
	"OUT_OF_STOCK":         http.StatusUnprocessableEntity,
	"PRODUCT_UNAVAILABLE":  http.StatusUnprocessableEntity,
	"RETURN_EXISTS":        http.StatusUnprocessableEntity,
	"RETURN_WINDOW_CLOSED": http.StatusUnprocessableEntity,

	// server faults
	ErrCodeInternal:       http.StatusInternalServerError,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,

	ErrCodeTooManyOpen:  http.StatusTooManyRequests,
	ErrCodePayloadLimit: http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the HTTP status for an error code,
// defaulting to 500 for codes with no mapping.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
