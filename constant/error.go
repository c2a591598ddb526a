package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrValidation
	ErrStoreUnavailable
	ErrAccountSuspended
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "error internal",
	ErrNotFound:         "data not found",
	ErrInvalidRequest:   "invalid request",
	ErrUnauthorize:      "unauthorize request",
	ErrForbidden:        "forbidden",
	ErrCredentialExists: "email or phone already exists",
	ErrInvalidPassword:  "password invalid",
	ErrValidation:       "validation failed",
	ErrStoreUnavailable: "store unavailable",
	ErrAccountSuspended: "account suspended",
	ErrTooManyRequests:  "too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnauthorize:      http.StatusUnauthorized,
	ErrForbidden:        http.StatusForbidden,
	ErrCredentialExists: http.StatusBadRequest,
	ErrInvalidPassword:  http.StatusBadRequest,
	ErrValidation:       http.StatusBadRequest,
	ErrStoreUnavailable: http.StatusServiceUnavailable,
	ErrAccountSuspended: http.StatusForbidden,
	ErrTooManyRequests:  http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrUnauthorize:      "0004",
	ErrForbidden:        "0005",
	ErrCredentialExists: "0006",
	ErrInvalidPassword:  "0007",
	ErrValidation:       "0008",
	ErrStoreUnavailable: "0009",
	ErrAccountSuspended: "0010",
	ErrTooManyRequests:  "0011",
}
