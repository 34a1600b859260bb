package csob

import (
	"errors"
	"fmt"
)

var (
	ErrMissingResultCode    = errors.New("missing resultCode")
	ErrInvalidSignature     = errors.New("unable to verify signature")
	ErrMissingLocation      = errors.New("missing location header")
	ErrUnsupportedExtension = errors.New("unsupported response extension")
)

// StatusError is returned when the gateway answers with an unexpected HTTP status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http response: %d", e.StatusCode)
}

// ResultError is returned when a verified response carries a failure result code.
type ResultError struct {
	Code    int
	Message string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("reason: %s (resultCode: %d)", e.Message, e.Code)
}

// IsResultCode reports whether err is a ResultError with the given code.
func IsResultCode(err error, code int) bool {
	var resultErr *ResultError
	return errors.As(err, &resultErr) && resultErr.Code == code
}
