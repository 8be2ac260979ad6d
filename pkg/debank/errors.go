package debank

import (
	"errors"
	"strconv"
)

// Code is a stable, machine-readable identifier of a DeBank API failure.
type Code string

const (
	CodeInvalidParams       Code = "INVALID_PARAMS"
	CodeInvalidAccessKey    Code = "INVALID_ACCESS_KEY"
	CodeCapacityLimit       Code = "CAPACITY_LIMIT"
	CodeRateLimit           Code = "RATE_LIMIT"
	CodeInternalServerError Code = "INTERNAL_SERVER_ERROR"
	CodeUnknownStatus       Code = "UNKNOWN_STATUS"
)

// Error is returned for every non-200 response from the API.
type Error struct {
	Code    Code
	Message string
	// Status is the HTTP status code the API responded with.
	Status int
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Is reports whether target is an *Error with the same code. A target with an
// empty code matches any *Error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// Sentinels for errors.Is checks against API failures.
var (
	ErrInvalidParams       = &Error{Code: CodeInvalidParams}
	ErrInvalidAccessKey    = &Error{Code: CodeInvalidAccessKey}
	ErrCapacityLimit       = &Error{Code: CodeCapacityLimit}
	ErrRateLimit           = &Error{Code: CodeRateLimit}
	ErrInternalServerError = &Error{Code: CodeInternalServerError}
	ErrUnknownStatus       = &Error{Code: CodeUnknownStatus}
)

var (
	// ErrOperationNotExist is returned by group roots that have no upstream operation.
	ErrOperationNotExist = errors.New("API does not exists")
	// ErrMissingAccessKey is returned by New when the access key is empty.
	ErrMissingAccessKey = errors.New("debank: access key is required")
	// ErrMalformedResponse wraps JSON decoding failures of a 200 response.
	ErrMalformedResponse = errors.New("debank: malformed response body")
	// ErrInvalidPath is returned when a request path does not start with "/".
	ErrInvalidPath = errors.New("debank: path must start with /")
	// ErrPayloadStyle is returned when a call carries a payload its parameter style does not allow.
	ErrPayloadStyle = errors.New("debank: payload does not match parameter style")
)

type statusError struct {
	code    Code
	message string
}

var statusErrors = map[int]statusError{
	400: {CodeInvalidParams, "Invalid params or body"},
	401: {CodeInvalidAccessKey, "You must authenticate your request with an access key"},
	403: {CodeCapacityLimit, "You have hit your capacity limit"},
	429: {CodeRateLimit, "You have exceeded our ratelimit for API"},
	500: {CodeInternalServerError, "We are unable to process your request right now"},
}

// errorForStatus translates a non-200 HTTP status into a structured error.
func errorForStatus(status int) *Error {
	if se, ok := statusErrors[status]; ok {
		return &Error{Code: se.code, Message: se.message, Status: status}
	}
	return &Error{
		Code:    CodeUnknownStatus,
		Message: "Unknown response status: " + strconv.Itoa(status),
		Status:  status,
	}
}
