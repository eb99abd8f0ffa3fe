package domain

import (
	"errors"
	"net/http"
	"slices"
	"strings"
)

// Error codes for client-side failures.
const (
	CodeNotFound   = 1
	CodeValidation = 2
	CodeTransport  = 3
	CodeDomain     = 4
	CodeInternal   = 5
)

// AppError represents a failure surfaced to callers of the data layer.
//
// Errors holds the user-displayable message list (server errors verbatim for
// domain failures). Fields holds per-field messages for validation failures.
// Status is the HTTP status observed by the transport, when there was one.
type AppError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  []string          `json:"errors,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Status  int               `json:"-"`
	Err     error             `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined errors.
//
// Use the helper predicates (IsValidation, IsTransport, ...) rather than
// errors.Is: they compare codes, so freshly constructed errors match too.
var (
	ErrNotFound   = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrValidation = &AppError{Code: CodeValidation, Message: "validation error"}
	ErrInternal   = &AppError{Code: CodeInternal, Message: "internal error"}
)

// NewAppError creates a new AppError with the given code, message, and wrapped error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewTransportError creates a TransportFailure. status is 0 when no HTTP
// response was received.
func NewTransportError(message string, status int, err error) *AppError {
	return &AppError{
		Code:    CodeTransport,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// NewDomainError creates a DomainOperationFailed carrying the server's error
// list as sent. When errs is empty the fallback message is used instead.
func NewDomainError(errs []string, fallback string) *AppError {
	if len(errs) == 0 {
		return &AppError{Code: CodeDomain, Message: fallback, Errors: []string{fallback}}
	}
	return &AppError{
		Code:    CodeDomain,
		Message: strings.Join(errs, ", "),
		Errors:  slices.Clone(errs),
	}
}

// NewValidationError creates a ValidationFailure with per-field messages.
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "validation error",
		Fields:  fields,
	}
}

// WithDisplayMessage replaces the user-facing message of err with msg while
// keeping its code and HTTP status, so IsTransport and IsDomainFailure still
// tell the origins apart. The original error stays reachable via Unwrap.
func WithDisplayMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	out := &AppError{Code: CodeInternal, Message: msg, Errors: []string{msg}, Err: err}
	var appErr *AppError
	if errors.As(err, &appErr) {
		out.Code = appErr.Code
		out.Status = appErr.Status
	}
	return out
}

// IsNotFound reports whether err is a not-found failure, either a client-side
// not-found error or a transport failure carrying HTTP 404.
func IsNotFound(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == CodeNotFound || (appErr.Code == CodeTransport && appErr.Status == http.StatusNotFound)
}

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsTransport reports whether err is or wraps an AppError with CodeTransport.
func IsTransport(err error) bool {
	return hasCode(err, CodeTransport)
}

// IsDomainFailure reports whether err is or wraps an AppError with CodeDomain.
func IsDomainFailure(err error) bool {
	return hasCode(err, CodeDomain)
}

// IsInternal reports whether err is or wraps an AppError with CodeInternal.
func IsInternal(err error) bool {
	return hasCode(err, CodeInternal)
}

// hasCode checks whether err is or wraps an *AppError with the given code.
func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Messages returns the user-displayable message list for err.
//
// Domain failures yield the server's messages, validation failures yield one
// "field: rule" entry per field, and everything else yields a single message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return []string{err.Error()}
	}
	switch {
	case len(appErr.Errors) > 0:
		return append([]string(nil), appErr.Errors...)
	case len(appErr.Fields) > 0:
		keys := make([]string, 0, len(appErr.Fields))
		for k := range appErr.Fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		msgs := make([]string, 0, len(keys))
		for _, k := range keys {
			msgs = append(msgs, k+": "+appErr.Fields[k])
		}
		return msgs
	default:
		return []string{appErr.Message}
	}
}

// HTTPStatusCode maps an error to the HTTP status the view surface replies with.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeNotFound:
			return http.StatusNotFound
		case CodeValidation:
			return http.StatusBadRequest
		case CodeDomain:
			return http.StatusUnprocessableEntity
		case CodeTransport:
			if appErr.Status == http.StatusNotFound {
				return http.StatusNotFound
			}
			return http.StatusBadGateway
		case CodeInternal:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
