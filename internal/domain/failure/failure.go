// Package failure defines the typed errors surfaced by the trust core.
//
// Use cases return *Error values built with New or Wrap; adapters return the
// infrastructure sentinels below and let the use case translate them.
package failure

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeNotFound               Code = "not_found"
	CodeUnauthorized           Code = "unauthorized"
	CodeInvalidStateTransition Code = "invalid_state_transition"
	CodeValidation             Code = "validation_error"
	CodeExternalGateway        Code = "external_gateway_error"
	CodeConcurrencyConflict    Code = "concurrency_conflict"
	CodeConflict               Code = "conflict"
	CodeRiskBlocked            Code = "risk_blocked"
	CodeInternal               Code = "internal"
)

// Infrastructure facts returned by repositories.
var (
	ErrNotFound        = errors.New("not found")
	ErrConditionFailed = errors.New("condition failed")
	ErrAlreadyExists   = errors.New("already exists")
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error with the same code, so errors.Is(err, failure.NotFound("")) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the outermost *Error in the chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

func HasCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

// Retryable reports whether a caller may retry the operation with the same idempotency key.
func Retryable(err error) bool {
	switch CodeOf(err) {
	case CodeExternalGateway, CodeConcurrencyConflict:
		return true
	default:
		return false
	}
}

func NotFound(message string) *Error     { return New(CodeNotFound, message) }
func Unauthorized(message string) *Error { return New(CodeUnauthorized, message) }
func Validation(message string) *Error   { return New(CodeValidation, message) }
func Conflict(message string) *Error     { return New(CodeConflict, message) }
func RiskBlocked(message string) *Error  { return New(CodeRiskBlocked, message) }
func ConcurrencyConflict(message string) *Error {
	return New(CodeConcurrencyConflict, message)
}

func InvalidTransition(entity, from, to string) *Error {
	return Newf(CodeInvalidStateTransition, "%s cannot move from %s to %s", entity, from, to)
}

func Gateway(err error, operation string) *Error {
	return Wrap(err, CodeExternalGateway, "payment gateway "+operation+" failed")
}
