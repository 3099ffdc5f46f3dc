package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArgument  = errors.New("missing argument")
	ErrInvalidFlag      = errors.New("invalid flag value")
	ErrReportFormat     = errors.New("unsupported report format")
	ErrWriteReport      = errors.New("writing report failed")
	ErrGateFailed       = errors.New("quality gate failed")
	ErrValidationFailed = errors.New("guardrail validation failed")
)

// gateError is a gate or validation failure. It unwraps to its sentinel and
// carries the guardrail error count for hints.
type gateError struct {
	sentinel        error
	detail          string
	guardrailErrors int
}

func (e *gateError) Error() string {
	return e.sentinel.Error() + ": " + e.detail
}

func (e *gateError) Unwrap() error {
	return e.sentinel
}
