package main

import (
	"errors"
	"os"

	unitc "github.com/alnah/go-unitc"
	"github.com/alnah/go-unitc/internal/config"
	"github.com/alnah/go-unitc/internal/guardrail"
)

// Exit codes for the unitc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Build succeeded and passed the gate
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or unit input
	ExitIO      = 3 // Source not found, output not writable
	ExitGate    = 4 // Gate, validation or parity failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Gate failures (exit 4)
	if errors.Is(err, ErrGateFailed) ||
		errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, unitc.ErrParityMismatch) {
		return ExitGate
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, unitc.ErrSourceNotFound) ||
		errors.Is(err, unitc.ErrOutputWrite) ||
		errors.Is(err, guardrail.ErrOutputDir) ||
		errors.Is(err, guardrail.ErrReadFile) ||
		errors.Is(err, ErrWriteReport) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, unitc.ErrInvalidInput) ||
		errors.Is(err, unitc.ErrInvalidMode) ||
		errors.Is(err, unitc.ErrInvalidAssetPath) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingArgument) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrReportFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
