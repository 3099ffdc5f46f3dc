package guardrail

import "errors"

// Sentinel errors for validation.
var (
	ErrOutputDir = errors.New("output directory is not readable")
	ErrReadFile  = errors.New("output file is not readable")
	ErrParseHTML = errors.New("markup could not be tokenized")
)
