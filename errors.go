package unitc

import "errors"

// Sentinel errors for library operations.
var (
	ErrSourceNotFound = errors.New("unit source not found")
	ErrInvalidInput   = errors.New("invalid unit input")
	ErrInvalidMode    = errors.New("invalid build mode")
	ErrOutputWrite    = errors.New("writing output failed")
	ErrParityMismatch = errors.New("preview and export outputs differ")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
