package render

import "errors"

// Sentinel errors for rendering.
var (
	ErrNilDocument     = errors.New("document is nil")
	ErrInvalidTemplate = errors.New("invalid page template")
	ErrTemplateExecute = errors.New("page template execution failed")
	ErrUnknownBlock    = errors.New("unknown block kind")
	ErrCopyResource    = errors.New("resource copy failed")
)
