package resources

import "errors"

// Sentinel errors for resource indexing and flashcard parsing.
var (
	ErrResourceRoot      = errors.New("resource root is not a directory")
	ErrFlashcardHeader   = errors.New("flashcard table header must name front and back columns")
	ErrFlashcardFormat   = errors.New("malformed flashcard table")
	ErrFlashcardTooLarge = errors.New("flashcard table too large")
)
