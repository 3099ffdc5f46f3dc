// Package resources enumerates a unit's resource tree and parses its
// flashcard table.
//
// Both inputs are optional: a missing resource root or flashcard file
// yields an empty list rather than an error.
package resources
