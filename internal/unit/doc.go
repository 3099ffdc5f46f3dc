// Package unit defines the Unit Document: the immutable, assembled record
// that flows from the parser and resource indexer into the renderer and the
// quality scorer.
//
// # Block Model
//
// Block is a closed sum type. The four variants are MarkdownRun, Subheading,
// Callout and Accordion; the unexported marker method keeps the set closed to
// this package, so consumers switch over a known list of types:
//
//	switch b := block.(type) {
//	case unit.MarkdownRun:
//	case unit.Subheading:
//	case unit.Callout:
//	case unit.Accordion:
//	}
//
// # Identifiers
//
// Section, subheading and accordion ids share one namespace per Document.
// UniqueID threads the set of used ids explicitly through the parse so no
// hidden counter survives between compilations.
package unit
