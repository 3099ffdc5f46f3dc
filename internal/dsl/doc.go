// Package dsl parses the unit authoring language into sections, blocks and
// a navigation outline.
//
// The language is Markdown plus two line-anchored extensions:
//
//	## Section title
//	### Subheading title
//
//	:::info | :::warning | :::example
//	Markdown body
//	:::
//
//	:::accordion
//	- Panel title: Panel body
//	:::
//
// Parsing never fails. Malformed directives degrade to a best-effort block,
// an unterminated directive runs to the end of input, and an input without
// any content still yields one "Overview" section.
package dsl
