// Package score computes a reproducible quality score for a compiled unit.
//
// Score gathers Signals from the Document, the rendered markup and the
// guardrail Report, then rates six dimensions from 0 to 5 with one pure
// function each. It performs no I/O.
package score
