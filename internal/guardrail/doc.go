// Package guardrail statically checks a rendered output directory against
// platform constraints.
//
// It works on bytes on disk only and never sees the Document, so it can
// validate hand-written output as well as compiler output. Checks:
//
//   - class tokens in markup must be declared by a stylesheet in the output
//     (highlighting prefixes hl- and language- are exempt)
//   - no inline style attributes or style elements
//   - same-origin src/href references must resolve to an existing file
//     inside the output directory
//   - absolute http(s) URLs in markup, stylesheets and scripts must match
//     an allowlist prefix
//   - oversized files and an oversized total produce warnings
package guardrail
