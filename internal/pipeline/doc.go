// Package pipeline holds the markup stages around the unit compiler:
//   - Markdown preprocessing (line normalization)
//   - Markdown to HTML fragment conversion via Goldmark, with chroma
//     syntax highlighting emitted as prefixed CSS classes
//   - Sandbox banner injection for preview builds
//   - Normalization that strips sandbox-only markup before parity hashing
//
// The parser calls into the converter for every markdown run and directive
// body; the converter never fails the compile, it degrades to escaped text.
package pipeline
