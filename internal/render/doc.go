// Package render serializes a unit.Document into a single static page and
// plans the copy of its resource files.
//
// Every interpolated string is escaped. The only unescaped content is the
// markup already produced for markdown runs, callout bodies and accordion
// panels. The mode only sets the page's data-unit-mode attribute; any
// preview decoration is added afterwards by the pipeline package.
package render
