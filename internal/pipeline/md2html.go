package pipeline

import (
	"bytes"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// HighlightClassPrefix prefixes every chroma token class (hl-chroma, hl-k, ...).
// The guardrail validator treats this prefix as externally styled.
const HighlightClassPrefix = "hl-"

// GoldmarkConverter renders Markdown fragments to HTML using goldmark (pure Go).
// Safe for concurrent use.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with tables, strikethrough,
// autolinks, task lists and class-based syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			// Alignment as attribute: style="text-align" would trip the inline-style guardrail
			extension.NewTable(extension.WithTableCellAlignMethod(extension.TableCellAlignAttribute)),
			extension.Strikethrough,
			extension.Linkify,
			extension.TaskList,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
					chromahtml.ClassPrefix(HighlightClassPrefix),
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
			// No WithUnsafe: raw HTML in authored content is omitted.
		),
	)
	return &GoldmarkConverter{md: md}
}

// RenderFragment converts Markdown to an HTML fragment.
// Empty or whitespace-only input yields "". A goldmark failure degrades to
// the escaped source in a paragraph instead of an error.
func (c *GoldmarkConverter) RenderFragment(src string) string {
	if isBlank(src) {
		return ""
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(convertHighlights(src)), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>\n"
	}
	return ConvertMarkPlaceholders(buf.String())
}

func isBlank(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}
