package render

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alnah/go-unitc/internal/unit"
)

// renderSection renders one section card.
func renderSection(s unit.Section) (template.HTML, error) {
	var b strings.Builder
	b.WriteString(`<section class="unit-card" id="`)
	b.WriteString(html.EscapeString(s.ID))
	b.WriteString(`">` + "\n")
	b.WriteString(`<h2 class="unit-card-title">`)
	b.WriteString(html.EscapeString(s.Title))
	b.WriteString("</h2>\n")

	for _, blk := range s.Blocks {
		if err := renderBlock(&b, blk); err != nil {
			return "", fmt.Errorf("section %q: %w", s.ID, err)
		}
	}

	b.WriteString("</section>")
	// #nosec G203 -- text is escaped above; bodies are rendered markup
	return template.HTML(b.String()), nil
}

// renderBlock writes one block. Every Block variant has a case here.
func renderBlock(b *strings.Builder, blk unit.Block) error {
	switch v := blk.(type) {
	case unit.MarkdownRun:
		b.WriteString(`<div class="unit-prose">` + "\n")
		b.WriteString(strings.TrimRight(v.HTML, "\n"))
		b.WriteString("\n</div>\n")

	case unit.Subheading:
		fmt.Fprintf(b, "<h3 class=\"unit-subheading\" id=\"%s\">%s</h3>\n",
			html.EscapeString(v.ID), html.EscapeString(v.Title))

	case unit.Callout:
		variant := v.Variant
		if variant != unit.CalloutWarning && variant != unit.CalloutExample {
			variant = unit.CalloutInfo
		}
		fmt.Fprintf(b, "<aside class=\"callout callout-%s\" role=\"note\">\n", variant)
		fmt.Fprintf(b, "<strong class=\"callout-label\">%s</strong>\n", html.EscapeString(variant.Label()))
		b.WriteString(`<div class="callout-body unit-prose">` + "\n")
		b.WriteString(strings.TrimRight(v.HTML, "\n"))
		b.WriteString("\n</div>\n</aside>\n")

	case unit.Accordion:
		fmt.Fprintf(b, "<div class=\"unit-accordion\" id=\"%s\">\n", html.EscapeString(v.ID))
		for _, item := range v.Items {
			fmt.Fprintf(b, "<details class=\"unit-accordion-item unit-interactive\" id=\"%s\">\n", html.EscapeString(item.ID))
			fmt.Fprintf(b, "<summary class=\"unit-accordion-title\">%s</summary>\n", html.EscapeString(item.Title))
			b.WriteString(`<div class="unit-accordion-body unit-prose">` + "\n")
			b.WriteString(strings.TrimRight(item.HTML, "\n"))
			b.WriteString("\n</div>\n</details>\n")
		}
		b.WriteString("</div>\n")

	default:
		return fmt.Errorf("%w: %T", ErrUnknownBlock, blk)
	}
	return nil
}
