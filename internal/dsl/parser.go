package dsl

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-unitc/internal/unit"
)

// MarkdownRenderer turns a Markdown fragment into opaque HTML.
type MarkdownRenderer interface {
	RenderFragment(src string) string
}

// DirectiveKind is the tag following ::: on an opening directive line.
type DirectiveKind string

// Directive kinds.
const (
	DirectiveInfo      DirectiveKind = "info"
	DirectiveWarning   DirectiveKind = "warning"
	DirectiveExample   DirectiveKind = "example"
	DirectiveAccordion DirectiveKind = "accordion"
)

// fallbackItemTitle titles the single panel of a non-conforming accordion.
const fallbackItemTitle = "Details"

var (
	sectionPattern    = regexp.MustCompile(`^ {0,3}##[ \t]+(.+?)(?:[ \t]+#+)?[ \t]*$`)
	subheadingPattern = regexp.MustCompile(`^ {0,3}###[ \t]+(.+?)(?:[ \t]+#+)?[ \t]*$`)
	directivePattern  = regexp.MustCompile(`^:::[ \t]*(info|warning|example|accordion)$`)
	accordionItem     = regexp.MustCompile(`^[-*][ \t]+(.+?):[ \t]+(.+)$`)
	fencePattern      = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
)

// closingMarker ends a directive body.
const closingMarker = ":::"

// Parse scans text line by line and returns the section list and nav outline.
// A nil renderer falls back to escaped plain paragraphs.
func Parse(text string, md MarkdownRenderer) unit.Content {
	if md == nil {
		md = PlainRenderer{}
	}

	p := &parser{md: md, used: unit.ReservedIDs()}
	p.current = unit.Section{Title: unit.DefaultSectionTitle}

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if p.fence != "" {
			p.buffer = append(p.buffer, line)
			if closesFence(line, p.fence) {
				p.fence = ""
			}
			continue
		}

		if fence := openingFence(line); fence != "" {
			p.fence = fence
			p.buffer = append(p.buffer, line)
			continue
		}

		if m := subheadingPattern.FindStringSubmatch(line); m != nil {
			p.flush()
			p.addSubheading(strings.TrimSpace(m[1]))
			continue
		}

		if m := sectionPattern.FindStringSubmatch(line); m != nil {
			p.closeSection()
			p.openSection(strings.TrimSpace(m[1]))
			continue
		}

		if kind, ok := directiveKind(line); ok {
			p.flush()
			body, end := collectBody(lines, i+1)
			p.addDirective(kind, body)
			i = end
			continue
		}

		p.buffer = append(p.buffer, line)
	}

	p.closeSection()

	if len(p.sections) == 0 {
		var id string
		id, p.used = unit.UniqueID(unit.Slugify(unit.DefaultSectionTitle), p.used)
		p.sections = append(p.sections, unit.Section{ID: id, Title: unit.DefaultSectionTitle})
	}

	return unit.Content{Sections: p.sections, Nav: buildNav(p.sections)}
}

// parser holds the scan state for one Parse call.
type parser struct {
	md       MarkdownRenderer
	used     unit.IDSet
	sections []unit.Section
	current  unit.Section
	buffer   []string
	fence    string
}

// sectionID returns the current section id, allocating it on first use.
func (p *parser) sectionID() string {
	if p.current.ID == "" {
		p.current.ID, p.used = unit.UniqueID(unit.Slugify(p.current.Title), p.used)
	}
	return p.current.ID
}

// openSection starts a section. Its id is claimed on the first block, so a
// heading that ends up empty never reserves an id.
func (p *parser) openSection(title string) {
	p.current = unit.Section{Title: title}
}

// closeSection flushes pending text and keeps the section if it has blocks.
func (p *parser) closeSection() {
	p.flush()
	if len(p.current.Blocks) > 0 {
		p.sections = append(p.sections, p.current)
	}
	p.current = unit.Section{}
}

func (p *parser) append(b unit.Block) {
	p.sectionID()
	p.current.Blocks = append(p.current.Blocks, b)
}

// flush emits buffered lines as one markdown run.
func (p *parser) flush() {
	if len(p.buffer) == 0 {
		return
	}
	src := strings.Join(p.buffer, "\n")
	p.buffer = p.buffer[:0]
	p.fence = ""

	if rendered := p.md.RenderFragment(src); strings.TrimSpace(rendered) != "" {
		p.append(unit.MarkdownRun{HTML: rendered})
	}
}

func (p *parser) addSubheading(title string) {
	base := p.sectionID() + "-" + unit.Slugify(title)
	var id string
	id, p.used = unit.UniqueID(base, p.used)
	p.append(unit.Subheading{ID: id, Title: title})
}

func (p *parser) addDirective(kind DirectiveKind, body string) {
	switch kind {
	case DirectiveAccordion:
		p.append(p.buildAccordion(body))
	default:
		p.append(unit.Callout{
			Variant: unit.CalloutKind(kind),
			HTML:    p.md.RenderFragment(body),
		})
	}
}

// buildAccordion turns "- Title: Body" lines into panels. Blank lines are
// skipped. Any other non-conforming line, or no conforming line at all,
// collapses the body into one "Details" panel wrapping the raw text.
func (p *parser) buildAccordion(body string) unit.Accordion {
	base := p.sectionID() + "-accordion"
	var accID string
	accID, p.used = unit.UniqueID(base, p.used)
	acc := unit.Accordion{ID: accID}

	conforming := true
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := accordionItem.FindStringSubmatch(line)
		if m == nil {
			conforming = false
			break
		}
		acc.Items = append(acc.Items, unit.AccordionItem{
			Title: strings.TrimSpace(m[1]),
			HTML:  p.md.RenderFragment(strings.TrimSpace(m[2])),
		})
	}

	if !conforming || len(acc.Items) == 0 {
		acc.Items = []unit.AccordionItem{{
			Title: fallbackItemTitle,
			HTML:  p.md.RenderFragment(body),
		}}
	}

	for i := range acc.Items {
		acc.Items[i].ID, p.used = unit.UniqueID(accID+"-"+strconv.Itoa(i+1), p.used)
	}
	return acc
}

// directiveKind reports whether line opens a known directive.
func directiveKind(line string) (DirectiveKind, bool) {
	m := directivePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return DirectiveKind(m[1]), true
}

// collectBody gathers lines from start up to the closing marker. It returns
// the body and the index of the closing line, or the last line when the
// directive is never closed.
func collectBody(lines []string, start int) (string, int) {
	fence := ""
	for j := start; j < len(lines); j++ {
		line := lines[j]
		if fence != "" {
			if closesFence(line, fence) {
				fence = ""
			}
			continue
		}
		if f := openingFence(line); f != "" {
			fence = f
			continue
		}
		if strings.TrimSpace(line) == closingMarker {
			return strings.Join(lines[start:j], "\n"), j
		}
	}
	if start >= len(lines) {
		return "", len(lines) - 1
	}
	return strings.Join(lines[start:], "\n"), len(lines) - 1
}

// openingFence returns the fence marker (``` or ~~~ run) opening a code block.
func openingFence(line string) string {
	m := fencePattern.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

// closesFence reports whether line closes a block opened with fence.
func closesFence(line, fence string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, fence) {
		return false
	}
	return strings.Trim(trimmed, fence[:1]) == ""
}

// buildNav lists sections at depth 2 and their subheadings at depth 3.
func buildNav(sections []unit.Section) []unit.NavEntry {
	var nav []unit.NavEntry
	for _, s := range sections {
		nav = append(nav, unit.NavEntry{ID: s.ID, Title: s.Title, Depth: unit.DepthSection})
		for _, b := range s.Blocks {
			if h, ok := b.(unit.Subheading); ok {
				nav = append(nav, unit.NavEntry{ID: h.ID, Title: h.Title, Depth: unit.DepthSubheading})
			}
		}
	}
	return nav
}

// PlainRenderer renders Markdown as escaped paragraphs split on blank lines.
// Used when no Markdown engine is supplied.
type PlainRenderer struct{}

// RenderFragment implements MarkdownRenderer.
func (PlainRenderer) RenderFragment(src string) string {
	var b strings.Builder
	for _, para := range strings.Split(src, "\n\n") {
		if para = strings.TrimSpace(para); para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(para))
		b.WriteString("</p>\n")
	}
	return b.String()
}
