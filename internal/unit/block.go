package unit

// Kind names a Block variant.
type Kind string

// Block kinds.
const (
	KindMarkdown   Kind = "markdown-run"
	KindSubheading Kind = "subheading"
	KindCallout    Kind = "callout"
	KindAccordion  Kind = "accordion"
)

// Block is one typed content element within a Section.
type Block interface {
	Kind() Kind
	block()
}

// MarkdownRun is an opaque leaf of already-rendered markup.
type MarkdownRun struct {
	HTML string
}

// Subheading is an addressable level-3 heading.
type Subheading struct {
	ID    string
	Title string
}

// CalloutKind is the flavour of a callout directive.
type CalloutKind string

// Callout kinds.
const (
	CalloutInfo    CalloutKind = "info"
	CalloutWarning CalloutKind = "warning"
	CalloutExample CalloutKind = "example"
)

// Label returns the human-readable callout heading.
func (k CalloutKind) Label() string {
	switch k {
	case CalloutWarning:
		return "Warning"
	case CalloutExample:
		return "Example"
	default:
		return "Info"
	}
}

// Callout is a boxed note whose body is opaque rendered markup.
type Callout struct {
	Variant CalloutKind
	HTML    string
}

// AccordionItem is one collapsible panel.
type AccordionItem struct {
	ID    string
	Title string
	HTML  string
}

// Accordion is an ordered list of collapsible panels.
type Accordion struct {
	ID    string
	Items []AccordionItem
}

func (MarkdownRun) Kind() Kind { return KindMarkdown }
func (Subheading) Kind() Kind  { return KindSubheading }
func (Callout) Kind() Kind     { return KindCallout }
func (Accordion) Kind() Kind   { return KindAccordion }

func (MarkdownRun) block() {}
func (Subheading) block()  {}
func (Callout) block()     {}
func (Accordion) block()   {}
