package score

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-unitc/internal/guardrail"
	"github.com/alnah/go-unitc/internal/unit"
)

// Marker classes looked for in the rendered markup.
const (
	MarkerHeader      = "unit-header"
	MarkerNav         = "unit-nav"
	MarkerCard        = "unit-card"
	MarkerInteractive = "unit-interactive"
)

// Signals are the counts and flags the dimension functions consume.
type Signals struct {
	Objectives      int
	Sections        int
	Callouts        int
	ExampleCallouts int
	Accordions      int
	Flashcards      int
	Resources       int

	InteractiveMarkers int
	HasHeader          bool
	HasNav             bool
	HasCard            bool
	HasLang            bool

	Errors   int
	Warnings int
}

// Collect derives Signals from its inputs. A nil doc or report counts as
// empty.
func Collect(doc *unit.Document, markup string, report *guardrail.Report) Signals {
	var s Signals
	if doc != nil {
		s.Objectives = len(doc.Objectives)
		s.Sections = len(doc.Sections)
		s.Callouts = doc.BlockCount(unit.KindCallout)
		s.ExampleCallouts = doc.CalloutCount(unit.CalloutExample)
		s.Accordions = doc.BlockCount(unit.KindAccordion)
		s.Flashcards = len(doc.Flashcards)
		s.Resources = len(doc.Resources)
	}
	if report != nil {
		s.Errors = len(report.Errors)
		s.Warnings = len(report.Warnings)
	}
	scanMarkup(markup, &s)
	return s
}

// scanMarkup counts marker classes and checks the root lang attribute.
func scanMarkup(markup string, s *Signals) {
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a tokenizer error; either way nothing more to count.
			return
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		name, hasAttr := z.TagName()
		tag := string(name)
		for hasAttr {
			var key, val []byte
			key, val, hasAttr = z.TagAttr()
			switch {
			case tag == "html" && string(key) == "lang":
				s.HasLang = strings.TrimSpace(string(val)) != ""
			case string(key) == "class":
				for _, cls := range strings.Fields(string(val)) {
					switch cls {
					case MarkerHeader:
						s.HasHeader = true
					case MarkerNav:
						s.HasNav = true
					case MarkerCard:
						s.HasCard = true
					case MarkerInteractive:
						s.InteractiveMarkers++
					}
				}
			}
		}
	}
}

// InteractionKinds counts how many of callouts, accordions and flashcards
// the unit uses.
func (s Signals) InteractionKinds() int {
	n := 0
	for _, c := range []int{s.Callouts, s.Accordions, s.Flashcards} {
		if c > 0 {
			n++
		}
	}
	return n
}

// MissingMarkers counts absent structural markers.
func (s Signals) MissingMarkers() int {
	n := 0
	for _, ok := range []bool{s.HasHeader, s.HasNav, s.HasCard} {
		if !ok {
			n++
		}
	}
	return n
}
