package unit

import "strings"

// DefaultSectionTitle names the implicit section that absorbs content
// appearing before the first heading.
const DefaultSectionTitle = "Overview"

// Metadata is the declarative part of a unit (unit.yaml).
type Metadata struct {
	Title            string
	Subtitle         string
	EstimatedMinutes *int
	Objectives       []string
}

// Source identifies where a unit came from.
type Source struct {
	CourseSlug   string
	UnitSlug     string
	Dir          string
	ResourceRoot string
}

// Assemble merges metadata, parsed content and indexed records into a
// Document. It performs no I/O. Slices are copied so later mutation of the
// inputs cannot reach the Document.
func Assemble(meta Metadata, content Content, resources []Resource, flashcards []Flashcard, src Source) *Document {
	doc := &Document{
		CourseSlug:   src.CourseSlug,
		UnitSlug:     src.UnitSlug,
		Title:        strings.TrimSpace(meta.Title),
		Subtitle:     strings.TrimSpace(meta.Subtitle),
		Objectives:   cleanObjectives(meta.Objectives),
		Sections:     append([]Section(nil), content.Sections...),
		Nav:          append([]NavEntry(nil), content.Nav...),
		Resources:    append([]Resource(nil), resources...),
		Flashcards:   append([]Flashcard(nil), flashcards...),
		SourceDir:    src.Dir,
		ResourceRoot: src.ResourceRoot,
	}

	if meta.EstimatedMinutes != nil {
		minutes := *meta.EstimatedMinutes
		doc.EstimatedMinutes = &minutes
	}

	if doc.Title == "" {
		doc.Title = TitleFromSlug(src.UnitSlug)
	}

	if len(doc.Sections) == 0 {
		doc.Sections = []Section{{ID: Slugify(DefaultSectionTitle), Title: DefaultSectionTitle}}
	}

	if len(doc.Nav) == 0 {
		first := doc.Sections[0]
		doc.Nav = []NavEntry{{ID: first.ID, Title: first.Title, Depth: DepthSection}}
	}

	return doc
}

// cleanObjectives trims entries and drops blanks, keeping order.
func cleanObjectives(in []string) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// CheckIntegrity verifies the Document invariants: unique addressable ids,
// nav entries resolving to real ids, and resource hrefs staying relative.
// It returns one message per violation, in document order.
func CheckIntegrity(d *Document) []string {
	var problems []string

	seen := IDSet{}
	for _, id := range d.AddressableIDs() {
		if seen.Has(id) {
			problems = append(problems, "duplicate id "+id)
		}
		seen[id] = struct{}{}
	}

	for _, e := range d.Nav {
		if !seen.Has(e.ID) {
			problems = append(problems, "nav entry "+e.ID+" has no target")
		}
	}

	for _, r := range d.Resources {
		if !isRelativeHref(r.Href) {
			problems = append(problems, "resource "+r.ID+" has invalid href "+r.Href)
		}
	}

	return problems
}

// isRelativeHref rejects empty, absolute and parent-escaping paths.
func isRelativeHref(href string) bool {
	if href == "" || strings.HasPrefix(href, "/") || strings.Contains(href, "\\") {
		return false
	}
	for _, part := range strings.Split(href, "/") {
		if part == ".." || part == "" {
			return false
		}
	}
	return true
}
