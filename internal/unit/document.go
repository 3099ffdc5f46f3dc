package unit

// Section is a titled group of blocks. Ids are unique within a Document.
type Section struct {
	ID     string
	Title  string
	Blocks []Block
}

// NavEntry is one table-of-contents link.
// Depth is 2 for sections and 3 for subheadings.
type NavEntry struct {
	ID    string
	Title string
	Depth int
}

// Nav depths.
const (
	DepthSection    = 2
	DepthSubheading = 3
)

// ResourceKind classifies a resource file by extension.
type ResourceKind string

// Resource kinds.
const (
	ResourcePDF   ResourceKind = "pdf"
	ResourceVideo ResourceKind = "video"
	ResourceAudio ResourceKind = "audio"
	ResourceImage ResourceKind = "image"
	ResourceFile  ResourceKind = "file"
)

// Resource is a downloadable file under the unit's resource root.
// Href is slash-separated and relative to that root.
type Resource struct {
	ID    string
	Title string
	Href  string
	Kind  ResourceKind
}

// Flashcard is one front/back study card.
type Flashcard struct {
	ID    string
	Front string
	Back  string
	Tag   string
}

// Content is the parser output: sections plus their navigation outline.
type Content struct {
	Sections []Section
	Nav      []NavEntry
}

// Document is the canonical, assembled Unit Document.
// EstimatedMinutes is nil when the metadata omits it.
type Document struct {
	CourseSlug       string
	UnitSlug         string
	Title            string
	Subtitle         string
	EstimatedMinutes *int
	Objectives       []string
	Sections         []Section
	Nav              []NavEntry
	Resources        []Resource
	Flashcards       []Flashcard
	SourceDir        string // unit directory, read-only for resource copy
	ResourceRoot     string // absolute resource root, empty when absent
}

// BlockCount returns how many blocks of kind k the document holds.
func (d *Document) BlockCount(k Kind) int {
	n := 0
	for _, s := range d.Sections {
		for _, b := range s.Blocks {
			if b.Kind() == k {
				n++
			}
		}
	}
	return n
}

// CalloutCount returns how many callouts of the given variant exist.
func (d *Document) CalloutCount(v CalloutKind) int {
	n := 0
	for _, s := range d.Sections {
		for _, b := range s.Blocks {
			if c, ok := b.(Callout); ok && c.Variant == v {
				n++
			}
		}
	}
	return n
}

// AddressableIDs returns every section and subheading id in document order.
func (d *Document) AddressableIDs() []string {
	var ids []string
	for _, s := range d.Sections {
		ids = append(ids, s.ID)
		for _, b := range s.Blocks {
			if h, ok := b.(Subheading); ok {
				ids = append(ids, h.ID)
			}
		}
	}
	return ids
}
