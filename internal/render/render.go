package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/alnah/go-unitc/internal/assets"
	"github.com/alnah/go-unitc/internal/unit"
)

// ResourcesDir is the output prefix for copied resource files.
const ResourcesDir = "resources"

// DefaultLang is the page language when none is configured.
const DefaultLang = "en"

// Page is the output of one Render call.
type Page struct {
	HTML     string
	CopyPlan []CopyItem
}

// CopyItem copies Src (absolute) to Dst (slash-separated, relative to the
// output directory).
type CopyItem struct {
	Src string
	Dst string
}

// Renderer turns Documents into page markup. Safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	lang string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLang sets the page's lang attribute.
func WithLang(lang string) Option {
	return func(r *Renderer) {
		if lang != "" {
			r.lang = lang
		}
	}
}

// NewRenderer parses the page template obtained from loader.
// A nil loader uses the embedded assets.
func NewRenderer(loader assets.AssetLoader, opts ...Option) (*Renderer, error) {
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}

	src, err := loader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(assets.DefaultTemplateName).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	r := &Renderer{tmpl: tmpl, lang: DefaultLang}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// pageData is the template view of a Document.
type pageData struct {
	Lang        string
	Mode        string
	CourseSlug  string
	UnitSlug    string
	Title       string
	Subtitle    string
	Minutes     string
	CSSPath     string
	RuntimePath string
	Objectives  []string
	Nav         []unit.NavEntry
	Sections    []template.HTML
	Resources   []resourceView
	Flashcards  []unit.Flashcard
	IDs         pageIDs
}

// pageIDs are the fixed ids the page template emits outside sections.
type pageIDs struct {
	Objectives      string
	Resources       string
	Flashcards      string
	FlashcardPrefix string
}

type resourceView struct {
	ID    string
	Title string
	Href  string
	Kind  unit.ResourceKind
}

// Render produces the page markup and the resource copy plan. Output is
// a pure function of its arguments.
func (r *Renderer) Render(doc *unit.Document, paths assets.Paths, mode assets.Mode) (*Page, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", assets.ErrInvalidMode, mode)
	}

	data := pageData{
		Lang:        r.lang,
		Mode:        string(mode),
		CourseSlug:  doc.CourseSlug,
		UnitSlug:    doc.UnitSlug,
		Title:       doc.Title,
		Subtitle:    doc.Subtitle,
		CSSPath:     paths.CSS,
		RuntimePath: paths.Runtime,
		Objectives:  doc.Objectives,
		Nav:         doc.Nav,
		Flashcards:  doc.Flashcards,
		IDs: pageIDs{
			Objectives:      unit.ObjectivesTitleID,
			Resources:       unit.ResourcesTitleID,
			Flashcards:      unit.FlashcardsTitleID,
			FlashcardPrefix: unit.FlashcardIDPrefix,
		},
	}
	if doc.EstimatedMinutes != nil {
		data.Minutes = strconv.Itoa(*doc.EstimatedMinutes)
	}

	for _, s := range doc.Sections {
		markup, err := renderSection(s)
		if err != nil {
			return nil, err
		}
		data.Sections = append(data.Sections, markup)
	}

	plan := make([]CopyItem, 0, len(doc.Resources))
	for _, res := range doc.Resources {
		dst := ResourcesDir + "/" + res.Href
		data.Resources = append(data.Resources, resourceView{
			ID:    unit.ResourceIDPrefix + res.ID,
			Title: res.Title,
			Href:  (&url.URL{Path: dst}).EscapedPath(),
			Kind:  res.Kind,
		})
		plan = append(plan, CopyItem{
			Src: filepath.Join(doc.ResourceRoot, filepath.FromSlash(res.Href)),
			Dst: dst,
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateExecute, err)
	}

	return &Page{HTML: buf.String(), CopyPlan: plan}, nil
}
