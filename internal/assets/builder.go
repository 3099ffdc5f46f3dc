package assets

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-unitc/internal/fileutil"
	"github.com/alnah/go-unitc/internal/pipeline"
)

// Mode selects the build entry point.
type Mode string

// Build modes.
const (
	ModePreview Mode = "preview"
	ModeExport  Mode = "export"
)

// ParseMode converts a user-supplied mode name. Empty means export.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeExport:
		return ModeExport, nil
	case ModePreview:
		return ModePreview, nil
	default:
		return "", fmt.Errorf("%w: %q (want preview or export)", ErrInvalidMode, s)
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModePreview || m == ModeExport
}

// Output locations relative to the output directory.
const (
	Dir         = "assets"
	CSSPath     = Dir + "/unit.css"
	RuntimePath = Dir + "/runtime.js"
)

// HighlightStyle is the chroma style used for generated code classes.
const HighlightStyle = "github"

// Paths is the stylesheet/runtime pair injected into the page.
// Both are slash-separated and relative to the output directory.
type Paths struct {
	CSS     string
	Runtime string
}

// Builder writes the unit's stylesheet and runtime script.
type Builder struct {
	loader AssetLoader
}

// NewBuilder creates a Builder reading sources through loader.
// A nil loader uses the embedded assets.
func NewBuilder(loader AssetLoader) *Builder {
	if loader == nil {
		loader = NewEmbeddedLoader()
	}
	return &Builder{loader: loader}
}

// Build writes assets into outDir and returns their paths. The paths and
// bytes do not depend on mode; mode is only validated.
func (b *Builder) Build(ctx context.Context, outDir string, mode Mode) (Paths, error) {
	if err := ctx.Err(); err != nil {
		return Paths{}, err
	}
	if !mode.Valid() {
		return Paths{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	css, err := b.Stylesheet()
	if err != nil {
		return Paths{}, err
	}
	script, err := b.loader.LoadScript(DefaultScriptName)
	if err != nil {
		return Paths{}, err
	}

	if err := fileutil.WriteFile(filepath.Join(outDir, filepath.FromSlash(CSSPath)), []byte(css)); err != nil {
		return Paths{}, fmt.Errorf("%w: %v", ErrAssetWrite, err)
	}
	if err := fileutil.WriteFile(filepath.Join(outDir, filepath.FromSlash(RuntimePath)), []byte(script)); err != nil {
		return Paths{}, fmt.Errorf("%w: %v", ErrAssetWrite, err)
	}

	return Paths{CSS: CSSPath, Runtime: RuntimePath}, nil
}

// Stylesheet returns the base style followed by the highlight classes.
func (b *Builder) Stylesheet() (string, error) {
	base, err := b.loader.LoadStyle(DefaultStyleName)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString(strings.TrimRight(base, "\n"))
	buf.WriteString("\n\n/* Syntax highlighting */\n")

	formatter := chromahtml.New(chromahtml.WithClasses(true), chromahtml.ClassPrefix(pipeline.HighlightClassPrefix))
	if err := formatter.WriteCSS(&buf, styles.Get(HighlightStyle)); err != nil {
		return "", fmt.Errorf("generating highlight css: %w", err)
	}

	return buf.String(), nil
}
