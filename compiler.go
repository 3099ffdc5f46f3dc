package unitc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-unitc/internal/assets"
	"github.com/alnah/go-unitc/internal/config"
	"github.com/alnah/go-unitc/internal/dsl"
	"github.com/alnah/go-unitc/internal/fileutil"
	"github.com/alnah/go-unitc/internal/guardrail"
	"github.com/alnah/go-unitc/internal/logger"
	"github.com/alnah/go-unitc/internal/pipeline"
	"github.com/alnah/go-unitc/internal/render"
	"github.com/alnah/go-unitc/internal/resources"
	"github.com/alnah/go-unitc/internal/score"
	"github.com/alnah/go-unitc/internal/unit"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.UnitPreprocessor)(nil)
	_ pipeline.BannerInjector       = (*pipeline.BannerInjection)(nil)
	_ dsl.MarkdownRenderer          = (*pipeline.GoldmarkConverter)(nil)
	_ assets.AssetLoader            = (*assets.AssetResolver)(nil)
)

// bannerTemplateName is the optional custom template for the preview banner.
const bannerTemplateName = "banner"

// Compiler turns unit directories into output artifacts.
// Create with NewCompiler. Safe for concurrent use across distinct outputs.
type Compiler struct {
	cfg            compilerConfig
	log            *logger.Logger
	assetLoader    assets.AssetLoader
	preprocessor   pipeline.MarkdownPreprocessor
	markdown       dsl.MarkdownRenderer
	bannerInjector pipeline.BannerInjector
	builder        *assets.Builder
	renderer       *render.Renderer
}

// NewCompiler creates a Compiler with default configuration.
// Returns error if the asset path is invalid or a template fails to parse.
func NewCompiler(opts ...Option) (*Compiler, error) {
	c := &Compiler{
		log:          logger.Nop(),
		preprocessor: &pipeline.UnitPreprocessor{},
		markdown:     pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.assetLoader = resolver
	c.builder = assets.NewBuilder(resolver)

	c.renderer, err = render.NewRenderer(resolver, render.WithLang(c.cfg.lang))
	if err != nil {
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}

	bannerSrc, err := resolver.LoadTemplate(bannerTemplateName)
	if err != nil && !errors.Is(err, assets.ErrTemplateNotFound) {
		return nil, fmt.Errorf("loading banner template: %w", err)
	}
	c.bannerInjector, err = pipeline.NewBannerInjection(bannerSrc)
	if err != nil {
		return nil, fmt.Errorf("initializing banner injector: %w", err)
	}

	return c, nil
}

// Compile reads the unit, writes the artifact to in.OutDir and returns the
// Document with its validation and score reports. Guardrail violations do
// not fail the compile; they are reported for the caller to gate on.
// On error nothing is written to in.OutDir.
func (c *Compiler) Compile(ctx context.Context, in Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in, err := c.normalizeInput(in)
	if err != nil {
		return nil, err
	}
	log := c.log.With("unit", filepath.Base(in.UnitDir), "mode", string(in.Mode))

	doc, err := c.load(ctx, in)
	if err != nil {
		return nil, err
	}
	if problems := unit.CheckIntegrity(doc); len(problems) > 0 {
		log.Warn("document integrity problems", "problems", problems)
	}
	log.Debug("assembled document",
		"sections", len(doc.Sections),
		"resources", len(doc.Resources),
		"flashcards", len(doc.Flashcards))

	staging, err := fileutil.NewStaging(in.OutDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	defer staging.Cleanup()

	markup, err := c.emit(ctx, doc, in.Mode, staging.Dir)
	if err != nil {
		return nil, err
	}

	validation, err := guardrail.Validate(ctx, staging.Dir, c.cfg.allowlist, c.validateOptions()...)
	if err != nil {
		return nil, fmt.Errorf("validating output: %w", err)
	}
	report := score.Score(doc, markup, validation)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := staging.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	log.Info("compiled unit",
		"out", in.OutDir,
		"errors", len(validation.Errors),
		"warnings", len(validation.Warnings),
		"overall", report.Overall,
		"verdict", string(report.Verdict))

	return &Result{
		OutDir:     in.OutDir,
		Document:   doc,
		Validation: validation,
		Score:      report,
	}, nil
}

// normalizeInput fills defaults and rejects output locations that would
// overwrite the unit's own sources.
func (c *Compiler) normalizeInput(in Input) (Input, error) {
	if in.UnitDir == "" {
		return in, fmt.Errorf("%w: unit directory is required", ErrInvalidInput)
	}

	mode, err := assets.ParseMode(string(in.Mode))
	if err != nil {
		return in, fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}
	in.Mode = mode

	unitDir, err := filepath.Abs(in.UnitDir)
	if err != nil {
		return in, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	in.UnitDir = unitDir

	if in.OutDir == "" {
		in.OutDir = filepath.Join(unitDir, DefaultOutDir)
	}
	outDir, err := filepath.Abs(in.OutDir)
	if err != nil {
		return in, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	in.OutDir = outDir

	resourceRoot := filepath.Join(unitDir, ResourcesDir)
	if outDir == unitDir || fileutil.IsUnderDir(unitDir, outDir) || fileutil.IsUnderDir(outDir, resourceRoot) {
		return in, fmt.Errorf("%w: output directory %s would overwrite unit sources", ErrInvalidInput, outDir)
	}

	if in.CourseSlug == "" {
		in.CourseSlug = unit.Slugify(filepath.Base(filepath.Dir(unitDir)))
	}

	return in, nil
}

// load reads every unit source and assembles the Document.
func (c *Compiler) load(ctx context.Context, in Input) (*unit.Document, error) {
	contentPath := filepath.Join(in.UnitDir, ContentFile)
	raw, err := os.ReadFile(contentPath) // #nosec G304 -- path is built from the unit directory
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, contentPath)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidInput, contentPath, err)
	}

	meta, err := config.LoadUnit(filepath.Join(in.UnitDir, MetadataFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	resourceRoot := filepath.Join(in.UnitDir, ResourcesDir)
	indexed, err := resources.Index(resourceRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	cards, err := resources.LoadFlashcards(filepath.Join(in.UnitDir, FlashcardsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	text := c.preprocessor.PreprocessMarkdown(ctx, string(raw))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content := dsl.Parse(text, c.markdown)

	return unit.Assemble(meta.Metadata(), content, indexed, cards, unit.Source{
		CourseSlug:   in.CourseSlug,
		UnitSlug:     unit.Slugify(filepath.Base(in.UnitDir)),
		Dir:          in.UnitDir,
		ResourceRoot: resourceRoot,
	}), nil
}

// emit writes assets, the page and resources into dir and returns the page markup.
func (c *Compiler) emit(ctx context.Context, doc *unit.Document, mode assets.Mode, dir string) (string, error) {
	paths, err := c.builder.Build(ctx, dir, mode)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	page, err := c.renderer.Render(doc, paths, mode)
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}

	markup := page.HTML
	if mode == assets.ModePreview {
		markup, err = c.bannerInjector.InjectBanner(ctx, markup, pipeline.DefaultBannerData())
		if err != nil {
			return "", fmt.Errorf("injecting banner: %w", err)
		}
	}

	if err := fileutil.WriteFile(filepath.Join(dir, IndexFile), []byte(markup)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	if err := render.CopyResources(ctx, page.CopyPlan, dir, c.cfg.workers); err != nil {
		return "", fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	return markup, nil
}

func (c *Compiler) validateOptions() []guardrail.Option {
	return []guardrail.Option{
		guardrail.WithMaxFileBytes(c.cfg.maxFileBytes),
		guardrail.WithMaxTotalBytes(c.cfg.maxTotalBytes),
		guardrail.WithWorkers(c.cfg.workers),
	}
}
