package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	unitc "github.com/alnah/go-unitc"
	"github.com/alnah/go-unitc/internal/config"
	"github.com/alnah/go-unitc/internal/logger"
)

// buildSettings is the merged result of config file and flags.
type buildSettings struct {
	output        string
	course        string
	mode          string
	allowlist     []string
	assetPath     string
	workers       int
	maxFileBytes  int64
	maxTotalBytes int64
	gate          gate
}

// mergeBuildSettings applies flags over the config. Flags win when set.
func mergeBuildSettings(f *buildFlags, cfg *config.Config) buildSettings {
	s := buildSettings{
		output:        cfg.Output,
		course:        cfg.Course,
		mode:          cfg.Mode,
		allowlist:     cfg.External.Allowlist,
		assetPath:     cfg.Assets.BasePath,
		workers:       f.workers,
		maxFileBytes:  cfg.Budget.MaxFileBytes,
		maxTotalBytes: cfg.Budget.MaxTotalBytes,
		gate:          gateFromConfig(cfg.Gate, f.gate, f.changed),
	}
	if f.output != "" {
		s.output = f.output
	}
	if f.course != "" {
		s.course = f.course
	}
	if f.mode != "" {
		s.mode = f.mode
	}
	if f.changed("allow-external") {
		s.allowlist = f.allowExternal
	}
	if f.assetPath != "" {
		s.assetPath = f.assetPath
	}
	if f.budget.maxFileBytes > 0 {
		s.maxFileBytes = f.budget.maxFileBytes
	}
	if f.budget.maxTotalBytes > 0 {
		s.maxTotalBytes = f.budget.maxTotalBytes
	}
	return s
}

// compilerOptions converts settings into library options.
func (s buildSettings) compilerOptions(log *logger.Logger) []unitc.Option {
	return []unitc.Option{
		unitc.WithLogger(log.SugaredLogger.Desugar()),
		unitc.WithExternalAllowlist(s.allowlist...),
		unitc.WithSizeBudget(s.maxFileBytes, s.maxTotalBytes),
		unitc.WithAssetPath(s.assetPath),
		unitc.WithWorkers(s.workers),
	}
}

// loadConfig loads the named config, or the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// newLogger returns a development logger in verbose mode and a no-op otherwise.
func newLogger(verbose bool) (*logger.Logger, error) {
	if !verbose {
		return logger.Nop(), nil
	}
	return logger.New("dev")
}

// unitDirArg returns the single positional unit directory.
func unitDirArg(cmd string, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: %s needs a unit directory", ErrMissingArgument, cmd)
	}
	if len(args) > 1 {
		return "", fmt.Errorf("%w: %s takes one unit directory, got %d", ErrInvalidFlag, cmd, len(args))
	}
	return args[0], nil
}

// runBuild compiles one unit, writes the optional report and applies the gate.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseBuildFlags("build", args)
	if err != nil {
		return err
	}
	unitDir, err := unitDirArg("build", positional)
	if err != nil {
		return err
	}
	if f.report != "" {
		if _, err := encodeReport(f.report, struct{}{}); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(f.common.config)
	if err != nil {
		return err
	}
	s := mergeBuildSettings(f, cfg)

	log, err := newLogger(f.common.verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	compiler, err := unitc.NewCompiler(s.compilerOptions(log)...)
	if err != nil {
		return err
	}

	result, err := compiler.Compile(ctx, unitc.Input{
		UnitDir:    unitDir,
		CourseSlug: s.course,
		OutDir:     s.output,
		Mode:       unitc.Mode(s.mode),
	})
	if err != nil {
		return err
	}

	failures := s.gate.evaluate(result.Score, result.Validation)

	if f.report != "" {
		if err := writeReport(f.report, newBuildReport(result, failures)); err != nil {
			return err
		}
	}

	if !f.common.quiet {
		printBuildSummary(env.Stdout, result, f.common.verbose)
	}

	if len(failures) > 0 {
		return &gateError{
			sentinel:        ErrGateFailed,
			detail:          strings.Join(failures, "; "),
			guardrailErrors: len(result.Validation.Errors),
		}
	}
	return nil
}

// printBuildSummary prints the verdict and, in verbose mode, every finding.
func printBuildSummary(w io.Writer, r *unitc.Result, verbose bool) {
	rel := r.OutDir
	if wd, err := filepath.Abs("."); err == nil {
		if p, err := filepath.Rel(wd, r.OutDir); err == nil && !strings.HasPrefix(p, "..") {
			rel = p
		}
	}

	fmt.Fprintf(w, "Built %s -> %s\n", r.Document.Title, rel)
	fmt.Fprintf(w, "Verdict: %s (overall %.2f, lowest %.2f)\n", r.Score.Verdict, r.Score.Overall, r.Score.MinDimensionScore)
	fmt.Fprintf(w, "Guardrails: %d errors, %d warnings\n", len(r.Validation.Errors), len(r.Validation.Warnings))

	if verbose {
		for _, d := range r.Score.Dimensions.List() {
			fmt.Fprintf(w, "  %-12s %.2f\n", d.Name, d.Score)
		}
	}
	printFindings(w, r.Validation)
	for _, rec := range r.Score.Recommendations {
		fmt.Fprintf(w, "  - %s\n", rec)
	}
}

// printFindings lists validation errors and warnings.
func printFindings(w io.Writer, v *unitc.ValidationReport) {
	for _, e := range v.Errors {
		fmt.Fprintf(w, "  error: %s\n", e)
	}
	for _, warn := range v.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warn)
	}
}
