package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// budgetFlags holds size warning thresholds.
type budgetFlags struct {
	maxFileBytes  int64
	maxTotalBytes int64
}

// gateFlags holds the ship thresholds.
type gateFlags struct {
	minOverall   float64
	minDimension float64
	maxErrors    int
	maxWarnings  int
}

// buildFlags holds all flags for the build and parity commands.
type buildFlags struct {
	common        commonFlags
	output        string
	course        string
	mode          string
	allowExternal []string
	assetPath     string
	workers       int
	report        string
	budget        budgetFlags
	gate          gateFlags
	changed       func(name string) bool
}

// validateFlags holds flags for the validate command.
type validateFlags struct {
	common        commonFlags
	allowExternal []string
	workers       int
	report        string
	budget        budgetFlags
	changed       func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log pipeline details to stderr")
}

// addBudgetFlags adds size budget flags to a FlagSet.
func addBudgetFlags(fs *flag.FlagSet, f *budgetFlags) {
	fs.Int64Var(&f.maxFileBytes, "max-file-bytes", 0, "warn when one file exceeds this size (0 = default)")
	fs.Int64Var(&f.maxTotalBytes, "max-total-bytes", 0, "warn when the output exceeds this size (0 = default)")
}

// addGateFlags adds gate threshold flags to a FlagSet.
func addGateFlags(fs *flag.FlagSet, f *gateFlags) {
	fs.Float64Var(&f.minOverall, "min-overall", 0, "fail when the overall score is below this")
	fs.Float64Var(&f.minDimension, "min-dimension", 0, "fail when any dimension score is below this")
	fs.IntVar(&f.maxErrors, "max-errors", 0, "fail when guardrail errors exceed this (-1 = no limit)")
	fs.IntVar(&f.maxWarnings, "max-warnings", -1, "fail when warnings exceed this (-1 = no limit)")
}

// newFlagSet creates a quiet FlagSet; parse errors are returned, not printed.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return fs
}

// parseBuildFlags parses flags for build and parity, returning positional args.
func parseBuildFlags(name string, args []string) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet(name)

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default <unit>/dist)")
	fs.StringVar(&f.course, "course", "", "course slug (default parent directory name)")
	fs.StringVarP(&f.mode, "mode", "m", "", "build mode: preview or export")
	fs.StringSliceVar(&f.allowExternal, "allow-external", nil, "URL prefix the output may reference (repeatable)")
	fs.StringVar(&f.assetPath, "assets", "", "directory overriding embedded styles, scripts and templates")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.report, "report", "r", "", "write a JSON or YAML report to this file")
	addBudgetFlags(fs, &f.budget)
	addGateFlags(fs, &f.gate)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	if f.workers < 0 {
		return nil, nil, fmt.Errorf("%w: --workers must be >= 0, got %d", ErrInvalidFlag, f.workers)
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}

// parseValidateFlags parses flags for validate, returning positional args.
func parseValidateFlags(args []string) (*validateFlags, []string, error) {
	f := &validateFlags{}
	fs := newFlagSet("validate")

	addCommonFlags(fs, &f.common)
	fs.StringSliceVar(&f.allowExternal, "allow-external", nil, "URL prefix the output may reference (repeatable)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.report, "report", "r", "", "write a JSON or YAML report to this file")
	addBudgetFlags(fs, &f.budget)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	if f.workers < 0 {
		return nil, nil, fmt.Errorf("%w: --workers must be >= 0, got %d", ErrInvalidFlag, f.workers)
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}
