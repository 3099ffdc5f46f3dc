package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-unitc/internal/guardrail"
)

// runValidate checks an existing output directory against the guardrails.
func runValidate(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseValidateFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: validate needs exactly one output directory", ErrMissingArgument)
	}
	outDir := positional[0]
	if f.report != "" {
		if _, err := encodeReport(f.report, struct{}{}); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(f.common.config)
	if err != nil {
		return err
	}

	allowlist := cfg.External.Allowlist
	if f.changed("allow-external") {
		allowlist = f.allowExternal
	}
	maxFile, maxTotal := cfg.Budget.MaxFileBytes, cfg.Budget.MaxTotalBytes
	if f.budget.maxFileBytes > 0 {
		maxFile = f.budget.maxFileBytes
	}
	if f.budget.maxTotalBytes > 0 {
		maxTotal = f.budget.maxTotalBytes
	}

	report, err := guardrail.Validate(ctx, outDir, allowlist,
		guardrail.WithMaxFileBytes(maxFile),
		guardrail.WithMaxTotalBytes(maxTotal),
		guardrail.WithWorkers(f.workers),
	)
	if err != nil {
		return err
	}

	if f.report != "" {
		if err := writeReport(f.report, validateReport{Output: outDir, Validation: report}); err != nil {
			return err
		}
	}

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Guardrails: %d errors, %d warnings\n", len(report.Errors), len(report.Warnings))
		printFindings(env.Stdout, report)
	}

	if !report.Passed() {
		return &gateError{
			sentinel:        ErrValidationFailed,
			detail:          fmt.Sprintf("%d errors in %s", len(report.Errors), outDir),
			guardrailErrors: len(report.Errors),
		}
	}
	return nil
}
