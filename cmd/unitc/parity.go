package main

import (
	"context"
	"fmt"

	unitc "github.com/alnah/go-unitc"
)

// runParity builds the unit in both modes and compares the outputs.
func runParity(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseBuildFlags("parity", args)
	if err != nil {
		return err
	}
	unitDir, err := unitDirArg("parity", positional)
	if err != nil {
		return err
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

	if _, err := compiler.VerifyParity(ctx, unitc.Input{UnitDir: unitDir, CourseSlug: s.course}); err != nil {
		return err
	}

	if !f.common.quiet {
		fmt.Fprintln(env.Stdout, "Parity OK: preview and export outputs match")
	}
	return nil
}
