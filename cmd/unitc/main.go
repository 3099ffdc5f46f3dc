package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	unitc "github.com/alnah/go-unitc"
	"github.com/alnah/go-unitc/internal/config"
	"github.com/alnah/go-unitc/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	verbose := slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose")

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches the command, prints any error with hints and returns
// the exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "validate":
		err = runValidate(ctx, rest, env)
	case "parity":
		err = runParity(ctx, rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "unitc %s\n", Version)
	case "help", "-h", "--help":
		err = runHelp(rest, env)
	default:
		printUsage(env.Stderr)
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	if err != nil {
		fmt.Fprintln(env.Stderr, "unitc: "+err.Error()+hintFor(err, rest))
	}
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for well-known failures.
func hintFor(err error, args []string) string {
	var gateErr *gateError
	switch {
	case errors.Is(err, unitc.ErrSourceNotFound):
		return hints.ForSourceNotFound(firstPositional(args))
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(flagValue(args, "config", "c")))
	case errors.Is(err, unitc.ErrInvalidAssetPath):
		return hints.ForAssetNotFound(flagValue(args, "assets", ""))
	case errors.Is(err, unitc.ErrOutputWrite):
		return hints.ForOutputDirectory()
	case errors.Is(err, unitc.ErrParityMismatch):
		return hints.ForParityMismatch()
	case errors.As(err, &gateErr):
		return hints.ForGuardrailErrors(gateErr.guardrailErrors)
	}
	return ""
}

// firstPositional returns the first argument that is not a flag or a flag value.
// Only used for hints, so flags taking values are matched loosely.
func firstPositional(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if len(a) > 1 && a[0] == '-' {
			if !strings.Contains(a, "=") && takesValue(a) {
				i++
			}
			continue
		}
		return a
	}
	return ""
}

// flagValue finds --long value, --long=value or -short value in args.
func flagValue(args []string, long, short string) string {
	for i, a := range args {
		switch {
		case a == "--"+long || (short != "" && a == "-"+short):
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--"+long+"="):
			return strings.TrimPrefix(a, "--"+long+"=")
		}
	}
	return ""
}

func takesValue(flag string) bool {
	switch flag {
	case "-q", "--quiet", "-v", "--verbose":
		return false
	}
	return true
}
