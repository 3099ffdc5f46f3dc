package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: unitc <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Compile a unit directory into an HTML artifact")
	fmt.Fprintln(w, "  validate   Check an output directory against the guardrails")
	fmt.Fprintln(w, "  parity     Check that preview and export builds match")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'unitc help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags shared by every command.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Log pipeline details to stderr")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: unitc build <unit-dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile content.md, unit.yaml, flashcards.csv and resources/ into")
	fmt.Fprintln(w, "index.html plus assets, then validate and score the result.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>           Output directory (default <unit-dir>/dist)")
	fmt.Fprintln(w, "  -m, --mode <s>               Build mode: preview, export (default export)")
	fmt.Fprintln(w, "      --course <slug>          Course slug (default parent directory name)")
	fmt.Fprintln(w, "      --assets <dir>           Override embedded styles, scripts, templates")
	fmt.Fprintln(w, "  -r, --report <file>          Write a report (.json, .yaml, .yml)")
	fmt.Fprintln(w, "  -w, --workers <n>            Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Guardrails:")
	fmt.Fprintln(w, "      --allow-external <url>   Allowed URL prefix (repeatable)")
	fmt.Fprintln(w, "      --max-file-bytes <n>     Per-file size warning threshold")
	fmt.Fprintln(w, "      --max-total-bytes <n>    Total size warning threshold")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Gate:")
	fmt.Fprintln(w, "      --min-overall <f>        Minimum overall score (0-5)")
	fmt.Fprintln(w, "      --min-dimension <f>      Minimum score of every dimension (0-5)")
	fmt.Fprintln(w, "      --max-errors <n>         Maximum guardrail errors (default 0, -1 = no limit)")
	fmt.Fprintln(w, "      --max-warnings <n>       Maximum warnings (default -1 = no limit)")
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	printExitCodes(w)
}

// printValidateUsage prints usage for the validate command.
func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: unitc validate <output-dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check every file of a built output directory for unknown classes,")
	fmt.Fprintln(w, "inline styles, external URLs, missing assets and size budgets.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --allow-external <url>   Allowed URL prefix (repeatable)")
	fmt.Fprintln(w, "      --max-file-bytes <n>     Per-file size warning threshold")
	fmt.Fprintln(w, "      --max-total-bytes <n>    Total size warning threshold")
	fmt.Fprintln(w, "  -r, --report <file>          Write a report (.json, .yaml, .yml)")
	fmt.Fprintln(w, "  -w, --workers <n>            Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printParityUsage prints usage for the parity command.
func printParityUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: unitc parity <unit-dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the unit in preview and export mode into temporary directories")
	fmt.Fprintln(w, "and compare file hashes, ignoring data-sandbox-only markup.")
	fmt.Fprintln(w, "Accepts the build command's flags; --output and --mode are ignored.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printExitCodes documents the process exit status.
func printExitCodes(w io.Writer) {
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintf(w, "  %d  success\n", ExitSuccess)
	fmt.Fprintf(w, "  %d  unexpected error\n", ExitGeneral)
	fmt.Fprintf(w, "  %d  invalid flags, config or unit input\n", ExitUsage)
	fmt.Fprintf(w, "  %d  source missing or output not writable\n", ExitIO)
	fmt.Fprintf(w, "  %d  gate, validation or parity failure\n", ExitGate)
}

// runHelp prints help for a command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "validate":
		printValidateUsage(env.Stdout)
	case "parity":
		printParityUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: unitc version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: unitc help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
