// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ForSourceNotFound returns hints when a unit directory lacks its content file.
func ForSourceNotFound(unitDir string) string {
	if unitDir == "" {
		return format("pass a unit directory containing content.md")
	}
	return format("create " + filepath.Join(unitDir, "content.md") + " or check the unit directory")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating the file in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-unitc/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetNotFound returns hints for missing custom styles, scripts or templates.
func ForAssetNotFound(basePath string) string {
	if basePath == "" {
		return ""
	}
	return format("expected styles/, scripts/ and templates/ under " + basePath + "; unset --assets to use the built-in theme")
}

// ForGuardrailErrors returns hints when guardrail errors fail a command.
// Returns an empty string when errorCount is zero.
func ForGuardrailErrors(errorCount int) string {
	if errorCount == 0 {
		return ""
	}
	noun := "errors"
	if errorCount == 1 {
		noun = "error"
	}
	return formatHints([]string{
		fmt.Sprintf("fix the %d guardrail %s listed above", errorCount, noun),
		"allow a host with --allow-external https://host/",
	})
}

// ForParityMismatch returns hints when preview and export outputs differ.
func ForParityMismatch() string {
	return format("preview-only markup must carry the data-sandbox-only attribute")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
