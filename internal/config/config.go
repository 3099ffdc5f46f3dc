package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-unitc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxSlugLength       = 100  // Course slug
	MaxPathLength       = 4096 // Output dir, assets base path
	MaxURLLength        = 2048 // Allowlist entry
	MaxAllowlistEntries = 100
	MaxTitleLength      = 200 // Unit title
	MaxSubtitleLength   = 200
	MaxObjectiveLength  = 300
	MaxObjectives       = 20
)

// AppName is the directory used under the user config dir.
const AppName = "go-unitc"

// Config holds the optional build configuration. CLI flags override it.
type Config struct {
	Course   string         `yaml:"course"`
	Mode     string         `yaml:"mode"`   // "preview" or "export" (empty = export)
	Output   string         `yaml:"output"` // Output directory (empty = <unit>/dist)
	External ExternalConfig `yaml:"external"`
	Budget   BudgetConfig   `yaml:"budget"`
	Gate     GateConfig     `yaml:"gate"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// ExternalConfig lists URL prefixes the output may reference.
type ExternalConfig struct {
	Allowlist []string `yaml:"allowlist"`
}

// BudgetConfig sets the size warning thresholds (0 = validator default).
type BudgetConfig struct {
	MaxFileBytes  int64 `yaml:"maxFileBytes"`
	MaxTotalBytes int64 `yaml:"maxTotalBytes"`
}

// GateConfig holds the ship thresholds applied by the CLI.
// Negative MaxErrors or MaxWarnings disables that check.
type GateConfig struct {
	MinOverall   float64 `yaml:"minOverall"`
	MinDimension float64 `yaml:"minDimension"`
	MaxErrors    int     `yaml:"maxErrors"`
	MaxWarnings  int     `yaml:"maxWarnings"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Directory overriding embedded assets (empty = embedded only)
}

// Validate checks field lengths and value ranges.
func (c *Config) Validate() error {
	if err := validateFieldLength("course", c.Course, MaxSlugLength); err != nil {
		return err
	}
	switch c.Mode {
	case "", "preview", "export":
	default:
		return fmt.Errorf("%w: mode must be preview or export, got %q", ErrInvalidValue, c.Mode)
	}
	if err := validateFieldLength("output", c.Output, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if len(c.External.Allowlist) > MaxAllowlistEntries {
		return fmt.Errorf("%w: external.allowlist has %d entries (max %d)",
			ErrInvalidValue, len(c.External.Allowlist), MaxAllowlistEntries)
	}
	for i, entry := range c.External.Allowlist {
		field := fmt.Sprintf("external.allowlist[%d]", i)
		if err := validateFieldLength(field, entry, MaxURLLength); err != nil {
			return err
		}
		if strings.TrimSpace(entry) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidValue, field)
		}
	}

	if c.Budget.MaxFileBytes < 0 {
		return fmt.Errorf("%w: budget.maxFileBytes must be >= 0, got %d", ErrInvalidValue, c.Budget.MaxFileBytes)
	}
	if c.Budget.MaxTotalBytes < 0 {
		return fmt.Errorf("%w: budget.maxTotalBytes must be >= 0, got %d", ErrInvalidValue, c.Budget.MaxTotalBytes)
	}

	if c.Gate.MinOverall < 0 || c.Gate.MinOverall > 5 {
		return fmt.Errorf("%w: gate.minOverall must be between 0 and 5, got %.2f", ErrInvalidValue, c.Gate.MinOverall)
	}
	if c.Gate.MinDimension < 0 || c.Gate.MinDimension > 5 {
		return fmt.Errorf("%w: gate.minDimension must be between 0 and 5, got %.2f", ErrInvalidValue, c.Gate.MinDimension)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// export mode, no external hosts, zero tolerated errors, warnings unchecked.
func DefaultConfig() *Config {
	return &Config{
		Mode: "export",
		Gate: GateConfig{MaxErrors: 0, MaxWarnings: -1},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the locations tried for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations:
// the current directory first, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
