package main

import (
	"errors"
	"testing"

	"github.com/alnah/go-unitc/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseBuildFlags
// ---------------------------------------------------------------------------

func TestParseBuildFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, positional, err := parseBuildFlags("build", []string{"units/a"})
	if err != nil {
		t.Fatalf("parseBuildFlags() error = %v", err)
	}
	if len(positional) != 1 || positional[0] != "units/a" {
		t.Errorf("positional = %v, want [units/a]", positional)
	}
	if f.gate.maxErrors != 0 || f.gate.maxWarnings != -1 {
		t.Errorf("gate = %+v, want maxErrors 0 and maxWarnings -1", f.gate)
	}
	if f.workers != 0 || f.mode != "" || f.output != "" {
		t.Errorf("flags = %+v, want zero values", f)
	}
	if f.changed("min-overall") {
		t.Error("changed(min-overall) = true without the flag")
	}
}

func TestParseBuildFlags_Values(t *testing.T) {
	t.Parallel()

	f, positional, err := parseBuildFlags("build", []string{
		"-o", "out", "-m", "preview", "--course", "go",
		"--allow-external", "https://a.example/", "--allow-external", "https://b.example/",
		"-w", "4", "-r", "report.yaml", "--min-overall", "0",
		"--max-file-bytes", "1024", "-q", "units/a",
	})
	if err != nil {
		t.Fatalf("parseBuildFlags() error = %v", err)
	}
	if len(positional) != 1 {
		t.Errorf("positional = %v", positional)
	}
	if f.output != "out" || f.mode != "preview" || f.course != "go" || f.report != "report.yaml" {
		t.Errorf("string flags = %+v", f)
	}
	if len(f.allowExternal) != 2 {
		t.Errorf("allowExternal = %v, want 2 entries", f.allowExternal)
	}
	if f.workers != 4 || f.budget.maxFileBytes != 1024 || !f.common.quiet {
		t.Errorf("flags = %+v", f)
	}
	if !f.changed("min-overall") {
		t.Error("changed(min-overall) = false for an explicit zero")
	}
}

func TestParseBuildFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--nope"}},
		{"negative workers", []string{"-w", "-2"}},
		{"non numeric score", []string{"--min-overall", "high"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := parseBuildFlags("build", tt.args)
			if !errors.Is(err, ErrInvalidFlag) {
				t.Errorf("error = %v, want ErrInvalidFlag", err)
			}
		})
	}
}

func TestParseValidateFlags(t *testing.T) {
	t.Parallel()

	f, positional, err := parseValidateFlags([]string{"dist", "--max-total-bytes", "10"})
	if err != nil {
		t.Fatalf("parseValidateFlags() error = %v", err)
	}
	if len(positional) != 1 || positional[0] != "dist" {
		t.Errorf("positional = %v, want [dist]", positional)
	}
	if f.budget.maxTotalBytes != 10 {
		t.Errorf("maxTotalBytes = %d, want 10", f.budget.maxTotalBytes)
	}

	if _, _, err := parseValidateFlags([]string{"--min-overall", "3"}); !errors.Is(err, ErrInvalidFlag) {
		t.Errorf("gate flag on validate: error = %v, want ErrInvalidFlag", err)
	}
}

// ---------------------------------------------------------------------------
// TestMergeBuildSettings - Flags over config
// ---------------------------------------------------------------------------

func TestMergeBuildSettings(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output = "cfg-out"
	cfg.Course = "cfg-course"
	cfg.Mode = "preview"
	cfg.External.Allowlist = []string{"https://cfg.example/"}
	cfg.Budget.MaxFileBytes = 100
	cfg.Gate.MinOverall = 4

	t.Run("config applies without flags", func(t *testing.T) {
		t.Parallel()
		f, _, err := parseBuildFlags("build", nil)
		if err != nil {
			t.Fatalf("parseBuildFlags() error = %v", err)
		}
		s := mergeBuildSettings(f, cfg)
		if s.output != "cfg-out" || s.course != "cfg-course" || s.mode != "preview" {
			t.Errorf("settings = %+v", s)
		}
		if len(s.allowlist) != 1 || s.maxFileBytes != 100 || s.gate.minOverall != 4 {
			t.Errorf("settings = %+v", s)
		}
	})

	t.Run("flags win", func(t *testing.T) {
		t.Parallel()
		f, _, err := parseBuildFlags("build", []string{
			"-o", "flag-out", "-m", "export", "--allow-external", "https://flag.example/",
			"--max-file-bytes", "5", "--min-overall", "0",
		})
		if err != nil {
			t.Fatalf("parseBuildFlags() error = %v", err)
		}
		s := mergeBuildSettings(f, cfg)
		if s.output != "flag-out" || s.mode != "export" || s.course != "cfg-course" {
			t.Errorf("settings = %+v", s)
		}
		if len(s.allowlist) != 1 || s.allowlist[0] != "https://flag.example/" {
			t.Errorf("allowlist = %v", s.allowlist)
		}
		if s.maxFileBytes != 5 || s.gate.minOverall != 0 {
			t.Errorf("settings = %+v", s)
		}
	})
}
