package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, cmd := range []string{"build", "validate", "parity", "version", "help"} {
		if !strings.Contains(out, "  "+cmd) {
			t.Errorf("usage does not list %q:\n%s", cmd, out)
		}
	}
}

func TestPrintBuildUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printBuildUsage(&buf)
	out := buf.String()

	for _, want := range []string{"--output", "--mode", "--allow-external", "--min-overall", "--max-warnings", "--config", "Exit codes"} {
		if !strings.Contains(out, want) {
			t.Errorf("build usage missing %q", want)
		}
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		topic string
		want  string
	}{
		{"", "Commands:"},
		{"build", "Usage: unitc build"},
		{"validate", "Usage: unitc validate"},
		{"parity", "Usage: unitc parity"},
		{"version", "Usage: unitc version"},
		{"help", "Usage: unitc help"},
	}

	for _, tt := range tests {
		t.Run("topic "+tt.topic, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			var args []string
			if tt.topic != "" {
				args = []string{tt.topic}
			}
			if err := runHelp(args, &Environment{Stdout: &stdout, Stderr: &stderr}); err != nil {
				t.Fatalf("runHelp() error = %v", err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.want)
			}
		})
	}

	t.Run("unknown topic", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := runHelp([]string{"deploy"}, &Environment{Stdout: &stdout, Stderr: &stderr})
		if !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("error = %v, want ErrUnknownCommand", err)
		}
		if stdout.Len() != 0 {
			t.Errorf("unknown topic wrote to stdout: %q", stdout.String())
		}
	})
}
