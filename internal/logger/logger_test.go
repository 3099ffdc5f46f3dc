package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWriter_WritesKeyValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWriter(&buf).With("unit", "loops")
	log.Info("compiled", "sections", 3)
	log.Sync()

	got := buf.String()
	for _, want := range []string{"compiled", "unit", "loops", "sections", "3"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output missing %q: %s", want, got)
		}
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	t.Parallel()

	log := Nop()
	log.Debug("ignored")
	log.Error("ignored", "k", "v")
}

func TestFromZap(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewWriter(&buf)
	log := FromZap(base.SugaredLogger.Desugar())
	log.Warn("budget exceeded", "bytes", 42)
	log.Sync()

	if !strings.Contains(buf.String(), "budget exceeded") {
		t.Errorf("log output missing message: %s", buf.String())
	}

	FromZap(nil).Info("discarded")
}
