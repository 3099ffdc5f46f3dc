package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestBannerInjection - Preview-only decoration
// ---------------------------------------------------------------------------

func TestBannerInjection_InjectBanner(t *testing.T) {
	t.Parallel()

	inj, err := NewBannerInjection("")
	if err != nil {
		t.Fatalf("NewBannerInjection() unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		html      string
		data      *BannerData
		wantIndex func(got string) bool
	}{
		{
			name: "after body tag",
			html: `<html><body class="unit-page"><header></header></body></html>`,
			data: DefaultBannerData(),
			wantIndex: func(got string) bool {
				return strings.Index(got, "sandbox-banner") > strings.Index(got, `<body class="unit-page">`) &&
					strings.Index(got, "sandbox-banner") < strings.Index(got, "<header>")
			},
		},
		{
			name: "no body prepends",
			html: `<p>fragment</p>`,
			data: DefaultBannerData(),
			wantIndex: func(got string) bool {
				return strings.HasPrefix(got, `<div class="sandbox-banner"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := inj.InjectBanner(context.Background(), tt.html, tt.data)
			if err != nil {
				t.Fatalf("InjectBanner() unexpected error: %v", err)
			}
			if !strings.Contains(got, SandboxOnlyAttr) {
				t.Errorf("InjectBanner() missing %s marker: %s", SandboxOnlyAttr, got)
			}
			if !tt.wantIndex(got) {
				t.Errorf("InjectBanner() banner in wrong place: %s", got)
			}
		})
	}
}

func TestBannerInjection_NilDataUnchanged(t *testing.T) {
	t.Parallel()

	inj, _ := NewBannerInjection("")
	in := "<body></body>"
	got, err := inj.InjectBanner(context.Background(), in, nil)
	if err != nil || got != in {
		t.Errorf("InjectBanner(nil) = %q, %v; want input unchanged", got, err)
	}
}

func TestBannerInjection_EscapesData(t *testing.T) {
	t.Parallel()

	inj, _ := NewBannerInjection("")
	got, err := inj.InjectBanner(context.Background(), "<body></body>", &BannerData{Label: "<b>", Message: "x"})
	if err != nil {
		t.Fatalf("InjectBanner() unexpected error: %v", err)
	}
	if strings.Contains(got, "<b>") {
		t.Errorf("InjectBanner() did not escape label: %s", got)
	}
}

func TestBannerInjection_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inj, _ := NewBannerInjection("")
	_, err := inj.InjectBanner(ctx, "<body></body>", DefaultBannerData())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("InjectBanner() error = %v, want context.Canceled", err)
	}
}

func TestNewBannerInjection_InvalidTemplate(t *testing.T) {
	t.Parallel()

	if _, err := NewBannerInjection("{{.Broken"); err == nil {
		t.Error("NewBannerInjection() expected parse error, got nil")
	}
}

// ---------------------------------------------------------------------------
// TestStripSandboxMarkup - Parity normalization
// ---------------------------------------------------------------------------

func TestStripSandboxMarkup_PreviewEqualsExport(t *testing.T) {
	t.Parallel()

	export := "<!DOCTYPE html>\n<html lang=\"en\">\n<head><title>T</title></head>\n" +
		"<body class=\"unit-page\" data-unit-mode=\"export\">\n<header class=\"unit-header\">H</header>\n</body>\n</html>\n"
	preview := strings.Replace(export, `data-unit-mode="export"`, `data-unit-mode="preview"`, 1)

	inj, _ := NewBannerInjection("")
	preview, err := inj.InjectBanner(context.Background(), preview, DefaultBannerData())
	if err != nil {
		t.Fatalf("InjectBanner() unexpected error: %v", err)
	}

	a, err := StripSandboxMarkup(export)
	if err != nil {
		t.Fatalf("StripSandboxMarkup(export) unexpected error: %v", err)
	}
	b, err := StripSandboxMarkup(preview)
	if err != nil {
		t.Fatalf("StripSandboxMarkup(preview) unexpected error: %v", err)
	}

	if a != b {
		t.Errorf("normalized pages differ:\nexport:  %s\npreview: %s", a, b)
	}
	if strings.Contains(a, ModeAttr) {
		t.Errorf("normalized page still has %s: %s", ModeAttr, a)
	}
}

func TestStripSandboxMarkup_KeepsOtherContent(t *testing.T) {
	t.Parallel()

	got, err := StripSandboxMarkup(`<html><body><p class="x" data-keep="1">kept</p></body></html>`)
	if err != nil {
		t.Fatalf("StripSandboxMarkup() unexpected error: %v", err)
	}
	if !strings.Contains(got, `<p class="x" data-keep="1">kept</p>`) {
		t.Errorf("StripSandboxMarkup() dropped regular content: %s", got)
	}
}
