package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrBannerRender indicates the sandbox banner template failed to execute.
var ErrBannerRender = errors.New("sandbox banner rendering failed")

// SandboxOnlyAttr marks elements that exist only in preview builds.
// Parity normalization removes every element carrying it.
const SandboxOnlyAttr = "data-sandbox-only"

// ModeAttr is the body attribute recording the build mode.
const ModeAttr = "data-unit-mode"

// defaultBannerTemplate is the built-in preview banner.
const defaultBannerTemplate = `<div class="sandbox-banner" ` + SandboxOnlyAttr + ` role="status">` +
	`<strong class="sandbox-banner-label">{{.Label}}</strong> {{.Message}}</div>`

// BannerData holds the text shown in the preview banner.
type BannerData struct {
	Label   string
	Message string
}

// DefaultBannerData returns the standard preview wording.
func DefaultBannerData() *BannerData {
	return &BannerData{
		Label:   "Preview",
		Message: "Sandbox build for review. Not for distribution.",
	}
}

// BannerInjector defines the contract for sandbox banner injection into HTML.
type BannerInjector interface {
	InjectBanner(ctx context.Context, htmlContent string, data *BannerData) (string, error)
}

// BannerInjection renders and injects the preview banner right after <body>.
type BannerInjection struct {
	tmpl *template.Template
}

// NewBannerInjection creates a BannerInjection from template content.
// An empty template selects the built-in banner.
func NewBannerInjection(tmplContent string) (*BannerInjection, error) {
	if tmplContent == "" {
		tmplContent = defaultBannerTemplate
	}
	tmpl, err := template.New("banner").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing banner template: %w", err)
	}
	return &BannerInjection{tmpl: tmpl}, nil
}

// InjectBanner renders the banner template and injects it after <body>.
// If data is nil, returns htmlContent unchanged.
func (b *BannerInjection) InjectBanner(ctx context.Context, htmlContent string, data *BannerData) (string, error) {
	if data == nil {
		return htmlContent, nil
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBannerRender, err)
	}

	bannerHTML := buf.String()
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + "\n" + bannerHTML + htmlContent[insertPos:], nil
		}
	}

	// Fallback: prepend
	return bannerHTML + htmlContent, nil
}
