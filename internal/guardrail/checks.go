package guardrail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-unitc/internal/fileutil"
)

var (
	// cssClassPattern matches class selectors in a stylesheet.
	cssClassPattern = regexp.MustCompile(`\.(-?[_a-zA-Z][_a-zA-Z0-9-]*)`)

	// cssCommentPattern strips comments before collecting selectors.
	cssCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// externalURLPattern matches absolute http(s) URLs in text.
	externalURLPattern = regexp.MustCompile("https?://[^\\s\"'<>()`]+")

	// schemePattern matches a URL scheme prefix such as mailto: or data:.
	schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
)

// declaredClasses collects class names from every stylesheet.
func declaredClasses(files []outputFile) (map[string]struct{}, error) {
	classes := make(map[string]struct{})
	for _, f := range files {
		if kindOf(f.rel) != kindStyle {
			continue
		}
		data, err := os.ReadFile(f.abs) // #nosec G304 -- path comes from walking the output dir
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, f.rel, err)
		}
		css := cssCommentPattern.ReplaceAllString(string(data), "")
		for _, m := range cssClassPattern.FindAllStringSubmatch(css, -1) {
			classes[m[1]] = struct{}{}
		}
	}
	return classes, nil
}

// checker holds the read-only state shared by file checks.
type checker struct {
	root      string
	classes   map[string]struct{}
	allowlist []string
	exempt    []string
}

// checkFile returns findings for one file in document order.
func (c *checker) checkFile(f outputFile) ([]string, error) {
	kind := kindOf(f.rel)
	if kind == kindOther {
		return nil, nil
	}

	data, err := os.ReadFile(f.abs) // #nosec G304 -- path comes from walking the output dir
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, f.rel, err)
	}

	var findings []string
	if kind == kindMarkup {
		found, err := c.checkMarkup(f, data)
		if err != nil {
			return nil, err
		}
		findings = append(findings, found...)
	}
	findings = append(findings, c.checkURLs(data)...)
	return findings, nil
}

// checkMarkup tokenizes one markup file and checks tags and attributes.
func (c *checker) checkMarkup(f outputFile, data []byte) ([]string, error) {
	var findings []string
	z := html.NewTokenizer(bytes.NewReader(data))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return findings, nil
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrParseHTML, f.rel, z.Err())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			if tag == "style" {
				findings = append(findings, "inline <style> element")
			}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				findings = append(findings, c.checkAttr(f, tag, string(key), string(val))...)
			}
		}
	}
}

func (c *checker) checkAttr(f outputFile, tag, key, val string) []string {
	switch key {
	case "style":
		return []string{fmt.Sprintf("inline style attribute on <%s>", tag)}
	case "class":
		var findings []string
		for _, cls := range strings.Fields(val) {
			if !c.classAllowed(cls) {
				findings = append(findings, fmt.Sprintf("unknown class %q", cls))
			}
		}
		return findings
	case "src", "href":
		if finding := c.checkReference(f, val); finding != "" {
			return []string{finding}
		}
	}
	return nil
}

func (c *checker) classAllowed(cls string) bool {
	if _, ok := c.classes[cls]; ok {
		return true
	}
	for _, prefix := range c.exempt {
		if strings.HasPrefix(cls, prefix) {
			return true
		}
	}
	return false
}

// checkReference resolves a same-origin reference and reports a missing
// or escaping target. Fragments, scheme URLs and protocol-relative URLs
// are not local references.
func (c *checker) checkReference(f outputFile, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") || schemePattern.MatchString(ref) {
		return ""
	}

	target := ref
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		target = target[:i]
	}
	if target == "" {
		return ""
	}
	if unescaped, err := url.PathUnescape(target); err == nil {
		target = unescaped
	}

	var resolved string
	if strings.HasPrefix(target, "/") {
		resolved = filepath.Join(c.root, filepath.FromSlash(target))
	} else {
		resolved = filepath.Join(filepath.Dir(f.abs), filepath.FromSlash(target))
	}

	if !fileutil.IsUnderDir(resolved, c.root) {
		return fmt.Sprintf("reference escapes output directory: %q", ref)
	}
	if _, err := os.Stat(resolved); err != nil {
		return fmt.Sprintf("missing asset %q", ref)
	}
	return ""
}

// checkURLs reports absolute URLs not covered by the allowlist.
func (c *checker) checkURLs(data []byte) []string {
	var findings []string
	for _, u := range externalURLPattern.FindAllString(string(data), -1) {
		if !c.urlAllowed(u) {
			findings = append(findings, fmt.Sprintf("external URL not allowed: %s", u))
		}
	}
	return findings
}

func (c *checker) urlAllowed(u string) bool {
	for _, prefix := range c.allowlist {
		if strings.HasPrefix(u, prefix) {
			return true
		}
	}
	return false
}

// cleanAllowlist trims entries and drops blanks.
func cleanAllowlist(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
