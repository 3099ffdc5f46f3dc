package parity

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// ---------------------------------------------------------------------------
// TestHashTree - normalized digests
// ---------------------------------------------------------------------------

func TestHashTree_IgnoresSandboxMarkup(t *testing.T) {
	t.Parallel()

	preview := writeTree(t, map[string]string{
		"index.html": `<html><body class="unit-page" data-unit-mode="preview">` + "\n" +
			`<div class="sandbox-banner" data-sandbox-only role="status">Preview</div>` + "\n" +
			`<main>Hi</main></body></html>`,
		"assets/unit.css": ".a{}",
	})
	export := writeTree(t, map[string]string{
		"index.html":      `<html><body class="unit-page" data-unit-mode="export">` + "\n" + `<main>Hi</main></body></html>`,
		"assets/unit.css": ".a{}",
	})

	left, err := HashTree(preview)
	if err != nil {
		t.Fatal(err)
	}
	right, err := HashTree(export)
	if err != nil {
		t.Fatal(err)
	}

	if d := Compare(left, right); !d.Empty() {
		t.Errorf("Compare() = %v, want empty", d)
	}
	if len(left) != 2 {
		t.Errorf("HashTree() has %d entries, want 2", len(left))
	}
	if _, ok := left["assets/unit.css"]; !ok {
		t.Error("paths must be slash-separated and relative")
	}
}

func TestHashTree_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := HashTree(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrHashTree) {
		t.Errorf("error = %v, want ErrHashTree", err)
	}
}

// ---------------------------------------------------------------------------
// TestCompare - diff categories
// ---------------------------------------------------------------------------

func TestCompare(t *testing.T) {
	t.Parallel()

	left := Tree{"a": "1", "b": "2", "c": "3"}
	right := Tree{"b": "2", "c": "x", "d": "4"}

	got := Compare(left, right)
	want := Diff{Missing: []string{"a"}, Extra: []string{"d"}, Mismatched: []string{"c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compare() = %+v, want %+v", got, want)
	}
	if got.Empty() {
		t.Error("Empty() = true, want false")
	}

	s := got.String()
	for _, sub := range []string{"missing: a", "extra: d", "mismatched: c"} {
		if !strings.Contains(s, sub) {
			t.Errorf("String() = %q, missing %q", s, sub)
		}
	}
}

func TestCompare_Identical(t *testing.T) {
	t.Parallel()

	tree := Tree{"index.html": "abc"}
	if d := Compare(tree, tree); !d.Empty() || d.String() != "" {
		t.Errorf("Compare() = %+v, want empty", d)
	}
}
