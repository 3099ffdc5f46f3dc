package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestCopyResources - parallel verbatim copy
// ---------------------------------------------------------------------------

func TestCopyResources(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	files := map[string]string{"a.txt": "alpha", "deep/b.bin": "\x00\x01\x02", "c.pdf": "pdf"}

	var plan []CopyItem
	for rel, content := range files {
		p := filepath.Join(src, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		plan = append(plan, CopyItem{Src: p, Dst: ResourcesDir + "/" + rel})
	}

	if err := CopyResources(context.Background(), plan, out, 2); err != nil {
		t.Fatalf("CopyResources() error = %v", err)
	}

	for rel, want := range files {
		got, err := os.ReadFile(filepath.Join(out, ResourcesDir, filepath.FromSlash(rel)))
		if err != nil {
			t.Errorf("reading %s: %v", rel, err)
			continue
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", rel, got, want)
		}
	}
}

func TestCopyResources_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		plan := []CopyItem{{Src: filepath.Join(t.TempDir(), "absent"), Dst: "resources/absent"}}
		err := CopyResources(context.Background(), plan, t.TempDir(), 0)
		if !errors.Is(err, ErrCopyResource) {
			t.Errorf("error = %v, want ErrCopyResource", err)
		}
	})

	t.Run("escaping destination", func(t *testing.T) {
		t.Parallel()

		src := filepath.Join(t.TempDir(), "f")
		if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		plan := []CopyItem{{Src: src, Dst: "../escape"}}
		err := CopyResources(context.Background(), plan, t.TempDir(), 1)
		if !errors.Is(err, ErrCopyResource) {
			t.Errorf("error = %v, want ErrCopyResource", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		plan := []CopyItem{{Src: "x", Dst: "resources/x"}}
		err := CopyResources(ctx, plan, t.TempDir(), 1)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
