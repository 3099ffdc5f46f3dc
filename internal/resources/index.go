package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-unitc/internal/unit"
)

// kindByExt maps lowercase extensions to resource kinds.
var kindByExt = map[string]unit.ResourceKind{
	".pdf":  unit.ResourcePDF,
	".mp4":  unit.ResourceVideo,
	".webm": unit.ResourceVideo,
	".mov":  unit.ResourceVideo,
	".m4v":  unit.ResourceVideo,
	".mp3":  unit.ResourceAudio,
	".wav":  unit.ResourceAudio,
	".ogg":  unit.ResourceAudio,
	".m4a":  unit.ResourceAudio,
	".png":  unit.ResourceImage,
	".jpg":  unit.ResourceImage,
	".jpeg": unit.ResourceImage,
	".gif":  unit.ResourceImage,
	".svg":  unit.ResourceImage,
	".webp": unit.ResourceImage,
}

// KindOf classifies a file name by its extension.
func KindOf(name string) unit.ResourceKind {
	if k, ok := kindByExt[strings.ToLower(filepath.Ext(name))]; ok {
		return k
	}
	return unit.ResourceFile
}

// Index walks root recursively and returns one Resource per regular file,
// sorted by relative path. Hidden entries and non-regular files are skipped.
// A missing root yields an empty list.
func Index(root string) ([]unit.Resource, error) {
	if root == "" {
		return nil, nil
	}

	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat resource root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrResourceRoot, root)
	}

	var rels []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", p, err)
		}
		if p == root {
			return nil
		}
		if isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", p, err)
		}
		rels = append(rels, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(rels)

	var used unit.IDSet
	out := make([]unit.Resource, 0, len(rels))
	for _, rel := range rels {
		var id string
		id, used = unit.UniqueID(unit.Slugify(rel), used)
		out = append(out, unit.Resource{
			ID:    id,
			Title: path.Base(rel),
			Href:  rel,
			Kind:  KindOf(rel),
		})
	}
	return out, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
