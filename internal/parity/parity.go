// Package parity hashes output trees and compares them file by file.
//
// Markup files are normalized with pipeline.StripSandboxMarkup before
// hashing so sandbox-only decoration does not count as a difference.
package parity

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-unitc/internal/pipeline"
)

// ErrHashTree indicates a tree could not be read or normalized.
var ErrHashTree = errors.New("hashing output tree failed")

// Tree maps slash-separated relative paths to hex SHA-256 digests.
type Tree map[string]string

// Diff lists the differences between two trees. Paths are sorted.
type Diff struct {
	Missing    []string `json:"missing" yaml:"missing"`       // in left only
	Extra      []string `json:"extra" yaml:"extra"`           // in right only
	Mismatched []string `json:"mismatched" yaml:"mismatched"` // in both, different digest
}

// Empty reports whether the trees matched.
func (d Diff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0 && len(d.Mismatched) == 0
}

// String summarises the diff on one line per category.
func (d Diff) String() string {
	var b strings.Builder
	write := func(label string, paths []string) {
		if len(paths) > 0 {
			fmt.Fprintf(&b, "%s: %s\n", label, strings.Join(paths, ", "))
		}
	}
	write("missing", d.Missing)
	write("extra", d.Extra)
	write("mismatched", d.Mismatched)
	return strings.TrimRight(b.String(), "\n")
}

// HashTree digests every regular file under dir.
func HashTree(dir string) (Tree, error) {
	tree := Tree{}
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %v", ErrHashTree, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrHashTree, err)
		}
		rel = filepath.ToSlash(rel)

		data, err := os.ReadFile(p) // #nosec G304 -- path comes from walking dir
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrHashTree, rel, err)
		}

		if isMarkup(rel) {
			normalized, err := pipeline.StripSandboxMarkup(string(data))
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrHashTree, rel, err)
			}
			data = []byte(normalized)
		}

		sum := sha256.Sum256(data)
		tree[rel] = hex.EncodeToString(sum[:])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// Compare reports how right differs from left.
func Compare(left, right Tree) Diff {
	d := Diff{Missing: []string{}, Extra: []string{}, Mismatched: []string{}}
	for p, sum := range left {
		other, ok := right[p]
		switch {
		case !ok:
			d.Missing = append(d.Missing, p)
		case other != sum:
			d.Mismatched = append(d.Mismatched, p)
		}
	}
	for p := range right {
		if _, ok := left[p]; !ok {
			d.Extra = append(d.Extra, p)
		}
	}
	sort.Strings(d.Missing)
	sort.Strings(d.Extra)
	sort.Strings(d.Mismatched)
	return d
}

func isMarkup(rel string) bool {
	switch strings.ToLower(path.Ext(rel)) {
	case ".html", ".htm":
		return true
	}
	return false
}
