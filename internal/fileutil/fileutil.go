// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath     = errors.New("path cannot be empty")
	ErrPathTraversal = errors.New("path escapes base directory")
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Staging is a scratch directory that becomes the final output directory
// only when Commit is called. Until then the target is left untouched.
type Staging struct {
	Dir    string // staging directory, write output here
	target string
	done   bool
}

// NewStaging creates a staging directory next to target so the final rename
// stays on one filesystem.
func NewStaging(target string) (*Staging, error) {
	if target == "" {
		return nil, ErrEmptyPath
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("resolving output path: %w", err)
	}

	parent := filepath.Dir(absTarget)
	if err := os.MkdirAll(parent, DirPermissions); err != nil {
		return nil, fmt.Errorf("creating output parent: %w", err)
	}

	dir, err := os.MkdirTemp(parent, "."+filepath.Base(absTarget)+".staging-*")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}

	return &Staging{Dir: dir, target: absTarget}, nil
}

// Commit replaces the target with the staging directory.
// Any previous content of the target is removed first.
func (s *Staging) Commit() error {
	if s.done {
		return nil
	}
	if err := os.RemoveAll(s.target); err != nil {
		return fmt.Errorf("clearing output directory: %w", err)
	}
	if err := os.Rename(s.Dir, s.target); err != nil {
		return fmt.Errorf("moving staging directory into place: %w", err)
	}
	s.done = true
	return nil
}

// Cleanup removes the staging directory if it was not committed.
// Safe to call after Commit.
func (s *Staging) Cleanup() {
	if s.done {
		return
	}
	_ = os.RemoveAll(s.Dir)
	s.done = true
}

// CopyFile copies src to dst, creating parent directories of dst.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- src comes from a directory walk
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), DirPermissions); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermissions) // #nosec G304 -- dst is under the staging dir
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, data, FilePermissions)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsUnderDir reports whether path is dir itself or lies inside it.
// Both paths are cleaned; no symlinks are resolved.
func IsUnderDir(path, dir string) bool {
	cleanPath := filepath.Clean(path)
	cleanDir := filepath.Clean(dir)
	if cleanPath == cleanDir {
		return true
	}
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath, cleanDir)
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "course" -> false (name)
//   - "./build.yaml" -> true (relative path)
//   - "/etc/unitc/build.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like an absolute HTTP(S) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
