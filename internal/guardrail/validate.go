package guardrail

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// outputFile is one regular file found under the output directory.
type outputFile struct {
	rel  string // slash-separated
	abs  string
	size int64
}

// Validate checks every file under outputDir. Unreadable input is returned
// as an error; guardrail violations are returned in the Report.
func Validate(ctx context.Context, outputDir string, allowlist []string, opts ...Option) (*Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	files, err := listFiles(root)
	if err != nil {
		return nil, err
	}

	classes, err := declaredClasses(files)
	if err != nil {
		return nil, err
	}

	c := &checker{
		root:      root,
		classes:   classes,
		allowlist: cleanAllowlist(allowlist),
		exempt:    o.exemptPrefixes,
	}

	// Each worker writes only its own slot, so order follows files.
	findings := make([][]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			found, err := c.checkFile(f)
			if err != nil {
				return err
			}
			findings[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := newReport()
	for i, f := range files {
		for _, finding := range dedupe(findings[i]) {
			report.Errors = append(report.Errors, f.rel+": "+finding)
		}
	}
	report.Warnings = sizeWarnings(files, o.maxFileBytes, o.maxTotalBytes)
	return report, nil
}

// listFiles returns every regular file under root sorted by relative path.
func listFiles(root string) ([]outputFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrOutputDir, root)
	}

	var files []outputFile
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %v", ErrOutputDir, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadFile, err)
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrOutputDir, err)
		}
		files = append(files, outputFile{rel: filepath.ToSlash(rel), abs: p, size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].rel < files[j].rel })
	return files, nil
}

// fileKind groups files by the checks that apply to them.
type fileKind int

const (
	kindOther fileKind = iota
	kindMarkup
	kindStyle
	kindScript
)

func kindOf(rel string) fileKind {
	switch strings.ToLower(path.Ext(rel)) {
	case ".html", ".htm":
		return kindMarkup
	case ".css":
		return kindStyle
	case ".js", ".mjs":
		return kindScript
	default:
		return kindOther
	}
}

// dedupe drops repeated findings, keeping first occurrences in order.
func dedupe(in []string) []string {
	if len(in) < 2 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := in[:0:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// sizeWarnings reports files over maxFile and a total over maxTotal.
func sizeWarnings(files []outputFile, maxFile, maxTotal int64) []string {
	warnings := []string{}
	var total int64
	for _, f := range files {
		total += f.size
		if f.size > maxFile {
			warnings = append(warnings, fmt.Sprintf("%s: file size %d bytes exceeds %d", f.rel, f.size, maxFile))
		}
	}
	if total > maxTotal {
		warnings = append(warnings, fmt.Sprintf("output: total size %d bytes exceeds %d", total, maxTotal))
	}
	return warnings
}
