package render

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-unitc/internal/fileutil"
)

// CopyResources copies every planned file into outDir using up to workers
// goroutines (GOMAXPROCS when workers < 1). The first failure cancels the
// remaining copies.
func CopyResources(ctx context.Context, plan []CopyItem, outDir string, workers int) error {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, item := range plan {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dst := filepath.Join(outDir, filepath.FromSlash(item.Dst))
			if !fileutil.IsUnderDir(dst, outDir) {
				return fmt.Errorf("%w: %s: %v", ErrCopyResource, item.Dst, fileutil.ErrPathTraversal)
			}
			if err := fileutil.CopyFile(item.Src, dst); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrCopyResource, item.Dst, err)
			}
			return nil
		})
	}

	return g.Wait()
}
