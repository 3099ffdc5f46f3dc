package unitc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-unitc/internal/parity"
)

// VerifyParity compiles the unit once per mode into temporary directories
// and compares the outputs file by file, ignoring sandbox-only markup.
// in.OutDir and in.Mode are ignored. A non-empty difference is returned
// together with ErrParityMismatch.
func (c *Compiler) VerifyParity(ctx context.Context, in Input) (*ParityReport, error) {
	tmp, err := os.MkdirTemp("", "unitc-parity-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	trees := make(map[Mode]parity.Tree, 2)
	for _, mode := range []Mode{ModePreview, ModeExport} {
		run := in
		run.Mode = mode
		run.OutDir = filepath.Join(tmp, string(mode))
		if _, err := c.Compile(ctx, run); err != nil {
			return nil, fmt.Errorf("compiling %s build: %w", mode, err)
		}

		tree, err := parity.HashTree(run.OutDir)
		if err != nil {
			return nil, err
		}
		trees[mode] = tree
	}

	diff := parity.Compare(trees[ModeExport], trees[ModePreview])
	c.log.Debug("parity checked", "files", len(trees[ModeExport]), "equal", diff.Empty())
	if !diff.Empty() {
		return &diff, fmt.Errorf("%w:\n%s", ErrParityMismatch, diff.String())
	}
	return &diff, nil
}
