package autowrap

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Options configures WrapBlocks.
type Options struct {
	// MaxCPL is the maximum number of characters per line.
	MaxCPL int
	Mode   Mode
	// Workers is the number of blocks wrapped concurrently. If 0 or
	// negative, one worker per CPU is used.
	Workers int
}

// WrapBlocks wraps each of the given text blocks independently and returns
// the results in the same order. It returns ErrEmptySelection if there is
// nothing to wrap.
func WrapBlocks(ctx context.Context, blocks []string, opts Options) ([]string, error) {
	if len(blocks) == 0 {
		return nil, ErrEmptySelection
	}
	if opts.MaxCPL < 1 {
		return nil, fmt.Errorf("%w: max characters per line must be at least 1, got %d", ErrInvalidArgument, opts.MaxCPL)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log.Debugf("Wrapping %d blocks with %d workers", len(blocks), workers)
	start := time.Now()

	wrapped := make([]string, len(blocks))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for idx, block := range blocks {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			w, err := WrapText(block, opts.MaxCPL, opts.Mode)
			if err != nil {
				return fmt.Errorf("failed to wrap block %d: %w", idx+1, err)
			}
			wrapped[idx] = w
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	log.Debugf("Wrapped %d blocks in %s", len(blocks), time.Since(start))
	return wrapped, nil
}
