package installer

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"dotinstall/internal/config"
	"dotinstall/internal/logger"
)

// ErrIncomplete is returned by a continue-on-error run in which some descriptors failed.
var ErrIncomplete = errors.New("installation incomplete")

// Runner is the top-level driver: discover descriptors under Root, then load
// and install them one at a time in traversal order.
type Runner struct {
	Fs       afero.Fs
	Root     string
	Loader   *config.Loader
	Executor *Executor

	// ContinueOnError reports a failing descriptor and moves on instead of
	// stopping the run.
	ContinueOnError bool
}

// Summary totals a run.
type Summary struct {
	Descriptors int
	Copied      int
	Skipped     int
	Failed      int
}

// Run processes every descriptor. By default the first error aborts the run and
// is returned unprinted; the caller reports it.
//
// Parameters:
//   - ctx: Checked between descriptors so an interrupted run stops cleanly
//
// Returns:
//   - Summary: Counts accumulated up to the point the run stopped
//   - error: The first failure, or ErrIncomplete when ContinueOnError is set
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	// Collect descriptor files in traversal order
	paths, err := Discover(r.Fs, r.Root)
	if err != nil {
		return sum, err
	}
	logger.Debug("Found %d descriptor(s) under %s", len(paths), r.Root)

	for _, path := range paths {
		// Stop before starting the next descriptor if the context is done
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Descriptors++

		// Load and install; partial results still count toward the summary
		res, err := r.installOne(path)
		sum.Copied += len(res.Copied)
		sum.Skipped += len(res.Skipped)
		if err == nil {
			continue
		}
		// Fail fast unless asked to keep going
		if !r.ContinueOnError {
			return sum, err
		}
		sum.Failed++
		logger.Error("%v", err)
	}

	if sum.Failed > 0 {
		return sum, fmt.Errorf("%w: %d of %d descriptor(s) failed", ErrIncomplete, sum.Failed, sum.Descriptors)
	}
	return sum, nil
}

// installOne loads a single descriptor and hands it to the executor.
func (r *Runner) installOne(path string) (Result, error) {
	d, err := r.Loader.Load(path)
	if err != nil {
		return Result{}, err
	}
	return r.Executor.Install(d)
}
