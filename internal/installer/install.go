package installer

import (
	"fmt"
	"time"

	"github.com/spf13/afero"

	"dotinstall/internal/config"
	"dotinstall/internal/logger"
	"dotinstall/internal/state"
)

// CopyError wraps a filesystem failure while copying one pair.
type CopyError struct {
	Src  string
	Dest string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("Failed to copy `%s` to `%s`: %v", e.Src, e.Dest, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// Result lists what Install did with each pair.
type Result struct {
	Copied  []config.Pair
	Skipped []config.Pair
}

// Executor applies descriptors to the filesystem.
// State is optional; when set, every successful copy is recorded in it.
type Executor struct {
	Fs     afero.Fs
	Prompt Prompter
	State  *state.State
	Now    func() time.Time
}

// NewExecutor returns an Executor that records into st (which may be nil).
func NewExecutor(fs afero.Fs, prompt Prompter, st *state.State) *Executor {
	return &Executor{Fs: fs, Prompt: prompt, State: st, Now: time.Now}
}

// Install copies every (source, destination) pair of d in order, asking before
// overwriting an existing file. The first error stops the descriptor.
func (e *Executor) Install(d *config.Descriptor) (Result, error) {
	var res Result
	logger.Info("Installing %s on the %s platform", d.Name, d.Platform)

	for _, p := range d.Pairs() {
		dest := effectiveDest(e.Fs, p.Src, p.Dest)
		pair := config.Pair{Src: p.Src, Dest: dest}

		if isRegularFile(e.Fs, dest) {
			ok, err := e.confirmOverwrite(dest)
			if err != nil {
				return res, err
			}
			if !ok {
				logger.Debug("Keeping existing %s", dest)
				res.Skipped = append(res.Skipped, pair)
				continue
			}
		}

		if err := e.copy(d.Name, pair); err != nil {
			return res, err
		}
		res.Copied = append(res.Copied, pair)
	}
	return res, nil
}

// confirmOverwrite is the conflict-resolution step: warn, read one answer,
// and report whether the destination may be replaced.
func (e *Executor) confirmOverwrite(dest string) (bool, error) {
	logger.Warn("File `%s` already exists... Do you want to remove it? (y/N)", dest)

	line, err := e.Prompt.ReadLine()
	if err != nil {
		return false, err
	}
	answer, err := ParseAnswer(line)
	if err != nil {
		return false, err
	}
	return answer == AnswerYes, nil
}

func (e *Executor) copy(pkg string, p config.Pair) error {
	if err := copyFile(e.Fs, p.Src, p.Dest); err != nil {
		return &CopyError{Src: p.Src, Dest: p.Dest, Err: err}
	}
	logger.OK("Successfully copied `%s` to `%s`", p.Src, p.Dest)

	if e.State != nil {
		now := time.Now
		if e.Now != nil {
			now = e.Now
		}
		e.State.Record(pkg, p.Src, p.Dest, now())
	}
	return nil
}
