package state

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"

	"dotinstall/internal/logger"
)

// FileState records one destination this tool copied into place.
type FileState struct {
	Package     string    `json:"package"`      // Descriptor name that owns the file
	Source      string    `json:"source"`       // Absolute source path it was copied from
	InstalledAt time.Time `json:"installed_at"` // When the last copy happened
}

// State holds every destination installed so far, keyed by absolute destination path.
type State struct {
	Files map[string]FileState `json:"files"`
}

// New returns an empty State.
func New() *State {
	return &State{Files: make(map[string]FileState)}
}

// DefaultPath is the state file location under $XDG_STATE_HOME.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, "dotinstall", "state.json")
}

// Record marks dest as installed from src by pkg.
func (s *State) Record(pkg, src, dest string, at time.Time) {
	s.Files[dest] = FileState{Package: pkg, Source: src, InstalledAt: at}
}

// Lookup returns the recorded entry for dest, if any.
func (s *State) Lookup(dest string) (FileState, bool) {
	fs, ok := s.Files[dest]
	return fs, ok
}

// LoadState loads the saved state from a JSON file at the given path.
// A missing file yields an empty State. Any other read failure, or a corrupt
// file, is an error so that SaveState never clobbers a file it could not read.
func LoadState(fs afero.Fs, path string) (*State, error) {
	// Read entire state JSON file into memory
	raw, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("No state at %s, starting empty", path)
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file %s: %w", path, err)
	}

	// Parse JSON data into a State struct
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("corrupt state file %s: %w", path, err)
	}

	// JSON may contain null for the map
	if st.Files == nil {
		st.Files = make(map[string]FileState)
	}
	return &st, nil
}

// SaveState writes the given State to path as indented JSON,
// creating the parent directory when needed.
func SaveState(fs afero.Fs, path string, st *State) error {
	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	logger.Debug("Writing state to %s (%d entries)", path, len(st.Files))

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, raw, 0644); err != nil {
		return fmt.Errorf("write state file %s: %w", path, err)
	}
	return nil
}
