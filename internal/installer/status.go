package installer

import (
	"github.com/spf13/afero"

	"dotinstall/internal/config"
	"dotinstall/internal/state"
)

// FileStatus describes a destination without touching it.
type FileStatus string

const (
	StatusMissing   FileStatus = "missing"   // nothing at the destination yet
	StatusPresent   FileStatus = "present"   // a file exists but was not put there by us
	StatusInstalled FileStatus = "installed" // a file exists and the state file records it
)

// PairStatus is the status of one pair of a descriptor.
type PairStatus struct {
	config.Pair
	Status FileStatus
}

// PackageStatus groups the pair statuses of one descriptor.
type PackageStatus struct {
	Name     string
	Platform string
	Path     string
	Pairs    []PairStatus
}

// Inspect loads every descriptor under root and reports, for each pair, whether
// its destination exists and whether st records it. Nothing is copied.
// A nil st treats every existing destination as present.
func Inspect(fs afero.Fs, root string, loader *config.Loader, st *state.State) ([]PackageStatus, error) {
	paths, err := Discover(fs, root)
	if err != nil {
		return nil, err
	}

	out := make([]PackageStatus, 0, len(paths))
	for _, path := range paths {
		d, err := loader.Load(path)
		if err != nil {
			return nil, err
		}

		ps := PackageStatus{Name: d.Name, Platform: d.Platform, Path: d.Path}
		for _, p := range d.Pairs() {
			dest := effectiveDest(fs, p.Src, p.Dest)
			ps.Pairs = append(ps.Pairs, PairStatus{
				Pair:   config.Pair{Src: p.Src, Dest: dest},
				Status: destStatus(fs, dest, st),
			})
		}
		out = append(out, ps)
	}
	return out, nil
}

func destStatus(fs afero.Fs, dest string, st *state.State) FileStatus {
	if !isRegularFile(fs, dest) {
		return StatusMissing
	}
	if st != nil {
		if _, ok := st.Lookup(dest); ok {
			return StatusInstalled
		}
	}
	return StatusPresent
}
