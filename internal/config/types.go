package config

// Descriptor is one package's placement rules, resolved for the current platform.
// - Name: display label of the package.
// - Platform: platform identifier the rules were resolved for (e.g. "Linux").
// - Sources/Destinations: absolute paths, paired by index.
// - Path: descriptor file the rules were read from.
type Descriptor struct {
	Name         string
	Platform     string
	Sources      []string
	Destinations []string
	Path         string
}

// Pair is a single source to destination copy instruction.
type Pair struct {
	Src  string
	Dest string
}

// Pairs returns the (source, destination) pairs in declaration order.
func (d *Descriptor) Pairs() []Pair {
	pairs := make([]Pair, len(d.Sources))
	for i := range d.Sources {
		pairs[i] = Pair{Src: d.Sources[i], Dest: d.Destinations[i]}
	}
	return pairs
}

// Descriptor file keys.
const (
	keyName     = "name"
	keyPlatform = "platform"
	keySrc      = "src"
	keyDest     = "dest"
)
