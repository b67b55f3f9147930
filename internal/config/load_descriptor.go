package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"dotinstall/internal/logger"
)

// Loader turns descriptor files into validated Descriptors.
// Platform and Home are fields so callers (and tests) can pin them.
type Loader struct {
	Fs       afero.Fs
	Platform string
	Home     string
}

// NewLoader returns a Loader for the running platform and user.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{
		Fs:       fs,
		Platform: CurrentPlatform(),
		Home:     HomeDir(),
	}
}

// LoadDescriptor reads a descriptor from the real filesystem for the running platform.
func LoadDescriptor(path string) (*Descriptor, error) {
	return NewLoader(afero.NewOsFs()).Load(path)
}

// Load reads the descriptor at path and resolves it for l.Platform.
// It never touches the filesystem beyond reading path.
//
// Parameters:
//   - path: Location of the descriptor file (e.g., "dotfiles/vim/install.yaml")
//
// Returns:
//   - *Descriptor: Name plus absolute source/destination lists for this platform
//   - error: One of the typed errors in this package when the file is unusable
func (l *Loader) Load(path string) (*Descriptor, error) {
	// Read the raw YAML bytes
	raw, err := afero.ReadFile(l.Fs, path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	// Decode into a generic map so missing keys can be told apart from wrong types
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	logger.Debug("Parsed descriptor %s", path)

	// The package name is mandatory
	name, err := stringField(doc, keyName, path)
	if err != nil {
		return nil, err
	}

	// Look up the rules for the running platform only; other platforms are ignored
	platforms, ok := doc[keyPlatform]
	if !ok || platforms == nil {
		return nil, &MissingFieldError{Path: path, Field: keyPlatform}
	}
	platformMap, ok := asMap(platforms)
	if !ok {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("`%s` must be a mapping", keyPlatform)}
	}

	rules, ok := platformMap[l.Platform]
	if !ok {
		return nil, &UnsupportedPlatformError{Path: path, Platform: l.Platform}
	}
	// An empty platform entry behaves like one with no keys at all
	ruleMap, ok := asMap(rules)
	if rules == nil {
		ruleMap, ok = map[string]any{}, true
	}
	if !ok {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("`%s.%s` must be a mapping", keyPlatform, l.Platform)}
	}

	// Both lists are required and pair up by index
	src, err := stringList(ruleMap, keySrc, path)
	if err != nil {
		return nil, err
	}
	dest, err := stringList(ruleMap, keyDest, path)
	if err != nil {
		return nil, err
	}
	if len(src) != len(dest) {
		return nil, &LengthMismatchError{Path: path, Sources: len(src), Destinations: len(dest)}
	}

	// Build the descriptor and make every path absolute
	d := &Descriptor{
		Name:     name,
		Platform: l.Platform,
		Path:     path,
	}
	if err := l.resolve(d, src, dest); err != nil {
		return nil, err
	}
	return d, nil
}

// resolve applies home-tilde substitution and makes every path absolute.
// Relative sources are taken relative to the descriptor's directory.
func (l *Loader) resolve(d *Descriptor, src, dest []string) error {
	root := filepath.Dir(d.Path)

	// Sources: expand ~, then anchor relative paths at the descriptor's directory
	d.Sources = make([]string, len(src))
	for i, s := range src {
		s = ExpandHome(s, l.Home)
		if !filepath.IsAbs(s) {
			s = filepath.Join(root, s)
		}
		abs, err := filepath.Abs(s)
		if err != nil {
			return fmt.Errorf("resolve source %q in `%s`: %w", s, d.Path, err)
		}
		d.Sources[i] = abs
	}

	// Destinations: expand ~, relative paths resolve against the working directory
	d.Destinations = make([]string, len(dest))
	for i, s := range dest {
		abs, err := filepath.Abs(ExpandHome(s, l.Home))
		if err != nil {
			return fmt.Errorf("resolve destination %q in `%s`: %w", s, d.Path, err)
		}
		d.Destinations[i] = abs
	}
	return nil
}

// stringField returns doc[key] as a non-empty string.
func stringField(doc map[string]any, key, path string) (string, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return "", &MissingFieldError{Path: path, Field: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &ParseError{Path: path, Err: fmt.Errorf("`%s` must be a string", key)}
	}
	if s == "" {
		return "", &MissingFieldError{Path: path, Field: key}
	}
	return s, nil
}

// stringList returns m[key] as a list of non-empty path strings.
func stringList(m map[string]any, key, path string) ([]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, &MissingFieldError{Path: path, Field: key}
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("`%s` must be a list of paths", key)}
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok || s == "" {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("`%s[%d]` must be a non-empty path", key, i)}
		}
		out[i] = s
	}
	return out, nil
}

// asMap accepts both map shapes yaml.v3 can produce for a mapping node.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}
