package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DescriptorExt is the extension a descriptor file must carry.
const DescriptorExt = ".yaml"

// IsDescriptorFile reports whether a file name follows the descriptor naming
// convention: it contains "install" and ends with DescriptorExt.
func IsDescriptorFile(name string) bool {
	return strings.Contains(name, "install") && strings.HasSuffix(name, DescriptorExt)
}

// Discover walks root recursively and returns every descriptor file in
// traversal (lexical) order.
func Discover(fs afero.Fs, root string) ([]string, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("dotfiles root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dotfiles root %s is not a directory", root)
	}

	var found []string
	err = afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !IsDescriptorFile(filepath.Base(path)) {
			return nil
		}
		// Walk reports symlinks unresolved; accept one whose target is a regular file
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fs.Stat(path)
			if err != nil {
				return fmt.Errorf("resolve descriptor link %s: %w", path, err)
			}
			info = target
		}
		if info.Mode().IsRegular() {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return found, nil
}
