package installer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"dotinstall/internal/logger"
)

// ErrSameFile is returned when the source and destination resolve to one file,
// e.g. a destination that is a symlink back to its source.
var ErrSameFile = errors.New("source and destination are the same file")

// copyFile copies src to dst, preserving permission bits and modification time.
// It creates any missing directories in the destination path and truncates an
// existing destination file.
//
// Parameters:
//   - fs: Filesystem both paths live on
//   - src: Regular file to copy from
//   - dst: Path to write; symlinks at dst are followed
//
// Returns:
//   - error: ErrSameFile when src and dst are one file, otherwise any I/O failure
func copyFile(fs afero.Fs, src, dst string) error {
	// Stat first so mode and mtime can be carried over
	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source failed: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("source is a directory")
	}

	// Open the source file
	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	// Refuse to copy a file onto itself; truncating dst would empty src
	if filepath.Clean(src) == filepath.Clean(dst) {
		return ErrSameFile
	}
	if dstInfo, err := fs.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return ErrSameFile
	}

	// Ensure the destination directory exists
	if err := fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	// Create or truncate the destination with the source's permission bits
	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}

	// Copy contents
	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("copy failed: %w", err)
	}
	// Close before touching metadata; closing a written file may bump its mtime
	if err := out.Close(); err != nil {
		return fmt.Errorf("close target failed: %w", err)
	}
	logger.Debug("Wrote %d bytes to %s", n, dst)

	// OpenFile only applies the mode to new files, so set it explicitly
	if err := fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod failed: %w", err)
	}
	if err := fs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("set times failed: %w", err)
	}
	return nil
}

// isRegularFile reports whether path exists and is a regular file
// (symlinks are followed).
func isRegularFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// isDir reports whether path exists and is a directory.
func isDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.IsDir()
}

// effectiveDest returns where src actually lands: inside dest when dest is an
// existing directory, dest itself otherwise.
func effectiveDest(fs afero.Fs, src, dest string) string {
	if isDir(fs, dest) {
		return filepath.Join(dest, filepath.Base(src))
	}
	return dest
}
