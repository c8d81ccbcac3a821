// Package filesystem provides a read-only abstraction over browsable file
// trees, so the browser core can list local directories and remote SFTP
// directories through the same interface, and tests can substitute fakes
// without touching the disk.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSystem is the set of operations the browser needs to project a
// directory tree into listings.
//
// ReadDir must return entries in the backend's native enumeration order.
// Callers depend on that order being preserved; implementations must not
// sort.
//
// The ReadDir/Lstat/Join subset satisfies kr/fs.FileSystem, so any
// implementation can be walked with fs.WalkFS.
type FileSystem interface {
	// ReadDir lists the named directory in native enumeration order.
	ReadDir(dirname string) ([]os.FileInfo, error)

	// Lstat returns info about the named file without following symlinks.
	Lstat(name string) (os.FileInfo, error)

	// Stat returns info about the named file.
	Stat(name string) (os.FileInfo, error)

	// Join joins path elements using the backend's separator.
	Join(elem ...string) string

	// Dir returns all but the last element of the path.
	Dir(name string) string

	// Abs returns an absolute representation of the path.
	Abs(name string) (string, error)

	// Rel returns the path to target relative to base.
	Rel(base, target string) (string, error)
}

// LocalFileSystem implements FileSystem using the os package.
type LocalFileSystem struct{}

// NewLocalFileSystem creates a new LocalFileSystem instance.
func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// ReadDir lists a directory in the order the OS returns entries.
// os.ReadDir sorts by name, which would break the native-order contract,
// so this goes through File.Readdir instead.
func (fs *LocalFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	dir, err := os.Open(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", dirname, err)
	}
	defer dir.Close()

	infos, err := dir.Readdir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirname, err)
	}

	return infos, nil
}

// Lstat returns file info without following symlinks.
func (fs *LocalFileSystem) Lstat(name string) (os.FileInfo, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", name, err)
	}

	return info, nil
}

// Stat returns file information.
func (fs *LocalFileSystem) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", name, err)
	}

	return info, nil
}

// Join joins path elements with the OS separator.
func (fs *LocalFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Dir returns the parent directory of the path.
func (fs *LocalFileSystem) Dir(name string) string {
	return filepath.Dir(name)
}

// Abs returns the absolute form of the path.
func (fs *LocalFileSystem) Abs(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", name, err)
	}

	return abs, nil
}

// Rel returns target relative to base.
func (fs *LocalFileSystem) Rel(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", fmt.Errorf("failed to relativize %s against %s: %w", target, base, err)
	}

	return rel, nil
}
