package filesystem

import (
	"fmt"
	"os"
	"path"
	"strings"
)

// SFTPFileSystem implements FileSystem over an SFTP connection.
// Remote paths always use forward slashes and must be absolute.
type SFTPFileSystem struct {
	conn *SFTPConnection
}

// NewSFTPFileSystem creates a FileSystem backed by the given connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return &SFTPFileSystem{conn: conn}
}

// ReadDir lists a remote directory in the order the server returns entries.
func (fs *SFTPFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	infos, err := fs.conn.Client().ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote directory %s: %w", dirname, err)
	}

	return infos, nil
}

// Lstat returns info about a remote file without following symlinks.
func (fs *SFTPFileSystem) Lstat(name string) (os.FileInfo, error) {
	info, err := fs.conn.Client().Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat remote %s: %w", name, err)
	}

	return info, nil
}

// Stat returns info about a remote file.
func (fs *SFTPFileSystem) Stat(name string) (os.FileInfo, error) {
	info, err := fs.conn.Client().Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote %s: %w", name, err)
	}

	return info, nil
}

// Join joins path elements with forward slashes.
func (fs *SFTPFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

// Dir returns the parent directory of the remote path.
func (fs *SFTPFileSystem) Dir(name string) string {
	return path.Dir(name)
}

// Abs resolves a remote path to its absolute form. Relative paths
// (including ".", meaning the login directory) are resolved server-side.
func (fs *SFTPFileSystem) Abs(name string) (string, error) {
	if path.IsAbs(name) {
		return path.Clean(name), nil
	}

	resolved, err := fs.conn.Client().RealPath(name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve remote %s: %w", name, err)
	}

	return resolved, nil
}

// Rel returns target relative to base using slash semantics.
func (fs *SFTPFileSystem) Rel(base, target string) (string, error) {
	base = path.Clean(base)
	target = path.Clean(target)

	if base == target {
		return ".", nil
	}

	baseParts := splitSlash(base)
	targetParts := splitSlash(target)

	// Longest common prefix of path elements.
	common := 0
	for common < len(baseParts) && common < len(targetParts) &&
		baseParts[common] == targetParts[common] {
		common++
	}

	var parts []string
	for range baseParts[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, targetParts[common:]...)

	return strings.Join(parts, "/"), nil
}

func splitSlash(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}

	return strings.Split(p, "/")
}
