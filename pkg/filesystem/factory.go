package filesystem

import (
	"fmt"
)

// CreateFileSystem creates a FileSystem for the given starting path.
// Returns (filesystem, startPath, closer, error).
//   - filesystem: the FileSystem to browse with
//   - startPath: the path to use with it (URL prefix stripped for SFTP)
//   - closer: closes the SFTP connection when the session ends; nil for local
func CreateFileSystem(pathStr string) (FileSystem, string, func(), error) {
	parsed, err := ParsePath(pathStr)
	if err != nil {
		return nil, "", nil, err
	}

	if !parsed.IsRemote {
		return NewLocalFileSystem(), parsed.LocalPath, nil, nil
	}

	conn, err := Connect(parsed.Host, parsed.Port, parsed.User)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s@%s:%d: %w",
			parsed.User, parsed.Host, parsed.Port, err)
	}

	closer := func() {
		_ = conn.Close()
	}

	return NewSFTPFileSystem(conn), parsed.Path, closer, nil
}
