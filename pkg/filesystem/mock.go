package filesystem

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests. It uses slash
// semantics and preserves insertion order in ReadDir, which lets tests
// assert the native-order contract.
type MockFileSystem struct {
	children map[string][]string // dir -> child names, insertion order
	infos    map[string]mockFileInfo
	readErrs map[string]error
}

// NewMockFileSystem creates an empty mock filesystem with a root directory.
func NewMockFileSystem() *MockFileSystem {
	m := &MockFileSystem{
		children: make(map[string][]string),
		infos:    make(map[string]mockFileInfo),
		readErrs: make(map[string]error),
	}
	m.infos["/"] = mockFileInfo{name: "/", dir: true}

	return m
}

// AddDir registers a directory, creating parents as needed.
func (m *MockFileSystem) AddDir(dirPath string) {
	m.add(dirPath, mockFileInfo{name: path.Base(dirPath), dir: true})
}

// AddFile registers a file with the given content size, creating parent
// directories as needed.
func (m *MockFileSystem) AddFile(filePath string, size int64) {
	m.add(filePath, mockFileInfo{name: path.Base(filePath), size: size})
}

// FailReadDir makes ReadDir on the given directory return err.
func (m *MockFileSystem) FailReadDir(dirPath string, err error) {
	m.readErrs[path.Clean(dirPath)] = err
}

func (m *MockFileSystem) add(p string, info mockFileInfo) {
	p = path.Clean(p)

	parent := path.Dir(p)
	if parent != p {
		if _, ok := m.infos[parent]; !ok {
			m.AddDir(parent)
		}
		m.children[parent] = append(m.children[parent], path.Base(p))
	}

	m.infos[p] = info
}

// ReadDir lists a directory in insertion order.
func (m *MockFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	dirname = path.Clean(dirname)

	if err, ok := m.readErrs[dirname]; ok {
		return nil, err
	}

	info, ok := m.infos[dirname]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", dirname, os.ErrNotExist)
	}
	if !info.dir {
		return nil, fmt.Errorf("read %s: not a directory", dirname)
	}

	var infos []os.FileInfo
	for _, name := range m.children[dirname] {
		child := m.infos[path.Join(dirname, name)]
		infos = append(infos, child)
	}

	return infos, nil
}

// Lstat returns info about the named path.
func (m *MockFileSystem) Lstat(name string) (os.FileInfo, error) {
	return m.Stat(name)
}

// Stat returns info about the named path.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	info, ok := m.infos[path.Clean(name)]
	if !ok {
		return nil, fmt.Errorf("stat %s: %w", name, os.ErrNotExist)
	}

	return info, nil
}

// Join joins path elements with forward slashes.
func (m *MockFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

// Dir returns the parent of the path.
func (m *MockFileSystem) Dir(name string) string {
	return path.Dir(name)
}

// Abs cleans the path; mock paths are already rooted at /.
func (m *MockFileSystem) Abs(name string) (string, error) {
	if !path.IsAbs(name) {
		name = "/" + name
	}

	return path.Clean(name), nil
}

// Rel returns target relative to base using slash semantics.
func (m *MockFileSystem) Rel(base, target string) (string, error) {
	base = path.Clean(base)
	target = path.Clean(target)

	if base == target {
		return ".", nil
	}

	baseParts := splitSlash(base)
	targetParts := splitSlash(target)

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

// mockFileInfo implements os.FileInfo for mock entries.
type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockFileInfo) Name() string { return i.name }
func (i mockFileInfo) Size() int64  { return i.size }
func (i mockFileInfo) Mode() os.FileMode {
	if i.dir {
		return os.ModeDir | 0o755
	}

	return 0o644
}
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) Sys() any           { return nil }
