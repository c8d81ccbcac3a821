package browser

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/kr/fs"

	"github.com/absop/quickbrowse/pkg/filesystem"
)

// Projector turns directories into ordered entry listings, applying the
// compiled rules per entry.
type Projector struct {
	fsys  filesystem.FileSystem
	rules *Rules
}

// NewProjector creates a projector over the given filesystem and rules.
func NewProjector(fsys filesystem.FileSystem, rules *Rules) *Projector {
	return &Projector{fsys: fsys, rules: rules}
}

// ListDirectory enumerates the immediate children of dir, preceded by the
// parent and current pseudo-entries. Children keep the filesystem's native
// enumeration order; hidden entries and ignored file types are suppressed.
// Relative paths are computed against anchor.
func (p *Projector) ListDirectory(dir, anchor string) ([]Entry, error) {
	slog.Debug("listing directory", "dir", dir)

	infos, err := p.fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	parentPath := p.fsys.Dir(dir)
	entries := make([]Entry, 0, len(infos)+2)

	parent, err := p.makeDirEntry("..", parentPath, anchor)
	if err != nil {
		return nil, err
	}
	parent.Pseudo = PseudoParent
	entries = append(entries, parent)

	current, err := p.makeDirEntry(p.rules.NormalizePath(dir), dir, anchor)
	if err != nil {
		return nil, err
	}
	current.Pseudo = PseudoCurrent
	entries = append(entries, current)

	for _, info := range infos {
		name := info.Name()
		if !p.rules.ShowHidden && name[0] == '.' {
			continue
		}

		absolute := p.fsys.Join(dir, name)

		if info.IsDir() {
			entry, err := p.makeDirEntry(name, absolute, anchor)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)

			continue
		}

		entry, ok, err := p.makeFileEntry(name, absolute, anchor)
		if err != nil {
			return nil, err
		}
		if ok {
			entries = append(entries, entry)
		}
	}

	slog.Debug("listed directory", "dir", dir, "entries", len(entries))

	return entries, nil
}

// ListRecursive walks the subtree under root and returns every file that
// survives the exclusion rules, directory by directory in native walk
// order. Subdirectories matching the folder matcher are pruned: the walk
// never descends into them. No pseudo-entries are produced.
func (p *Projector) ListRecursive(root, anchor string) ([]Entry, error) {
	slog.Debug("listing files recursively", "root", root)

	var entries []Entry

	walker := fs.WalkFS(root, p.fsys)
	for walker.Step() {
		if err := walker.Err(); err != nil {
			return nil, fmt.Errorf("scan of %s failed: %w", root, err)
		}

		if walker.Path() == root {
			continue
		}

		info := walker.Stat()
		name := info.Name()

		if info.IsDir() {
			if p.rules.ExcludeFolder.Matches(name) {
				walker.SkipDir()
			}

			continue
		}

		if p.rules.ExcludeFile.Matches(name) {
			continue
		}

		entry, ok, err := p.makeFileEntry(name, walker.Path(), anchor)
		if err != nil {
			return nil, err
		}
		if ok {
			entries = append(entries, entry)
		}
	}

	slog.Debug("listed files recursively", "root", root, "entries", len(entries))

	return entries, nil
}

// makeDirEntry builds a directory entry with both path renderings.
func (p *Projector) makeDirEntry(name, absolute, anchor string) (Entry, error) {
	relative, err := p.fsys.Rel(anchor, absolute)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Name:    name,
		AbsPath: p.rules.NormalizePath(absolute),
		RelPath: p.rules.NormalizePath(relative),
		IsDir:   true,
		Type:    p.rules.Types.Dir(),
	}, nil
}

// makeFileEntry builds a file entry, classifying by extension. The second
// return is false when the file's type is in the ignored list.
func (p *Projector) makeFileEntry(name, absolute, anchor string) (Entry, bool, error) {
	ext := extensionOf(name)
	if p.rules.IgnoredType(ext) {
		return Entry{}, false, nil
	}

	fileType, class := p.rules.Types.Classify(ext)

	relative, err := p.fsys.Rel(anchor, absolute)
	if err != nil {
		return Entry{}, false, err
	}

	return Entry{
		Name:     name,
		AbsPath:  p.rules.NormalizePath(absolute),
		RelPath:  p.rules.NormalizePath(relative),
		Type:     fileType,
		Wildcard: class == ClassWildcard,
	}, true, nil
}

// extensionOf returns the file extension including the dot. A leading dot
// alone (".bashrc") is a hidden name, not an extension.
func extensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}

	return ext
}
