package browser

import (
	"maps"
	"slices"
)

// WildcardExtension is the classification key for files whose extension is
// not declared in the configuration.
const WildcardExtension = ".*"

// FileType is a declared category for a file extension: a human-readable
// label and the icon shown on the entry's open action.
type FileType struct {
	Name string
	Icon string
}

// Class tags the result of a classification lookup.
type Class int

const (
	// ClassKnown means the extension was declared in the configuration.
	ClassKnown Class = iota
	// ClassWildcard means the lookup fell back to the wildcard category.
	ClassWildcard
)

// FileTypes maps file extensions to their declared categories. The
// wildcard category (for unknown extensions) and the directory category
// are guaranteed present: lookups never fail.
type FileTypes struct {
	byExt    map[string]FileType
	wildcard FileType
	dir      FileType
}

// TypeConfig is one configured category: an icon plus the extensions it
// covers. It is the decoded form of the settings file's file_types values.
type TypeConfig struct {
	Icon       string
	Extensions []string
}

// NewFileTypes builds the classification table from configuration.
// Categories are applied in sorted name order, so when two declare the
// same extension the lexically last one wins deterministically. The
// wildcard and directory fallbacks are synthesized when the configuration
// omits them.
func NewFileTypes(config map[string]TypeConfig) *FileTypes {
	types := &FileTypes{
		byExt:    make(map[string]FileType),
		wildcard: FileType{Name: "file", Icon: "Open"},
		dir:      FileType{Name: "folder", Icon: "Open"},
	}

	for _, name := range slices.Sorted(maps.Keys(config)) {
		cfg := config[name]
		icon := cfg.Icon
		if icon == "" {
			icon = "Open"
		}

		fileType := FileType{Name: name, Icon: icon}
		for _, ext := range cfg.Extensions {
			if ext == WildcardExtension {
				types.wildcard = fileType
				continue
			}
			types.byExt[ext] = fileType
		}
	}

	return types
}

// Classify returns the category for a file extension, falling back to the
// wildcard category when the extension is not declared.
func (t *FileTypes) Classify(ext string) (FileType, Class) {
	if fileType, ok := t.byExt[ext]; ok {
		return fileType, ClassKnown
	}

	return t.wildcard, ClassWildcard
}

// Dir returns the directory category.
func (t *FileTypes) Dir() FileType {
	return t.dir
}
