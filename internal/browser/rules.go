package browser

import (
	"errors"
	"os"
	"strings"
)

// RuleConfig is the raw material for compiling browsing rules, produced by
// the config package from the settings file.
type RuleConfig struct {
	FileExcludePatterns   []string
	FolderExcludePatterns []string
	ShowHiddenFiles       bool
	IgnoredFileTypes      []string
	FileTypes             map[string]TypeConfig
	UseUnixStylePath      bool
}

// Rules holds the compiled exclusion matchers, classification table, and
// listing options. Rules are immutable for the lifetime of a browsing
// session; they are recompiled only on the process-wide settings reload.
type Rules struct {
	ExcludeFile   *Matcher
	ExcludeFolder *Matcher
	Types         *FileTypes
	ShowHidden    bool
	ignoredTypes  map[string]struct{}
	unixStyle     bool
}

// CompileRules compiles the configuration into Rules. Pattern compile
// errors degrade rather than fail: the returned Rules are always usable,
// and the joined error reports every bad pattern list for display.
func CompileRules(cfg RuleConfig) (*Rules, error) {
	excludeFile, fileErr := NewMatcher(cfg.FileExcludePatterns)
	excludeFolder, folderErr := NewMatcher(cfg.FolderExcludePatterns)

	ignored := make(map[string]struct{}, len(cfg.IgnoredFileTypes))
	for _, ext := range cfg.IgnoredFileTypes {
		ignored[ext] = struct{}{}
	}

	rules := &Rules{
		ExcludeFile:   excludeFile,
		ExcludeFolder: excludeFolder,
		Types:         NewFileTypes(cfg.FileTypes),
		ShowHidden:    cfg.ShowHiddenFiles,
		ignoredTypes:  ignored,
		unixStyle:     cfg.UseUnixStylePath && os.PathSeparator == '\\',
	}

	return rules, errors.Join(fileErr, folderErr)
}

// IgnoredType reports whether files with the given extension are
// suppressed entirely from listings.
func (r *Rules) IgnoredType(ext string) bool {
	_, ok := r.ignoredTypes[ext]
	return ok
}

// NormalizePath rewrites backslash separators to forward slashes when
// use_unix_style_path is set on a backslash platform. Elsewhere it is the
// identity.
func (r *Rules) NormalizePath(p string) string {
	if r.unixStyle {
		return strings.ReplaceAll(p, `\`, "/")
	}

	return p
}
