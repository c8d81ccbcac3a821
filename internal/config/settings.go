package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/absop/quickbrowse/internal/browser"
)

const (
	settingsDir  = ".config/quickbrowse"
	settingsFile = "settings.json"
)

// Settings is the decoded settings file.
type Settings struct {
	Debug                 bool                       `json:"debug"`
	UseUnixStylePath      *bool                      `json:"use_unix_style_path"`
	FileExcludePatterns   []string                   `json:"file_exclude_patterns"`
	FolderExcludePatterns []string                   `json:"folder_exclude_patterns"`
	ShowHiddenFiles       *bool                      `json:"show_hidden_files"`
	IgnoredFileTypes      []string                   `json:"ignored_file_types"`
	FileTypes             map[string]FileTypeSetting `json:"file_types"`
}

// FileTypeSetting is one configured file-type category.
type FileTypeSetting struct {
	Icon       string        `json:"icon"`
	Extensions ExtensionList `json:"extensions"`
}

// ExtensionList accepts either a single extension string or a list of
// them, matching the settings format of the editor plugin this tool grew
// out of.
type ExtensionList []string

// UnmarshalJSON implements json.Unmarshaler.
func (e *ExtensionList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*e = ExtensionList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("extensions must be a string or a list of strings: %w", err)
	}
	*e = ExtensionList(many)

	return nil
}

// DefaultSettingsPath returns the settings file location under the user's
// home directory.
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}

	return filepath.Join(home, settingsDir, settingsFile), nil
}

// LoadSettings reads and decodes the settings file. A missing file is not
// an error: defaults apply.
func LoadSettings(path string) (*Settings, error) {
	settings := &Settings{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read settings file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("cannot parse settings file %s: %w", path, err)
	}

	return settings, nil
}

// UnixStylePaths reports the use_unix_style_path option, defaulting to
// true. It only has an effect on backslash platforms.
func (s *Settings) UnixStylePaths() bool {
	if s.UseUnixStylePath == nil {
		return true
	}

	return *s.UseUnixStylePath
}

// ShowHidden reports the show_hidden_files option, defaulting to true.
func (s *Settings) ShowHidden() bool {
	if s.ShowHiddenFiles == nil {
		return true
	}

	return *s.ShowHiddenFiles
}

// RuleConfig converts the settings into the browser's rule configuration.
func (s *Settings) RuleConfig() browser.RuleConfig {
	fileTypes := make(map[string]browser.TypeConfig, len(s.FileTypes))
	for name, setting := range s.FileTypes {
		fileTypes[name] = browser.TypeConfig{
			Icon:       setting.Icon,
			Extensions: setting.Extensions,
		}
	}

	return browser.RuleConfig{
		FileExcludePatterns:   s.FileExcludePatterns,
		FolderExcludePatterns: s.FolderExcludePatterns,
		ShowHiddenFiles:       s.ShowHidden(),
		IgnoredFileTypes:      s.IgnoredFileTypes,
		FileTypes:             fileTypes,
		UseUnixStylePath:      s.UnixStylePaths(),
	}
}
