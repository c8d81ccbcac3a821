package errors_test

import (
	"testing"

	"github.com/absop/quickbrowse/pkg/errors"
)

func TestSuggestionGenerator_ConnectionErrors(t *testing.T) {
	t.Parallel()

	gen := errors.NewSuggestionGenerator()
	suggestions := gen.Generate(errors.CategoryConnection, "sftp://host/data")

	if len(suggestions) == 0 {
		t.Fatal("expected suggestions for connection errors, got none")
	}

	// Should contain SSH/host related suggestions
	foundConnectionSuggestion := false

	for _, suggestion := range suggestions {
		if containsSubstring(suggestion, "ssh") || containsSubstring(suggestion, "host") {
			foundConnectionSuggestion = true

			break
		}
	}

	if !foundConnectionSuggestion {
		t.Errorf("expected SSH/host suggestion, got: %v", suggestions)
	}
}

func TestSuggestionGenerator_PathErrors(t *testing.T) {
	t.Parallel()

	gen := errors.NewSuggestionGenerator()
	suggestions := gen.Generate(errors.CategoryPath, "/nonexistent/path")

	if len(suggestions) == 0 {
		t.Fatal("expected suggestions for path errors, got none")
	}

	// Should contain path verification suggestions
	foundPathSuggestion := false

	for _, suggestion := range suggestions {
		if containsSubstring(suggestion, "path") || containsSubstring(suggestion, "exist") {
			foundPathSuggestion = true

			break
		}
	}

	if !foundPathSuggestion {
		t.Errorf("expected path suggestion, got: %v", suggestions)
	}
}

func TestSuggestionGenerator_PathErrorsIncludeAffectedPath(t *testing.T) {
	t.Parallel()

	gen := errors.NewSuggestionGenerator()
	path := "/missing/dir"
	suggestions := gen.Generate(errors.CategoryPath, path)

	foundPath := false

	for _, suggestion := range suggestions {
		if containsSubstring(suggestion, path) {
			foundPath = true

			break
		}
	}

	if !foundPath {
		t.Errorf("expected a suggestion containing %q, got: %v", path, suggestions)
	}
}

func TestSuggestionGenerator_PatternErrors(t *testing.T) {
	t.Parallel()

	gen := errors.NewSuggestionGenerator()
	suggestions := gen.Generate(errors.CategoryPattern, "")

	if len(suggestions) == 0 {
		t.Fatal("expected suggestions for pattern errors, got none")
	}

	// Should point at the exclude pattern settings
	foundPatternSuggestion := false

	for _, suggestion := range suggestions {
		if containsSubstring(suggestion, "exclude_patterns") || containsSubstring(suggestion, "glob") {
			foundPatternSuggestion = true

			break
		}
	}

	if !foundPatternSuggestion {
		t.Errorf("expected settings/glob suggestion, got: %v", suggestions)
	}
}

func TestSuggestionGenerator_PermissionErrors(t *testing.T) {
	t.Parallel()

	gen := errors.NewSuggestionGenerator()
	suggestions := gen.Generate(errors.CategoryPermission, "/path/to/file.txt")

	if len(suggestions) == 0 {
		t.Fatal("expected suggestions for permission errors, got none")
	}

	// Should contain permission-related suggestions with the path
	foundPermissionSuggestion := false

	for _, suggestion := range suggestions {
		if containsSubstring(suggestion, "/path/to/file.txt") || containsSubstring(suggestion, "ls -la") {
			foundPermissionSuggestion = true

			break
		}
	}

	if !foundPermissionSuggestion {
		t.Errorf("expected permission suggestion with path, got: %v", suggestions)
	}
}

func TestSuggestionGenerator_UnknownErrors(t *testing.T) {
	t.Parallel()

	gen := errors.NewSuggestionGenerator()
	suggestions := gen.Generate(errors.CategoryUnknown, "/some/path")

	if len(suggestions) == 0 {
		t.Fatal("expected fallback suggestions for unknown errors, got none")
	}

	// Should contain generic diagnostic advice
	foundGenericSuggestion := false

	for _, suggestion := range suggestions {
		if containsSubstring(suggestion, "check") || containsSubstring(suggestion, "verify") {
			foundGenericSuggestion = true

			break
		}
	}

	if !foundGenericSuggestion {
		t.Errorf("expected generic helpful suggestion, got: %v", suggestions)
	}
}

// Helper function to check if string contains substring (case-insensitive).
func containsSubstring(str, substr string) bool {
	return len(str) >= len(substr) && findSubstring(str, substr)
}

func findSubstring(haystack, needle string) bool {
	for i := 0; i <= len(haystack)-len(needle); i++ {
		match := true

		for j := range len(needle) {
			haystackChar := haystack[i+j]
			needleChar := needle[j]
			// Simple case-insensitive comparison
			if haystackChar >= 'A' && haystackChar <= 'Z' {
				haystackChar = haystackChar - 'A' + 'a'
			}

			if needleChar >= 'A' && needleChar <= 'Z' {
				needleChar = needleChar - 'A' + 'a'
			}

			if haystackChar != needleChar {
				match = false

				break
			}
		}

		if match {
			return true
		}
	}

	return false
}
