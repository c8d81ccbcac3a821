//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package browser_test

import (
	"testing"

	"github.com/absop/quickbrowse/internal/browser"
)

func TestFileTypesClassify(t *testing.T) {
	t.Parallel()

	types := browser.NewFileTypes(map[string]browser.TypeConfig{
		"golang": {Icon: "Edit", Extensions: []string{".go", ".mod"}},
		"web":    {Icon: "View", Extensions: []string{".html"}},
	})

	fileType, class := types.Classify(".go")
	if class != browser.ClassKnown {
		t.Errorf("Classify(.go) class = %v, want ClassKnown", class)
	}
	if fileType.Name != "golang" || fileType.Icon != "Edit" {
		t.Errorf("Classify(.go) = %+v, want golang/Edit", fileType)
	}

	fileType, class = types.Classify(".xyz")
	if class != browser.ClassWildcard {
		t.Errorf("Classify(.xyz) class = %v, want ClassWildcard", class)
	}
	if fileType.Name != "file" {
		t.Errorf("Wildcard fallback name = %q, want %q", fileType.Name, "file")
	}
}

// TestFileTypesEmptyConfig verifies the fallbacks are synthesized even
// from an empty configuration, so lookups never fail.
func TestFileTypesEmptyConfig(t *testing.T) {
	t.Parallel()

	types := browser.NewFileTypes(nil)

	fileType, class := types.Classify(".anything")
	if class != browser.ClassWildcard {
		t.Errorf("class = %v, want ClassWildcard", class)
	}
	if fileType.Name != "file" || fileType.Icon != "Open" {
		t.Errorf("wildcard fallback = %+v, want file/Open", fileType)
	}

	dir := types.Dir()
	if dir.Name != "folder" || dir.Icon != "Open" {
		t.Errorf("directory fallback = %+v, want folder/Open", dir)
	}
}

// TestFileTypesWildcardOverride verifies a category declaring ".*"
// replaces the synthesized wildcard fallback.
func TestFileTypesWildcardOverride(t *testing.T) {
	t.Parallel()

	types := browser.NewFileTypes(map[string]browser.TypeConfig{
		"unknown": {Icon: "Reveal", Extensions: []string{".*"}},
	})

	fileType, class := types.Classify(".whatever")
	if class != browser.ClassWildcard {
		t.Errorf("class = %v, want ClassWildcard", class)
	}
	if fileType.Name != "unknown" || fileType.Icon != "Reveal" {
		t.Errorf("wildcard = %+v, want unknown/Reveal", fileType)
	}
}

// TestFileTypesDuplicateExtension verifies the winner for a contested
// extension is deterministic: categories apply in sorted name order, so
// the lexically last declaration wins no matter how the configuration
// map iterates.
func TestFileTypesDuplicateExtension(t *testing.T) {
	t.Parallel()

	for i := 0; i < 20; i++ {
		types := browser.NewFileTypes(map[string]browser.TypeConfig{
			"alpha": {Icon: "Edit", Extensions: []string{".md"}},
			"omega": {Icon: "View", Extensions: []string{".md"}},
		})

		fileType, _ := types.Classify(".md")
		if fileType.Name != "omega" {
			t.Fatalf("Classify(.md) = %+v, want omega", fileType)
		}
	}
}

func TestFileTypesDefaultIcon(t *testing.T) {
	t.Parallel()

	types := browser.NewFileTypes(map[string]browser.TypeConfig{
		"plain": {Extensions: []string{".txt"}},
	})

	fileType, _ := types.Classify(".txt")
	if fileType.Icon != "Open" {
		t.Errorf("Icon = %q, want default %q", fileType.Icon, "Open")
	}
}
