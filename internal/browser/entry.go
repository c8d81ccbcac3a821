package browser

// Pseudo marks the synthetic leading entries of a shallow listing.
type Pseudo int

const (
	// PseudoNone marks a real directory child.
	PseudoNone Pseudo = iota
	// PseudoParent marks the synthetic ".." entry.
	PseudoParent
	// PseudoCurrent marks the synthetic entry for the listed directory
	// itself; selecting it re-lists the same directory.
	PseudoCurrent
)

// Entry is one selectable item in a listing. Entries are ephemeral:
// directories are read live, so an Entry is only guaranteed valid at the
// instant it was produced.
type Entry struct {
	// Name is the display label (the base name, or the full directory
	// path for the current pseudo-entry).
	Name string

	// AbsPath is the entry's absolute path, separator-normalized.
	AbsPath string

	// RelPath is the path relative to the session's anchor directory.
	RelPath string

	// IsDir reports whether the entry is a directory.
	IsDir bool

	// Type is the entry's classification.
	Type FileType

	// Wildcard reports whether Type came from the wildcard fallback.
	// Wildcard files open in the editor; declared types open externally.
	Wildcard bool

	// Pseudo marks the parent/current synthetic entries.
	Pseudo Pseudo
}
