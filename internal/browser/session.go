package browser

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/absop/quickbrowse/pkg/filesystem"
)

// ErrInvalidStartPath reports that a session's starting path is neither an
// existing file nor a directory.
var ErrInvalidStartPath = errors.New("no such file or directory")

// WindowID identifies the host window a session belongs to.
type WindowID int

// Actions are the external collaborators a session invokes: opening files,
// writing the clipboard, and reporting transient status messages. The TUI
// provides the production implementation; tests substitute fakes.
type Actions interface {
	// OpenPath opens the file at path, in the editor when inEditor is
	// true, otherwise with the platform's external opener.
	OpenPath(path string, inEditor bool) error

	// SetClipboard replaces the system clipboard contents.
	SetClipboard(text string) error

	// Status shows a transient status message.
	Status(message string)
}

// Outcome is a session's answer to a selection event.
type Outcome int

const (
	// OutcomeClose means the panel closes; no further entries are shown.
	OutcomeClose Outcome = iota
	// OutcomeRedisplay means the same listing is shown again.
	OutcomeRedisplay
	// OutcomeDescend means the session moved to a new directory listing.
	OutcomeDescend
)

// Session is one browsing interaction for a window: the anchor directory
// for relative paths, the current listing, and the accumulated saved
// paths. Sessions are created by a Manager and live until dismissed.
type Session struct {
	id        WindowID
	anchor    string
	dir       string
	fsys      filesystem.FileSystem
	closer    func()
	projector *Projector
	actions   Actions
	saved     []string
	items     []Entry
}

// ID returns the owning window's identity.
func (s *Session) ID() WindowID { return s.id }

// Anchor returns the directory all relative paths are computed against.
// It is fixed at session start and never changes as the user navigates.
func (s *Session) Anchor() string { return s.anchor }

// Dir returns the directory of the current listing.
func (s *Session) Dir() string { return s.dir }

// Items returns the entries of the current listing.
func (s *Session) Items() []Entry { return s.items }

// SavedPaths returns the paths saved so far.
func (s *Session) SavedPaths() []string { return s.saved }

// Browse produces the shallow listing of the session's current directory
// and caches it as the current items.
func (s *Session) Browse() ([]Entry, error) {
	items, err := s.projector.ListDirectory(s.dir, s.anchor)
	if err != nil {
		return nil, err
	}
	s.items = items

	return items, nil
}

// BrowseRecursive starts the background recursive scan of the session's
// directory. The caller polls the task and hands the result to SetItems.
func (s *Session) BrowseRecursive(message string) *ScanTask {
	return StartScan(s.projector, s.dir, s.anchor, message)
}

// SetItems installs a listing produced elsewhere (the recursive scan) as
// the session's current items.
func (s *Session) SetItems(items []Entry) {
	s.items = items
}

// SetRules swaps the session's compiled rules. The next listing uses the
// new rules; the current items are untouched.
func (s *Session) SetRules(rules *Rules) {
	s.projector = NewProjector(s.fsys, rules)
}

// SavePath appends a path to the session's saved list. The list is
// flushed to the clipboard when the session is dismissed.
func (s *Session) SavePath(path string) {
	s.saved = append(s.saved, path)
	s.actions.Status("Saved " + path)
}

// Select applies a selection event to the session.
//
// Files are opened through the external action; holding the modifier keeps
// the listing up afterwards. The current pseudo-entry is a no-op redisplay.
// Other directories descend; a failed descent (permission denied and the
// like) is reported as a transient status and the prior listing stands.
func (s *Session) Select(entry Entry, modifierHeld bool) Outcome {
	if !entry.IsDir {
		if err := s.actions.OpenPath(entry.AbsPath, entry.Wildcard); err != nil {
			s.actions.Status(err.Error())
			return OutcomeRedisplay
		}

		if modifierHeld {
			return OutcomeRedisplay
		}

		return OutcomeClose
	}

	if entry.Pseudo == PseudoCurrent {
		return OutcomeRedisplay
	}

	items, err := s.projector.ListDirectory(entry.AbsPath, s.anchor)
	if err != nil {
		slog.Debug("descend failed", "dir", entry.AbsPath, "error", err)
		s.actions.Status(err.Error())

		return OutcomeRedisplay
	}

	s.dir = entry.AbsPath
	s.items = items

	return OutcomeDescend
}

func (s *Session) close() {
	if s.closer != nil {
		s.closer()
	}
}

// Manager owns every live session, keyed by window identity. All mutation
// happens on the interactive goroutine, so no lock is needed; blocking
// connects run elsewhere and hand their filesystem to StartWith.
type Manager struct {
	actions  Actions
	sessions map[WindowID]*Session
}

// NewManager creates an empty session manager.
func NewManager(actions Actions) *Manager {
	return &Manager{
		actions:  actions,
		sessions: make(map[WindowID]*Session),
	}
}

// Start opens a session for the window on the given starting path, which
// may be a local path or an SFTP URL. A file's containing directory
// becomes the start directory; a path that is neither an existing file
// nor a directory fails with ErrInvalidStartPath and no session is
// created. Any previous session for the window is discarded along with
// its unflushed saved paths.
func (m *Manager) Start(id WindowID, startPath string, rules *Rules) (*Session, error) {
	fsys, base, closer, err := filesystem.CreateFileSystem(startPath)
	if err != nil {
		return nil, err
	}

	return m.StartWith(id, fsys, base, closer, rules)
}

// StartWith is Start with an already connected filesystem and its closer.
// The TUI connects on a command goroutine and registers the session here,
// on the interactive goroutine, so the manager is never touched
// concurrently. A failed start closes the filesystem.
func (m *Manager) StartWith(id WindowID, fsys filesystem.FileSystem, startPath string, closer func(), rules *Rules) (*Session, error) {
	session, err := m.startOn(id, fsys, startPath, closer, rules)
	if err != nil {
		if closer != nil {
			closer()
		}

		return nil, err
	}

	return session, nil
}

// StartOn is Start with an externally supplied filesystem; tests use it to
// browse fakes.
func (m *Manager) StartOn(id WindowID, fsys filesystem.FileSystem, startPath string, rules *Rules) (*Session, error) {
	return m.startOn(id, fsys, startPath, nil, rules)
}

func (m *Manager) startOn(id WindowID, fsys filesystem.FileSystem, startPath string, closer func(), rules *Rules) (*Session, error) {
	abs, err := fsys.Abs(startPath)
	if err != nil {
		return nil, err
	}

	info, err := fsys.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w:\n    %s", ErrInvalidStartPath, startPath)
	}

	dir := abs
	if !info.IsDir() {
		dir = fsys.Dir(abs)
	}

	if previous, ok := m.sessions[id]; ok {
		previous.close()
	}

	session := &Session{
		id:        id,
		anchor:    dir,
		dir:       dir,
		fsys:      fsys,
		closer:    closer,
		projector: NewProjector(fsys, rules),
		actions:   m.actions,
	}
	m.sessions[id] = session

	return session, nil
}

// SetRules swaps the compiled rules on every live session, for the
// process-wide settings reload.
func (m *Manager) SetRules(rules *Rules) {
	for _, session := range m.sessions {
		session.SetRules(rules)
	}
}

// Get returns the window's live session, if any.
func (m *Manager) Get(id WindowID) (*Session, bool) {
	session, ok := m.sessions[id]
	return session, ok
}

// Dismiss ends the window's session: a non-empty saved-paths list is
// joined with newlines, copied to the clipboard, and reported; the
// session is removed from the table either way.
func (m *Manager) Dismiss(id WindowID) {
	session, ok := m.sessions[id]
	if !ok {
		return
	}

	if len(session.saved) > 0 {
		if err := m.actions.SetClipboard(strings.Join(session.saved, "\n")); err != nil {
			m.actions.Status("Clipboard write failed: " + err.Error())
		} else {
			m.actions.Status(fmt.Sprintf("Copied %d paths", len(session.saved)))
		}
	}

	session.close()
	delete(m.sessions, id)
}
