package shared

import (
	"github.com/absop/quickbrowse/internal/browser"
	"github.com/absop/quickbrowse/pkg/filesystem"
)

// ============================================================================
// Transition Messages
// These messages trigger screen transitions and are handled by AppModel
// ============================================================================

// StartSessionMsg is sent when a starting path is ready: from the input
// screen on a validated entry, or at startup when the path came from the
// command line
type StartSessionMsg struct {
	Path      string
	Recursive bool
}

// FilesystemReadyMsg is sent when the blocking connect for a new session
// has completed. The session itself is registered by the handler, on the
// interactive goroutine, so the manager never sees a concurrent write
type FilesystemReadyMsg struct {
	Fsys      filesystem.FileSystem
	StartPath string
	Closer    func()
	Recursive bool
}

// TransitionToBrowseMsg is sent when a listing is ready to display
type TransitionToBrowseMsg struct {
	Session *browser.Session
	Status  string
}

// ============================================================================
// Internal Messages
// ============================================================================

// RulesReloadedMsg is sent when the settings file changed and the rules
// were recompiled
type RulesReloadedMsg struct {
	Rules *browser.Rules
}

// EditorFinishedMsg is sent when a spawned editor process exits
type EditorFinishedMsg struct {
	Err error
}

// ErrorMsg is sent when an unrecoverable error occurs
type ErrorMsg struct {
	Err error
}
