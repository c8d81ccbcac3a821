// Package actions implements the session's side effects against the host
// system: opening files, writing the clipboard, and buffering status
// messages for the interactive surface to display.
package actions

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

const defaultEditor = "vi"

// Handler is the production implementation of the session action
// contract. Editor opens cannot run while the terminal is in raw mode,
// so they are parked as a pending edit for the UI to execute; external
// opens and clipboard writes happen immediately.
type Handler struct {
	editor string
	open   func(path string) error

	pendingEdit string
	hasPending  bool
	status      string
	hasStatus   bool
	inserted    []string
}

// New creates a handler using $EDITOR (falling back to vi) and the
// platform's external opener.
func New() *Handler {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	return &Handler{
		editor: editor,
		open:   openExternal,
	}
}

// OpenPath opens the file at path. Editor opens are deferred; the caller
// collects them with TakePendingEdit and runs the editor itself.
func (h *Handler) OpenPath(path string, inEditor bool) error {
	if inEditor {
		h.pendingEdit = path
		h.hasPending = true

		return nil
	}

	if err := h.open(path); err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}

	return nil
}

// SetClipboard replaces the system clipboard contents.
func (h *Handler) SetClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}

	return nil
}

// Status buffers a transient status message. Only the latest message is
// kept; the UI drains it with TakeStatus.
func (h *Handler) Status(message string) {
	h.status = message
	h.hasStatus = true
}

// TakeStatus returns and clears the buffered status message.
func (h *Handler) TakeStatus() (string, bool) {
	message, ok := h.status, h.hasStatus
	h.status, h.hasStatus = "", false

	return message, ok
}

// TakePendingEdit returns and clears the parked editor open.
func (h *Handler) TakePendingEdit() (string, bool) {
	path, ok := h.pendingEdit, h.hasPending
	h.pendingEdit, h.hasPending = "", false

	return path, ok
}

// EditorCommand builds the command that opens path in the user's editor.
func (h *Handler) EditorCommand(path string) *exec.Cmd {
	return exec.Command(h.editor, path) //nolint:gosec // editor comes from the user's own environment
}

// Insert accumulates text to be emitted on stdout after the UI exits,
// the terminal analogue of inserting at the cursor.
func (h *Handler) Insert(text string) {
	h.inserted = append(h.inserted, text)
}

// Inserted returns the accumulated insert texts in order.
func (h *Handler) Inserted() []string {
	return h.inserted
}

// openExternal hands the path to the platform opener. The command is
// started and not waited on.
func openExternal(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	return cmd.Start()
}
