package actions

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
)

func TestOpenPathExternalUsesOpener(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var opened []string
	h := &Handler{open: func(path string) error {
		opened = append(opened, path)
		return nil
	}}

	g.Expect(h.OpenPath("/tmp/report.pdf", false)).To(Succeed())
	g.Expect(opened).To(Equal([]string{"/tmp/report.pdf"}))

	_, pending := h.TakePendingEdit()
	g.Expect(pending).To(BeFalse())
}

func TestOpenPathExternalWrapsOpenerError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := &Handler{open: func(string) error { return errors.New("no opener installed") }}

	err := h.OpenPath("/tmp/report.pdf", false)

	g.Expect(err).To(MatchError(ContainSubstring("cannot open /tmp/report.pdf")))
}

func TestOpenPathInEditorParksPendingEdit(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := &Handler{open: func(string) error {
		t.Error("external opener must not run for editor opens")
		return nil
	}}

	g.Expect(h.OpenPath("/home/user/notes.txt", true)).To(Succeed())

	path, ok := h.TakePendingEdit()
	g.Expect(ok).To(BeTrue())
	g.Expect(path).To(Equal("/home/user/notes.txt"))

	// Draining clears the slot.
	_, ok = h.TakePendingEdit()
	g.Expect(ok).To(BeFalse())
}

func TestStatusKeepsLatestMessageOnly(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := &Handler{}
	h.Status("Saved /a")
	h.Status("Saved /b")

	message, ok := h.TakeStatus()
	g.Expect(ok).To(BeTrue())
	g.Expect(message).To(Equal("Saved /b"))

	_, ok = h.TakeStatus()
	g.Expect(ok).To(BeFalse())
}

func TestEditorCommand(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := &Handler{editor: "nano"}

	cmd := h.EditorCommand("/etc/motd")

	g.Expect(cmd.Args).To(Equal([]string{"nano", "/etc/motd"}))
}

func TestInsertAccumulatesInOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := &Handler{}
	h.Insert("one")
	h.Insert("two")

	g.Expect(h.Inserted()).To(Equal([]string{"one", "two"}))
}
