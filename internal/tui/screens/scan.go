package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/absop/quickbrowse/internal/browser"
	"github.com/absop/quickbrowse/internal/tui/shared"
)

// ScanScreen shows the animated progress line while a recursive listing
// runs in the background. It polls the task every tick; when the walk
// finishes it installs the result on the session and hands off to the
// browse screen, or surfaces the walk error.
type ScanScreen struct {
	session *browser.Session
	task    *browser.ScanTask
	status  string
}

// NewScanScreen creates a scan screen polling the given task
func NewScanScreen(session *browser.Session, task *browser.ScanTask) *ScanScreen {
	return &ScanScreen{
		session: session,
		task:    task,
		status:  task.Status(),
	}
}

// Init implements tea.Model
func (s ScanScreen) Init() tea.Cmd {
	return shared.TickCmd()
}

// Update implements tea.Model
func (s ScanScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shared.TickMsg:
		return s.handleTick()
	case tea.KeyMsg:
		if msg.String() == shared.KeyCtrlC {
			return s, tea.Quit
		}
	}

	return s, nil
}

// View implements tea.Model
func (s ScanScreen) View() string {
	content := shared.RenderTitle("Quick File Browser") + "\n\n" +
		shared.RenderLabel(s.session.Dir()) + "\n\n" +
		s.status

	return shared.RenderBox(content)
}

func (s ScanScreen) handleTick() (tea.Model, tea.Cmd) {
	if s.task.Running() {
		s.status = s.task.Tick()
		return s, shared.TickCmd()
	}

	entries, err := s.task.Result()
	if err != nil {
		return s, func() tea.Msg { return shared.ErrorMsg{Err: err} }
	}

	s.session.SetItems(entries)

	return s, func() tea.Msg {
		return shared.TransitionToBrowseMsg{Session: s.session, Status: "Done"}
	}
}
