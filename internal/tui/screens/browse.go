package screens

import (
	"os/exec"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/absop/quickbrowse/internal/browser"
	"github.com/absop/quickbrowse/internal/tui/shared"
)

var browseDocStyle = lipgloss.NewStyle().Margin(1, 2)

// Host groups the side effects the browse screen needs from the
// surrounding application: the session action sinks plus the drains for
// the statuses and editor opens those actions buffer.
type Host interface {
	browser.Actions

	TakeStatus() (string, bool)
	TakePendingEdit() (string, bool)
	EditorCommand(path string) *exec.Cmd
	Insert(text string)
}

// entryItem adapts a listing entry to the list component.
type entryItem struct {
	entry browser.Entry
}

// Title is required by the list.Item interface.
func (i entryItem) Title() string {
	name := i.entry.Name
	if i.entry.IsDir && i.entry.Pseudo == browser.PseudoNone {
		name += "/"
	}

	return i.entry.Type.Icon + "  " + name
}

// Description is required by list.Item.
func (i entryItem) Description() string {
	switch i.entry.Pseudo {
	case browser.PseudoParent:
		return "parent directory"
	case browser.PseudoCurrent:
		return "current directory"
	default:
		return i.entry.RelPath
	}
}

// FilterValue is required by list.Item.
func (i entryItem) FilterValue() string { return i.entry.Name }

// BrowseScreen is the selection panel over the session's current listing.
// Selection events go through the session; the resulting statuses and
// editor opens are drained from the host after every call.
type BrowseScreen struct {
	manager   *browser.Manager
	host      Host
	session   *browser.Session
	list      list.Model
	status    string
	width     int
	height    int
	recursive bool

	// closeAfterEdit closes the panel once a spawned editor exits, for
	// opens where the modifier was not held.
	closeAfterEdit bool
}

// NewBrowseScreen creates a browse screen over the session's items
func NewBrowseScreen(manager *browser.Manager, host Host, session *browser.Session, recursive bool, status string) *BrowseScreen {
	// A status buffered before the screen exists (startup warnings, say a
	// rejected exclude pattern) becomes the initial status line.
	if status == "" {
		if buffered, ok := host.TakeStatus(); ok {
			status = buffered
		}
	}

	delegate := list.NewDefaultDelegate()

	l := list.New(itemsOf(session.Items()), delegate, 0, 0)
	l.Title = session.Dir()
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = shared.TitleStyle()

	return &BrowseScreen{
		manager:   manager,
		host:      host,
		session:   session,
		list:      l,
		status:    status,
		recursive: recursive,
	}
}

// Init implements tea.Model
func (s BrowseScreen) Init() tea.Cmd {
	if s.status != "" {
		return shared.ClearStatusCmd()
	}

	return nil
}

// Update implements tea.Model
func (s BrowseScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		h, v := browseDocStyle.GetFrameSize()
		s.list.SetSize(msg.Width-h, msg.Height-v-1)

		return s, nil

	case shared.ClearStatusMsg:
		s.status = ""
		return s, nil

	case shared.RulesReloadedMsg:
		return s.handleRulesReloaded()

	case shared.EditorFinishedMsg:
		return s.handleEditorFinished(msg)

	case tea.KeyMsg:
		return s.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)

	return s, cmd
}

// View implements tea.Model
func (s BrowseScreen) View() string {
	statusLine := ""
	if s.status != "" {
		statusLine = shared.RenderStatus(s.status)
	} else {
		statusLine = shared.RenderDim("enter open/descend • alt+enter keep open • a/r save path • A/R insert path • o open externally • q quit")
	}

	return browseDocStyle.Render(s.list.View() + "\n" + statusLine)
}

func (s BrowseScreen) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == shared.KeyCtrlC {
		return s.dismiss()
	}

	// While the user is typing a filter, every other key belongs to the
	// list component.
	if s.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		s.list, cmd = s.list.Update(msg)

		return s, cmd
	}

	switch msg.String() {
	case "q":
		return s.dismiss()
	case "enter":
		return s.handleSelect(false)
	case "alt+enter":
		return s.handleSelect(true)
	case "a":
		return s.handleSavePath(true)
	case "r":
		return s.handleSavePath(false)
	case "A":
		return s.handleInsertPath(true)
	case "R":
		return s.handleInsertPath(false)
	case "o":
		return s.handleOpenExternally()
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)

	return s, cmd
}

func (s BrowseScreen) handleSelect(modifierHeld bool) (tea.Model, tea.Cmd) {
	entry, ok := s.selectedEntry()
	if !ok {
		return s, nil
	}

	outcome := s.session.Select(entry, modifierHeld)

	if path, pending := s.host.TakePendingEdit(); pending {
		s.closeAfterEdit = outcome == browser.OutcomeClose

		editCmd := tea.ExecProcess(s.host.EditorCommand(path), func(err error) tea.Msg {
			return shared.EditorFinishedMsg{Err: err}
		})

		return s, editCmd
	}

	switch outcome {
	case browser.OutcomeClose:
		return s.dismiss()
	case browser.OutcomeDescend:
		s = s.refreshListing()
	case browser.OutcomeRedisplay:
		// Listing unchanged; only the status line may have news.
	}

	cmd := s.drainStatus()

	return s, cmd
}

func (s BrowseScreen) handleSavePath(absolute bool) (tea.Model, tea.Cmd) {
	entry, ok := s.selectedEntry()
	if !ok {
		return s, nil
	}

	s.session.SavePath(pathOf(entry, absolute))
	cmd := s.drainStatus()

	return s, cmd
}

func (s BrowseScreen) handleInsertPath(absolute bool) (tea.Model, tea.Cmd) {
	entry, ok := s.selectedEntry()
	if !ok {
		return s, nil
	}

	path := pathOf(entry, absolute)
	s.host.Insert(path)
	s.host.Status("Inserted " + path)
	cmd := s.drainStatus()

	return s, cmd
}

func (s BrowseScreen) handleOpenExternally() (tea.Model, tea.Cmd) {
	entry, ok := s.selectedEntry()
	if !ok || entry.IsDir {
		return s, nil
	}

	if err := s.host.OpenPath(entry.AbsPath, false); err != nil {
		s.host.Status(err.Error())
	}

	cmd := s.drainStatus()

	return s, cmd
}

func (s BrowseScreen) handleEditorFinished(msg shared.EditorFinishedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		s.host.Status("Editor failed: " + msg.Err.Error())
		s.closeAfterEdit = false
		cmd := s.drainStatus()

		return s, cmd
	}

	if s.closeAfterEdit {
		return s.dismiss()
	}

	return s, nil
}

func (s BrowseScreen) handleRulesReloaded() (tea.Model, tea.Cmd) {
	// A finished recursive listing is a snapshot; rescanning on every
	// settings save would be disruptive, so the new rules apply from the
	// next listing on.
	if s.recursive {
		s.host.Status("Settings reloaded")
		cmd := s.drainStatus()

		return s, cmd
	}

	if _, err := s.session.Browse(); err != nil {
		s.host.Status(err.Error())
		cmd := s.drainStatus()

		return s, cmd
	}

	s = s.refreshListing()
	s.host.Status("Settings reloaded")
	cmd := s.drainStatus()

	return s, cmd
}

func (s BrowseScreen) dismiss() (tea.Model, tea.Cmd) {
	s.manager.Dismiss(s.session.ID())

	// The flush status ("Copied N paths") stays buffered in the host; the
	// entry point prints it after the program exits.
	return s, tea.Quit
}

func (s BrowseScreen) refreshListing() BrowseScreen {
	s.list.ResetFilter()
	s.list.SetItems(itemsOf(s.session.Items()))
	s.list.Select(0)
	s.list.Title = s.session.Dir()

	return s
}

// drainStatus moves the latest buffered status onto the screen's status
// line and schedules its clearing.
func (s *BrowseScreen) drainStatus() tea.Cmd {
	message, ok := s.host.TakeStatus()
	if !ok {
		return nil
	}

	s.status = message

	return shared.ClearStatusCmd()
}

func (s BrowseScreen) selectedEntry() (browser.Entry, bool) {
	item, ok := s.list.SelectedItem().(entryItem)
	if !ok {
		return browser.Entry{}, false
	}

	return item.entry, true
}

func itemsOf(entries []browser.Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = entryItem{entry: entry}
	}

	return items
}

func pathOf(entry browser.Entry, absolute bool) string {
	if absolute {
		return entry.AbsPath
	}

	return entry.RelPath
}
