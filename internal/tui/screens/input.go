package screens

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/absop/quickbrowse/internal/config"
	"github.com/absop/quickbrowse/internal/tui/shared"
)

// InputScreen asks the user for a starting path when none was given on
// the command line. The field is pre-filled with the working directory
// and offers tab completion over the local filesystem.
type InputScreen struct {
	config          *config.Config
	pathInput       textinput.Model
	completions     []string
	completionIndex int
	showCompletions bool
	validationError string
}

// NewInputScreen creates a new input screen
func NewInputScreen(cfg *config.Config) *InputScreen {
	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/browse or sftp://user@host/path"
	pathInput.Focus()
	pathInput.Prompt = shared.PromptArrow

	if wd, err := os.Getwd(); err == nil {
		pathInput.SetValue(wd)
		pathInput.CursorEnd()
	}

	return &InputScreen{
		config:    cfg,
		pathInput: pathInput,
	}
}

// Init implements tea.Model
func (s InputScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (s InputScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return s.handleWindowSize(msg)
	case tea.KeyMsg:
		return s.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	s.pathInput, cmd = s.pathInput.Update(msg)

	return s, cmd
}

// View implements tea.Model
func (s InputScreen) View() string {
	content := shared.RenderTitle("Quick File Browser") + "\n\n" +
		shared.RenderLabel("Starting path:") + "\n" +
		s.pathInput.View() + "\n"

	if s.showCompletions && len(s.completions) > 0 {
		content += s.formatCompletionList(s.completions, s.completionIndex) + "\n"
	}

	if s.validationError != "" {
		content += "\n" + shared.RenderError("Error: "+s.validationError) + "\n"
	}

	content += "\n" +
		shared.RenderSubtitle("Tab/Shift+Tab to cycle • → to accept & continue • Enter to browse • Esc to clear • Ctrl+C to exit")

	return shared.RenderBox(content)
}

func (s InputScreen) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return s, tea.Quit
	case tea.KeyEsc:
		s.pathInput.SetValue("")
		s.showCompletions = false
		s.validationError = ""

		return s, nil
	case tea.KeyTab:
		return s.handleTabCompletion(), nil
	case tea.KeyShiftTab:
		return s.handleShiftTabCompletion(), nil
	case tea.KeyRight:
		return s.handleRightArrow(), nil
	case tea.KeyEnter:
		return s.handleEnter()
	default:
		s.showCompletions = false
		s.validationError = "" // Clear error when user types
	}

	var cmd tea.Cmd
	s.pathInput, cmd = s.pathInput.Update(msg)

	return s, cmd
}

func (s InputScreen) handleEnter() (tea.Model, tea.Cmd) {
	s.showCompletions = false
	if s.pathInput.Value() == "" {
		return s, nil
	}

	s.config.Path = s.pathInput.Value()

	if err := s.config.ValidatePath(); err != nil {
		s.validationError = err.Error()
		return s, nil
	}

	return s, func() tea.Msg {
		return shared.StartSessionMsg{
			Path:      s.config.Path,
			Recursive: s.config.Recursive,
		}
	}
}

func (s InputScreen) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	s.pathInput.Width = max(msg.Width-shared.InputWidthMargin, shared.MinInputWidth)
	return s, nil
}

// ============================================================================
// Path Completion
// ============================================================================

func (s InputScreen) handleTabCompletion() InputScreen {
	if !s.showCompletions {
		s.completions = getPathCompletions(s.pathInput.Value())
		s.completionIndex = 0
		s.showCompletions = true

		// If only one match, complete it immediately and hide list
		if len(s.completions) == 1 {
			s = s.applyCompletion(s.completions[0])
			s.showCompletions = false
		}
	} else if len(s.completions) > 0 {
		s.completionIndex = (s.completionIndex + 1) % len(s.completions)
		s = s.applyCompletion(s.completions[s.completionIndex])
	}

	return s
}

func (s InputScreen) handleShiftTabCompletion() InputScreen {
	if s.showCompletions && len(s.completions) > 0 {
		s.completionIndex--
		if s.completionIndex < 0 {
			s.completionIndex = len(s.completions) - 1
		}

		s = s.applyCompletion(s.completions[s.completionIndex])
	}

	return s
}

func (s InputScreen) handleRightArrow() InputScreen {
	// If showing completions, accept current and continue to next segment
	if s.showCompletions && len(s.completions) > 0 {
		currentCompletion := s.completions[s.completionIndex]
		s = s.applyCompletion(currentCompletion)
		s.showCompletions = false

		s.completions = getPathCompletions(currentCompletion)
		if len(s.completions) > 0 {
			s.completionIndex = 0
			s.showCompletions = true
			s = s.applyCompletion(s.completions[0])
		}

		return s
	}
	// Otherwise, let the textinput handle it (move cursor right)
	s.showCompletions = false

	return s
}

func (s InputScreen) applyCompletion(completion string) InputScreen {
	s.pathInput.SetValue(completion)
	s.pathInput.CursorEnd()

	return s
}

func (s InputScreen) formatCompletionList(completions []string, currentIndex int) string {
	if len(completions) == 0 {
		return ""
	}

	var lines []string

	switch {
	case len(completions) == 1:
		lines = []string{shared.CompletionStyle().Render("  → " + getBaseName(completions[0]))}
	case len(completions) <= shared.MaxCompletions:
		lines = s.formatAllCompletions(completions, currentIndex)
	default:
		lines = s.formatWindowedCompletions(completions, currentIndex, shared.MaxCompletions)
	}

	return strings.Join(lines, "\n")
}

func (s InputScreen) formatAllCompletions(completions []string, currentIndex int) []string {
	lines := []string{shared.CompletionStyle().Render("  " + strings.Repeat("─", shared.CompletionRuleWidth))}

	for i, comp := range completions {
		base := getBaseName(comp)
		if i == currentIndex {
			lines = append(lines, shared.CompletionSelectedStyle().Render("  ▶ "+base))
		} else {
			lines = append(lines, shared.CompletionStyle().Render("    "+base))
		}
	}

	return lines
}

func (s InputScreen) formatWindowedCompletions(completions []string, currentIndex, maxShow int) []string {
	lines := []string{shared.CompletionStyle().Render("  " + strings.Repeat("─", shared.CompletionRuleWidth))}

	start, end := completionWindow(currentIndex, maxShow, len(completions))

	if start > 0 {
		lines = append(lines, shared.CompletionStyle().Render("    ..."))
	}

	for i := start; i < end; i++ {
		base := getBaseName(completions[i])
		if i == currentIndex {
			lines = append(lines, shared.CompletionSelectedStyle().Render("  ▶ "+base))
		} else {
			lines = append(lines, shared.CompletionStyle().Render("    "+base))
		}
	}

	if end < len(completions) {
		lines = append(lines, shared.CompletionStyle().Render("    ..."))
	}

	return lines
}

func completionWindow(currentIndex, maxShow, totalCount int) (start, end int) {
	start = max(currentIndex-maxShow/2, 0)

	end = start + maxShow
	if end > totalCount {
		end = totalCount
		start = max(end-maxShow, 0)
	}

	return start, end
}

// ============================================================================
// Path Completion Helpers
// ============================================================================

func getPathCompletions(input string) []string {
	// Remote URLs have nothing local to complete against.
	if strings.HasPrefix(input, "sftp://") {
		return nil
	}

	input = expandHomePath(input)
	dir, prefix := parseCompletionPath(input)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	completions := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		if !shouldIncludeEntry(name, prefix) {
			continue
		}

		fullPath := filepath.Join(dir, name)

		// Add trailing slash for directories
		if entry.IsDir() {
			fullPath += string(filepath.Separator)
		}

		completions = append(completions, fullPath)
	}

	sort.Strings(completions)

	return completions
}

func parseCompletionPath(input string) (dir, prefix string) {
	dir = filepath.Dir(input)
	prefix = filepath.Base(input)

	// If input ends with /, we're completing in that directory
	if strings.HasSuffix(input, string(filepath.Separator)) {
		dir = input
		prefix = ""
	}

	return dir, prefix
}

func shouldIncludeEntry(name, prefix string) bool {
	// Skip hidden files unless prefix starts with .
	if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
		return false
	}

	return prefix == "" || strings.HasPrefix(name, prefix)
}

func expandHomePath(input string) string {
	if input == "" {
		return "."
	}

	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, input[1:])
		}
	}

	return input
}

func getBaseName(path string) string {
	trimmed := strings.TrimSuffix(path, "/")

	idx := strings.LastIndex(trimmed, "/")
	if idx == -1 {
		if strings.HasSuffix(path, "/") {
			return trimmed + "/"
		}

		return path
	}

	base := trimmed[idx+1:]
	if strings.HasSuffix(path, "/") {
		return base + "/"
	}

	return base
}
