// Package tui is the interactive surface: a Bubble Tea program that
// routes between the path-input, scan-progress, and browse screens.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/absop/quickbrowse/internal/browser"
	"github.com/absop/quickbrowse/internal/config"
	"github.com/absop/quickbrowse/internal/tui/screens"
	"github.com/absop/quickbrowse/internal/tui/shared"
	"github.com/absop/quickbrowse/pkg/filesystem"
)

// MainWindow is the window identity of the single terminal session.
const MainWindow browser.WindowID = 1

const scanMessage = "Listing files..."

// AppModel is the top-level model that routes messages between screens
type AppModel struct {
	config        *config.Config
	manager       *browser.Manager
	host          screens.Host
	rules         *browser.Rules
	reloads       <-chan *config.Settings
	currentScreen tea.Model
	err           error
	width         int
	height        int
}

// NewAppModel creates the app model. With a path on the command line the
// session starts immediately; otherwise the input screen asks for one.
func NewAppModel(cfg *config.Config, manager *browser.Manager, host screens.Host, rules *browser.Rules, reloads <-chan *config.Settings) AppModel {
	app := AppModel{
		config:  cfg,
		manager: manager,
		host:    host,
		rules:   rules,
		reloads: reloads,
	}

	if cfg.InteractiveInput {
		app.currentScreen = screens.NewInputScreen(cfg)
	}

	return app
}

// Err returns the error the program exited with, if any.
func (a AppModel) Err() error {
	return a.err
}

// CurrentScreen returns the current screen (for testing)
func (a AppModel) CurrentScreen() tea.Model {
	return a.currentScreen
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	var cmds []tea.Cmd

	if a.currentScreen != nil {
		cmds = append(cmds, a.currentScreen.Init())
	} else {
		path, recursive := a.config.Path, a.config.Recursive
		cmds = append(cmds, func() tea.Msg {
			return shared.StartSessionMsg{Path: path, Recursive: recursive}
		})
	}

	if a.reloads != nil {
		cmds = append(cmds, waitForReload(a.reloads))
	}

	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case shared.StartSessionMsg:
		return a, a.startSessionCmd(msg.Path, msg.Recursive)

	case shared.FilesystemReadyMsg:
		return a.handleFilesystemReady(msg)

	case shared.TransitionToBrowseMsg:
		return a.showBrowseScreen(msg.Session, true, msg.Status)

	case shared.RulesReloadedMsg:
		return a.handleRulesReloaded(msg)

	case shared.ErrorMsg:
		a.err = msg.Err
		return a, tea.Quit
	}

	if a.currentScreen == nil {
		return a, nil
	}

	var cmd tea.Cmd
	a.currentScreen, cmd = a.currentScreen.Update(msg)

	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	if a.currentScreen == nil {
		return shared.RenderDim("Opening " + a.config.Path + "...")
	}

	return a.currentScreen.View()
}

// startSessionCmd runs only the blocking connect off the interactive
// goroutine; SFTP starts block on it for seconds. The manager is not
// touched here, so a settings reload arriving mid-connect cannot race
// the session table.
func (a AppModel) startSessionCmd(path string, recursive bool) tea.Cmd {
	return func() tea.Msg {
		fsys, base, closer, err := filesystem.CreateFileSystem(path)
		if err != nil {
			return shared.ErrorMsg{Err: err}
		}

		return shared.FilesystemReadyMsg{
			Fsys:      fsys,
			StartPath: base,
			Closer:    closer,
			Recursive: recursive,
		}
	}
}

func (a AppModel) handleFilesystemReady(msg shared.FilesystemReadyMsg) (tea.Model, tea.Cmd) {
	session, err := a.manager.StartWith(MainWindow, msg.Fsys, msg.StartPath, msg.Closer, a.rules)
	if err != nil {
		a.err = err
		return a, tea.Quit
	}

	if msg.Recursive {
		task := session.BrowseRecursive(scanMessage)
		screen := screens.NewScanScreen(session, task)
		a.currentScreen = screen

		return a, screen.Init()
	}

	if _, err := session.Browse(); err != nil {
		a.err = err
		return a, tea.Quit
	}

	return a.showBrowseScreen(session, false, "")
}

func (a AppModel) showBrowseScreen(session *browser.Session, recursive bool, status string) (tea.Model, tea.Cmd) {
	screen := screens.NewBrowseScreen(a.manager, a.host, session, recursive, status)
	initCmd := screen.Init()

	// Screens created after startup missed the initial size message.
	model, sizeCmd := screen.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	a.currentScreen = model

	return a, tea.Batch(initCmd, sizeCmd)
}

func (a AppModel) handleRulesReloaded(msg shared.RulesReloadedMsg) (tea.Model, tea.Cmd) {
	a.rules = msg.Rules
	a.manager.SetRules(msg.Rules)

	cmds := []tea.Cmd{waitForReload(a.reloads)}

	if a.currentScreen != nil {
		var cmd tea.Cmd
		a.currentScreen, cmd = a.currentScreen.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// waitForReload blocks on the settings watcher and recompiles the rules
// when a new settings snapshot arrives. A compile failure still produces
// usable rules; the degraded matcher excludes everything it sees.
func waitForReload(reloads <-chan *config.Settings) tea.Cmd {
	return func() tea.Msg {
		settings, ok := <-reloads
		if !ok {
			return nil
		}

		rules, err := browser.CompileRules(settings.RuleConfig())
		if err != nil {
			slog.Warn("settings reload compiled with errors", "error", err)
		}

		return shared.RulesReloadedMsg{Rules: rules}
	}
}
