// Package main is the entry point for the quickbrowse application.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/absop/quickbrowse/internal/actions"
	"github.com/absop/quickbrowse/internal/browser"
	"github.com/absop/quickbrowse/internal/config"
	"github.com/absop/quickbrowse/internal/tui"
	pkgerrors "github.com/absop/quickbrowse/pkg/errors"
)

const debugLogPath = "quickbrowse-debug.log"

func main() {
	// Parse configuration
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settingsPath := cfg.Settings
	if settingsPath == "" {
		settingsPath, err = config.DefaultSettingsPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(settings.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	handler := actions.New()
	manager := browser.NewManager(handler)

	// A pattern rejected by the compiler still yields usable rules; the
	// degraded matcher excludes everything, and the user is told why.
	rules, err := browser.CompileRules(settings.RuleConfig())
	if err != nil {
		handler.Status(err.Error())
	}

	reloads := watchSettings(settingsPath)

	model := tui.NewAppModel(cfg, manager, handler, rules, reloads)

	// Only use alt screen if stdout is a TTY
	var opts []tea.ProgramOption
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if app, ok := finalModel.(tui.AppModel); ok && app.Err() != nil {
		enriched := pkgerrors.NewEnricher().Enrich(app.Err(), cfg.Path)
		fmt.Fprintf(os.Stderr, "Error: %v\n", enriched)

		if suggestions := pkgerrors.FormatSuggestions(enriched); suggestions != "" {
			fmt.Fprintln(os.Stderr, suggestions)
		}

		os.Exit(1)
	}

	// The dismissal flush and any last action report their status after
	// the alt screen is gone; inserted paths go to stdout for command
	// substitution.
	if message, ok := handler.TakeStatus(); ok {
		fmt.Fprintln(os.Stderr, message)
	}

	if inserted := handler.Inserted(); len(inserted) > 0 {
		fmt.Println(strings.Join(inserted, "\n"))
	}
}

// setupLogging routes slog to a debug file when enabled and silences it
// otherwise, since stderr belongs to the TUI while the program runs.
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}

	logFile, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})))

	return logFile
}

// watchSettings starts the live-reload watcher. Watch failures are not
// fatal: the session just keeps its startup rules.
func watchSettings(settingsPath string) <-chan *config.Settings {
	reloads, err := config.WatchSettings(settingsPath)
	if err != nil {
		slog.Warn("settings watch unavailable", "path", settingsPath, "error", err)
		return nil
	}

	return reloads
}
