package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"geocalc/cmd/geo/tui"
	"geocalc/internal/config"
	"geocalc/internal/journal"
	"geocalc/internal/session"
)

// runInteractive starts the interactive calculator.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load(cfgPath)
	hist := session.NewHistory()
	jw := journal.NewWriter(cfg.JournalPath(), hist.ID())

	p := tea.NewProgram(
		tui.New(cfg, hist, jw),
		tea.WithAltScreen(),
	)

	// Re-theme the running program when the config file changes on disk.
	// A missing config directory just means no live reload.
	watchPath := cfgPath
	if watchPath == "" {
		watchPath, _ = config.DefaultPath()
	}
	if watchPath != "" {
		if watcher, err := config.NewWatcher(watchPath, func(c config.Config) {
			p.Send(tui.ConfigReloadedMsg(c))
		}); err == nil {
			if err := watcher.Start(context.Background()); err == nil {
				defer watcher.Stop()
			}
		}
	}

	if _, err := p.Run(); err != nil {
		// A closed input stream is a normal way to leave.
		if errors.Is(err, io.EOF) {
			printSessionSummary(hist)
			return nil
		}
		return fmt.Errorf("interactive session failed: %w", err)
	}

	printSessionSummary(hist)
	return nil
}

// printSessionSummary reports what the session computed, after the TUI has
// released the terminal.
func printSessionSummary(hist *session.History) {
	n := hist.Len()
	if n == 0 {
		return
	}

	heading := color.New(color.FgCyan, color.Bold).SprintfFunc()
	fmt.Println(heading("session %s: %d calculation(s)", hist.ID(), n))

	tally := hist.Tally()
	names := make([]string, 0, len(tally))
	for name := range tally {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s × %d\n", name, tally[name])
	}
}
