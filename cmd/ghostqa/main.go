package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/cmd"
	"github.com/harshakreox/ghostqa-cli/internal/config"
	"github.com/harshakreox/ghostqa-cli/internal/logging"
	"github.com/harshakreox/ghostqa-cli/internal/ui"
)

func main() {
	root := &cobra.Command{
		Use:   "ghostqa",
		Short: "GhostQA - test management",
		Long:  "GhostQA CLI: browse projects, manage test cases and features, track releases, and administer users.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.ExportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Println("not logged in. run 'ghostqa login' first.")
			return err
		}
		return err
	}
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return fmt.Errorf("ghostqa needs an interactive terminal; use subcommands for scripting")
	}

	if err := logging.Setup(config.LogPath()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: no debug log: %v\n", err)
	}

	client := api.NewClient(cfg.ServerURL, cfg.Token)
	app := ui.NewApp(client, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
