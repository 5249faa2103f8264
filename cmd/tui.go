package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Tanishkag23/xpense/internal/config"
	"github.com/Tanishkag23/xpense/internal/tui"
	"github.com/Tanishkag23/xpense/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// First run: ask for the server before connecting to it
	if !config.Exists() {
		saved, err := runSetupWizard(&cfg)
		if err != nil {
			return err
		}
		if !saved {
			fmt.Println("  Setup skipped, using defaults.")
		}
	}

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Logs would draw over the alt screen, so they go to a file
	c, err := connect(cfg, filepath.Join(config.ConfigDir(), "xpense.log"))
	if err != nil {
		return err
	}
	defer c.Close()

	p := tea.NewProgram(tui.NewApp(c.ctrl, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// runSetupWizard edits cfg with the setup form and saves it. It reports
// false, with cfg untouched, when the user aborts.
func runSetupWizard(cfg *config.Config) (bool, error) {
	v := tui.SetupValuesFrom(*cfg)
	if err := tui.NewSetupForm(v).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("setup: %w", err)
	}

	v.Apply(cfg)
	if err := config.Save(*cfg); err != nil {
		return false, fmt.Errorf("saving config: %w", err)
	}
	return true, nil
}
