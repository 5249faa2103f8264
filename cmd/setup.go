package cmd

import (
	"fmt"

	"github.com/Tanishkag23/xpense/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, err := config.LoadFile(config.ConfigPath())
	if err != nil {
		return err
	}

	saved, err := runSetupWizard(&cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	if !saved {
		fmt.Println("  Setup cancelled, nothing saved.")
		return nil
	}
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `xpense setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
