package cmd

import (
	"fmt"
	"os"

	"github.com/Tanishkag23/xpense/internal/cli"
	"github.com/Tanishkag23/xpense/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	if v := os.Getenv(config.EnvBaseURL); v != "" {
		fmt.Printf("  %s=%s\n", config.EnvBaseURL, v)
	}
	fmt.Println()

	timeout := "none"
	if cfg.Server.TimeoutSec > 0 {
		timeout = fmt.Sprintf("%ds", cfg.Server.TimeoutSec)
	}

	fmt.Println("  [Server]")
	fmt.Printf("    Base URL:  %s\n", cfg.Server.BaseURL)
	fmt.Printf("    Timeout:   %s\n", timeout)
	fmt.Println()

	fmt.Println("  [Session]")
	fmt.Printf("    Demo user:            %s\n", cfg.Session.DemoUser)
	fmt.Printf("    Demo password:        %s\n", cli.MaskSecret(cfg.Session.DemoPassword))
	fmt.Printf("    Logout reveals login: %v\n", cfg.Session.LogoutRevealsLogin)
	fmt.Printf("    Persist cookies:      %v\n", cfg.Session.PersistCookies)
	if cfg.Session.PersistCookies {
		fmt.Printf("    Cookie store:         %s\n", config.CookiePath())
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency: %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	if cfg.Log.File != "" {
		fmt.Printf("    File:  %s\n", cfg.Log.File)
	}
	fmt.Println()

	fmt.Println("  Run `xpense setup` to reconfigure.")
	return nil
}
