// Package cmd implements the xpense CLI commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Tanishkag23/xpense/internal/api"
	"github.com/Tanishkag23/xpense/internal/cli"
	"github.com/Tanishkag23/xpense/internal/config"
	"github.com/Tanishkag23/xpense/internal/controller"
	"github.com/Tanishkag23/xpense/internal/logging"
	"github.com/Tanishkag23/xpense/internal/screen"
	"github.com/Tanishkag23/xpense/internal/session"
	"github.com/Tanishkag23/xpense/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagBaseURL   string
	flagLogLevel  string
	flagNoCookies bool
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:           "xpense",
	Short:         "Expense tracker client",
	Long:          "Track expenses, budgets and income against an xpense server, from the shell or an interactive dashboard.",
	RunE:          runDashboard,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Alerted errors were already printed with the command's output.
		if !controller.Reported(err) {
			fmt.Fprintf(os.Stderr, "  Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Server URL (overrides config and "+config.EnvBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoCookies, "no-cookies", false, "Do not persist the session cookie between runs")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
}

// loadConfig reads the config file and environment, then applies the
// persistent flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagBaseURL != "" {
		cfg.Server.BaseURL = flagBaseURL
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoCookies {
		cfg.Session.PersistCookies = false
	}
	return cfg, nil
}

// client is one wired controller stack plus whatever it holds open.
type client struct {
	cfg     config.Config
	ctrl    *controller.Controller
	closers []io.Closer
}

func (c *client) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		_ = c.closers[i].Close()
	}
}

// connect sets up logging, the cookie jar, the API client and the
// controller. logFile, when set, is used if the config names no log file.
func connect(cfg config.Config, logFile string) (*client, error) {
	c := &client{cfg: cfg}

	opts := logging.Options{Level: cfg.Log.Level, File: cfg.Log.File, Quiet: flagQuiet}
	if opts.File == "" {
		opts.File = logFile
	}
	logCloser, err := logging.Setup(opts)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, logCloser)

	var jar http.CookieJar
	if cfg.Session.PersistCookies {
		j, err := store.Open(config.CookiePath())
		if err != nil {
			// Fall back to an in-memory session
			log.Warn().Err(err).Msg("cookie store unavailable, session will not persist")
		} else {
			jar = j
			c.closers = append(c.closers, j)
		}
	}

	apiOpts := []api.Option{
		api.WithTimeout(time.Duration(cfg.Server.TimeoutSec) * time.Second),
		api.WithLogger(log.With().Str("component", "api").Logger()),
	}
	if jar != nil {
		apiOpts = append(apiOpts, api.WithJar(jar))
	}
	backend, err := api.New(cfg.Server.BaseURL, apiOpts...)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.ctrl = controller.New(backend, screen.New(), controller.Options{
		Policy: session.Policy{
			DemoUser:           cfg.Session.DemoUser,
			LogoutRevealsLogin: cfg.Session.LogoutRevealsLogin,
		},
		DemoPassword: cfg.Session.DemoPassword,
		Currency:     cfg.General.Currency,
	})
	return c, nil
}

// runOneShot is the shared path of the non-interactive commands: prepare
// sets inputs before startup, startup renders every view, then act runs
// the requested operation. Alerts raised along the way go to stderr.
//
// Startup failures are alerted and never stop act; when there is an act,
// its error alone decides the outcome. The returned client is closed but
// its screen stays readable.
func runOneShot(
	cmd *cobra.Command,
	prepare func(*controller.Controller),
	act func(context.Context, *controller.Controller) error,
) (*client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	c, err := connect(cfg, "")
	if err != nil {
		return nil, err
	}
	defer c.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if prepare != nil {
		prepare(c.ctrl)
	}
	err = c.ctrl.Startup(ctx)
	if act != nil {
		if err != nil {
			log.Debug().Err(err).Msg("startup incomplete, running command anyway")
		}
		err = act(ctx, c.ctrl)
	}
	printAlerts(c.ctrl.Screen())
	return c, err
}

func printAlerts(scr *screen.Screen) {
	for _, msg := range scr.TakeAlerts() {
		fmt.Fprintln(os.Stderr, cli.RenderWarning("  ! "+msg))
	}
}
