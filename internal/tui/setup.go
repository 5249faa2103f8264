package tui

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/Tanishkag23/xpense/internal/config"
	"github.com/Tanishkag23/xpense/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the setup wizard. Fields are bound to
// the form by pointer, so the struct must outlive the form.
type SetupValues struct {
	BaseURL            string
	TimeoutSec         string
	DemoUser           string
	DemoPassword       string
	LogoutRevealsLogin bool
	PersistCookies     bool
	Theme              string
}

// SetupValuesFrom seeds the wizard with the current configuration.
func SetupValuesFrom(cfg config.Config) *SetupValues {
	return &SetupValues{
		BaseURL:            cfg.Server.BaseURL,
		TimeoutSec:         strconv.Itoa(cfg.Server.TimeoutSec),
		DemoUser:           cfg.Session.DemoUser,
		DemoPassword:       cfg.Session.DemoPassword,
		LogoutRevealsLogin: cfg.Session.LogoutRevealsLogin,
		PersistCookies:     cfg.Session.PersistCookies,
		Theme:              cfg.Appearance.Theme,
	}
}

// Apply writes the answers into cfg.
func (v *SetupValues) Apply(cfg *config.Config) {
	cfg.Server.BaseURL = strings.TrimRight(strings.TrimSpace(v.BaseURL), "/")
	if n, err := strconv.Atoi(strings.TrimSpace(v.TimeoutSec)); err == nil && n >= 0 {
		cfg.Server.TimeoutSec = n
	}
	cfg.Session.DemoUser = strings.TrimSpace(v.DemoUser)
	cfg.Session.DemoPassword = v.DemoPassword
	cfg.Session.LogoutRevealsLogin = v.LogoutRevealsLogin
	cfg.Session.PersistCookies = v.PersistCookies
	if theme.Valid(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
}

func validateBaseURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("enter an http:// or https:// URL")
	}
	return nil
}

func validateSeconds(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return errors.New("enter a whole number of seconds (0 = no timeout)")
	}
	return nil
}

// NewSetupForm builds the setup wizard.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to xpense").
				Description("A terminal client for your expense tracker.\nLet's point it at your server."),
			huh.NewInput().
				Title("Server URL").
				Placeholder("http://localhost:8080").
				Validate(validateBaseURL).
				Value(&v.BaseURL),
			huh.NewInput().
				Title("Request timeout (seconds)").
				Description("0 waits as long as the server takes.").
				Validate(validateSeconds).
				Value(&v.TimeoutSec),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Demo account").
				Description("Used to sign in automatically when no session exists.").
				Value(&v.DemoUser),
			huh.NewInput().
				Title("Demo password").
				EchoMode(huh.EchoModePassword).
				Value(&v.DemoPassword),
			huh.NewConfirm().
				Title("After logout").
				Affirmative("Show login").
				Negative("Use demo account").
				Value(&v.LogoutRevealsLogin),
			huh.NewConfirm().
				Title("Remember the session between runs?").
				Value(&v.PersistCookies),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		),
	).WithShowHelp(true)
}
