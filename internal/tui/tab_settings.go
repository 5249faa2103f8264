package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Tanishkag23/xpense/internal/cli"
	"github.com/Tanishkag23/xpense/internal/config"
	"github.com/Tanishkag23/xpense/internal/logging"
	"github.com/Tanishkag23/xpense/internal/tui/components"
	"github.com/Tanishkag23/xpense/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldBaseURL = iota
	settingsFieldTimeout
	settingsFieldTheme
	settingsFieldDemoUser
	settingsFieldDemoPassword
	settingsFieldLogoutReveals
	settingsFieldPersistCookies
	settingsFieldLogLevel
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := a.cfg
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldBaseURL:
		ti.Placeholder = "http://localhost:8080"
		ti.SetValue(cfg.Server.BaseURL)
	case settingsFieldTimeout:
		ti.Placeholder = "0 (seconds, 0 = no timeout)"
		ti.SetValue(strconv.Itoa(cfg.Server.TimeoutSec))
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldDemoUser:
		ti.Placeholder = "demo"
		ti.SetValue(cfg.Session.DemoUser)
	case settingsFieldDemoPassword:
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
		ti.SetValue(cfg.Session.DemoPassword)
	case settingsFieldLogoutReveals:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(cfg.Session.LogoutRevealsLogin))
	case settingsFieldPersistCookies:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(cfg.Session.PersistCookies))
	case settingsFieldLogLevel:
		ti.Placeholder = "debug, info, warn, error"
		ti.SetValue(cfg.Log.Level)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	}
	return false, false
}

// settingsSave validates the edited value and persists the config.
// Invalid values are ignored. Only the theme applies immediately; the
// rest take effect the next time xpense starts.
func (a *App) settingsSave() {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldBaseURL:
		if validateBaseURL(val) != nil {
			a.settings.saveErr = fmt.Errorf("invalid URL %q", val)
			return
		}
		cfg.Server.BaseURL = strings.TrimRight(val, "/")
	case settingsFieldTimeout:
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 {
			a.settings.saveErr = fmt.Errorf("invalid timeout %q", val)
			return
		}
		cfg.Server.TimeoutSec = n
	case settingsFieldTheme:
		if !theme.Valid(val) {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldDemoUser:
		cfg.Session.DemoUser = val
	case settingsFieldDemoPassword:
		cfg.Session.DemoPassword = a.settings.input.Value()
	case settingsFieldLogoutReveals, settingsFieldPersistCookies:
		b, ok := parseBool(val)
		if !ok {
			a.settings.saveErr = fmt.Errorf("expected true or false, got %q", val)
			return
		}
		if a.settings.cursor == settingsFieldLogoutReveals {
			cfg.Session.LogoutRevealsLogin = b
		} else {
			cfg.Session.PersistCookies = b
		}
	case settingsFieldLogLevel:
		if _, err := logging.ParseLevel(val); err != nil {
			a.settings.saveErr = err
			return
		}
		cfg.Log.Level = val
	}

	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr == nil {
		a.cfg = cfg
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	passwordDisplay := "(not set)"
	if cfg.Session.DemoPassword != "" {
		passwordDisplay = strings.Repeat("*", min(8, len(cfg.Session.DemoPassword)))
	}
	timeout := "none"
	if cfg.Server.TimeoutSec > 0 {
		timeout = fmt.Sprintf("%ds", cfg.Server.TimeoutSec)
	}
	afterLogout := "use demo account"
	if cfg.Session.LogoutRevealsLogin {
		afterLogout = "show login"
	}

	fields := []struct{ label, value string }{
		{"Server URL", cfg.Server.BaseURL},
		{"Request Timeout", timeout},
		{"Theme", cfg.Appearance.Theme},
		{"Demo Account", cfg.Session.DemoUser},
		{"Demo Password", passwordDisplay},
		{"After Logout", afterLogout},
		{"Remember Session", strconv.FormatBool(cfg.Session.PersistCookies)},
		{"Log Level", cfg.Log.Level},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := components.CardInnerWidth(cw) - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Not saved: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved. Server and session changes apply on next start."))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	st := a.ctrl.State()
	user := st.User
	if user == "" {
		user = "guest"
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Signed in as:  ") + valueStyle.Render(user) + "\n")
	infoBody.WriteString(labelStyle.Render("Session:       ") + valueStyle.Render(st.Kind.String()) + "\n")
	infoBody.WriteString(labelStyle.Render("Demo password: ") + valueStyle.Render(cli.MaskSecret(cfg.Session.DemoPassword)) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:   ") + valueStyle.Render(config.ConfigPath()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("About", infoBody.String(), cw))

	return b.String()
}
