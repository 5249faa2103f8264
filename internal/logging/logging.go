// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options selects the level and destination.
type Options struct {
	Level string
	File  string // empty writes to stderr
	Quiet bool   // forces error level
}

// ParseLevel maps a config string to a zerolog level. Empty means warn.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.WarnLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// Setup installs the global logger. The returned closer releases the log
// file, if one was opened.
func Setup(opts Options) (io.Closer, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nopCloser{}, err
	}
	if opts.Quiet && lvl < zerolog.ErrorLevel {
		lvl = zerolog.ErrorLevel
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
		color            = true
	)
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return closer, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			return closer, fmt.Errorf("opening log file: %w", err)
		}
		out, closer, color = f, f, false
	}

	log.Logger = New(out, lvl, !color)
	zerolog.SetGlobalLevel(lvl)
	return closer, nil
}

// New builds a console logger on w.
func New(w io.Writer, lvl zerolog.Level, noColor bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: "15:04:05"}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
