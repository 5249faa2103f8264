package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
	if cfg.General.Currency != "INR" {
		t.Fatalf("currency = %q, want INR", cfg.General.Currency)
	}
	if cfg.Session.LogoutRevealsLogin {
		t.Fatal("logout_reveals_login should default to false")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	want := DefaultConfig()
	want.Server.BaseURL = "https://expenses.example.com"
	want.Server.TimeoutSec = 15
	want.Session.LogoutRevealsLogin = true
	want.Log.File = "/tmp/xpense.log"

	if err := SaveFile(path, want); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[server]\nbase_url = \"http://10.0.0.5:9000\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Server.BaseURL != "http://10.0.0.5:9000" {
		t.Fatalf("base_url = %q", cfg.Server.BaseURL)
	}
	if cfg.Session.DemoUser != "demo" || cfg.Log.Level != "warn" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, " http://api.local ")
	t.Setenv(EnvLogLevel, "debug")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	if cfg.Server.BaseURL != "http://api.local" {
		t.Fatalf("base_url = %q", cfg.Server.BaseURL)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("level = %q", cfg.Log.Level)
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("XPENSE_BASE_URL=http://from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvBaseURL, "http://from-env")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if got := os.Getenv(EnvBaseURL); got != "http://from-env" {
		t.Fatalf("env overridden by .env: %q", got)
	}
	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}
