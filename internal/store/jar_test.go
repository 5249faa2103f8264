package store

import (
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"
)

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func cookieNames(cs []*http.Cookie) map[string]string {
	m := make(map[string]string, len(cs))
	for _, c := range cs {
		m[c.Name] = c.Value
	}
	return m
}

func TestJarSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cookies.db")

	j, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	login := mustURL(t, "http://127.0.0.1:8080/api/login")
	j.SetCookies(login, []*http.Cookie{
		{Name: "sid", Value: "abc123", Path: "/", HttpOnly: true},
		{Name: "pref", Value: "dark"}, // defaults to /api
	})
	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	j, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer j.Close()

	got := cookieNames(j.Cookies(mustURL(t, "http://127.0.0.1:8080/api/dashboard")))
	if got["sid"] != "abc123" || got["pref"] != "dark" {
		t.Fatalf("cookies after reopen = %v", got)
	}

	root := cookieNames(j.Cookies(mustURL(t, "http://127.0.0.1:8080/")))
	if _, ok := root["pref"]; ok {
		t.Fatalf("path-scoped cookie leaked to /: %v", root)
	}
	other := j.Cookies(mustURL(t, "http://127.0.0.1:9090/api/me"))
	if len(other) != 0 {
		t.Fatalf("cookies leaked to another origin: %v", other)
	}
}

func TestJarDeletesClearedCookie(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cookies.db")
	u := mustURL(t, "http://localhost:8080/api/logout")

	j, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	j.SetCookies(u, []*http.Cookie{{Name: "sid", Value: "abc", Path: "/"}})
	j.SetCookies(u, []*http.Cookie{{Name: "sid", Value: "", Path: "/", MaxAge: -1}})

	var n int
	if err := j.db.QueryRow(`SELECT COUNT(*) FROM cookies`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("cleared cookie still stored (%d rows)", n)
	}
	if len(j.Cookies(u)) != 0 {
		t.Fatal("cleared cookie still in memory")
	}
	_ = j.Close()
}

func TestJarSkipsExpiredOnLoad(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cookies.db")
	u := mustURL(t, "http://localhost:8080/")

	j, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	start := time.Now()
	j.now = func() time.Time { return start }
	j.SetCookies(u, []*http.Cookie{
		{Name: "short", Value: "1", Path: "/", MaxAge: 60},
		{Name: "session", Value: "2", Path: "/"},
	})
	_ = j.Close()

	// Pretend two minutes pass by editing the stored expiry.
	j, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, err := j.db.Exec(`UPDATE cookies SET expires = ? WHERE name = 'short'`, start.Add(-time.Minute).Unix()); err != nil {
		t.Fatal(err)
	}
	_ = j.Close()

	j, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer j.Close()
	got := cookieNames(j.Cookies(u))
	if _, ok := got["short"]; ok {
		t.Fatalf("expired cookie loaded: %v", got)
	}
	if got["session"] != "2" {
		t.Fatalf("session cookie missing: %v", got)
	}
}

func TestDefaultPath(t *testing.T) {
	tests := map[string]string{
		"":               "/",
		"/":              "/",
		"/login":         "/",
		"/api/login":     "/api",
		"/api/":          "/api",
		"relative/thing": "/",
	}
	for in, want := range tests {
		if got := defaultPath(in); got != want {
			t.Errorf("defaultPath(%q) = %q, want %q", in, got, want)
		}
	}
}
