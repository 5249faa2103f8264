// Package store provides a SQLite-backed cookie jar so a server session
// survives between separate xpense invocations. Only cookies are stored.
package store

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Jar is an http.CookieJar whose contents are mirrored to SQLite.
// Matching is delegated to net/http/cookiejar.
type Jar struct {
	db  *sql.DB
	mem *cookiejar.Jar
	log zerolog.Logger
	now func() time.Time

	mu sync.Mutex
}

var _ http.CookieJar = (*Jar)(nil)

// Open opens or creates the cookie database at dbPath and loads every
// unexpired cookie into memory.
func Open(dbPath string) (*Jar, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cookie dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening cookie db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	mem, _ := cookiejar.New(nil) // only fails on a bad PublicSuffixList
	j := &Jar{
		db:  db,
		mem: mem,
		log: log.With().Str("component", "cookies").Logger(),
		now: time.Now,
	}
	if err := j.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

// Close closes the cookie database.
func (j *Jar) Close() error {
	return j.db.Close()
}

// Cookies implements http.CookieJar.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	return j.mem.Cookies(u)
}

// SetCookies implements http.CookieJar. Persistence failures are logged;
// the in-memory jar is always updated.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mem.SetCookies(u, cookies)

	j.mu.Lock()
	defer j.mu.Unlock()
	for _, c := range cookies {
		if err := j.persist(u, c); err != nil {
			j.log.Warn().Err(err).Str("cookie", c.Name).Str("host", u.Host).Msg("persist cookie")
		}
	}
}

func (j *Jar) persist(u *url.URL, c *http.Cookie) error {
	p := c.Path
	if p == "" || p[0] != '/' {
		p = defaultPath(u.Path)
	}

	now := j.now()
	var expires int64
	switch {
	case c.MaxAge < 0:
		expires = -1
	case c.MaxAge > 0:
		expires = now.Add(time.Duration(c.MaxAge) * time.Second).Unix()
	case !c.Expires.IsZero():
		expires = c.Expires.Unix()
		if !c.Expires.After(now) {
			expires = -1
		}
	}

	if expires < 0 {
		_, err := j.db.Exec(`DELETE FROM cookies WHERE host = ? AND name = ? AND path = ?`,
			u.Host, c.Name, p)
		return err
	}

	_, err := j.db.Exec(`INSERT OR REPLACE INTO cookies
		(host, name, path, domain, value, scheme, expires, secure, http_only, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Host, c.Name, p, c.Domain, c.Value, u.Scheme, expires,
		boolToInt(c.Secure), boolToInt(c.HttpOnly), now.UTC().Format(time.RFC3339),
	)
	return err
}

func (j *Jar) load() error {
	rows, err := j.db.Query(`SELECT host, name, path, domain, value, scheme, expires, secure, http_only
		FROM cookies WHERE expires = 0 OR expires > ?`, j.now().Unix())
	if err != nil {
		return fmt.Errorf("loading cookies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byOrigin := make(map[url.URL][]*http.Cookie)
	for rows.Next() {
		var (
			host, scheme     string
			expires          int64
			secure, httpOnly int
			c                http.Cookie
		)
		if err := rows.Scan(&host, &c.Name, &c.Path, &c.Domain, &c.Value, &scheme, &expires, &secure, &httpOnly); err != nil {
			return fmt.Errorf("scanning cookie: %w", err)
		}
		if expires > 0 {
			c.Expires = time.Unix(expires, 0)
		}
		c.Secure = secure != 0
		c.HttpOnly = httpOnly != 0

		origin := url.URL{Scheme: scheme, Host: host, Path: "/"}
		byOrigin[origin] = append(byOrigin[origin], &c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("loading cookies: %w", err)
	}

	for origin, cs := range byOrigin {
		u := origin
		j.mem.SetCookies(&u, cs)
	}
	return nil
}

// defaultPath is the RFC 6265 section 5.1.4 default cookie path.
func defaultPath(p string) string {
	if p == "" || p[0] != '/' {
		return "/"
	}
	dir := path.Dir(p)
	if dir == "." {
		return "/"
	}
	return dir
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
