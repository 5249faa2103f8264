package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS cookies (
    host        TEXT NOT NULL,
    name        TEXT NOT NULL,
    path        TEXT NOT NULL,
    domain      TEXT NOT NULL DEFAULT '',
    value       TEXT NOT NULL,
    scheme      TEXT NOT NULL,
    expires     INTEGER NOT NULL DEFAULT 0,
    secure      INTEGER NOT NULL DEFAULT 0,
    http_only   INTEGER NOT NULL DEFAULT 0,
    updated_at  TEXT NOT NULL,
    PRIMARY KEY (host, name, path)
);

CREATE INDEX IF NOT EXISTS idx_cookies_host ON cookies(host);
`
