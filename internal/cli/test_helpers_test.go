package cli

import (
	"bytes"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// createCookieDB builds a Chrome-shaped Cookies database seeded with a
// known set of rows and returns its path.
func createCookieDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Cookies")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE cookies (
		creation_utc INTEGER NOT NULL,
		host_key     TEXT NOT NULL,
		name         TEXT NOT NULL,
		value        TEXT NOT NULL,
		path         TEXT NOT NULL,
		expires_utc  INTEGER,
		is_secure    INTEGER NOT NULL DEFAULT 0,
		is_httponly  INTEGER NOT NULL DEFAULT 0
	)`)
	require.NoError(t, err)

	rows := []struct {
		host, name, value, path string
		expires                 int64
		secure                  int
	}{
		{".example.com", "sid", "abc123", "/", 13320288000000000, 1},
		{"example.com", "theme", "dark", "/", 0, 0},
		{".github.com", "session", "xyz", "/", 13320288000000000, 1},
		{".youtube.com", "PREF", "f1=5000", "/", 13400000000000000, 0},
	}

	for i, r := range rows {
		_, err := db.Exec(
			"INSERT INTO cookies (creation_utc, host_key, name, value, path, expires_utc, is_secure) VALUES (?, ?, ?, ?, ?, ?, ?)",
			i, r.host, r.name, r.value, r.path, r.expires, r.secure,
		)
		require.NoError(t, err)
	}

	return path
}

// writeConfigFile writes a YAML config into a temp dir and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
