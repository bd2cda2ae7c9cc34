// Package chrome reads cookies from a local Chrome profile's Cookies
// SQLite database. It is intended for local tooling: it snapshots the
// (possibly locked) live database before reading and never writes to it.
package chrome

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// The six columns the exporter needs, in the fixed positional order the
// scan below expects. Chrome's cookies table carries more columns than
// these; their presence or absence is irrelevant here.
const cookieColumns = "host_key, name, value, path, expires_utc, is_secure"

// ReadCookies returns the cookies stored in the database at dbPath.
//
// If filterDomains is non-empty, one substring match is issued per filter
// domain against host_key and the result sets are concatenated in filter
// order; a host matching two filters yields its cookies twice. With no
// filters, every cookie is returned in storage order.
//
// A missing or unreadable database, or a cookies table without the
// expected columns, is an error.
func ReadCookies(ctx context.Context, dbPath string, filterDomains []string) ([]Cookie, error) {
	snap, err := NewSnapshot(dbPath)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	db, err := sql.Open("sqlite3", snap.Path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer db.Close()

	if len(filterDomains) == 0 {
		return scanCookies(ctx, db, "SELECT "+cookieColumns+" FROM cookies")
	}

	var cookies []Cookie
	for _, dom := range filterDomains {
		matched, err := scanCookies(ctx, db,
			"SELECT "+cookieColumns+" FROM cookies WHERE host_key LIKE ?",
			"%"+dom+"%",
		)
		if err != nil {
			return nil, err
		}
		cookies = append(cookies, matched...)
	}

	if cookies == nil {
		cookies = []Cookie{}
	}

	return cookies, nil
}

// scanCookies executes a query selecting cookieColumns and scans the rows
// positionally into Cookie values.
func scanCookies(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([]Cookie, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cookies: %w", err)
	}
	defer rows.Close()

	var cookies []Cookie
	for rows.Next() {
		var c Cookie
		var expires sql.NullInt64
		if err := rows.Scan(&c.Domain, &c.Name, &c.Value, &c.Path, &expires, &c.Secure); err != nil {
			return nil, fmt.Errorf("scan cookie: %w", err)
		}
		// NULL expiry behaves like 0: a session cookie.
		if expires.Valid {
			c.ExpiresUTC = expires.Int64
		}
		cookies = append(cookies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if cookies == nil {
		cookies = []Cookie{}
	}

	return cookies, nil
}

// DomainStats returns the distinct cookie hosts in the database and the
// number of cookies stored for each, most populous first. Hosts with equal
// counts sort alphabetically so output is stable across runs.
func DomainStats(ctx context.Context, dbPath string) ([]DomainCount, error) {
	snap, err := NewSnapshot(dbPath)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	db, err := sql.Open("sqlite3", snap.Path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		"SELECT host_key, COUNT(*) AS cnt FROM cookies GROUP BY host_key ORDER BY cnt DESC, host_key",
	)
	if err != nil {
		return nil, fmt.Errorf("query cookie hosts: %w", err)
	}
	defer rows.Close()

	var stats []DomainCount
	for rows.Next() {
		var dc DomainCount
		if err := rows.Scan(&dc.Domain, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan cookie host: %w", err)
		}
		stats = append(stats, dc)
	}

	return stats, rows.Err()
}
