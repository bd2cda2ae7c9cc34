// Package netscape encodes cookies as a Netscape HTTP Cookie File, the
// tab-separated text format consumed by curl, wget, yt-dlp, and friends.
package netscape

import (
	"strconv"
	"strings"

	"github.com/satishsurath/Cookie-Exporter/internal/chrome"
)

// Header is the fixed first line of a Netscape HTTP Cookie File.
const Header = "# Netscape HTTP Cookie File"

// Encode renders cookies into the full file payload: the header line,
// then one line per cookie with fields in the order
// domain, subdomain flag, path, secure flag, expiry epoch, name, value.
//
// Record order is preserved; nothing is sorted or deduplicated. The
// subdomain flag is TRUE exactly when the stored domain begins with '.',
// whatever convention the store used. The format has no escaping rules,
// so a tab or newline inside a field is written as-is and produces a
// malformed line.
func Encode(cookies []chrome.Cookie) string {
	var b strings.Builder
	b.WriteString(Header)

	for _, c := range cookies {
		b.WriteByte('\n')
		b.WriteString(c.Domain)
		b.WriteByte('\t')
		b.WriteString(flag(strings.HasPrefix(c.Domain, ".")))
		b.WriteByte('\t')
		b.WriteString(c.Path)
		b.WriteByte('\t')
		b.WriteString(flag(c.Secure))
		b.WriteByte('\t')
		b.WriteString(strconv.FormatInt(chrome.TimeToUnix(c.ExpiresUTC), 10))
		b.WriteByte('\t')
		b.WriteString(c.Name)
		b.WriteByte('\t')
		b.WriteString(c.Value)
	}

	return b.String()
}

func flag(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}
