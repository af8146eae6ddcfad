package slogx

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// bearerPattern matches "Bearer <token>" values.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// jwtPattern matches compact JWTs such as session cookie values. Segments
	// need 10+ characters so version strings stay readable.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
)

// redactAttr returns a masq ReplaceAttr hiding credentials by field name and
// session tokens by shape.
func redactAttr() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("password"),
		masq.WithFieldName("password_hash"),
		masq.WithFieldName("token"),
		masq.WithFieldName("cookie"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("sessionId"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
	)
}
