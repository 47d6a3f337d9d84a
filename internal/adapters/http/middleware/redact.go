package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as log attributes sorted by name. Credential
// headers, as decided by logging.IsSensitiveHeader, keep their name but lose
// their value. Repeated values are joined with ", ".
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(maps.Keys(headers))

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.IsSensitiveHeader(name) {
			value = strings.Join(headers[name], ", ")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
