package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/middleware"
)

type seenIDs struct {
	request     string
	correlation string
}

// serveWithIDs runs a request through RequestID and CorrelationID and
// reports what the handler saw in its context.
func serveWithIDs(t *testing.T, headers map[string]string) (seenIDs, *httptest.ResponseRecorder) {
	t.Helper()

	var seen seenIDs
	h := middleware.RequestID()(middleware.CorrelationID()(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen.request = middleware.RequestIDFromContext(r.Context())
			seen.correlation = middleware.CorrelationIDFromContext(r.Context())
		}),
	))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/adhesions/last-month", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestIDs_GeneratedWhenAbsent(t *testing.T) {
	t.Parallel()

	seen, rec := serveWithIDs(t, nil)

	parsed, err := uuid.Parse(seen.request)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, seen.request, seen.correlation)
	assert.Equal(t, seen.request, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, seen.request, rec.Header().Get("X-Correlation-ID"))
}

func TestIDs_IncomingHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		headers         map[string]string
		wantRequest     string
		wantCorrelation string
	}{
		{
			name:            "both reused",
			headers:         map[string]string{"X-Request-ID": "req-1", "X-Correlation-ID": "corr-1"},
			wantRequest:     "req-1",
			wantCorrelation: "corr-1",
		},
		{
			name:            "correlation defaults to request",
			headers:         map[string]string{"X-Request-ID": "req-2"},
			wantRequest:     "req-2",
			wantCorrelation: "req-2",
		},
		{
			name:            "malformed correlation falls back",
			headers:         map[string]string{"X-Request-ID": "req-3", "X-Correlation-ID": "has space"},
			wantRequest:     "req-3",
			wantCorrelation: "req-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seen, rec := serveWithIDs(t, tt.headers)
			assert.Equal(t, tt.wantRequest, seen.request)
			assert.Equal(t, tt.wantCorrelation, seen.correlation)
			assert.Equal(t, tt.wantCorrelation, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestIDs_RejectsUnsafeRequestIDs(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{
		"line\nbreak",
		"tab\there",
		"ñandú",
		strings.Repeat("a", 129),
	} {
		seen, _ := serveWithIDs(t, map[string]string{"X-Request-ID": bad})
		assert.NotEqual(t, bad, seen.request)
		_, err := uuid.Parse(seen.request)
		assert.NoError(t, err, "expected a generated id for %q", bad)
	}
}

func TestIDs_AcceptsMaxLength(t *testing.T) {
	t.Parallel()

	id := strings.Repeat("x", 128)
	seen, _ := serveWithIDs(t, map[string]string{"X-Request-ID": id})
	assert.Equal(t, id, seen.request)
}

func TestIDs_UniquePerRequest(t *testing.T) {
	t.Parallel()

	ids := make(map[string]struct{})
	for range 50 {
		seen, _ := serveWithIDs(t, nil)
		ids[seen.request] = struct{}{}
	}
	assert.Len(t, ids, 50)
}

func TestIDs_EmptyContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RequestIDFromContext(t.Context()))
	assert.Empty(t, middleware.CorrelationIDFromContext(t.Context()))
	assert.Equal(t, "abc", middleware.RequestIDFromContext(middleware.WithRequestID(t.Context(), "abc")))
}
