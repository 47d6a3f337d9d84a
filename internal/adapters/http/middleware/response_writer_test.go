package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		write       func(w http.ResponseWriter)
		wantStatus  int
		wantWritten int64
		wantStarted bool
	}{
		{
			name:        "nothing written",
			write:       func(http.ResponseWriter) {},
			wantStatus:  http.StatusOK,
			wantStarted: false,
		},
		{
			name:        "explicit status",
			write:       func(w http.ResponseWriter) { w.WriteHeader(http.StatusCreated) },
			wantStatus:  http.StatusCreated,
			wantStarted: true,
		},
		{
			name:        "implicit 200 on write",
			write:       func(w http.ResponseWriter) { _, _ = w.Write([]byte("hello")) },
			wantStatus:  http.StatusOK,
			wantWritten: 5,
			wantStarted: true,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusUnauthorized)
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("{}"))
				_, _ = w.Write([]byte("\n"))
			},
			wantStatus:  http.StatusUnauthorized,
			wantWritten: 3,
			wantStarted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := newStatusRecorder(rec)
			tt.write(sr)

			assert.Equal(t, tt.wantStatus, sr.status)
			assert.Equal(t, tt.wantWritten, sr.written)
			assert.Equal(t, tt.wantStarted, sr.started)
			if tt.wantStarted {
				assert.Equal(t, tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestStatusRecorder_ResponseControllerReachesUnderlyingWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := newStatusRecorder(rec)

	require.NoError(t, http.NewResponseController(sr).Flush())
	assert.True(t, rec.Flushed)
}
