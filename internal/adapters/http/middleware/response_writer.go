package middleware

import "net/http"

// statusRecorder remembers the status code and body size of a response so
// that logging, tracing and recovery can inspect it after the handler runs.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int64
	started bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records code and forwards it. Repeated calls are dropped, as
// net/http would only warn about them.
func (s *statusRecorder) WriteHeader(code int) {
	if s.started {
		return
	}
	s.status = code
	s.started = true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.started = true
	n, err := s.ResponseWriter.Write(b)
	s.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
