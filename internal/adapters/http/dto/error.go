package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
)

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at one invalid request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemKind ties a sentinel error to its status. A non-empty detail
// replaces the error text so internals never reach the client.
type problemKind struct {
	cause  error
	status int
	detail string
}

// Checked in order; the first match wins.
var problemKinds = []problemKind{
	{cause: domain.ErrValidation, status: http.StatusBadRequest},
	{cause: domain.ErrUnauthorized, status: http.StatusUnauthorized},
	{cause: domain.ErrTooManyRequests, status: http.StatusTooManyRequests},
	{cause: domain.ErrUnavailable, status: http.StatusServiceUnavailable, detail: "storage is temporarily unavailable"},
	{cause: context.DeadlineExceeded, status: http.StatusGatewayTimeout, detail: "the request took too long to complete"},
}

var internalProblem = problemKind{status: http.StatusInternalServerError, detail: "an unexpected error occurred"}

func classify(err error) problemKind {
	for _, k := range problemKinds {
		if errors.Is(err, k.cause) {
			return k
		}
	}
	return internalProblem
}

// NewErrorResponse builds the problem for err, using the request URI as the
// instance.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	return NewProblem(r.RequestURI, err)
}

// NewProblem builds the problem for err outside net/http, e.g. in the
// Lambda adapter.
func NewProblem(instance string, err error) ErrorResponse {
	kind := classify(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(kind.status),
		Status:   kind.status,
		Detail:   cmp.Or(kind.detail, err.Error()),
		Instance: instance,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json. A 401 carries
// a Bearer challenge.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	h := w.Header()
	if resp.Status == http.StatusUnauthorized {
		h.Set("WWW-Authenticate", `Bearer realm="api"`)
	}
	h.Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
