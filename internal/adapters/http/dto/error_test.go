package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
)

func TestNewProblem_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "validation keeps its message",
			err:        &domain.ValidationError{Fields: map[string]string{"tax_id": "is required"}},
			wantStatus: http.StatusBadRequest,
			wantDetail: "validation error: tax_id: is required",
		},
		{
			name:       "unauthorized keeps its message",
			err:        fmt.Errorf("login: %w", domain.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantDetail: "login: unauthorized",
		},
		{
			name:       "rate limited",
			err:        domain.ErrTooManyRequests,
			wantStatus: http.StatusTooManyRequests,
			wantDetail: domain.ErrTooManyRequests.Error(),
		},
		{
			name:       "unavailable hides the cause",
			err:        fmt.Errorf("postgres find_all: %w: dial tcp 10.0.0.7:5432", domain.ErrUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: "storage is temporarily unavailable",
		},
		{
			name:       "deadline",
			err:        fmt.Errorf("listing companies: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantDetail: "the request took too long to complete",
		},
		{
			name:       "anything else is internal",
			err:        errors.New("dial tcp 10.0.0.7:5432: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "an unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dto.NewProblem("/api/v1/companies/transfers/last-month", tt.err)

			assert.Equal(t, "about:blank", got.Type)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, http.StatusText(tt.wantStatus), got.Title)
			assert.Contains(t, got.Detail, tt.wantDetail)
			assert.NotContains(t, got.Detail, "10.0.0.7")
			assert.Equal(t, "/api/v1/companies/transfers/last-month", got.Instance)
		})
	}
}

func TestNewErrorResponse_UsesRequestURI(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/auth/login?next=%2F", http.NoBody)
	got := dto.NewErrorResponse(r, domain.ErrUnauthorized)

	assert.Equal(t, "/auth/login?next=%2F", got.Instance)
	assert.Nil(t, got.Errors)
}

func TestNewProblem_FieldErrorsSortedByLocation(t *testing.T) {
	t.Parallel()

	got := dto.NewProblem("/api/v1/companies/adhesions", &domain.ValidationError{Fields: map[string]string{
		"type":       `invalid: "bad"`,
		"tax_id":     "is required",
		"legal_name": "is required",
	}})

	assert.Equal(t, []dto.ErrorDetail{
		{Location: "body.legal_name", Message: "is required"},
		{Location: "body.tax_id", Message: "is required"},
		{Location: "body.type", Message: `invalid: "bad"`},
	}, got.Errors)
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantChallenge bool
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, true},
		{"validation", &domain.ValidationError{Fields: map[string]string{"tax_id": "is required"}}, http.StatusBadRequest, false},
		{"rate limited", domain.ErrTooManyRequests, http.StatusTooManyRequests, false},
		{"unavailable", domain.ErrUnavailable, http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			dto.WriteErrorResponse(rec, httptest.NewRequest(http.MethodPost, "/api/v1/companies/adhesions", http.NoBody), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
			if tt.wantChallenge {
				assert.Equal(t, `Bearer realm="api"`, rec.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
			}

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
		})
	}
}
