package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
)

// Fixed "now" shared by handler tests: 2025-07-23 12:00 UTC.
var testNow = time.Date(2025, 7, 23, 12, 0, 0, 0, time.UTC)

func validCompany() company.Company {
	return company.Company{
		ID:           "emp2",
		TaxID:        "30-22222222-2",
		LegalName:    "Empresa B",
		AdhesionDate: testNow.AddDate(0, 0, -15),
		Type:         company.TypeCorporate,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return &buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
