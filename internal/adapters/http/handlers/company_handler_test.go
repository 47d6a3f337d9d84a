package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
	"github.com/jsamuelsen11/company-adhesion-service/mocks"
)

func newCompanyHandler(t *testing.T) (*handlers.CompanyHandler, *mocks.MockCompanyService) {
	t.Helper()
	svc := mocks.NewMockCompanyService(t)
	return handlers.NewCompanyHandler(svc), svc
}

// --- ListWithRecentTransfers ---

func TestListWithRecentTransfers_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCompanyHandler(t)

	svc.EXPECT().CompaniesWithRecentTransfers(mock.Anything).Return([]company.Company{validCompany()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/transfers/last-month", nil)
	h.ListWithRecentTransfers(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.CompanyResponse](t, rec)
	if len(resp) != 1 || resp[0].ID != "emp2" {
		t.Errorf("response = %+v, want [emp2]", resp)
	}
}

func TestListWithRecentTransfers_EmptyIsArray(t *testing.T) {
	t.Parallel()
	h, svc := newCompanyHandler(t)

	svc.EXPECT().CompaniesWithRecentTransfers(mock.Anything).Return([]company.Company{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/transfers/last-month", nil)
	h.ListWithRecentTransfers(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}

func TestListWithRecentTransfers_StorageUnavailable(t *testing.T) {
	t.Parallel()
	h, svc := newCompanyHandler(t)

	svc.EXPECT().CompaniesWithRecentTransfers(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/transfers/last-month", nil)
	h.ListWithRecentTransfers(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- ListAdheredRecently ---

func TestListAdheredRecently_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCompanyHandler(t)

	svc.EXPECT().CompaniesAdheredRecently(mock.Anything).Return([]company.Company{validCompany()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/adhesions/last-month", nil)
	h.ListAdheredRecently(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.CompanyResponse](t, rec)
	if len(resp) != 1 || resp[0].Type != "CORPORATIVA" {
		t.Errorf("response = %+v", resp)
	}
}

func TestListAdheredRecently_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newCompanyHandler(t)

	svc.EXPECT().CompaniesAdheredRecently(mock.Anything).Return(nil, errors.New("boom"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/adhesions/last-month", nil)
	h.ListAdheredRecently(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCompanyHandler(t)

	created := validCompany()
	svc.EXPECT().RegisterCompany(mock.Anything, ports.RegisterCompanyCommand{
		TaxID:     "30-22222222-2",
		LegalName: "Empresa B",
		Type:      company.TypeCorporate,
	}).Return(&created, nil)

	body := jsonBody(t, dto.RegisterCompanyRequest{TaxID: "30-22222222-2", LegalName: "Empresa B", Type: "CORPORATIVA"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/adhesions", body)
	req.Header.Set("Content-Type", "application/json")
	h.Register(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.CompanyResponse](t, rec)
	if resp.ID != "emp2" || resp.AdhesionDate == "" {
		t.Errorf("response = %+v", resp)
	}
}

func TestRegister_RejectedBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "malformed JSON", body: `{"tax_id": "30"`, wantField: "body"},
		{name: "empty body", body: ``, wantField: "body"},
		{name: "unknown field", body: `{"tax_id":"30","legal_name":"E","type":"PYME","admin":true}`, wantField: "admin"},
		{name: "wrong field type", body: `{"tax_id":30,"legal_name":"E","type":"PYME"}`, wantField: "tax_id"},
		{name: "trailing data", body: `{"tax_id":"30","legal_name":"E","type":"PYME"} {}`, wantField: "body"},
		{name: "missing tax id", body: `{"legal_name":"E","type":"PYME"}`, wantField: "tax_id"},
		{name: "invalid type", body: `{"tax_id":"30","legal_name":"E","type":"INVALID_TYPE"}`, wantField: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newCompanyHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/adhesions", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			h.Register(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			found := false
			for _, e := range resp.Errors {
				if e.Location == "body."+tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("errors = %+v, want an entry for body.%s", resp.Errors, tt.wantField)
			}
		})
	}
}

func TestRegister_BodyTooLarge(t *testing.T) {
	t.Parallel()
	h, _ := newCompanyHandler(t)

	huge := `{"tax_id":"` + strings.Repeat("9", 2<<20) + `","legal_name":"E","type":"PYME"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/adhesions", strings.NewReader(huge))
	h.Register(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestRegister_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newCompanyHandler(t)

	svc.EXPECT().RegisterCompany(mock.Anything, mock.AnythingOfType("ports.RegisterCompanyCommand")).
		Return(nil, domain.ErrUnavailable)

	body := jsonBody(t, dto.RegisterCompanyRequest{TaxID: "30", LegalName: "E", Type: "PYME"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/adhesions", body)
	h.Register(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}
