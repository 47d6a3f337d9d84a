// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// CompanyHandler handles the company reporting and registration endpoints.
type CompanyHandler struct {
	svc ports.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with the given service port.
func NewCompanyHandler(svc ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// ListWithRecentTransfers handles GET /api/v1/companies/transfers/last-month.
func (h *CompanyHandler) ListWithRecentTransfers(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.CompaniesWithRecentTransfers(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCompanyListResponse(companies))
}

// ListAdheredRecently handles GET /api/v1/companies/adhesions/last-month.
func (h *CompanyHandler) ListAdheredRecently(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.CompaniesAdheredRecently(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCompanyListResponse(companies))
}

// Register handles POST /api/v1/companies/adhesions.
func (h *CompanyHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.RegisterCompany(r.Context(), req.ToCommand())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCompanyResponse(created))
}
