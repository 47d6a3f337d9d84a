// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/auth"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
)

// TokenTypeBearer is the only token type issued by the login endpoint.
const TokenTypeBearer = "Bearer"

// CompanyResponse represents a single company in HTTP responses.
type CompanyResponse struct {
	ID           string `json:"id"`
	TaxID        string `json:"tax_id"`
	LegalName    string `json:"legal_name"`
	AdhesionDate string `json:"adhesion_date"`
	Type         string `json:"type"`
}

// ToCompanyResponse converts a domain Company to an HTTP response DTO.
// The adhesion date is rendered in UTC with millisecond precision.
func ToCompanyResponse(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID,
		TaxID:        c.TaxID,
		LegalName:    c.LegalName,
		AdhesionDate: c.AdhesionDate.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Type:         c.Type.String(),
	}
}

// ToCompanyListResponse converts companies to a JSON array. An empty input
// yields an empty array, never null.
func ToCompanyListResponse(companies []company.Company) []CompanyResponse {
	items := make([]CompanyResponse, len(companies))
	for i := range companies {
		items[i] = ToCompanyResponse(&companies[i])
	}
	return items
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ToTokenResponse converts an issued token. ExpiresIn is the whole number of
// seconds left at now, never negative.
func ToTokenResponse(t *auth.Token, now time.Time) TokenResponse {
	return TokenResponse{
		AccessToken: t.AccessToken,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   max(int64(t.ExpiresAt.Sub(now)/time.Second), 0),
	}
}
