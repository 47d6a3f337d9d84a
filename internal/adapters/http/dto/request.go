package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// RegisterCompanyRequest represents the JSON body for registering a company.
type RegisterCompanyRequest struct {
	TaxID     string `json:"tax_id"`
	LegalName string `json:"legal_name"`
	Type      string `json:"type"`
}

// Validate checks that every field is present and that type is one of the
// known company types. Returns a *domain.ValidationError if any checks fail.
func (r *RegisterCompanyRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.TaxID) == "" {
		fields["tax_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.LegalName) == "" {
		fields["legal_name"] = domain.MsgRequired
	}
	switch {
	case r.Type == "":
		fields["type"] = domain.MsgRequired
	case !company.Type(r.Type).IsValid():
		fields["type"] = fmt.Sprintf("invalid: %q (want %s or %s)", r.Type, company.TypeSmallBusiness, company.TypeCorporate)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToCommand converts the request to the service input. Call Validate first.
func (r *RegisterCompanyRequest) ToCommand() ports.RegisterCompanyCommand {
	return ports.RegisterCompanyCommand{
		TaxID:     r.TaxID,
		LegalName: r.LegalName,
		Type:      company.Type(r.Type),
	}
}

// LoginRequest represents the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if r.Password == "" {
		fields["password"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
