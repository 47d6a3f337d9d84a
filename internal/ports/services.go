package ports

import (
	"context"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/auth"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
)

// CompanyService defines the service port for the company reporting and
// registration use cases. Implemented by the application layer; called by
// inbound adapters (handlers).
type CompanyService interface {
	// CompaniesWithRecentTransfers returns the companies that have at least one
	// transfer dated inside the last rolling month, bounds included, in
	// repository order. Companies and transfers are read as two independent
	// snapshots. Transfers referencing unknown companies are ignored.
	CompaniesWithRecentTransfers(ctx context.Context) ([]company.Company, error)

	// CompaniesAdheredRecently returns the companies whose adhesion date falls
	// inside the last rolling month, bounds included.
	CompaniesAdheredRecently(ctx context.Context) ([]company.Company, error)

	// RegisterCompany persists a new company adhered at the current time and
	// returns it with its generated ID. Input is expected to be validated by
	// the caller.
	RegisterCompany(ctx context.Context, cmd RegisterCompanyCommand) (*company.Company, error)
}

// RegisterCompanyCommand carries the caller-supplied fields of a new company.
type RegisterCompanyCommand struct {
	TaxID     string
	LegalName string
	Type      company.Type
}

// AuthService defines the service port for credential exchange.
type AuthService interface {
	// Login verifies the username and password and issues a bearer token.
	// Returns domain.ErrUnauthorized if the credentials do not match.
	Login(ctx context.Context, username, password string) (*auth.Token, error)
}
