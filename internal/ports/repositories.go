package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/transfer"
)

// CompanyRepository defines the storage port for companies.
// Implemented by repository adapters; called by the application layer.
// Returned values are copies: mutating them never changes stored state.
type CompanyRepository interface {
	// FindByID returns the company with the given ID. The boolean is false
	// when no such company exists; that case is not an error.
	FindByID(ctx context.Context, id string) (company.Company, bool, error)

	// FindAll returns a snapshot of every stored company in insertion order.
	// Stores that keep no insertion sequence approximate it with a stable
	// order, oldest adhesion date first with ties broken by ID.
	FindAll(ctx context.Context) ([]company.Company, error)

	// FindByAdhesionDateBetween returns the companies with
	// start <= AdhesionDate <= end.
	FindByAdhesionDateBetween(ctx context.Context, start, end time.Time) ([]company.Company, error)

	// Save upserts the company by ID. An empty ID is replaced with a generated
	// one; an existing ID replaces the stored record in place. Returns the
	// persisted record.
	Save(ctx context.Context, c company.Company) (company.Company, error)
}

// TransferRepository defines the storage port for transfers.
type TransferRepository interface {
	// FindAll returns a snapshot of every stored transfer in insertion order.
	FindAll(ctx context.Context) ([]transfer.Transfer, error)

	// FindByCompanyIDAndDateBetween returns the transfers of the given company
	// with start <= Date <= end.
	FindByCompanyIDAndDateBetween(ctx context.Context, companyID string, start, end time.Time) ([]transfer.Transfer, error)

	// Save upserts the transfer by ID with the same semantics as
	// CompanyRepository.Save.
	Save(ctx context.Context, t transfer.Transfer) (transfer.Transfer, error)
}
