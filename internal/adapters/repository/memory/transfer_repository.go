package memory

import (
	"context"
	"time"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/period"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/transfer"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// Compile-time check that TransferRepository implements ports.TransferRepository.
var _ ports.TransferRepository = (*TransferRepository)(nil)

// TransferRepository stores transfers in memory.
type TransferRepository struct {
	store *store[transfer.Transfer]
}

// NewTransferRepository returns an empty TransferRepository.
func NewTransferRepository() *TransferRepository {
	return &TransferRepository{
		store: newStore(func(t *transfer.Transfer) *string { return &t.ID }),
	}
}

// FindAll returns every transfer in insertion order.
func (r *TransferRepository) FindAll(_ context.Context) ([]transfer.Transfer, error) {
	return r.store.all(), nil
}

// FindByCompanyIDAndDateBetween returns the company's transfers dated in [start, end].
func (r *TransferRepository) FindByCompanyIDAndDateBetween(
	_ context.Context, companyID string, start, end time.Time,
) ([]transfer.Transfer, error) {
	w := period.Window{Start: start, End: end}
	return r.store.find(func(t transfer.Transfer) bool {
		return t.CompanyID == companyID && w.Contains(t.Date)
	}), nil
}

// Save upserts t and returns the stored record.
func (r *TransferRepository) Save(_ context.Context, t transfer.Transfer) (transfer.Transfer, error) {
	return r.store.save(t), nil
}
