package memory

import (
	"context"
	"time"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/period"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// Compile-time check that CompanyRepository implements ports.CompanyRepository.
var _ ports.CompanyRepository = (*CompanyRepository)(nil)

// CompanyRepository stores companies in memory.
type CompanyRepository struct {
	store *store[company.Company]
}

// NewCompanyRepository returns an empty CompanyRepository.
func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{
		store: newStore(func(c *company.Company) *string { return &c.ID }),
	}
}

// FindByID returns the company with the given ID, if any.
func (r *CompanyRepository) FindByID(_ context.Context, id string) (company.Company, bool, error) {
	c, ok := r.store.findOne(id)
	return c, ok, nil
}

// FindAll returns every company in insertion order.
func (r *CompanyRepository) FindAll(_ context.Context) ([]company.Company, error) {
	return r.store.all(), nil
}

// FindByAdhesionDateBetween returns companies adhered in [start, end].
func (r *CompanyRepository) FindByAdhesionDateBetween(_ context.Context, start, end time.Time) ([]company.Company, error) {
	w := period.Window{Start: start, End: end}
	return r.store.find(func(c company.Company) bool { return w.Contains(c.AdhesionDate) }), nil
}

// Save upserts c and returns the stored record.
func (r *CompanyRepository) Save(_ context.Context, c company.Company) (company.Company, error) {
	return r.store.save(c), nil
}
