// Package postgres implements the repository ports on PostgreSQL through
// pgx. Every call runs under a storeguard.Guard.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
	pgdb "github.com/jsamuelsen11/company-adhesion-service/internal/platform/db/postgres"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/storeguard"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// Compile-time check that CompanyRepository implements ports.CompanyRepository.
var _ ports.CompanyRepository = (*CompanyRepository)(nil)

const (
	selectCompanies = `SELECT id, tax_id, legal_name, adhesion_date, type FROM companies`

	findCompanyByIDQuery = selectCompanies + ` WHERE id = $1`

	findAllCompaniesQuery = selectCompanies + ` ORDER BY seq`

	findCompaniesByAdhesionQuery = selectCompanies +
		` WHERE adhesion_date BETWEEN $1 AND $2 ORDER BY seq`

	upsertCompanyQuery = `INSERT INTO companies (id, tax_id, legal_name, adhesion_date, type)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    tax_id = EXCLUDED.tax_id,
    legal_name = EXCLUDED.legal_name,
    adhesion_date = EXCLUDED.adhesion_date,
    type = EXCLUDED.type
RETURNING id, tax_id, legal_name, adhesion_date, type`
)

// CompanyRepository stores companies in the companies table.
type CompanyRepository struct {
	db    pgdb.Queryer
	guard *storeguard.Guard
}

// NewCompanyRepository creates a CompanyRepository. guard may be nil.
func NewCompanyRepository(db pgdb.Queryer, guard *storeguard.Guard) *CompanyRepository {
	return &CompanyRepository{db: db, guard: guard}
}

// FindByID returns the company with the given ID, if any.
func (r *CompanyRepository) FindByID(ctx context.Context, id string) (company.Company, bool, error) {
	var (
		found company.Company
		ok    bool
	)

	err := r.guard.Do(ctx, "companies.find_by_id", func(ctx context.Context) error {
		c, err := scanCompany(r.db.QueryRow(ctx, findCompanyByIDQuery, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found, ok = c, true
		return nil
	})
	if err != nil {
		return company.Company{}, false, fmt.Errorf("finding company %s: %w", id, err)
	}
	return found, ok, nil
}

// FindAll returns every company in insertion order.
func (r *CompanyRepository) FindAll(ctx context.Context) ([]company.Company, error) {
	out, err := storeguard.Run(ctx, r.guard, "companies.find_all", func(ctx context.Context) ([]company.Company, error) {
		return r.queryCompanies(ctx, findAllCompaniesQuery)
	})
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return out, nil
}

// FindByAdhesionDateBetween returns the companies adhered in [start, end].
func (r *CompanyRepository) FindByAdhesionDateBetween(ctx context.Context, start, end time.Time) ([]company.Company, error) {
	out, err := storeguard.Run(ctx, r.guard, "companies.find_by_adhesion_date", func(ctx context.Context) ([]company.Company, error) {
		return r.queryCompanies(ctx, findCompaniesByAdhesionQuery, start, end)
	})
	if err != nil {
		return nil, fmt.Errorf("listing companies adhered between %s and %s: %w",
			start.Format(time.RFC3339), end.Format(time.RFC3339), err)
	}
	return out, nil
}

// Save upserts c. An empty ID is replaced with a random UUID.
func (r *CompanyRepository) Save(ctx context.Context, c company.Company) (company.Company, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	saved, err := storeguard.Run(ctx, r.guard, "companies.save", func(ctx context.Context) (company.Company, error) {
		return scanCompany(r.db.QueryRow(ctx, upsertCompanyQuery,
			c.ID, c.TaxID, c.LegalName, c.AdhesionDate, string(c.Type)))
	})
	if err != nil {
		return company.Company{}, fmt.Errorf("saving company %s: %w", c.ID, err)
	}
	return saved, nil
}

func (r *CompanyRepository) queryCompanies(ctx context.Context, query string, args ...any) ([]company.Company, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (company.Company, error) {
		return scanCompany(row)
	})
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var (
		c   company.Company
		typ string
	)
	if err := row.Scan(&c.ID, &c.TaxID, &c.LegalName, &c.AdhesionDate, &typ); err != nil {
		return company.Company{}, err
	}
	c.AdhesionDate = c.AdhesionDate.UTC()
	c.Type = company.Type(typ)
	return c, nil
}
