package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/transfer"
	pgdb "github.com/jsamuelsen11/company-adhesion-service/internal/platform/db/postgres"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/storeguard"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// Compile-time check that TransferRepository implements ports.TransferRepository.
var _ ports.TransferRepository = (*TransferRepository)(nil)

// amount is read back as text so decimal.Decimal keeps the exact value.
const (
	selectTransfers = `SELECT id, company_id, amount::text, debit_account, credit_account, date FROM transfers`

	findAllTransfersQuery = selectTransfers + ` ORDER BY seq`

	findTransfersByCompanyAndDateQuery = selectTransfers +
		` WHERE company_id = $1 AND date BETWEEN $2 AND $3 ORDER BY seq`

	upsertTransferQuery = `INSERT INTO transfers (id, company_id, amount, debit_account, credit_account, date)
VALUES ($1, $2, $3::text::numeric, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
    company_id = EXCLUDED.company_id,
    amount = EXCLUDED.amount,
    debit_account = EXCLUDED.debit_account,
    credit_account = EXCLUDED.credit_account,
    date = EXCLUDED.date
RETURNING id, company_id, amount::text, debit_account, credit_account, date`
)

// TransferRepository stores transfers in the transfers table.
type TransferRepository struct {
	db    pgdb.Queryer
	guard *storeguard.Guard
}

// NewTransferRepository creates a TransferRepository. guard may be nil.
func NewTransferRepository(db pgdb.Queryer, guard *storeguard.Guard) *TransferRepository {
	return &TransferRepository{db: db, guard: guard}
}

// FindAll returns every transfer in insertion order.
func (r *TransferRepository) FindAll(ctx context.Context) ([]transfer.Transfer, error) {
	out, err := storeguard.Run(ctx, r.guard, "transfers.find_all", func(ctx context.Context) ([]transfer.Transfer, error) {
		return r.queryTransfers(ctx, findAllTransfersQuery)
	})
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}
	return out, nil
}

// FindByCompanyIDAndDateBetween returns the company's transfers dated in
// [start, end].
func (r *TransferRepository) FindByCompanyIDAndDateBetween(
	ctx context.Context, companyID string, start, end time.Time,
) ([]transfer.Transfer, error) {
	out, err := storeguard.Run(ctx, r.guard, "transfers.find_by_company_and_date", func(ctx context.Context) ([]transfer.Transfer, error) {
		return r.queryTransfers(ctx, findTransfersByCompanyAndDateQuery, companyID, start, end)
	})
	if err != nil {
		return nil, fmt.Errorf("listing transfers of company %s: %w", companyID, err)
	}
	return out, nil
}

// Save upserts t. An empty ID is replaced with a random UUID.
func (r *TransferRepository) Save(ctx context.Context, t transfer.Transfer) (transfer.Transfer, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	saved, err := storeguard.Run(ctx, r.guard, "transfers.save", func(ctx context.Context) (transfer.Transfer, error) {
		return scanTransfer(r.db.QueryRow(ctx, upsertTransferQuery,
			t.ID, t.CompanyID, t.Amount.String(), t.DebitAccount, t.CreditAccount, t.Date))
	})
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("saving transfer %s: %w", t.ID, err)
	}
	return saved, nil
}

func (r *TransferRepository) queryTransfers(ctx context.Context, query string, args ...any) ([]transfer.Transfer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (transfer.Transfer, error) {
		return scanTransfer(row)
	})
}

func scanTransfer(row pgx.Row) (transfer.Transfer, error) {
	var (
		t      transfer.Transfer
		amount string
	)
	if err := row.Scan(&t.ID, &t.CompanyID, &amount, &t.DebitAccount, &t.CreditAccount, &t.Date); err != nil {
		return transfer.Transfer{}, err
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	t.Amount = d
	t.Date = t.Date.UTC()
	return t, nil
}
