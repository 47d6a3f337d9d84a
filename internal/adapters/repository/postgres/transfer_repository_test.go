package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/transfer"
)

var transferColumns = []string{"id", "company_id", "amount", "debit_account", "credit_account", "date"}

func TestTransferRepository_FindAll(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewTransferRepository(mock, nil)

	date := time.Date(2025, 7, 13, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(findAllTransfersQuery)).
		WillReturnRows(pgxmock.NewRows(transferColumns).
			AddRow("trans1", "emp1", "1500.75", "ACC-001", "ACC-100", date).
			AddRow("trans2", "emp9", "0.10", "ACC-002", "ACC-200", date))

	got, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transfers, got %d", len(got))
	}
	if !got[0].Amount.Equal(decimal.RequireFromString("1500.75")) {
		t.Errorf("amount = %s, want 1500.75", got[0].Amount)
	}
	if got[1].CompanyID != "emp9" {
		t.Errorf("company = %q, want emp9", got[1].CompanyID)
	}
}

func TestTransferRepository_FindByCompanyIDAndDateBetween(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewTransferRepository(mock, nil)

	start := time.Date(2025, 6, 23, 12, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 23, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(findTransfersByCompanyAndDateQuery)).
		WithArgs("emp1", start, end).
		WillReturnRows(pgxmock.NewRows(transferColumns).
			AddRow("trans2", "emp1", "300", "ACC-002", "ACC-200", end.AddDate(0, 0, -10)))

	got, err := repo.FindByCompanyIDAndDateBetween(context.Background(), "emp1", start, end)
	if err != nil {
		t.Fatalf("FindByCompanyIDAndDateBetween returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "trans2" {
		t.Fatalf("got %+v, want [trans2]", got)
	}
}

func TestTransferRepository_Save(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewTransferRepository(mock, nil)

	date := time.Date(2025, 7, 21, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(upsertTransferQuery)).
		WithArgs(pgxmock.AnyArg(), "emp2", "99.95", "ACC-003", "ACC-300", date).
		WillReturnRows(pgxmock.NewRows(transferColumns).
			AddRow("new-id", "emp2", "99.95", "ACC-003", "ACC-300", date))

	saved, err := repo.Save(context.Background(), transfer.Transfer{
		CompanyID:     "emp2",
		Amount:        decimal.RequireFromString("99.95"),
		DebitAccount:  "ACC-003",
		CreditAccount: "ACC-300",
		Date:          date,
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if saved.ID != "new-id" {
		t.Errorf("ID = %q, want new-id", saved.ID)
	}
}

func TestTransferRepository_BadAmount(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewTransferRepository(mock, nil)

	mock.ExpectQuery(regexp.QuoteMeta(findAllTransfersQuery)).
		WillReturnRows(pgxmock.NewRows(transferColumns).
			AddRow("trans1", "emp1", "not-a-number", "ACC-001", "ACC-100", time.Now()))

	if _, err := repo.FindAll(context.Background()); err == nil {
		t.Fatal("expected an error for an unparsable amount")
	}
}
