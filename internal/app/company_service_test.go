package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/transfer"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/clock"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
	"github.com/jsamuelsen11/company-adhesion-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 12, 0, 0, 0, time.UTC)
}

var fixedNow = day(time.July, 23)

func sampleCompanies() []company.Company {
	return []company.Company{
		{ID: "e1", TaxID: "20-1", LegalName: "Uno S.A.", AdhesionDate: day(time.June, 1), Type: company.TypeCorporate},
		{ID: "e2", TaxID: "27-2", LegalName: "Dos SRL", AdhesionDate: day(time.July, 1), Type: company.TypeSmallBusiness},
		{ID: "e3", TaxID: "30-3", LegalName: "Tres S.A.", AdhesionDate: day(time.July, 15), Type: company.TypeCorporate},
	}
}

func newTransfer(id, companyID string, at time.Time) transfer.Transfer {
	return transfer.Transfer{
		ID:            id,
		CompanyID:     companyID,
		Amount:        decimal.RequireFromString("100.00"),
		DebitAccount:  "DB-" + id,
		CreditAccount: "CR-" + id,
		Date:          at,
	}
}

func newService(t *testing.T) (*CompanyService, *mocks.MockCompanyRepository, *mocks.MockTransferRepository) {
	t.Helper()
	companies := mocks.NewMockCompanyRepository(t)
	transfers := mocks.NewMockTransferRepository(t)
	svc := NewCompanyService(companies, transfers, clock.Fixed{T: fixedNow}, discardLogger())
	return svc, companies, transfers
}

func ids(cs []company.Company) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func requireIDs(t *testing.T, got []company.Company, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("ids = %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("ids = %v, want %v", gotIDs, want)
		}
	}
}

// --- NewCompanyService ---

func TestNewCompanyService_NilDependencies(t *testing.T) {
	t.Parallel()

	svc := NewCompanyService(mocks.NewMockCompanyRepository(t), mocks.NewMockTransferRepository(t), nil, nil)
	if svc.logger == nil {
		t.Fatal("NewCompanyService(nil logger) should create a no-op logger, got nil")
	}
	if svc.clock == nil {
		t.Fatal("NewCompanyService(nil clock) should fall back to the system clock, got nil")
	}
}

// --- CompaniesWithRecentTransfers ---

func TestCompanyService_CompaniesWithRecentTransfers(t *testing.T) {
	t.Parallel()

	t.Run("returns companies with a transfer in the window in company order", func(t *testing.T) {
		t.Parallel()
		svc, companies, transfers := newService(t)

		companies.EXPECT().FindAll(mock.Anything).Return(sampleCompanies(), nil)
		transfers.EXPECT().FindAll(mock.Anything).Return([]transfer.Transfer{
			newTransfer("t1", "e1", day(time.June, 15)),
			newTransfer("t2", "e3", day(time.July, 5)),
			newTransfer("t3", "e2", day(time.July, 20)),
		}, nil)

		got, err := svc.CompaniesWithRecentTransfers(context.Background())
		if err != nil {
			t.Fatalf("CompaniesWithRecentTransfers() error = %v, want nil", err)
		}
		requireIDs(t, got, "e2", "e3")
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		t.Parallel()
		svc, companies, transfers := newService(t)

		companies.EXPECT().FindAll(mock.Anything).Return(sampleCompanies(), nil)
		transfers.EXPECT().FindAll(mock.Anything).Return([]transfer.Transfer{
			newTransfer("t1", "e1", day(time.June, 23)),
			newTransfer("t2", "e2", fixedNow),
			newTransfer("t3", "e3", fixedNow.Add(time.Second)),
		}, nil)

		got, err := svc.CompaniesWithRecentTransfers(context.Background())
		if err != nil {
			t.Fatalf("CompaniesWithRecentTransfers() error = %v, want nil", err)
		}
		requireIDs(t, got, "e1", "e2")
	})

	t.Run("company with several transfers appears once", func(t *testing.T) {
		t.Parallel()
		svc, companies, transfers := newService(t)

		companies.EXPECT().FindAll(mock.Anything).Return(sampleCompanies(), nil)
		transfers.EXPECT().FindAll(mock.Anything).Return([]transfer.Transfer{
			newTransfer("t1", "e1", day(time.July, 1)),
			newTransfer("t2", "e1", day(time.July, 2)),
		}, nil)

		got, err := svc.CompaniesWithRecentTransfers(context.Background())
		if err != nil {
			t.Fatalf("CompaniesWithRecentTransfers() error = %v, want nil", err)
		}
		requireIDs(t, got, "e1")
	})

	t.Run("no transfers in window yields empty result", func(t *testing.T) {
		t.Parallel()
		svc, companies, transfers := newService(t)

		companies.EXPECT().FindAll(mock.Anything).Return(sampleCompanies(), nil)
		transfers.EXPECT().FindAll(mock.Anything).Return([]transfer.Transfer{
			newTransfer("t1", "e1", day(time.January, 1)),
		}, nil)

		got, err := svc.CompaniesWithRecentTransfers(context.Background())
		if err != nil {
			t.Fatalf("CompaniesWithRecentTransfers() error = %v, want nil", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("CompaniesWithRecentTransfers() = %v, want empty non-nil slice", got)
		}
	})

	t.Run("orphaned transfers are ignored", func(t *testing.T) {
		t.Parallel()
		svc, companies, transfers := newService(t)

		companies.EXPECT().FindAll(mock.Anything).Return(sampleCompanies(), nil)
		transfers.EXPECT().FindAll(mock.Anything).Return([]transfer.Transfer{
			newTransfer("t1", "ghost", day(time.July, 10)),
		}, nil)

		got, err := svc.CompaniesWithRecentTransfers(context.Background())
		if err != nil {
			t.Fatalf("CompaniesWithRecentTransfers() error = %v, want nil", err)
		}
		requireIDs(t, got)
	})

	t.Run("returns error when company read fails", func(t *testing.T) {
		t.Parallel()
		svc, companies, _ := newService(t)

		companies.EXPECT().FindAll(mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.CompaniesWithRecentTransfers(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("CompaniesWithRecentTransfers() error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("returns error when transfer read fails", func(t *testing.T) {
		t.Parallel()
		svc, companies, transfers := newService(t)

		storageErr := errors.New("disk on fire")
		companies.EXPECT().FindAll(mock.Anything).Return(sampleCompanies(), nil)
		transfers.EXPECT().FindAll(mock.Anything).Return(nil, storageErr)

		_, err := svc.CompaniesWithRecentTransfers(context.Background())
		if !errors.Is(err, storageErr) {
			t.Errorf("CompaniesWithRecentTransfers() error = %v, want %v", err, storageErr)
		}
	})
}

// --- CompaniesAdheredRecently ---

func TestCompanyService_CompaniesAdheredRecently(t *testing.T) {
	t.Parallel()

	t.Run("delegates the rolling month window to the repository", func(t *testing.T) {
		t.Parallel()
		svc, companies, _ := newService(t)

		all := sampleCompanies()
		companies.EXPECT().
			FindByAdhesionDateBetween(mock.Anything, day(time.June, 23), fixedNow).
			Return(all[1:], nil)

		got, err := svc.CompaniesAdheredRecently(context.Background())
		if err != nil {
			t.Fatalf("CompaniesAdheredRecently() error = %v, want nil", err)
		}
		requireIDs(t, got, "e2", "e3")
	})

	t.Run("clamps the window start at short months", func(t *testing.T) {
		t.Parallel()
		companies := mocks.NewMockCompanyRepository(t)
		now := time.Date(2025, time.March, 31, 10, 0, 0, 0, time.UTC)
		svc := NewCompanyService(companies, mocks.NewMockTransferRepository(t), clock.Fixed{T: now}, discardLogger())

		start := time.Date(2025, time.February, 28, 10, 0, 0, 0, time.UTC)
		companies.EXPECT().FindByAdhesionDateBetween(mock.Anything, start, now).Return([]company.Company{}, nil)

		if _, err := svc.CompaniesAdheredRecently(context.Background()); err != nil {
			t.Fatalf("CompaniesAdheredRecently() error = %v, want nil", err)
		}
	})

	t.Run("returns error when repository fails", func(t *testing.T) {
		t.Parallel()
		svc, companies, _ := newService(t)

		companies.EXPECT().FindByAdhesionDateBetween(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.ErrUnavailable)

		_, err := svc.CompaniesAdheredRecently(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("CompaniesAdheredRecently() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- RegisterCompany ---

func TestCompanyService_RegisterCompany(t *testing.T) {
	t.Parallel()

	t.Run("saves with empty id and adhesion date set to now", func(t *testing.T) {
		t.Parallel()
		svc, companies, _ := newService(t)

		companies.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(c company.Company) bool {
				return c.ID == "" &&
					c.TaxID == "30-11223344-5" &&
					c.LegalName == "Nueva S.A." &&
					c.Type == company.TypeCorporate &&
					c.AdhesionDate.Equal(fixedNow)
			})).
			RunAndReturn(func(_ context.Context, c company.Company) (company.Company, error) {
				c.ID = "generated-id"
				return c, nil
			})

		got, err := svc.RegisterCompany(context.Background(), ports.RegisterCompanyCommand{
			TaxID:     "30-11223344-5",
			LegalName: "Nueva S.A.",
			Type:      company.TypeCorporate,
		})
		if err != nil {
			t.Fatalf("RegisterCompany() error = %v, want nil", err)
		}
		if got.ID != "generated-id" {
			t.Errorf("RegisterCompany().ID = %q, want %q", got.ID, "generated-id")
		}
		if !got.AdhesionDate.Equal(fixedNow) {
			t.Errorf("RegisterCompany().AdhesionDate = %v, want %v", got.AdhesionDate, fixedNow)
		}
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		t.Parallel()
		svc, companies, _ := newService(t)

		companies.EXPECT().Save(mock.Anything, mock.Anything).Return(company.Company{}, domain.ErrUnavailable)

		got, err := svc.RegisterCompany(context.Background(), ports.RegisterCompanyCommand{
			TaxID: "1", LegalName: "x", Type: company.TypeSmallBusiness,
		})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("RegisterCompany() error = %v, want ErrUnavailable", err)
		}
		if got != nil {
			t.Errorf("RegisterCompany() = %v, want nil", got)
		}
	})
}
