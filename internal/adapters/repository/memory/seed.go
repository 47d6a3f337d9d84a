package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/transfer"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

const day = 24 * time.Hour

// Seed loads the demo data set into the given repositories. Dates are offsets
// from now, so the reports return the same companies whenever it runs.
func Seed(ctx context.Context, companies ports.CompanyRepository, transfers ports.TransferRepository, now time.Time) error {
	ago := func(days int) time.Time { return now.Add(-time.Duration(days) * day) }

	for _, c := range []company.Company{
		{ID: "emp1", TaxID: "20-12345678-9", LegalName: "Empresa Antigüa S.A.", AdhesionDate: ago(90), Type: company.TypeCorporate},
		{ID: "emp2", TaxID: "27-98765432-1", LegalName: "Pyme Innovadora SRL", AdhesionDate: ago(15), Type: company.TypeSmallBusiness},
		{ID: "emp3", TaxID: "30-11223344-5", LegalName: "Corporativa Del Sur", AdhesionDate: ago(5), Type: company.TypeCorporate},
		{ID: "emp4", TaxID: "33-44556677-8", LegalName: "Comercio Local Limitada", AdhesionDate: ago(60), Type: company.TypeSmallBusiness},
		{ID: "emp5", TaxID: "34-55667788-9", LegalName: "Exportaciones Globales S.A.", AdhesionDate: ago(35), Type: company.TypeCorporate},
	} {
		if _, err := companies.Save(ctx, c); err != nil {
			return fmt.Errorf("seeding company %s: %w", c.ID, err)
		}
	}

	for _, t := range []transfer.Transfer{
		{ID: "trans1", CompanyID: "emp1", Amount: decimal.RequireFromString("1000.00"), DebitAccount: "001-DB-001", CreditAccount: "001-CR-001", Date: ago(40)},
		{ID: "trans2", CompanyID: "emp2", Amount: decimal.RequireFromString("500.50"), DebitAccount: "002-DB-002", CreditAccount: "002-CR-002", Date: ago(10)},
		{ID: "trans3", CompanyID: "emp1", Amount: decimal.RequireFromString("200.75"), DebitAccount: "001-DB-003", CreditAccount: "001-CR-003", Date: ago(2)},
		{ID: "trans4", CompanyID: "emp4", Amount: decimal.RequireFromString("1500.00"), DebitAccount: "004-DB-004", CreditAccount: "004-CR-004", Date: ago(70)},
		{ID: "trans5", CompanyID: "emp3", Amount: decimal.RequireFromString("750.00"), DebitAccount: "003-DB-005", CreditAccount: "003-CR-005", Date: ago(20)},
		{ID: "trans6", CompanyID: "emp2", Amount: decimal.RequireFromString("300.20"), DebitAccount: "002-DB-006", CreditAccount: "002-CR-006", Date: ago(25)},
	} {
		if _, err := transfers.Save(ctx, t); err != nil {
			return fmt.Errorf("seeding transfer %s: %w", t.ID, err)
		}
	}

	return nil
}
