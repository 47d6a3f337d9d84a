// Package transfer defines the Transfer entity: a movement of funds between
// two accounts on behalf of a company.
package transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is a dated movement of funds. CompanyID references a company.Company
// but the reference is not enforced by any repository. Date is always supplied
// by the creator.
type Transfer struct {
	ID            string
	CompanyID     string
	Amount        decimal.Decimal
	DebitAccount  string
	CreditAccount string
	Date          time.Time
}
