// Package company defines the Company entity: a business that adhered to the
// platform on a given date.
package company

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
)

// Company is a registered business. ID is assigned by the repository on
// first save; AdhesionDate is set once at registration and never changes.
type Company struct {
	ID           string
	TaxID        string
	LegalName    string
	AdhesionDate time.Time
	Type         Type
}

// Validate checks the registration fields of the Company.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c *Company) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.TaxID) == "" {
		fields["tax_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(c.LegalName) == "" {
		fields["legal_name"] = domain.MsgRequired
	}
	if !c.Type.IsValid() {
		fields["type"] = fmt.Sprintf("must be one of %s, %s; got %q", TypeSmallBusiness, TypeCorporate, c.Type)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
