// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/period"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/clock"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// Compile-time check that CompanyService implements ports.CompanyService.
var _ ports.CompanyService = (*CompanyService)(nil)

// CompanyService implements ports.CompanyService on top of the company and
// transfer repository ports. It knows nothing about how either collection is
// stored.
type CompanyService struct {
	companies ports.CompanyRepository
	transfers ports.TransferRepository
	clock     ports.Clock
	logger    *slog.Logger
}

// NewCompanyService creates a CompanyService. A nil clock falls back to the
// system clock and a nil logger discards output.
func NewCompanyService(
	companies ports.CompanyRepository,
	transfers ports.TransferRepository,
	clk ports.Clock,
	logger *slog.Logger,
) *CompanyService {
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CompanyService{
		companies: companies,
		transfers: transfers,
		clock:     clk,
		logger:    logger,
	}
}

// CompaniesWithRecentTransfers returns the companies with at least one transfer
// in the last rolling month. The two snapshots are read without a shared
// transaction, so a company saved between the reads may be missed.
func (s *CompanyService) CompaniesWithRecentTransfers(ctx context.Context) ([]company.Company, error) {
	window := period.LastMonth(s.clock.Now())
	s.logger.InfoContext(ctx, "listing companies with recent transfers",
		slog.Time("from", window.Start),
		slog.Time("to", window.End),
	)

	companies, err := s.companies.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list companies",
			slog.String("operation", "CompaniesWithRecentTransfers"),
			slog.Any("error", err),
		)
		return nil, err
	}

	transfers, err := s.transfers.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list transfers",
			slog.String("operation", "CompaniesWithRecentTransfers"),
			slog.Any("error", err),
		)
		return nil, err
	}

	active := make(map[string]struct{})
	for _, t := range transfers {
		if window.Contains(t.Date) {
			active[t.CompanyID] = struct{}{}
		}
	}

	result := make([]company.Company, 0, len(active))
	for _, c := range companies {
		if _, ok := active[c.ID]; ok {
			result = append(result, c)
		}
	}

	return result, nil
}

// CompaniesAdheredRecently returns the companies adhered in the last rolling month.
func (s *CompanyService) CompaniesAdheredRecently(ctx context.Context) ([]company.Company, error) {
	window := period.LastMonth(s.clock.Now())
	s.logger.InfoContext(ctx, "listing recently adhered companies",
		slog.Time("from", window.Start),
		slog.Time("to", window.End),
	)

	companies, err := s.companies.FindByAdhesionDateBetween(ctx, window.Start, window.End)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list recently adhered companies",
			slog.String("operation", "CompaniesAdheredRecently"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return companies, nil
}

// RegisterCompany stores a new company adhered now and returns the saved record.
func (s *CompanyService) RegisterCompany(ctx context.Context, cmd ports.RegisterCompanyCommand) (*company.Company, error) {
	s.logger.InfoContext(ctx, "registering company",
		slog.String("tax_id", cmd.TaxID),
		slog.String("type", cmd.Type.String()),
	)

	saved, err := s.companies.Save(ctx, company.Company{
		TaxID:        cmd.TaxID,
		LegalName:    cmd.LegalName,
		AdhesionDate: s.clock.Now(),
		Type:         cmd.Type,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to register company",
			slog.String("operation", "RegisterCompany"),
			slog.String("tax_id", cmd.TaxID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "company registered", slog.String("id", saved.ID))
	return &saved, nil
}
