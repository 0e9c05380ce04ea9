package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tributo/internal/domain"
	"tributo/internal/port"
)

const defaultSettleBatchSize = 100

// BatchResult counts the outcome of a tenant-wide settlement run.
type BatchResult struct {
	Settled int `json:"settled"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// TenantSettler settles the same period for every active company of a tenant.
type TenantSettler struct {
	companies   port.CompanyRepository
	settlements SettlementService
	batchSize   int
}

// NewTenantSettler creates a TenantSettler. A non-positive batchSize uses the default.
func NewTenantSettler(companies port.CompanyRepository, settlements SettlementService, batchSize int) *TenantSettler {
	if batchSize <= 0 {
		batchSize = defaultSettleBatchSize
	}
	return &TenantSettler{companies: companies, settlements: settlements, batchSize: batchSize}
}

// SettleAll pages through the tenant's companies and passes each summary to
// emit. An invalid period, a listing failure or an emit error stops the run.
// Companies that disappear mid-run are skipped; other per-company failures
// are logged and counted.
func (s *TenantSettler) SettleAll(ctx context.Context, tenantID uuid.UUID, periodToken string, emit func(*domain.TaxPeriodSummary) error) (BatchResult, error) {
	var result BatchResult
	offset := 0

	for {
		companies, err := s.companies.ListActive(ctx, tenantID, offset, s.batchSize)
		if err != nil {
			return result, fmt.Errorf("listing companies at offset %d: %w", offset, err)
		}
		if len(companies) == 0 {
			break
		}

		for i := range companies {
			company := &companies[i]
			summary, err := s.settlements.Summarize(ctx, tenantID, company.ID, periodToken)
			switch {
			case errors.Is(err, domain.ErrInvalidPeriod):
				return result, err
			case errors.Is(err, domain.ErrCompanyNotFound):
				result.Skipped++
				continue
			case err != nil:
				log.Warn().Err(err).
					Str("company_id", company.ID.String()).
					Str("rut", company.RUT).
					Msg("settlement failed, continuing")
				result.Failed++
				continue
			}

			if err := emit(summary); err != nil {
				return result, fmt.Errorf("emitting summary for %s: %w", company.ID, err)
			}
			result.Settled++
		}

		if len(companies) < s.batchSize {
			break
		}
		offset += s.batchSize
	}

	log.Info().
		Str("tenant_id", tenantID.String()).
		Int("settled", result.Settled).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("tenant settlement run complete")

	return result, nil
}
