package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"tributo/internal/domain"
	"tributo/internal/port"
	"tributo/internal/settlement"
)

// SettlementService computes the monthly IVA settlement of a company.
type SettlementService interface {
	Summarize(ctx context.Context, tenantID, companyID uuid.UUID, periodToken string) (*domain.TaxPeriodSummary, error)
}

// SettlementOptions tunes the settlement service. Zero values fall back to
// UTC, no query deadline and the wall clock.
type SettlementOptions struct {
	Location     *time.Location
	QueryTimeout time.Duration
	Now          func() time.Time
}

type settlementService struct {
	companyRepo port.CompanyRepository
	aggregator  *settlement.DocumentAggregator
	priorCredit *settlement.PriorCreditResolver
	charges     *settlement.ChargeCollector
	matcher     *settlement.DeclarationMatcher
	loc         *time.Location
	timeout     time.Duration
	now         func() time.Time
}

// NewSettlementService creates a new SettlementService implementation.
func NewSettlementService(
	companyRepo port.CompanyRepository,
	docs port.DocumentStore,
	decls port.DeclarationStore,
	opts SettlementOptions,
) SettlementService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &settlementService{
		companyRepo: companyRepo,
		aggregator:  settlement.NewDocumentAggregator(docs),
		priorCredit: settlement.NewDefaultPriorCreditResolver(decls),
		charges:     settlement.NewChargeCollector(docs),
		matcher:     settlement.NewDeclarationMatcher(decls),
		loc:         opts.Location,
		timeout:     opts.QueryTimeout,
		now:         opts.Now,
	}
}

func (s *settlementService) Summarize(ctx context.Context, tenantID, companyID uuid.UUID, periodToken string) (*domain.TaxPeriodSummary, error) {
	period, err := domain.ParsePeriod(periodToken, s.now(), s.loc)
	if err != nil {
		return nil, err
	}

	if err := s.checkCompany(ctx, tenantID, companyID); err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var (
		totals        *settlement.DocumentTotals
		priorCredit   decimal.NullDecimal
		withholding   decimal.NullDecimal
		reverseCharge decimal.NullDecimal
		declarations  *settlement.MatchedDeclarations
	)
	window := period.Window()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.aggregator.Aggregate(gctx, companyID, window)
		return err
	})
	g.Go(func() error {
		var err error
		priorCredit, err = s.priorCredit.Resolve(gctx, companyID, period)
		return err
	})
	g.Go(func() error {
		var err error
		withholding, err = s.charges.Withholding(gctx, companyID, window)
		return err
	})
	g.Go(func() error {
		var err error
		reverseCharge, err = s.charges.ReverseCharge(gctx, companyID, window)
		return err
	})
	g.Go(func() error {
		var err error
		declarations, err = s.matcher.Match(gctx, companyID, period)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dataUnavailable("settlement.Summarize", err)
	}

	result := settlement.Evaluate(settlement.FormulaInput{
		Sales:         totals.Sales,
		Purchases:     totals.Purchases,
		PriorCredit:   priorCredit,
		Withholding:   withholding,
		ReverseCharge: reverseCharge,
	})

	now := s.now().UTC()
	summary := &domain.TaxPeriodSummary{
		ID:                       fmt.Sprintf("%s-%d-%02d", companyID, period.Year, period.Month),
		CompanyID:                companyID,
		PeriodStart:              period.Start,
		PeriodEnd:                period.End,
		TotalRevenue:             result.TotalRevenue,
		TotalExpenses:            result.TotalExpenses,
		IVACollected:             result.IVACollected,
		IVAPaid:                  result.IVAPaid,
		NetIVA:                   result.NetIVA,
		PreviousMonthCredit:      result.PriorCredit,
		OverdueIVACredit:         result.OverdueIVACredit,
		PPM:                      result.PPM,
		Retencion:                result.Withholding,
		ReverseChargeWithholding: result.ReverseCharge,
		MonthlyTax:               result.MonthlyTax,
		GeneratedDeclaration:     declarations.Generated,
		FiledDeclaration:         declarations.Filed,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	log.Info().
		Str("company_id", companyID.String()).
		Str("period", period.Key()).
		Bool("all_time", period.AllTime).
		Str("monthly_tax", summary.MonthlyTax.String()).
		Msg("settlement computed")

	return summary, nil
}

func (s *settlementService) checkCompany(ctx context.Context, tenantID, companyID uuid.UUID) error {
	company, err := s.companyRepo.GetByID(ctx, tenantID, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrCompanyNotFound) {
			return domain.ErrCompanyNotFound
		}
		return dataUnavailable("settlement.checkCompany", err)
	}
	if !company.IsActive {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func dataUnavailable(op string, err error) error {
	if errors.Is(err, domain.ErrDataUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDataUnavailable, err)
}
