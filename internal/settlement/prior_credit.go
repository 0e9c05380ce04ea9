package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"tributo/internal/domain"
	"tributo/internal/port"
)

// CreditProbe looks for the credit carried into a month from one source.
// found is false when the source has no usable value.
type CreditProbe interface {
	Name() string
	Probe(ctx context.Context, companyID uuid.UUID, year, month int) (credit decimal.Decimal, found bool, err error)
}

// EligibleDraftStatuses are the draft states whose net IVA may be carried forward.
var EligibleDraftStatuses = []domain.DeclarationStatus{domain.DeclarationSaved, domain.DeclarationPaid}

// DraftDeclarationProbe reads the locally generated declaration. Only saved
// or paid drafts with a negative net IVA hold a credit.
type DraftDeclarationProbe struct {
	store port.DeclarationStore
}

// NewDraftDeclarationProbe creates a DraftDeclarationProbe.
func NewDraftDeclarationProbe(store port.DeclarationStore) *DraftDeclarationProbe {
	return &DraftDeclarationProbe{store: store}
}

func (p *DraftDeclarationProbe) Name() string { return "draft_declaration" }

func (p *DraftDeclarationProbe) Probe(ctx context.Context, companyID uuid.UUID, year, month int) (decimal.Decimal, bool, error) {
	decl, err := p.store.GetDraftDeclaration(ctx, companyID, year, month, EligibleDraftStatuses)
	if err != nil {
		return decimal.Decimal{}, false, fmt.Errorf("DraftDeclarationProbe.Probe: %w", err)
	}
	if decl == nil || !decl.NetIVA.IsNegative() {
		return decimal.Decimal{}, false, nil
	}
	return decl.NetIVA.Abs(), true, nil
}

// FiledFormProbe reads the carried credit (code 077) from the current form
// filed with the tax authority.
type FiledFormProbe struct {
	store port.DeclarationStore
}

// NewFiledFormProbe creates a FiledFormProbe.
func NewFiledFormProbe(store port.DeclarationStore) *FiledFormProbe {
	return &FiledFormProbe{store: store}
}

func (p *FiledFormProbe) Name() string { return "filed_form" }

func (p *FiledFormProbe) Probe(ctx context.Context, companyID uuid.UUID, year, month int) (decimal.Decimal, bool, error) {
	filing, err := p.store.GetFiledDeclaration(ctx, companyID, year, month, domain.FilingStatusCurrent)
	if err != nil {
		return decimal.Decimal{}, false, fmt.Errorf("FiledFormProbe.Probe: %w", err)
	}
	if filing == nil {
		return decimal.Decimal{}, false, nil
	}
	credit, ok := filing.Payload.StatutoryCode(domain.CodeCarriedCredit)
	return credit, ok, nil
}

// PriorCreditResolver tries probes in order and stops at the first one that
// finds a value.
type PriorCreditResolver struct {
	probes []CreditProbe
}

// NewPriorCreditResolver creates a resolver from an ordered list of probes.
func NewPriorCreditResolver(probes ...CreditProbe) *PriorCreditResolver {
	return &PriorCreditResolver{probes: probes}
}

// NewDefaultPriorCreditResolver checks local drafts first, then filed forms.
func NewDefaultPriorCreditResolver(store port.DeclarationStore) *PriorCreditResolver {
	return NewPriorCreditResolver(NewDraftDeclarationProbe(store), NewFiledFormProbe(store))
}

// Resolve returns the credit carried into period from the previous month.
// The result is invalid (absent) in all-time mode or when no probe finds a value.
func (r *PriorCreditResolver) Resolve(ctx context.Context, companyID uuid.UUID, period domain.Period) (decimal.NullDecimal, error) {
	if period.AllTime {
		return decimal.NullDecimal{}, nil
	}
	year, month := period.Previous()
	for _, p := range r.probes {
		credit, found, err := p.Probe(ctx, companyID, year, month)
		if err != nil {
			return decimal.NullDecimal{}, err
		}
		if found {
			log.Debug().
				Str("company_id", companyID.String()).
				Str("source", p.Name()).
				Int("year", year).
				Int("month", month).
				Msg("prior credit resolved")
			return decimal.NewNullDecimal(credit), nil
		}
	}
	return decimal.NullDecimal{}, nil
}
