package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tributo/internal/domain"
	"tributo/internal/port"
)

// MatchedDeclarations holds the reference declarations for a period. Either
// may be nil.
type MatchedDeclarations struct {
	Generated *domain.F29Declaration
	Filed     *domain.F29Filing
}

// DeclarationMatcher attaches already generated or filed declarations to a settlement.
type DeclarationMatcher struct {
	store port.DeclarationStore
}

// NewDeclarationMatcher creates a DeclarationMatcher.
func NewDeclarationMatcher(store port.DeclarationStore) *DeclarationMatcher {
	return &DeclarationMatcher{store: store}
}

// Match looks up both declarations for the period's year and month.
func (m *DeclarationMatcher) Match(ctx context.Context, companyID uuid.UUID, period domain.Period) (*MatchedDeclarations, error) {
	var out MatchedDeclarations

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		decl, err := m.store.GetLatestGeneratedDeclaration(gctx, companyID, period.Year, period.Month)
		if err != nil {
			return fmt.Errorf("DeclarationMatcher.Match generated: %w", err)
		}
		out.Generated = decl
		return nil
	})
	g.Go(func() error {
		filing, err := m.store.GetFiledDeclaration(gctx, companyID, period.Year, period.Month, domain.FilingStatusCurrent)
		if err != nil {
			return fmt.Errorf("DeclarationMatcher.Match filed: %w", err)
		}
		out.Filed = filing
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
