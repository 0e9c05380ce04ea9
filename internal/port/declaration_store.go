package port

import (
	"context"

	"github.com/google/uuid"

	"tributo/internal/domain"
)

// DeclarationStore reads locally generated and authority-filed F29 forms.
// Absent records return nil with a nil error.
type DeclarationStore interface {
	GetDraftDeclaration(ctx context.Context, companyID uuid.UUID, year, month int, statuses []domain.DeclarationStatus) (*domain.F29Declaration, error)
	GetFiledDeclaration(ctx context.Context, companyID uuid.UUID, year, month int, status string) (*domain.F29Filing, error)
	// GetLatestGeneratedDeclaration excludes cancelled declarations and orders
	// by revision, then creation time, descending.
	GetLatestGeneratedDeclaration(ctx context.Context, companyID uuid.UUID, year, month int) (*domain.F29Declaration, error)
}
