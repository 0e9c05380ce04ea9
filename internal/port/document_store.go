package port

import (
	"context"

	"github.com/google/uuid"

	"tributo/internal/domain"
)

// DocumentStore is the read side of the sales and purchase registers.
// A nil window means no date filter. No matching rows yields an empty slice,
// never an error; storage failures wrap domain.ErrDataUnavailable.
type DocumentStore interface {
	// QueryDocuments returns documents of one side whose type code is in codes
	// and whose accounting date falls in the window.
	QueryDocuments(ctx context.Context, companyID uuid.UUID, side domain.DocumentSide, codes []string, window *domain.Window) ([]domain.TaxDocument, error)
	// QueryWithholdings filters by the record's issue date.
	QueryWithholdings(ctx context.Context, companyID uuid.UUID, direction domain.WithholdingDirection, window *domain.Window) ([]domain.WithholdingRecord, error)
	// QueryReverseCharge returns purchase documents carrying the reverse-charge type code.
	QueryReverseCharge(ctx context.Context, companyID uuid.UUID, window *domain.Window) ([]domain.TaxDocument, error)
}
