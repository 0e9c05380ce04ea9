package port

import (
	"context"

	"github.com/google/uuid"

	"tributo/internal/domain"
)

// CompanyRepository defines the contract for company lookups.
// Queries are scoped by tenantID to enforce tenant isolation at the data layer.
type CompanyRepository interface {
	GetByID(ctx context.Context, tenantID, companyID uuid.UUID) (*domain.Company, error)
	// ListActive pages through a tenant's active companies ordered by RUT.
	ListActive(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Company, error)
}
