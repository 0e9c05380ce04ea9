package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tributo/internal/domain"
)

// MockSettlementService is a mock implementation of service.SettlementService.
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) Summarize(ctx context.Context, tenantID, companyID uuid.UUID, periodToken string) (*domain.TaxPeriodSummary, error) {
	args := m.Called(ctx, tenantID, companyID, periodToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxPeriodSummary), args.Error(1)
}
