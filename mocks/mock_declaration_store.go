package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tributo/internal/domain"
)

// MockDeclarationStore is a mock implementation of port.DeclarationStore.
type MockDeclarationStore struct {
	mock.Mock
}

func (m *MockDeclarationStore) GetDraftDeclaration(ctx context.Context, companyID uuid.UUID, year, month int, statuses []domain.DeclarationStatus) (*domain.F29Declaration, error) {
	args := m.Called(ctx, companyID, year, month, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.F29Declaration), args.Error(1)
}

func (m *MockDeclarationStore) GetFiledDeclaration(ctx context.Context, companyID uuid.UUID, year, month int, status string) (*domain.F29Filing, error) {
	args := m.Called(ctx, companyID, year, month, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.F29Filing), args.Error(1)
}

func (m *MockDeclarationStore) GetLatestGeneratedDeclaration(ctx context.Context, companyID uuid.UUID, year, month int) (*domain.F29Declaration, error) {
	args := m.Called(ctx, companyID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.F29Declaration), args.Error(1)
}
