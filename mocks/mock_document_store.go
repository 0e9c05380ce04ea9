package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tributo/internal/domain"
)

// MockDocumentStore is a mock implementation of port.DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) QueryDocuments(ctx context.Context, companyID uuid.UUID, side domain.DocumentSide, codes []string, window *domain.Window) ([]domain.TaxDocument, error) {
	args := m.Called(ctx, companyID, side, codes, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxDocument), args.Error(1)
}

func (m *MockDocumentStore) QueryWithholdings(ctx context.Context, companyID uuid.UUID, direction domain.WithholdingDirection, window *domain.Window) ([]domain.WithholdingRecord, error) {
	args := m.Called(ctx, companyID, direction, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WithholdingRecord), args.Error(1)
}

func (m *MockDocumentStore) QueryReverseCharge(ctx context.Context, companyID uuid.UUID, window *domain.Window) ([]domain.TaxDocument, error) {
	args := m.Called(ctx, companyID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxDocument), args.Error(1)
}
