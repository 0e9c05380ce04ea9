package settlement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tributo/internal/domain"
	"tributo/internal/settlement"
	"tributo/mocks"
)

func filingWith077(value any) *domain.F29Filing {
	return &domain.F29Filing{
		ID:      uuid.New(),
		Status:  domain.FilingStatusCurrent,
		Payload: domain.StatutoryPayload{"codes": map[string]any{"077": value}},
	}
}

func TestPriorCreditResolver_DraftWins(t *testing.T) {
	store := new(mocks.MockDeclarationStore)
	companyID := uuid.New()
	period := domain.MonthPeriod(2024, 3, time.UTC)

	store.On("GetDraftDeclaration", mock.Anything, companyID, 2024, 2, settlement.EligibleDraftStatuses).
		Return(&domain.F29Declaration{Status: domain.DeclarationSaved, NetIVA: dec("-500")}, nil)
	store.On("GetFiledDeclaration", mock.Anything, companyID, 2024, 2, domain.FilingStatusCurrent).
		Return(filingWith077(float64(9999)), nil).Maybe()

	got, err := settlement.NewDefaultPriorCreditResolver(store).Resolve(context.Background(), companyID, period)

	require.NoError(t, err)
	require.True(t, got.Valid)
	assertDecimal(t, "500", got.Decimal)
	store.AssertNotCalled(t, "GetFiledDeclaration", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPriorCreditResolver_FallsBackToFiledString(t *testing.T) {
	store := new(mocks.MockDeclarationStore)
	companyID := uuid.New()
	period := domain.MonthPeriod(2024, 3, time.UTC)

	store.On("GetDraftDeclaration", mock.Anything, companyID, 2024, 2, settlement.EligibleDraftStatuses).
		Return(nil, nil)
	store.On("GetFiledDeclaration", mock.Anything, companyID, 2024, 2, domain.FilingStatusCurrent).
		Return(filingWith077("1234.50"), nil)

	got, err := settlement.NewDefaultPriorCreditResolver(store).Resolve(context.Background(), companyID, period)

	require.NoError(t, err)
	require.True(t, got.Valid)
	assertDecimal(t, "1234.50", got.Decimal)
	store.AssertExpectations(t)
}

func TestPriorCreditResolver_PositiveDraftIsNotACredit(t *testing.T) {
	store := new(mocks.MockDeclarationStore)
	companyID := uuid.New()
	period := domain.MonthPeriod(2024, 3, time.UTC)

	store.On("GetDraftDeclaration", mock.Anything, companyID, 2024, 2, settlement.EligibleDraftStatuses).
		Return(&domain.F29Declaration{Status: domain.DeclarationPaid, NetIVA: dec("800")}, nil)
	store.On("GetFiledDeclaration", mock.Anything, companyID, 2024, 2, domain.FilingStatusCurrent).
		Return(filingWith077(float64(300)), nil)

	got, err := settlement.NewDefaultPriorCreditResolver(store).Resolve(context.Background(), companyID, period)

	require.NoError(t, err)
	require.True(t, got.Valid)
	assertDecimal(t, "300", got.Decimal)
}

func TestPriorCreditResolver_NeitherSource(t *testing.T) {
	store := new(mocks.MockDeclarationStore)
	companyID := uuid.New()
	period := domain.MonthPeriod(2024, 3, time.UTC)

	store.On("GetDraftDeclaration", mock.Anything, companyID, 2024, 2, settlement.EligibleDraftStatuses).
		Return(nil, nil)
	store.On("GetFiledDeclaration", mock.Anything, companyID, 2024, 2, domain.FilingStatusCurrent).
		Return(nil, nil)

	got, err := settlement.NewDefaultPriorCreditResolver(store).Resolve(context.Background(), companyID, period)

	require.NoError(t, err)
	assert.False(t, got.Valid)
}

func TestPriorCreditResolver_FiledWithoutCode(t *testing.T) {
	store := new(mocks.MockDeclarationStore)
	companyID := uuid.New()
	period := domain.MonthPeriod(2024, 3, time.UTC)

	store.On("GetDraftDeclaration", mock.Anything, companyID, 2024, 2, settlement.EligibleDraftStatuses).
		Return(nil, nil)
	store.On("GetFiledDeclaration", mock.Anything, companyID, 2024, 2, domain.FilingStatusCurrent).
		Return(&domain.F29Filing{Payload: domain.StatutoryPayload{"codes": map[string]any{"089": "10"}}}, nil)

	got, err := settlement.NewDefaultPriorCreditResolver(store).Resolve(context.Background(), companyID, period)

	require.NoError(t, err)
	assert.False(t, got.Valid)
}

func TestPriorCreditResolver_JanuaryLooksAtDecember(t *testing.T) {
	store := new(mocks.MockDeclarationStore)
	companyID := uuid.New()
	period := domain.MonthPeriod(2024, 1, time.UTC)

	store.On("GetDraftDeclaration", mock.Anything, companyID, 2023, 12, settlement.EligibleDraftStatuses).
		Return(&domain.F29Declaration{Status: domain.DeclarationSaved, NetIVA: dec("-42")}, nil)

	got, err := settlement.NewDefaultPriorCreditResolver(store).Resolve(context.Background(), companyID, period)

	require.NoError(t, err)
	assertDecimal(t, "42", got.Decimal)
	store.AssertExpectations(t)
}

func TestPriorCreditResolver_AllTimeSkipsLookups(t *testing.T) {
	store := new(mocks.MockDeclarationStore)
	period := domain.AllTimePeriod(time.Now(), time.UTC)

	got, err := settlement.NewDefaultPriorCreditResolver(store).Resolve(context.Background(), uuid.New(), period)

	require.NoError(t, err)
	assert.False(t, got.Valid)
	store.AssertNotCalled(t, "GetDraftDeclaration", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPriorCreditResolver_StoreFailureStopsCascade(t *testing.T) {
	store := new(mocks.MockDeclarationStore)
	companyID := uuid.New()
	period := domain.MonthPeriod(2024, 3, time.UTC)

	store.On("GetDraftDeclaration", mock.Anything, companyID, 2024, 2, settlement.EligibleDraftStatuses).
		Return(nil, domain.ErrDataUnavailable)

	got, err := settlement.NewDefaultPriorCreditResolver(store).Resolve(context.Background(), companyID, period)

	assert.True(t, errors.Is(err, domain.ErrDataUnavailable))
	assert.False(t, got.Valid)
	store.AssertNotCalled(t, "GetFiledDeclaration", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
