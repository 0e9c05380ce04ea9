package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tributo/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 20)
	assert.Equal(t, "Summary ID", row[0])
	assert.Equal(t, "Monthly Tax", row[14])
	assert.Equal(t, "Computed At", row[19])
}

func TestWriteSummary_Full(t *testing.T) {
	companyID := uuid.New()
	loc := time.FixedZone("CLT", -4*3600)
	filedAt := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	computedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	s := &domain.TaxPeriodSummary{
		ID:                       companyID.String() + "-2024-05",
		CompanyID:                companyID,
		PeriodStart:              time.Date(2024, 5, 1, 0, 0, 0, 0, loc),
		PeriodEnd:                time.Date(2024, 6, 1, 0, 0, 0, 0, loc),
		TotalRevenue:             decimal.NewFromInt(119000),
		TotalExpenses:            decimal.NewFromInt(59500),
		IVACollected:             decimal.NewFromInt(19000),
		IVAPaid:                  decimal.NewFromInt(9500),
		NetIVA:                   decimal.NewFromInt(9500),
		PreviousMonthCredit:      decimal.NewNullDecimal(decimal.RequireFromString("1234.50")),
		OverdueIVACredit:         decimal.NewFromInt(100),
		PPM:                      decimal.NewNullDecimal(decimal.NewFromInt(125)),
		Retencion:                decimal.NewNullDecimal(decimal.NewFromInt(1375)),
		ReverseChargeWithholding: decimal.NewNullDecimal(decimal.NewFromInt(1900)),
		MonthlyTax:               decimal.NewFromInt(11565),
		GeneratedDeclaration:     &domain.F29Declaration{Status: domain.DeclarationSaved, Revision: 2},
		FiledDeclaration:         &domain.F29Filing{Folio: "8002", FiledAt: &filedAt},
		CreatedAt:                computedAt,
	}

	row := summaryToRow(s)

	assert.Len(t, row, 20)
	assert.Equal(t, companyID.String(), row[1])
	assert.Equal(t, "2024-05-01", row[2])
	assert.Equal(t, "2024-06-01", row[3])
	assert.Equal(t, "119000", row[4])
	assert.Equal(t, "1234.5", row[9])
	assert.Equal(t, "100", row[10])
	assert.Equal(t, "125", row[11])
	assert.Equal(t, "11565", row[14])
	assert.Equal(t, "saved", row[15])
	assert.Equal(t, "2", row[16])
	assert.Equal(t, "8002", row[17])
	assert.Equal(t, "2024-05-20T12:00:00Z", row[18])
	assert.Equal(t, "2024-06-01T08:00:00Z", row[19])
}

func TestWriteSummary_AbsentValuesLeaveEmptyCells(t *testing.T) {
	s := &domain.TaxPeriodSummary{
		CompanyID:        uuid.New(),
		TotalRevenue:     decimal.Zero,
		OverdueIVACredit: decimal.Zero,
		MonthlyTax:       decimal.Zero,
	}

	row := summaryToRow(s)

	assert.Equal(t, "", row[9])
	assert.Equal(t, "0", row[10])
	assert.Equal(t, "", row[11])
	assert.Equal(t, "", row[12])
	assert.Equal(t, "", row[13])
	assert.Equal(t, "0", row[14])
	assert.Equal(t, "", row[15])
	assert.Equal(t, "", row[16])
	assert.Equal(t, "", row[17])
	assert.Equal(t, "", row[18])
}

func TestWriteSummary_RoundTripsThroughCSV(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteSummary(&domain.TaxPeriodSummary{ID: "a", MonthlyTax: decimal.NewFromInt(9625)}))
	require.NoError(t, w.WriteSummary(&domain.TaxPeriodSummary{ID: "b", MonthlyTax: decimal.Zero}))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[1][0])
	assert.Equal(t, "9625", rows[1][14])
	assert.Equal(t, "b", rows[2][0])
}

func TestBOM(t *testing.T) {
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, BOM)
}
