package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"tributo/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (20 columns).
var columns = []string{
	"Summary ID",
	"Company ID",
	"Period Start",
	"Period End",
	"Total Revenue",
	"Total Expenses",
	"IVA Collected",
	"IVA Paid",
	"Net IVA",
	"Previous Month Credit",
	"Overdue IVA Credit",
	"PPM",
	"Retencion",
	"Reverse Charge Withholding",
	"Monthly Tax",
	"Generated Declaration Status",
	"Generated Declaration Revision",
	"Filed Declaration Folio",
	"Filed At",
	"Computed At",
}

// Writer wraps csv.Writer for exporting settlement summaries as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteSummary converts a summary to a CSV row and writes it.
func (w *Writer) WriteSummary(s *domain.TaxPeriodSummary) error {
	return w.csv.Write(summaryToRow(s))
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// summaryToRow converts a summary to a string slice. Absent amounts and
// missing declarations leave their cells empty.
func summaryToRow(s *domain.TaxPeriodSummary) []string {
	row := make([]string, len(columns))

	row[0] = s.ID
	row[1] = s.CompanyID.String()
	row[2] = s.PeriodStart.Format(time.DateOnly)
	row[3] = s.PeriodEnd.Format(time.DateOnly)
	row[4] = s.TotalRevenue.String()
	row[5] = s.TotalExpenses.String()
	row[6] = s.IVACollected.String()
	row[7] = s.IVAPaid.String()
	row[8] = s.NetIVA.String()
	row[9] = formatNullable(s.PreviousMonthCredit)
	row[10] = s.OverdueIVACredit.String()
	row[11] = formatNullable(s.PPM)
	row[12] = formatNullable(s.Retencion)
	row[13] = formatNullable(s.ReverseChargeWithholding)
	row[14] = s.MonthlyTax.String()

	if d := s.GeneratedDeclaration; d != nil {
		row[15] = string(d.Status)
		row[16] = strconv.Itoa(d.Revision)
	}
	if f := s.FiledDeclaration; f != nil {
		row[17] = f.Folio
		row[18] = formatTime(f.FiledAt)
	}
	row[19] = s.CreatedAt.Format(time.RFC3339)

	return row
}

func formatNullable(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	return v.Decimal.String()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
