package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tributo/internal/domain"
	"tributo/internal/port"
)

// ChargeCollector sums the charges that do not come from the sales and
// purchase buckets. A sum that is not positive is reported as absent.
type ChargeCollector struct {
	docs port.DocumentStore
}

// NewChargeCollector creates a ChargeCollector.
func NewChargeCollector(docs port.DocumentStore) *ChargeCollector {
	return &ChargeCollector{docs: docs}
}

// Withholding sums the retention of received fee receipts issued in the window.
func (c *ChargeCollector) Withholding(ctx context.Context, companyID uuid.UUID, window *domain.Window) (decimal.NullDecimal, error) {
	records, err := c.docs.QueryWithholdings(ctx, companyID, domain.WithholdingReceived, window)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("ChargeCollector.Withholding: %w", err)
	}
	sum := decimal.Zero
	for i := range records {
		if records[i].Direction != domain.WithholdingReceived {
			continue
		}
		sum = sum.Add(records[i].RetentionAmount)
	}
	return positiveOrAbsent(sum), nil
}

// ReverseCharge sums the IVA of reverse-charge purchase documents in the window.
func (c *ChargeCollector) ReverseCharge(ctx context.Context, companyID uuid.UUID, window *domain.Window) (decimal.NullDecimal, error) {
	docs, err := c.docs.QueryReverseCharge(ctx, companyID, window)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("ChargeCollector.ReverseCharge: %w", err)
	}
	sum := decimal.Zero
	for i := range docs {
		if docs[i].DocumentTypeCode != ReverseChargeTypeCode {
			continue
		}
		sum = sum.Add(docs[i].TaxAmount)
	}
	return positiveOrAbsent(sum), nil
}

func positiveOrAbsent(d decimal.Decimal) decimal.NullDecimal {
	if !d.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
