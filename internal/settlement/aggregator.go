package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"tributo/internal/domain"
	"tributo/internal/port"
)

// BucketTotals holds the per-bucket sums. NetEligible only counts documents
// without an overdue credit.
type BucketTotals struct {
	Total       decimal.Decimal
	Tax         decimal.Decimal
	Overdue     decimal.Decimal
	NetEligible decimal.Decimal
}

// SumBucket sums the documents that belong to b. Documents of other buckets
// or unknown type codes are ignored.
func SumBucket(b Bucket, docs []domain.TaxDocument) BucketTotals {
	var t BucketTotals
	for i := range docs {
		d := &docs[i]
		if d.Side != b.Side || !b.Has(d.DocumentTypeCode) {
			continue
		}
		t.Total = t.Total.Add(d.TotalAmount)
		t.Tax = t.Tax.Add(d.TaxAmount)
		t.Overdue = t.Overdue.Add(d.OverdueCredit)
		if !d.IsOverdue() {
			t.NetEligible = t.NetEligible.Add(d.NetAmount)
		}
	}
	return t
}

// SalesTotals is the combined sales side.
type SalesTotals struct {
	TotalRevenue       decimal.Decimal
	IVACollected       decimal.Decimal
	Overdue            decimal.Decimal
	NetRevenueEligible decimal.Decimal
}

// CombineSales nets credit notes against positive sales. Overdue credit adds
// from both buckets.
func CombineSales(positive, credit BucketTotals) SalesTotals {
	return SalesTotals{
		TotalRevenue:       positive.Total.Sub(credit.Total),
		IVACollected:       positive.Tax.Sub(credit.Tax),
		Overdue:            positive.Overdue.Add(credit.Overdue),
		NetRevenueEligible: positive.NetEligible.Sub(credit.NetEligible),
	}
}

// PurchaseTotals is the combined purchase side. Purchases carry no net amount.
type PurchaseTotals struct {
	TotalExpenses decimal.Decimal
	IVAPaid       decimal.Decimal
	Overdue       decimal.Decimal
}

// CombinePurchases nets credit notes against positive purchases.
func CombinePurchases(positive, credit BucketTotals) PurchaseTotals {
	return PurchaseTotals{
		TotalExpenses: positive.Total.Sub(credit.Total),
		IVAPaid:       positive.Tax.Sub(credit.Tax),
		Overdue:       positive.Overdue.Add(credit.Overdue),
	}
}

// DocumentTotals is the aggregated result for both registers.
type DocumentTotals struct {
	Sales     SalesTotals
	Purchases PurchaseTotals
}

// DocumentAggregator fetches every bucket from the document store and
// combines the sums.
type DocumentAggregator struct {
	docs port.DocumentStore
}

// NewDocumentAggregator creates a DocumentAggregator.
func NewDocumentAggregator(docs port.DocumentStore) *DocumentAggregator {
	return &DocumentAggregator{docs: docs}
}

// Aggregate queries the four buckets concurrently. A nil window aggregates
// every document of the company.
func (a *DocumentAggregator) Aggregate(ctx context.Context, companyID uuid.UUID, window *domain.Window) (*DocumentTotals, error) {
	sums := make([]BucketTotals, len(Buckets))

	g, gctx := errgroup.WithContext(ctx)
	for i, b := range Buckets {
		g.Go(func() error {
			docs, err := a.docs.QueryDocuments(gctx, companyID, b.Side, b.Codes, window)
			if err != nil {
				return fmt.Errorf("DocumentAggregator.Aggregate %s: %w", b.Name, err)
			}
			sums[i] = SumBucket(b, docs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DocumentTotals{
		Sales:     CombineSales(sums[0], sums[1]),
		Purchases: CombinePurchases(sums[2], sums[3]),
	}, nil
}
