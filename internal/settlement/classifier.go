package settlement

import "tributo/internal/domain"

// ReverseChargeTypeCode selects reverse-charge purchases. It belongs to no bucket.
const ReverseChargeTypeCode = domain.ReverseChargeTypeCode

// Bucket is a statutory group of document types. Positive buckets add to the
// totals, credit buckets subtract.
type Bucket struct {
	Name   string
	Side   domain.DocumentSide
	Credit bool
	Codes  []string
}

var (
	SalesPositive = Bucket{
		Name:  "sales_positive",
		Side:  domain.SideSale,
		Codes: []string{"33", "34", "39", "41", "43", "56", "110", "111"},
	}
	SalesCredit = Bucket{
		Name:   "sales_credit",
		Side:   domain.SideSale,
		Credit: true,
		Codes:  []string{"61"},
	}
	PurchasesPositive = Bucket{
		Name:  "purchases_positive",
		Side:  domain.SidePurchase,
		Codes: []string{"30", "32", "33", "34", "55", "56", "914"},
	}
	PurchasesCredit = Bucket{
		Name:   "purchases_credit",
		Side:   domain.SidePurchase,
		Credit: true,
		Codes:  []string{"61"},
	}
)

// Buckets lists every bucket in evaluation order.
var Buckets = []Bucket{SalesPositive, SalesCredit, PurchasesPositive, PurchasesCredit}

// Has reports whether code belongs to the bucket.
func (b Bucket) Has(code string) bool {
	for _, c := range b.Codes {
		if c == code {
			return true
		}
	}
	return false
}

// Classify returns the bucket of a document. ok is false for type codes that
// take no part in the settlement.
func Classify(side domain.DocumentSide, code string) (Bucket, bool) {
	for _, b := range Buckets {
		if b.Side == side && b.Has(code) {
			return b, true
		}
	}
	return Bucket{}, false
}
