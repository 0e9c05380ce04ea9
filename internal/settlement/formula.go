package settlement

import "github.com/shopspring/decimal"

// PPMRate is the provisional monthly payment rate applied to eligible net revenue.
var PPMRate = decimal.RequireFromString("0.00125")

// FormulaInput gathers everything the settlement formula consumes.
type FormulaInput struct {
	Sales         SalesTotals
	Purchases     PurchaseTotals
	PriorCredit   decimal.NullDecimal
	Withholding   decimal.NullDecimal
	ReverseCharge decimal.NullDecimal
}

// Settlement is the evaluated monthly liability. Null fields mean the source
// value was absent or not positive.
type Settlement struct {
	TotalRevenue       decimal.Decimal
	TotalExpenses      decimal.Decimal
	IVACollected       decimal.Decimal
	IVAPaid            decimal.Decimal
	NetIVA             decimal.Decimal
	IVABalance         decimal.Decimal
	IVAPayable         decimal.Decimal
	NetRevenueEligible decimal.Decimal
	PriorCredit        decimal.NullDecimal
	OverdueIVACredit   decimal.Decimal
	PPM                decimal.NullDecimal
	Withholding        decimal.NullDecimal
	ReverseCharge      decimal.NullDecimal
	MonthlyTax         decimal.Decimal
}

// Evaluate applies the F29 formula. The prior credit is subtracted before the
// IVA balance is floored at zero; overdue credit and the positive
// supplementary charges are added after the floor.
func Evaluate(in FormulaInput) Settlement {
	s := Settlement{
		TotalRevenue:       in.Sales.TotalRevenue,
		TotalExpenses:      in.Purchases.TotalExpenses,
		IVACollected:       in.Sales.IVACollected,
		IVAPaid:            in.Purchases.IVAPaid,
		NetRevenueEligible: in.Sales.NetRevenueEligible,
		PriorCredit:        in.PriorCredit,
	}

	s.OverdueIVACredit = in.Sales.Overdue.Add(in.Purchases.Overdue)
	s.NetIVA = s.IVACollected.Sub(s.IVAPaid)
	s.IVABalance = s.NetIVA.Sub(valueOrZero(in.PriorCredit))
	s.IVAPayable = decimal.Max(decimal.Zero, s.IVABalance)

	if s.NetRevenueEligible.IsPositive() {
		s.PPM = decimal.NewNullDecimal(s.NetRevenueEligible.Mul(PPMRate))
	}
	s.Withholding = positiveOnly(in.Withholding)
	s.ReverseCharge = positiveOnly(in.ReverseCharge)

	s.MonthlyTax = s.IVAPayable.Add(s.OverdueIVACredit)
	for _, charge := range []decimal.NullDecimal{s.PPM, s.Withholding, s.ReverseCharge} {
		if charge.Valid {
			s.MonthlyTax = s.MonthlyTax.Add(charge.Decimal)
		}
	}
	return s
}

func valueOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

func positiveOnly(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid || !d.Decimal.IsPositive() {
		return decimal.NullDecimal{}
	}
	return d
}
