package finance

import "math"

// Defaults used when no policy is configured.
const (
	DefaultTaxRate       = 0.19
	DefaultDebtTolerance = int64(100)
)

// Policy holds the jurisdiction-dependent constants of the calculator.
type Policy struct {
	// TaxRate is a fraction, 0.19 for 19%.
	TaxRate float64
	// DebtTolerance is the largest balance still treated as settled.
	DebtTolerance int64
}

// DefaultPolicy returns the Chilean VAT rate and a 100 CLP rounding allowance.
func DefaultPolicy() Policy {
	return Policy{TaxRate: DefaultTaxRate, DebtTolerance: DefaultDebtTolerance}
}

// Totals is the quote-level result of the aggregator.
type Totals struct {
	ItemsComputed      []LineResult `json:"items_computed"`
	Subtotal           int64        `json:"subtotal"`
	DiscountPercent    float64      `json:"discount_percent"`
	DiscountAmount     int64        `json:"discount_amount"`
	NetAmount          int64        `json:"net_amount"`
	TaxAmount          int64        `json:"tax_amount"`
	FinalTotal         int64        `json:"final_total"`
	DepositPaid        int64        `json:"deposit_paid"`
	OutstandingBalance int64        `json:"outstanding_balance"`
}

// Settled reports whether the balance falls within tolerance.
func (t Totals) Settled(tolerance int64) bool {
	return t.OutstandingBalance <= tolerance
}

// Calculator aggregates line items into quote totals under a Policy.
type Calculator struct {
	policy Policy
}

// NewCalculator builds a calculator. A non-finite or negative tax rate
// falls back to DefaultTaxRate and a negative tolerance to zero.
func NewCalculator(p Policy) *Calculator {
	if !valid(p.TaxRate) {
		p.TaxRate = DefaultTaxRate
	}
	if p.DebtTolerance < 0 {
		p.DebtTolerance = 0
	}
	return &Calculator{policy: p}
}

// Policy returns the effective policy.
func (c *Calculator) Policy() Policy {
	return c.policy
}

// QuoteTotals recomputes every derived quote amount from its inputs.
func (c *Calculator) QuoteTotals(items []LineInput, discountPercent float64, depositPaid int64, applyTax bool) Totals {
	discountPercent = ClampPercent(discountPercent)
	if depositPaid < 0 {
		depositPaid = 0
	}

	computed := make([]LineResult, len(items))
	var subtotal int64
	for i, item := range items {
		computed[i] = item.Compute()
		subtotal = addMoney(subtotal, computed[i].LineTotal)
	}

	discount := roundMoney(float64(subtotal) * discountPercent / 100)
	net := subtotal - discount
	if net < 0 {
		net = 0
	}

	var tax int64
	if applyTax {
		tax = roundMoney(float64(net) * c.policy.TaxRate)
	}
	final := addMoney(net, tax)

	outstanding := final - depositPaid
	if outstanding < 0 {
		outstanding = 0
	}

	return Totals{
		ItemsComputed:      computed,
		Subtotal:           subtotal,
		DiscountPercent:    discountPercent,
		DiscountAmount:     discount,
		NetAmount:          net,
		TaxAmount:          tax,
		FinalTotal:         final,
		DepositPaid:        depositPaid,
		OutstandingBalance: outstanding,
	}
}

// ClampPercent bounds p to [0,100]. NaN becomes 0.
func ClampPercent(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Min(100, math.Max(0, p))
}
