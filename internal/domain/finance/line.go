// Package finance holds the pure money calculations behind a quote: per-line
// revenue and margin, quote totals and the volume discount lookup.
//
// Amounts are whole CLP. Every function here is deterministic and free of I/O.
package finance

import "math"

// LineInput is the priced part of a line item.
type LineInput struct {
	Quantity  float64
	UnitPrice float64
	UnitCost  float64
}

// LineResult holds the values derived from a LineInput.
type LineResult struct {
	LineTotal  int64   `json:"line_total"`
	LineCost   int64   `json:"line_cost"`
	Profit     int64   `json:"profit"`
	RealMargin float64 `json:"real_margin"`
	Markup     float64 `json:"markup"`
}

// ComputeLine derives revenue, cost and margins for one line.
// A non-finite or negative input yields a zero result.
func ComputeLine(quantity, unitPrice, unitCost float64) LineResult {
	if !valid(quantity) || !valid(unitPrice) || !valid(unitCost) {
		return LineResult{}
	}

	total := roundMoney(quantity * unitPrice)
	cost := roundMoney(quantity * unitCost)
	profit := total - cost

	res := LineResult{
		LineTotal: total,
		LineCost:  cost,
		Profit:    profit,
	}
	if total > 0 {
		res.RealMargin = float64(profit) / float64(total) * 100
	}
	if cost > 0 {
		res.Markup = float64(profit) / float64(cost) * 100
	}
	return res
}

// Compute is ComputeLine over the receiver.
func (in LineInput) Compute() LineResult {
	return ComputeLine(in.Quantity, in.UnitPrice, in.UnitCost)
}

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundMoney rounds half up to a whole currency unit. Results beyond the
// int64 range saturate; NaN is zero.
func roundMoney(v float64) int64 {
	r := math.Floor(v + 0.5)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt64:
		return math.MaxInt64
	case r <= math.MinInt64:
		return math.MinInt64
	}
	return int64(r)
}

// addMoney adds two amounts, saturating at the int64 bounds.
func addMoney(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}

// MaxLineAmount is the largest revenue or cost a stored line may carry.
// Quotes holding a few thousand such lines still total well inside int64.
const MaxLineAmount = int64(1_000_000_000_000)

// LineWithinBounds reports whether quantity times price and quantity times
// cost both stay at or below MaxLineAmount.
func LineWithinBounds(quantity, unitPrice, unitCost float64) bool {
	limit := float64(MaxLineAmount)
	return quantity*unitPrice <= limit && quantity*unitCost <= limit
}
