package finance

// OpenEndedMaxArea replaces a zero upper bound on a discount range.
const OpenEndedMaxArea = 999999.0

// AreaInput is the physical part of a line item, in centimetres.
type AreaInput struct {
	Width    float64
	Height   float64
	Quantity float64
}

// DiscountRange is a volume discount rule as read from the catalog.
type DiscountRange struct {
	Name    string
	MinArea float64
	MaxArea float64
	Percent float64
}

// Contains reports whether area falls inside the range, bounds included.
func (r DiscountRange) Contains(area float64) bool {
	upper := r.MaxArea
	if upper == 0 {
		upper = OpenEndedMaxArea
	}
	return r.MinArea <= area && area <= upper
}

// Area returns the item's surface in square metres.
// A missing quantity counts as one piece.
func (in AreaInput) Area() float64 {
	if !valid(in.Width) || !valid(in.Height) {
		return 0
	}
	qty := in.Quantity
	if !finite(qty) || qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return 0
	}
	return in.Width * in.Height / 10000 * qty
}

// TotalArea sums Area over items.
func TotalArea(items []AreaInput) float64 {
	var total float64
	for _, it := range items {
		total += it.Area()
	}
	return total
}

// ResolveDiscount returns the percent of the first rule, in the given
// order, whose range contains the total area. Overlapping ranges are
// not detected; ordering decides. Returns 0 when nothing matches.
func ResolveDiscount(items []AreaInput, rules []DiscountRange) float64 {
	_, pct := MatchRule(TotalArea(items), rules)
	return pct
}

// MatchRule is ResolveDiscount for a precomputed area. It also returns
// the index of the winning rule, or -1.
func MatchRule(area float64, rules []DiscountRange) (int, float64) {
	for i, r := range rules {
		if r.Contains(area) {
			return i, ClampPercent(r.Percent)
		}
	}
	return -1, 0
}
