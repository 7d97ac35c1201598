package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalArea(t *testing.T) {
	items := []AreaInput{
		{Width: 100, Height: 200, Quantity: 3}, // 6 m2
		{Width: 50, Height: 50, Quantity: 0},   // counts as one piece
		{Width: -10, Height: 50, Quantity: 2},
		{Width: math.NaN(), Height: 50, Quantity: 2},
	}

	assert.InDelta(t, 6.25, TotalArea(items), 1e-9)
}

func TestResolveDiscount(t *testing.T) {
	rules := []DiscountRange{
		{Name: "small", MinArea: 0, MaxArea: 10, Percent: 0},
		{Name: "medium", MinArea: 10.01, MaxArea: 50, Percent: 5},
		{Name: "large", MinArea: 50.01, MaxArea: 0, Percent: 12},
	}

	t.Run("matches inner range", func(t *testing.T) {
		items := []AreaInput{{Width: 200, Height: 100, Quantity: 10}} // 20 m2
		assert.Equal(t, 5.0, ResolveDiscount(items, rules))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		items := []AreaInput{{Width: 100, Height: 100, Quantity: 50}} // 50 m2
		assert.Equal(t, 5.0, ResolveDiscount(items, rules))
	})

	t.Run("zero max is open ended", func(t *testing.T) {
		items := []AreaInput{{Width: 1000, Height: 1000, Quantity: 5}} // 500 m2
		assert.Equal(t, 12.0, ResolveDiscount(items, rules))
	})

	t.Run("no rule matches", func(t *testing.T) {
		gap := []DiscountRange{{Name: "bulk", MinArea: 100, MaxArea: 200, Percent: 10}}
		items := []AreaInput{{Width: 100, Height: 100, Quantity: 1}}
		assert.Zero(t, ResolveDiscount(items, gap))
		assert.Zero(t, ResolveDiscount(nil, nil))
	})
}

func TestResolveDiscount_FirstMatchWins(t *testing.T) {
	items := []AreaInput{{Width: 100, Height: 100, Quantity: 15}} // 15 m2
	wide := DiscountRange{Name: "wide", MinArea: 0, MaxArea: 100, Percent: 3}
	narrow := DiscountRange{Name: "narrow", MinArea: 10, MaxArea: 20, Percent: 8}

	assert.Equal(t, 3.0, ResolveDiscount(items, []DiscountRange{wide, narrow}))
	assert.Equal(t, 8.0, ResolveDiscount(items, []DiscountRange{narrow, wide}))

	idx, _ := MatchRule(15, []DiscountRange{narrow, wide})
	assert.Equal(t, 0, idx)
}
