package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLine(t *testing.T) {
	got := ComputeLine(3, 1000, 600)

	assert.Equal(t, int64(3000), got.LineTotal)
	assert.Equal(t, int64(1800), got.LineCost)
	assert.Equal(t, int64(1200), got.Profit)
	assert.InDelta(t, 40.0, got.RealMargin, 1e-9)
	assert.InDelta(t, 66.67, got.Markup, 0.01)
}

func TestComputeLine_RoundsToWholePesos(t *testing.T) {
	got := ComputeLine(1.5, 333, 100.3)

	assert.Equal(t, int64(500), got.LineTotal) // 499.5
	assert.Equal(t, int64(150), got.LineCost)  // 150.45
	assert.Equal(t, int64(350), got.Profit)
}

func TestComputeLine_ZeroDenominators(t *testing.T) {
	free := ComputeLine(2, 0, 0)
	assert.Equal(t, LineResult{}, free)

	noCost := ComputeLine(2, 500, 0)
	assert.Equal(t, int64(1000), noCost.Profit)
	assert.InDelta(t, 100.0, noCost.RealMargin, 1e-9)
	assert.Zero(t, noCost.Markup)
}

func TestComputeLine_InvalidInputsYieldZero(t *testing.T) {
	bad := []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1, -0.5}

	for _, v := range bad {
		cases := [][3]float64{{v, 1000, 600}, {3, v, 600}, {3, 1000, v}}
		for _, c := range cases {
			got := ComputeLine(c[0], c[1], c[2])
			assert.Equal(t, LineResult{}, got, "inputs %v", c)
			assert.False(t, math.IsNaN(got.RealMargin) || math.IsInf(got.Markup, 0))
		}
	}
}

func TestComputeLine_LossMakingLine(t *testing.T) {
	got := ComputeLine(1, 800, 1000)

	assert.Equal(t, int64(-200), got.Profit)
	assert.InDelta(t, -25.0, got.RealMargin, 1e-9)
	assert.InDelta(t, -20.0, got.Markup, 1e-9)
}

func TestComputeLine_SaturatesInsteadOfWrapping(t *testing.T) {
	got := ComputeLine(1, math.Pow(2, 63), 0)
	assert.Equal(t, int64(math.MaxInt64), got.LineTotal)
	assert.Equal(t, int64(math.MaxInt64), got.Profit)

	huge := ComputeLine(1e200, 1e200, 1e200)
	assert.Equal(t, int64(math.MaxInt64), huge.LineTotal)
	assert.Equal(t, int64(math.MaxInt64), huge.LineCost)
	assert.Zero(t, huge.Profit)
}

func TestLineWithinBounds(t *testing.T) {
	limit := float64(MaxLineAmount)

	assert.True(t, LineWithinBounds(3, 1000, 600))
	assert.True(t, LineWithinBounds(1, limit, limit))
	assert.True(t, LineWithinBounds(2, limit/2, 0))
	assert.False(t, LineWithinBounds(2, limit, 0))
	assert.False(t, LineWithinBounds(1, 0, limit+1))
	assert.False(t, LineWithinBounds(1, 9e18, 0))
}
