package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkRates(n int, start time.Time, step time.Duration) Rates {
	r := Rates{
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Times:  make([]time.Time, n),
		Point:  0.0001,
		Digits: 5,
	}
	for i := 0; i < n; i++ {
		r.Open[i] = 1.1 + float64(i)*0.001
		r.Close[i] = r.Open[i] + 0.0005
		r.High[i] = r.Close[i] + 0.0003
		r.Low[i] = r.Open[i] - 0.0003
		r.Times[i] = start.Add(time.Duration(i) * step)
	}
	return r
}

func TestRatesIndexing(t *testing.T) {
	t.Parallel()

	r := mkRates(10, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Hour)

	assert.Equal(t, 10, r.Len())
	assert.Equal(t, 9, r.Last())
	assert.Equal(t, 8, r.LastClosed())
	assert.InDelta(t, r.Open[9], r.CurrentOpen(), 1e-12)
}

func TestPointAdjustment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		digits int
		want   float64
	}{
		{5, 1},
		{3, 1},
		{4, 0.1},
		{2, 0.1},
		{1, 0.1},
		{0, 1},
	}

	for _, tt := range tests {
		r := Rates{Digits: tt.digits}
		assert.InDelta(t, tt.want, r.PointAdjustment(), 1e-12, "digits=%d", tt.digits)
	}
}

func TestBarsSince(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	r := mkRates(10, start, time.Hour)

	n, err := r.BarsSince(start.Add(9 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = r.BarsSince(start.Add(6 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Mid-bar timestamps resolve to the bar that was forming then.
	n, err = r.BarsSince(start.Add(6*time.Hour + 30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Before the window: every bar in the window counts.
	n, err = r.BarsSince(start.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	_, err = Rates{}.BarsSince(start)
	assert.ErrorIs(t, err, ErrNoRates)
}

func TestSpread(t *testing.T) {
	t.Parallel()

	ba := BidAsk{Bid: 1.1000, Ask: 1.1002}
	assert.InDelta(t, 0.0002, ba.Spread(), 1e-12)
}

func TestOrderKindSides(t *testing.T) {
	t.Parallel()

	assert.True(t, Buy.IsBuySide())
	assert.True(t, BuyLimit.IsBuySide())
	assert.True(t, BuyStop.IsBuySide())
	assert.False(t, Buy.IsSellSide())

	assert.True(t, Sell.IsSellSide())
	assert.True(t, SellLimit.IsSellSide())
	assert.True(t, SellStop.IsSellSide())
	assert.False(t, Sell.IsBuySide())

	assert.False(t, KindNone.IsBuySide())
	assert.False(t, KindNone.IsSellSide())
}
