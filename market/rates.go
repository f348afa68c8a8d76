package market

import (
	"errors"
	"time"
)

var ErrNoRates = errors.New("no rates available")

// Rates is the OHLC window for one instrument and timeframe, oldest
// bar first. The last slot is the forming bar; the last closed bar is
// one before it. Point and Digits describe the instrument's quoting
// precision.
type Rates struct {
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Times  []time.Time
	Point  float64
	Digits int
}

func (r Rates) Len() int {
	return len(r.Open)
}

// Last returns the index of the forming bar.
func (r Rates) Last() int {
	return len(r.Open) - 1
}

// LastClosed returns the index of the most recent closed bar.
func (r Rates) LastClosed() int {
	return len(r.Open) - 2
}

// CurrentOpen is the open of the forming bar, the price the engine
// evaluates against at bar close.
func (r Rates) CurrentOpen() float64 {
	return r.Open[r.Last()]
}

// PointAdjustment normalizes pip arithmetic across 4/5-digit and
// 2/3-digit broker feeds: fractional-pip feeds (5 or 3 digits) need no
// scaling, classic feeds scale by 0.1.
func (r Rates) PointAdjustment() float64 {
	switch r.Digits {
	case 5, 3:
		return 1
	case 4, 2, 1:
		return 0.1
	}
	return 1
}

// BarsSince counts how many bars lie between the forming bar and the
// most recent bar whose open time is at or before t.
func (r Rates) BarsSince(t time.Time) (int, error) {
	if r.Len() == 0 {
		return 0, ErrNoRates
	}
	last := r.Last()
	for i := last; i >= 0; i-- {
		if !r.Times[i].After(t) {
			return last - i, nil
		}
	}
	return last, nil
}
