// Package indicators holds the volatility inputs the sizing engine
// consumes. Strategy-facing indicator computation lives with the
// strategies; only the ATR fallback used for risk estimation is here.
package indicators

import (
	"fmt"
	"math"

	"github.com/rustyeddy/fxcore/market"
)

// TrueRange is the largest of high-low, |high-prevClose| and
// |low-prevClose|.
func TrueRange(high, low, prevClose float64) float64 {
	return math.Max(high-low, math.Max(math.Abs(high-prevClose), math.Abs(low-prevClose)))
}

// ATR averages the true range over the last period closed bars.
func ATR(r market.Rates, period int) (float64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("period must be positive, got %d", period)
	}
	if r.Len() < period+2 {
		return 0, fmt.Errorf("not enough bars: need %d, got %d", period+2, r.Len())
	}

	shift1 := r.LastClosed()
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += TrueRange(r.High[shift1-i], r.Low[shift1-i], r.Close[shift1-i-1])
	}
	return sum / float64(period), nil
}

// DailyATR scales the timeframe ATR to a daily-equivalent range. A
// 60-minute chart's ATR is multiplied by 24, a daily chart's by 1.
// The sizing engine uses this as a conservative loss estimate when a
// strategy runs without an explicit stop.
func DailyATR(r market.Rates, period, timeframeMinutes int) (float64, error) {
	if timeframeMinutes <= 0 {
		return 0, fmt.Errorf("timeframe must be positive, got %d", timeframeMinutes)
	}
	atr, err := ATR(r, period)
	if err != nil {
		return 0, err
	}
	return 1440 / float64(timeframeMinutes) * atr, nil
}
