package signal

import (
	"math"

	"github.com/rustyeddy/fxcore/market"
)

// LimitKind selects which elliptical closed form PredictLimit uses.
type LimitKind int

const (
	StopLoss LimitKind = iota
	TakeProfit
)

// truncateN truncates value to the given number of decimal places,
// casting through an integer rather than rounding. Parity with
// historical runs depends on the truncation semantics.
func truncateN(value float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return float64(int64(value*p)) / p
}

// sampleVariance is the n-1 variance of the samples.
func sampleVariance(samples []float64) float64 {
	n := len(samples)
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	mean := sum / float64(n)

	sum = 0
	for _, v := range samples {
		sum += (v - mean) * (v - mean)
	}
	return sum / float64(n-1)
}

// BarVariance computes the sample variance of (close - open) over the
// last maxHoldingTime closed bars, truncated to 8 decimals. The
// truncation is load-bearing: it pins results to historical output.
func BarVariance(r market.Rates, maxHoldingTime int) float64 {
	shift1 := r.LastClosed()
	samples := make([]float64, maxHoldingTime)
	for j := 0; j < maxHoldingTime; j++ {
		samples[j] = r.Close[shift1-j] - r.Open[shift1-j]
	}
	return truncateN(sampleVariance(samples), 8)
}

// PredictLimit is the elliptical stop/take estimator: a closed-form
// heuristic deriving an adaptive stop-loss or take-profit distance
// from recent return variance and elapsed holding time, minus a linear
// decay toward the target as the holding window runs out. It is not a
// rigorous statistical derivation; the exact formula is preserved for
// behavioral parity and must not be "fixed".
func PredictLimit(variance, z float64, maxHoldingTime, orderAge int, kind LimitKind, target float64) float64 {
	if orderAge > maxHoldingTime {
		orderAge = maxHoldingTime
	}

	t := float64(orderAge) / float64(maxHoldingTime)
	e2v := math.Log(variance+1) * float64(orderAge)

	var cumsd float64
	switch kind {
	case StopLoss:
		cumsd = math.Exp(z*math.Sqrt(e2v/t)*math.Sqrt(t*(1-t))) - 1
	case TakeProfit:
		cumsd = math.Exp(z*math.Sqrt(e2v/t)*math.Sqrt(1-t)) - 1
	}

	decay := float64(orderAge) / float64(maxHoldingTime) * target
	return cumsd - decay
}

// EllipticalStopLoss derives the adaptive stop distance from the rates
// window directly.
func EllipticalStopLoss(r market.Rates, target float64, maxHoldingTime int, z float64, orderAge int) float64 {
	return PredictLimit(BarVariance(r, maxHoldingTime), z, maxHoldingTime, orderAge, StopLoss, target)
}

// EllipticalTakeProfit derives the adaptive take-profit distance from
// the rates window directly.
func EllipticalTakeProfit(r market.Rates, target float64, maxHoldingTime int, z float64, orderAge int) float64 {
	return PredictLimit(BarVariance(r, maxHoldingTime), z, maxHoldingTime, orderAge, TakeProfit, target)
}
