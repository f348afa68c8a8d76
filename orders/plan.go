package orders

import "github.com/rustyeddy/fxcore/market"

// StopsReferencePoints is the broker-visible placeholder distance used
// when stops are managed internally: far enough that the broker never
// triggers it, while still serving as the benchmark the internal
// trigger price is reconstructed from.
const StopsReferencePoints = 5000

// StopsReference converts the placeholder distance into price terms
// for the instrument's quoting precision.
func StopsReference(r market.Rates) float64 {
	return r.PointAdjustment() * StopsReferencePoints * r.Point
}

// Plan is the reconciled stop/take instruction for one order update.
// Per side exactly one of the broker and internal levels is non-zero:
// either the broker sees the true level, or it sees the placeholder
// and the true level is tracked internally.
type Plan struct {
	BrokerStop     float64
	InternalStop   float64
	BrokerTarget   float64
	InternalTarget float64
}

// PlanStops translates desired stop/take distances into the broker
// and internal pair. reference is the placeholder distance from
// StopsReference. A zero desired distance always goes to the broker
// level directly; internal management of "no stop" is meaningless.
func PlanStops(stop, take float64, useInternalStop, useInternalTake bool, reference float64) Plan {
	var p Plan

	if useInternalStop && stop != 0 {
		p.BrokerStop = reference
		p.InternalStop = stop
	} else {
		p.BrokerStop = stop
		p.InternalStop = 0
	}

	if useInternalTake && take != 0 {
		p.BrokerTarget = reference
		p.InternalTarget = take
	} else {
		p.BrokerTarget = take
		p.InternalTarget = 0
	}

	return p
}
