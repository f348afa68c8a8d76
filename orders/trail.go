package orders

import (
	"math"

	"github.com/rustyeddy/fxcore/diag"
	"github.com/rustyeddy/fxcore/market"
)

// TrailOpenTrades moves the broker stop behind a winning position once
// price has traveled trailStart from the entry bar's open, keeping the
// stop trailDistance away. Trailing always sets a plain broker stop;
// internal levels are cleared so the bridge does not re-apply a
// previous cycle's plan. Returns one Result per order of this instance
// (stop fields zero when no trail applies).
func (e *Evaluation) TrailOpenTrades(trailStart, trailDistance float64) []Result {
	if trailStart == 0 || trailDistance == 0 {
		return nil
	}

	// Outside session hours the stop stays put.
	if e.TradingTime != nil && !e.TradingTime() {
		return nil
	}

	if trailDistance < e.Account.MinimumStop {
		trailDistance = e.Account.MinimumStop
	}

	age := e.OrderAge()
	entryBarOpen := e.Rates.Open[e.Rates.Last()-age]

	var results []Result
	for _, o := range e.Orders {
		if !o.IsOpen || o.InstanceID != e.Params.InstanceID {
			continue
		}

		res := Result{Ticket: o.Ticket, UseTrailing: true}

		if o.Kind == market.Buy &&
			math.Abs(e.BidAsk.Ask-entryBarOpen) > trailStart &&
			e.BidAsk.Ask > entryBarOpen &&
			e.BidAsk.Ask-trailDistance > o.StopLoss {
			diag.Info(e.Sink, "trail buy stop", diag.Fields{
				"instance_id": e.Params.InstanceID,
				"ticket":      o.Ticket,
				"new_stop":    e.BidAsk.Ask - trailDistance,
				"old_stop":    o.StopLoss,
				"ask":         e.BidAsk.Ask,
			})
			res.Plan.BrokerStop = trailDistance
		}

		if o.Kind == market.Sell &&
			math.Abs(e.BidAsk.Bid-entryBarOpen) > trailStart &&
			e.BidAsk.Bid < entryBarOpen &&
			e.BidAsk.Bid+trailDistance < o.StopLoss {
			diag.Info(e.Sink, "trail sell stop", diag.Fields{
				"instance_id": e.Params.InstanceID,
				"ticket":      o.Ticket,
				"new_stop":    e.BidAsk.Bid + trailDistance,
				"old_stop":    o.StopLoss,
				"bid":         e.BidAsk.Bid,
			})
			res.Plan.BrokerStop = trailDistance
		}

		results = append(results, res)
	}

	return results
}
