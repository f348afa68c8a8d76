package orders

import (
	"fmt"

	"github.com/rustyeddy/fxcore/diag"
	"github.com/rustyeddy/fxcore/market"
	"github.com/rustyeddy/fxcore/signal"
)

// CheckInternalStop reconstructs each open order's true stop trigger
// from the broker placeholder and emits a close signal for the side
// whose internal stop has been breached by the current bar open.
// Runs before entry/update signals are generated.
func (e *Evaluation) CheckInternalStop(internalStop float64) {
	e.warnIfCommitted("CheckInternalStop")

	reference := StopsReference(e.Rates)
	currentPrice := e.Rates.CurrentOpen()

	for _, o := range e.Orders {
		if !o.IsOpen {
			continue
		}

		if o.StopLoss == 0 {
			diag.Warn(e.Sink, "broker stop is 0; the internal stop cannot be calculated", diag.Fields{
				"instance_id": e.Params.InstanceID,
				"ticket":      o.Ticket,
			})
			continue
		}

		switch o.Kind {
		case market.Buy:
			internalOpenPrice := o.StopLoss + reference
			if internalOpenPrice-currentPrice >= internalStop {
				diag.Info(e.Sink, "trade signal (internal stop): close buy", diag.Fields{
					"instance_id":   e.Params.InstanceID,
					"open_price":    internalOpenPrice,
					"current_price": currentPrice,
					"internal_stop": internalStop,
				})
				e.Signals.Add(signal.CloseBuy)
			}
		case market.Sell:
			internalOpenPrice := o.StopLoss - reference
			if currentPrice-internalOpenPrice >= internalStop {
				diag.Info(e.Sink, "trade signal (internal stop): close sell", diag.Fields{
					"instance_id":   e.Params.InstanceID,
					"open_price":    internalOpenPrice,
					"current_price": currentPrice,
					"internal_stop": internalStop,
				})
				e.Signals.Add(signal.CloseSell)
			}
		}
	}
}

// CheckInternalTake mirrors CheckInternalStop for the take-profit
// side: the true trigger sits reference below (buys) or above (sells)
// the broker placeholder.
func (e *Evaluation) CheckInternalTake(internalTake float64) {
	e.warnIfCommitted("CheckInternalTake")

	reference := StopsReference(e.Rates)
	currentPrice := e.Rates.CurrentOpen()

	for _, o := range e.Orders {
		if !o.IsOpen {
			continue
		}

		if o.TakeProfit == 0 {
			diag.Warn(e.Sink, "broker take-profit is 0; the internal take-profit cannot be calculated", diag.Fields{
				"instance_id": e.Params.InstanceID,
				"ticket":      o.Ticket,
			})
			continue
		}

		switch o.Kind {
		case market.Buy:
			internalOpenPrice := o.TakeProfit - reference
			if currentPrice-internalOpenPrice >= internalTake {
				diag.Info(e.Sink, "trade signal (internal take-profit): close buy", diag.Fields{
					"instance_id":   e.Params.InstanceID,
					"open_price":    o.OpenPrice,
					"current_price": currentPrice,
					"internal_take": internalTake,
				})
				e.Signals.Add(signal.CloseBuy)
			}
		case market.Sell:
			internalOpenPrice := o.TakeProfit + reference
			if internalOpenPrice-currentPrice >= internalTake {
				diag.Info(e.Sink, "trade signal (internal take-profit): close sell", diag.Fields{
					"instance_id":   e.Params.InstanceID,
					"open_price":    o.OpenPrice,
					"current_price": currentPrice,
					"internal_take": internalTake,
				})
				e.Signals.Add(signal.CloseSell)
			}
		}
	}
}

// CheckTimedExit emits a close signal once an open order has been held
// longer than the configured bar count. The entry time is the
// per-instance watermark, set the first time an order is observed
// open; for averaged virtual positions that is the first entry, not
// each broker fill.
func (e *Evaluation) CheckTimedExit() error {
	if e.Params.TimedExitBars <= 0 {
		return nil
	}

	e.warnIfCommitted("CheckTimedExit")

	watermark := e.States.LastOrderUpdate(e.Params.InstanceID)

	for _, o := range e.Orders {
		if !o.IsOpen {
			continue
		}

		if watermark.IsZero() || watermark.Unix() <= 0 {
			watermark = e.States.SetLastOrderUpdate(e.Params.InstanceID, o.OpenTime)
		}

		bars, err := e.Rates.BarsSince(watermark)
		if err != nil {
			return fmt.Errorf("timed exit: %w", err)
		}

		if bars > e.Params.TimedExitBars {
			switch o.Kind {
			case market.Buy:
				diag.Info(e.Sink, "trade signal (timed exit): close buy", diag.Fields{
					"instance_id": e.Params.InstanceID,
					"entry_time":  watermark,
					"bars_held":   bars,
				})
				e.Signals.Add(signal.CloseBuy)
			case market.Sell:
				diag.Info(e.Sink, "trade signal (timed exit): close sell", diag.Fields{
					"instance_id": e.Params.InstanceID,
					"entry_time":  watermark,
					"bars_held":   bars,
				})
				e.Signals.Add(signal.CloseSell)
			}
		}
	}

	return nil
}

// ValidateNewTrade gates new entries: monitor mode denies silently,
// a spread above the configured maximum denies with ErrSpreadTooWide.
// The free-margin gate is an opt-in Params flag applied after sizing
// in the open flows; drawdown gates are deliberately the caller's
// responsibility.
func (e *Evaluation) ValidateNewTrade() (bool, error) {
	if e.Params.Mode == ModeMonitor {
		return false, nil
	}

	if spread := e.BidAsk.Spread(); spread > e.Params.MaxSpread {
		diag.Error(e.Sink, "maximum spread exceeded", diag.Fields{
			"instance_id": e.Params.InstanceID,
			"spread":      spread,
			"max_spread":  e.Params.MaxSpread,
		})
		return false, fmt.Errorf("%w: %g > %g", ErrSpreadTooWide, spread, e.Params.MaxSpread)
	}

	return true, nil
}

// OrdersCorrect verifies that the broker accepted the stop/take levels
// the last cycle requested. A zero broker level where a non-zero one
// was requested means the modification failed and the cycle should
// re-run. Always true when backtesting, where execution is perfect.
func (e *Evaluation) OrdersCorrect(stop, take float64) bool {
	if e.Params.Backtesting {
		return true
	}

	for _, o := range e.Orders {
		if !o.IsOpen || o.InstanceID != e.Params.InstanceID {
			continue
		}

		if o.TakeProfit == 0 && take != 0 {
			diag.Warn(e.Sink, "take-profit detected to be 0, assuming modification failure; re-run on this bar to correct", diag.Fields{
				"instance_id": e.Params.InstanceID,
				"ticket":      o.Ticket,
			})
			return false
		}

		if o.StopLoss == 0 && stop != 0 {
			diag.Warn(e.Sink, "stop detected to be 0, assuming modification failure; re-run on this bar to correct", diag.Fields{
				"instance_id": e.Params.InstanceID,
				"ticket":      o.Ticket,
			})
			return false
		}
	}

	return true
}
