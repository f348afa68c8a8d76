package orders

import (
	"fmt"
	"time"

	"github.com/rustyeddy/fxcore/diag"
	"github.com/rustyeddy/fxcore/market"
	"github.com/rustyeddy/fxcore/risk"
	"github.com/rustyeddy/fxcore/signal"
)

func (e *Evaluation) lossInputs(stop float64) risk.LossInputs {
	return risk.LossInputs{
		Account:          e.Account,
		Symbol:           e.Params.Symbol,
		BidAsk:           e.BidAsk,
		StopDistance:     stop,
		Rates:            e.Rates,
		ATRPeriod:        e.Params.ATRPeriod,
		TimeframeMinutes: e.Params.TimeframeMinutes,
		SpreadBetting:    e.Params.SpreadBetting,
	}
}

func (e *Evaluation) lastBarTime() time.Time {
	return e.Rates.Times[e.Rates.Last()]
}

// ensureFreeMargin gates an entry on the margin the sized position
// would reserve. Runs only when Params.EnforceFreeMargin is set. A
// zero margin estimate means margin protection is unavailable (no
// conversion rate); the entry proceeds and the rate failure has
// already been reported.
func (e *Evaluation) ensureFreeMargin(kind market.OrderKind) error {
	if !e.Params.EnforceFreeMargin {
		return nil
	}

	required := risk.MarginRequired(e.Account, e.Params.Symbol, e.BidAsk, kind, e.Result.Lots, e.Sink)
	if required == 0 {
		return nil
	}

	if !risk.HasEnoughFreeMargin(e.Account, e.Params.RiskPercent, required) {
		diag.Error(e.Sink, "not enough free margin for new trade", diag.Fields{
			"instance_id":     e.Params.InstanceID,
			"required_margin": required,
			"margin_used":     e.Account.MarginUsed,
			"lots":            e.Result.Lots,
		})
		return fmt.Errorf("%w: %.2f required", ErrNotEnoughMargin, required)
	}
	return nil
}

// OpenOrUpdateLong composes the signal set for long intent: close any
// short exposure, and either open a new buy (no buys held) or update
// the existing one. riskScale multiplies the configured risk-derived
// size, letting split-order strategies portion a position. The
// add-close-sell / remove-close-buy pairing here is what preserves the
// open/close mutual exclusion the signal set itself does not enforce.
func (e *Evaluation) OpenOrUpdateLong(stop, take, riskScale float64) error {
	allowed, err := e.ValidateNewTrade()
	if err != nil {
		return err
	}
	if !allowed {
		return nil
	}

	e.Result.Plan = PlanStops(stop, take, e.Params.UseInternalStop, e.Params.UseInternalTake, StopsReference(e.Rates))
	e.Result.EntryPrice = e.BidAsk.Ask

	maxLoss := risk.MaxLossPerLot(e.lossInputs(stop), e.Sink)
	e.Result.Lots = risk.PositionSize(e.Account, e.Params.RiskPercent, maxLoss) * riskScale

	if err := e.ensureFreeMargin(market.Buy); err != nil {
		return err
	}

	e.Signals.Add(signal.CloseSell)
	e.Signals.Remove(signal.CloseBuy)

	if OpenOrders(e.Orders, market.Buy) == 0 {
		diag.Info(e.Sink, "trade signal (entry criteria): close sell & open buy", diag.Fields{
			"instance_id": e.Params.InstanceID,
			"entry_price": e.Result.EntryPrice,
			"lots":        e.Result.Lots,
			"stop":        stop,
			"take":        take,
		})
		e.Signals.Add(signal.OpenBuy)
		e.States.SetLastOrderUpdate(e.Params.InstanceID, e.lastBarTime())
	} else {
		diag.Info(e.Sink, "trade signal (entry criteria): close sell & update buy", diag.Fields{
			"instance_id": e.Params.InstanceID,
			"entry_price": e.Result.EntryPrice,
			"lots":        e.Result.Lots,
			"stop":        stop,
			"take":        take,
		})
		e.Signals.Add(signal.UpdateBuy)
	}

	return nil
}

// OpenOrUpdateShort mirrors OpenOrUpdateLong for short intent.
func (e *Evaluation) OpenOrUpdateShort(stop, take, riskScale float64) error {
	allowed, err := e.ValidateNewTrade()
	if err != nil {
		return err
	}
	if !allowed {
		return nil
	}

	e.Result.Plan = PlanStops(stop, take, e.Params.UseInternalStop, e.Params.UseInternalTake, StopsReference(e.Rates))
	e.Result.EntryPrice = e.BidAsk.Bid

	maxLoss := risk.MaxLossPerLot(e.lossInputs(stop), e.Sink)
	e.Result.Lots = risk.PositionSize(e.Account, e.Params.RiskPercent, maxLoss) * riskScale

	if err := e.ensureFreeMargin(market.Sell); err != nil {
		return err
	}

	e.Signals.Add(signal.CloseBuy)
	e.Signals.Remove(signal.CloseSell)

	if OpenOrders(e.Orders, market.Sell) == 0 {
		diag.Info(e.Sink, "trade signal (entry criteria): close buy & open sell", diag.Fields{
			"instance_id": e.Params.InstanceID,
			"entry_price": e.Result.EntryPrice,
			"lots":        e.Result.Lots,
			"stop":        stop,
			"take":        take,
		})
		e.Signals.Add(signal.OpenSell)
		e.States.SetLastOrderUpdate(e.Params.InstanceID, e.lastBarTime())
	} else {
		diag.Info(e.Sink, "trade signal (entry criteria): close buy & update sell", diag.Fields{
			"instance_id": e.Params.InstanceID,
			"entry_price": e.Result.EntryPrice,
			"lots":        e.Result.Lots,
			"stop":        stop,
			"take":        take,
		})
		e.Signals.Add(signal.UpdateSell)
	}

	return nil
}

// UpdateLong refreshes the stop plan and sizing for held long
// exposure without the new-entry gates.
func (e *Evaluation) UpdateLong(stop, take float64) {
	e.Result.Plan = PlanStops(stop, take, e.Params.UseInternalStop, e.Params.UseInternalTake, StopsReference(e.Rates))
	e.Result.EntryPrice = e.BidAsk.Ask

	maxLoss := risk.MaxLossPerLot(e.lossInputs(stop), e.Sink)
	e.Result.Lots = risk.PositionSize(e.Account, e.Params.RiskPercent, maxLoss)

	diag.Info(e.Sink, "trade signal (update only): update buy", diag.Fields{
		"instance_id": e.Params.InstanceID,
		"entry_price": e.Result.EntryPrice,
		"lots":        e.Result.Lots,
		"stop":        stop,
		"take":        take,
	})
	e.Signals.Add(signal.UpdateBuy)
}

// UpdateShort mirrors UpdateLong for short exposure.
func (e *Evaluation) UpdateShort(stop, take float64) {
	e.Result.Plan = PlanStops(stop, take, e.Params.UseInternalStop, e.Params.UseInternalTake, StopsReference(e.Rates))
	e.Result.EntryPrice = e.BidAsk.Bid

	maxLoss := risk.MaxLossPerLot(e.lossInputs(stop), e.Sink)
	e.Result.Lots = risk.PositionSize(e.Account, e.Params.RiskPercent, maxLoss)

	diag.Info(e.Sink, "trade signal (update only): update sell", diag.Fields{
		"instance_id": e.Params.InstanceID,
		"entry_price": e.Result.EntryPrice,
		"lots":        e.Result.Lots,
		"stop":        stop,
		"take":        take,
	})
	e.Signals.Add(signal.UpdateSell)
}

// CloseLong adds the close-buy exit signal.
func (e *Evaluation) CloseLong() {
	e.warnIfCommitted("CloseLong")

	diag.Info(e.Sink, "trade signal (exit criteria): close buy", diag.Fields{
		"instance_id": e.Params.InstanceID,
	})
	e.Signals.Add(signal.CloseBuy)
}

// CloseShort adds the close-sell exit signal.
func (e *Evaluation) CloseShort() {
	e.warnIfCommitted("CloseShort")

	diag.Info(e.Sink, "trade signal (exit criteria): close sell", diag.Fields{
		"instance_id": e.Params.InstanceID,
	})
	e.Signals.Add(signal.CloseSell)
}
