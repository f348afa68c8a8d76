// Package orders turns strategy intent into broker-safe signal sets:
// stop/take reconciliation between internal and broker-visible levels,
// timed and internal exits, trailing, and the open/update/close flows
// that compose one evaluation's TradingSignal set.
package orders

import (
	"errors"

	"github.com/rustyeddy/fxcore/diag"
	"github.com/rustyeddy/fxcore/market"
	"github.com/rustyeddy/fxcore/signal"
)

var (
	ErrSpreadTooWide   = errors.New("spread too wide")
	ErrNotEnoughMargin = errors.New("not enough margin")
)

// Mode is the operational mode of a strategy instance. Monitor mode
// evaluates everything but never allows new entries.
type Mode int

const (
	ModeTrading Mode = iota
	ModeMonitor
)

func (m Mode) String() string {
	if m == ModeMonitor {
		return "monitor"
	}
	return "trading"
}

// Params are the per-instance settings one evaluation runs under.
type Params struct {
	InstanceID       int
	Symbol           string
	Mode             Mode
	RiskPercent      float64
	MaxSpread        float64
	TimedExitBars    int
	ATRPeriod        int
	TimeframeMinutes int
	UseInternalStop  bool
	UseInternalTake  bool
	SpreadBetting    bool
	Backtesting      bool

	// EnforceFreeMargin makes the open flows refuse entries whose
	// sized margin would breach the worst-case stop-out check. Off by
	// default; margin gating is a configuration point, not a hidden
	// check.
	EnforceFreeMargin bool
}

// Result is what one evaluation hands to the execution bridge besides
// the signal set: the computed entry price, lot size and stop plan.
type Result struct {
	Ticket      int
	EntryPrice  float64
	Lots        float64
	Plan        Plan
	UseTrailing bool
}

// Evaluation is one strategy instance's view of a single bar close:
// borrowed read-only snapshots in, an aggregated signal set and result
// out. Not safe for concurrent use; parallel instances each get their
// own Evaluation.
type Evaluation struct {
	Params  Params
	Account market.Account
	BidAsk  market.BidAsk
	Rates   market.Rates
	Orders  []market.Order
	States  *market.StateStore
	Sink    diag.Sink

	// TradingTime, when set, gates trailing outside session hours.
	TradingTime func() bool

	Signals signal.Set
	Result  Result
}

// OpenOrders counts open orders of the given kind; KindNone counts
// all open orders.
func OpenOrders(orders []market.Order, kind market.OrderKind) int {
	total := 0
	for _, o := range orders {
		if !o.IsOpen {
			continue
		}
		if o.Kind == kind || kind == market.KindNone {
			total++
		}
	}
	return total
}

// ClosedOrders counts closed orders of the given kind; KindNone counts
// all closed orders.
func ClosedOrders(orders []market.Order, kind market.OrderKind) int {
	total := 0
	for _, o := range orders {
		if o.IsOpen {
			continue
		}
		if o.Kind == kind || kind == market.KindNone {
			total++
		}
	}
	return total
}

// OrderAge returns how many bars have passed since the instance's
// virtual entry watermark.
func (e *Evaluation) OrderAge() int {
	watermark := e.States.LastOrderUpdate(e.Params.InstanceID)
	bars, err := e.Rates.BarsSince(watermark)
	if err != nil {
		diag.Error(e.Sink, "order age unavailable", diag.Fields{
			"instance_id": e.Params.InstanceID,
			"error":       err.Error(),
		})
		return 0
	}
	return bars
}

// OrderAgeOf returns how many bars have passed since a specific
// order's broker open time.
func (e *Evaluation) OrderAgeOf(o market.Order) int {
	bars, err := e.Rates.BarsSince(o.OpenTime)
	if err != nil {
		diag.Error(e.Sink, "order age unavailable", diag.Fields{
			"ticket": o.Ticket,
			"error":  err.Error(),
		})
		return 0
	}
	return bars
}

func (e *Evaluation) warnIfCommitted(caller string) {
	if e.Signals.HasEntry() || e.Signals.HasUpdate() {
		diag.Warn(e.Sink, caller+": an entry or update signal already exists; exit checks should run before entry or update signals are generated", diag.Fields{
			"instance_id": e.Params.InstanceID,
			"signals":     e.Signals.String(),
		})
	}
}
