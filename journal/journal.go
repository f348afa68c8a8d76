// Package journal records the decisions an evaluation produced so they
// can be reviewed after the fact.
package journal

import (
	"time"

	"github.com/rustyeddy/fxcore/internal/id"
	"github.com/rustyeddy/fxcore/orders"
	"github.com/rustyeddy/fxcore/signal"
)

// Decision captures one evaluation outcome for one instance.
type Decision struct {
	ID           string
	InstanceID   int
	Symbol       string
	BarTime      time.Time
	Signals      string
	SignalBits   uint32
	Lots         float64
	EntryPrice   float64
	BrokerStop   float64
	InternalStop float64
	BrokerTake   float64
	InternalTake float64
	Reason       string
}

// NewDecision builds a Decision from an evaluation result, assigning a
// fresh ULID.
func NewDecision(instanceID int, symbol string, barTime time.Time, sigs signal.Set, res orders.Result, reason string) Decision {
	return Decision{
		ID:           id.New(),
		InstanceID:   instanceID,
		Symbol:       symbol,
		BarTime:      barTime,
		Signals:      sigs.String(),
		SignalBits:   sigs.Bits(),
		Lots:         res.Lots,
		EntryPrice:   res.EntryPrice,
		BrokerStop:   res.Plan.BrokerStop,
		InternalStop: res.Plan.InternalStop,
		BrokerTake:   res.Plan.BrokerTarget,
		InternalTake: res.Plan.InternalTarget,
		Reason:       reason,
	}
}

type Journal interface {
	Record(Decision) error
	Close() error
}
