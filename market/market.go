// Package market holds the read-only snapshot types one evaluation
// cycle runs against: account state, live bid/ask, the broker order
// array and the OHLC rates window. All of it is owned by the execution
// bridge; the engine borrows it for the duration of a call and never
// mutates it.
package market

import "time"

// OrderKind distinguishes the broker order types the engine reasons
// about. KindNone doubles as a wildcard when counting orders.
type OrderKind int

const (
	KindNone OrderKind = iota
	Buy
	Sell
	BuyLimit
	SellLimit
	BuyStop
	SellStop
)

func (k OrderKind) String() string {
	switch k {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case BuyLimit:
		return "buy-limit"
	case SellLimit:
		return "sell-limit"
	case BuyStop:
		return "buy-stop"
	case SellStop:
		return "sell-stop"
	}
	return "none"
}

// IsBuySide reports whether the kind opens long exposure.
func (k OrderKind) IsBuySide() bool {
	return k == Buy || k == BuyLimit || k == BuyStop
}

// IsSellSide reports whether the kind opens short exposure.
func (k OrderKind) IsSellSide() bool {
	return k == Sell || k == SellLimit || k == SellStop
}

// Order is one slot of the broker order array. The execution bridge
// creates and mutates these when broker state changes; the engine only
// reads them.
type Order struct {
	Ticket     int
	IsOpen     bool
	Kind       OrderKind
	OpenPrice  float64
	StopLoss   float64
	TakeProfit float64
	OpenTime   time.Time
	CloseTime  time.Time
	Profit     float64
	InstanceID int
}

// Account is the broker account snapshot for one evaluation.
type Account struct {
	Currency                  string
	Balance                   float64
	Equity                    float64
	MarginUsed                float64
	Leverage                  float64
	ContractSize              float64
	StopoutPercent            float64
	TotalOpenTradeRiskPercent float64
	MinimumStop               float64

	// When compounding is disabled, sizing uses the frozen
	// OriginalEquity snapshot instead of live equity.
	DisableCompounding bool
	OriginalEquity     float64
}

// BidAsk carries the live quotes for the traded symbol plus the
// precomputed quotes for the two conversion symbols. The collaborator
// feeding the engine resolves the conversion symbols once per bar and
// fills these in; zero means no quote was available.
type BidAsk struct {
	Bid float64
	Ask float64

	BaseConversionBid  float64
	BaseConversionAsk  float64
	QuoteConversionBid float64
	QuoteConversionAsk float64
}

func (ba BidAsk) Spread() float64 {
	return ba.Ask - ba.Bid
}
