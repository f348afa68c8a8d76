package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/fxcore/diag"
	"github.com/rustyeddy/fxcore/market"
)

func steadyRates(n int) market.Rates {
	r := market.Rates{
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Times:  make([]time.Time, n),
		Point:  0.0001,
		Digits: 5,
	}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		r.Open[i] = 1.1 + float64(i)*0.001
		r.Close[i] = r.Open[i] + 0.0005
		r.High[i] = r.Close[i] + 0.0003
		r.Low[i] = r.Open[i] - 0.0003
		r.Times[i] = start.Add(time.Duration(i) * time.Hour)
	}
	return r
}

func TestMaxLossPerLot_QuoteIsAccountCurrency(t *testing.T) {
	t.Parallel()

	in := LossInputs{
		Account:      market.Account{Currency: "USD", ContractSize: 100000},
		Symbol:       "EURUSD",
		BidAsk:       market.BidAsk{Bid: 1.1000, Ask: 1.1002},
		StopDistance: 0.0050,
	}

	got := MaxLossPerLot(in, nil)
	assert.InDelta(t, 500.0, got, 1e-9)
}

func TestMaxLossPerLot_AccountIsConversionBase(t *testing.T) {
	t.Parallel()

	// USD account trading EURJPY: the JPY loss converts through USDJPY
	// by dividing by its ask.
	in := LossInputs{
		Account:      market.Account{Currency: "USD", ContractSize: 100000},
		Symbol:       "EURJPY",
		BidAsk:       market.BidAsk{Bid: 160.10, Ask: 160.13, QuoteConversionBid: 145.50, QuoteConversionAsk: 145.53},
		StopDistance: 0.50,
	}

	got := MaxLossPerLot(in, nil)
	assert.InDelta(t, 50000.0/145.53, got, 1e-9)
}

func TestMaxLossPerLot_AccountIsConversionQuote(t *testing.T) {
	t.Parallel()

	// CHF account trading EURUSD: the USD loss converts through USDCHF
	// by multiplying by its bid.
	in := LossInputs{
		Account:      market.Account{Currency: "CHF", ContractSize: 100000},
		Symbol:       "EURUSD",
		BidAsk:       market.BidAsk{Bid: 1.1000, Ask: 1.1002, QuoteConversionBid: 0.8800, QuoteConversionAsk: 0.8803},
		StopDistance: 0.0050,
	}

	got := MaxLossPerLot(in, nil)
	assert.InDelta(t, 500.0*0.8800, got, 1e-9)
}

func TestMaxLossPerLot_CentAccountCurrency(t *testing.T) {
	t.Parallel()

	// A "CHFc" cent deposit still converts through USDCHF like a plain
	// CHF account.
	in := LossInputs{
		Account:      market.Account{Currency: "CHFc", ContractSize: 100000},
		Symbol:       "EURUSD",
		BidAsk:       market.BidAsk{Bid: 1.1000, Ask: 1.1002, QuoteConversionBid: 0.8800, QuoteConversionAsk: 0.8803},
		StopDistance: 0.0050,
	}

	got := MaxLossPerLot(in, nil)
	assert.InDelta(t, 500.0*0.8800, got, 1e-9)
}

func TestMaxLossPerLot_StaleConversionFeed(t *testing.T) {
	t.Parallel()

	in := LossInputs{
		Account:      market.Account{Currency: "USD", ContractSize: 100000},
		Symbol:       "EURJPY",
		BidAsk:       market.BidAsk{Bid: 160.10, Ask: 160.13},
		StopDistance: 0.50,
	}

	col := &diag.Collector{}
	got := MaxLossPerLot(in, col)

	// The traded symbol's own ask substitutes for the missing rate.
	assert.InDelta(t, 50000.0/160.13, got, 1e-9)
	assert.True(t, col.HasLevel(diag.LevelWarning))
}

func TestMaxLossPerLot_ATRFallback(t *testing.T) {
	t.Parallel()

	in := LossInputs{
		Account:          market.Account{Currency: "USD", ContractSize: 100000},
		Symbol:           "EURUSD",
		BidAsk:           market.BidAsk{Bid: 1.1000, Ask: 1.1002},
		StopDistance:     0,
		Rates:            steadyRates(30),
		ATRPeriod:        14,
		TimeframeMinutes: 60,
	}

	got := MaxLossPerLot(in, nil)
	// Daily-scaled ATR of the steady trend is 24 * 0.0013.
	assert.InDelta(t, 24*0.0013*100000, got, 1e-6)
}

func TestMaxLossPerLot_SpreadBetting(t *testing.T) {
	t.Parallel()

	in := LossInputs{
		Account:       market.Account{Currency: "USD", ContractSize: 10},
		Symbol:        "EURUSD",
		BidAsk:        market.BidAsk{Bid: 1.1000, Ask: 1.1002},
		StopDistance:  0.0050,
		SpreadBetting: true,
	}

	got := MaxLossPerLot(in, nil)
	assert.InDelta(t, 0.0050*10*1.1002, got, 1e-9)
}
