package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/fxcore/diag"
	"github.com/rustyeddy/fxcore/market"
	"github.com/rustyeddy/fxcore/signal"
)

var t0 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func hourlyRates(n int) market.Rates {
	r := market.Rates{
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Times:  make([]time.Time, n),
		Point:  0.0001,
		Digits: 5,
	}
	for i := 0; i < n; i++ {
		r.Open[i] = 1.1 + float64(i)*0.001
		r.Close[i] = r.Open[i] + 0.0005
		r.High[i] = r.Close[i] + 0.0003
		r.Low[i] = r.Open[i] - 0.0003
		r.Times[i] = t0.Add(time.Duration(i) * time.Hour)
	}
	return r
}

func newEval() *Evaluation {
	return &Evaluation{
		Params: Params{
			InstanceID:       1,
			Symbol:           "EURUSD",
			RiskPercent:      1,
			MaxSpread:        0.0005,
			ATRPeriod:        14,
			TimeframeMinutes: 60,
		},
		Account: market.Account{
			Currency:     "USD",
			Balance:      10000,
			Equity:       10000,
			Leverage:     100,
			ContractSize: 100000,
		},
		BidAsk: market.BidAsk{Bid: 1.1000, Ask: 1.1002},
		Rates:  hourlyRates(10),
		States: market.NewStateStore(),
		Sink:   &diag.Collector{},
	}
}

func TestOpenClosedOrders(t *testing.T) {
	t.Parallel()

	orders := []market.Order{
		{Ticket: 1, IsOpen: true, Kind: market.Buy},
		{Ticket: 2, IsOpen: true, Kind: market.Sell},
		{Ticket: 3, IsOpen: false, Kind: market.Buy},
		{Ticket: 4, IsOpen: true, Kind: market.Buy},
	}

	assert.Equal(t, 2, OpenOrders(orders, market.Buy))
	assert.Equal(t, 1, OpenOrders(orders, market.Sell))
	assert.Equal(t, 3, OpenOrders(orders, market.KindNone))

	assert.Equal(t, 1, ClosedOrders(orders, market.Buy))
	assert.Equal(t, 0, ClosedOrders(orders, market.Sell))
	assert.Equal(t, 1, ClosedOrders(orders, market.KindNone))
}

func TestOrderAge(t *testing.T) {
	t.Parallel()

	e := newEval()
	e.States.SetLastOrderUpdate(1, t0.Add(6*time.Hour))

	assert.Equal(t, 3, e.OrderAge())

	o := market.Order{Ticket: 9, OpenTime: t0.Add(2 * time.Hour)}
	assert.Equal(t, 7, e.OrderAgeOf(o))
}

func TestStopsReference(t *testing.T) {
	t.Parallel()

	r := market.Rates{Point: 0.0001, Digits: 5}
	assert.InDelta(t, 0.5, StopsReference(r), 1e-9)

	// Classic 4-digit feeds scale by 0.1.
	r = market.Rates{Point: 0.0001, Digits: 4}
	assert.InDelta(t, 0.05, StopsReference(r), 1e-9)
}

func TestPlanStops(t *testing.T) {
	t.Parallel()

	const ref = 0.5

	tests := []struct {
		name             string
		stop, take       float64
		internalStop     bool
		internalTake     bool
		want             Plan
	}{
		{
			"broker managed",
			0.0050, 0.0100, false, false,
			Plan{BrokerStop: 0.0050, BrokerTarget: 0.0100},
		},
		{
			"internal stop only",
			0.0050, 0.0100, true, false,
			Plan{BrokerStop: ref, InternalStop: 0.0050, BrokerTarget: 0.0100},
		},
		{
			"both internal",
			0.0050, 0.0100, true, true,
			Plan{BrokerStop: ref, InternalStop: 0.0050, BrokerTarget: ref, InternalTarget: 0.0100},
		},
		{
			"zero distances stay broker side",
			0, 0, true, true,
			Plan{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := PlanStops(tt.stop, tt.take, tt.internalStop, tt.internalTake, ref)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckInternalStop(t *testing.T) {
	t.Parallel()

	e := newEval()
	// Current bar open is 1.109; reference is 0.5. A broker stop of
	// 0.625 reconstructs an internal entry of 1.125, well past the
	// internal stop distance above the current price.
	e.Orders = []market.Order{
		{Ticket: 1, IsOpen: true, Kind: market.Buy, StopLoss: 0.625},
	}

	e.CheckInternalStop(0.0100)
	assert.True(t, e.Signals.Has(signal.CloseBuy))
}

func TestCheckInternalStopNoBreach(t *testing.T) {
	t.Parallel()

	e := newEval()
	// Internal entry reconstructs to 1.1095, only 0.0005 above the
	// current price.
	e.Orders = []market.Order{
		{Ticket: 1, IsOpen: true, Kind: market.Buy, StopLoss: 0.6095},
	}

	e.CheckInternalStop(0.0100)
	assert.True(t, e.Signals.Empty())
}

func TestCheckInternalStopZeroBrokerLevel(t *testing.T) {
	t.Parallel()

	e := newEval()
	e.Orders = []market.Order{
		{Ticket: 1, IsOpen: true, Kind: market.Buy, StopLoss: 0},
	}

	e.CheckInternalStop(0.0100)

	assert.True(t, e.Signals.Empty())
	assert.True(t, e.Sink.(*diag.Collector).HasLevel(diag.LevelWarning))
}

func TestCheckInternalTake(t *testing.T) {
	t.Parallel()

	e := newEval()
	// A broker take of 1.595 reconstructs an internal entry of 1.095,
	// well past the internal take distance below the current 1.109 open.
	e.Orders = []market.Order{
		{Ticket: 1, IsOpen: true, Kind: market.Buy, TakeProfit: 1.595},
	}

	e.CheckInternalTake(0.0100)
	assert.True(t, e.Signals.Has(signal.CloseBuy))
}

func TestCheckInternalTakeSell(t *testing.T) {
	t.Parallel()

	e := newEval()
	// Sell internal entry reconstructs above the broker take.
	e.Orders = []market.Order{
		{Ticket: 1, IsOpen: true, Kind: market.Sell, TakeProfit: 0.625},
	}

	e.CheckInternalTake(0.0100)
	assert.True(t, e.Signals.Has(signal.CloseSell))
}

func TestCheckTimedExit(t *testing.T) {
	t.Parallel()

	e := newEval()
	e.Params.TimedExitBars = 5
	e.Orders = []market.Order{
		{Ticket: 1, IsOpen: true, Kind: market.Buy, OpenTime: t0.Add(2 * time.Hour)},
	}

	// The watermark initializes from the order's open time: held 7
	// bars against a 5-bar limit.
	require.NoError(t, e.CheckTimedExit())

	assert.True(t, e.Signals.Has(signal.CloseBuy))
	assert.Equal(t, t0.Add(2*time.Hour), e.States.LastOrderUpdate(1))
}

func TestCheckTimedExitNotYet(t *testing.T) {
	t.Parallel()

	e := newEval()
	e.Params.TimedExitBars = 5
	e.Orders = []market.Order{
		{Ticket: 1, IsOpen: true, Kind: market.Sell, OpenTime: t0.Add(7 * time.Hour)},
	}

	require.NoError(t, e.CheckTimedExit())
	assert.True(t, e.Signals.Empty())
}

func TestCheckTimedExitDisabled(t *testing.T) {
	t.Parallel()

	e := newEval()
	e.Params.TimedExitBars = 0
	e.Orders = []market.Order{
		{Ticket: 1, IsOpen: true, Kind: market.Buy, OpenTime: t0},
	}

	require.NoError(t, e.CheckTimedExit())
	assert.True(t, e.Signals.Empty())
}

func TestValidateNewTrade(t *testing.T) {
	t.Parallel()

	e := newEval()
	ok, err := e.ValidateNewTrade()
	require.NoError(t, err)
	assert.True(t, ok)

	e.Params.Mode = ModeMonitor
	ok, err = e.ValidateNewTrade()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateNewTradeSpread(t *testing.T) {
	t.Parallel()

	e := newEval()
	e.BidAsk = market.BidAsk{Bid: 1.1000, Ask: 1.1010}

	ok, err := e.ValidateNewTrade()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrSpreadTooWide)
}

func TestOrdersCorrect(t *testing.T) {
	t.Parallel()

	e := newEval()
	e.Orders = []market.Order{
		{Ticket: 1, IsOpen: true, Kind: market.Buy, InstanceID: 1, StopLoss: 1.09, TakeProfit: 1.12},
	}
	assert.True(t, e.OrdersCorrect(0.0050, 0.0100))

	e.Orders[0].StopLoss = 0
	assert.False(t, e.OrdersCorrect(0.0050, 0.0100))

	// A zero level that was never requested is fine.
	assert.True(t, e.OrdersCorrect(0, 0.0100))

	// Backtesting assumes perfect execution.
	e.Params.Backtesting = true
	assert.True(t, e.OrdersCorrect(0.0050, 0.0100))
}
