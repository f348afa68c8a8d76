package market

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Tick is one bid/ask observation for a symbol.
type Tick struct {
	Symbol string
	Time   time.Time
	Bid    float64
	Ask    float64
}

func (t Tick) Mid() float64 {
	return (t.Bid + t.Ask) / 2
}

func (t Tick) Spread() float64 {
	return t.Ask - t.Bid
}

// TickSource is the price provider collaborator. The host resolves the
// traded symbol and its conversion symbols against one of these when
// assembling the BidAsk snapshot for a cycle.
type TickSource interface {
	GetTick(ctx context.Context, symbol string) (Tick, error)
}

// TickStore is an in-memory TickSource, safe for concurrent use.
type TickStore struct {
	mu    sync.RWMutex
	ticks map[string]Tick
}

func NewTickStore() *TickStore {
	return &TickStore{ticks: make(map[string]Tick)}
}

func (s *TickStore) Set(t Tick) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticks[t.Symbol] = t
}

func (s *TickStore) GetTick(_ context.Context, symbol string) (Tick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.ticks[symbol]
	if !ok {
		return Tick{}, errors.New("price not found")
	}
	return t, nil
}

// Snapshot assembles the BidAsk view for one evaluation from a tick
// source: the traded symbol's quote plus whichever conversion symbol
// quotes are available. Missing conversion quotes are left at zero;
// downstream sizing treats zero as "no rate" and falls back.
func Snapshot(ctx context.Context, src TickSource, symbol, baseConv, quoteConv string) (BidAsk, error) {
	t, err := src.GetTick(ctx, symbol)
	if err != nil {
		return BidAsk{}, err
	}
	ba := BidAsk{Bid: t.Bid, Ask: t.Ask}

	if baseConv != "" {
		if ct, err := src.GetTick(ctx, baseConv); err == nil {
			ba.BaseConversionBid = ct.Bid
			ba.BaseConversionAsk = ct.Ask
		}
	}
	if quoteConv != "" {
		if ct, err := src.GetTick(ctx, quoteConv); err == nil {
			ba.QuoteConversionBid = ct.Bid
			ba.QuoteConversionAsk = ct.Ask
		}
	}
	return ba, nil
}
