package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/fxcore/market"
)

func TestSignalBitValues(t *testing.T) {
	t.Parallel()

	// The raw values are the execution bridge's wire format and must
	// not drift.
	assert.Equal(t, Signal(0x00000001), OpenBuy)
	assert.Equal(t, Signal(0x00000002), CloseBuy)
	assert.Equal(t, Signal(0x00000004), UpdateBuy)
	assert.Equal(t, Signal(0x00000008), OpenBuyLimit)
	assert.Equal(t, Signal(0x00000100), UpdateBuyStop)
	assert.Equal(t, Signal(0x00010000), OpenSell)
	assert.Equal(t, Signal(0x00020000), CloseSell)
	assert.Equal(t, Signal(0x01000000), UpdateSellStop)

	// Sell lanes are the buy lanes shifted up a half-word.
	assert.Equal(t, OpenBuy<<16, OpenSell)
	assert.Equal(t, CloseBuy<<16, CloseSell)
	assert.Equal(t, UpdateBuyStop<<16, UpdateSellStop)
}

func TestFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OpenBuy, For(market.Buy, Entry))
	assert.Equal(t, CloseSell, For(market.Sell, Exit))
	assert.Equal(t, UpdateBuyLimit, For(market.BuyLimit, Update))
	assert.Equal(t, OpenSellStop, For(market.SellStop, Entry))
	assert.Equal(t, None, For(market.KindNone, Entry))
}

func TestSetAddRemove(t *testing.T) {
	t.Parallel()

	var s Set
	assert.True(t, s.Empty())

	s.Add(OpenBuy)
	s.Add(OpenBuy) // idempotent
	assert.True(t, s.Has(OpenBuy))
	assert.False(t, s.Has(OpenSell))
	assert.Equal(t, uint32(0x1), s.Bits())

	s.Add(CloseSell)
	assert.Equal(t, uint32(0x00020001), s.Bits())

	s.Remove(OpenBuy)
	s.Remove(OpenBuy) // idempotent
	assert.False(t, s.Has(OpenBuy))
	assert.True(t, s.Has(CloseSell))

	s.Remove(CloseSell)
	assert.True(t, s.Empty())
}

func TestSetClasses(t *testing.T) {
	t.Parallel()

	var s Set
	s.Add(OpenBuy)
	s.Add(CloseSell)
	s.Add(UpdateSell)

	assert.True(t, s.HasEntry())
	assert.True(t, s.HasExit())
	assert.True(t, s.HasUpdate())

	s.RemoveAllEntries()
	assert.False(t, s.HasEntry())
	assert.True(t, s.HasExit())

	s.RemoveAllExits()
	assert.False(t, s.HasExit())
	assert.True(t, s.HasUpdate())

	s.RemoveAllUpdates()
	assert.True(t, s.Empty())
}

func TestFromBits(t *testing.T) {
	t.Parallel()

	s := FromBits(0x00020001)
	assert.True(t, s.Has(OpenBuy))
	assert.True(t, s.Has(CloseSell))
	assert.Equal(t, uint32(0x00020001), s.Bits())
}

func TestSetString(t *testing.T) {
	t.Parallel()

	var s Set
	assert.Equal(t, "none", s.String())

	s.Add(OpenBuy)
	assert.Equal(t, "open-buy", s.String())

	s.Add(CloseSell)
	assert.Equal(t, "open-buy|close-sell", s.String())
}
