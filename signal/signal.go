// Package signal aggregates the trading intents one evaluation cycle
// produces. A Set is a bitmask over open/close/update intents per
// order kind; it is created fresh each cycle, handed to the execution
// bridge and discarded, never persisted.
package signal

import (
	"strings"

	"github.com/rustyeddy/fxcore/market"
)

// Signal is a single trading intent. The bit layout keeps the buy
// lanes in the low half-word and the sell lanes shifted up 16 bits,
// matching the wire values the execution bridge expects.
type Signal uint32

const (
	None Signal = 0

	OpenBuy         Signal = 0x00000001
	CloseBuy        Signal = 0x00000002
	UpdateBuy       Signal = 0x00000004
	OpenBuyLimit    Signal = 0x00000008
	CloseBuyLimit   Signal = 0x00000010
	UpdateBuyLimit  Signal = 0x00000020
	OpenBuyStop     Signal = 0x00000040
	CloseBuyStop    Signal = 0x00000080
	UpdateBuyStop   Signal = 0x00000100
	OpenSell        Signal = 0x00010000
	CloseSell       Signal = 0x00020000
	UpdateSell      Signal = 0x00040000
	OpenSellLimit   Signal = 0x00080000
	CloseSellLimit  Signal = 0x00100000
	UpdateSellLimit Signal = 0x00200000
	OpenSellStop    Signal = 0x00400000
	CloseSellStop   Signal = 0x00800000
	UpdateSellStop  Signal = 0x01000000
)

var names = []struct {
	sig  Signal
	name string
}{
	{OpenBuy, "open-buy"},
	{CloseBuy, "close-buy"},
	{UpdateBuy, "update-buy"},
	{OpenBuyLimit, "open-buy-limit"},
	{CloseBuyLimit, "close-buy-limit"},
	{UpdateBuyLimit, "update-buy-limit"},
	{OpenBuyStop, "open-buy-stop"},
	{CloseBuyStop, "close-buy-stop"},
	{UpdateBuyStop, "update-buy-stop"},
	{OpenSell, "open-sell"},
	{CloseSell, "close-sell"},
	{UpdateSell, "update-sell"},
	{OpenSellLimit, "open-sell-limit"},
	{CloseSellLimit, "close-sell-limit"},
	{UpdateSellLimit, "update-sell-limit"},
	{OpenSellStop, "open-sell-stop"},
	{CloseSellStop, "close-sell-stop"},
	{UpdateSellStop, "update-sell-stop"},
}

// Class groups signals by what they ask the bridge to do.
type Class int

const (
	Entry Class = iota
	Exit
	Update
)

var kindSignals = map[market.OrderKind][3]Signal{
	market.Buy:       {OpenBuy, CloseBuy, UpdateBuy},
	market.Sell:      {OpenSell, CloseSell, UpdateSell},
	market.BuyLimit:  {OpenBuyLimit, CloseBuyLimit, UpdateBuyLimit},
	market.SellLimit: {OpenSellLimit, CloseSellLimit, UpdateSellLimit},
	market.BuyStop:   {OpenBuyStop, CloseBuyStop, UpdateBuyStop},
	market.SellStop:  {OpenSellStop, CloseSellStop, UpdateSellStop},
}

// For maps an order kind and signal class to the corresponding signal.
// Unknown combinations map to None.
func For(kind market.OrderKind, class Class) Signal {
	sigs, ok := kindSignals[kind]
	if !ok || class < Entry || class > Update {
		return None
	}
	switch class {
	case Entry:
		return sigs[0]
	case Exit:
		return sigs[1]
	default:
		return sigs[2]
	}
}

const (
	entryMask  = OpenBuy | OpenBuyLimit | OpenBuyStop | OpenSell | OpenSellLimit | OpenSellStop
	exitMask   = CloseBuy | CloseBuyLimit | CloseBuyStop | CloseSell | CloseSellLimit | CloseSellStop
	updateMask = UpdateBuy | UpdateBuyLimit | UpdateBuyStop | UpdateSell | UpdateSellLimit | UpdateSellStop
)

// Set is the aggregated pending-signal bitmask for one evaluation.
// Add and Remove are idempotent. Mutual exclusion between OpenBuy and
// CloseBuy (and the sell equivalents) is a caller obligation enforced
// by the order flows, not by Add.
type Set struct {
	bits Signal
}

func (s *Set) Add(sig Signal)    { s.bits |= sig }
func (s *Set) Remove(sig Signal) { s.bits &^= sig }

func (s Set) Has(sig Signal) bool { return s.bits&sig != None }
func (s Set) Empty() bool         { return s.bits == None }

// Bits exposes the raw mask for the execution bridge.
func (s Set) Bits() uint32 { return uint32(s.bits) }

// FromBits reconstructs a set from the bridge's raw mask.
func FromBits(bits uint32) Set { return Set{bits: Signal(bits)} }

func (s Set) HasEntry() bool  { return s.bits&entryMask != None }
func (s Set) HasExit() bool   { return s.bits&exitMask != None }
func (s Set) HasUpdate() bool { return s.bits&updateMask != None }

func (s *Set) RemoveAllEntries() { s.bits &^= entryMask }
func (s *Set) RemoveAllExits()   { s.bits &^= exitMask }
func (s *Set) RemoveAllUpdates() { s.bits &^= updateMask }

func (s Set) String() string {
	if s.bits == None {
		return "none"
	}
	var parts []string
	for _, n := range names {
		if s.bits&n.sig != None {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
