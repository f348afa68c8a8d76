// Package risk computes per-lot loss, position size and margin for one
// evaluation cycle. Everything here is pure call-and-return over the
// borrowed market snapshot; failures that would halt a strategy loop
// are downgraded to warnings with conservative results instead.
package risk

import (
	"github.com/rustyeddy/fxcore/currency"
	"github.com/rustyeddy/fxcore/diag"
	"github.com/rustyeddy/fxcore/indicators"
	"github.com/rustyeddy/fxcore/market"
	"github.com/rustyeddy/fxcore/symbol"
)

// LossInputs collects what MaxLossPerLot needs for one call.
type LossInputs struct {
	Account market.Account
	Symbol  string
	BidAsk  market.BidAsk

	// StopDistance is the intended stop-loss distance in price terms.
	// Zero means the strategy runs without an explicit stop and the
	// ATR fallback estimate is used instead.
	StopDistance float64

	// Rates, ATRPeriod and TimeframeMinutes feed the ATR fallback.
	Rates            market.Rates
	ATRPeriod        int
	TimeframeMinutes int

	// SpreadBetting accounts denominate loss per point of the quoted
	// price, so the quote-currency loss scales with the ask.
	SpreadBetting bool
}

// MaxLossPerLot estimates the account-currency loss of one lot hitting
// its stop. Conversions use a pair with QUOTE/ACCOUNT structure: the
// profit of a CHF account trading EURJPY needs JPY/CHF, obtained as
// 1/(CHF/JPY). When the account and quote currencies match, no
// conversion is needed at all.
//
// A non-positive conversion rate means a stale feed; the traded
// symbol's own quote substitutes as a last resort and a warning is
// emitted rather than failing the evaluation.
func MaxLossPerLot(in LossInputs, sink diag.Sink) float64 {
	loss := in.StopDistance * in.Account.ContractSize

	if in.StopDistance == 0 {
		atr, err := indicators.DailyATR(in.Rates, in.ATRPeriod, in.TimeframeMinutes)
		if err != nil {
			diag.Warn(sink, "stop distance is zero and the ATR fallback failed; loss estimate unavailable", diag.Fields{
				"symbol": in.Symbol,
				"error":  err.Error(),
			})
		}
		loss = atr * in.Account.ContractSize
	}

	if in.SpreadBetting {
		loss *= in.BidAsk.Ask
	}

	quote, err := symbol.Quote(in.Symbol)
	if err != nil {
		diag.Error(sink, "cannot resolve quote currency; loss left unconverted", diag.Fields{
			"symbol": in.Symbol,
			"error":  err.Error(),
		})
		return loss
	}

	if in.Account.Currency == quote {
		return loss
	}

	_, quoteConv, err := symbol.ConversionSymbols(in.Symbol, in.Account.Currency, sink)
	if err != nil || quoteConv == "" {
		diag.Error(sink, "no quote conversion symbol; order size calculation will not be accurate", diag.Fields{
			"account_currency": in.Account.Currency,
			"symbol":           in.Symbol,
		})
		return loss
	}

	convBase, err1 := symbol.Base(quoteConv)
	convQuote, err2 := symbol.Quote(quoteConv)
	if err1 != nil || err2 != nil {
		diag.Error(sink, "cannot parse quote conversion symbol; loss left unconverted", diag.Fields{
			"conversion_symbol": quoteConv,
		})
		return loss
	}

	// The deposit currency may carry a cent-account decoration
	// ("CHFc", "USDm"); the conversion symbol's codes are catalog
	// codes, so normalize before comparing.
	account := currency.Normalize(in.Account.Currency, sink).Code

	switch account {
	case convBase:
		// Account currency is the conversion base (a USD account
		// trading USDJPY): divide by the ask to buy the quote back.
		ask := in.BidAsk.QuoteConversionAsk
		if ask <= 0 {
			diag.Warn(sink, "non-positive conversion ask, substituting traded symbol ask", diag.Fields{
				"conversion_symbol": quoteConv,
				"ask":               ask,
			})
			ask = in.BidAsk.Ask
		}
		return loss / ask

	case convQuote:
		// Account currency is the conversion quote (a CHF account
		// trading EURUSD via USDCHF): straight multiplication by bid.
		bid := in.BidAsk.QuoteConversionBid
		if bid <= 0 {
			diag.Warn(sink, "non-positive conversion bid, substituting traded symbol bid", diag.Fields{
				"conversion_symbol": quoteConv,
				"bid":               bid,
			})
			bid = in.BidAsk.Bid
		}
		return loss * bid
	}

	diag.Error(sink, "conversion symbol does not relate account currency; order size calculation will not be accurate", diag.Fields{
		"account_currency": in.Account.Currency,
		"symbol":           in.Symbol,
	})
	return loss
}
