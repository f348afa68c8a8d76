package risk

import (
	"github.com/rustyeddy/fxcore/currency"
	"github.com/rustyeddy/fxcore/diag"
	"github.com/rustyeddy/fxcore/market"
	"github.com/rustyeddy/fxcore/symbol"
)

// MarginRequired computes the account-currency margin a new order of
// lots would reserve. The conversion ladder runs: account==base needs
// no rate; account==quote uses the traded symbol's ask (buys) or bid
// (sells); otherwise whichever conversion rate is available and
// positive, base-conversion preferred.
//
// Returns 0 with an error event when no applicable rate exists.
// Callers must treat 0 as "margin protection unavailable", not as a
// free trade.
func MarginRequired(acct market.Account, sym string, ba market.BidAsk, kind market.OrderKind, lots float64, sink diag.Sink) float64 {
	base, err1 := symbol.Base(sym)
	quote, err2 := symbol.Quote(sym)
	if err1 != nil || err2 != nil {
		diag.Error(sink, "cannot parse trade symbol; margin protection is not active", diag.Fields{
			"symbol": sym,
		})
		return 0
	}

	// Cent-account deposit currencies ("USDm", "EURc") compare against
	// catalog codes below, so normalize once up front.
	account := currency.Normalize(acct.Currency, sink).Code

	baseConv, quoteConv, _ := symbol.ConversionSymbols(sym, acct.Currency, sink)

	var convBid, convAsk float64
	var convBase, convQuote string
	if ba.BaseConversionBid > 0 && ba.BaseConversionAsk > 0 && baseConv != "" {
		convBid, convAsk = ba.BaseConversionBid, ba.BaseConversionAsk
		convBase, _ = symbol.Base(baseConv)
		convQuote, _ = symbol.Quote(baseConv)
	} else if ba.QuoteConversionBid > 0 && ba.QuoteConversionAsk > 0 && quoteConv != "" {
		convBid, convAsk = ba.QuoteConversionBid, ba.QuoteConversionAsk
		convBase, _ = symbol.Base(quoteConv)
		convQuote, _ = symbol.Quote(quoteConv)
	}

	notionalPerRate := lots * acct.ContractSize / acct.Leverage

	if account == base {
		return notionalPerRate
	}

	if account == quote {
		if kind.IsBuySide() {
			return notionalPerRate * ba.Ask
		}
		if kind.IsSellSide() {
			return notionalPerRate * ba.Bid
		}
	}

	if account == convBase && convAsk > 0 {
		return notionalPerRate * convAsk
	}
	if account == convQuote && convBid > 0 {
		return notionalPerRate * convBid
	}

	diag.Error(sink, "no conversion rate for margin; margin protection is not active", diag.Fields{
		"account_currency": acct.Currency,
		"symbol":           sym,
	})
	return 0
}

// HasEnoughFreeMargin checks whether reserving proposedMargin on top
// of the current margin leaves the worst-case equity clear of the
// broker stop-out level. Worst case assumes this trade's risk and all
// open-trade risk realize at once.
func HasEnoughFreeMargin(acct market.Account, riskPercent, proposedMargin float64) bool {
	required := acct.MarginUsed + proposedMargin
	worstCaseEquity := acct.Balance - acct.Balance*(riskPercent+acct.TotalOpenTradeRiskPercent)/100

	return worstCaseEquity > required*acct.StopoutPercent/100
}
