// Package symbol decomposes broker instrument symbols into their
// semantic parts and derives the auxiliary conversion symbols needed to
// translate quote-currency P&L into the account currency.
//
// Broker symbol names are not standardized: the same market shows up as
// "EURUSD", "EUR/USD", "pEURUSDs" or "EURUSDm" depending on the feed.
// Parsing locates the two catalog currency codes inside the raw string
// and keeps whatever decoration surrounds them.
package symbol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rustyeddy/fxcore/currency"
	"github.com/rustyeddy/fxcore/diag"
)

var (
	ErrUnknownSymbol       = errors.New("unknown symbol")
	ErrSymbolTooShort      = errors.New("symbol too short")
	ErrNoConversionSymbols = errors.New("no conversion symbols")
)

// Parsed is a symbol broken into prefix, base currency, separator,
// quote currency and suffix. Concatenating the five parts reproduces
// the original symbol exactly.
type Parsed struct {
	Prefix    string
	Base      string
	Separator string
	Quote     string
	Suffix    string
}

func (p Parsed) String() string {
	return p.Prefix + p.Base + p.Separator + p.Quote + p.Suffix
}

// Parse locates the two catalog currency codes inside sym. The catalog
// is scanned in declaration order; the first code found is provisionally
// the base, and the second either becomes the quote or, if it occurs
// earlier in the string, swaps into the base slot. The tie-break order
// is load-bearing and must not be changed.
func Parse(sym string) (Parsed, error) {
	baseOffset, quoteOffset := -1, -1
	var base, quote string

	for _, rec := range currency.All() {
		offset := strings.Index(sym, rec.Code)
		if offset < 0 {
			continue
		}

		if baseOffset == -1 {
			baseOffset = offset
			base = rec.Code
			continue
		}

		if offset < baseOffset {
			// The first match was actually the quote currency.
			quoteOffset, quote = baseOffset, base
			baseOffset, base = offset, rec.Code
		} else {
			quoteOffset, quote = offset, rec.Code
		}
		break
	}

	if quoteOffset < 0 {
		return Parsed{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
	}

	prefixLen := baseOffset
	separatorLen := quoteOffset - len(base) - baseOffset
	suffixLen := len(sym) - len(quote) - quoteOffset

	if prefixLen < 0 || separatorLen < 0 || suffixLen < 0 {
		return Parsed{}, fmt.Errorf("%w: %q", ErrSymbolTooShort, sym)
	}

	return Parsed{
		Prefix:    sym[:baseOffset],
		Base:      base,
		Separator: sym[baseOffset+len(base) : quoteOffset],
		Quote:     quote,
		Suffix:    sym[quoteOffset+len(quote):],
	}, nil
}

// Normalize strips the prefix, separator and suffix and returns exactly
// the first three characters of the base and quote codes. For catalog
// codes longer than three characters (index pseudo-currencies such as
// "US500") this truncates, so "US500USD" normalizes to "US5USD".
// Downstream keys depend on the truncation.
func Normalize(sym string) (string, error) {
	p, err := Parse(sym)
	if err != nil {
		return "", err
	}
	return clip3(p.Base) + clip3(p.Quote), nil
}

func clip3(code string) string {
	if len(code) > 3 {
		return code[:3]
	}
	return code
}

// ConversionSymbols derives up to two auxiliary market symbols for
// converting P&L from the traded pair's currencies into the account
// currency: baseConv relates the base currency to the account currency
// and quoteConv relates the quote currency to it. Each is rebuilt with
// the traded symbol's own prefix, separator and suffix so it matches
// the broker's naming scheme. Finding either one is a success; only
// when no conventional pair links the account currency to either side
// does this fail with ErrNoConversionSymbols.
//
// When the account currency equals the quote currency no conversion is
// needed at all; callers should special-case that before calling.
func ConversionSymbols(sym, accountCurrency string, sink diag.Sink) (baseConv, quoteConv string, err error) {
	account := currency.Normalize(accountCurrency, sink).Code

	p, err := Parse(sym)
	if err != nil {
		return "", "", err
	}

	for _, pair := range currency.Pairs() {
		switch {
		case pair.Base == p.Base && pair.Quote == account:
			baseConv = p.Prefix + p.Base + p.Separator + account + p.Suffix
		case pair.Base == account && pair.Quote == p.Base:
			baseConv = p.Prefix + account + p.Separator + p.Base + p.Suffix
		}

		switch {
		case pair.Base == account && pair.Quote == p.Quote:
			quoteConv = p.Prefix + account + p.Separator + p.Quote + p.Suffix
		case pair.Base == p.Quote && pair.Quote == account:
			quoteConv = p.Prefix + p.Quote + p.Separator + account + p.Suffix
		}

		if baseConv != "" && quoteConv != "" {
			return baseConv, quoteConv, nil
		}
	}

	if baseConv != "" || quoteConv != "" {
		return baseConv, quoteConv, nil
	}

	return "", "", fmt.Errorf("%w: %s against %s", ErrNoConversionSymbols, sym, account)
}

// Prefix returns the broker decoration before the base currency.
func Prefix(sym string) (string, error) {
	p, err := Parse(sym)
	if err != nil {
		return "", err
	}
	return p.Prefix, nil
}

// Base returns the base currency code of a symbol.
func Base(sym string) (string, error) {
	p, err := Parse(sym)
	if err != nil {
		return "", err
	}
	return p.Base, nil
}

// Separator returns the decoration between the base and quote codes.
func Separator(sym string) (string, error) {
	p, err := Parse(sym)
	if err != nil {
		return "", err
	}
	return p.Separator, nil
}

// Quote returns the quote currency code of a symbol.
func Quote(sym string) (string, error) {
	p, err := Parse(sym)
	if err != nil {
		return "", err
	}
	return p.Quote, nil
}

// Suffix returns the broker decoration after the quote currency.
func Suffix(sym string) (string, error) {
	p, err := Parse(sym)
	if err != nil {
		return "", err
	}
	return p.Suffix, nil
}
