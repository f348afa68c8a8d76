// Package currency is the static reference catalog for currency codes
// and conventional pair quotings. The tables never change at runtime,
// so they can be shared read-only across any number of evaluations.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rustyeddy/fxcore/diag"
)

var ErrInvalidCurrency = errors.New("invalid currency")

var byCode = func() map[string]Record {
	m := make(map[string]Record, len(records))
	for _, r := range records {
		m[r.Code] = r
	}
	return m
}()

// All returns the catalog records in declaration order. The slice is
// shared; callers must not modify it.
func All() []Record {
	return records
}

// Pairs returns the conventional pair table in declaration order. The
// slice is shared; callers must not modify it.
func Pairs() []Pair {
	return pairs
}

// Lookup finds the record for an exact currency code.
func Lookup(code string) (Record, bool) {
	r, ok := byCode[code]
	return r, ok
}

// Strict resolves an exact code without the USD fallback. Use it when
// an unrecognized code should be surfaced rather than normalized away.
func Strict(code string) (Record, error) {
	if r, ok := byCode[code]; ok {
		return r, nil
	}
	return Record{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
}

// Normalize maps a broker-reported currency string onto a catalog
// record. Brokers decorate codes with cent/micro account markers
// ("USDm", "EURc"), so the match is by catalog code occurring inside
// the candidate. An unrecognized candidate falls back to USD with a
// warning; this happens legitimately on cent accounts and is not an
// error.
func Normalize(candidate string, sink diag.Sink) Record {
	for _, r := range records {
		if strings.Contains(candidate, r.Code) {
			return r
		}
	}

	diag.Warn(sink, fmt.Sprintf("%q is not a recognized currency, defaulting to USD; this may occur when using cent accounts on some brokers", candidate), diag.Fields{
		"currency": candidate,
	})
	return byCode["USD"]
}

// Info resolves a currency to its full record, normalizing the code
// first the way the legacy call surface did.
func Info(code string, sink diag.Sink) (Record, error) {
	r := Normalize(code, sink)
	if rec, ok := byCode[r.Code]; ok {
		return rec, nil
	}
	return Record{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
}

// Number returns the ISO numeric code for a currency.
func Number(code string, sink diag.Sink) (string, error) {
	r, err := Info(code, sink)
	if err != nil {
		return "", err
	}
	return r.Number, nil
}

// Digits returns the number of digits after the decimal separator.
func Digits(code string, sink diag.Sink) (int, error) {
	r, err := Info(code, sink)
	if err != nil {
		return 0, err
	}
	return r.Digits, nil
}

// Name returns the display name for a currency.
func Name(code string, sink diag.Sink) (string, error) {
	r, err := Info(code, sink)
	if err != nil {
		return "", err
	}
	return r.Name, nil
}

// Locations returns the locations where a currency is used.
func Locations(code string, sink diag.Sink) (string, error) {
	r, err := Info(code, sink)
	if err != nil {
		return "", err
	}
	return r.Locations, nil
}
