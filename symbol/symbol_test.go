package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/fxcore/diag"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sym  string
		want Parsed
	}{
		{"bare", "EURUSD", Parsed{Base: "EUR", Quote: "USD"}},
		{"separator", "EUR/USD", Parsed{Base: "EUR", Separator: "/", Quote: "USD"}},
		{"prefix and suffix", "pEURUSDs", Parsed{Prefix: "p", Base: "EUR", Quote: "USD", Suffix: "s"}},
		{"cent suffix", "EURUSDm", Parsed{Base: "EUR", Quote: "USD", Suffix: "m"}},
		{"everything", "mEUR/JPYx", Parsed{Prefix: "m", Base: "EUR", Separator: "/", Quote: "JPY", Suffix: "x"}},
		// AUD is declared before EUR; the earlier string offset must win
		// the base slot.
		{"base found second", "EURAUD", Parsed{Base: "EUR", Quote: "AUD"}},
		{"index pseudo currency", "US500USD", Parsed{Base: "US500", Quote: "USD"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.sym)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.sym, got.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse("123456")
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	_, err = Parse("EURxyz")
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	// SGD and DKK overlap on the shared D.
	_, err = Parse("SGDKK")
	assert.ErrorIs(t, err, ErrSymbolTooShort)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sym  string
		want string
	}{
		{"EURUSD", "EURUSD"},
		{"pEUR/USDs", "EURUSD"},
		{"EURUSDm", "EURUSD"},
		// Pseudo-currency codes longer than three characters truncate.
		{"US500USD", "US5USD"},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.sym)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestConversionSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sym       string
		account   string
		baseConv  string
		quoteConv string
	}{
		{"cross to aud", "EURJPY", "AUD", "EURAUD", "AUDJPY"},
		{"decorated cross", "mEUR/JPYx", "AUD", "mEUR/AUDx", "mAUD/JPYx"},
		{"usd account major", "EURJPY", "USD", "EURUSD", "USDJPY"},
		{"cent account currency", "EURJPY", "USDm", "EURUSD", "USDJPY"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			baseConv, quoteConv, err := ConversionSymbols(tt.sym, tt.account, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.baseConv, baseConv)
			assert.Equal(t, tt.quoteConv, quoteConv)
		})
	}
}

func TestConversionSymbolsPartial(t *testing.T) {
	t.Parallel()

	// USDJPY against a USD account: the base is already the account
	// currency, so only the quote side resolves, and one side is enough.
	baseConv, quoteConv, err := ConversionSymbols("USDJPY", "USD", nil)
	require.NoError(t, err)
	assert.Empty(t, baseConv)
	assert.Equal(t, "USDJPY", quoteConv)
}

func TestConversionSymbolsNone(t *testing.T) {
	t.Parallel()

	col := &diag.Collector{}
	_, _, err := ConversionSymbols("EURUSD", "ZWD", col)
	assert.ErrorIs(t, err, ErrNoConversionSymbols)
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	sym := "pEUR/USDs"

	prefix, err := Prefix(sym)
	require.NoError(t, err)
	assert.Equal(t, "p", prefix)

	base, err := Base(sym)
	require.NoError(t, err)
	assert.Equal(t, "EUR", base)

	sep, err := Separator(sym)
	require.NoError(t, err)
	assert.Equal(t, "/", sep)

	quote, err := Quote(sym)
	require.NoError(t, err)
	assert.Equal(t, "USD", quote)

	suffix, err := Suffix(sym)
	require.NoError(t, err)
	assert.Equal(t, "s", suffix)
}
