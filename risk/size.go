package risk

import (
	"math"

	"github.com/rustyeddy/fxcore/market"
)

// MinLots is the smallest position size the supported brokers accept.
const MinLots = 0.01

// PositionSize converts a risk percentage of equity into lots given
// the per-lot loss estimate. With compounding disabled the frozen
// original-equity snapshot replaces live equity so position sizes stay
// constant as the account grows. Never returns less than MinLots.
func PositionSize(acct market.Account, riskPercent, maxLossPerLot float64) float64 {
	equity := acct.Equity
	if acct.DisableCompounding {
		equity = acct.OriginalEquity
	}

	lots := 0.01 * riskPercent * equity / maxLossPerLot
	return math.Max(MinLots, lots)
}
