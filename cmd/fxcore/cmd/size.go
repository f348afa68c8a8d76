package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxcore/market"
	"github.com/rustyeddy/fxcore/risk"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Compute a risk-based position size",
	Long: `Compute the lot size that risks a fixed percentage of account equity,
given the worst-case loss one lot of the instrument can produce.

Example:
  fxcore size --equity 10000 --risk 1 --max-loss 50`,
	Args: cobra.NoArgs,
	RunE: runSize,
}

var marginCmd = &cobra.Command{
	Use:   "margin",
	Short: "Compute the margin a position would require",
	Long: `Compute the margin required to hold a position, converting through
the account currency when the instrument is not denominated in it.

Example:
  fxcore margin EURUSD --lots 0.5 --bid 1.1000 --ask 1.1002`,
	Args: cobra.ExactArgs(1),
	RunE: runMargin,
}

var (
	sizeEquity  float64
	sizeRisk    float64
	sizeMaxLoss float64

	marginAccount  string
	marginLots     float64
	marginBid      float64
	marginAsk      float64
	marginBaseBid  float64
	marginBaseAsk  float64
	marginQuoteBid float64
	marginQuoteAsk float64
	marginLeverage float64
	marginContract float64
	marginSell     bool
)

func init() {
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(marginCmd)

	sizeCmd.Flags().Float64Var(&sizeEquity, "equity", 0, "account equity")
	sizeCmd.Flags().Float64Var(&sizeRisk, "risk", 1, "risk per trade, percent of equity")
	sizeCmd.Flags().Float64Var(&sizeMaxLoss, "max-loss", 0, "worst-case loss per lot in account currency")
	sizeCmd.MarkFlagRequired("equity")
	sizeCmd.MarkFlagRequired("max-loss")

	marginCmd.Flags().StringVarP(&marginAccount, "account", "a", "USD", "account deposit currency")
	marginCmd.Flags().Float64Var(&marginLots, "lots", 0.01, "position size in lots")
	marginCmd.Flags().Float64Var(&marginBid, "bid", 0, "instrument bid")
	marginCmd.Flags().Float64Var(&marginAsk, "ask", 0, "instrument ask")
	marginCmd.Flags().Float64Var(&marginBaseBid, "base-conv-bid", 0, "base conversion bid")
	marginCmd.Flags().Float64Var(&marginBaseAsk, "base-conv-ask", 0, "base conversion ask")
	marginCmd.Flags().Float64Var(&marginQuoteBid, "quote-conv-bid", 0, "quote conversion bid")
	marginCmd.Flags().Float64Var(&marginQuoteAsk, "quote-conv-ask", 0, "quote conversion ask")
	marginCmd.Flags().Float64Var(&marginLeverage, "leverage", 100, "account leverage")
	marginCmd.Flags().Float64Var(&marginContract, "contract-size", 100000, "units per lot")
	marginCmd.Flags().BoolVar(&marginSell, "sell", false, "price a sell instead of a buy")
}

func runSize(cmd *cobra.Command, args []string) error {
	acct := market.Account{Equity: sizeEquity}
	lots := risk.PositionSize(acct, sizeRisk, sizeMaxLoss)
	fmt.Printf("%.2f\n", lots)
	return nil
}

func runMargin(cmd *cobra.Command, args []string) error {
	acct := market.Account{
		Currency:     marginAccount,
		Leverage:     marginLeverage,
		ContractSize: marginContract,
	}
	ba := market.BidAsk{
		Bid:                marginBid,
		Ask:                marginAsk,
		BaseConversionBid:  marginBaseBid,
		BaseConversionAsk:  marginBaseAsk,
		QuoteConversionBid: marginQuoteBid,
		QuoteConversionAsk: marginQuoteAsk,
	}
	kind := market.Buy
	if marginSell {
		kind = market.Sell
	}
	required := risk.MarginRequired(acct, args[0], ba, kind, marginLots, sink)
	if required == 0 {
		return fmt.Errorf("margin for %s could not be determined", args[0])
	}
	fmt.Printf("%.2f %s\n", required, marginAccount)
	return nil
}
