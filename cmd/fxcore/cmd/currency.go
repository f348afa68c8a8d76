package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxcore/currency"
)

var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "Look up currency and pair metadata",
	Long: `Look up ISO 4217 currency metadata and tradable pairs.

Examples:
  fxcore currency info EUR
  fxcore currency pairs`,
}

var currencyInfoCmd = &cobra.Command{
	Use:   "info <code>",
	Short: "Show a currency's metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runCurrencyInfo,
}

var currencyPairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "List the known tradable pairs",
	Args:  cobra.NoArgs,
	RunE:  runCurrencyPairs,
}

func init() {
	rootCmd.AddCommand(currencyCmd)
	currencyCmd.AddCommand(currencyInfoCmd)
	currencyCmd.AddCommand(currencyPairsCmd)
}

func runCurrencyInfo(cmd *cobra.Command, args []string) error {
	rec, err := currency.Strict(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("code:      %s\n", rec.Code)
	fmt.Printf("number:    %s\n", rec.Number)
	fmt.Printf("digits:    %d\n", rec.Digits)
	fmt.Printf("name:      %s\n", rec.Name)
	fmt.Printf("locations: %s\n", rec.Locations)
	return nil
}

func runCurrencyPairs(cmd *cobra.Command, args []string) error {
	for _, p := range currency.Pairs() {
		fmt.Printf("%s/%s\n", p.Base, p.Quote)
	}
	return nil
}
