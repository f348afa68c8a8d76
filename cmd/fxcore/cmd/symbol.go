package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxcore/symbol"
)

var symbolCmd = &cobra.Command{
	Use:   "symbol",
	Short: "Parse and normalize broker symbol names",
	Long: `Inspect broker symbol names.

Subcommands:
  parse       - Break a symbol into prefix, base, separator, quote and suffix
  normalize   - Reduce a symbol to its canonical six-character form
  conversion  - Find the symbols needed to convert profits to an account currency

Examples:
  fxcore symbol parse mEUR/USDx
  fxcore symbol normalize US500USD
  fxcore symbol conversion EURJPY --account AUD`,
}

var symbolParseCmd = &cobra.Command{
	Use:   "parse <symbol>",
	Short: "Break a symbol into its parts",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbolParse,
}

var symbolNormalizeCmd = &cobra.Command{
	Use:   "normalize <symbol>",
	Short: "Reduce a symbol to its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbolNormalize,
}

var symbolConversionCmd = &cobra.Command{
	Use:   "conversion <symbol>",
	Short: "Find the conversion symbols for an account currency",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbolConversion,
}

var accountCurrency string

func init() {
	rootCmd.AddCommand(symbolCmd)
	symbolCmd.AddCommand(symbolParseCmd)
	symbolCmd.AddCommand(symbolNormalizeCmd)
	symbolCmd.AddCommand(symbolConversionCmd)

	symbolConversionCmd.Flags().StringVarP(&accountCurrency, "account", "a", "USD", "account deposit currency")
}

func runSymbolParse(cmd *cobra.Command, args []string) error {
	p, err := symbol.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("prefix:    %q\n", p.Prefix)
	fmt.Printf("base:      %s\n", p.Base)
	fmt.Printf("separator: %q\n", p.Separator)
	fmt.Printf("quote:     %s\n", p.Quote)
	fmt.Printf("suffix:    %q\n", p.Suffix)
	return nil
}

func runSymbolNormalize(cmd *cobra.Command, args []string) error {
	n, err := symbol.Normalize(args[0])
	if err != nil {
		return err
	}
	fmt.Println(n)
	return nil
}

func runSymbolConversion(cmd *cobra.Command, args []string) error {
	base, quote, err := symbol.ConversionSymbols(args[0], accountCurrency, sink)
	if err != nil {
		return err
	}
	if base == "" && quote == "" {
		fmt.Println("no conversion needed")
		return nil
	}
	if base != "" {
		fmt.Printf("base conversion:  %s\n", base)
	}
	if quote != "" {
		fmt.Printf("quote conversion: %s\n", quote)
	}
	return nil
}
