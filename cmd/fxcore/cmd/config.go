package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/fxcore/config"
)

var configCmd = &cobra.Command{
	Use:   "config <file>",
	Short: "Load and validate an instance configuration",
	Long: `Load an instance configuration from a YAML or JSON file, validate it
and print the effective settings.

Example:
  fxcore config instance.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(args[0])
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
