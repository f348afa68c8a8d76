package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxcore/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query recorded decisions",
	Long: `Query decision records from a SQLite journal.

Examples:
  fxcore journal instance 3 --db ./fxcore.sqlite`,
}

var journalInstanceCmd = &cobra.Command{
	Use:   "instance <id>",
	Short: "List decisions recorded for an instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalInstance,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalInstanceCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./fxcore.sqlite", "path to SQLite journal DB")
}

func runJournalInstance(cmd *cobra.Command, args []string) error {
	instanceID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("instance id: %w", err)
	}

	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ByInstance(cmd.Context(), instanceID)
	if err != nil {
		return fmt.Errorf("query decisions: %w", err)
	}

	for _, d := range recs {
		fmt.Printf("%s  %s  %s  lots=%.2f entry=%.5f stop=%.5f take=%.5f  %s\n",
			d.BarTime.Format("2006-01-02 15:04"), d.Symbol, d.Signals,
			d.Lots, d.EntryPrice, d.BrokerStop, d.BrokerTake, d.Reason)
	}
	return nil
}
