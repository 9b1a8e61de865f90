// History command lists recorded operations, newest first.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyFlagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded operations, newest first",
	Long: `History prints one line per recorded read or write: timestamp,
operation, status, row count, source, and the surfaced message for
failures.

Example:
  csvtable history --limit 10`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 20, "maximum entries to list (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	log, err := openHistory()
	if err != nil {
		return err
	}
	defer log.Close()

	entries, err := log.List(historyFlagLimit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if flagJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal history: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-10s  %-6s  %4d rows  %s",
			e.CreatedAt.Format(time.RFC3339), e.Op, e.Status, e.Rows, e.Source)
		if e.Message != "" {
			line += "  (" + e.Message + ")"
		}
		cmd.Println(line)
	}
	return nil
}
