// Write command serializes rows to a CSV file, overwriting it.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write <file> [row ...]",
	Short: "Write rows to a CSV file, overwriting existing content",
	Long: `Write serializes the given rows (one argument per row, or stdin lines
when no rows are given) to the target file, one line terminator per row.
Rows are written verbatim: fields are not escaped. Use "csvtable escape"
to quote individual fields before assembling a row.

Example:
  csvtable write out.csv "name,age" "alice,30"
  cat rows.txt | csvtable write out.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWrite,
}

func runWrite(cmd *cobra.Command, args []string) error {
	path := args[0]
	rows := args[1:]

	if len(rows) == 0 {
		var err error
		rows, err = readStdinRows(cmd)
		if err != nil {
			return err
		}
	}

	log, err := openHistory()
	if err != nil {
		return err
	}
	defer log.Close()

	var res opResult
	c := newComponent(&res, log)

	c.WriteFile(path, rows)

	if err := res.outcome(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", len(rows), path)
	return nil
}

// readStdinRows collects rows from standard input, one per line.
func readStdinRows(cmd *cobra.Command) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rows from stdin: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "warning: writing an empty file")
	}
	return rows, nil
}
