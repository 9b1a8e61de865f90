// Read command loads CSV rows from a local file and prints them.
package main

import (
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Read CSV rows from a local file",
	Long: `Read loads the given CSV file and prints its rows in order. An empty
file prints nothing; a missing file is an error.

Example:
  csvtable read data.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func runRead(cmd *cobra.Command, args []string) error {
	log, err := openHistory()
	if err != nil {
		return err
	}
	defer log.Close()

	var res opResult
	c := newComponent(&res, log)

	c.ReadFile(args[0])

	if err := res.outcome(); err != nil {
		return err
	}
	return printRows(cmd, res.rows)
}
