// Fetch command reads CSV data from a URL and prints the rows.
package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Fetch CSV rows from a URL",
	Long: `Fetch performs an HTTP GET against the given URL (or the configured
default_url) and prints the response rows in order. An empty response
body is an error.

Example:
  csvtable fetch https://example.com/sheet.csv
  csvtable fetch --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	rawURL := cfg.DefaultURL
	if len(args) == 1 {
		rawURL = args[0]
	}
	if rawURL == "" {
		return errors.New("no URL given and default_url is not configured")
	}

	log, err := openHistory()
	if err != nil {
		return err
	}
	defer log.Close()

	var res opResult
	c := newComponent(&res, log)

	<-c.ReadURL(cmd.Context(), rawURL)

	if err := res.outcome(); err != nil {
		return err
	}
	return printRows(cmd, res.rows)
}
