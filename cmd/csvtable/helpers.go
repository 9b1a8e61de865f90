// Shared helpers for csvtable CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/csvtable/internal/component"
	"github.com/mesh-intelligence/csvtable/internal/fetch"
	"github.com/mesh-intelligence/csvtable/internal/history"
)

// opResult captures the single event a component operation fires.
type opResult struct {
	rows   []string
	errMsg string
}

// newComponent builds a component whose handlers capture into res and
// whose operations are recorded in rec. rec may be nil.
func newComponent(res *opResult, rec component.Recorder) *component.Component {
	return component.New(component.Options{
		Fetcher: fetch.New(cfg.HTTPTimeout),
		OnData: func(rows []string) {
			res.rows = rows
		},
		OnError: func(msg string) {
			res.errMsg = msg
		},
		RequestPermission: func() {
			fmt.Fprintln(os.Stderr, "write permission missing; grant write access to the target directory and retry")
		},
		History: rec,
	})
}

// openHistory opens the history log in the resolved data directory. The
// caller must Close it.
func openHistory() (*history.Log, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return history.Open(dataDir)
}

// outcome converts a captured result into a command error: the surfaced
// message when the error channel fired, nil otherwise.
func (r *opResult) outcome() error {
	if r.errMsg != "" {
		return errors.New(r.errMsg)
	}
	return nil
}

// printRows writes rows one per line, or as a JSON array with --json.
func printRows(cmd *cobra.Command, rows []string) error {
	if flagJSON {
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal rows: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}
	for _, row := range rows {
		cmd.Println(row)
	}
	return nil
}
