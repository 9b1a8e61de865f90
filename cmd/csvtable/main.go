// Package main provides the csvtable CLI: fetch CSV data over HTTP or
// from local files, look up cells, write rows back, and list the
// operation history.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
