// Version command prints the CLI version.
package main

import (
	"github.com/spf13/cobra"
)

// version is the CLI version string, overridable at build time via
// -ldflags "-X main.version=...".
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("csvtable v" + version)
	},
}
