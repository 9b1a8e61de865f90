// Escape command quotes fields for safe embedding in a CSV row.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/csvtable/pkg/table"
)

var escapeCmd = &cobra.Command{
	Use:   "escape <field> [field ...]",
	Short: "Escape fields for embedding in a CSV row",
	Long: `Escape prints each field quoted when it contains a comma, a newline,
or a quote character, with embedded quotes doubled. Fields that need no
quoting pass through unchanged.

Example:
  csvtable escape 'a,b' plain
  "a,b"
  plain`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, field := range args {
			cmd.Println(table.EscapeField(field))
		}
	},
}
