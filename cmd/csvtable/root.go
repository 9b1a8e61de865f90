// Root command for the csvtable CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/csvtable/internal/paths"
	"github.com/mesh-intelligence/csvtable/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// cfg holds the configuration loaded by PersistentPreRunE; all
// subcommands read from it.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:   "csvtable",
	Short: "csvtable fetches, inspects, and writes CSV line data",
	Long: `csvtable reads CSV documents over HTTP or from local files, exposes
their rows for cell lookup, and writes row sequences back to CSV files.
Every operation is recorded in a local history database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "escape" {
			return nil
		}

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}

		loaded, err := loadConfig(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the history database (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(cellCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(escapeCmd)
	rootCmd.AddCommand(historyCmd)
}

// resolveDataDir returns the data directory following the precedence
// chain: --data-dir flag > config data_dir > CSVTABLE_DATA_DIR env >
// platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cfg.DataDir)
}
