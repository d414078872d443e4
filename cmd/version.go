package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/drill/internal/config"
	"github.com/abhisek/drill/internal/spacedrep"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, and with --verbose the resolved settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "drill", version)

		verbose, _ := cmd.Flags().GetBool("verbose")
		if !verbose {
			return nil
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "database:   %s\n", dbPath)
		fmt.Fprintf(out, "scheduler:  %s (available: %v)\n", cfg.Scheduler, spacedrep.Names())
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("verbose", false, "Also print the database path and scheduler")
}
