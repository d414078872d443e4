package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/drill/internal/config"
)

// v holds flag, environment and default values for every command.
var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "drill",
	Short: "Spaced-repetition drills for systems performance arithmetic",
	Long: `drill generates practice questions (bytes to bits, RAM bandwidth,
arithmetic intensity, roofline) and schedules each problem for review with
a spaced-repetition strategy. Running drill without a subcommand starts
the practice TUI.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String(config.KeyDB, "", "Path to SQLite database file (overrides DRILL_DB env var)")
	pf.String(config.KeyScheduler, "", "Scheduling strategy: spaced_repetition or simple")
	pf.String(config.KeyLogLevel, "", "Log level: debug, info, warn, error")
	pf.String(config.KeyLogFormat, "", "Log format: text or json")
	bindFlags(v, pf.Lookup(config.KeyDB), pf.Lookup(config.KeyScheduler),
		pf.Lookup(config.KeyLogLevel), pf.Lookup(config.KeyLogFormat))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(problemCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(rescheduleCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(versionCmd)
}

// bindFlags binds each flag to the Viper key of the same name. Flags only
// override the environment when they are set explicitly.
func bindFlags(v *viper.Viper, flags ...*pflag.Flag) {
	for _, f := range flags {
		_ = v.BindPFlag(f.Name, f)
	}
}
