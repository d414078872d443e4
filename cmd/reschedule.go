package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/drill/internal/spacedrep"
)

var rescheduleCmd = &cobra.Command{
	Use:   "reschedule",
	Short: "Recompute every due date with a scheduling strategy",
	Long: "Recompute the due date of every reviewed problem from its full review history.\n" +
		"Strategies: " + strings.Join(spacedrep.Names(), ", "),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		// --scheduler is a persistent flag, so it is already resolved into cfg.
		n, err := e.practice.Reschedule(cmd.Context(), e.cfg.Scheduler)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rescheduled %d problems with %s.\n", n, e.cfg.Scheduler)
		return nil
	},
}
