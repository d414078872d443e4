package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show problems due for review now",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		ps, err := e.store.ProblemRepo().ListDue(ctx, time.Now())
		if err != nil {
			return err
		}
		dues, err := e.store.DueRepo().All(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(ps) == 0 {
			fmt.Fprintln(out, "No problems due. Good job.")
			return nil
		}

		fmt.Fprintf(out, "%d problems due:\n\n", len(ps))
		w := newTable(out, "ID", "Kind", "Due")
		for _, p := range ps {
			fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, dueColumn(dues, p.ID))
		}
		return w.Flush()
	},
}
