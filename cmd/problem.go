package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/drill/internal/problems"
	"github.com/abhisek/drill/internal/store"
)

var problemCmd = &cobra.Command{
	Use:   "problem",
	Short: "Manage problems",
}

var problemAddCmd = &cobra.Command{
	Use:   "add <kind>",
	Short: "Add a problem of the given kind",
	Long:  "Add a problem. Known kinds: " + strings.Join(problems.Kinds(), ", "),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		if !problems.IsKnown(kind) {
			return fmt.Errorf("unknown problem kind %q (valid: %s)", kind, strings.Join(problems.Kinds(), ", "))
		}

		e, err := openEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		p, err := e.store.ProblemRepo().Create(cmd.Context(), kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added problem %d (%s). It is due now.\n", p.ID, p.Name)
		return nil
	},
}

var problemKindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the problem kinds that can be added",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range problems.Kinds() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
	},
}

var problemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List problems with their due dates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		suspendedOnly, _ := cmd.Flags().GetBool("suspended")

		e, err := openEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		var ps []store.Problem
		if suspendedOnly {
			ps, err = e.store.ProblemRepo().ListSuspended(ctx)
		} else {
			ps, err = e.store.ProblemRepo().List(ctx)
		}
		if err != nil {
			return err
		}
		dues, err := e.store.DueRepo().All(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(ps) == 0 {
			fmt.Fprintln(out, "No problems found.")
			return nil
		}

		w := newTable(out, "ID", "Kind", "Created", "Due", "Suspended")
		for _, p := range ps {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				p.ID, p.Name, formatDate(p.CreatedDate), dueColumn(dues, p.ID), suspendedColumn(p))
		}
		return w.Flush()
	},
}

var problemSuspendCmd = &cobra.Command{
	Use:   "suspend <id>",
	Short: "Exclude a problem from practice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var reason *string
		if cmd.Flags().Changed("reason") {
			r, _ := cmd.Flags().GetString("reason")
			reason = &r
		}

		e, err := openEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		p, err := e.store.ProblemRepo().Suspend(cmd.Context(), id, reason)
		if err != nil {
			return notFound(err, "problem", id)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Suspended problem %d (%s).\n", p.ID, p.Name)
		return nil
	},
}

var problemUnsuspendCmd = &cobra.Command{
	Use:   "unsuspend <id>",
	Short: "Return a suspended problem to practice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		p, err := e.store.ProblemRepo().Unsuspend(cmd.Context(), id)
		if err != nil {
			return notFound(err, "problem", id)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Unsuspended problem %d (%s).\n", p.ID, p.Name)
		return nil
	},
}

var problemDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a problem with its reviews and due date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")

		if !force && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
			fmt.Sprintf("Delete problem %d and all its reviews? (y/N): ", id)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		e, err := openEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.ProblemRepo().Delete(cmd.Context(), id); err != nil {
			return notFound(err, "problem", id)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Problem deleted.")
		return nil
	},
}

func init() {
	problemListCmd.Flags().Bool("suspended", false, "Only list suspended problems")
	problemSuspendCmd.Flags().String("reason", "", "Why the problem is suspended")
	problemDeleteCmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	problemCmd.AddCommand(problemAddCmd)
	problemCmd.AddCommand(problemKindsCmd)
	problemCmd.AddCommand(problemListCmd)
	problemCmd.AddCommand(problemSuspendCmd)
	problemCmd.AddCommand(problemUnsuspendCmd)
	problemCmd.AddCommand(problemDeleteCmd)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// notFound rewrites store.ErrNotFound into a message naming the entity.
func notFound(err error, what string, id int) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%s %d not found", what, id)
	}
	return err
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}

func dueColumn(dues map[int]store.Due, id int) string {
	d, ok := dues[id]
	if !ok {
		return "now"
	}
	return formatDate(d.DueDate)
}

func suspendedColumn(p store.Problem) string {
	if !p.Suspended {
		return ""
	}
	if p.SuspendReason != nil && *p.SuspendReason != "" {
		return "yes: " + *p.SuspendReason
	}
	return "yes"
}
