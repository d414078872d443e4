package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/drill/internal/practice"
	"github.com/abhisek/drill/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review <problem-id>",
	Short: "Record an answer and reschedule the problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		correct, _ := cmd.Flags().GetBool("correct")

		var at time.Time
		if raw, _ := cmd.Flags().GetString("at"); raw != "" {
			at, err = time.Parse(time.RFC3339, raw)
			if err != nil {
				return fmt.Errorf("invalid --at %q: expected RFC3339, e.g. 2025-03-01T09:00:00Z", raw)
			}
		}

		e, err := openEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		res, err := e.practice.Submit(cmd.Context(), practice.SubmitInput{
			ProblemID: id,
			Correct:   correct,
			At:        at,
		})
		if err != nil {
			return notFound(err, "problem", id)
		}

		out := cmd.OutOrStdout()
		verdict := "incorrect"
		if res.Review.Correct {
			verdict = "correct"
		}
		fmt.Fprintf(out, "Recorded review %d for problem %d (%s).\n", res.Review.ID, id, verdict)
		if res.ScheduleErr != nil {
			fmt.Fprintf(out, "Scheduling failed, due date unchanged: %v\n", res.ScheduleErr)
			return nil
		}
		fmt.Fprintf(out, "Next review: %s\n", formatDate(res.Due.DueDate))
		return nil
	},
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded reviews",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		problemID, _ := cmd.Flags().GetInt("problem")
		skip, _ := cmd.Flags().GetInt("skip")
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		var reviews []store.Review
		if problemID > 0 {
			reviews, err = e.store.ReviewRepo().ListByProblem(cmd.Context(), problemID)
		} else {
			reviews, err = e.store.ReviewRepo().List(cmd.Context(), skip, limit)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(reviews) == 0 {
			fmt.Fprintln(out, "No reviews found.")
			return nil
		}
		w := newTable(out, "ID", "Problem", "Answered", "Correct")
		for _, r := range reviews {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", r.ID, r.ProblemID, formatDate(r.CreatedDate), mark(r.Correct))
		}
		return w.Flush()
	},
}

var reviewDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a review without rescheduling its problem",
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

		if err := e.store.ReviewRepo().Delete(cmd.Context(), id); err != nil {
			return notFound(err, "review", id)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Review deleted.")
		return nil
	},
}

func init() {
	reviewCmd.Flags().Bool("correct", false, "The answer was correct")
	reviewCmd.Flags().Bool("incorrect", false, "The answer was incorrect")
	reviewCmd.Flags().String("at", "", "When the answer was given (RFC3339, default now)")
	reviewCmd.MarkFlagsMutuallyExclusive("correct", "incorrect")
	reviewCmd.MarkFlagsOneRequired("correct", "incorrect")

	reviewListCmd.Flags().Int("problem", 0, "Only list reviews of this problem")
	reviewListCmd.Flags().Int("skip", 0, "Number of reviews to skip")
	reviewListCmd.Flags().Int("limit", 100, "Maximum number of reviews to list")

	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewDeleteCmd)
}
