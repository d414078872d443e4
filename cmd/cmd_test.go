package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drill/internal/analytics"
)

// resetFlags restores every flag to its default so executions don't leak
// into each other through the shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestProblemAndReviewFlow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "drill.db")

	out, err := execute(t, "", "problem", "add", "bytes2bits", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Added problem 1 (bytes2bits)")

	_, err = execute(t, "", "problem", "add", "sorting", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown problem kind")

	out, err = execute(t, "", "due", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "1 problems due")
	assert.Contains(t, out, "bytes2bits")

	at := time.Now().UTC().Truncate(time.Second)
	out, err = execute(t, "", "review", "1", "--correct", "--at", at.Format(time.RFC3339), "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded review 1 for problem 1 (correct)")
	assert.Contains(t, out, "Next review: "+formatDate(at.Add(6*24*time.Hour)))

	out, err = execute(t, "", "due", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No problems due")

	out, err = execute(t, "", "review", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "✓")

	out, err = execute(t, "", "reschedule", "--scheduler", "simple", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Rescheduled 1 problems with simple.")

	out, err = execute(t, "", "stats", "--json", "--db", db)
	require.NoError(t, err)
	var report analytics.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Summary.TotalProblems)
	assert.Equal(t, 1, report.Summary.TotalReviews)
	assert.Equal(t, 100.0, report.Summary.OverallAccuracy)
}

func TestReviewFlagValidation(t *testing.T) {
	db := filepath.Join(t.TempDir(), "drill.db")
	_, err := execute(t, "", "problem", "add", "roofline", "--db", db)
	require.NoError(t, err)

	_, err = execute(t, "", "review", "1", "--db", db)
	assert.Error(t, err)

	_, err = execute(t, "", "review", "1", "--correct", "--incorrect", "--db", db)
	assert.Error(t, err)

	_, err = execute(t, "", "review", "1", "--correct", "--at", "yesterday", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RFC3339")

	_, err = execute(t, "", "review", "7", "--incorrect", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "problem 7 not found")
}

func TestSuspendAndDelete(t *testing.T) {
	db := filepath.Join(t.TempDir(), "drill.db")
	_, err := execute(t, "", "problem", "add", "ram_bandwidth", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "", "problem", "suspend", "1", "--reason", "too easy", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Suspended problem 1")

	out, err = execute(t, "", "problem", "list", "--suspended", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "yes: too easy")

	out, err = execute(t, "", "due", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No problems due")

	out, err = execute(t, "", "problem", "unsuspend", "1", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Unsuspended problem 1")

	out, err = execute(t, "n\n", "problem", "delete", "1", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")

	out, err = execute(t, "y\n", "problem", "delete", "1", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Problem deleted.")

	_, err = execute(t, "", "problem", "delete", "1", "-f", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "problem 1 not found")
}

func TestUnknownScheduler(t *testing.T) {
	db := filepath.Join(t.TempDir(), "drill.db")
	_, err := execute(t, "", "due", "--scheduler", "leitner", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduler")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "drill (devel)\n", out)
}

func TestVersionVerbose(t *testing.T) {
	db := filepath.Join(t.TempDir(), "drill.db")
	out, err := execute(t, "", "version", "--verbose", "--db", db, "--scheduler", "simple")
	require.NoError(t, err)
	assert.Contains(t, out, "database:   "+db)
	assert.Contains(t, out, "scheduler:  simple")
}
