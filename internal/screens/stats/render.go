package stats

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/drill/internal/analytics"
	"github.com/abhisek/drill/internal/spacedrep"
	"github.com/abhisek/drill/internal/ui/components"
	"github.com/abhisek/drill/internal/ui/theme"
)

// Render draws a report as a summary block followed by one line per
// problem. It is shared by the stats screen and the stats command.
func Render(report *analytics.Report, width int) string {
	if report == nil {
		return ""
	}
	sum := report.Summary
	inner := min(max(width-4, 20), 72)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Summary"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Problems: %d    Reviews: %d    Average ease: %.2f",
		sum.TotalProblems, sum.TotalReviews, sum.AverageEaseFactor)))
	b.WriteString("\n\n")
	b.WriteString(components.NewAccuracyBar("Accuracy", sum.OverallAccuracy, sum.TotalReviews, inner).View())
	b.WriteString("\n\n")

	b.WriteString(strings.Join([]string{
		theme.Overdue.Render(fmt.Sprintf("overdue %d", sum.ProblemsOverdue)),
		theme.DueSoon.Render(fmt.Sprintf("today %d", sum.ProblemsDueToday)),
		theme.DueSoon.Render(fmt.Sprintf("this week %d", sum.ProblemsDueThisWeek)),
		theme.DueLater.Render(fmt.Sprintf("this month %d", sum.ProblemsDueThisMonth)),
	}, theme.Muted.Render("  ·  ")))
	b.WriteString("\n\n")

	if len(report.Problems) == 0 {
		b.WriteString(theme.Hint.Render("No problems yet. Add one with `drill problem add <kind>`."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(theme.Title.Render("Problems"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", inner)))
	b.WriteString("\n")
	for _, p := range report.Problems {
		b.WriteString(renderRow(p))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(p analytics.ProblemAnalytics) string {
	name := fmt.Sprintf("#%-4d %-22s", p.ProblemID, p.ProblemName)
	score := fmt.Sprintf("%3d/%-3d", p.CorrectReviews, p.TotalReviews)
	ease := fmt.Sprintf("ease %.2f", p.EaseFactor)
	return fmt.Sprintf("%s %s  %s  %s",
		theme.Body.Render(name),
		theme.Muted.Render(score),
		theme.Muted.Render(ease),
		dueLabel(p))
}

func dueLabel(p analytics.ProblemAnalytics) string {
	if p.DueDate == nil {
		return theme.DueSoon.Render("not scheduled")
	}
	switch p.Bucket {
	case spacedrep.DueOverdue:
		return theme.Overdue.Render(fmt.Sprintf("overdue %dd", -p.DaysUntilDue))
	case spacedrep.DueToday:
		return theme.DueSoon.Render("due today")
	case spacedrep.DueThisWeek:
		return theme.DueSoon.Render(fmt.Sprintf("in %dd", p.DaysUntilDue))
	}
	return theme.DueLater.Render(fmt.Sprintf("in %dd", p.DaysUntilDue))
}
