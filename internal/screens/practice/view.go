package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/drill/internal/ui/theme"
)

const maxTextWidth = 76

func (s *PracticeScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.loading && s.card == nil:
		return renderCentered(width, theme.Muted, "\n\n\n  Finding the next due problem...")
	case s.done:
		return s.renderDone(width)
	}
	return s.renderCard(width)
}

func (s *PracticeScreen) renderCard(width int) string {
	textWidth := min(width-4, maxTextWidth)
	q := s.card.Question

	var b strings.Builder
	info := theme.Label.Render(fmt.Sprintf("  #%d %s", s.card.Problem.ID, s.card.Problem.Name))
	score := theme.Muted.Render(fmt.Sprintf("%d/%d correct", s.correct, s.answered))
	if pad := width - lipgloss.Width(info) - lipgloss.Width(score) - 2; pad > 0 {
		info += strings.Repeat(" ", pad) + score
	}
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(place(width, theme.Body.Width(textWidth).Render(q.Text)))
	b.WriteString("\n\n")
	b.WriteString(place(width, s.choices.View()))
	b.WriteString("\n")

	if s.result == nil {
		b.WriteString(place(width, "Answer: "+s.input.View()))
		if s.inputErr != "" {
			b.WriteString("\n")
			b.WriteString(renderCentered(width, theme.Incorrect, s.inputErr))
		}
		return b.String()
	}

	b.WriteString(s.renderFeedback(width, textWidth))
	return b.String()
}

func (s *PracticeScreen) renderFeedback(width, textWidth int) string {
	var b strings.Builder
	q := s.card.Question

	if s.result.Review.Correct {
		b.WriteString(renderCentered(width, theme.Correct, "Correct!"))
	} else {
		b.WriteString(renderCentered(width, theme.Incorrect, "Not quite"))
		b.WriteString("\n")
		b.WriteString(renderCentered(width, theme.Muted, "Correct answer: "+q.Answer()))
	}
	b.WriteString("\n\n")

	if q.Explanation != "" {
		b.WriteString(place(width, theme.Body.Width(textWidth).Render(q.Explanation)))
		b.WriteString("\n\n")
	}

	switch {
	case s.result.ScheduleErr != nil:
		b.WriteString(renderCentered(width, theme.Incorrect, "Answer saved, but scheduling failed: "+s.result.ScheduleErr.Error()))
	case s.result.Due != nil:
		b.WriteString(renderCentered(width, theme.Muted, "Next review "+s.result.Due.DueDate.Local().Format("Mon Jan 2 15:04")))
	}
	b.WriteString("\n\n")
	b.WriteString(renderCentered(width, theme.Hint, "Press any key to continue..."))
	return b.String()
}

func (s *PracticeScreen) renderDone(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(renderCentered(width, theme.Title, "All caught up!"))
	b.WriteString("\n\n")
	if s.answered > 0 {
		b.WriteString(renderCentered(width, theme.Body, fmt.Sprintf("You answered %d, %d correct.", s.answered, s.correct)))
	} else {
		b.WriteString(renderCentered(width, theme.Body, "Nothing is due right now."))
	}
	return b.String()
}

func renderError(width int, errMsg string) string {
	return renderCentered(width, theme.Incorrect, fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func renderCentered(width int, style lipgloss.Style, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}

func place(width int, block string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
