package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/drill/internal/ui/theme"
)

// Accuracy thresholds, in percent, for the bar colour.
const (
	accuracyGood = 80
	accuracyFair = 50
)

// AccuracyBar is a horizontal meter of the share of correct answers.
type AccuracyBar struct {
	Label    string
	Accuracy float64 // 0-100
	Reviews  int
	Width    int
}

// NewAccuracyBar creates a meter for accuracy (in percent) over reviews answers.
func NewAccuracyBar(label string, accuracy float64, reviews, width int) AccuracyBar {
	return AccuracyBar{
		Label:    label,
		Accuracy: accuracy,
		Reviews:  reviews,
		Width:    width,
	}
}

// View renders the bar. With no reviews it shows an empty track and a hint
// instead of a misleading 0%.
func (a AccuracyBar) View() string {
	var result string
	if a.Label != "" {
		result = lipgloss.NewStyle().Foreground(theme.Text).Render(a.Label) + "  "
	}

	suffix := "no reviews yet"
	if a.Reviews > 0 {
		suffix = fmt.Sprintf("%.1f%% of %d", a.Accuracy, a.Reviews)
	}
	suffix = "  " + suffix

	barWidth := max(a.Width-lipgloss.Width(result)-lipgloss.Width(suffix), 4)
	filled := 0
	if a.Reviews > 0 {
		filled = min(max(int(float64(barWidth)*a.Accuracy/100), 0), barWidth)
	}

	result += lipgloss.NewStyle().Background(a.fill()).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
	return result
}

func (a AccuracyBar) fill() color.Color {
	switch {
	case a.Accuracy >= accuracyGood:
		return theme.Success
	case a.Accuracy >= accuracyFair:
		return theme.Accent
	default:
		return theme.Error
	}
}
