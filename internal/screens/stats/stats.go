package stats

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drill/internal/analytics"
	"github.com/abhisek/drill/internal/router"
	"github.com/abhisek/drill/internal/screen"
	"github.com/abhisek/drill/internal/ui/layout"
	"github.com/abhisek/drill/internal/ui/theme"
)

type reportLoadedMsg struct {
	Report *analytics.Report
	Err    error
}

// StatsScreen shows the analytics report.
type StatsScreen struct {
	svc    *analytics.Service
	report *analytics.Report
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(svc *analytics.Service) *StatsScreen {
	return &StatsScreen{svc: svc}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) load() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		report, err := svc.Report(context.Background())
		return reportLoadedMsg{Report: report, Err: err}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.report = msg.Report
	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			return s, s.load()
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render(theme.Incorrect.Render("\n\n  Error: " + s.errMsg))
	}
	if s.report == nil {
		return theme.Muted.Render("\n\n  Loading...")
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(Render(s.report, width))
}
