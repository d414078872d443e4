package problems

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	gen "github.com/abhisek/drill/internal/problems"
	"github.com/abhisek/drill/internal/router"
	"github.com/abhisek/drill/internal/screen"
	"github.com/abhisek/drill/internal/spacedrep"
	"github.com/abhisek/drill/internal/store"
	"github.com/abhisek/drill/internal/ui/components"
	"github.com/abhisek/drill/internal/ui/layout"
	"github.com/abhisek/drill/internal/ui/theme"
)

type problemsLoadedMsg struct {
	Problems []store.Problem
	Reviews  map[int][]store.Review
	Dues     map[int]store.Due
	Err      error
}

// ProblemsScreen lists every problem with its due date. Rows expand to show
// the review history, and problems can be added or suspended in place.
type ProblemsScreen struct {
	problemRepo store.ProblemRepo
	reviewRepo  store.ReviewRepo
	dueRepo     store.DueRepo
	clock       spacedrep.Clock

	problems []store.Problem
	reviews  map[int][]store.Review
	dues     map[int]store.Due
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string

	// adding is set while the kind picker is open.
	adding bool
	kinds  components.Menu
}

var _ screen.Screen = (*ProblemsScreen)(nil)
var _ screen.KeyHintProvider = (*ProblemsScreen)(nil)
var _ screen.EscHandler = (*ProblemsScreen)(nil)

// New creates a new ProblemsScreen. A nil clock means time.Now.
func New(problemRepo store.ProblemRepo, reviewRepo store.ReviewRepo, dueRepo store.DueRepo, clock spacedrep.Clock) *ProblemsScreen {
	s := &ProblemsScreen{
		problemRepo: problemRepo,
		reviewRepo:  reviewRepo,
		dueRepo:     dueRepo,
		clock:       clock,
		expanded:    make(map[int]bool),
	}

	items := make([]components.MenuItem, 0, len(gen.Kinds()))
	for _, kind := range gen.Kinds() {
		items = append(items, components.MenuItem{Label: kind, Action: func() tea.Cmd {
			return s.add(kind)
		}})
	}
	s.kinds = components.NewMenu(items)
	return s
}

func (s *ProblemsScreen) Init() tea.Cmd {
	problemRepo, reviewRepo, dueRepo := s.problemRepo, s.reviewRepo, s.dueRepo
	return func() tea.Msg {
		ctx := context.Background()

		ps, err := problemRepo.List(ctx)
		if err != nil {
			return problemsLoadedMsg{Err: err}
		}
		reviews, err := reviewRepo.All(ctx)
		if err != nil {
			return problemsLoadedMsg{Err: err}
		}
		dues, err := dueRepo.All(ctx)
		if err != nil {
			return problemsLoadedMsg{Err: err}
		}
		return problemsLoadedMsg{Problems: ps, Reviews: reviews, Dues: dues}
	}
}

func (s *ProblemsScreen) Title() string {
	return "Problems"
}

func (s *ProblemsScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Kind"},
			{Key: "Enter", Description: "Add"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Reviews"},
		{Key: "A", Description: "Add"},
		{Key: "S", Description: "Suspend"},
		{Key: "Esc", Description: "Back"},
	}
}

// add creates a problem and reloads the list.
func (s *ProblemsScreen) add(kind string) tea.Cmd {
	s.adding = false
	problemRepo, reload := s.problemRepo, s.Init()
	return func() tea.Msg {
		if _, err := problemRepo.Create(context.Background(), kind); err != nil {
			return problemsLoadedMsg{Err: err}
		}
		return reload()
	}
}

// toggleSuspend flips the suspended flag of the selected problem.
func (s *ProblemsScreen) toggleSuspend() tea.Cmd {
	if s.selected >= len(s.problems) {
		return nil
	}
	p := s.problems[s.selected]
	problemRepo, reload := s.problemRepo, s.Init()
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if p.Suspended {
			_, err = problemRepo.Unsuspend(ctx, p.ID)
		} else {
			_, err = problemRepo.Suspend(ctx, p.ID, nil)
		}
		if err != nil {
			return problemsLoadedMsg{Err: err}
		}
		return reload()
	}
}

func (s *ProblemsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.problems = msg.Problems
			s.reviews = msg.Reviews
			s.dues = msg.Dues
			s.selected = min(s.selected, max(len(s.problems)-1, 0))
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if s.adding {
			if msg.String() == "esc" {
				s.adding = false
				return s, nil
			}
			var cmd tea.Cmd
			s.kinds, cmd = s.kinds.Update(msg)
			return s, cmd
		}

		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.problems)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "a", "A":
			s.adding = true
		case "s", "S":
			return s, s.toggleSuspend()
		}
	}
	return s, nil
}

func (s *ProblemsScreen) View(width, height int) string {
	if s.adding {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			theme.Title.Render("Add a problem") + "\n\n" + s.kinds.View())
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading problems...")
	}
	if len(s.problems) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No problems yet. Press A to add one.")
	}

	now := s.clock.Now()
	var b strings.Builder
	b.WriteString("\n")

	for i, p := range s.problems {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		history := s.reviews[p.ID]
		line := fmt.Sprintf("%s#%-4d %-22s %3d reviews  %s",
			prefix, p.ID, p.Name, len(history), s.dueText(p, now))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == s.selected:
			style = style.Foreground(theme.Primary).Bold(true)
		case p.Suspended:
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(renderReviews(history))
		}
	}

	return b.String()
}

func (s *ProblemsScreen) dueText(p store.Problem, now time.Time) string {
	if p.Suspended {
		if p.SuspendReason != nil && *p.SuspendReason != "" {
			return "suspended: " + *p.SuspendReason
		}
		return "suspended"
	}
	d, ok := s.dues[p.ID]
	if !ok {
		return "due now"
	}
	ds := spacedrep.DueState{ProblemID: p.ID, DueDate: d.DueDate}
	if ds.IsDue(now) {
		return fmt.Sprintf("due now (%.0fd overdue)", ds.OverdueDays(now))
	}
	return "due " + d.DueDate.Local().Format("Jan 02 15:04")
}

func renderReviews(history []store.Review) string {
	muted := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if len(history) == 0 {
		return muted.Render("      No reviews yet") + "\n"
	}

	var b strings.Builder
	for _, r := range history {
		mark, style := "✓", theme.Correct
		if !r.Correct {
			mark, style = "✗", theme.Incorrect
		}
		b.WriteString(fmt.Sprintf("      %s %s\n",
			style.Render(mark), r.CreatedDate.Local().Format("Jan 02, 2006 15:04")))
	}
	return b.String()
}

// HandlesEsc keeps Esc inside the screen while the kind picker is open.
func (s *ProblemsScreen) HandlesEsc() bool {
	return s.adding
}
