package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/drill/internal/analytics"
	"github.com/abhisek/drill/internal/practice"
	"github.com/abhisek/drill/internal/router"
	"github.com/abhisek/drill/internal/screen"
	practicescreen "github.com/abhisek/drill/internal/screens/practice"
	problemsscreen "github.com/abhisek/drill/internal/screens/problems"
	"github.com/abhisek/drill/internal/screens/stats"
	"github.com/abhisek/drill/internal/spacedrep"
	"github.com/abhisek/drill/internal/store"
	"github.com/abhisek/drill/internal/ui/components"
)

type statusLoadedMsg struct {
	Due   int
	Total int
	Err   error
}

// Deps are the services and repositories reachable from the home menu.
type Deps struct {
	Practice  *practice.Service
	Analytics *analytics.Service
	Problems  store.ProblemRepo
	Reviews   store.ReviewRepo
	Dues      store.DueRepo
	Clock     spacedrep.Clock
}

// HomeScreen is the main menu.
type HomeScreen struct {
	practice  *practice.Service
	analytics *analytics.Service

	menu       components.Menu
	menuLabels []string
	due        int
	total      int
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	menuLabels := []string{"PRACTICE", "PROBLEMS", "STATS", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practicescreen.New(deps.Practice, deps.Analytics)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: problemsscreen.New(deps.Problems, deps.Reviews, deps.Dues, deps.Clock)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.Analytics)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		practice:   deps.Practice,
		analytics:  deps.Analytics,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

// Init loads the due and problem counts. The app calls it again whenever
// the home screen becomes active after a pop.
func (h *HomeScreen) Init() tea.Cmd {
	practiceSvc, analyticsSvc := h.practice, h.analytics
	return func() tea.Msg {
		ctx := context.Background()
		due, err := practiceSvc.DueCount(ctx)
		if err != nil {
			return statusLoadedMsg{Err: err}
		}
		report, err := analyticsSvc.Report(ctx)
		if err != nil {
			return statusLoadedMsg{Err: err}
		}
		return statusLoadedMsg{Due: due, Total: report.Summary.TotalProblems}
	}
}

func (h *HomeScreen) Status() (due, answered int) {
	return h.due, 0
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statusLoadedMsg); ok {
		h.loaded = true
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.due, h.total = msg.Due, msg.Total
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; header and footer take about 8 more rows.
	compact := height+8 < 30 || width < 100
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.due, h.total, h.loaded, cw),
	}
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}
	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
