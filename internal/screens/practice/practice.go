package practice

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/drill/internal/analytics"
	practicesvc "github.com/abhisek/drill/internal/practice"
	"github.com/abhisek/drill/internal/router"
	"github.com/abhisek/drill/internal/screen"
	"github.com/abhisek/drill/internal/screens/stats"
	"github.com/abhisek/drill/internal/ui/components"
	"github.com/abhisek/drill/internal/ui/layout"
)

// PracticeScreen serves due problems one at a time until none are left.
type PracticeScreen struct {
	svc       *practicesvc.Service
	analytics *analytics.Service

	card     *practicesvc.Card
	choices  components.MultiChoice
	input    components.TextInput
	result   *practicesvc.SubmitResult
	loading  bool
	done     bool
	errMsg   string
	inputErr string

	due      int
	answered int
	correct  int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New creates a practice screen. analyticsSvc may be nil, in which case
// the stats shortcut is hidden.
func New(svc *practicesvc.Service, analyticsSvc *analytics.Service) *PracticeScreen {
	return &PracticeScreen{
		svc:       svc,
		analytics: analyticsSvc,
		input:     newAnswerInput(),
		loading:   true,
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("option number", true, 1)
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(s.loadCard(), s.input.Init())
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) Status() (due, answered int) {
	return s.due, s.answered
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.done:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Home"}}
		if s.analytics != nil {
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Stats"})
		}
		return hints
	case s.result != nil:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next problem"},
			{Key: "Esc", Description: "Stop"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Option"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Stop"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardLoadedMsg:
		return s.handleCardLoaded(msg)
	case answerRecordedMsg:
		return s.handleAnswerRecorded(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.card != nil && !s.choices.Submitted {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) loadCard() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		ctx := context.Background()
		card, err := svc.Next(ctx)
		if err != nil {
			return cardLoadedMsg{Err: err}
		}
		due, err := svc.DueCount(ctx)
		return cardLoadedMsg{Card: card, Due: due, Err: err}
	}
}

func (s *PracticeScreen) recordAnswer(problemID int, correct bool) tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		ctx := context.Background()
		res, err := svc.Submit(ctx, practicesvc.SubmitInput{ProblemID: problemID, Correct: correct})
		if err != nil {
			return answerRecordedMsg{Err: err}
		}
		due, err := svc.DueCount(ctx)
		return answerRecordedMsg{Result: res, Due: due, Err: err}
	}
}

func (s *PracticeScreen) handleCardLoaded(msg cardLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.due = msg.Due
	s.result = nil
	s.inputErr = ""
	if msg.Card == nil {
		s.card = nil
		s.done = true
		return s, nil
	}

	s.card = msg.Card
	s.choices = components.NewMultiChoice(msg.Card.Question.Options, msg.Card.Question.Correct)
	s.input = newAnswerInput()
	return s, s.input.Init()
}

func (s *PracticeScreen) handleAnswerRecorded(msg answerRecordedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.result = msg.Result
	s.due = msg.Due
	s.answered++
	if msg.Result.Review.Correct {
		s.correct++
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.done {
		switch key {
		case "s", "S":
			if s.analytics != nil {
				next := stats.New(s.analytics)
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.loading || s.card == nil {
		return s, nil
	}

	// Feedback: any key moves on; esc stops.
	if s.result != nil {
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.loading = true
		return s, s.loadCard()
	}

	// Waiting for the answer to be stored.
	if s.choices.Submitted {
		return s, nil
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		idx, err := s.input.Choice(len(s.choices.Options))
		if err != nil {
			s.inputErr = err.Error()
			return s, nil
		}
		s.inputErr = ""
		s.choices.Choose(idx)
		correct := s.choices.IsCorrect()
		s.input.Submit(correct)
		return s, s.recordAnswer(s.card.Problem.ID, correct)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}
