package practice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drill/internal/analytics"
	practicesvc "github.com/abhisek/drill/internal/practice"
	"github.com/abhisek/drill/internal/router"
	"github.com/abhisek/drill/internal/spacedrep"
	"github.com/abhisek/drill/internal/store"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*store.Store, *PracticeScreen) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	clock := func() time.Time { return now }
	svc := practicesvc.NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), practicesvc.Options{
		Scheduler: spacedrep.NameSpacedRepetition,
		Clock:     clock,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Rand:      rand.New(rand.NewPCG(7, 7)),
	})
	an := analytics.NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), clock)
	return st, New(svc, an)
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// run applies cmd's message to the screen, as the program loop would.
func run(t *testing.T, s *PracticeScreen, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := s.Update(cmd())
	return next
}

func TestPractice_NothingDue(t *testing.T) {
	_, s := setup(t)
	run(t, s, s.loadCard())

	assert.True(t, s.done)
	assert.Contains(t, s.View(80, 24), "All caught up")

	_, cmd := s.Update(key('s'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Stats", msg.Screen.Title())

	_, cmd = s.Update(enter())
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestPractice_AnswerCorrectly(t *testing.T) {
	st, s := setup(t)
	ctx := context.Background()
	p, err := st.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)

	run(t, s, s.loadCard())
	require.NotNil(t, s.card)
	assert.Equal(t, p.ID, s.card.Problem.ID)
	assert.Equal(t, 1, s.due)
	assert.Contains(t, s.View(80, 30), "Convert")

	digit := rune('1' + s.card.Question.Correct)
	s.Update(key(digit))
	_, cmd := s.Update(enter())
	assert.True(t, s.choices.Submitted)

	run(t, s, cmd)
	require.NotNil(t, s.result)
	assert.True(t, s.result.Review.Correct)
	assert.Equal(t, 1, s.answered)
	assert.Equal(t, 1, s.correct)
	assert.Equal(t, 0, s.due)

	due, answered := s.Status()
	assert.Equal(t, 0, due)
	assert.Equal(t, 1, answered)
	assert.Contains(t, s.View(80, 40), "Correct!")

	reviews, err := st.ReviewRepo().ListByProblem(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	d, err := st.DueRepo().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, now.Add(6*spacedrep.Day), d.DueDate.UTC())

	// Any key moves on; nothing else is due.
	_, cmd = s.Update(key('x'))
	run(t, s, cmd)
	assert.True(t, s.done)
	assert.Contains(t, s.View(80, 24), "You answered 1, 1 correct.")
}

func TestPractice_AnswerIncorrectly(t *testing.T) {
	st, s := setup(t)
	_, err := st.ProblemRepo().Create(context.Background(), "roofline")
	require.NoError(t, err)

	run(t, s, s.loadCard())
	wrong := (s.card.Question.Correct + 1) % len(s.card.Question.Options)
	s.Update(key(rune('1' + wrong)))
	_, cmd := s.Update(enter())
	run(t, s, cmd)

	require.NotNil(t, s.result)
	assert.False(t, s.result.Review.Correct)
	assert.Equal(t, 0, s.correct)
	assert.Contains(t, s.View(80, 40), "Correct answer: "+s.card.Question.Answer())
}

func TestPractice_InvalidChoice(t *testing.T) {
	st, s := setup(t)
	_, err := st.ProblemRepo().Create(context.Background(), "roofline")
	require.NoError(t, err)

	run(t, s, s.loadCard())
	s.Update(key('9'))
	_, cmd := s.Update(enter())
	assert.Nil(t, cmd)
	assert.False(t, s.choices.Submitted)
	assert.NotEmpty(t, s.inputErr)
}

func TestPractice_LoadError(t *testing.T) {
	_, s := setup(t)
	s.Update(cardLoadedMsg{Err: errors.New("db gone")})
	assert.Contains(t, s.View(80, 24), "db gone")

	_, cmd := s.Update(key('x'))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestPractice_EscStops(t *testing.T) {
	st, s := setup(t)
	_, err := st.ProblemRepo().Create(context.Background(), "bytes2bits")
	require.NoError(t, err)
	run(t, s, s.loadCard())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
