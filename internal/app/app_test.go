package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drill/internal/analytics"
	"github.com/abhisek/drill/internal/practice"
	"github.com/abhisek/drill/internal/router"
	"github.com/abhisek/drill/internal/screen"
	"github.com/abhisek/drill/internal/store"
	"github.com/abhisek/drill/internal/ui/layout"
)

type fakeRun struct {
	answered int
}

func (f *fakeRun) Init() tea.Cmd { return nil }
func (f *fakeRun) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeRun) View(int, int) string { return "run" }
func (f *fakeRun) Title() string { return "Run" }
func (f *fakeRun) Status() (due, answered int) { return 3, f.answered }
func (f *fakeRun) KeyHints() []layout.KeyHint { return nil }

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	clock := func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	return newAppModel(Options{
		Practice: practice.NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), practice.Options{
			Clock:  clock,
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		Analytics: analytics.NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), clock),
	})
}

func TestAnsweredAccumulatesAcrossRuns(t *testing.T) {
	m := newTestModel(t)

	first := &fakeRun{}
	next, _ := m.Update(router.PushScreenMsg{Screen: first})
	m = next.(AppModel)
	first.answered = 2
	next, _ = m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	m = next.(AppModel)
	assert.Equal(t, 2, m.answered)
	assert.Equal(t, 3, m.due)

	next, _ = m.Update(router.PopScreenMsg{})
	m = next.(AppModel)
	assert.Equal(t, 1, m.router.Depth())

	second := &fakeRun{answered: 1}
	next, _ = m.Update(router.PushScreenMsg{Screen: second})
	m = next.(AppModel)
	assert.Equal(t, 3, m.answered)
}

func TestEscPopsOnlyAboveHome(t *testing.T) {
	m := newTestModel(t)
	esc := tea.KeyPressMsg{Code: tea.KeyEscape}

	_, cmd := m.Update(esc)
	assert.Nil(t, cmd)

	next, _ := m.Update(router.PushScreenMsg{Screen: &fakeRun{}})
	m = next.(AppModel)
	_, cmd = m.Update(esc)
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

type escCapture struct {
	fakeRun
	gotEsc bool
}

func (e *escCapture) HandlesEsc() bool { return true }
func (e *escCapture) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		e.gotEsc = true
	}
	return e, nil
}

func TestEscForwardedToCapturingScreen(t *testing.T) {
	m := newTestModel(t)
	capture := &escCapture{}
	next, _ := m.Update(router.PushScreenMsg{Screen: capture})
	m = next.(AppModel)

	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = next.(AppModel)
	assert.Nil(t, cmd)
	assert.True(t, capture.gotEsc)
	assert.Equal(t, 2, m.router.Depth())
}
