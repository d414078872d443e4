package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drill/internal/screen"
)

type countMsg struct{}

// stubScreen records Init calls and the messages it receives. Update returns
// a copy so tests can check the router keeps the returned screen.
type stubScreen struct {
	title    string
	inits    int
	received int
	nested   bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	next := *s
	if _, ok := msg.(countMsg); ok {
		next.received++
	}
	return &next, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

// escScreen captures Esc while nested is set, like the kind picker.
type escScreen struct{ stubScreen }

func (s *escScreen) HandlesEsc() bool { return s.nested }

func TestPushRunsInit(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	practice := &stubScreen{title: "Practice"}
	r.Update(PushScreenMsg{Screen: practice})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "Practice", r.Active().Title())
	assert.Equal(t, 1, practice.inits)
	assert.Equal(t, 0, home.inits)
}

func TestPopStopsAtHome(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Problems"})

	r.Update(PopScreenMsg{})
	r.Update(PopScreenMsg{})

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "Home", r.Active().Title())
}

func TestReplaceThenPopReturnsHome(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Practice"})

	stats := &stubScreen{title: "Stats"}
	r.Update(ReplaceScreenMsg{Screen: stats})

	require.Equal(t, 2, r.Depth())
	assert.Equal(t, "Stats", r.Active().Title())
	assert.Equal(t, 1, stats.inits)

	r.Pop()
	assert.Equal(t, "Home", r.Active().Title())
}

func TestReplaceOnEmptyStack(t *testing.T) {
	r := &Router{}
	assert.Nil(t, r.Active())
	assert.Empty(t, r.View(80, 24))

	r.Replace(&stubScreen{title: "Home"})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "Home", r.View(80, 24))
}

func TestUpdateKeepsReturnedScreen(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	r.Update(countMsg{})
	r.Update(countMsg{})

	active, ok := r.Active().(*stubScreen)
	require.True(t, ok)
	assert.Equal(t, 2, active.received)
	assert.Equal(t, 0, home.received, "original value should not be mutated")
}

func TestNavigationMsgsNotForwarded(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "Stats"}})
	r.Update(countMsg{})

	active := r.Active().(*stubScreen)
	assert.Equal(t, "Stats", active.title)
	assert.Equal(t, 1, active.received)
}

func TestActiveHandlesEsc(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	assert.False(t, r.ActiveHandlesEsc(), "screens without the interface never capture esc")

	problems := &escScreen{stubScreen{title: "Problems"}}
	r.Push(problems)
	assert.False(t, r.ActiveHandlesEsc())

	problems.nested = true
	assert.True(t, r.ActiveHandlesEsc())

	assert.False(t, (&Router{}).ActiveHandlesEsc())
}
