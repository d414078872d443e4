package home

import (
	"context"
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
	"github.com/abhisek/drill/internal/store"
)

func newHome(t *testing.T) (*store.Store, *HomeScreen) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	clock := func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	ps := practice.NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), practice.Options{
		Clock:  clock,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	as := analytics.NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), clock)
	return st, New(Deps{
		Practice:  ps,
		Analytics: as,
		Problems:  st.ProblemRepo(),
		Reviews:   st.ReviewRepo(),
		Dues:      st.DueRepo(),
		Clock:     clock,
	})
}

func TestHome_LoadsStatus(t *testing.T) {
	st, h := newHome(t)
	ctx := context.Background()
	_, err := st.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)
	p, err := st.ProblemRepo().Create(ctx, "roofline")
	require.NoError(t, err)
	_, err = st.ProblemRepo().Suspend(ctx, p.ID, nil)
	require.NoError(t, err)

	h.Update(h.Init()())
	due, answered := h.Status()
	assert.Equal(t, 1, due)
	assert.Equal(t, 0, answered)
	assert.Equal(t, 2, h.total)

	out := h.View(120, 40)
	assert.Contains(t, out, "1 DUE")
	assert.Contains(t, out, "2 PROBLEMS")
}

func TestHome_Empty(t *testing.T) {
	_, h := newHome(t)
	h.Update(h.Init()())
	assert.Contains(t, h.View(80, 24), "NO PROBLEMS YET")
}

func TestHome_MenuNavigation(t *testing.T) {
	_, h := newHome(t)
	down := tea.KeyPressMsg{Code: tea.KeyDown}
	enter := tea.KeyPressMsg{Code: tea.KeyEnter}

	_, cmd := h.Update(enter)
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Practice", push.Screen.Title())

	for _, title := range []string{"Problems", "Stats"} {
		h.Update(down)
		_, cmd = h.Update(enter)
		require.NotNil(t, cmd)
		push, ok = cmd().(router.PushScreenMsg)
		require.True(t, ok)
		assert.Equal(t, title, push.Screen.Title())
	}

	h.Update(down)
	_, cmd = h.Update(enter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
