package problems

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gen "github.com/abhisek/drill/internal/problems"
	"github.com/abhisek/drill/internal/router"
	"github.com/abhisek/drill/internal/store"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*store.Store, *ProblemsScreen) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st, New(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), func() time.Time { return now })
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestProblems_Empty(t *testing.T) {
	_, s := setup(t)
	assert.Contains(t, s.View(80, 24), "Loading")
	s.Update(s.Init()())
	assert.Contains(t, s.View(80, 24), "No problems yet")
}

func TestProblems_ListAndExpand(t *testing.T) {
	st, s := setup(t)
	ctx := context.Background()
	p, err := st.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)
	_, err = st.ReviewRepo().Create(ctx, store.NewReview{ProblemID: p.ID, CreatedDate: now.Add(-time.Hour), Correct: false})
	require.NoError(t, err)
	_, err = st.DueRepo().Upsert(ctx, p.ID, now.Add(23*time.Hour))
	require.NoError(t, err)

	s.Update(s.Init()())
	out := s.View(100, 24)
	assert.Contains(t, out, "bytes2bits")
	assert.Contains(t, out, "1 reviews")
	assert.NotContains(t, out, "due now")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(100, 24), "✗")
}

func TestProblems_ToggleSuspend(t *testing.T) {
	st, s := setup(t)
	ctx := context.Background()
	p, err := st.ProblemRepo().Create(ctx, "roofline")
	require.NoError(t, err)
	s.Update(s.Init()())

	_, cmd := s.Update(key('s'))
	require.NotNil(t, cmd)
	s.Update(cmd())
	got, err := st.ProblemRepo().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Suspended)
	assert.Contains(t, s.View(100, 24), "suspended")

	_, cmd = s.Update(key('s'))
	s.Update(cmd())
	got, err = st.ProblemRepo().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.Suspended)
}

func TestProblems_Add(t *testing.T) {
	st, s := setup(t)
	s.Update(s.Init()())

	s.Update(key('a'))
	assert.True(t, s.adding)
	assert.Contains(t, s.View(80, 24), gen.Kinds()[0])

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, s.adding)
	s.Update(cmd())

	ps, err := st.ProblemRepo().List(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, gen.Kinds()[1], ps[0].Name)
	assert.Len(t, s.problems, 1)
}

func TestProblems_EscCancelsPickerThenPops(t *testing.T) {
	_, s := setup(t)
	esc := tea.KeyPressMsg{Code: tea.KeyEscape}

	s.Update(key('a'))
	_, cmd := s.Update(esc)
	assert.Nil(t, cmd)
	assert.False(t, s.adding)

	_, cmd = s.Update(esc)
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
