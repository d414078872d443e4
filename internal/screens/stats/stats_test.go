package stats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drill/internal/analytics"
	"github.com/abhisek/drill/internal/router"
	"github.com/abhisek/drill/internal/store"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestRender_Empty(t *testing.T) {
	out := Render(analytics.Build(now, nil, nil, nil), 80)
	assert.Contains(t, out, "Problems: 0")
	assert.Contains(t, out, "No problems yet")
	assert.Empty(t, Render(nil, 80))
}

func TestRender_Rows(t *testing.T) {
	problems := []store.Problem{
		{ID: 1, Name: "bytes2bits"},
		{ID: 2, Name: "roofline"},
		{ID: 3, Name: "ram_bandwidth"},
	}
	reviews := map[int][]store.Review{
		1: {{ID: 1, ProblemID: 1, CreatedDate: now.Add(-48 * time.Hour), Correct: true}},
	}
	dues := map[int]store.Due{
		1: {ProblemID: 1, DueDate: now.Add(-48 * time.Hour)},
		2: {ProblemID: 2, DueDate: now.Add(3*24*time.Hour + time.Hour)},
	}

	out := Render(analytics.Build(now, problems, reviews, dues), 80)
	assert.Contains(t, out, "bytes2bits")
	assert.Contains(t, out, "overdue 2d")
	assert.Contains(t, out, "in 3d")
	assert.Contains(t, out, "not scheduled")
	assert.Contains(t, out, "overdue 1")
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStatsScreen_LoadsReport(t *testing.T) {
	st := openTestStore(t)
	_, err := st.ProblemRepo().Create(context.Background(), "bytes2bits")
	require.NoError(t, err)

	svc := analytics.NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), func() time.Time { return now })
	s := New(svc)
	assert.Contains(t, s.View(80, 24), "Loading")

	msg := s.Init()()
	s.Update(msg)
	require.NotNil(t, s.report)
	assert.Equal(t, 1, s.report.Summary.TotalProblems)
	assert.Contains(t, s.View(80, 24), "bytes2bits")
}

func TestStatsScreen_Error(t *testing.T) {
	s := New(nil)
	s.Update(reportLoadedMsg{Err: errors.New("boom")})
	assert.Contains(t, s.View(80, 24), "boom")
}

func TestStatsScreen_EscPops(t *testing.T) {
	s := New(nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
