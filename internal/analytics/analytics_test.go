package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drill/internal/spacedrep"
	"github.com/abhisek/drill/internal/store"
)

var now = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func reviewsAt(problemID int, results ...bool) []store.Review {
	out := make([]store.Review, len(results))
	for i, ok := range results {
		out[i] = store.Review{
			ID:          i + 1,
			ProblemID:   problemID,
			CreatedDate: now.Add(time.Duration(i-len(results)) * spacedrep.Day),
			Correct:     ok,
		}
	}
	return out
}

func TestBuild_Empty(t *testing.T) {
	r := Build(now, nil, nil, nil)
	assert.Equal(t, 0, r.Summary.TotalProblems)
	assert.Equal(t, 2.5, r.Summary.AverageEaseFactor)
	assert.Equal(t, 0.0, r.Summary.OverallAccuracy)
	assert.Empty(t, r.Problems)
	assert.True(t, r.GeneratedAt.Equal(now))
}

func TestBuild_NoHistory(t *testing.T) {
	problems := []store.Problem{{ID: 1, Name: "bytes2bits"}}
	r := Build(now, problems, nil, nil)

	require.Len(t, r.Problems, 1)
	row := r.Problems[0]
	assert.Equal(t, 2.5, row.EaseFactor)
	assert.Equal(t, 1, row.CurrentInterval)
	assert.True(t, row.NextReviewDate.Equal(now.Add(spacedrep.Day)))
	assert.Nil(t, row.DueDate)
	assert.Equal(t, 0, row.DaysUntilDue)
	assert.Equal(t, 1, r.Summary.ProblemsDueToday)
}

func TestBuild_UsesSchedulerFormulas(t *testing.T) {
	problems := []store.Problem{{ID: 7, Name: "roofline"}}
	history := reviewsAt(7, true, true, true)
	r := Build(now, problems, map[int][]store.Review{7: history}, nil)

	row := r.Problems[0]
	assert.Equal(t, 2.8, row.EaseFactor)
	assert.Equal(t, 16, row.CurrentInterval)
	assert.True(t, row.NextReviewDate.Equal(history[2].CreatedDate.Add(16*spacedrep.Day)))
	assert.Equal(t, 3, row.TotalReviews)
	assert.Equal(t, 3, row.CorrectReviews)
}

func TestBuild_UnsortedHistory(t *testing.T) {
	problems := []store.Problem{{ID: 1, Name: "roofline"}}
	history := reviewsAt(1, false, true)
	reversed := []store.Review{history[1], history[0]}

	a := Build(now, problems, map[int][]store.Review{1: history}, nil)
	b := Build(now, problems, map[int][]store.Review{1: reversed}, nil)
	assert.Equal(t, a.Problems[0].CurrentInterval, b.Problems[0].CurrentInterval)
	assert.Equal(t, 6, b.Problems[0].CurrentInterval)
}

func TestBuild_Buckets(t *testing.T) {
	var problems []store.Problem
	dues := map[int]store.Due{}
	offsets := []time.Duration{
		-2 * spacedrep.Day, // overdue
		-time.Minute,       // overdue
		2 * time.Hour,      // today
		3 * spacedrep.Day,  // week
		20 * spacedrep.Day, // month
		90 * spacedrep.Day, // later, not counted
	}
	for i, off := range offsets {
		id := i + 1
		problems = append(problems, store.Problem{ID: id, Name: "bytes2bits"})
		dues[id] = store.Due{ProblemID: id, DueDate: now.Add(off)}
	}
	problems = append(problems, store.Problem{ID: 99, Name: "roofline"}) // no due row

	r := Build(now, problems, nil, dues)
	assert.Equal(t, 2, r.Summary.ProblemsOverdue)
	assert.Equal(t, 2, r.Summary.ProblemsDueToday)
	assert.Equal(t, 1, r.Summary.ProblemsDueThisWeek)
	assert.Equal(t, 1, r.Summary.ProblemsDueThisMonth)
	assert.Equal(t, 7, r.Summary.TotalProblems)

	assert.Equal(t, -2, r.Problems[0].DaysUntilDue)
	assert.Equal(t, -1, r.Problems[1].DaysUntilDue)
	assert.Equal(t, spacedrep.DueLater, r.Problems[5].Bucket)
}

func TestBuild_Summary(t *testing.T) {
	problems := []store.Problem{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	reviews := map[int][]store.Review{
		1: reviewsAt(1, true, true),         // ease 2.7
		2: reviewsAt(2, false, true, false), // ease 2.5 - 0.2 + 0.1 - 0.2 = 2.2
	}
	r := Build(now, problems, reviews, nil)

	assert.Equal(t, 5, r.Summary.TotalReviews)
	assert.Equal(t, 60.0, r.Summary.OverallAccuracy)
	assert.Equal(t, 2.45, r.Summary.AverageEaseFactor)
}

func TestReport_JSONShape(t *testing.T) {
	due := now.Add(spacedrep.Day)
	r := Build(now, []store.Problem{{ID: 1, Name: "a"}}, nil, map[int]store.Due{1: {ProblemID: 1, DueDate: due}})

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "generated_at")

	row := decoded["problems"].([]any)[0].(map[string]any)
	for _, key := range []string{"problem_id", "problem_name", "total_reviews", "correct_reviews",
		"ease_factor", "current_interval", "next_review_date", "due_date", "days_until_due"} {
		assert.Contains(t, row, key)
	}
}

func TestService_Report(t *testing.T) {
	ctx := context.Background()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	p, err := st.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)
	_, err = st.ReviewRepo().Create(ctx, store.NewReview{ProblemID: p.ID, Correct: true, CreatedDate: now.Add(-spacedrep.Day)})
	require.NoError(t, err)
	_, err = st.DueRepo().Upsert(ctx, p.ID, now.Add(5*spacedrep.Day))
	require.NoError(t, err)

	svc := NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), func() time.Time { return now })
	r, err := svc.Report(ctx)
	require.NoError(t, err)

	require.Len(t, r.Problems, 1)
	assert.Equal(t, 1, r.Summary.ProblemsDueThisWeek)
	assert.Equal(t, 100.0, r.Summary.OverallAccuracy)
	assert.Equal(t, 6, r.Problems[0].CurrentInterval)
	assert.Equal(t, 5, r.Problems[0].DaysUntilDue)
}
