package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drill/internal/analytics"
	"github.com/abhisek/drill/internal/practice"
	"github.com/abhisek/drill/internal/spacedrep"
	"github.com/abhisek/drill/internal/store"
)

var fixedNow = time.Date(2025, 4, 2, 8, 30, 0, 0, time.UTC)

type testEnv struct {
	store   *store.Store
	handler http.Handler
}

func newTestEnv(t *testing.T, scheduler string, limiter *RateLimiter) *testEnv {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return fixedNow }
	svc := practice.NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), practice.Options{
		Scheduler: scheduler,
		Clock:     clock,
		Logger:    logger,
		Rand:      rand.New(rand.NewPCG(7, 7)),
	})
	srv := New(Deps{
		Problems:     st.ProblemRepo(),
		Reviews:      st.ReviewRepo(),
		Practice:     svc,
		Analytics:    analytics.NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), clock),
		Logger:       logger,
		WriteLimiter: limiter,
	})
	return &testEnv{store: st, handler: srv.Handler()}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCreateAndGetProblem(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSpacedRepetition, nil)

	rec := env.do(t, http.MethodPost, "/api/problems/", `{"name":"bytes2bits"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[store.Problem](t, rec)
	assert.Equal(t, "bytes2bits", created.Name)
	assert.False(t, created.Suspended)
	assert.Nil(t, created.SuspendReason)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/problems/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "bytes2bits", body["name"])
	assert.Equal(t, []any{}, body["reviews"])
}

func TestCreateProblem_Validation(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSpacedRepetition, nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{}`},
		{"unknown kind", `{"name":"batch_norm"}`},
		{"malformed", `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/problems/", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decode[errorBody](t, rec).Detail)
		})
	}
}

func TestGetProblem_NotFound(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSpacedRepetition, nil)

	rec := env.do(t, http.MethodGet, "/api/problems/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Problem not found", decode[errorBody](t, rec).Detail)

	rec = env.do(t, http.MethodGet, "/api/problems/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNextProblem(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSpacedRepetition, nil)

	rec := env.do(t, http.MethodGet, "/api/problems/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	p, err := env.store.ProblemRepo().Create(context.Background(), "roofline")
	require.NoError(t, err)

	rec = env.do(t, http.MethodGet, "/api/problems/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, float64(p.ID), body["id"])
	assert.Contains(t, body, "question")
	assert.Contains(t, body, "options")
	assert.Contains(t, body, "correct")
	assert.Contains(t, body, "solution_explanation")
}

func TestSuspendFlow(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSpacedRepetition, nil)
	p, err := env.store.ProblemRepo().Create(context.Background(), "ram_bandwidth")
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/problems/%d/suspend", p.ID), `{"reason":"too easy"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	suspended := decode[store.Problem](t, rec)
	assert.True(t, suspended.Suspended)
	require.NotNil(t, suspended.SuspendReason)
	assert.Equal(t, "too easy", *suspended.SuspendReason)

	rec = env.do(t, http.MethodGet, "/api/problems/suspended", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]store.Problem](t, rec), 1)

	// Suspended problems are never served.
	rec = env.do(t, http.MethodGet, "/api/problems/", "")
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/problems/%d/unsuspend", p.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	unsuspended := decode[store.Problem](t, rec)
	assert.False(t, unsuspended.Suspended)
	assert.Nil(t, unsuspended.SuspendReason)

	rec = env.do(t, http.MethodPost, "/api/problems/404/suspend", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateReview_SchedulesDue(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSpacedRepetition, nil)
	ctx := context.Background()
	p, err := env.store.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/api/reviews/", fmt.Sprintf(`{"problem_id":%d,"correct":true}`, p.ID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	review := decode[store.Review](t, rec)
	assert.Equal(t, p.ID, review.ProblemID)
	assert.True(t, review.Correct)

	due, err := env.store.DueRepo().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, due.DueDate.Equal(fixedNow.Add(6*spacedrep.Day)), "due %v", due.DueDate)
}

func TestCreateReview_UnknownProblem(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSpacedRepetition, nil)

	rec := env.do(t, http.MethodPost, "/api/reviews/", `{"problem_id":77,"correct":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Problem not found", decode[errorBody](t, rec).Detail)
}

func TestCreateReview_SchedulingFailureStillStores(t *testing.T) {
	env := newTestEnv(t, "not_a_scheduler", nil)
	ctx := context.Background()
	p, err := env.store.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/api/reviews/", fmt.Sprintf(`{"problem_id":%d,"correct":false}`, p.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	history, err := env.store.ReviewRepo().ListByProblem(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = env.store.DueRepo().Get(ctx, p.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListReviews_Pagination(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSimple, nil)
	ctx := context.Background()
	p, err := env.store.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)
	for i := range 5 {
		_, err := env.store.ReviewRepo().Create(ctx, store.NewReview{ProblemID: p.ID, Correct: i%2 == 0})
		require.NoError(t, err)
	}

	rec := env.do(t, http.MethodGet, "/api/reviews/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]store.Review](t, rec), 5)

	rec = env.do(t, http.MethodGet, "/api/reviews/?skip=1&limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[[]store.Review](t, rec)
	require.Len(t, page, 2)
	assert.Less(t, page[0].ID, page[1].ID)

	rec = env.do(t, http.MethodGet, "/api/reviews/?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/reviews/problem/%d", p.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]store.Review](t, rec), 5)
}

func TestDeleteEndpoints(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSimple, nil)
	ctx := context.Background()
	p, err := env.store.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)
	rv, err := env.store.ReviewRepo().Create(ctx, store.NewReview{ProblemID: p.ID, Correct: true})
	require.NoError(t, err)

	rec := env.do(t, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", rv.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Review deleted"}`, rec.Body.String())

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", rv.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Review not found", decode[errorBody](t, rec).Detail)

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/problems/%d", p.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Problem deleted"}`, rec.Body.String())

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/problems/%d", p.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalytics(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSpacedRepetition, nil)
	ctx := context.Background()
	p, err := env.store.ProblemRepo().Create(ctx, "roofline")
	require.NoError(t, err)
	rec := env.do(t, http.MethodPost, "/api/reviews/", fmt.Sprintf(`{"problem_id":%d,"correct":true}`, p.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/analytics/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[analytics.Report](t, rec)
	assert.Equal(t, 1, report.Summary.TotalProblems)
	assert.Equal(t, 1, report.Summary.TotalReviews)
	assert.Equal(t, 100.0, report.Summary.OverallAccuracy)
	assert.Equal(t, 1, report.Summary.ProblemsDueThisWeek)
	require.Len(t, report.Problems, 1)
	assert.Equal(t, 2.6, report.Problems[0].EaseFactor)
	assert.Equal(t, 6, report.Problems[0].CurrentInterval)
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSimple, nil)

	rec := env.do(t, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = env.do(t, http.MethodGet, "/index.html", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSimple, nil)

	rec := env.do(t, http.MethodGet, "/api/problems/suspended", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWriteRateLimit(t *testing.T) {
	env := newTestEnv(t, spacedrep.NameSimple, NewRateLimiter(time.Hour, 2))

	for range 2 {
		rec := env.do(t, http.MethodPost, "/api/problems/", `{"name":"bytes2bits"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := env.do(t, http.MethodPost, "/api/problems/", `{"name":"bytes2bits"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Reads are not limited.
	rec = env.do(t, http.MethodGet, "/api/problems/suspended", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
