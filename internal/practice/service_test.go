package practice

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drill/internal/spacedrep"
	"github.com/abhisek/drill/internal/store"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestService(t *testing.T, st *store.Store, scheduler string) *Service {
	t.Helper()
	return NewService(st.ProblemRepo(), st.ReviewRepo(), st.DueRepo(), Options{
		Scheduler: scheduler,
		Clock:     func() time.Time { return t0 },
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Rand:      rand.New(rand.NewPCG(1, 2)),
	})
}

func TestSubmit_SchedulesWithSpacedRepetition(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	svc := newTestService(t, st, spacedrep.NameSpacedRepetition)

	p, err := st.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)

	steps := []struct {
		at   time.Time
		want time.Time
	}{
		{t0, t0.Add(6 * spacedrep.Day)},
		{t0.Add(1 * spacedrep.Day), t0.Add(7 * spacedrep.Day)},
		{t0.Add(7 * spacedrep.Day), t0.Add(23 * spacedrep.Day)}, // ease 2.8, floor(6*2.8) = 16
	}
	for i, step := range steps {
		res, err := svc.Submit(ctx, SubmitInput{ProblemID: p.ID, Correct: true, At: step.at})
		require.NoError(t, err)
		require.NoError(t, res.ScheduleErr)
		require.NotNil(t, res.Due)
		assert.True(t, res.Due.DueDate.Equal(step.want), "step %d: due %v, want %v", i, res.Due.DueDate, step.want)
		assert.True(t, res.Review.CreatedDate.Equal(step.at))
	}

	stored, err := st.DueRepo().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, stored.DueDate.Equal(steps[2].want))
}

func TestSubmit_IncorrectResetsToOneDay(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	svc := newTestService(t, st, spacedrep.NameSimple)

	p, err := st.ProblemRepo().Create(ctx, "roofline")
	require.NoError(t, err)

	res, err := svc.Submit(ctx, SubmitInput{ProblemID: p.ID, Correct: false, At: t0})
	require.NoError(t, err)
	require.NotNil(t, res.Due)
	assert.True(t, res.Due.DueDate.Equal(t0.Add(spacedrep.Day)))
}

func TestSubmit_DefaultsToNow(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	svc := newTestService(t, st, spacedrep.NameSimple)

	p, err := st.ProblemRepo().Create(ctx, "roofline")
	require.NoError(t, err)

	res, err := svc.Submit(ctx, SubmitInput{ProblemID: p.ID, Correct: true})
	require.NoError(t, err)
	assert.True(t, res.Review.CreatedDate.Equal(t0))
}

func TestSubmit_UnknownProblem(t *testing.T) {
	st := openTestStore(t)
	svc := newTestService(t, st, spacedrep.NameSimple)

	_, err := svc.Submit(context.Background(), SubmitInput{ProblemID: 404, Correct: true})
	require.ErrorIs(t, err, store.ErrNotFound)

	all, err := st.ReviewRepo().List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSubmit_UnknownSchedulerKeepsReview(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	svc := newTestService(t, st, "leitner")

	p, err := st.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)
	previous := t0.Add(3 * spacedrep.Day)
	_, err = st.DueRepo().Upsert(ctx, p.ID, previous)
	require.NoError(t, err)

	res, err := svc.Submit(ctx, SubmitInput{ProblemID: p.ID, Correct: true, At: t0})
	require.NoError(t, err)

	var unknown *spacedrep.UnknownSchedulerError
	require.ErrorAs(t, res.ScheduleErr, &unknown)
	assert.Equal(t, "leitner", unknown.Name)
	assert.Nil(t, res.Due)

	history, err := st.ReviewRepo().ListByProblem(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	due, err := st.DueRepo().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, due.DueDate.Equal(previous))
}

func TestSubmit_ConcurrentSameProblem(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	svc := newTestService(t, st, spacedrep.NameSpacedRepetition)

	p, err := st.ProblemRepo().Create(ctx, "ram_bandwidth")
	require.NoError(t, err)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Submit(ctx, SubmitInput{
				ProblemID: p.ID,
				Correct:   i%3 != 0,
				At:        t0.Add(time.Duration(i) * time.Hour),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	history, err := st.ReviewRepo().ListByProblem(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, n)

	want := spacedrep.NewSpacedRepetition(spacedrep.DefaultEaseConfig(), nil).NextReviewDate(store.History(history))
	due, err := st.DueRepo().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, due.DueDate.Equal(want), "due %v, want %v", due.DueDate, want)
}

func TestNextDue(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	svc := newTestService(t, st, spacedrep.NameSimple)

	got, err := svc.NextDue(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	first, err := st.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)
	second, err := st.ProblemRepo().Create(ctx, "roofline")
	require.NoError(t, err)

	// Reviewed today, so first is pushed into the future.
	_, err = svc.Submit(ctx, SubmitInput{ProblemID: first.ID, Correct: true, At: t0})
	require.NoError(t, err)

	got, err = svc.NextDue(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second.ID, got.ID)

	n, err := svc.DueCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = st.ProblemRepo().Suspend(ctx, second.ID, nil)
	require.NoError(t, err)
	got, err = svc.NextDue(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNext_RendersQuestion(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	svc := newTestService(t, st, spacedrep.NameSimple)

	p, err := st.ProblemRepo().Create(ctx, "arithmetic_intensity")
	require.NoError(t, err)

	card, err := svc.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, p.ID, card.Problem.ID)
	assert.Equal(t, "arithmetic_intensity", card.Question.Kind)
	assert.NotEmpty(t, card.Question.Options)
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	svc := newTestService(t, st, spacedrep.NameSpacedRepetition)

	a, err := st.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)
	b, err := st.ProblemRepo().Create(ctx, "roofline")
	require.NoError(t, err)
	_, err = st.ProblemRepo().Create(ctx, "ram_bandwidth") // never reviewed
	require.NoError(t, err)

	for i := range 3 {
		_, err := svc.Submit(ctx, SubmitInput{ProblemID: a.ID, Correct: true, At: t0.Add(time.Duration(i) * spacedrep.Day)})
		require.NoError(t, err)
	}
	_, err = svc.Submit(ctx, SubmitInput{ProblemID: b.ID, Correct: false, At: t0})
	require.NoError(t, err)

	n, err := svc.Reschedule(ctx, spacedrep.NameSimple)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Simple: streak of three, anchored on the latest review.
	due, err := st.DueRepo().Get(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, due.DueDate.Equal(t0.Add(2*spacedrep.Day).Add(4*spacedrep.Day)), "got %v", due.DueDate)

	due, err = st.DueRepo().Get(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, due.DueDate.Equal(t0.Add(spacedrep.Day)))

	all, err := st.DueRepo().All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReschedule_UnknownNameWritesNothing(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	svc := newTestService(t, st, spacedrep.NameSimple)

	p, err := st.ProblemRepo().Create(ctx, "bytes2bits")
	require.NoError(t, err)
	res, err := svc.Submit(ctx, SubmitInput{ProblemID: p.ID, Correct: true, At: t0})
	require.NoError(t, err)

	n, err := svc.Reschedule(ctx, "sm2")
	var unknown *spacedrep.UnknownSchedulerError
	require.ErrorAs(t, err, &unknown)
	assert.Zero(t, n)

	due, err := st.DueRepo().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, due.DueDate.Equal(res.Due.DueDate))
}
