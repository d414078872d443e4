// Package practice records answers and keeps each problem's due date in
// step with its review history.
package practice

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/abhisek/drill/internal/observability"
	"github.com/abhisek/drill/internal/problems"
	"github.com/abhisek/drill/internal/spacedrep"
	"github.com/abhisek/drill/internal/store"
)

// Options configures a Service.
type Options struct {
	// Scheduler is the strategy name used after each submission.
	Scheduler string

	// Clock overrides time.Now.
	Clock spacedrep.Clock

	// Logger receives scheduling outcomes. Defaults to slog.Default().
	Logger *slog.Logger

	// Rand seeds question generation. Defaults to a randomly seeded source.
	Rand *rand.Rand
}

// Service ties the review log, the due table and the schedulers together.
type Service struct {
	problemRepo store.ProblemRepo
	reviewRepo  store.ReviewRepo
	dueRepo     store.DueRepo

	scheduler string
	clock     spacedrep.Clock
	logger    *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	locks problemLocks
}

// NewService creates a practice service over the given repositories.
func NewService(problemRepo store.ProblemRepo, reviewRepo store.ReviewRepo, dueRepo store.DueRepo, opts Options) *Service {
	s := &Service{
		problemRepo: problemRepo,
		reviewRepo:  reviewRepo,
		dueRepo:     dueRepo,
		scheduler:   opts.Scheduler,
		clock:       opts.Clock,
		logger:      opts.Logger,
		rng:         opts.Rand,
	}
	if s.scheduler == "" {
		s.scheduler = spacedrep.NameSpacedRepetition
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Scheduler returns the strategy name applied on submission.
func (s *Service) Scheduler() string {
	return s.scheduler
}

// SubmitInput is one answer to record.
type SubmitInput struct {
	ProblemID int
	Correct   bool

	// At backdates the review. Zero means now.
	At time.Time
}

// SubmitResult is the outcome of Submit.
type SubmitResult struct {
	Review store.Review

	// Due is the updated due row, nil when scheduling failed.
	Due *store.Due

	// ScheduleErr reports a scheduling failure. The review is stored
	// regardless.
	ScheduleErr error
}

// Submit records an answer and reschedules the problem. Scheduling is best
// effort: a failure is logged and reported in the result, and the stored
// review is kept.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	unlock := s.locks.lock(in.ProblemID)
	defer unlock()

	if _, err := s.problemRepo.Get(ctx, in.ProblemID); err != nil {
		return nil, fmt.Errorf("problem %d: %w", in.ProblemID, err)
	}

	at := in.At
	if at.IsZero() {
		at = s.clock.Now()
	}
	review, err := s.reviewRepo.Create(ctx, store.NewReview{
		ProblemID:   in.ProblemID,
		Correct:     in.Correct,
		CreatedDate: at,
	})
	if err != nil {
		return nil, fmt.Errorf("record review: %w", err)
	}

	result := &SubmitResult{Review: *review}
	logger := observability.FromContext(ctx, s.logger).With(
		observability.LogFieldProblemID, in.ProblemID,
		observability.LogFieldReviewID, review.ID,
		observability.LogFieldScheduler, s.scheduler,
	)

	due, err := s.schedule(ctx, in.ProblemID, s.scheduler)
	if err != nil {
		logger.Error("schedule after review failed", "error", err)
		result.ScheduleErr = err
		return result, nil
	}
	logger.Info("due date updated", "due_date", due.DueDate)
	result.Due = due
	return result, nil
}

// NextDue returns the first active problem that is due or has never been
// scheduled, or nil when nothing is due.
func (s *Service) NextDue(ctx context.Context) (*store.Problem, error) {
	due, err := s.problemRepo.ListDue(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list due problems: %w", err)
	}
	if len(due) == 0 {
		return nil, nil
	}
	return &due[0], nil
}

// DueCount returns how many active problems are currently due.
func (s *Service) DueCount(ctx context.Context) (int, error) {
	due, err := s.problemRepo.ListDue(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("list due problems: %w", err)
	}
	return len(due), nil
}

// Card is a due problem with a freshly generated question.
type Card struct {
	Problem  store.Problem
	Question *problems.Question
}

// Next picks the next due problem and renders a question for it. It
// returns nil when nothing is due.
func (s *Service) Next(ctx context.Context) (*Card, error) {
	p, err := s.NextDue(ctx)
	if err != nil || p == nil {
		return nil, err
	}

	s.rngMu.Lock()
	q, err := problems.Generate(p.Name, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("problem %d: %w", p.ID, err)
	}
	return &Card{Problem: *p, Question: q}, nil
}

// Reschedule recomputes the due date of every reviewed problem with the
// named strategy and returns how many were updated. Unknown names fail
// before anything is written.
func (s *Service) Reschedule(ctx context.Context, name string) (int, error) {
	if _, err := spacedrep.Dispatch(name, s.clock); err != nil {
		return 0, err
	}

	history, err := s.reviewRepo.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load reviews: %w", err)
	}
	ids := make([]int, 0, len(history))
	for id := range history {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	logger := observability.FromContext(ctx, s.logger).With(observability.LogFieldScheduler, name)
	updated := 0
	for _, id := range ids {
		unlock := s.locks.lock(id)
		_, err := s.schedule(ctx, id, name)
		unlock()
		if err != nil {
			return updated, fmt.Errorf("reschedule problem %d: %w", id, err)
		}
		updated++
	}
	logger.Info("rescheduled problems", "count", updated)
	return updated, nil
}

// schedule recomputes and stores the due date of one problem. Callers hold
// the problem's lock.
func (s *Service) schedule(ctx context.Context, problemID int, name string) (*store.Due, error) {
	sched, err := spacedrep.Dispatch(name, s.clock)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListByProblem(ctx, problemID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	next := sched.NextReviewDate(store.History(reviews))
	due, err := s.dueRepo.Upsert(ctx, problemID, next)
	if err != nil {
		return nil, fmt.Errorf("upsert due: %w", err)
	}
	return due, nil
}
