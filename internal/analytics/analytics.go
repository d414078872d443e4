// Package analytics summarises review history and due dates for display.
package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/drill/internal/spacedrep"
	"github.com/abhisek/drill/internal/store"
)

// ProblemAnalytics is the per-problem row of a report.
type ProblemAnalytics struct {
	ProblemID       int        `json:"problem_id"`
	ProblemName     string     `json:"problem_name"`
	TotalReviews    int        `json:"total_reviews"`
	CorrectReviews  int        `json:"correct_reviews"`
	EaseFactor      float64    `json:"ease_factor"`
	CurrentInterval int        `json:"current_interval"`
	NextReviewDate  time.Time  `json:"next_review_date"`
	DueDate         *time.Time `json:"due_date"`
	DaysUntilDue    int        `json:"days_until_due"`

	// Bucket is the due bucket the problem was counted in.
	Bucket spacedrep.DueBucket `json:"bucket"`
}

// Summary aggregates the whole collection.
type Summary struct {
	TotalProblems        int     `json:"total_problems"`
	TotalReviews         int     `json:"total_reviews"`
	OverallAccuracy      float64 `json:"overall_accuracy"`
	AverageEaseFactor    float64 `json:"average_ease_factor"`
	ProblemsDueToday     int     `json:"problems_due_today"`
	ProblemsDueThisWeek  int     `json:"problems_due_this_week"`
	ProblemsDueThisMonth int     `json:"problems_due_this_month"`
	ProblemsOverdue      int     `json:"problems_overdue"`
}

// Report is a point-in-time analytics snapshot.
type Report struct {
	Summary     Summary            `json:"summary"`
	Problems    []ProblemAnalytics `json:"problems"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// Service builds reports from the store.
type Service struct {
	problemRepo store.ProblemRepo
	reviewRepo  store.ReviewRepo
	dueRepo     store.DueRepo
	clock       spacedrep.Clock
}

// NewService creates an analytics service. A nil clock means time.Now.
func NewService(problemRepo store.ProblemRepo, reviewRepo store.ReviewRepo, dueRepo store.DueRepo, clock spacedrep.Clock) *Service {
	return &Service{
		problemRepo: problemRepo,
		reviewRepo:  reviewRepo,
		dueRepo:     dueRepo,
		clock:       clock,
	}
}

// Report loads every problem, review and due row and summarises them.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	problems, err := s.problemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	reviews, err := s.reviewRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	dues, err := s.dueRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load due dates: %w", err)
	}

	return Build(s.clock.Now(), problems, reviews, dues), nil
}

// Build computes a report. Ease and interval come from the ease-adaptive
// scheduler evaluated at now. A problem without a due row counts as due
// today; problems due after thirty days are listed but not counted in any
// due bucket.
func Build(now time.Time, problems []store.Problem, reviews map[int][]store.Review, dues map[int]store.Due) *Report {
	sr := spacedrep.NewSpacedRepetition(spacedrep.DefaultEaseConfig(), func() time.Time { return now })

	report := &Report{
		Problems:    make([]ProblemAnalytics, 0, len(problems)),
		GeneratedAt: now,
	}
	sum := &report.Summary
	sum.TotalProblems = len(problems)

	var correctTotal int
	var easeTotal float64
	for _, p := range problems {
		history := reviews[p.ID]
		assessment := sr.Assess(store.History(history))

		row := ProblemAnalytics{
			ProblemID:       p.ID,
			ProblemName:     p.Name,
			TotalReviews:    len(history),
			CorrectReviews:  countCorrect(history),
			EaseFactor:      round(assessment.EaseFactor, 2),
			CurrentInterval: assessment.IntervalDays,
			NextReviewDate:  assessment.NextReviewDate,
			Bucket:          spacedrep.DueToday,
		}
		if d, ok := dues[p.ID]; ok {
			ds := spacedrep.DueState{ProblemID: p.ID, DueDate: d.DueDate}
			dueDate := d.DueDate
			row.DueDate = &dueDate
			row.DaysUntilDue = ds.DaysUntilDue(now)
			row.Bucket = ds.Bucket(now)
		}

		switch row.Bucket {
		case spacedrep.DueOverdue:
			sum.ProblemsOverdue++
		case spacedrep.DueToday:
			sum.ProblemsDueToday++
		case spacedrep.DueThisWeek:
			sum.ProblemsDueThisWeek++
		case spacedrep.DueThisMonth:
			sum.ProblemsDueThisMonth++
		}

		sum.TotalReviews += row.TotalReviews
		correctTotal += row.CorrectReviews
		easeTotal += row.EaseFactor
		report.Problems = append(report.Problems, row)
	}

	if sum.TotalReviews > 0 {
		sum.OverallAccuracy = round(float64(correctTotal)/float64(sum.TotalReviews)*100, 1)
	}
	sum.AverageEaseFactor = spacedrep.DefaultInitialEase
	if len(report.Problems) > 0 {
		sum.AverageEaseFactor = round(easeTotal/float64(len(report.Problems)), 2)
	}
	return report
}

func countCorrect(reviews []store.Review) int {
	n := 0
	for _, r := range reviews {
		if r.Correct {
			n++
		}
	}
	return n
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
