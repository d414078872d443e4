package spacedrep

import "time"

// Simple is the fixed-increment strategy: every correct answer since the
// last mistake adds one day of delay.
type Simple struct {
	clock Clock
}

var _ Scheduler = (*Simple)(nil)

// NewSimple creates a fixed-increment scheduler.
func NewSimple(clock Clock) *Simple {
	return &Simple{clock: clock}
}

func (s *Simple) Name() string { return NameSimple }

// NextReviewDate returns latest + (streak+1) days, where streak counts the
// correct reviews since the most recent incorrect one. An empty history is
// due immediately.
func (s *Simple) NextReviewDate(reviews []Review) time.Time {
	if len(reviews) == 0 {
		return s.clock.Now()
	}
	sorted := sortedByDate(reviews)

	streak := 0
	for _, r := range sorted {
		if r.Correct {
			streak++
		} else {
			streak = 0
		}
	}

	return addDays(latest(sorted), streak+1)
}
