package spacedrep

import (
	"cmp"
	"slices"
	"time"
)

// Scheduler computes when a problem should next be presented, given its
// full review history. Implementations are pure and safe for concurrent use.
type Scheduler interface {
	// NextReviewDate returns the next due date. The input may be in any
	// order and may be empty; it is never modified.
	NextReviewDate(reviews []Review) time.Time

	// Name returns the dispatch name of the strategy.
	Name() string
}

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

// Now returns the clock's current time.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// Strategy names accepted by Dispatch.
const (
	NameSimple           = "simple"
	NameSpacedRepetition = "spaced_repetition"
)

// Names lists every strategy Dispatch recognizes.
func Names() []string {
	return []string{NameSimple, NameSpacedRepetition}
}

// Dispatch maps a strategy name to a scheduler using the default
// configuration. Unknown names return *UnknownSchedulerError.
func Dispatch(name string, clock Clock) (Scheduler, error) {
	switch name {
	case NameSimple:
		return NewSimple(clock), nil
	case NameSpacedRepetition:
		return NewSpacedRepetition(DefaultEaseConfig(), clock), nil
	default:
		return nil, &UnknownSchedulerError{Name: name}
	}
}

// sortedByDate returns a copy of reviews sorted ascending by CreatedDate.
// Equal timestamps are ordered by ID, then incorrect before correct, so the
// result does not depend on input order.
func sortedByDate(reviews []Review) []Review {
	sorted := slices.Clone(reviews)
	slices.SortFunc(sorted, func(a, b Review) int {
		if c := a.CreatedDate.Compare(b.CreatedDate); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ID, b.ID); c != 0 {
			return c
		}
		return cmp.Compare(boolRank(a.Correct), boolRank(b.Correct))
	})
	return sorted
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// latest returns the most recent review timestamp of a sorted, non-empty history.
func latest(sorted []Review) time.Time {
	return sorted[len(sorted)-1].CreatedDate
}

func addDays(t time.Time, days int) time.Time {
	return t.Add(time.Duration(days) * Day)
}
