package spacedrep

import (
	"math"
	"time"
)

// EaseConfig holds the ease-factor bounds of the ease-adaptive strategy.
// Min must not exceed Max.
type EaseConfig struct {
	Initial float64
	Min     float64
	Max     float64
}

// DefaultEaseConfig returns initial 2.5, bounds [1.3, 3.0].
func DefaultEaseConfig() EaseConfig {
	return EaseConfig{
		Initial: DefaultInitialEase,
		Min:     DefaultMinEase,
		Max:     DefaultMaxEase,
	}
}

// SpacedRepetition is the ease-adaptive strategy. The ease factor is kept
// in hundredths so accumulation and flooring are exact.
type SpacedRepetition struct {
	initial int
	min     int
	max     int
	clock   Clock
}

var _ Scheduler = (*SpacedRepetition)(nil)

// NewSpacedRepetition creates an ease-adaptive scheduler. Ease values are
// rounded to two decimal places.
func NewSpacedRepetition(cfg EaseConfig, clock Clock) *SpacedRepetition {
	sr := &SpacedRepetition{
		initial: toHundredths(cfg.Initial),
		min:     toHundredths(cfg.Min),
		max:     toHundredths(cfg.Max),
		clock:   clock,
	}
	return sr
}

func (s *SpacedRepetition) Name() string { return NameSpacedRepetition }

// Assessment is everything the ease-adaptive strategy derives from one
// history. Analytics reports these values directly.
type Assessment struct {
	EaseFactor     float64
	Streak         int
	IntervalDays   int
	NextReviewDate time.Time
}

// Assess computes ease factor, streak, interval and next review date in one
// pass. An empty history yields the initial ease, a one-day interval and a
// due date one day from now.
func (s *SpacedRepetition) Assess(reviews []Review) Assessment {
	if len(reviews) == 0 {
		return Assessment{
			EaseFactor:     fromHundredths(s.initial),
			IntervalDays:   FailedIntervalDays,
			NextReviewDate: addDays(s.clock.Now(), FailedIntervalDays),
		}
	}

	sorted := sortedByDate(reviews)
	ease := s.ease(sorted)
	streak := trailingStreak(sorted)
	interval := s.interval(streak, ease)

	return Assessment{
		EaseFactor:     fromHundredths(ease),
		Streak:         streak,
		IntervalDays:   interval,
		NextReviewDate: addDays(latest(sorted), interval),
	}
}

// NextReviewDate returns latest + interval days, or now + 1 day for an
// empty history.
func (s *SpacedRepetition) NextReviewDate(reviews []Review) time.Time {
	return s.Assess(reviews).NextReviewDate
}

// EaseFactor returns the clamped ease factor for the trailing window of reviews.
func (s *SpacedRepetition) EaseFactor(reviews []Review) float64 {
	return s.Assess(reviews).EaseFactor
}

// IntervalDays returns the interval the next due date is offset by.
func (s *SpacedRepetition) IntervalDays(reviews []Review) int {
	return s.Assess(reviews).IntervalDays
}

// ease sums the adjustments of the trailing window and clamps once.
func (s *SpacedRepetition) ease(sorted []Review) int {
	window := sorted
	if len(window) > EaseWindow {
		window = window[len(window)-EaseWindow:]
	}

	ease := s.initial
	for _, r := range window {
		if r.Correct {
			ease += easeStepCorrect
		} else {
			ease += easeStepIncorrect
		}
	}
	return min(max(ease, s.min), s.max)
}

func (s *SpacedRepetition) interval(streak, ease int) int {
	switch streak {
	case 0:
		return FailedIntervalDays
	case 1:
		return FirstIntervalDays
	}

	base := FirstIntervalDays
	for i := 0; i < streak-2; i++ {
		// Growth is monotone for ease >= 1, so the cap can short-circuit.
		if base >= MaxIntervalDays && ease >= 100 {
			break
		}
		base = base * ease / 100
	}
	return min(base, MaxIntervalDays)
}

// trailingStreak counts consecutive correct reviews backwards from the latest.
func trailingStreak(sorted []Review) int {
	streak := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		if !sorted[i].Correct {
			break
		}
		streak++
	}
	return streak
}

func toHundredths(v float64) int {
	return int(math.Round(v * 100))
}

func fromHundredths(v int) float64 {
	return float64(v) / 100
}
