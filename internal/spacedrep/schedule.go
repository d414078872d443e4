package spacedrep

import "time"

// Day is the unit every interval is measured in. Intervals are exact 24h
// spans, not calendar days.
const Day = 24 * time.Hour

// Default ease-adaptive parameters.
const (
	DefaultInitialEase = 2.5
	DefaultMinEase     = 1.3
	DefaultMaxEase     = 3.0
)

// EaseWindow is the number of most recent reviews that feed the ease factor.
const EaseWindow = 10

// Ease adjustments per review, in hundredths.
const (
	easeStepCorrect   = 10
	easeStepIncorrect = -20
)

// FailedIntervalDays is the interval after an incorrect latest review.
const FailedIntervalDays = 1

// FirstIntervalDays is the interval after a single correct review, and the
// base the geometric growth starts from.
const FirstIntervalDays = 6

// MaxIntervalDays caps the ease-adaptive interval.
const MaxIntervalDays = 365
