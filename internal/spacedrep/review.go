package spacedrep

import (
	"math"
	"time"
)

// Review is one recorded answer attempt for a problem. Schedulers treat it
// as read-only input.
type Review struct {
	ID          int       `json:"id"`
	ProblemID   int       `json:"problem_id"`
	CreatedDate time.Time `json:"created_date"`
	Correct     bool      `json:"correct"`
}

// DueState is the scheduled due date of a single problem.
type DueState struct {
	ProblemID int       `json:"problem_id"`
	DueDate   time.Time `json:"due_date"`
}

// IsDue returns true if the problem is due (at or past the due date).
func (ds *DueState) IsDue(now time.Time) bool {
	return !now.Before(ds.DueDate)
}

// OverdueDays returns how many days past due the problem is. Returns 0 if not yet due.
func (ds *DueState) OverdueDays(now time.Time) float64 {
	if now.Before(ds.DueDate) {
		return 0
	}
	return now.Sub(ds.DueDate).Hours() / 24.0
}

// DaysUntilDue returns the whole days from now until the due date, floored,
// so anything already past due is negative.
func (ds *DueState) DaysUntilDue(now time.Time) int {
	return int(math.Floor(float64(ds.DueDate.Sub(now)) / float64(Day)))
}

// DueBucket groups problems by how soon they are due.
type DueBucket string

const (
	DueOverdue   DueBucket = "overdue"
	DueToday     DueBucket = "today"
	DueThisWeek  DueBucket = "this_week"
	DueThisMonth DueBucket = "this_month"
	DueLater     DueBucket = "later"
)

// Bucket classifies the due date relative to now.
func (ds *DueState) Bucket(now time.Time) DueBucket {
	days := ds.DaysUntilDue(now)
	switch {
	case days < 0:
		return DueOverdue
	case days == 0:
		return DueToday
	case days <= 7:
		return DueThisWeek
	case days <= 30:
		return DueThisMonth
	default:
		return DueLater
	}
}
