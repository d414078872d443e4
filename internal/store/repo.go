package store

import (
	"context"
	"time"

	"github.com/abhisek/drill/internal/spacedrep"
)

// Problem is a stored practice problem.
type Problem struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	CreatedDate   time.Time `json:"created_date"`
	Suspended     bool      `json:"suspended"`
	SuspendReason *string   `json:"suspend_reason"`
}

// Review is a stored answer attempt.
type Review struct {
	ID          int       `json:"id"`
	ProblemID   int       `json:"problem_id"`
	CreatedDate time.Time `json:"created_date"`
	Correct     bool      `json:"correct"`
}

// Due is the stored next due date of a problem.
type Due struct {
	ID        int       `json:"id"`
	ProblemID int       `json:"problem_id"`
	DueDate   time.Time `json:"due_date"`
}

// NewReview describes a review to append. A zero CreatedDate means now.
type NewReview struct {
	ProblemID   int
	Correct     bool
	CreatedDate time.Time
}

// History converts stored reviews into scheduler input.
func History(reviews []Review) []spacedrep.Review {
	out := make([]spacedrep.Review, len(reviews))
	for i, r := range reviews {
		out[i] = spacedrep.Review{
			ID:          r.ID,
			ProblemID:   r.ProblemID,
			CreatedDate: r.CreatedDate,
			Correct:     r.Correct,
		}
	}
	return out
}

// ProblemRepo manages practice problems.
type ProblemRepo interface {
	// Create stores a new problem.
	Create(ctx context.Context, name string) (*Problem, error)

	// Get returns a problem by id, or ErrNotFound.
	Get(ctx context.Context, id int) (*Problem, error)

	// List returns all problems ordered by id.
	List(ctx context.Context) ([]Problem, error)

	// ListDue returns non-suspended problems with no due date or a due
	// date at or before now, ordered by id.
	ListDue(ctx context.Context, now time.Time) ([]Problem, error)

	// ListSuspended returns suspended problems ordered by id.
	ListSuspended(ctx context.Context) ([]Problem, error)

	// Suspend marks a problem suspended with an optional reason.
	Suspend(ctx context.Context, id int, reason *string) (*Problem, error)

	// Unsuspend clears the suspended flag and reason.
	Unsuspend(ctx context.Context, id int) (*Problem, error)

	// Delete removes a problem together with its reviews and due date.
	Delete(ctx context.Context, id int) error
}

// ReviewRepo provides append and query access to reviews.
type ReviewRepo interface {
	// Create appends a review.
	Create(ctx context.Context, r NewReview) (*Review, error)

	// Get returns a review by id, or ErrNotFound.
	Get(ctx context.Context, id int) (*Review, error)

	// List returns reviews ordered by id with offset pagination
	// (limit 0 = unlimited).
	List(ctx context.Context, offset, limit int) ([]Review, error)

	// ListByProblem returns the full history of one problem, oldest first.
	ListByProblem(ctx context.Context, problemID int) ([]Review, error)

	// All returns every review grouped by problem id, oldest first.
	All(ctx context.Context) (map[int][]Review, error)

	// Delete removes a review.
	Delete(ctx context.Context, id int) error
}

// DueRepo manages the per-problem due dates.
type DueRepo interface {
	// Upsert creates or overwrites the due date of a problem.
	Upsert(ctx context.Context, problemID int, dueDate time.Time) (*Due, error)

	// Get returns the due row of a problem, or ErrNotFound.
	Get(ctx context.Context, problemID int) (*Due, error)

	// All returns every due row keyed by problem id.
	All(ctx context.Context) (map[int]Due, error)
}
