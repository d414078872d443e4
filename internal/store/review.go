package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/drill/ent"
	"github.com/abhisek/drill/ent/review"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Create(ctx context.Context, nr NewReview) (*Review, error) {
	created := nr.CreatedDate
	if created.IsZero() {
		created = time.Now()
	}

	rv, err := r.client.Review.Create().
		SetProblemID(nr.ProblemID).
		SetCorrect(nr.Correct).
		SetCreatedDate(created.UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("problem %d: %w", nr.ProblemID, ErrNotFound)
		}
		return nil, fmt.Errorf("save review: %w", err)
	}
	return entReviewToReview(rv), nil
}

func (r *reviewRepo) Get(ctx context.Context, id int) (*Review, error) {
	rv, err := r.client.Review.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("review %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return entReviewToReview(rv), nil
}

func (r *reviewRepo) List(ctx context.Context, offset, limit int) ([]Review, error) {
	q := r.client.Review.Query().
		Order(ent.Asc(review.FieldID)).
		Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	rvs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	return entReviewsToReviews(rvs), nil
}

func (r *reviewRepo) ListByProblem(ctx context.Context, problemID int) ([]Review, error) {
	rvs, err := r.client.Review.Query().
		Where(review.ProblemID(problemID)).
		Order(ent.Asc(review.FieldCreatedDate), ent.Asc(review.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query problem reviews: %w", err)
	}
	return entReviewsToReviews(rvs), nil
}

func (r *reviewRepo) All(ctx context.Context) (map[int][]Review, error) {
	rvs, err := r.client.Review.Query().
		Order(ent.Asc(review.FieldCreatedDate), ent.Asc(review.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all reviews: %w", err)
	}

	byProblem := make(map[int][]Review)
	for _, rv := range rvs {
		byProblem[rv.ProblemID] = append(byProblem[rv.ProblemID], *entReviewToReview(rv))
	}
	return byProblem, nil
}

func (r *reviewRepo) Delete(ctx context.Context, id int) error {
	err := r.client.Review.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("review %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// entReviewToReview converts an ent Review to a store Review.
func entReviewToReview(rv *ent.Review) *Review {
	return &Review{
		ID:          rv.ID,
		ProblemID:   rv.ProblemID,
		CreatedDate: rv.CreatedDate,
		Correct:     rv.Correct,
	}
}

func entReviewsToReviews(rvs []*ent.Review) []Review {
	out := make([]Review, len(rvs))
	for i, rv := range rvs {
		out[i] = *entReviewToReview(rv)
	}
	return out
}
