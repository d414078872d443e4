package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/drill/ent"
	"github.com/abhisek/drill/ent/due"
	"github.com/abhisek/drill/ent/problem"
	"github.com/abhisek/drill/ent/review"
)

// problemRepo implements ProblemRepo using the ent client.
type problemRepo struct {
	client *ent.Client
}

func (r *problemRepo) Create(ctx context.Context, name string) (*Problem, error) {
	p, err := r.client.Problem.Create().
		SetName(name).
		SetCreatedDate(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save problem: %w", err)
	}
	return entProblemToProblem(p), nil
}

func (r *problemRepo) Get(ctx context.Context, id int) (*Problem, error) {
	p, err := r.client.Problem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("problem %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get problem: %w", err)
	}
	return entProblemToProblem(p), nil
}

func (r *problemRepo) List(ctx context.Context) ([]Problem, error) {
	ps, err := r.client.Problem.Query().
		Order(ent.Asc(problem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query problems: %w", err)
	}
	return entProblemsToProblems(ps), nil
}

func (r *problemRepo) ListDue(ctx context.Context, now time.Time) ([]Problem, error) {
	ps, err := r.client.Problem.Query().
		Where(
			problem.Suspended(false),
			problem.Or(
				problem.Not(problem.HasDue()),
				problem.HasDueWith(due.DueDateLTE(now.UTC())),
			),
		).
		Order(ent.Asc(problem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due problems: %w", err)
	}
	return entProblemsToProblems(ps), nil
}

func (r *problemRepo) ListSuspended(ctx context.Context) ([]Problem, error) {
	ps, err := r.client.Problem.Query().
		Where(problem.Suspended(true)).
		Order(ent.Asc(problem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query suspended problems: %w", err)
	}
	return entProblemsToProblems(ps), nil
}

func (r *problemRepo) Suspend(ctx context.Context, id int, reason *string) (*Problem, error) {
	update := r.client.Problem.UpdateOneID(id).SetSuspended(true)
	if reason != nil {
		update = update.SetSuspendReason(*reason)
	} else {
		update = update.ClearSuspendReason()
	}
	p, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("problem %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("suspend problem: %w", err)
	}
	return entProblemToProblem(p), nil
}

func (r *problemRepo) Unsuspend(ctx context.Context, id int) (*Problem, error) {
	p, err := r.client.Problem.UpdateOneID(id).
		SetSuspended(false).
		ClearSuspendReason().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("problem %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("unsuspend problem: %w", err)
	}
	return entProblemToProblem(p), nil
}

func (r *problemRepo) Delete(ctx context.Context, id int) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Review.Delete().Where(review.ProblemID(id)).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete reviews: %w", err))
	}
	if _, err := tx.Due.Delete().Where(due.ProblemID(id)).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete due: %w", err))
	}
	if err := tx.Problem.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return rollback(tx, fmt.Errorf("problem %d: %w", id, ErrNotFound))
		}
		return rollback(tx, fmt.Errorf("delete problem: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// entProblemToProblem converts an ent Problem to a store Problem.
func entProblemToProblem(p *ent.Problem) *Problem {
	return &Problem{
		ID:            p.ID,
		Name:          p.Name,
		CreatedDate:   p.CreatedDate,
		Suspended:     p.Suspended,
		SuspendReason: p.SuspendReason,
	}
}

func entProblemsToProblems(ps []*ent.Problem) []Problem {
	out := make([]Problem, len(ps))
	for i, p := range ps {
		out[i] = *entProblemToProblem(p)
	}
	return out
}
