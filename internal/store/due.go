package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/drill/ent"
	"github.com/abhisek/drill/ent/due"
)

// dueRepo implements DueRepo using the ent client.
type dueRepo struct {
	client *ent.Client
}

func (r *dueRepo) Upsert(ctx context.Context, problemID int, dueDate time.Time) (*Due, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	current, err := tx.Due.Query().
		Where(due.ProblemID(problemID)).
		Only(ctx)
	var saved *ent.Due
	switch {
	case ent.IsNotFound(err):
		saved, err = tx.Due.Create().
			SetProblemID(problemID).
			SetDueDate(dueDate.UTC()).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, rollback(tx, fmt.Errorf("problem %d: %w", problemID, ErrNotFound))
			}
			return nil, rollback(tx, fmt.Errorf("create due: %w", err))
		}
	case err != nil:
		return nil, rollback(tx, fmt.Errorf("query due: %w", err))
	default:
		saved, err = tx.Due.UpdateOne(current).
			SetDueDate(dueDate.UTC()).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("update due: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return entDueToDue(saved), nil
}

func (r *dueRepo) Get(ctx context.Context, problemID int) (*Due, error) {
	d, err := r.client.Due.Query().
		Where(due.ProblemID(problemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("due for problem %d: %w", problemID, ErrNotFound)
		}
		return nil, fmt.Errorf("query due: %w", err)
	}
	return entDueToDue(d), nil
}

func (r *dueRepo) All(ctx context.Context) (map[int]Due, error) {
	ds, err := r.client.Due.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query dues: %w", err)
	}
	out := make(map[int]Due, len(ds))
	for _, d := range ds {
		out[d.ProblemID] = *entDueToDue(d)
	}
	return out, nil
}

// entDueToDue converts an ent Due to a store Due.
func entDueToDue(d *ent.Due) *Due {
	return &Due{
		ID:        d.ID,
		ProblemID: d.ProblemID,
		DueDate:   d.DueDate,
	}
}
