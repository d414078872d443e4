package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"problems", "reviews", "dues"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestProblemCreateGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProblemRepo()
	ctx := context.Background()

	p, err := repo.Create(ctx, "bytes2bits")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 || p.Name != "bytes2bits" || p.Suspended {
		t.Errorf("created problem = %+v", p)
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "bytes2bits" {
		t.Errorf("name = %q, want bytes2bits", got.Name)
	}

	_, err = repo.Get(ctx, p.ID+100)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing: err = %v, want ErrNotFound", err)
	}
}

func TestProblemSuspendUnsuspend(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProblemRepo()
	ctx := context.Background()

	p, err := repo.Create(ctx, "roofline")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	reason := "too easy"
	sp, err := repo.Suspend(ctx, p.ID, &reason)
	if err != nil {
		t.Fatalf("suspend: %v", err)
	}
	if !sp.Suspended || sp.SuspendReason == nil || *sp.SuspendReason != reason {
		t.Errorf("suspended problem = %+v", sp)
	}

	suspended, err := repo.ListSuspended(ctx)
	if err != nil {
		t.Fatalf("list suspended: %v", err)
	}
	if len(suspended) != 1 || suspended[0].ID != p.ID {
		t.Errorf("suspended = %+v, want [%d]", suspended, p.ID)
	}

	up, err := repo.Unsuspend(ctx, p.ID)
	if err != nil {
		t.Fatalf("unsuspend: %v", err)
	}
	if up.Suspended || up.SuspendReason != nil {
		t.Errorf("unsuspended problem = %+v", up)
	}

	if _, err := repo.Suspend(ctx, 999, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("suspend missing: err = %v, want ErrNotFound", err)
	}
}

func TestProblemListDue(t *testing.T) {
	s := openTestStore(t)
	problems := s.ProblemRepo()
	dues := s.DueRepo()
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	never, _ := problems.Create(ctx, "bytes2bits")
	past, _ := problems.Create(ctx, "ram_bandwidth")
	future, _ := problems.Create(ctx, "roofline")
	suspended, _ := problems.Create(ctx, "arithmetic_intensity")

	if _, err := dues.Upsert(ctx, past.ID, now.Add(-time.Hour)); err != nil {
		t.Fatalf("upsert past: %v", err)
	}
	if _, err := dues.Upsert(ctx, future.ID, now.Add(time.Hour)); err != nil {
		t.Fatalf("upsert future: %v", err)
	}
	if _, err := problems.Suspend(ctx, suspended.ID, nil); err != nil {
		t.Fatalf("suspend: %v", err)
	}

	got, err := problems.ListDue(ctx, now)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	var ids []int
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	if len(ids) != 2 || ids[0] != never.ID || ids[1] != past.ID {
		t.Errorf("due ids = %v, want [%d %d]", ids, never.ID, past.ID)
	}
}

func TestProblemDeleteCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, _ := s.ProblemRepo().Create(ctx, "bytes2bits")
	if _, err := s.ReviewRepo().Create(ctx, NewReview{ProblemID: p.ID, Correct: true}); err != nil {
		t.Fatalf("create review: %v", err)
	}
	if _, err := s.DueRepo().Upsert(ctx, p.ID, time.Now()); err != nil {
		t.Fatalf("upsert due: %v", err)
	}

	if err := s.ProblemRepo().Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	reviews, err := s.ReviewRepo().ListByProblem(ctx, p.ID)
	if err != nil {
		t.Fatalf("list reviews: %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("reviews after delete = %d, want 0", len(reviews))
	}
	if _, err := s.DueRepo().Get(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("due after delete: err = %v, want ErrNotFound", err)
	}
	if err := s.ProblemRepo().Delete(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestReviewCreateAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ReviewRepo()

	p, _ := s.ProblemRepo().Create(ctx, "bytes2bits")
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	// Insert out of chronological order; ListByProblem returns oldest first.
	for i, offset := range []int{2, 0, 1} {
		_, err := repo.Create(ctx, NewReview{
			ProblemID:   p.ID,
			Correct:     i%2 == 0,
			CreatedDate: base.Add(time.Duration(offset) * time.Hour),
		})
		if err != nil {
			t.Fatalf("create review %d: %v", i, err)
		}
	}

	history, err := repo.ListByProblem(ctx, p.ID)
	if err != nil {
		t.Fatalf("list by problem: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history len = %d, want 3", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].CreatedDate.Before(history[i-1].CreatedDate) {
			t.Errorf("history not sorted at %d: %v before %v", i, history[i].CreatedDate, history[i-1].CreatedDate)
		}
	}
	if !history[0].CreatedDate.Equal(base) {
		t.Errorf("oldest = %v, want %v", history[0].CreatedDate, base)
	}

	page, err := repo.List(ctx, 1, 1)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 1 || page[0].ID != 2 {
		t.Errorf("page = %+v, want review id 2", page)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all[p.ID]) != 3 {
		t.Errorf("all[%d] len = %d, want 3", p.ID, len(all[p.ID]))
	}
}

func TestReviewCreateUnknownProblem(t *testing.T) {
	s := openTestStore(t)
	_, err := s.ReviewRepo().Create(context.Background(), NewReview{ProblemID: 42, Correct: true})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReviewDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p, _ := s.ProblemRepo().Create(ctx, "bytes2bits")
	rv, err := s.ReviewRepo().Create(ctx, NewReview{ProblemID: p.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.ReviewRepo().Delete(ctx, rv.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.ReviewRepo().Get(ctx, rv.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get deleted: err = %v, want ErrNotFound", err)
	}
	if err := s.ReviewRepo().Delete(ctx, rv.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete twice: err = %v, want ErrNotFound", err)
	}
}

func TestDueUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.DueRepo()
	p, _ := s.ProblemRepo().Create(ctx, "bytes2bits")

	first := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	d1, err := repo.Upsert(ctx, p.ID, first)
	if err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	second := first.Add(6 * 24 * time.Hour)
	d2, err := repo.Upsert(ctx, p.ID, second)
	if err != nil {
		t.Fatalf("upsert (update): %v", err)
	}
	if d2.ID != d1.ID {
		t.Errorf("upsert created a second row: %d != %d", d2.ID, d1.ID)
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.DueDate.Equal(second) {
		t.Errorf("due date = %v, want %v", got.DueDate, second)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("due rows = %d, want 1", len(all))
	}
}

func TestHistoryConversion(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h := History([]Review{{ID: 3, ProblemID: 7, CreatedDate: at, Correct: true}})
	if len(h) != 1 || h[0].ID != 3 || h[0].ProblemID != 7 || !h[0].CreatedDate.Equal(at) || !h[0].Correct {
		t.Errorf("History() = %+v", h)
	}
}
