package spacedrep

import (
	"testing"
	"time"
)

func TestIsDue_BeforeDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	ds := &DueState{DueDate: now.Add(24 * time.Hour)}
	if ds.IsDue(now) {
		t.Error("expected not due before due date")
	}
}

func TestIsDue_OnDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	ds := &DueState{DueDate: now}
	if !ds.IsDue(now) {
		t.Error("expected due on due date")
	}
}

func TestIsDue_AfterDate(t *testing.T) {
	now := time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC)
	ds := &DueState{DueDate: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	if !ds.IsDue(now) {
		t.Error("expected due after due date")
	}
}

func TestOverdueDays_NotDue(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	ds := &DueState{DueDate: now.Add(48 * time.Hour)}
	if got := ds.OverdueDays(now); got != 0 {
		t.Errorf("OverdueDays() = %f, want 0", got)
	}
}

func TestOverdueDays_ThreeDaysOverdue(t *testing.T) {
	dueDate := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	now := dueDate.Add(3 * 24 * time.Hour)
	ds := &DueState{DueDate: dueDate}
	got := ds.OverdueDays(now)
	if got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays() = %f, want ~3.0", got)
	}
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"one hour ago", now.Add(-time.Hour), -1},
		{"exactly now", now, 0},
		{"in 23 hours", now.Add(23 * time.Hour), 0},
		{"in 36 hours", now.Add(36 * time.Hour), 1},
		{"three days ago", now.Add(-72 * time.Hour), -3},
	}
	for _, tt := range tests {
		ds := &DueState{DueDate: tt.due}
		if got := ds.DaysUntilDue(now); got != tt.want {
			t.Errorf("%s: DaysUntilDue() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestBucket(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		due  time.Time
		want DueBucket
	}{
		{now.Add(-time.Minute), DueOverdue},
		{now.Add(time.Hour), DueToday},
		{now.Add(3 * Day), DueThisWeek},
		{now.Add(7*Day + time.Hour), DueThisWeek},
		{now.Add(8 * Day), DueThisMonth},
		{now.Add(30 * Day), DueThisMonth},
		{now.Add(31 * Day), DueLater},
	}
	for _, tt := range tests {
		ds := &DueState{DueDate: tt.due}
		if got := ds.Bucket(now); got != tt.want {
			t.Errorf("Bucket(due=%v) = %q, want %q", tt.due, got, tt.want)
		}
	}
}
