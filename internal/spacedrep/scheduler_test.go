package spacedrep

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() Clock {
	return func() time.Time { return testNow }
}

// history builds reviews one hour apart, ending at end, from a pattern of
// outcomes in chronological order.
func history(end time.Time, outcomes ...bool) []Review {
	reviews := make([]Review, len(outcomes))
	for i, correct := range outcomes {
		reviews[i] = Review{
			ID:          i + 1,
			ProblemID:   1,
			CreatedDate: end.Add(-time.Duration(len(outcomes)-1-i) * time.Hour),
			Correct:     correct,
		}
	}
	return reviews
}

func shuffled(rng *rand.Rand, reviews []Review) []Review {
	out := append([]Review(nil), reviews...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func TestSimple_NoReviews(t *testing.T) {
	s := NewSimple(fixedClock())
	got := s.NextReviewDate(nil)
	if !got.Equal(testNow) {
		t.Errorf("NextReviewDate(empty) = %v, want %v", got, testNow)
	}
}

func TestSimple_NoReviews_WallClock(t *testing.T) {
	s := NewSimple(nil)
	got := s.NextReviewDate([]Review{})
	if got.After(time.Now()) {
		t.Errorf("NextReviewDate(empty) = %v, want <= now", got)
	}
}

func TestSimple_Streaks(t *testing.T) {
	end := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		outcomes []bool
		wantDays int
	}{
		{"one correct", []bool{true}, 2},
		{"three correct", []bool{true, true, true}, 4},
		{"two correct then incorrect", []bool{true, true, false}, 1},
		{"incorrect then two correct", []bool{false, true, true}, 3},
		{"single incorrect", []bool{false}, 1},
		{"streak after late reset", []bool{true, true, true, false, true}, 2},
	}

	s := NewSimple(fixedClock())
	for _, tt := range tests {
		got := s.NextReviewDate(history(end, tt.outcomes...))
		want := end.Add(time.Duration(tt.wantDays) * Day)
		if !got.Equal(want) {
			t.Errorf("%s: NextReviewDate = %v, want %v", tt.name, got, want)
		}
	}
}

func TestSimple_AnchorsOnLatestReview(t *testing.T) {
	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	last := first.Add(10 * Day)
	reviews := []Review{
		{ID: 1, CreatedDate: last, Correct: true},
		{ID: 2, CreatedDate: first, Correct: true},
	}
	got := NewSimple(nil).NextReviewDate(reviews)
	want := last.Add(3 * Day)
	if !got.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v (anchored on most recent review)", got, want)
	}
}

func TestSimple_DoesNotMutateInput(t *testing.T) {
	end := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	reviews := history(end, true, false, true)
	reviews[0], reviews[2] = reviews[2], reviews[0]
	before := append([]Review(nil), reviews...)

	NewSimple(nil).NextReviewDate(reviews)

	for i := range reviews {
		if reviews[i] != before[i] {
			t.Fatalf("input reordered at %d: %+v != %+v", i, reviews[i], before[i])
		}
	}
}

func TestSpacedRepetition_NoReviews(t *testing.T) {
	sr := NewSpacedRepetition(DefaultEaseConfig(), fixedClock())
	got := sr.NextReviewDate(nil)
	want := testNow.Add(Day)
	if !got.Equal(want) {
		t.Errorf("NextReviewDate(empty) = %v, want %v", got, want)
	}
}

func TestSpacedRepetition_Cases(t *testing.T) {
	end := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		outcomes []bool
		wantDays int
	}{
		{"single correct", []bool{true}, 6},
		{"two correct", []bool{true, true}, 6},
		{"three correct", []bool{true, true, true}, 16},     // ease 2.8, floor(6*2.8)
		{"four correct", []bool{true, true, true, true}, 49}, // ease 2.9: 6 -> 17 -> 49
		{"latest incorrect", []bool{true, true, false}, 1},
		{"single incorrect", []bool{false}, 1},
		{"recovered once", []bool{true, false, true}, 6},
	}
	sr := NewSpacedRepetition(DefaultEaseConfig(), fixedClock())
	for _, tt := range tests {
		got := sr.NextReviewDate(history(end, tt.outcomes...))
		want := end.Add(time.Duration(tt.wantDays) * Day)
		if !got.Equal(want) {
			t.Errorf("%s: NextReviewDate = %v, want %v", tt.name, got, want)
		}
	}
}

func TestSpacedRepetition_EaseFactor(t *testing.T) {
	end := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	sr := NewSpacedRepetition(DefaultEaseConfig(), nil)

	tests := []struct {
		name     string
		outcomes []bool
		want     float64
	}{
		{"empty", nil, 2.5},
		{"two correct", []bool{true, true}, 2.7},
		{"three correct is exact", []bool{true, true, true}, 2.8},
		{"clamped at max", []bool{true, true, true, true, true, true, true, true}, 3.0},
		{"one incorrect", []bool{false}, 2.3},
		{"clamped at min", []bool{false, false, false, false, false, false, false}, 1.3},
		{"mixed", []bool{true, false, true, false}, 2.3},
	}
	for _, tt := range tests {
		if got := sr.EaseFactor(history(end, tt.outcomes...)); got != tt.want {
			t.Errorf("%s: EaseFactor = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSpacedRepetition_EaseWindowIgnoresOlderReviews(t *testing.T) {
	end := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	outcomes := make([]bool, 0, 15)
	for i := 0; i < 5; i++ {
		outcomes = append(outcomes, false)
	}
	for i := 0; i < 10; i++ {
		outcomes = append(outcomes, true)
	}
	sr := NewSpacedRepetition(DefaultEaseConfig(), nil)
	if got := sr.EaseFactor(history(end, outcomes...)); got != 3.0 {
		t.Errorf("EaseFactor = %v, want 3.0 (old failures outside window)", got)
	}
}

func TestSpacedRepetition_ClampOnlyAtEnd(t *testing.T) {
	end := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	// 8 correct push the running value to 3.3 before two failures bring it to 2.9.
	outcomes := []bool{true, true, true, true, true, true, true, true, false, false}
	sr := NewSpacedRepetition(DefaultEaseConfig(), nil)
	if got := sr.EaseFactor(history(end, outcomes...)); got != 2.9 {
		t.Errorf("EaseFactor = %v, want 2.9", got)
	}
}

func TestSpacedRepetition_Assess(t *testing.T) {
	end := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	sr := NewSpacedRepetition(DefaultEaseConfig(), nil)
	a := sr.Assess(history(end, false, true, true, true))
	if a.Streak != 3 {
		t.Errorf("Streak = %d, want 3", a.Streak)
	}
	if a.EaseFactor != 2.6 {
		t.Errorf("EaseFactor = %v, want 2.6", a.EaseFactor)
	}
	if a.IntervalDays != 15 { // floor(6*2.6)
		t.Errorf("IntervalDays = %d, want 15", a.IntervalDays)
	}
	if want := end.Add(15 * Day); !a.NextReviewDate.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v", a.NextReviewDate, want)
	}
}

func TestSpacedRepetition_CustomConfig(t *testing.T) {
	end := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	sr := NewSpacedRepetition(EaseConfig{Initial: 2.0, Min: 1.5, Max: 2.2}, nil)
	if got := sr.EaseFactor(history(end, true, true, true, true)); got != 2.2 {
		t.Errorf("EaseFactor = %v, want 2.2", got)
	}
	if got := sr.EaseFactor(history(end, false, false, false)); got != 1.5 {
		t.Errorf("EaseFactor = %v, want 1.5", got)
	}
}

func TestProperty_OrderIndependence(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	schedulers := []Scheduler{
		NewSimple(fixedClock()),
		NewSpacedRepetition(DefaultEaseConfig(), fixedClock()),
	}
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for iter := 0; iter < 200; iter++ {
		n := rng.IntN(25)
		reviews := make([]Review, n)
		for i := range reviews {
			reviews[i] = Review{
				ID:          i + 1,
				CreatedDate: base.Add(time.Duration(rng.IntN(3)) * time.Hour),
				Correct:     rng.IntN(3) > 0,
			}
			if rng.IntN(4) == 0 {
				reviews[i].ID = 0
			}
		}
		for _, s := range schedulers {
			want := s.NextReviewDate(reviews)
			got := s.NextReviewDate(shuffled(rng, reviews))
			if !got.Equal(want) {
				t.Fatalf("%s: shuffled input changed result: %v != %v", s.Name(), got, want)
			}
		}
	}
}

func TestTiedTimestamps_OrderIndependent(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		reviews []Review
	}{
		{"distinct ids", []Review{
			{ID: 1, CreatedDate: at, Correct: true},
			{ID: 2, CreatedDate: at, Correct: false},
		}},
		{"no ids", []Review{
			{CreatedDate: at, Correct: true},
			{CreatedDate: at, Correct: false},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reversed := slices.Clone(tt.reviews)
			slices.Reverse(reversed)
			for _, name := range Names() {
				s, err := Dispatch(name, fixedClock())
				if err != nil {
					t.Fatal(err)
				}
				want := s.NextReviewDate(tt.reviews)
				if got := s.NextReviewDate(reversed); !got.Equal(want) {
					t.Errorf("%s: reversed input = %v, want %v", name, got, want)
				}
			}
		})
	}
}

func TestSortedByDate_TieBreak(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	got := sortedByDate([]Review{
		{ID: 0, CreatedDate: at, Correct: true},
		{ID: 3, CreatedDate: at, Correct: false},
		{ID: 0, CreatedDate: at, Correct: false},
		{ID: 2, CreatedDate: at.Add(-time.Hour), Correct: true},
	})
	want := []Review{
		{ID: 2, CreatedDate: at.Add(-time.Hour), Correct: true},
		{ID: 0, CreatedDate: at, Correct: false},
		{ID: 0, CreatedDate: at, Correct: true},
		{ID: 3, CreatedDate: at, Correct: false},
	}
	if !slices.Equal(got, want) {
		t.Errorf("sortedByDate() = %+v, want %+v", got, want)
	}
}

func TestProperty_EaseBoundsAndIntervalCap(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	sr := NewSpacedRepetition(DefaultEaseConfig(), fixedClock())
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for iter := 0; iter < 500; iter++ {
		n := rng.IntN(60)
		reviews := make([]Review, n)
		for i := range reviews {
			reviews[i] = Review{
				ID:          i + 1,
				CreatedDate: base.Add(time.Duration(i) * time.Minute),
				Correct:     rng.IntN(5) > 0,
			}
		}
		a := sr.Assess(reviews)
		if a.EaseFactor < DefaultMinEase || a.EaseFactor > DefaultMaxEase {
			t.Fatalf("ease %v outside [%v, %v]", a.EaseFactor, DefaultMinEase, DefaultMaxEase)
		}
		if a.IntervalDays < 1 || a.IntervalDays > MaxIntervalDays {
			t.Fatalf("interval %d outside [1, %d]", a.IntervalDays, MaxIntervalDays)
		}
	}
}

func TestSpacedRepetition_LongStreakCapped(t *testing.T) {
	end := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	outcomes := make([]bool, 1000)
	for i := range outcomes {
		outcomes[i] = true
	}
	sr := NewSpacedRepetition(DefaultEaseConfig(), nil)
	got := sr.NextReviewDate(history(end, outcomes...))
	if want := end.Add(MaxIntervalDays * Day); !got.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v", got, want)
	}
}

func TestDispatch(t *testing.T) {
	s, err := Dispatch("simple", nil)
	if err != nil {
		t.Fatalf("Dispatch(simple): %v", err)
	}
	if _, ok := s.(*Simple); !ok {
		t.Errorf("Dispatch(simple) = %T, want *Simple", s)
	}

	s, err = Dispatch("spaced_repetition", nil)
	if err != nil {
		t.Fatalf("Dispatch(spaced_repetition): %v", err)
	}
	if _, ok := s.(*SpacedRepetition); !ok {
		t.Errorf("Dispatch(spaced_repetition) = %T, want *SpacedRepetition", s)
	}
}

func TestDispatch_Unknown(t *testing.T) {
	for _, name := range []string{"", "invalid", "Simple", "sm2"} {
		s, err := Dispatch(name, nil)
		if s != nil {
			t.Errorf("Dispatch(%q) returned scheduler %T", name, s)
		}
		var unknown *UnknownSchedulerError
		if !errors.As(err, &unknown) {
			t.Fatalf("Dispatch(%q) error = %v, want *UnknownSchedulerError", name, err)
		}
		if unknown.Name != name {
			t.Errorf("UnknownSchedulerError.Name = %q, want %q", unknown.Name, name)
		}
	}
}

func TestNames_AllDispatch(t *testing.T) {
	for _, name := range Names() {
		s, err := Dispatch(name, nil)
		if err != nil {
			t.Fatalf("Dispatch(%q): %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("Name() = %q, want %q", s.Name(), name)
		}
	}
}

func TestClockNow(t *testing.T) {
	if got := fixedClock().Now(); !got.Equal(testNow) {
		t.Errorf("Now() = %v, want %v", got, testNow)
	}
	var c Clock
	before := time.Now()
	if got := c.Now(); got.Before(before) {
		t.Errorf("nil Clock Now() = %v, want >= %v", got, before)
	}
}
