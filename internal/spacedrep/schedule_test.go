package spacedrep

import "testing"

func TestDefaultEaseConfig(t *testing.T) {
	cfg := DefaultEaseConfig()
	if cfg.Initial != 2.5 || cfg.Min != 1.3 || cfg.Max != 3.0 {
		t.Errorf("DefaultEaseConfig() = %+v, want {2.5 1.3 3}", cfg)
	}
}

func TestConstants(t *testing.T) {
	if EaseWindow != 10 {
		t.Errorf("EaseWindow = %d, want 10", EaseWindow)
	}
	if FailedIntervalDays != 1 {
		t.Errorf("FailedIntervalDays = %d, want 1", FailedIntervalDays)
	}
	if FirstIntervalDays != 6 {
		t.Errorf("FirstIntervalDays = %d, want 6", FirstIntervalDays)
	}
	if MaxIntervalDays != 365 {
		t.Errorf("MaxIntervalDays = %d, want 365", MaxIntervalDays)
	}
}

func TestInterval_Progression(t *testing.T) {
	sr := NewSpacedRepetition(DefaultEaseConfig(), nil)
	tests := []struct {
		streak int
		ease   int
		want   int
	}{
		{0, 250, 1},
		{1, 250, 6},
		{2, 270, 6},
		{3, 280, 16},  // floor(6*2.8)
		{4, 290, 49},  // 6 -> 17 -> 49
		{5, 300, 162}, // 6 -> 18 -> 54 -> 162
		{6, 300, 365}, // 486 capped
		{50, 300, 365},
		{3, 130, 7}, // floor(6*1.3)
	}
	for _, tt := range tests {
		if got := sr.interval(tt.streak, tt.ease); got != tt.want {
			t.Errorf("interval(streak=%d, ease=%d) = %d, want %d", tt.streak, tt.ease, got, tt.want)
		}
	}
}
