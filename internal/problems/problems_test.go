package problems

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestKinds(t *testing.T) {
	want := []string{"arithmetic_intensity", "bytes2bits", "ram_bandwidth", "roofline"}
	if got := Kinds(); !slices.Equal(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
	if !IsKnown("roofline") || IsKnown("batch_norm") {
		t.Error("IsKnown mismatch")
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	_, err := Generate("linear_program_dual", testRNG(1))
	var unknown *UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want *UnknownKindError", err)
	}
	if unknown.Kind != "linear_program_dual" {
		t.Errorf("Kind = %q", unknown.Kind)
	}
}

func TestGenerate_AllKindsWellFormed(t *testing.T) {
	for _, kind := range Kinds() {
		for seed := uint64(0); seed < 50; seed++ {
			q, err := Generate(kind, testRNG(seed))
			if err != nil {
				t.Fatalf("%s: %v", kind, err)
			}
			if q.Kind != kind {
				t.Errorf("%s: Kind = %q", kind, q.Kind)
			}
			if q.Text == "" || q.Explanation == "" {
				t.Errorf("%s: empty text or explanation", kind)
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				t.Fatalf("%s: correct index %d out of range %v", kind, q.Correct, q.Options)
			}
			seen := map[string]bool{}
			for _, o := range q.Options {
				if seen[o] {
					t.Errorf("%s: duplicate option %q in %v", kind, o, q.Options)
				}
				seen[o] = true
			}
			if !strings.Contains(q.Explanation, q.Answer()) {
				t.Errorf("%s: explanation does not mention answer %q", kind, q.Answer())
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := Generate("arithmetic_intensity", testRNG(42))
	b, _ := Generate("arithmetic_intensity", testRNG(42))
	if a.Text != b.Text || !slices.Equal(a.Options, b.Options) || a.Correct != b.Correct {
		t.Error("same seed produced different questions")
	}
}

func TestBytes2Bits_Answer(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		q := Bytes2Bits{}.Generate(testRNG(seed))
		n, err := parseByteCount(q.Text)
		if err != nil {
			t.Fatalf("parse %q: %v", q.Text, err)
		}
		if q.Answer() != strconv.Itoa(n*8) {
			t.Errorf("%d bytes: answer %q, want %d", n, q.Answer(), n*8)
		}
		if len(q.Options) != NumOptions {
			t.Errorf("options = %v, want %d", q.Options, NumOptions)
		}
	}
}

func TestRoofline_TwoChoices(t *testing.T) {
	q := Roofline{}.Generate(testRNG(3))
	if len(q.Options) != 2 {
		t.Fatalf("options = %v", q.Options)
	}
	if a := q.Answer(); a != "True" && a != "False" {
		t.Errorf("answer = %q", a)
	}
}

func TestNumericOptions(t *testing.T) {
	tests := []float64{0, 1, 8, 0.05, 2.5, 64, 1024}
	for _, answer := range tests {
		options, idx := NumericOptions(testRNG(9), answer)
		if len(options) != NumOptions {
			t.Errorf("answer %v: %d options", answer, len(options))
			continue
		}
		if options[idx] != formatNumber(answer) {
			t.Errorf("answer %v: options[%d] = %q", answer, idx, options[idx])
		}
	}
}

func TestVariationRange(t *testing.T) {
	tests := []struct {
		answer float64
		want   float64
	}{
		{0, 5},
		{1, 2},
		{8, 4},
		{20, 6},
		{10, 5},
		{1000, 200},
		{-50, 15},
	}
	for _, tt := range tests {
		if got := variationRange(tt.answer); got != tt.want {
			t.Errorf("variationRange(%v) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

// parseByteCount extracts the byte count from the bytes2bits prompt.
func parseByteCount(text string) (int, error) {
	fields := strings.Fields(text[strings.Index(text, "Convert"):])
	return strconv.Atoi(fields[1])
}
