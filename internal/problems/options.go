package problems

import (
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
)

// NumOptions is the number of choices offered for numeric answers.
const NumOptions = 4

// maxDistractorAttempts bounds the random search before falling back to
// deterministic offsets.
const maxDistractorAttempts = 64

// NumericOptions returns NumOptions shuffled unique choices, one of which is
// the formatted answer, along with its index. Distractors are spread
// proportionally to the answer's magnitude.
func NumericOptions(rng *rand.Rand, answer float64) ([]string, int) {
	integer := answer == math.Trunc(answer)
	correct := formatNumber(answer)
	spread := variationRange(answer)

	options := []string{correct}
	for attempt := 0; len(options) < NumOptions && attempt < maxDistractorAttempts; attempt++ {
		// Widen the spread when small ranges keep colliding.
		r := spread * float64(1+attempt/16)
		var wrong float64
		if integer {
			n := int(r)
			wrong = answer + float64(rng.IntN(2*n+1)-n)
		} else {
			wrong = roundForDisplay(answer + (rng.Float64()*2-1)*r)
		}
		if opt := formatNumber(wrong); !slices.Contains(options, opt) {
			options = append(options, opt)
		}
	}
	for step := 1.0; len(options) < NumOptions; step++ {
		if opt := formatNumber(answer + step*math.Max(1, math.Ceil(spread))); !slices.Contains(options, opt) {
			options = append(options, opt)
		}
	}

	return shuffleOptions(rng, options, correct)
}

// ChoiceOptions shuffles a fixed set of choices and returns the index of answer.
func ChoiceOptions(rng *rand.Rand, choices []string, answer string) ([]string, int) {
	return shuffleOptions(rng, slices.Clone(choices), answer)
}

func shuffleOptions(rng *rand.Rand, options []string, correct string) ([]string, int) {
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options, slices.Index(options, correct)
}

func variationRange(answer float64) float64 {
	abs := math.Abs(answer)
	switch {
	case answer == 0:
		return 5
	case abs < 10:
		return math.Max(2, abs*0.5)
	case abs < 100:
		return math.Max(5, abs*0.3)
	default:
		return math.Max(10, abs*0.2)
	}
}

// roundForDisplay keeps distractors at a precision similar to the answer.
func roundForDisplay(v float64) float64 {
	abs := math.Abs(v)
	switch {
	case abs < 1:
		return math.Round(v*100) / 100
	case abs < 10:
		return math.Round(v*10) / 10
	default:
		return math.Round(v)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
