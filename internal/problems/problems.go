// Package problems renders practice questions. Each problem kind is a
// generator that produces a fresh multiple-choice question on every call;
// the rest of the system treats the result as an opaque payload.
package problems

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"
)

// Question is a rendered multiple-choice question.
type Question struct {
	// Kind is the generator that produced the question.
	Kind string `json:"kind"`

	// Text is the markdown question prompt.
	Text string `json:"question"`

	// Options are the answer choices shown to the learner.
	Options []string `json:"options"`

	// Correct is the index of the right answer in Options.
	Correct int `json:"correct"`

	// Explanation is a markdown worked solution shown after answering.
	Explanation string `json:"solution_explanation"`
}

// Answer returns the text of the correct option.
func (q *Question) Answer() string {
	return q.Options[q.Correct]
}

// Generator produces questions of one kind.
type Generator interface {
	Kind() string
	Generate(rng *rand.Rand) Question
}

// UnknownKindError indicates no generator is registered under Kind.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown problem type: %q", e.Kind)
}

var registry = map[string]Generator{}

func register(g Generator) {
	registry[g.Kind()] = g
}

func init() {
	register(Bytes2Bits{})
	register(RAMBandwidth{})
	register(ArithmeticIntensity{})
	register(Roofline{})
}

// Kinds returns the registered problem kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// IsKnown reports whether kind has a registered generator.
func IsKnown(kind string) bool {
	return slices.Contains(Kinds(), kind)
}

// Lookup returns the generator registered under kind.
func Lookup(kind string) (Generator, error) {
	g, ok := registry[kind]
	if !ok {
		return nil, &UnknownKindError{Kind: kind}
	}
	return g, nil
}

// Generate renders a question of the given kind. A nil rng uses a
// randomly seeded source.
func Generate(kind string, rng *rand.Rand) (*Question, error) {
	g, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	q := g.Generate(rng)
	return &q, nil
}
