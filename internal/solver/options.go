package solver

import (
	"math/rand"
	"time"
)

// ChooseSquare selects which unfilled square the search branches on next.
type ChooseSquare int

const (
	// MinDigits picks the unfilled square with the fewest candidates (MRV).
	MinDigits ChooseSquare = iota
	// MaxDigits picks the unfilled square with the most candidates.
	MaxDigits
	// RandomSquare picks uniformly among unfilled squares.
	RandomSquare
)

// ChooseDigit selects the order in which a chosen square's candidates are
// tried.
type ChooseDigit int

const (
	// MinDigit tries candidates in ascending order.
	MinDigit ChooseDigit = iota
	// MaxDigit tries candidates in descending order.
	MaxDigit
	// RandomDigit tries candidates in a random order.
	RandomDigit
)

// Options configures Solve's search policy, per §4.2.
type Options struct {
	ChooseSquare ChooseSquare
	ChooseDigit  ChooseDigit
	// Rand supplies randomness for RandomSquare/RandomDigit; if nil a
	// time-seeded source is created on first use (§5/§9 deterministic-seed
	// Open Question — see DESIGN.md).
	Rand *rand.Rand
	// MaxNodes caps the number of branch-and-bound nodes explored; 0 means
	// unlimited. Exhausting it yields ErrOverbudget, not ErrNoSolution.
	MaxNodes int
}

// DefaultOptions returns the default search policy: MRV square choice,
// ascending digit order, no node cap.
func DefaultOptions() Options {
	return Options{ChooseSquare: MinDigits, ChooseDigit: MinDigit}
}

func (o *Options) rng() *rand.Rand {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o.Rand
}
