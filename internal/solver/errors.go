package solver

import "errors"

// ErrContradiction marks a branch of constraint propagation or search that
// cannot be completed — ordinary control flow per §7, never surfaced to
// callers directly. Solve/IsUnique/ParseGrid translate it into a failure
// result or a MalformedInput error as appropriate.
var ErrContradiction = errors.New("solver: contradiction")

// ErrNoSolution is returned by Solve when no assignment satisfies the board.
var ErrNoSolution = errors.New("solver: no solution")

// ErrMalformedInput marks programmatic misuse (duplicate clues in a peer,
// unparsable grid) — surfaced to callers per §7.
var ErrMalformedInput = errors.New("solver: malformed input")

// ErrOverbudget marks a step-cap exhaustion; non-fatal per §7.
var ErrOverbudget = errors.New("solver: step budget exhausted")

// ErrUniquenessIndeterminate marks an IsUnique call the solver could not
// decide (malformed input or budget exhaustion on one of the two probe
// runs) — surfaced to callers per §7.
var ErrUniquenessIndeterminate = errors.New("solver: uniqueness indeterminate")
