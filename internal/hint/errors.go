package hint

import "errors"

// ErrOverbudget marks a SolveWithHints run that hit its step cap before the
// board was fully placed.
var ErrOverbudget = errors.New("hint: step budget exhausted")

// ErrNoLogicalProgress marks a SolveWithHints run where GetHint returned no
// hint before the board was fully placed — the battery's techniques are
// insufficient for the remaining position.
var ErrNoLogicalProgress = errors.New("hint: no technique applies")
