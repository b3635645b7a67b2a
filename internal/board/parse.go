package board

import "errors"

// ErrMalformedInput is returned when a string grid cannot be interpreted,
// per §7's MalformedInput error kind.
var ErrMalformedInput = errors.New("board: malformed input")

// ParseString implements the §6 string-grid format: an 81-character string
// where each character is a digit 1-9 (clue) or '.'/'0' (empty); any other
// character is ignored (skipped, not consumed as a cell). Shorter input is
// padded with empties from the right; longer input is truncated to 81
// recognized characters. Returns raw Values with no propagation applied —
// callers that want propagated state use solver.ParseGrid.
func ParseString(s string) (Values, error) {
	var v Values
	i := 0
	for _, r := range s {
		if i >= NumSquares {
			break
		}
		switch {
		case r >= '1' && r <= '9':
			v[i] = Digit(r - '0')
			i++
		case r == '.' || r == '0':
			v[i] = 0
			i++
		default:
			// ignored, per §6
		}
	}
	// Shorter input pads with empties from the right; v is already
	// zero-valued there since it starts as the zero array.
	return v, nil
}

// String renders v back into the 81-character grid form, using '.' for
// empty cells. This is the inverse of ParseString for well-formed input.
func (v Values) String() string {
	buf := make([]byte, NumSquares)
	for i, d := range v {
		if d == 0 {
			buf[i] = '.'
		} else {
			buf[i] = byte('0' + d)
		}
	}
	return string(buf)
}

// ErrNotSolved is returned by Serialize when v has any empty cell — the
// compact format exists only for solved boards, per §6.
var ErrNotSolved = errors.New("board: compact serialization requires a fully placed grid")

// Serialize emits the §6 compact serialization of a fully placed Values: 81
// symbols in row-major order with runs of consecutive empties collapsed to
// a single letter (a=1 .. f=6). Since a solved board has no empties, the
// run-letters never actually appear for a valid solved grid — they exist so
// Deserialize can invert partially-placed intermediate snapshots too; this
// function enforces the "only solved boards" contract from §6.
func Serialize(v Values) (string, error) {
	for _, d := range v {
		if d == 0 {
			return "", ErrNotSolved
		}
	}
	buf := make([]byte, 0, NumSquares)
	for _, d := range v {
		buf = append(buf, byte('0'+d))
	}
	return string(buf), nil
}

// Deserialize inverts Serialize: digits pass through, and a letter a..f
// expands to that many consecutive empty cells. Longer/shorter results are
// truncated/padded exactly as ParseString does.
func Deserialize(s string) (Values, error) {
	var v Values
	i := 0
	for _, r := range s {
		if i >= NumSquares {
			break
		}
		switch {
		case r >= '1' && r <= '9':
			v[i] = Digit(r - '0')
			i++
		case r >= 'a' && r <= 'f':
			run := int(r - 'a' + 1)
			for k := 0; k < run && i < NumSquares; k++ {
				v[i] = 0
				i++
			}
		default:
			return Values{}, ErrMalformedInput
		}
	}
	return v, nil
}
