package dmp

import (
	"fmt"
	"strconv"
	"strings"
)

// DiffToDelta crushes a diff list into a compact, tab-separated textual
// encoding: "=n" keeps n runes, "-n" deletes n runes, and "+text" inserts
// percent-encoded text. The token syntax and percent-encoding follow the
// historical diff-match-patch delta format; counts are in runes, so they
// match a UTF-16-unit implementation only for text without characters
// outside the Basic Multilingual Plane.
func DiffToDelta(diffs []Diff) string {
	var b strings.Builder
	for i, d := range diffs {
		if i > 0 {
			b.WriteByte('\t')
		}
		switch d.Type {
		case DiffInsert:
			b.WriteByte('+')
			b.WriteString(percentEncode(d.Text))
		case DiffDelete:
			fmt.Fprintf(&b, "-%d", len([]rune(d.Text)))
		case DiffEqual:
			fmt.Fprintf(&b, "=%d", len([]rune(d.Text)))
		}
	}
	return b.String()
}

// DiffFromDelta reconstructs a diff list given the original text1 and a
// delta produced by DiffToDelta. It returns an error wrapping
// ErrMalformedDelta on a corrupt delta (bad percent escape, an operator
// count that overflows or underflows text1's length, or an unrecognized
// operator).
func DiffFromDelta(text1, delta string) ([]Diff, error) {
	var diffs []Diff
	pointer := 0 // Cursor in text1, in runes.
	runes := []rune(text1)
	tokens := strings.Split(delta, "\t")

	for _, token := range tokens {
		if len(token) == 0 {
			// Blank tokens are ok (from a trailing tab).
			continue
		}

		// Each token begins with a one-character operator followed by a
		// parameter.
		param := token[1:]

		switch op := token[0]; op {
		case '+':
			text, err := percentDecode(param)
			if err != nil {
				return nil, err
			}
			diffs = append(diffs, Diff{DiffInsert, text})
		case '=', '-':
			n, err := strconv.Atoi(param)
			if err != nil {
				return nil, fmt.Errorf("%w: bad count %q: %v", ErrMalformedDelta, param, err)
			} else if n < 0 {
				return nil, fmt.Errorf("%w: negative count %d", ErrMalformedDelta, n)
			}

			if pointer+n > len(runes) {
				return nil, fmt.Errorf("%w: delta overflows text1 (pointer=%d, n=%d, len=%d)",
					ErrMalformedDelta, pointer, n, len(runes))
			}
			text := string(runes[pointer : pointer+n])
			pointer += n

			if op == '=' {
				diffs = append(diffs, Diff{DiffEqual, text})
			} else {
				diffs = append(diffs, Diff{DiffDelete, text})
			}
		default:
			return nil, fmt.Errorf("%w: unknown operator %q", ErrMalformedDelta, string(op))
		}
	}

	if pointer != len(runes) {
		return nil, fmt.Errorf("%w: delta covers %d of %d runes in text1",
			ErrMalformedDelta, pointer, len(runes))
	}
	return diffs, nil
}
