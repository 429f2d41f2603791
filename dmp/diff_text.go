package dmp

import "strings"

// DiffText1 reconstructs the source text: the concatenation of every
// EQUAL and DELETE payload, in order.
func DiffText1(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Type != DiffInsert {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// DiffText2 reconstructs the destination text: the concatenation of every
// EQUAL and INSERT payload, in order.
func DiffText2(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Type != DiffDelete {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// DiffXIndex maps a 0-based rune position in text1 to the corresponding
// position in text2, by walking the diff list while tallying how far each
// side has advanced. A location inside a DELETE maps to the position of
// that deletion in text2.
func DiffXIndex(diffs []Diff, loc int) int {
	chars1, chars2 := 0, 0
	lastChars1, lastChars2 := 0, 0
	var lastDiff Diff
	for _, d := range diffs {
		if d.Type != DiffInsert {
			chars1 += len([]rune(d.Text))
		}
		if d.Type != DiffDelete {
			chars2 += len([]rune(d.Text))
		}
		if chars1 > loc {
			// Overshot the location.
			lastDiff = d
			break
		}
		lastChars1 = chars1
		lastChars2 = chars2
	}
	if lastDiff.Type == DiffDelete {
		// The location was deleted.
		return lastChars2
	}
	// Add the remaining character length.
	return lastChars2 + (loc - lastChars1)
}
