package dmp

import (
	"strings"
	"time"
)

// diffLineMode does a quick line-level diff on two rune slices, then
// rediffs the replaced regions for greater accuracy. This speedup can
// produce non-minimal diffs.
func (c *Config) diffLineMode(text1, text2 []rune, dl time.Time) []Diff {
	// Scan the text on a line-by-line basis first.
	chars1, chars2, lineArray := diffLinesToRunes(string(text1), string(text2))

	diffs := c.diffMainRunes(chars1, chars2, false, dl)

	// Convert the diff back to original text.
	diffs = diffCharsToLines(diffs, lineArray)
	// Eliminate freak matches (e.g. blank lines).
	diffs = DiffCleanupSemantic(diffs)

	// Rediff any replacement blocks, this time character-by-character.
	// Add a sentinel entry at the end.
	diffs = append(diffs, Diff{DiffEqual, ""})

	pointer := 0
	countDelete, countInsert := 0, 0
	var textDelete, textInsert strings.Builder

	for pointer < len(diffs) {
		switch diffs[pointer].Type {
		case DiffInsert:
			countInsert++
			textInsert.WriteString(diffs[pointer].Text)
		case DiffDelete:
			countDelete++
			textDelete.WriteString(diffs[pointer].Text)
		case DiffEqual:
			// Upon reaching an equality, check for prior redundancies.
			if countDelete >= 1 && countInsert >= 1 {
				diffs = splice(diffs, pointer-countDelete-countInsert, countDelete+countInsert)
				pointer = pointer - countDelete - countInsert
				sub := c.diffMain(textDelete.String(), textInsert.String(), false, dl)
				for j := len(sub) - 1; j >= 0; j-- {
					diffs = splice(diffs, pointer, 0, sub[j])
				}
				pointer += len(sub)
			}
			countInsert, countDelete = 0, 0
			textDelete.Reset()
			textInsert.Reset()
		}
		pointer++
	}

	return diffs[:len(diffs)-1] // Remove the sentinel entry.
}

// diffLinesToRunes splits text1 and text2 into lines and encodes each
// distinct line as a single rune, so the O(ND) algorithm can run over
// lines instead of individual characters. Slot zero of lineArray is left
// blank: rune 0 would otherwise collide with the Go string NUL byte and
// confuse anything that treats the encoded text as a normal string.
func diffLinesToRunes(text1, text2 string) (chars1, chars2 []rune, lineArray []string) {
	lineArray = []string{""} // lineArray[0] is unused.
	lineHash := map[string]int{}

	chars1 = diffLinesToRunesMunge(text1, &lineArray, lineHash)
	chars2 = diffLinesToRunesMunge(text2, &lineArray, lineHash)
	return chars1, chars2, lineArray
}

// diffLinesToRunesMunge splits text into lines and assigns each distinct
// line an integer encoded as a rune, appending newly seen lines to
// *lineArray and caching the assignment in lineHash.
func diffLinesToRunesMunge(text string, lineArray *[]string, lineHash map[string]int) []rune {
	lineStart := 0
	lineEnd := -1
	var chars []rune

	for lineEnd < len(text)-1 {
		lineEnd = strings.IndexByte(text[lineStart:], '\n')
		if lineEnd == -1 {
			lineEnd = len(text) - lineStart - 1
		}
		lineEnd += lineStart
		line := text[lineStart : lineEnd+1]

		if n, ok := lineHash[line]; ok {
			chars = append(chars, rune(n))
		} else {
			*lineArray = append(*lineArray, line)
			lineHash[line] = len(*lineArray) - 1
			chars = append(chars, rune(len(*lineArray)-1))
		}
		lineStart = lineEnd + 1
	}
	return chars
}

// diffCharsToLines expands each rune in a diff's text back into the full
// line (or run of lines) it was encoded from in diffLinesToRunes.
func diffCharsToLines(diffs []Diff, lineArray []string) []Diff {
	result := make([]Diff, 0, len(diffs))
	var b strings.Builder
	for _, d := range diffs {
		b.Reset()
		for _, r := range d.Text {
			b.WriteString(lineArray[r])
		}
		result = append(result, Diff{d.Type, b.String()})
	}
	return result
}

// DiffLinesToChars exposes the line-hashing step as a pure function.
func DiffLinesToChars(text1, text2 string) (chars1, chars2 string, lineArray []string) {
	r1, r2, arr := diffLinesToRunes(text1, text2)
	return string(r1), string(r2), arr
}

// DiffCharsToLines expands a diff list produced over DiffLinesToChars'
// output back into the original line text.
func DiffCharsToLines(diffs []Diff, lineArray []string) []Diff {
	return diffCharsToLines(diffs, lineArray)
}
