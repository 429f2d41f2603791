package dmp

import "time"

// deadline turns a DiffTimeout (in seconds, 0 meaning unlimited) into an
// absolute time.Time; an unlimited timeout yields a time far enough in the
// future that it never fires.
func deadline(timeout float64) time.Time {
	if timeout <= 0 {
		return time.Now().Add(time.Hour * 24 * 365 * 100)
	}
	return time.Now().Add(time.Duration(timeout * float64(time.Second)))
}

// DiffMain finds the differences between two texts. If checkLines is true
// and both texts, after trimming their common prefix and suffix, exceed 100
// runes, a faster but possibly non-minimal line-level pass is used.
func (c *Config) DiffMain(text1, text2 string, checkLines bool) []Diff {
	return c.diffMain(text1, text2, checkLines, deadline(c.DiffTimeout))
}

func (c *Config) diffMain(text1, text2 string, checkLines bool, dl time.Time) []Diff {
	return c.diffMainRunes([]rune(text1), []rune(text2), checkLines, dl)
}

// DiffMainRunes finds the differences between two rune sequences.
func (c *Config) DiffMainRunes(text1, text2 []rune, checkLines bool) []Diff {
	return c.diffMainRunes(text1, text2, checkLines, deadline(c.DiffTimeout))
}

func (c *Config) diffMainRunes(text1, text2 []rune, checkLines bool, dl time.Time) []Diff {
	if runesEqual(text1, text2) {
		var diffs []Diff
		if len(text1) > 0 {
			diffs = append(diffs, Diff{DiffEqual, string(text1)})
		}
		return diffs
	}

	// Trim off common prefix (speedup).
	n := commonPrefixLength(text1, text2)
	prefix := text1[:n]
	text1 = text1[n:]
	text2 = text2[n:]

	// Trim off common suffix (speedup).
	n = commonSuffixLength(text1, text2)
	suffix := text1[len(text1)-n:]
	text1 = text1[:len(text1)-n]
	text2 = text2[:len(text2)-n]

	// Compute the diff on the middle block.
	diffs := c.diffCompute(text1, text2, checkLines, dl)

	// Restore the prefix and suffix.
	if len(prefix) != 0 {
		diffs = diffPrepend(diffEq(string(prefix)), diffs)
	}
	if len(suffix) != 0 {
		diffs = diffAppend(diffs, diffEq(string(suffix)))
	}
	return DiffCleanupMerge(diffs)
}

// diffCompute finds the differences between two rune slices. Assumes the
// texts share no common prefix or suffix.
func (c *Config) diffCompute(text1, text2 []rune, checkLines bool, dl time.Time) []Diff {
	if len(text1) == 0 {
		// Just add some text (speedup).
		return []Diff{{DiffInsert, string(text2)}}
	} else if len(text2) == 0 {
		// Just delete some text (speedup).
		return []Diff{{DiffDelete, string(text1)}}
	}

	var longtext, shorttext []rune
	if len(text1) > len(text2) {
		longtext = text1
		shorttext = text2
	} else {
		longtext = text2
		shorttext = text1
	}

	if i := runesIndex(longtext, shorttext); i != -1 {
		op := DiffInsert
		// Swap insertions for deletions if diff is reversed.
		if len(text1) > len(text2) {
			op = DiffDelete
		}
		// Shorter text is inside the longer text (speedup).
		return []Diff{
			{op, string(longtext[:i])},
			{DiffEqual, string(shorttext)},
			{op, string(longtext[i+len(shorttext):])},
		}
	} else if len(shorttext) == 1 {
		// Single character string.
		// After the previous speedup, the character can't be an equality.
		return []Diff{
			{DiffDelete, string(text1)},
			{DiffInsert, string(text2)},
		}
	} else if hm := diffHalfMatch(c, text1, text2); hm != nil {
		// A half-match was found; process the two halves independently.
		text1A, text1B := hm[0], hm[1]
		text2A, text2B := hm[2], hm[3]
		midCommon := hm[4]
		diffsA := c.diffMainRunes(text1A, text2A, checkLines, dl)
		diffsB := c.diffMainRunes(text1B, text2B, checkLines, dl)
		return append(diffsA, append([]Diff{{DiffEqual, string(midCommon)}}, diffsB...)...)
	} else if checkLines && len(text1) > 100 && len(text2) > 100 {
		return c.diffLineMode(text1, text2, dl)
	}
	return c.diffBisect(text1, text2, dl)
}
