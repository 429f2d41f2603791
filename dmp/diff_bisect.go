package dmp

import "time"

// DiffBisect finds the middle snake of a diff, splits the problem in two,
// and returns the recursively constructed diff.
//
// See Myers, "An O(ND) Difference Algorithm and Its Variations" (1986).
func (c *Config) DiffBisect(text1, text2 string, dl time.Time) []Diff {
	return c.diffBisect([]rune(text1), []rune(text2), dl)
}

func (c *Config) diffBisect(s1, s2 []rune, dl time.Time) []Diff {
	// Cache the text lengths to prevent multiple calls.
	len1, len2 := len(s1), len(s2)

	dmax := (len1 + len2 + 1) / 2
	offset := dmax
	vlen := 2 * dmax

	v1 := make([]int, vlen)
	v2 := make([]int, vlen)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[offset+1] = 0
	v2[offset+1] = 0

	delta := len1 - len2
	// If the total number of characters is odd, the front path will
	// collide with the reverse path.
	front := delta%2 != 0
	// Offsets for start and end of k loop, preventing the mapping of
	// space beyond the grid.
	k1start, k1end := 0, 0
	k2start, k2end := 0, 0
	for d := 0; d < dmax; d++ {
		// Bail out if the deadline is reached.
		if time.Now().After(dl) {
			break
		}

		// Walk the front path one step.
		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k1Offset := offset + k1
			var x1 int
			if k1 == -d || (k1 != d && v1[k1Offset-1] < v1[k1Offset+1]) {
				x1 = v1[k1Offset+1]
			} else {
				x1 = v1[k1Offset-1] + 1
			}
			y1 := x1 - k1
			for x1 < len1 && y1 < len2 && s1[x1] == s2[y1] {
				x1++
				y1++
			}
			v1[k1Offset] = x1
			switch {
			case x1 > len1:
				// Ran off the right of the graph.
				k1end += 2
			case y1 > len2:
				// Ran off the bottom of the graph.
				k1start += 2
			case front:
				k2Offset := offset + delta - k1
				if k2Offset >= 0 && k2Offset < vlen && v2[k2Offset] != -1 {
					// Mirror x2 onto the top-left coordinate system.
					x2 := len1 - v2[k2Offset]
					if x1 >= x2 {
						// Overlap detected.
						return c.diffBisectSplit(s1, s2, x1, y1, dl)
					}
				}
			}
		}

		// Walk the reverse path one step.
		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k2Offset := offset + k2
			var x2 int
			if k2 == -d || (k2 != d && v2[k2Offset-1] < v2[k2Offset+1]) {
				x2 = v2[k2Offset+1]
			} else {
				x2 = v2[k2Offset-1] + 1
			}
			y2 := x2 - k2
			for x2 < len1 && y2 < len2 && s1[len1-x2-1] == s2[len2-y2-1] {
				x2++
				y2++
			}
			v2[k2Offset] = x2
			switch {
			case x2 > len1:
				// Ran off the left of the graph.
				k2end += 2
			case y2 > len2:
				// Ran off the top of the graph.
				k2start += 2
			case !front:
				k1Offset := offset + delta - k2
				if k1Offset >= 0 && k1Offset < vlen && v1[k1Offset] != -1 {
					x1 := v1[k1Offset]
					y1 := offset + x1 - k1Offset
					// Mirror x2 onto the top-left coordinate system.
					mirroredX2 := len1 - x2
					if x1 >= mirroredX2 {
						// Overlap detected.
						return c.diffBisectSplit(s1, s2, x1, y1, dl)
					}
				}
			}
		}
	}
	// Diff took too long and hit the deadline, or there's no commonality
	// at all: fall back to a single delete and insert.
	return []Diff{
		{DiffDelete, string(s1)},
		{DiffInsert, string(s2)},
	}
}

func (c *Config) diffBisectSplit(runes1, runes2 []rune, x, y int, dl time.Time) []Diff {
	runes1a, runes2a := runes1[:x], runes2[:y]
	runes1b, runes2b := runes1[x:], runes2[y:]

	diffs := c.diffMainRunes(runes1a, runes2a, false, dl)
	diffsb := c.diffMainRunes(runes1b, runes2b, false, dl)

	return append(diffs, diffsb...)
}
