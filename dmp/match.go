package dmp

import "fmt"

// MatchMain locates the best instance of pattern in text near loc, using
// an exact check first and falling back to Bitap fuzzy search. Returns the
// 0-based rune index of the match and true, or (-1, false) if nothing
// scores within MatchThreshold. Returns ErrInvalidArgument, wrapped with
// detail, if pattern is longer than MatchMaxBits.
func (c *Config) MatchMain(text, pattern string, loc int) (int, bool, error) {
	if c.MatchMaxBits != 0 && len([]rune(pattern)) > c.MatchMaxBits {
		return -1, false, fmt.Errorf("%w: pattern of %d runes exceeds MatchMaxBits (%d)",
			ErrInvalidArgument, len([]rune(pattern)), c.MatchMaxBits)
	}

	runes := []rune(text)
	loc = max(0, min(loc, len(runes)))

	if text == pattern {
		// Shortcut, not guaranteed by the algorithm in general.
		return 0, true, nil
	} else if len(runes) == 0 {
		return -1, false, nil
	}
	patternRunes := []rune(pattern)
	if loc+len(patternRunes) <= len(runes) && runesEqual(runes[loc:loc+len(patternRunes)], patternRunes) {
		// Perfect match at the perfect spot! (Includes the empty-pattern case.)
		return loc, true, nil
	}
	return c.MatchBitap(text, pattern, loc)
}

// MatchBitap locates the best instance of pattern in text near loc using
// the Bitap algorithm, tolerating MatchThreshold worth of approximate
// matching. Returns (-1, false) if nothing scores within threshold, or
// ErrInvalidArgument if pattern is longer than MatchMaxBits.
func (c *Config) MatchBitap(text, pattern string, loc int) (int, bool, error) {
	if c.MatchMaxBits != 0 && len([]rune(pattern)) > c.MatchMaxBits {
		return -1, false, fmt.Errorf("%w: pattern of %d runes exceeds MatchMaxBits (%d)",
			ErrInvalidArgument, len([]rune(pattern)), c.MatchMaxBits)
	}

	textR := []rune(text)
	patternR := []rune(pattern)

	// Initialise the alphabet.
	s := matchAlphabet(patternR)

	// Highest score beyond which we give up.
	scoreThreshold := c.MatchThreshold
	// Is there a nearby exact match? (speedup)
	if bestLoc := runesIndex(textR[loc:], patternR); bestLoc != -1 {
		scoreThreshold = min(
			matchBitapScore(c, 0, loc+bestLoc, loc, patternR),
			scoreThreshold,
		)
		// What about in the other direction? (speedup)
		if bestLoc = runesLastIndex(textR[:min(loc+len(patternR), len(textR))], patternR); bestLoc != -1 {
			scoreThreshold = min(
				matchBitapScore(c, 0, bestLoc, loc, patternR),
				scoreThreshold,
			)
		}
	}

	// Initialise the bit arrays.
	matchmask := 1 << uint(len(patternR)-1)
	bestLoc := -1

	var binMin, binMid int
	binMax := len(patternR) + len(textR)
	lastRd := []int{}
	for d := 0; d < len(patternR); d++ {
		// Scan for the best match; each iteration allows for one more error.
		// Run a binary search to determine how far from 'loc' we can stray
		// at this error level.
		binMin = 0
		binMid = binMax
		for binMin < binMid {
			if matchBitapScore(c, d, loc+binMid, loc, patternR) <= scoreThreshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		// Use the result from this iteration as the maximum for the next.
		binMax = binMid
		start := max(1, loc-binMid+1)
		finish := min(loc+binMid, len(textR)) + len(patternR)

		rd := make([]int, finish+2)
		rd[finish+1] = (1 << uint(d)) - 1

		for j := finish; j >= start; j-- {
			var charMatch int
			if len(textR) <= j-1 {
				// Out of range.
				charMatch = 0
			} else if m, ok := s[textR[j-1]]; ok {
				charMatch = m
			}

			if d == 0 {
				// First pass: exact match.
				rd[j] = ((rd[j+1] << 1) | 1) & charMatch
			} else {
				// Subsequent passes: fuzzy match.
				rd[j] = (((rd[j+1] << 1) | 1) & charMatch) |
					(((lastRd[j+1] | lastRd[j]) << 1) | 1) |
					lastRd[j+1]
			}
			if rd[j]&matchmask != 0 {
				score := matchBitapScore(c, d, j-1, loc, patternR)
				// This match will almost certainly be better than any
				// existing match; but check anyway.
				if score <= scoreThreshold {
					// Told you so.
					scoreThreshold = score
					bestLoc = j - 1
					if bestLoc > loc {
						// When passing loc, don't exceed our current distance
						// from loc.
						start = max(1, 2*loc-bestLoc)
					} else {
						// Already passed loc, downhill from here on in.
						break
					}
				}
			}
		}
		// No hope for a (better) match at a greater error level.
		if matchBitapScore(c, d+1, loc, loc, patternR) > scoreThreshold {
			break
		}
		lastRd = rd
	}
	if bestLoc < 0 {
		return -1, false, nil
	}
	return bestLoc, true, nil
}

// matchBitapScore computes a score between 0 (perfect match) and 1 (worst
// match) for a match with e errors and a location x, against a match
// expected near loc.
func matchBitapScore(c *Config, e, x, loc int, pattern []rune) float64 {
	accuracy := float64(e) / float64(len(pattern))
	proximity := abs(loc - x)
	if c.MatchDistance == 0 {
		// Dodge divide by zero error.
		if proximity == 0 {
			return accuracy
		}
		return 1.0
	}
	return accuracy + (float64(proximity) / float64(c.MatchDistance))
}

// matchAlphabet builds a bitmask, per rune of pattern, marking every
// position that rune occurs at.
func matchAlphabet(pattern []rune) map[rune]int {
	s := map[rune]int{}
	for _, r := range pattern {
		s[r] = 0
	}
	for i, r := range pattern {
		s[r] |= 1 << uint(len(pattern)-i-1)
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// runesLastIndex returns the index of the last occurrence of needle in
// haystack, or -1 if needle is not present.
func runesLastIndex(haystack, needle []rune) int {
	n, m := len(haystack), len(needle)
	if m == 0 {
		return n
	}
	for i := n - m; i >= 0; i-- {
		if runesEqual(haystack[i:i+m], needle) {
			return i
		}
	}
	return -1
}
