package dmp

// diffHalfMatch checks whether text1 and text2 share a substring that is at
// least half the length of the longer of the two, returning
// [text1Prefix, text1Suffix, text2Prefix, text2Suffix, commonMiddle] around
// it, or nil if no such substring exists. Disabled entirely when
// DiffTimeout is zero, since finding a non-optimal-but-fast diff only pays
// off when there's a time budget to protect.
func diffHalfMatch(c *Config, text1, text2 []rune) [][]rune {
	if c.DiffTimeout <= 0 {
		// Don't risk returning a non-optimal diff if we have unlimited time.
		return nil
	}
	var longtext, shorttext []rune
	if len(text1) > len(text2) {
		longtext = text1
		shorttext = text2
	} else {
		longtext = text2
		shorttext = text1
	}
	if len(longtext) < 4 || len(shorttext)*2 < len(longtext) {
		return nil // Pointless.
	}

	// First check if the second quarter is the seed for a half-match.
	hm1 := diffHalfMatchI(longtext, shorttext, (len(longtext)+3)/4)
	// Check again based on the third quarter.
	hm2 := diffHalfMatchI(longtext, shorttext, (len(longtext)+1)/2)

	var hm [][]rune
	switch {
	case hm1 == nil && hm2 == nil:
		return nil
	case hm2 == nil:
		hm = hm1
	case hm1 == nil:
		hm = hm2
	default:
		// Both matched; pick the longest.
		if len(hm1[4]) > len(hm2[4]) {
			hm = hm1
		} else {
			hm = hm2
		}
	}

	// A half-match was found, sort out the return data.
	if len(text1) > len(text2) {
		return hm
	}
	return [][]rune{hm[2], hm[3], hm[0], hm[1], hm[4]}
}

// diffHalfMatchI takes the quarter-length seed of longtext starting at i,
// finds the longest substring around that seed shared with shorttext, and
// returns the four surrounding fragments plus the common middle, or nil if
// that common substring is shorter than half of longtext.
func diffHalfMatchI(longtext, shorttext []rune, i int) [][]rune {
	seed := longtext[i : i+len(longtext)/4]

	var bestCommon []rune
	var bestLongtextA, bestLongtextB []rune
	var bestShorttextA, bestShorttextB []rune

	j := runesIndex(shorttext, seed)
	for j != -1 {
		prefixLength := commonPrefixLength(longtext[i:], shorttext[j:])
		suffixLength := commonSuffixLength(longtext[:i], shorttext[:j])
		if len(bestCommon) < suffixLength+prefixLength {
			bestCommon = append(append([]rune{}, shorttext[j-suffixLength:j]...), shorttext[j:j+prefixLength]...)
			bestLongtextA = longtext[:i-suffixLength]
			bestLongtextB = longtext[i+prefixLength:]
			bestShorttextA = shorttext[:j-suffixLength]
			bestShorttextB = shorttext[j+prefixLength:]
		}
		if next := runesIndex(shorttext[j+1:], seed); next == -1 {
			j = -1
		} else {
			j = j + 1 + next
		}
	}

	if len(bestCommon)*2 < len(longtext) {
		return nil
	}
	return [][]rune{bestLongtextA, bestLongtextB, bestShorttextA, bestShorttextB, bestCommon}
}

// DiffHalfMatch exposes the half-match speedup as a pure string API.
func (c *Config) DiffHalfMatch(text1, text2 string) []string {
	rs := diffHalfMatch(c, []rune(text1), []rune(text2))
	if rs == nil {
		return nil
	}
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = string(r)
	}
	return result
}
