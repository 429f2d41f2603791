package dmp

// PatchMake builds a list of patches from one, two, or three arguments,
// mirroring the historical diff-match-patch overload set:
//
//	PatchMake(diffs)               - from an already-computed diff
//	PatchMake(text1, text2)        - diffs text1 and text2 itself
//	PatchMake(text1, diffs)        - diffs already computed against text1
//	PatchMake(text1, text2, diffs) - text2 ignored, diffs trusted
func (c *Config) PatchMake(opt ...interface{}) []Patch {
	switch len(opt) {
	case 1:
		diffs, _ := opt[0].([]Diff)
		text1 := DiffText1(diffs)
		return c.PatchMake(text1, diffs)

	case 2:
		text1, ok := opt[0].(string)
		if !ok {
			return nil
		}
		switch t := opt[1].(type) {
		case string:
			diffs := c.DiffMain(text1, t, true)
			if len(diffs) > 2 {
				diffs = DiffCleanupSemantic(diffs)
				diffs = c.DiffCleanupEfficiency(diffs)
			}
			return c.PatchMake(text1, diffs)
		case []Diff:
			return c.patchMake2(text1, t)
		}

	case 3:
		return c.PatchMake(opt[0], opt[2])
	}
	return []Patch{}
}

// patchMake2 builds patches from text1 and a diff already computed against
// it, one patch per contiguous run of edits, each padded with PatchMargin
// runes of surrounding context.
func (c *Config) patchMake2(text1 string, diffs []Diff) []Patch {
	var patches []Patch
	if len(diffs) == 0 {
		return patches // Get rid of the null case.
	}

	var patch Patch
	charCount1, charCount2 := 0, 0
	prepatchText := []rune(text1)
	postpatchText := []rune(text1)

	for i, d := range diffs {
		if len(patch.Diffs) == 0 && d.Type != DiffEqual {
			// A new patch starts here.
			patch.Start1 = charCount1
			patch.Start2 = charCount2
		}

		switch d.Type {
		case DiffInsert:
			patch.Diffs = append(patch.Diffs, d)
			patch.Length2 += len([]rune(d.Text))
			postpatchText = append(
				append(append([]rune{}, postpatchText[:charCount2]...), []rune(d.Text)...),
				postpatchText[charCount2:]...,
			)
		case DiffDelete:
			patch.Length1 += len([]rune(d.Text))
			patch.Diffs = append(patch.Diffs, d)
			postpatchText = append(
				append([]rune{}, postpatchText[:charCount2]...),
				postpatchText[charCount2+len([]rune(d.Text)):]...,
			)
		case DiffEqual:
			if len([]rune(d.Text)) <= 2*c.PatchMargin && len(patch.Diffs) != 0 && i != len(diffs)-1 {
				// Small equality inside a patch.
				patch.Diffs = append(patch.Diffs, d)
				patch.Length1 += len([]rune(d.Text))
				patch.Length2 += len([]rune(d.Text))
			} else if len([]rune(d.Text)) >= 2*c.PatchMargin && len(patch.Diffs) != 0 {
				// Time for a new patch.
				patch = c.patchAddContext(patch, prepatchText)
				patches = append(patches, patch)
				patch = Patch{}
				// Unlike Unidiff, our patch lists have a rolling context up
				// their own sides of each entry, so we drop the parentheses
				// used there to reset the prepatch text.
				prepatchText = postpatchText
				charCount1 = charCount2
			}
		}

		if d.Type != DiffInsert {
			charCount1 += len([]rune(d.Text))
		}
		if d.Type != DiffDelete {
			charCount2 += len([]rune(d.Text))
		}
	}
	// Pick up the leftover patch if not empty.
	if len(patch.Diffs) != 0 {
		patch = c.patchAddContext(patch, prepatchText)
		patches = append(patches, patch)
	}
	return patches
}

// PatchAddContext increases the leading and trailing context of p until it
// is unique within text or the searched pattern reaches
// MatchMaxBits-2*PatchMargin runes, then adds one more PatchMargin runes of
// context on each side. The result can therefore be longer than MatchMaxBits.
func (c *Config) PatchAddContext(p Patch, text string) Patch {
	return c.patchAddContext(p, []rune(text))
}

func (c *Config) patchAddContext(p Patch, text []rune) Patch {
	if len(text) == 0 {
		return p
	}
	pattern := text[p.Start2 : p.Start2+p.Length1]
	padding := 0

	// Look for the first and last matches of pattern in text. If two
	// different matches are found, increase the pattern length.
	for runesIndex(text, pattern) != runesLastIndex(text, pattern) &&
		len(pattern) < c.MatchMaxBits-2*c.PatchMargin {
		padding += c.PatchMargin
		start := max(0, p.Start2-padding)
		end := min(len(text), p.Start2+p.Length1+padding)
		pattern = text[start:end]
	}
	// Add one chunk for good luck.
	padding += c.PatchMargin

	// Add the prefix.
	prefixStart := max(0, p.Start2-padding)
	prefix := text[prefixStart:p.Start2]
	if len(prefix) != 0 {
		p.Diffs = append([]Diff{{DiffEqual, string(prefix)}}, p.Diffs...)
	}
	// Add the suffix.
	suffixEnd := min(len(text), p.Start2+p.Length1+padding)
	suffix := text[p.Start2+p.Length1 : suffixEnd]
	if len(suffix) != 0 {
		p.Diffs = append(p.Diffs, Diff{DiffEqual, string(suffix)})
	}

	// Roll back the start points.
	p.Start1 -= len(prefix)
	p.Start2 -= len(prefix)
	// Extend the lengths.
	p.Length1 += len(prefix) + len(suffix)
	p.Length2 += len(prefix) + len(suffix)
	return p
}

// PatchDeepCopy returns an independent copy of a patch list: later
// mutation of the copy (or the original) never aliases the other.
func PatchDeepCopy(patches []Patch) []Patch {
	out := make([]Patch, len(patches))
	for i, p := range patches {
		diffs := make([]Diff, len(p.Diffs))
		copy(diffs, p.Diffs)
		out[i] = Patch{
			Diffs:   diffs,
			Start1:  p.Start1,
			Start2:  p.Start2,
			Length1: p.Length1,
			Length2: p.Length2,
		}
	}
	return out
}

// PatchApply applies a list of patches against text, returning the patched
// text and a parallel slice reporting whether each patch was applied. A
// patch whose text MatchMain can't locate near its expected position is
// skipped, and so is a patch longer than MatchMaxBits whose located text
// differs from its expected text by more than PatchDeleteThreshold.
func (c *Config) PatchApply(patches []Patch, text string) (string, []bool) {
	if len(patches) == 0 {
		return text, []bool{}
	}

	// Deep copy the patches so no changes are made to the originals.
	patches = PatchDeepCopy(patches)

	nullPadding := c.PatchAddPadding(patches)
	s := []rune(nullPadding + text + nullPadding)
	patches = c.PatchSplitMax(patches)

	x := 0
	// delta tracks the offset between the expected and actual location of
	// the previous patch. If patches are expected at positions 10 and 20,
	// but the first patch was found at 12, delta is 2 and the second
	// patch's effective expected position is 22.
	delta := 0
	results := make([]bool, len(patches))
	for _, p := range patches {
		expectedLoc := p.Start2 + delta
		text1 := []rune(DiffText1(p.Diffs))
		var startLoc int
		endLoc := -1
		ok := false
		if len(text1) > c.MatchMaxBits {
			// PatchSplitMax only produces an oversized pattern for a
			// monster delete; both halves below are truncated to
			// MatchMaxBits, so MatchMain never rejects them.
			startLoc, ok, _ = c.MatchMain(string(s), string(text1[:c.MatchMaxBits]), expectedLoc)
			if ok {
				endLoc, ok, _ = c.MatchMain(
					string(s), string(text1[len(text1)-c.MatchMaxBits:]),
					expectedLoc+len(text1)-c.MatchMaxBits,
				)
				if !ok || startLoc >= endLoc {
					// Can't find valid trailing context. Drop this patch.
					ok = false
				}
			}
		} else {
			startLoc, ok, _ = c.MatchMain(string(s), string(text1), expectedLoc)
		}
		if !ok {
			// No match found.
			results[x] = false
			// Subtract the delta for this failed patch from subsequent ones.
			delta -= p.Length2 - p.Length1
		} else {
			// Found a match.
			results[x] = true
			delta = startLoc - expectedLoc
			var text2 []rune
			if endLoc == -1 {
				text2 = s[startLoc:min(startLoc+len(text1), len(s))]
			} else {
				text2 = s[startLoc:min(endLoc+c.MatchMaxBits, len(s))]
			}
			if runesEqual(text1, text2) {
				// Perfect match: shove the replacement text in.
				s = append(append(append([]rune{}, s[:startLoc]...), []rune(DiffText2(p.Diffs))...), s[startLoc+len(text1):]...)
			} else {
				// Imperfect match: run a diff to get a framework of
				// equivalent indices.
				diffs := c.DiffMainRunes(text1, text2, false)
				if len(text1) > c.MatchMaxBits &&
					float64(DiffLevenshtein(diffs))/float64(len(text1)) > c.PatchDeleteThreshold {
					// The end points match, but the content is
					// unacceptably different.
					results[x] = false
				} else {
					diffs = DiffCleanupSemanticLossless(diffs)
					index1 := 0
					for _, d := range p.Diffs {
						if d.Type != DiffEqual {
							index2 := DiffXIndex(diffs, index1)
							switch d.Type {
							case DiffInsert:
								s = append(append(append([]rune{}, s[:startLoc+index2]...), []rune(d.Text)...), s[startLoc+index2:]...)
							case DiffDelete:
								startIndex := startLoc + index2
								endIndex := startLoc + DiffXIndex(diffs, index1+len([]rune(d.Text)))
								s = append(append([]rune{}, s[:startIndex]...), s[endIndex:]...)
							}
						}
						if d.Type != DiffDelete {
							index1 += len([]rune(d.Text))
						}
					}
				}
			}
		}
		x++
	}
	// Strip the padding off.
	out := string(s[len([]rune(nullPadding)) : len(s)-len([]rune(nullPadding))])
	return out, results
}

// PatchAddPadding adds PatchMargin runes of padding to both ends of the
// patches' context, so an edit right at the start or end of text still has
// something to match against, and returns the padding string. Intended for
// internal use from PatchApply.
func (c *Config) PatchAddPadding(patches []Patch) string {
	paddingLength := c.PatchMargin
	if len(patches) == 0 {
		return ""
	}
	nullPadding := ""
	for i := 1; i <= paddingLength; i++ {
		nullPadding += string(rune(i))
	}

	// Bump all the patches forward.
	for i := range patches {
		patches[i].Start1 += paddingLength
		patches[i].Start2 += paddingLength
	}

	// Add some padding on start of first diff.
	first := &patches[0]
	if len(first.Diffs) == 0 || first.Diffs[0].Type != DiffEqual {
		// Add nullPadding equality.
		first.Diffs = append([]Diff{{DiffEqual, nullPadding}}, first.Diffs...)
		first.Start1 -= paddingLength // Should be 0.
		first.Start2 -= paddingLength // Should be 0.
		first.Length1 += paddingLength
		first.Length2 += paddingLength
	} else if paddingLength > len([]rune(first.Diffs[0].Text)) {
		// Grow first equality.
		extraLength := paddingLength - len([]rune(first.Diffs[0].Text))
		suffix := []rune(nullPadding)[len([]rune(first.Diffs[0].Text)):]
		first.Diffs[0].Text = string(suffix[len(suffix)-extraLength:]) + first.Diffs[0].Text
		first.Start1 -= extraLength
		first.Start2 -= extraLength
		first.Length1 += extraLength
		first.Length2 += extraLength
	}

	// Add some padding on end of last diff.
	last := &patches[len(patches)-1]
	if len(last.Diffs) == 0 || last.Diffs[len(last.Diffs)-1].Type != DiffEqual {
		// Add nullPadding equality.
		last.Diffs = append(last.Diffs, Diff{DiffEqual, nullPadding})
		last.Length1 += paddingLength
		last.Length2 += paddingLength
	} else if paddingLength > len([]rune(last.Diffs[len(last.Diffs)-1].Text)) {
		// Grow last equality.
		extraLength := paddingLength - len([]rune(last.Diffs[len(last.Diffs)-1].Text))
		prefix := []rune(nullPadding)[:extraLength]
		last.Diffs[len(last.Diffs)-1].Text += string(prefix)
		last.Length1 += extraLength
		last.Length2 += extraLength
	}
	return nullPadding
}

// PatchSplitMax breaks up any patch whose span exceeds MatchMaxBits into
// several smaller patches, each still carrying PatchMargin runes of
// context. Intended for internal use from PatchApply.
func (c *Config) PatchSplitMax(patches []Patch) []Patch {
	patchSize := c.MatchMaxBits
	if patchSize <= 0 {
		return patches
	}
	var out []Patch
	for _, bigpatch := range patches {
		if bigpatch.Length1 <= patchSize {
			out = append(out, bigpatch)
			continue
		}
		// Append parts of the big patch.
		start1, start2 := bigpatch.Start1, bigpatch.Start2
		var precontext []rune
		diffs := bigpatch.Diffs
		for len(diffs) != 0 {
			patch := Patch{Start1: start1 - len(precontext), Start2: start2 - len(precontext)}
			empty := true
			if len(precontext) != 0 {
				patch.Length1 = len(precontext)
				patch.Length2 = len(precontext)
				patch.Diffs = append(patch.Diffs, Diff{DiffEqual, string(precontext)})
			}
			for len(diffs) != 0 && patch.Length1 < patchSize-c.PatchMargin {
				diffType := diffs[0].Type
				diffText := []rune(diffs[0].Text)
				if diffType == DiffInsert {
					// Insertions are harmless.
					patch.Length2 += len(diffText)
					start2 += len(diffText)
					patch.Diffs = append(patch.Diffs, diffs[0])
					diffs = diffs[1:]
					empty = false
				} else if diffType == DiffDelete && len(patch.Diffs) == 1 &&
					patch.Diffs[0].Type == DiffEqual && len(diffText) > 2*patchSize {
					// A single large deletion: keep it as its own patch.
					patch.Length1 += len(diffText)
					start1 += len(diffText)
					empty = false
					patch.Diffs = append(patch.Diffs, Diff{diffType, string(diffText)})
					diffs = diffs[1:]
				} else {
					// Deletion or equality: truncate to fit.
					n := min(len(diffText), patchSize-c.PatchMargin-patch.Length1)
					diffText = diffText[:n]
					patch.Length1 += len(diffText)
					start1 += len(diffText)
					if diffType == DiffEqual {
						patch.Length2 += len(diffText)
						start2 += len(diffText)
					} else {
						empty = false
					}
					patch.Diffs = append(patch.Diffs, Diff{diffType, string(diffText)})
					if len(diffText) == len([]rune(diffs[0].Text)) {
						diffs = diffs[1:]
					} else {
						diffs[0].Text = string([]rune(diffs[0].Text)[len(diffText):])
					}
				}
			}
			// Compute the head context for the next patch.
			precontext = []rune(DiffText2(patch.Diffs))
			if len(precontext) > c.PatchMargin {
				precontext = precontext[len(precontext)-c.PatchMargin:]
			}

			// Append the end context for this patch.
			var postcontext []rune
			if t := []rune(DiffText1(diffs)); len(t) > c.PatchMargin {
				postcontext = t[:c.PatchMargin]
			} else {
				postcontext = t
			}
			if len(postcontext) != 0 {
				patch.Length1 += len(postcontext)
				patch.Length2 += len(postcontext)
				if len(patch.Diffs) != 0 && patch.Diffs[len(patch.Diffs)-1].Type == DiffEqual {
					patch.Diffs[len(patch.Diffs)-1].Text += string(postcontext)
				} else {
					patch.Diffs = append(patch.Diffs, Diff{DiffEqual, string(postcontext)})
				}
			}
			if !empty {
				out = append(out, patch)
			}
		}
	}
	return out
}
