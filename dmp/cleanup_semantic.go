package dmp

// DiffCleanupSemantic eliminates operationally trivial equalities — ones
// whose length is no greater than the edits on either side of them — by
// fusing them into the neighboring edits, then hunts for DELETE/INSERT
// pairs that share a common overlap and splits that overlap out into an
// EQUAL, so that e.g. DELETE("abcxxx")+INSERT("xxxdef") becomes
// DELETE("abc")+EQUAL("xxx")+INSERT("def").
func DiffCleanupSemantic(diffs []Diff) []Diff {
	changes := false
	var equalities intStack
	var lastEquality string
	pointer := 0
	lenIns1, lenDel1 := 0, 0
	lenIns2, lenDel2 := 0, 0

	for pointer < len(diffs) {
		if diffs[pointer].Type == DiffEqual {
			equalities.Push(pointer)
			lenIns1, lenDel1 = lenIns2, lenDel2
			lenIns2, lenDel2 = 0, 0
			lastEquality = diffs[pointer].Text
		} else {
			if diffs[pointer].Type == DiffInsert {
				lenIns2 += len([]rune(diffs[pointer].Text))
			} else {
				lenDel2 += len([]rune(diffs[pointer].Text))
			}
			// Eliminate an equality that is smaller than or equal to the
			// edits on both sides of it.
			eqLen := len([]rune(lastEquality))
			if eqLen > 0 &&
				eqLen <= max(lenIns1, lenDel1) &&
				eqLen <= max(lenIns2, lenDel2) {
				insPoint := equalities.Peek()
				diffs = splice(diffs, insPoint, 1,
					Diff{DiffDelete, lastEquality},
					Diff{DiffInsert, lastEquality},
				)
				equalities.Pop()
				if equalities.Len() > 0 {
					equalities.Pop()
				}
				if equalities.Len() > 0 {
					pointer = equalities.Peek()
				} else {
					pointer = -1
				}
				lenIns1, lenDel1 = 0, 0
				lenIns2, lenDel2 = 0, 0
				lastEquality = ""
				changes = true
			}
		}
		pointer++
	}

	if changes {
		diffs = DiffCleanupMerge(diffs)
	}
	diffs = DiffCleanupSemanticLossless(diffs)

	// Find any overlaps between deletions and insertions.
	// e.g: DELETE("abcxxx")+INSERT("xxxdef") -> DELETE("abc")+EQUAL("xxx")+INSERT("def")
	// e.g: DELETE("xxxabc")+INSERT("defxxx") -> INSERT("def")+EQUAL("xxx")+DELETE("abc")
	// Only extract an overlap if it is at least as large as half of the
	// edit it came from.
	pointer = 1
	for pointer < len(diffs) {
		if diffs[pointer-1].Type == DiffDelete && diffs[pointer].Type == DiffInsert {
			deletion := diffs[pointer-1].Text
			insertion := diffs[pointer].Text
			overlapLen1 := DiffCommonOverlap(deletion, insertion)
			overlapLen2 := DiffCommonOverlap(insertion, deletion)
			delLen := len([]rune(deletion))
			insLen := len([]rune(insertion))
			if overlapLen1 >= overlapLen2 {
				if overlapLen1*2 >= delLen || overlapLen1*2 >= insLen {
					diffs = splice(diffs, pointer, 0,
						Diff{DiffEqual, safeMid(insertion, 0, overlapLen1)})
					diffs[pointer-1].Text = safeMid(deletion, 0, delLen-overlapLen1)
					diffs[pointer+1].Text = safeMid(insertion, overlapLen1)
					pointer++
				}
			} else {
				if overlapLen2*2 >= delLen || overlapLen2*2 >= insLen {
					diffs = splice(diffs, pointer, 0,
						Diff{DiffEqual, safeMid(deletion, 0, overlapLen2)})
					diffs[pointer-1].Type = DiffInsert
					diffs[pointer-1].Text = safeMid(insertion, 0, insLen-overlapLen2)
					diffs[pointer+1].Type = DiffDelete
					diffs[pointer+1].Text = safeMid(deletion, overlapLen2)
					pointer++
				}
			}
			pointer++
		}
		pointer++
	}

	return diffs
}
