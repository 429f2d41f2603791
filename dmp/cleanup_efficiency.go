package dmp

// DiffCleanupEfficiency reduces the number of edits using this Config's
// DiffEditCost threshold.
func (c *Config) DiffCleanupEfficiency(diffs []Diff) []Diff {
	return DiffCleanupEfficiency(diffs, c.DiffEditCost)
}

// DiffCleanupEfficiency reduces the number of edits by eliminating
// operationally trivial equalities, trading a small amount of diff size for
// fewer hunks — useful when edit cost (e.g. number of network round-trips
// to apply a patch) matters more than diff minimality.
func DiffCleanupEfficiency(diffs []Diff, editCost int) []Diff {
	changes := false
	// Stack of indices where equalities are found.
	equalities := new(intStack)
	// Always equal to equalities[equalitiesLength-1][1]
	lastequality := ""
	i := 0 // Index of current position.
	// Is there an insertion operation before the last equality.
	preIns := false
	// Is there a deletion operation before the last equality.
	preDel := false
	// Is there an insertion operation after the last equality.
	postIns := false
	// Is there a deletion operation after the last equality.
	postDel := false
	for i < len(diffs) {
		if diffs[i].Type == DiffEqual { // Equality found.
			if len([]rune(diffs[i].Text)) < editCost &&
				(postIns || postDel) {
				// Candidate found.
				equalities.Push(i)
				preIns = postIns
				preDel = postDel
				lastequality = diffs[i].Text
			} else {
				// Not a candidate, and can never become one.
				equalities.Clear()
				lastequality = ""
			}
			postIns = false
			postDel = false
		} else { // An insertion or deletion.
			if diffs[i].Type == DiffDelete {
				postDel = true
			} else {
				postIns = true
			}
			/*
			 * Five types to be split:
			 * <ins>A</ins><del>B</del>XY<ins>C</ins><del>D</del>
			 * <ins>A</ins>X<ins>C</ins><del>D</del>
			 * <ins>A</ins><del>B</del>X<ins>C</ins>
			 * <ins>A</del>X<ins>C</ins><del>D</del>
			 * <ins>A</ins><del>B</del>X<del>C</del>
			 */
			var sumPres int
			if preIns {
				sumPres++
			}
			if preDel {
				sumPres++
			}
			if postIns {
				sumPres++
			}
			if postDel {
				sumPres++
			}
			if len(lastequality) > 0 &&
				((preIns && preDel && postIns && postDel) ||
					((len([]rune(lastequality)) < editCost/2) &&
						sumPres == 3)) {

				// Duplicate record.
				insPoint := equalities.Peek()
				diffs = append(
					diffs[:insPoint],
					append(
						[]Diff{{DiffDelete, lastequality}},
						diffs[insPoint:]...,
					)...,
				)

				// Change second copy to insert.
				diffs[insPoint+1].Type = DiffInsert
				equalities.Pop() // Throw away the equality we just deleted.
				lastequality = ""

				if preIns && preDel {
					// No changes made which could affect previous entry, keep
					// going.
					postIns = true
					postDel = true
					equalities.Clear()
				} else {
					if equalities.Len() > 0 {
						equalities.Pop()
					}
					if equalities.Len() > 0 {
						i = equalities.Peek()
					} else {
						i = -1
					}
					postIns = false
					postDel = false
				}
				changes = true
			}
		}
		i++
	}

	if changes {
		diffs = DiffCleanupMerge(diffs)
	}

	return diffs
}
