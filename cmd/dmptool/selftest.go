package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/towel42-com/diff-match-patch/dmp"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run a fixed set of invariant checks and exit 0 iff all pass",
	RunE: func(cmd *cobra.Command, args []string) error {
		var failures []string
		check := func(name string, ok bool) {
			if !ok {
				failures = append(failures, name)
			}
		}

		c := dmp.NewConfig()

		// Round-trip 1: diff_text1/diff_text2 reconstruct the inputs.
		t1, t2 := "The quick brown fox jumps over the lazy dog.",
			"That quick brown fox jumped over a lazy dog."
		diffs := c.DiffMain(t1, t2, true)
		check("round-trip-1", dmp.DiffText1(diffs) == t1 && dmp.DiffText2(diffs) == t2)

		// Round-trip 2: toDelta/fromDelta.
		delta := dmp.DiffToDelta(diffs)
		back, err := dmp.DiffFromDelta(dmp.DiffText1(diffs), delta)
		check("round-trip-2", err == nil && diffsEqual(back, diffs))

		// Round-trip 3: patch text codec.
		patches := c.PatchMake(t1, diffs)
		patchText := dmp.PatchToText(patches)
		reparsed, err := dmp.PatchFromText(patchText)
		check("round-trip-3", err == nil && patchesEqual(reparsed, patches))

		// Apply identity: patching t1 against itself is a no-op.
		idPatches := c.PatchMake(t1, t1)
		idResult, idApplied := c.PatchApply(idPatches, t1)
		check("apply-identity", idResult == t1 && allTrue(idApplied))

		// Apply correctness: patching t1 forward reproduces t2 exactly.
		fwdResult, fwdApplied := c.PatchApply(patches, t1)
		check("apply-correctness", fwdResult == t2 && allTrue(fwdApplied))

		// Apply correctness under drift: same patch set against a similar text.
		drifted := "The quick red rabbit jumps over the tired tiger."
		want := "That quick red rabbit jumped over a tired tiger."
		driftResult, driftApplied := c.PatchApply(patches, drifted)
		check("apply-drift", driftResult == want && allTrue(driftApplied))

		// Merge idempotence.
		merged := dmp.DiffCleanupMerge(diffs)
		check("merge-idempotence", diffsEqual(dmp.DiffCleanupMerge(merged), merged))

		// Bitap match examples (spec.md concrete scenarios).
		m := func(text, pattern string, loc, want int) bool {
			got, ok, err := c.MatchBitap(text, pattern, loc)
			return err == nil && ok && got == want
		}
		check("bitap-exact", m("abcdefghijk", "fgh", 5, 5))
		check("bitap-exact-offset", m("abcdefghijk", "fgh", 0, 5))
		check("bitap-fuzzy", m("abcdefghijk", "efxhi", 0, 4))
		if _, ok, err := c.MatchBitap("abcdefghijk", "bxy", 1); err != nil || ok {
			failures = append(failures, "bitap-no-match")
		}

		// MatchBitap rejects a pattern longer than MatchMaxBits instead of
		// panicking.
		longPattern := ""
		for len([]rune(longPattern)) <= c.MatchMaxBits {
			longPattern += "x"
		}
		if _, _, err := c.MatchBitap("some text to search", longPattern, 0); !errors.Is(err, dmp.ErrInvalidArgument) {
			failures = append(failures, "bitap-pattern-too-long")
		}

		// HalfMatch example.
		hm := c.DiffHalfMatch("1234567890", "a345678z")
		check("halfmatch", len(hm) == 5 && hm[0] == "12" && hm[1] == "90" && hm[2] == "a" && hm[3] == "z" && hm[4] == "345678")

		if len(failures) > 0 {
			for _, f := range failures {
				fmt.Fprintf(os.Stderr, "dmptool selftest: FAIL %s\n", f)
			}
			return fmt.Errorf("%d check(s) failed", len(failures))
		}
		fmt.Println("dmptool selftest: all checks passed")
		return nil
	},
}

func allTrue(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return true
}

func diffsEqual(a, b []dmp.Diff) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func patchesEqual(a, b []dmp.Patch) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Start1 != b[i].Start1 || a[i].Start2 != b[i].Start2 ||
			a[i].Length1 != b[i].Length1 || a[i].Length2 != b[i].Length2 ||
			!diffsEqual(a[i].Diffs, b[i].Diffs) {
			return false
		}
	}
	return true
}
