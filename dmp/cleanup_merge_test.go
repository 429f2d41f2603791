package dmp

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestDiffCleanupMerge(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "a"}, {DiffDelete, "b"}, {DiffInsert, "c"},
	}
	want := []Diff{
		{DiffEqual, "a"}, {DiffDelete, "b"}, {DiffInsert, "c"},
	}
	got := DiffCleanupMerge(diffs)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffCleanupMerge no-op mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffCleanupMergeFactorPrefixSuffixMultibyte(t *testing.T) {
	// "é" and "ü" are multi-byte UTF-8 runes; DiffCommonPrefix/Suffix return
	// rune counts, so the insert/delete strings must be sliced on rune
	// boundaries, not byte offsets.
	diffs := []Diff{
		{DiffInsert, "éxü"}, {DiffDelete, "éyü"},
	}
	got := DiffCleanupMerge(append([]Diff{}, diffs...))
	for _, d := range got {
		if !utf8.ValidString(d.Text) {
			t.Fatalf("DiffCleanupMerge produced invalid UTF-8: %q in %+v", d.Text, got)
		}
	}
	if got1, got2 := DiffText1(got), DiffText2(got); got1 != "éyü" || got2 != "éxü" {
		t.Errorf("DiffCleanupMerge changed reconstructed text: text1=%q text2=%q", got1, got2)
	}
}
