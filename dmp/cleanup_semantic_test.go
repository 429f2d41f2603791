package dmp

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestDiffCleanupSemanticElimination(t *testing.T) {
	diffs := []Diff{
		{DiffDelete, "a"}, {DiffEqual, "b"}, {DiffDelete, "c"},
		{DiffInsert, "ab"}, {DiffEqual, "c"},
	}
	want := []Diff{
		{DiffInsert, "b"}, {DiffEqual, "ab"}, {DiffDelete, "c"}, {DiffEqual, "c"},
	}
	got := DiffCleanupSemantic(diffs)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffCleanupSemantic elimination mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffCleanupSemanticNoElimination(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "a"}, {DiffDelete, "b"}, {DiffEqual, "c"},
	}
	got := DiffCleanupSemantic(append([]Diff{}, diffs...))
	if diff := cmp.Diff(diffs, got); diff != "" {
		t.Errorf("DiffCleanupSemantic should leave this alone (-want +got):\n%s", diff)
	}
}

func TestDiffCleanupSemanticOverlap(t *testing.T) {
	diffs := []Diff{
		{DiffDelete, "abcxxx"}, {DiffInsert, "xxxdef"},
	}
	want := []Diff{
		{DiffDelete, "abc"}, {DiffEqual, "xxx"}, {DiffInsert, "def"},
	}
	got := DiffCleanupSemantic(diffs)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffCleanupSemantic overlap mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffCleanupSemanticOverlapMultibyte(t *testing.T) {
	// "é" is a two-byte UTF-8 rune; overlapLen is a rune count, so slicing
	// insertion/deletion must happen on rune boundaries, not byte offsets.
	diffs := []Diff{
		{DiffDelete, "abcé"}, {DiffInsert, "édef"},
	}
	want := []Diff{
		{DiffDelete, "abc"}, {DiffEqual, "é"}, {DiffInsert, "def"},
	}
	got := DiffCleanupSemantic(diffs)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffCleanupSemantic multibyte overlap mismatch (-want +got):\n%s", diff)
	}
	for _, d := range got {
		if !utf8.ValidString(d.Text) {
			t.Errorf("DiffCleanupSemantic produced invalid UTF-8: %q", d.Text)
		}
	}
}

func TestDiffCleanupSemanticLosslessWordBoundary(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "The c"}, {DiffInsert, "ow and the c"}, {DiffEqual, "at."},
	}
	want := []Diff{
		{DiffEqual, "The "}, {DiffInsert, "cow and the "}, {DiffEqual, "cat."},
	}
	got := DiffCleanupSemanticLossless(diffs)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffCleanupSemanticLossless mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffCleanupSemanticLosslessShiftLeftMultibyte(t *testing.T) {
	// The equality preceding the edit ends in a multi-byte rune shared with
	// the tail of the edit; the shift-left step must move whole runes.
	diffs := []Diff{
		{DiffEqual, "café "}, {DiffInsert, " caféx"}, {DiffEqual, "y"},
	}
	got := DiffCleanupSemanticLossless(diffs)
	for _, d := range got {
		if !utf8.ValidString(d.Text) {
			t.Fatalf("DiffCleanupSemanticLossless produced invalid UTF-8: %q in %+v", d.Text, got)
		}
	}
	if gotIns := DiffText2(got); !utf8.ValidString(gotIns) {
		t.Errorf("reconstructed text2 invalid UTF-8: %q", gotIns)
	}
}
