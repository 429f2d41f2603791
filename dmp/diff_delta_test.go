package dmp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDiffToDelta(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "jump"}, {DiffDelete, "s"}, {DiffInsert, "ed"},
		{DiffEqual, " over "}, {DiffDelete, "the"}, {DiffInsert, "a"},
		{DiffEqual, " lazy"}, {DiffInsert, "old dog"},
	}
	want := "=4\t-1\t+ed\t=6\t-3\t+a\t=5\t+old dog"
	assert.Equal(t, want, DiffToDelta(diffs))
}

func TestDiffFromDeltaRoundTrip(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "jump"}, {DiffDelete, "s"}, {DiffInsert, "ed"},
		{DiffEqual, " over "}, {DiffDelete, "the"}, {DiffInsert, "a"},
		{DiffEqual, " lazy"}, {DiffInsert, "old dog"},
	}
	text1 := DiffText1(diffs)
	delta := DiffToDelta(diffs)

	back, err := DiffFromDelta(text1, delta)
	assert.NoError(t, err)
	if diff := cmp.Diff(diffs, back); diff != "" {
		t.Errorf("DiffFromDelta round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffFromDeltaMalformed(t *testing.T) {
	_, err := DiffFromDelta("abc", "=1\t-5\t+def")
	assert.ErrorIs(t, err, ErrMalformedDelta)

	_, err = DiffFromDelta("abc", "=1\t?5")
	assert.ErrorIs(t, err, ErrMalformedDelta)

	_, err = DiffFromDelta("abc", "+%zz")
	assert.ErrorIs(t, err, ErrMalformedDelta)
}
