package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffXIndex(t *testing.T) {
	tests := []struct {
		name  string
		diffs []Diff
		loc   int
		want  int
	}{
		{
			"translation with equality",
			[]Diff{{DiffDelete, "a"}, {DiffInsert, "1234"}, {DiffEqual, "xyz"}},
			2, 5,
		},
		{
			"translation with deletion",
			[]Diff{{DiffEqual, "a"}, {DiffDelete, "1234"}, {DiffEqual, "xyz"}},
			3, 1,
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DiffXIndex(tt.diffs, tt.loc), tt.name)
	}
}

func TestDiffText1Text2(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "jump"}, {DiffDelete, "s"}, {DiffInsert, "ed"}, {DiffEqual, "!"},
	}
	assert.Equal(t, "jumps!", DiffText1(diffs))
	assert.Equal(t, "jumped!", DiffText2(diffs))
}
