package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffLevenshtein(t *testing.T) {
	tests := []struct {
		name  string
		diffs []Diff
		want  int
	}{
		{"shoves", []Diff{{DiffDelete, "abc"}, {DiffInsert, "1234"}, {DiffEqual, "xyz"}}, 4},
		{"leven1", []Diff{{DiffEqual, "xyz"}, {DiffDelete, "abc"}, {DiffInsert, "1234"}}, 4},
		{"leven2", []Diff{{DiffDelete, "abc"}, {DiffEqual, "xyz"}, {DiffInsert, "1234"}}, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DiffLevenshtein(tt.diffs), tt.name)
	}
}
