package dmp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffLinesToRunesMunge(t *testing.T) {
	chars1, chars2, lineArray := diffLinesToRunes("alpha\nbeta\nalpha\n", "beta\ngamma\n")
	assert.Equal(t, []string{"", "alpha\n", "beta\n", "gamma\n"}, lineArray)
	assert.Equal(t, []rune{1, 2, 1}, chars1)
	assert.Equal(t, []rune{2, 3}, chars2)
}

func TestDiffCharsToLines(t *testing.T) {
	_, _, lineArray := diffLinesToRunes("alpha\nbeta\n", "beta\n")
	diffs := []Diff{{DiffDelete, string(rune(1))}, {DiffEqual, string(rune(2))}}
	out := diffCharsToLines(diffs, lineArray)
	assert.Equal(t, "alpha\n", out[0].Text)
	assert.Equal(t, "beta\n", out[1].Text)
}

func TestDiffLineModeManyDistinctLines(t *testing.T) {
	// Exercise the rune-encoded line table past the historical 256-line
	// ceiling some ports impose.
	// Every line is distinct, and every other line differs between a and b,
	// so the texts are diffed through the line table.
	var a, b string
	for i := 0; i < 1000; i++ {
		a += fmt.Sprintf("line %d\n", i)
		if i%2 == 0 {
			b += fmt.Sprintf("line %d\n", i)
		} else {
			b += fmt.Sprintf("changed %d\n", i)
		}
	}
	b += "one more unique line\n"

	c := NewConfig()
	diffs := c.DiffMain(a, b, true)
	assert.Equal(t, a, DiffText1(diffs))
	assert.Equal(t, b, DiffText2(diffs))
}
