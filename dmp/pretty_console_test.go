package dmp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffPrettyConsole(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "kept "}, {DiffDelete, "gone"}, {DiffInsert, "new"},
	}
	out := DiffPrettyConsole(diffs)
	assert.True(t, strings.Contains(out, "kept "))
	assert.True(t, strings.Contains(out, ansiGreenBg+"new"+ansiReset))
	assert.True(t, strings.Contains(out, ansiRedBg+ansiUnderline+"gone"+ansiReset))
}
