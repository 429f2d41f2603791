package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffPrettyHtml(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "a\n"}, {DiffDelete, "<B>b</B>"}, {DiffInsert, "c&d"},
	}
	want := "<span>a&para;<br></span><del style=\"background:#ffe6e6;\">&lt;B&gt;b&lt;/B&gt;</del>" +
		"<ins style=\"background:#e6ffe6;\">c&amp;d</ins>"
	assert.Equal(t, want, DiffPrettyHtml(diffs))
}
