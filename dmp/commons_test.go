package dmp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffCommonPrefix(t *testing.T) {
	tests := []struct {
		Name     string
		Text1    string
		Text2    string
		Expected int
	}{
		{"Null", "abc", "xyz", 0},
		{"Non-null", "1234abcdef", "1234xyz", 4},
		{"Whole", "1234", "1234xyz", 4},
	}
	for i, test := range tests {
		actual := DiffCommonPrefix(test.Text1, test.Text2)
		assert.Equal(t, test.Expected, actual, fmt.Sprintf("Test case #%d, %s", i, test.Name))
	}
}

func TestDiffCommonSuffix(t *testing.T) {
	tests := []struct {
		Name     string
		Text1    string
		Text2    string
		Expected int
	}{
		{"Null", "abc", "xyz", 0},
		{"Non-null", "abcdef1234", "xyz1234", 4},
		{"Whole", "1234", "xyz1234", 4},
	}
	for i, test := range tests {
		actual := DiffCommonSuffix(test.Text1, test.Text2)
		assert.Equal(t, test.Expected, actual, fmt.Sprintf("Test case #%d, %s", i, test.Name))
	}
}

func TestDiffCommonOverlap(t *testing.T) {
	tests := []struct {
		Name     string
		Text1    string
		Text2    string
		Expected int
	}{
		{"Null", "", "abcd", 0},
		{"Whole", "abc", "abcd", 3},
		{"Null2", "123456", "abcd", 0},
		{"Overlap", "123456xxx", "xxxabcd", 3},
		{"Unicode", "fi", "ﬁi", 0},
	}
	for i, test := range tests {
		actual := DiffCommonOverlap(test.Text1, test.Text2)
		assert.Equal(t, test.Expected, actual, fmt.Sprintf("Test case #%d, %s", i, test.Name))
	}
}

func TestRunesIndex(t *testing.T) {
	assert.Equal(t, 2, runesIndex([]rune("abcde"), []rune("cd")))
	assert.Equal(t, -1, runesIndex([]rune("abcde"), []rune("xyz")))
	assert.Equal(t, 0, runesIndex([]rune("abcde"), []rune("")))
}

func TestSafeMid(t *testing.T) {
	assert.Equal(t, "bcd", safeMid("abcde", 1, 3))
	assert.Equal(t, "cde", safeMid("abcde", 2))
	assert.Equal(t, "", safeMid("abcde", 5))
	assert.Equal(t, "abcde", safeMid("abcde", 0, 100))
	// Multi-byte runes: offsets are rune counts, never split a codepoint.
	assert.Equal(t, "é", safeMid("café", 3, 1))
	assert.Equal(t, "éx", safeMid("caféx", 3))
}
