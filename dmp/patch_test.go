package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchApplyCorrectness(t *testing.T) {
	c := NewConfig()
	t1 := "The quick brown fox jumps over the lazy dog."
	t2 := "That quick brown fox jumped over a lazy dog."

	patches := c.PatchMake(t1, t2)
	got, applied := c.PatchApply(patches, t1)
	assert.Equal(t, t2, got)
	for _, ok := range applied {
		assert.True(t, ok)
	}
}

func TestPatchApplyIdentity(t *testing.T) {
	c := NewConfig()
	text := "some unchanging text that stays exactly the same"
	patches := c.PatchMake(text, text)
	got, applied := c.PatchApply(patches, text)
	assert.Equal(t, text, got)
	for _, ok := range applied {
		assert.True(t, ok)
	}
}

func TestPatchApplyDrift(t *testing.T) {
	c := NewConfig()
	t1 := "The quick brown fox jumps over the lazy dog."
	t2 := "That quick brown fox jumped over a lazy dog."
	patches := c.PatchMake(t1, t2)

	drifted := "The quick red rabbit jumps over the tired tiger."
	want := "That quick red rabbit jumped over a tired tiger."

	got, applied := c.PatchApply(patches, drifted)
	assert.Equal(t, want, got)
	for _, ok := range applied {
		assert.True(t, ok)
	}
}

func TestPatchTextRoundTrip(t *testing.T) {
	c := NewConfig()
	t1 := "The quick brown fox jumps over the lazy dog."
	t2 := "That quick brown fox jumped over a lazy dog."
	patches := c.PatchMake(t1, t2)

	text := PatchToText(patches)
	back, err := PatchFromText(text)
	assert.NoError(t, err)
	assert.Equal(t, len(patches), len(back))
	for i := range patches {
		assert.Equal(t, patches[i].Start1, back[i].Start1)
		assert.Equal(t, patches[i].Start2, back[i].Start2)
		assert.Equal(t, patches[i].Length1, back[i].Length1)
		assert.Equal(t, patches[i].Length2, back[i].Length2)
	}
}

func TestPatchFromTextMalformed(t *testing.T) {
	_, err := PatchFromText("not a patch at all")
	assert.ErrorIs(t, err, ErrMalformedPatchText)
}

func TestPatchSplitMax(t *testing.T) {
	c := NewConfig()
	c.MatchMaxBits = 32

	var big string
	for i := 0; i < 7; i++ {
		big += "1234567890"
	}
	patches := c.PatchMake(big, "abc")
	split := c.PatchSplitMax(patches)

	assert.Greater(t, len(split), 1, "a 70-rune delete against a 32-rune max-bits should split into multiple hunks")

	// Splitting must still apply cleanly.
	got, applied := c.PatchApply(split, big)
	assert.Equal(t, "abc", got)
	for _, ok := range applied {
		assert.True(t, ok)
	}
}
