package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentEncodeDecodeRoundTrip(t *testing.T) {
	tests := []string{
		"hello world",
		"100%",
		"café",
		"a!~*'();/?:@&=+$,# b",
		"",
	}
	for _, s := range tests {
		enc := percentEncode(s)
		dec, err := percentDecode(enc)
		assert.NoError(t, err)
		assert.Equal(t, s, dec, "round trip of %q via %q", s, enc)
	}
}

func TestPercentEncodeLeavesWhitelistAlone(t *testing.T) {
	s := "!~*'();/?:@&=+$,# -_.abcXYZ019"
	assert.Equal(t, s, percentEncode(s))
}

func TestPercentDecodeMalformed(t *testing.T) {
	_, err := percentDecode("%zz")
	assert.ErrorIs(t, err, ErrMalformedDelta)

	_, err = percentDecode("%4")
	assert.ErrorIs(t, err, ErrMalformedDelta)
}
