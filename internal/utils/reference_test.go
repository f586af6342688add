package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMintReferenceFormat(t *testing.T) {
	assert.Regexp(t, `^UOH-\d+-[0-9a-f]{6}$`, MintReference())
}

func TestMintReferenceVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := MintReference()
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestNairaFormatting(t *testing.T) {
	cases := map[float64]string{
		0:         "₦0.00",
		950:       "₦950.00",
		137525:    "₦137,525.00",
		101000:    "₦101,000.00",
		1234567.5: "₦1,234,567.50",
		-2500:     "-₦2,500.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, Naira(in))
	}
}
