package randid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var idPattern = regexp.MustCompile(`^[a-z0-9]*$`)

func TestGenerate_Length(t *testing.T) {
	for _, length := range []int{0, 1, 4, 8, 16} {
		result := Generate(length)

		assert.Len(t, result, length)
		assert.True(t, idPattern.MatchString(result), "Generate(%d) = %q, want only [a-z0-9]", length, result)
	}
}

func TestGenerate_NegativeLength(t *testing.T) {
	assert.Empty(t, Generate(-1))
}

func TestGenerate_Uniqueness(t *testing.T) {
	// Statistical check: with 36^8 possible values, repeats across 100
	// calls would indicate broken randomness.
	seen := make(map[string]bool)
	for range 100 {
		seen[Generate(8)] = true
	}

	assert.GreaterOrEqual(t, len(seen), 90, "only %d unique values in 100 calls", len(seen))
}

func TestGenerate_UsesFullAlphabet(t *testing.T) {
	hasLetter := false
	hasDigit := false

	for range 500 {
		id := Generate(10)
		for i := range len(id) {
			switch {
			case id[i] >= 'a' && id[i] <= 'z':
				hasLetter = true
			case id[i] >= '0' && id[i] <= '9':
				hasDigit = true
			}
		}
	}

	assert.True(t, hasLetter, "no lowercase letters produced")
	assert.True(t, hasDigit, "no digits produced")
}
