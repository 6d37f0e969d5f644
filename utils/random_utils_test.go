package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomDigits(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		pin := RandomDigits(4)
		assert.Len(t, pin, 4)
		for _, r := range pin {
			assert.True(t, r >= '0' && r <= '9', "unexpected rune %q in %q", r, pin)
		}
		seen[pin] = true
	}
	// 20 draws from 10000 values collide occasionally, but never all of them
	assert.Greater(t, len(seen), 1)
}
