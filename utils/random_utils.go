package utils

import (
	"crypto/rand"
)

const digits = "0123456789"

// RandomDigits generates a cryptographically secure string of n decimal
// digits, used for newsroom PINs
func RandomDigits(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("generate random digits failed")
	}
	for i := range buf {
		buf[i] = digits[int(buf[i])%len(digits)]
	}

	return string(buf)
}
