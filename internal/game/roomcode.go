package game

import (
	"math/rand"
)

const codeLength = 4
const maxCodeRetries = 100

var codeLetters = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateCode creates a random 4-letter uppercase room code.
// It checks against existing codes to avoid duplicates.
func GenerateCode(existing map[string]bool) string {
	for i := 0; i < maxCodeRetries; i++ {
		code := RandomCode()
		if !existing[code] {
			return code
		}
	}
	// Fallback: extremely unlikely with 26^4 = 456,976 combinations
	return RandomCode()
}

// RandomCode returns one candidate code without a uniqueness check.
// Callers that cannot enumerate existing codes retry on insert conflict.
func RandomCode() string {
	b := make([]rune, codeLength)
	for i := range b {
		b[i] = codeLetters[rand.Intn(len(codeLetters))]
	}
	return string(b)
}
