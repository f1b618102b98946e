package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeDigits  = "0123456789"
)

// CodeAttempts bounds the generate-and-insert retry loop used when
// allocating unique codes. Colliding this many times in a multi-billion
// keyspace points at a systemic problem, so callers fail fast instead of
// looping.
const CodeAttempts = 5

// GenerateCode produces a random human-readable code of the given number of
// uppercase letters followed by the given number of digits. Uniqueness is
// the caller's responsibility: attempt a unique insert and regenerate on
// conflict.
func GenerateCode(letters, digits int) (string, error) {
	code := make([]byte, 0, letters+digits)

	for i := 0; i < letters; i++ {
		c, err := randomChar(codeLetters)
		if err != nil {
			return "", err
		}
		code = append(code, c)
	}
	for i := 0; i < digits; i++ {
		c, err := randomChar(codeDigits)
		if err != nil {
			return "", err
		}
		code = append(code, c)
	}

	return string(code), nil
}

func randomChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("error reading random source: %w", err)
	}
	return charset[n.Int64()], nil
}
