package rng

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// SeedAlphabet omits characters that are easy to confuse in print
// (0/O, 1/l/I, o).
const SeedAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz"

// SeedLength is the length of seeds produced by NewSeed(0).
const SeedLength = 14

// ErrSeedLength is returned by NewSeed for a negative length.
var ErrSeedLength = errors.New("rng: negative seed length")

// NewSeed returns a random readable seed of n characters drawn from
// SeedAlphabet. n == 0 selects SeedLength.
func NewSeed(n int) (string, error) {
	if n < 0 {
		return "", ErrSeedLength
	}
	if n == 0 {
		n = SeedLength
	}
	limit := big.NewInt(int64(len(SeedAlphabet)))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(SeedAlphabet[idx.Int64()])
	}
	return sb.String(), nil
}

// ValidSeed reports whether seed is non-empty and uses only SeedAlphabet.
// Any non-empty string seeds a Stream; this checks the readable form.
func ValidSeed(seed string) bool {
	if seed == "" {
		return false
	}
	for _, r := range seed {
		if !strings.ContainsRune(SeedAlphabet, r) {
			return false
		}
	}
	return true
}
