package utils

import (
	"crypto/rand"
	"io"
	mathrand "math/rand/v2"
	"strconv"
	"time"
)

const (
	idSuffixLen = 7
	base36      = "0123456789abcdefghijklmnopqrstuvwxyz"

	// bytes at or above this value are dropped so every digit is equally
	// likely (252 = 7 * 36)
	unbiasedByteLimit = 256 - 256%len(base36)
)

// ArtisanIDGenerator produces record identifiers of the form
// "<unix-millis>-<7 base36 chars>", e.g. "1718000000000-k3j9x0a".
type ArtisanIDGenerator struct {
	now    func() time.Time
	random io.Reader
}

// NewArtisanIDGenerator returns a generator using the wall clock and
// crypto/rand.
func NewArtisanIDGenerator() *ArtisanIDGenerator {
	return &ArtisanIDGenerator{now: time.Now, random: rand.Reader}
}

// NewArtisanIDGeneratorWith allows a fixed clock and entropy source.
func NewArtisanIDGeneratorWith(now func() time.Time, random io.Reader) *ArtisanIDGenerator {
	return &ArtisanIDGenerator{now: now, random: random}
}

// Generate never fails: when the entropy source errors or runs dry, the
// remaining digits come from math/rand.
func (g *ArtisanIDGenerator) Generate() string {
	suffix := make([]byte, 0, idSuffixLen)
	buf := make([]byte, idSuffixLen)

	for len(suffix) < idSuffixLen {
		n, err := io.ReadFull(g.random, buf)
		for _, b := range buf[:n] {
			if int(b) >= unbiasedByteLimit || len(suffix) == idSuffixLen {
				continue
			}
			suffix = append(suffix, base36[int(b)%len(base36)])
		}
		if err != nil {
			break
		}
	}
	for len(suffix) < idSuffixLen {
		suffix = append(suffix, base36[mathrand.IntN(len(base36))])
	}

	return strconv.FormatInt(g.now().UnixMilli(), 10) + "-" + string(suffix)
}
