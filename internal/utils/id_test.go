package utils

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"
	"time"
)

var artisanIDPattern = regexp.MustCompile(`^[0-9]+-[0-9a-z]{7}$`)

func TestArtisanIDGenerator_Format(t *testing.T) {
	g := NewArtisanIDGenerator()

	for range 50 {
		id := g.Generate()
		if !artisanIDPattern.MatchString(id) {
			t.Fatalf("id %q does not match %s", id, artisanIDPattern)
		}
	}
}

func TestArtisanIDGenerator_Deterministic(t *testing.T) {
	clock := func() time.Time { return time.UnixMilli(1718000000000) }
	// 255 is above the unbiased limit and skipped; 71 % 36 = 35
	g := NewArtisanIDGeneratorWith(clock, bytes.NewReader([]byte{0, 1, 10, 35, 36, 71, 255, 3}))

	if got, want := g.Generate(), "1718000000000-01az0z3"; got != want {
		t.Fatalf("Generate() = %q, want %q", got, want)
	}
}

func TestArtisanIDGenerator_ShortEntropy(t *testing.T) {
	clock := func() time.Time { return time.UnixMilli(5) }
	g := NewArtisanIDGeneratorWith(clock, bytes.NewReader([]byte{11}))

	id := g.Generate()
	if !strings.HasPrefix(id, "5-b") || !artisanIDPattern.MatchString(id) {
		t.Fatalf("Generate() = %q, want 5-b followed by six base36 digits", id)
	}
}

func TestArtisanIDGenerator_BrokenEntropy(t *testing.T) {
	clock := func() time.Time { return time.UnixMilli(5) }
	g := NewArtisanIDGeneratorWith(clock, iotest.ErrReader(errors.New("no entropy")))

	seen := make(map[string]struct{})
	for range 20 {
		id := g.Generate()
		if !artisanIDPattern.MatchString(id) {
			t.Fatalf("id %q does not match %s", id, artisanIDPattern)
		}
		seen[id] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatalf("ids in the same millisecond collide without entropy: %v", seen)
	}
}
