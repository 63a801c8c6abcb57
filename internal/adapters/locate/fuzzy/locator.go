// Package fuzzy locates replay anchors that no longer occur verbatim in a
// target, using diff-match-patch Bitap matching around the expected offset.
package fuzzy

import (
	"strings"
	"unicode/utf8"

	"github.com/bnema/doctrack/internal/domain"
	"github.com/bnema/doctrack/internal/ports"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	DefaultThreshold = 0.3
	DefaultDistance  = 1000
)

type Options struct {
	// Threshold is 0.0 for a perfect match up to 1.0 for anything.
	Threshold float64
	// Distance is how far from the hint a match may drift, in bytes, before
	// it scores as a complete mismatch.
	Distance int
}

// Locator prefers a unique exact occurrence and falls back to the closest
// approximate match near the hint.
type Locator struct {
	threshold float64
	distance  int
}

var _ ports.Locator = (*Locator)(nil)

func New(opts Options) *Locator {
	if opts.Threshold <= 0 || opts.Threshold > 1 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Distance <= 0 {
		opts.Distance = DefaultDistance
	}

	return &Locator{threshold: opts.Threshold, distance: opts.Distance}
}

func (l *Locator) Locate(text, pattern string, hint int) (int, error) {
	if pattern == "" {
		return -1, domain.ErrUnanchoredChange
	}

	if first := strings.Index(text, pattern); first >= 0 {
		if strings.Contains(text[first+1:], pattern) {
			return -1, domain.ErrAmbiguousAnchor
		}
		return first, nil
	}

	dmp := diffmatchpatch.New()
	dmp.MatchThreshold = l.threshold
	dmp.MatchDistance = l.distance

	// Bitap works on at most MatchMaxBits bytes, so long anchors are matched
	// by their tail and shifted back.
	tail := truncateHead(pattern, dmp.MatchMaxBits)
	shift := len(pattern) - len(tail)

	found := dmp.MatchMain(text, tail, max(hint, 0)+shift)
	if found < 0 {
		return -1, domain.ErrAnchorNotFound
	}

	start := found - shift
	if start < 0 {
		return -1, domain.ErrAnchorNotFound
	}

	return runeStart(text, start), nil
}

// runeStart moves at back to the first byte of the rune containing it.
func runeStart(text string, at int) int {
	for at > 0 && at < len(text) && !utf8.RuneStart(text[at]) {
		at--
	}
	return at
}

// truncateHead returns the longest suffix of s that fits in limit bytes and
// starts on a rune boundary.
func truncateHead(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}

	cut := len(s) - limit
	for cut < len(s) && !utf8.RuneStart(s[cut]) {
		cut++
	}

	return s[cut:]
}
