package application

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bnema/doctrack/internal/domain"
	"github.com/bnema/doctrack/internal/ports"
)

// ExactLocator accepts a pattern only when it occurs exactly once.
type ExactLocator struct{}

var _ ports.Locator = ExactLocator{}

func (ExactLocator) Locate(text, pattern string, _ int) (int, error) {
	if pattern == "" {
		return -1, domain.ErrUnanchoredChange
	}

	first := strings.Index(text, pattern)
	if first < 0 {
		return -1, domain.ErrAnchorNotFound
	}
	if strings.Contains(text[first+1:], pattern) {
		return -1, domain.ErrAmbiguousAnchor
	}

	return first, nil
}

// Patch replays records over text in order. Each record is located through
// its context anchors; the position after the previous record is passed to
// the locator as a hint. Patch fails on the first record it cannot place.
func Patch(text string, records []domain.ChangeRecord, locator ports.Locator) (string, error) {
	if locator == nil {
		locator = ExactLocator{}
	}

	cursor := 0
	for i, record := range records {
		if err := record.Validate(); err != nil {
			return "", fmt.Errorf("record %d: %w", i+1, err)
		}

		switch record.Kind {
		case domain.ChangeInsert:
			at, err := locateInsert(text, record, locator, cursor)
			if err != nil {
				return "", fmt.Errorf("record %d (insert %q): %w", i+1, record.Text, err)
			}
			text = text[:at] + record.Text + text[at:]
			cursor = at + len(record.Text)
		case domain.ChangeDelete:
			at, err := locateDelete(text, record, locator, cursor)
			if err != nil {
				return "", fmt.Errorf("record %d (delete %q): %w", i+1, record.Text, err)
			}
			text = text[:at] + text[at+len(record.Text):]
			cursor = at
		}
	}

	return text, nil
}

type anchor struct {
	pattern string
	// offset is where the edit sits relative to the start of pattern.
	offset int
}

func locateInsert(text string, record domain.ChangeRecord, locator ports.Locator, hint int) (int, error) {
	if !record.Anchored() {
		return -1, domain.ErrUnanchoredChange
	}

	before, after := record.ContextBefore, record.ContextAfter
	candidates := []anchor{
		{pattern: before + after, offset: len(before)},
	}
	if before != "" && after != "" {
		candidates = append(candidates,
			anchor{pattern: before, offset: len(before)},
			anchor{pattern: after, offset: 0},
		)
	}

	return locateFirst(text, candidates, locator, hint, func(int) bool { return true })
}

func locateDelete(text string, record domain.ChangeRecord, locator ports.Locator, hint int) (int, error) {
	before, after := record.ContextBefore, record.ContextAfter
	candidates := []anchor{
		{pattern: before + record.Text + after, offset: len(before)},
	}
	if before != "" {
		candidates = append(candidates, anchor{pattern: before + record.Text, offset: len(before)})
	}
	if after != "" {
		candidates = append(candidates, anchor{pattern: record.Text + after, offset: 0})
	}
	if record.Anchored() {
		candidates = append(candidates, anchor{pattern: record.Text, offset: 0})
	}

	return locateFirst(text, candidates, locator, hint, func(at int) bool {
		return strings.HasPrefix(text[at:], record.Text)
	})
}

// locateFirst tries candidates from most to least specific. A missing anchor
// falls through to the next candidate; an ambiguous one stops the search.
// Positions inside a multi-byte rune are treated as missing.
func locateFirst(text string, candidates []anchor, locator ports.Locator, hint int, accept func(int) bool) (int, error) {
	err := domain.ErrAnchorNotFound
	for _, candidate := range candidates {
		var start int
		start, err = locator.Locate(text, candidate.pattern, hint-candidate.offset)
		if err != nil {
			if errors.Is(err, domain.ErrAnchorNotFound) {
				continue
			}
			return -1, err
		}

		at := start + candidate.offset
		if at < 0 || at > len(text) || !onRuneBoundary(text, at) || !accept(at) {
			err = domain.ErrAnchorNotFound
			continue
		}
		return at, nil
	}

	return -1, err
}

func onRuneBoundary(text string, at int) bool {
	return at == len(text) || utf8.RuneStart(text[at])
}
