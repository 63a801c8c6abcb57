package fuzzy

import (
	"testing"
	"unicode/utf8"

	"github.com/bnema/doctrack/internal/application"
	"github.com/bnema/doctrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateExact(t *testing.T) {
	t.Parallel()

	locator := New(Options{})

	got, err := locator.Locate("Dear Sir, thanks", "Sir", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = locator.Locate("Sir Sir", "Sir", 0)
	require.ErrorIs(t, err, domain.ErrAmbiguousAnchor)

	_, err = locator.Locate("abc", "", 0)
	require.ErrorIs(t, err, domain.ErrUnanchoredChange)
}

func TestLocateApproximate(t *testing.T) {
	t.Parallel()

	got, err := New(Options{}).Locate("Hello Wrld, bye", "Hello World,", 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1)
}

func TestLocateNoMatch(t *testing.T) {
	t.Parallel()

	_, err := New(Options{}).Locate("zzzzzzzzzzzzzzzz", "Dear Sir,", 0)
	require.ErrorIs(t, err, domain.ErrAnchorNotFound)
}

func TestLocateLongPatternUsesTail(t *testing.T) {
	t.Parallel()

	tail := "the quick brown fox jumps over t"
	require.Len(t, tail, 32)

	text := "xxxxAAAAAAAA" + tail + "he lazy dog"
	got, err := New(Options{}).Locate(text, "BBBBBBBB"+tail, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestTruncateHeadKeepsRuneBoundary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "é", truncateHead("ééé", 3))
	assert.Equal(t, "abc", truncateHead("abc", 32))
	assert.Equal(t, "bc", truncateHead("abc", 2))
}

func TestRuneStartSnapsBack(t *testing.T) {
	t.Parallel()

	text := "aö日b"
	assert.Equal(t, 0, runeStart(text, 0))
	assert.Equal(t, 1, runeStart(text, 2))
	assert.Equal(t, 3, runeStart(text, 5))
	assert.Equal(t, 6, runeStart(text, 6))
	assert.Equal(t, len(text), runeStart(text, len(text)))
}

func TestPatchWithFuzzyLocatorKeepsUTF8Valid(t *testing.T) {
	t.Parallel()

	target := "日本語のテキスト Hellö wörld 日本語"
	records := []domain.ChangeRecord{
		{Kind: domain.ChangeInsert, Text: "X", ContextBefore: "Hello wö", ContextAfter: "rld 日本"},
	}

	got, err := application.Patch(target, records, New(Options{Threshold: 0.5}))
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(got), "patched text %q is not valid UTF-8", got)
	assert.Contains(t, got, "X")
	assert.Equal(t, len(target)+1, len(got))
}

func TestPatchWithFuzzyLocator(t *testing.T) {
	t.Parallel()

	records := []domain.ChangeRecord{
		{Kind: domain.ChangeInsert, Text: "dear ", ContextBefore: "Hallo ", ContextAfter: "World,"},
	}

	_, err := application.Patch("Hello Wrld, see you", records, application.ExactLocator{})
	require.ErrorIs(t, err, domain.ErrAnchorNotFound)

	got, err := application.Patch("Hello Wrld, see you", records, New(Options{}))
	require.NoError(t, err)
	assert.Contains(t, got, "dear ")
	assert.NotEqual(t, "Hello Wrld, see you", got)
}
