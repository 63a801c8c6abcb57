package changes

import (
	"errors"
	"strings"
	"testing"

	"github.com/bnema/doctrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLogListsRecordsInOrder(t *testing.T) {
	output, err := RenderLog([]domain.ChangeRecord{
		{Kind: domain.ChangeInsert, Text: "World", ContextBefore: "Hello ", ContextAfter: ","},
		{Kind: domain.ChangeDelete, Text: "old\n"},
	}, LogOptions{Reference: "letter.txt"})

	require.NoError(t, err)
	assert.Contains(t, output, "Change Log")
	assert.Contains(t, output, "records: 2")
	assert.Contains(t, output, "reference: letter.txt")
	assert.Contains(t, output, `1. + insert "World"`)
	assert.Contains(t, output, `after "Hello " before ","`)
	assert.Contains(t, output, `2. - delete "old\n"`)
	assert.Less(t, strings.Index(output, "World"), strings.Index(output, "old"))
}

func TestRenderLogEmptyAndPending(t *testing.T) {
	output, err := RenderLog(nil, LogOptions{
		Pending: map[domain.ChangeKind]string{domain.ChangeInsert: "typing"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "records: 0")
	assert.Contains(t, output, "No changes recorded.")
	assert.Contains(t, output, `pending insert: "typing"`)
}

func TestRenderReportPartialFailure(t *testing.T) {
	output, err := RenderReport(domain.ReplayReport{
		Records: 1,
		Outcomes: []domain.ReplayOutcome{
			{Target: "a.txt", Applied: 1},
			{Target: "b.txt", Err: errors.New("record 1 (insert \"X\"): anchor not found")},
		},
	}, false)

	require.NoError(t, err)
	assert.Contains(t, output, "records: 1  targets: 2")
	assert.Contains(t, output, "1 succeeded")
	assert.Contains(t, output, "1 failed")
	assert.Contains(t, output, "a.txt (1 applied)")
	assert.Contains(t, output, "FAIL b.txt")
	assert.Contains(t, output, "anchor not found")
	assert.Contains(t, output, "[============------------]")
}

func TestRenderReportDryRunWithoutTargets(t *testing.T) {
	output, err := RenderReport(domain.ReplayReport{}, true)

	require.NoError(t, err)
	assert.Contains(t, output, "Replay Report (dry run)")
	assert.Contains(t, output, "No targets.")
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "abc", shorten("abc", 5, true))
	assert.Equal(t, "…cd", shorten("abcd", 2, true))
	assert.Equal(t, "ab…", shorten("abcd", 2, false))
}
