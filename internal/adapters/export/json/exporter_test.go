package json

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/doctrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWritesIndentedArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	records := []domain.ChangeRecord{
		{Kind: domain.ChangeInsert, Text: "World", ContextBefore: "Hello ", ContextAfter: ","},
		{Kind: domain.ChangeDelete, Text: "<b>é</b>"},
	}

	require.NoError(t, NewExporter().Export(context.Background(), path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[
    {
        "type": "insert",
        "text": "World",
        "context_before": "Hello ",
        "context_after": ","
    },
    {
        "type": "delete",
        "text": "<b>é</b>",
        "context_before": "",
        "context_after": ""
    }
]
`, string(data))
}

func TestExportEmptyLog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, NewExporter().Export(context.Background(), path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestExportClearedLog(t *testing.T) {
	t.Parallel()

	log := domain.NewChangeLog()
	log.Append(domain.ChangeRecord{Kind: domain.ChangeInsert, Text: "World", ContextBefore: "Hello "})
	log.Append(domain.ChangeRecord{Kind: domain.ChangeDelete, Text: "Sir"})
	require.Equal(t, 2, log.Len())
	log.Clear()

	path := filepath.Join(t.TempDir(), "cleared.json")
	require.NoError(t, NewExporter().Export(context.Background(), path, log.Records()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestExportUnwritablePathReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "log.json")
	err := NewExporter().Export(context.Background(), path, []domain.ChangeRecord{
		{Kind: domain.ChangeInsert, Text: "x"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, "create temp export file")
}

func TestExportOverwritesAndLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "log.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, NewExporter().Export(context.Background(), path, []domain.ChangeRecord{
		{Kind: domain.ChangeInsert, Text: "x"},
	}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "log.json", entries[0].Name())
}

func TestImportRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	records := []domain.ChangeRecord{
		{Kind: domain.ChangeInsert, Text: "a\tb\nc", ContextBefore: "x"},
		{Kind: domain.ChangeDelete, Text: "y", ContextAfter: "z"},
	}

	exporter := NewExporter()
	require.NoError(t, exporter.Export(context.Background(), path, records))

	got, err := exporter.Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestDecodeRejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
		msg     string
	}{
		{name: "unknown type", data: `[{"type":"move","text":"x"}]`, wantErr: domain.ErrUnknownChangeKind, msg: "decode record 1"},
		{name: "empty text", data: `[{"type":"insert","text":"a"},{"type":"delete","text":""}]`, wantErr: domain.ErrEmptyChange, msg: "decode record 2"},
		{name: "not an array", data: `{"type":"insert"}`, msg: "decode change log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(tt.data))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestImportMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewExporter().Import(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
