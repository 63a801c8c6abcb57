package json

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/doctrack/internal/domain"
	"github.com/bnema/doctrack/internal/ports"
)

const (
	exportFileMode  = 0o644
	exportIndent    = "    "
	tempFilePattern = ".export-*.json.tmp"
	maxImportBytes  = 64 << 20
)

// Exporter reads and writes change logs as a JSON array of records.
type Exporter struct{}

var _ ports.ChangeExporter = Exporter{}

func NewExporter() Exporter {
	return Exporter{}
}

type recordJSON struct {
	Type          string `json:"type"`
	Text          string `json:"text"`
	ContextBefore string `json:"context_before"`
	ContextAfter  string `json:"context_after"`
}

// Export writes records to path, replacing any existing file. The file is
// written to a temp file first so a failed export never leaves a truncated
// log behind.
func (Exporter) Export(ctx context.Context, path string, records []domain.ChangeRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return errors.Join(fmt.Errorf("write temp export file: %w", err), tempFile.Close())
	}
	if err := tempFile.Chmod(exportFileMode); err != nil {
		return errors.Join(fmt.Errorf("chmod temp export file: %w", err), tempFile.Close())
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp export file: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace export file: %w", err)
	}

	cleanup = false
	return nil
}

// Import reads an exported log. Every record must be valid.
func (Exporter) Import(ctx context.Context, path string) ([]domain.ChangeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat export file: %w", err)
	}
	if info.Size() > maxImportBytes {
		return nil, fmt.Errorf("export file %s exceeds %d bytes", path, maxImportBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export file: %w", err)
	}

	return Decode(data)
}

// Encode renders records in export form. An empty log encodes as "[]".
func Encode(records []domain.ChangeRecord) ([]byte, error) {
	entries := make([]recordJSON, 0, len(records))
	for _, record := range records {
		entries = append(entries, recordJSON{
			Type:          string(record.Kind),
			Text:          record.Text,
			ContextBefore: record.ContextBefore,
			ContextAfter:  record.ContextAfter,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", exportIndent)
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("encode change log: %w", err)
	}

	return buf.Bytes(), nil
}

func Decode(data []byte) ([]domain.ChangeRecord, error) {
	var entries []recordJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode change log: %w", err)
	}

	records := make([]domain.ChangeRecord, 0, len(entries))
	for i, entry := range entries {
		record := domain.ChangeRecord{
			Kind:          domain.ChangeKind(entry.Type),
			Text:          entry.Text,
			ContextBefore: entry.ContextBefore,
			ContextAfter:  entry.ContextAfter,
		}
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("decode record %d: %w", i+1, err)
		}
		records = append(records, record)
	}

	return records, nil
}
