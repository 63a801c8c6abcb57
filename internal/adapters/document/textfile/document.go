package textfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/doctrack/internal/ports"
)

const (
	defaultFileMode = 0o644
	tempFilePattern = ".doctrack-*.tmp"
	byteOrderMark   = "\uFEFF"
)

// Document is a plain-text file used both as a replay target and as the
// tracked reference surface. Paragraphs are lines.
type Document struct {
	path     string
	readOnly bool
	mu       sync.Mutex
}

var (
	_ ports.Document    = (*Document)(nil)
	_ ports.TextSurface = (*Document)(nil)
)

type Option func(*Document)

// ReadOnly makes ReplaceContent fail and the surface report read-only.
func ReadOnly() Option {
	return func(d *Document) {
		d.readOnly = true
	}
}

func Open(path string, opts ...Option) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve document path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open document %s: is a directory", path)
	}

	d := &Document{path: filepath.Clean(absPath)}
	for _, opt := range opts {
		opt(d)
	}
	if info.Mode().Perm()&0o200 == 0 {
		d.readOnly = true
	}

	return d, nil
}

func (d *Document) Name() string {
	return d.path
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) FullText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return d.CurrentText()
}

// CurrentText returns the file content with line endings normalized to '\n'.
func (d *Document) CurrentText() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := os.ReadFile(d.path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	return normalize(string(data)), nil
}

func (d *Document) ReadOnly() bool {
	return d.readOnly
}

// ReplaceContent rewrites the whole file with lines joined by '\n'. The
// existing file mode is kept.
func (d *Document) ReplaceContent(ctx context.Context, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.readOnly {
		return fmt.Errorf("write document %s: %w", d.path, os.ErrPermission)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	mode := os.FileMode(defaultFileMode)
	if info, err := os.Stat(d.path); err == nil {
		mode = info.Mode().Perm()
	}

	tempFile, err := os.CreateTemp(filepath.Dir(d.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.WriteString(strings.Join(lines, "\n")); err != nil {
		return errors.Join(fmt.Errorf("write temp document: %w", err), tempFile.Close())
	}
	if err := tempFile.Chmod(mode); err != nil {
		return errors.Join(fmt.Errorf("chmod temp document: %w", err), tempFile.Close())
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp document: %w", err)
	}
	if err := os.Rename(tempName, d.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}

	cleanup = false
	return nil
}

func normalize(text string) string {
	text = strings.TrimPrefix(text, byteOrderMark)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// OpenAll opens every path, stopping at the first failure.
func OpenAll(paths []string, opts ...Option) ([]ports.Document, error) {
	docs := make([]ports.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := Open(path, opts...)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
