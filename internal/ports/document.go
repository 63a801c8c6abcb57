package ports

import "context"

// TextSurface is the live editing buffer of the reference document.
type TextSurface interface {
	CurrentText() (string, error)
	ReadOnly() bool
}

// Document is a replay target.
type Document interface {
	Name() string
	// FullText returns all textual content with paragraphs separated by '\n'
	// and table cells by '\t'.
	FullText(ctx context.Context) (string, error)
	ReplaceContent(ctx context.Context, lines []string) error
}

// Locator finds where pattern occurs in text and returns its byte offset.
// hint is the offset where the caller expects the pattern to be.
type Locator interface {
	Locate(text, pattern string, hint int) (int, error)
}
