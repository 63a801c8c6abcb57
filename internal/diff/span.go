package diff

// Span is the text touched by one Insert or Delete opcode.
type Span struct {
	Tag  Tag
	Text string
	// Start and End locate Text in the snapshot it lives in: the new text for
	// inserts, the old text for deletes.
	Start int
	End   int
	// Before and After hold up to the requested number of runes surrounding
	// the span in that same snapshot.
	Before string
	After  string
}

// Spans extracts the inserted and deleted text of ops in order. Equal opcodes
// are skipped. contextWidth is the number of surrounding runes captured on
// each side; zero leaves Before and After empty.
func Spans(previous, current string, ops []Opcode, contextWidth int) []Span {
	oldTokens := split(previous)
	newTokens := split(current)

	spans := make([]Span, 0, len(ops))
	for _, op := range ops {
		switch op.Tag {
		case Insert:
			spans = append(spans, newSpan(Insert, newTokens, op.NewStart, op.NewEnd, contextWidth))
		case Delete:
			spans = append(spans, newSpan(Delete, oldTokens, op.OldStart, op.OldEnd, contextWidth))
		}
	}

	return spans
}

func newSpan(tag Tag, text []string, start, end, width int) Span {
	span := Span{
		Tag:   tag,
		Text:  join(text[start:end]),
		Start: start,
		End:   end,
	}
	if width > 0 {
		span.Before = join(text[max(0, start-width):start])
		span.After = join(text[end:min(len(text), end+width)])
	}

	return span
}
