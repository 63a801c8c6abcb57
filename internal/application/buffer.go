package application

import (
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/doctrack/internal/diff"
	"github.com/bnema/doctrack/internal/domain"
	"github.com/bnema/doctrack/internal/placeholder"
	"github.com/bnema/doctrack/internal/ports"
)

const DefaultDebounce = 300 * time.Millisecond

type BufferOptions struct {
	Delay       time.Duration
	Placeholder placeholder.Predicate
	// BackspaceRegion prepends each span of a backspace run so the recorded
	// text reads as the removed region. By default deleted spans are appended
	// in arrival order.
	BackspaceRegion bool
	Logger          *slog.Logger
}

// Buffer coalesces consecutive spans of the same kind into one ChangeRecord
// per quiet period. Inserts and deletes accumulate independently behind a
// single shared debounce timer; on expiry the insert record is committed
// before the delete record.
type Buffer struct {
	scheduler       ports.Scheduler
	delay           time.Duration
	placeholder     placeholder.Predicate
	backspaceRegion bool
	commit          func(domain.ChangeRecord)
	logger          *slog.Logger

	mu         sync.Mutex
	insert     accumulator
	delete     accumulator
	timer      ports.Timer
	generation uint64
}

type accumulator struct {
	text     string
	before   string
	after    string
	start    int
	end      int
	spans    int
	detached bool
}

func (a *accumulator) empty() bool {
	return a.spans == 0
}

// NewBuffer returns a buffer that hands each committed record to commit.
// commit runs with the buffer locked and must not call back into it.
func NewBuffer(scheduler ports.Scheduler, opts BufferOptions, commit func(domain.ChangeRecord)) *Buffer {
	if scheduler == nil {
		scheduler = ports.SystemScheduler{}
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDebounce
	}
	if opts.Placeholder == nil {
		opts.Placeholder = placeholder.Bracket
	}

	return &Buffer{
		scheduler:       scheduler,
		delay:           opts.Delay,
		placeholder:     opts.Placeholder,
		backspaceRegion: opts.BackspaceRegion,
		commit:          commit,
		logger:          loggerOrDiscard(opts.Logger),
	}
}

// Add routes span to the accumulator matching its tag. Equal spans are
// ignored.
func (b *Buffer) Add(span diff.Span) {
	switch span.Tag {
	case diff.Insert:
		b.AddInsert(span)
	case diff.Delete:
		b.AddDelete(span)
	}
}

func (b *Buffer) AddInsert(span diff.Span) {
	if span.Text == "" {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acc := &b.insert
	switch {
	case acc.empty():
		b.startAccumulator(acc, span)
	case span.Start == acc.end:
		acc.text += span.Text
		acc.after = span.After
		acc.end = span.End
		acc.spans++
	default:
		acc.text += span.Text
		acc.end = span.End
		acc.detached = true
		acc.spans++
	}

	b.restartTimerLocked()
}

// AddDelete appends a deleted span. Forward deletes at the same position
// keep their context. A backspace run keeps context only when BackspaceRegion
// is set, since appended in arrival order its text no longer matches the
// document.
func (b *Buffer) AddDelete(span diff.Span) {
	if span.Text == "" {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acc := &b.delete
	switch {
	case acc.empty():
		b.startAccumulator(acc, span)
	case span.Start == acc.start:
		acc.text += span.Text
		acc.after = span.After
		acc.spans++
	case span.End == acc.start && b.backspaceRegion:
		acc.text = span.Text + acc.text
		acc.before = span.Before
		acc.start = span.Start
		acc.spans++
	default:
		acc.text += span.Text
		acc.start = span.Start
		acc.detached = true
		acc.spans++
	}

	b.restartTimerLocked()
}

// Pending returns the accumulated, not yet committed text.
func (b *Buffer) Pending() (insert, del string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.insert.text, b.delete.text
}

// Flush commits pending text immediately.
func (b *Buffer) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.flushLocked()
}

// Discard drops pending text without committing it.
func (b *Buffer) Discard() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.insert.empty() || !b.delete.empty() {
		b.logger.Debug("discarding pending edits", "insert", b.insert.text, "delete", b.delete.text)
	}
	b.stopTimerLocked()
	b.insert = accumulator{}
	b.delete = accumulator{}
}

func (b *Buffer) startAccumulator(acc *accumulator, span diff.Span) {
	*acc = accumulator{
		text:   span.Text,
		before: span.Before,
		after:  span.After,
		start:  span.Start,
		end:    span.End,
		spans:  1,
	}
}

func (b *Buffer) restartTimerLocked() {
	b.stopTimerLocked()

	generation := b.generation
	b.timer = b.scheduler.AfterFunc(b.delay, func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		// A timer that fired after being superseded or stopped is stale.
		if generation != b.generation {
			return
		}
		b.flushLocked()
	})
}

func (b *Buffer) stopTimerLocked() {
	b.generation++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *Buffer) flushLocked() {
	b.stopTimerLocked()

	if !b.insert.empty() {
		b.emitLocked(domain.ChangeInsert, &b.insert)
	}
	if !b.delete.empty() {
		b.emitLocked(domain.ChangeDelete, &b.delete)
	}

	b.insert = accumulator{}
	b.delete = accumulator{}
}

func (b *Buffer) emitLocked(kind domain.ChangeKind, acc *accumulator) {
	if b.placeholder.IsPlaceholder(acc.text) {
		b.logger.Debug("dropping placeholder burst", "kind", kind, "text", acc.text)
		return
	}

	record := domain.ChangeRecord{Kind: kind, Text: acc.text}
	if !acc.detached {
		record.ContextBefore = acc.before
		record.ContextAfter = acc.after
	}

	if b.commit != nil {
		b.commit(record)
	}
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
