package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/doctrack/internal/diff"
	"github.com/bnema/doctrack/internal/domain"
	"github.com/bnema/doctrack/internal/placeholder"
	"github.com/bnema/doctrack/internal/ports"
	"github.com/google/uuid"
)

var errNoExporter = errors.New("no change exporter configured")

type TrackingOptions struct {
	Scheduler    ports.Scheduler
	Debounce     time.Duration
	ContextWidth int
	Placeholder  placeholder.Predicate
	// BackspaceRegion records a backspace run as the removed text rather than
	// in keystroke order.
	BackspaceRegion bool
	Diff            diff.Options
	Logger          *slog.Logger
}

// TrackingService follows one reference document: it diffs every new
// snapshot of the text surface against the previous one, filters placeholder
// spans, and commits debounced records to the change log.
type TrackingService struct {
	surface  ports.TextSurface
	repo     ports.ChangeLogRepository
	exporter ports.ChangeExporter
	log      *domain.ChangeLog
	buffer   *Buffer
	logger   *slog.Logger

	placeholder  placeholder.Predicate
	contextWidth int
	diffOptions  diff.Options

	// mu serializes change notifications and reference loads.
	mu       sync.Mutex
	snapshot string
	ready    bool

	metaMu    sync.RWMutex
	sessionID string
	reference string

	observersMu sync.RWMutex
	observers   map[int]func(domain.ChangeRecord)
	nextID      int
}

func NewTrackingService(surface ports.TextSurface, repo ports.ChangeLogRepository, exporter ports.ChangeExporter, opts TrackingOptions) *TrackingService {
	if opts.Placeholder == nil {
		opts.Placeholder = placeholder.Bracket
	}
	if opts.ContextWidth < 0 {
		opts.ContextWidth = 0
	}

	s := &TrackingService{
		surface:      surface,
		repo:         repo,
		exporter:     exporter,
		log:          domain.NewChangeLog(),
		logger:       loggerOrDiscard(opts.Logger),
		placeholder:  opts.Placeholder,
		contextWidth: opts.ContextWidth,
		diffOptions:  opts.Diff,
		observers:    map[int]func(domain.ChangeRecord){},
	}
	s.buffer = NewBuffer(opts.Scheduler, BufferOptions{
		Delay:           opts.Debounce,
		Placeholder:     opts.Placeholder,
		BackspaceRegion: opts.BackspaceRegion,
		Logger:          opts.Logger,
	}, s.commit)

	return s
}

// LoadReference takes the surface's current text as the new baseline. Pending
// edits are discarded and the change log is cleared.
func (s *TrackingService) LoadReference(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	text, err := s.surface.CurrentText()
	if err != nil {
		return fmt.Errorf("read reference text: %w", err)
	}

	s.buffer.Discard()
	s.log.Clear()
	s.snapshot = text
	s.ready = true

	s.metaMu.Lock()
	s.sessionID = uuid.NewString()
	s.reference = name
	s.metaMu.Unlock()

	s.logger.Info("reference loaded", "reference", name, "session", s.SessionID(), "runes", len([]rune(text)))
	return nil
}

// TextChanged is the surface's change notification. It is a no-op while the
// surface is read-only or before a reference has been loaded.
func (s *TrackingService) TextChanged(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready || s.surface.ReadOnly() {
		return nil
	}

	current, err := s.surface.CurrentText()
	if err != nil {
		return fmt.Errorf("read current text: %w", err)
	}
	if current == s.snapshot {
		return nil
	}

	ops := diff.ComputeWith(s.snapshot, current, s.diffOptions)
	for _, span := range diff.Spans(s.snapshot, current, ops, s.contextWidth) {
		if s.placeholder.IsPlaceholder(span.Text) {
			s.logger.Debug("ignoring placeholder span", "tag", span.Tag, "text", span.Text)
			continue
		}
		s.buffer.Add(span)
	}

	s.snapshot = current
	return nil
}

// Subscribe registers fn to receive every committed record. fn runs on the
// goroutine that flushed the buffer and must not block.
func (s *TrackingService) Subscribe(fn func(domain.ChangeRecord)) func() {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = fn

	return func() {
		s.observersMu.Lock()
		defer s.observersMu.Unlock()
		delete(s.observers, id)
	}
}

func (s *TrackingService) Records() []domain.ChangeRecord {
	return s.log.Records()
}

// Pending returns the text still waiting for the debounce window.
func (s *TrackingService) Pending() (insert, del string) {
	return s.buffer.Pending()
}

func (s *TrackingService) SessionID() string {
	s.metaMu.RLock()
	defer s.metaMu.RUnlock()

	return s.sessionID
}

func (s *TrackingService) Reference() string {
	s.metaMu.RLock()
	defer s.metaMu.RUnlock()

	return s.reference
}

// Export writes the committed records to path. A failed export leaves the
// in-memory log untouched.
func (s *TrackingService) Export(ctx context.Context, path string) error {
	if s.exporter == nil {
		return errNoExporter
	}

	if err := s.exporter.Export(ctx, path, s.log.Records()); err != nil {
		return fmt.Errorf("export change log: %w", err)
	}

	return nil
}

// Persist saves the committed records through the repository.
func (s *TrackingService) Persist(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	stored := ports.StoredChangeLog{
		SessionID: s.SessionID(),
		Reference: s.Reference(),
		Records:   s.log.Records(),
	}
	if err := s.repo.Save(ctx, stored); err != nil {
		return fmt.Errorf("save change log: %w", err)
	}

	return nil
}

// Close commits whatever is still pending and persists the log.
func (s *TrackingService) Close(ctx context.Context) error {
	s.buffer.Flush()
	return s.Persist(ctx)
}

func (s *TrackingService) commit(record domain.ChangeRecord) {
	if err := record.Validate(); err != nil {
		s.logger.Warn("dropping invalid change", "error", err)
		return
	}

	s.log.Append(record)
	s.logger.Info("change committed", "kind", record.Kind, "text", record.Text, "records", s.log.Len())

	s.observersMu.RLock()
	defer s.observersMu.RUnlock()
	for _, observer := range s.observers {
		observer(record)
	}
}
