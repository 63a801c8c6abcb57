package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/doctrack/internal/domain"
	"github.com/bnema/doctrack/internal/ports"
	"golang.org/x/sync/errgroup"
)

const DefaultReplayWorkers = 4

type ReplayOptions struct {
	Workers int
	Locator ports.Locator
	// DryRun computes every outcome without writing targets.
	DryRun bool
	Logger *slog.Logger
}

// ReplayService applies a change log to independent target documents. A
// target is either fully patched or left untouched; one failing target never
// stops the others.
type ReplayService struct {
	workers int
	locator ports.Locator
	dryRun  bool
	logger  *slog.Logger
}

func NewReplayService(opts ReplayOptions) *ReplayService {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Locator == nil {
		opts.Locator = ExactLocator{}
	}

	return &ReplayService{
		workers: opts.Workers,
		locator: opts.Locator,
		dryRun:  opts.DryRun,
		logger:  loggerOrDiscard(opts.Logger),
	}
}

func (s *ReplayService) Apply(ctx context.Context, log *domain.ChangeLog, targets []ports.Document) domain.ReplayReport {
	var records []domain.ChangeRecord
	if log != nil {
		records = log.Records()
	}

	return s.ApplyRecords(ctx, records, targets)
}

// ApplyRecords replays records against every target. Outcomes are reported
// in target order regardless of completion order.
func (s *ReplayService) ApplyRecords(ctx context.Context, records []domain.ChangeRecord, targets []ports.Document) domain.ReplayReport {
	report := domain.ReplayReport{
		Records:  len(records),
		Outcomes: make([]domain.ReplayOutcome, len(targets)),
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, target := range targets {
		g.Go(func() error {
			report.Outcomes[i] = s.replayTarget(ctx, records, target)
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("replay finished",
		"records", len(records),
		"targets", len(targets),
		"succeeded", report.Succeeded(),
		"failed", report.Failed(),
	)

	return report
}

func (s *ReplayService) replayTarget(ctx context.Context, records []domain.ChangeRecord, target ports.Document) domain.ReplayOutcome {
	outcome := domain.ReplayOutcome{Target: target.Name()}

	applied, err := s.patchTarget(ctx, records, target)
	if err != nil {
		outcome.Err = err
		s.logger.Warn("replay failed", "target", outcome.Target, "error", err)
		return outcome
	}

	outcome.Applied = applied
	s.logger.Debug("replay applied", "target", outcome.Target, "records", applied, "dry_run", s.dryRun)
	return outcome
}

func (s *ReplayService) patchTarget(ctx context.Context, records []domain.ChangeRecord, target ports.Document) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	original, err := target.FullText(ctx)
	if err != nil {
		return 0, fmt.Errorf("read target: %w", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	patched, err := Patch(original, records, s.locator)
	if err != nil {
		return 0, err
	}
	if s.dryRun || patched == original {
		return len(records), nil
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := target.ReplaceContent(ctx, strings.Split(patched, "\n")); err != nil {
		return 0, fmt.Errorf("write target: %w", err)
	}

	return len(records), nil
}
