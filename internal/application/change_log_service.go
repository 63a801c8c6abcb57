package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/doctrack/internal/domain"
	"github.com/bnema/doctrack/internal/ports"
)

// ChangeLogService manages the persisted change log between tracking
// sessions.
type ChangeLogService struct {
	repo     ports.ChangeLogRepository
	exporter ports.ChangeExporter
}

func NewChangeLogService(repo ports.ChangeLogRepository, exporter ports.ChangeExporter) *ChangeLogService {
	return &ChangeLogService{repo: repo, exporter: exporter}
}

// Load returns the persisted log. A missing log is reported as empty.
func (s *ChangeLogService) Load(ctx context.Context) (ports.StoredChangeLog, error) {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrChangeLogNotFound) {
			return ports.StoredChangeLog{}, nil
		}
		return ports.StoredChangeLog{}, fmt.Errorf("load change log: %w", err)
	}

	return stored, nil
}

func (s *ChangeLogService) ChangeLog(ctx context.Context) (*domain.ChangeLog, error) {
	stored, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	return domain.NewChangeLog(stored.Records...), nil
}

func (s *ChangeLogService) Export(ctx context.Context, path string) error {
	stored, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if err := s.exporter.Export(ctx, path, stored.Records); err != nil {
		return fmt.Errorf("export change log: %w", err)
	}

	return nil
}

// Import replaces the persisted log with the records exported at path.
func (s *ChangeLogService) Import(ctx context.Context, path string) (int, error) {
	records, err := s.exporter.Import(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("import change log: %w", err)
	}

	if err := s.repo.Save(ctx, ports.StoredChangeLog{Reference: path, Records: records}); err != nil {
		return 0, fmt.Errorf("save change log: %w", err)
	}

	return len(records), nil
}

func (s *ChangeLogService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear change log: %w", err)
	}

	return nil
}
