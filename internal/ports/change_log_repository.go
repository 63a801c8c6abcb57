package ports

import (
	"context"

	"github.com/bnema/doctrack/internal/domain"
)

// StoredChangeLog is a persisted change log together with the reference
// document it was captured against.
type StoredChangeLog struct {
	SessionID string
	Reference string
	Records   []domain.ChangeRecord
}

type ChangeLogRepository interface {
	Load(ctx context.Context) (StoredChangeLog, error)
	Save(ctx context.Context, log StoredChangeLog) error
	Clear(ctx context.Context) error
}

type ChangeExporter interface {
	Export(ctx context.Context, path string, records []domain.ChangeRecord) error
	Import(ctx context.Context, path string) ([]domain.ChangeRecord, error)
}
