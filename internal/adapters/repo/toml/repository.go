package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/doctrack/internal/domain"
	"github.com/bnema/doctrack/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName          = "config"
	configType          = "toml"
	changeLogPathKey    = "changelog.path"
	changeLogFileMode   = 0o600
	changeLogDirMode    = 0o700
	changeLogConfigDir  = ".doctrack"
	changeLogConfigFile = "changelog.toml"
	tempFilePattern     = ".changelog-*.toml.tmp"
)

// Repository persists the change log of the last tracking session as a
// versioned TOML file.
type Repository struct {
	changeLogPath string
	mu            *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ChangeLogRepository = (*Repository)(nil)

// ConfigDir returns the directory holding config.toml and the default change
// log.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, changeLogConfigDir), nil
}

// LoadConfig points cfg at config.toml in the config directory and reads it.
// A missing config file is not an error.
func LoadConfig(cfg *viper.Viper) error {
	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(changeLogPathKey, filepath.Join(configDir, changeLogConfigFile))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if err := LoadConfig(cfg); err != nil {
		return nil, err
	}

	changeLogPath := cfg.GetString(changeLogPathKey)
	if changeLogPath == "" {
		return nil, errors.New("change log path is empty")
	}
	changeLogPath, err := normalizeChangeLogPath(changeLogPath)
	if err != nil {
		return nil, err
	}

	return &Repository{changeLogPath: changeLogPath, mu: lockForPath(changeLogPath)}, nil
}

func (r *Repository) Path() string {
	return r.changeLogPath
}

func (r *Repository) Load(ctx context.Context) (ports.StoredChangeLog, error) {
	if err := ctx.Err(); err != nil {
		return ports.StoredChangeLog{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, found, err := r.readSchema()
	if err != nil {
		return ports.StoredChangeLog{}, err
	}
	if !found {
		return ports.StoredChangeLog{}, domain.ErrChangeLogNotFound
	}

	return fromSchema(file)
}

func (r *Repository) Save(ctx context.Context, log ports.StoredChangeLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := toSchema(log)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

// Clear removes the persisted log. Clearing a missing log succeeds.
func (r *Repository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.changeLogPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove change log file: %w", err)
	}

	return nil
}

func (r *Repository) readSchema() (fileSchema, bool, error) {
	data, err := os.ReadFile(r.changeLogPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, false, nil
		}
		return fileSchema{}, false, fmt.Errorf("read change log file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, false, fmt.Errorf("decode change log file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, false, err
	}
	file.applyDefaults()

	return file, true, nil
}

func normalizeChangeLogPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve change log path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.changeLogPath), changeLogDirMode); err != nil {
		return fmt.Errorf("create change log directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode change log file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.changeLogPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp change log file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp change log file: %w", err)
	}

	if err := tempFile.Chmod(changeLogFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp change log file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp change log file: %w", err)
	}

	if err := os.Rename(tempName, r.changeLogPath); err != nil {
		return fmt.Errorf("replace change log file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(log ports.StoredChangeLog) (fileSchema, error) {
	records := make([]recordSchema, 0, len(log.Records))
	for i, record := range log.Records {
		if err := record.Validate(); err != nil {
			return fileSchema{}, fmt.Errorf("encode record %d: %w", i+1, err)
		}
		records = append(records, recordSchema{
			Type:          string(record.Kind),
			Text:          record.Text,
			ContextBefore: record.ContextBefore,
			ContextAfter:  record.ContextAfter,
		})
	}

	return fileSchema{
		Version: currentSchemaVersion,
		Session: sessionSchema{
			ID:        log.SessionID,
			Reference: log.Reference,
		},
		Records: records,
	}, nil
}

func fromSchema(file fileSchema) (ports.StoredChangeLog, error) {
	records := make([]domain.ChangeRecord, 0, len(file.Records))
	for i, entry := range file.Records {
		record := domain.ChangeRecord{
			Kind:          domain.ChangeKind(entry.Type),
			Text:          entry.Text,
			ContextBefore: entry.ContextBefore,
			ContextAfter:  entry.ContextAfter,
		}
		if err := record.Validate(); err != nil {
			return ports.StoredChangeLog{}, fmt.Errorf("decode record %d: %w", i+1, err)
		}
		records = append(records, record)
	}

	return ports.StoredChangeLog{
		SessionID: file.Session.ID,
		Reference: file.Session.Reference,
		Records:   records,
	}, nil
}
