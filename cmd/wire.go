package cmd

import (
	"fmt"
	"strings"
	"time"

	jsonexport "github.com/bnema/doctrack/internal/adapters/export/json"
	fuzzylocate "github.com/bnema/doctrack/internal/adapters/locate/fuzzy"
	changesrender "github.com/bnema/doctrack/internal/adapters/render/changes"
	tomlrepo "github.com/bnema/doctrack/internal/adapters/repo/toml"
	"github.com/bnema/doctrack/internal/application"
	"github.com/bnema/doctrack/internal/domain"
	"github.com/bnema/doctrack/internal/placeholder"
	"github.com/bnema/doctrack/internal/ports"
	"github.com/spf13/viper"
)

const (
	envPrefix = "DOCTRACK"

	debounceKey        = "tracking.debounce"
	contextWidthKey    = "tracking.context_width"
	backspaceRegionKey = "tracking.backspace_region"
	placeholderModeKey = "placeholder.mode"
	placeholderExprKey = "placeholder.expr"
	locatorKey         = "replay.locator"
	workersKey         = "replay.workers"
	fuzzyThresholdKey  = "replay.fuzzy_threshold"
	logLevelKey        = "log.level"

	defaultContextWidth = 32

	locatorExact = "exact"
	locatorFuzzy = "fuzzy"
)

type app struct {
	settings       settings
	repo           *tomlrepo.Repository
	exporter       ports.ChangeExporter
	changeLogs     *application.ChangeLogService
	logRenderer    func([]domain.ChangeRecord, changesrender.LogOptions) (string, error)
	reportRenderer func(domain.ReplayReport, bool) (string, error)
}

type settings struct {
	Debounce        time.Duration
	ContextWidth    int
	BackspaceRegion bool
	PlaceholderMode string
	PlaceholderExpr string
	Locator         string
	Workers         int
	FuzzyThreshold  float64
	LogLevel        string
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setDefaults(cfg)

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire change log repository: %w", err)
	}

	loaded, err := loadSettings(cfg)
	if err != nil {
		return nil, err
	}

	exporter := jsonexport.NewExporter()

	return &app{
		settings:       loaded,
		repo:           repo,
		exporter:       exporter,
		changeLogs:     application.NewChangeLogService(repo, exporter),
		logRenderer:    changesrender.RenderLog,
		reportRenderer: changesrender.RenderReport,
	}, nil
}

func setDefaults(cfg *viper.Viper) {
	cfg.SetDefault(debounceKey, application.DefaultDebounce)
	cfg.SetDefault(contextWidthKey, defaultContextWidth)
	cfg.SetDefault(backspaceRegionKey, false)
	cfg.SetDefault(placeholderModeKey, placeholder.ModeBracket)
	cfg.SetDefault(placeholderExprKey, "")
	cfg.SetDefault(locatorKey, locatorExact)
	cfg.SetDefault(workersKey, application.DefaultReplayWorkers)
	cfg.SetDefault(fuzzyThresholdKey, fuzzylocate.DefaultThreshold)
	cfg.SetDefault(logLevelKey, "info")
}

func loadSettings(cfg *viper.Viper) (settings, error) {
	loaded := settings{
		Debounce:        cfg.GetDuration(debounceKey),
		ContextWidth:    cfg.GetInt(contextWidthKey),
		BackspaceRegion: cfg.GetBool(backspaceRegionKey),
		PlaceholderMode: cfg.GetString(placeholderModeKey),
		PlaceholderExpr: cfg.GetString(placeholderExprKey),
		Locator:         strings.ToLower(cfg.GetString(locatorKey)),
		Workers:         cfg.GetInt(workersKey),
		FuzzyThreshold:  cfg.GetFloat64(fuzzyThresholdKey),
		LogLevel:        cfg.GetString(logLevelKey),
	}

	if loaded.Debounce <= 0 {
		return settings{}, fmt.Errorf("invalid %s %q: must be positive", debounceKey, cfg.GetString(debounceKey))
	}
	if loaded.ContextWidth < 0 {
		return settings{}, fmt.Errorf("invalid %s %d: must not be negative", contextWidthKey, loaded.ContextWidth)
	}

	return loaded, nil
}

func (a *app) placeholder() (placeholder.Predicate, error) {
	predicate, err := placeholder.New(a.settings.PlaceholderMode, a.settings.PlaceholderExpr)
	if err != nil {
		return nil, fmt.Errorf("configure placeholder filter: %w", err)
	}

	return predicate, nil
}

func (a *app) locator(name string, threshold float64) (ports.Locator, error) {
	switch strings.ToLower(name) {
	case "", locatorExact:
		return application.ExactLocator{}, nil
	case locatorFuzzy:
		return fuzzylocate.New(fuzzylocate.Options{Threshold: threshold}), nil
	default:
		return nil, fmt.Errorf("unknown locator %q (want %s or %s)", name, locatorExact, locatorFuzzy)
	}
}
