package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/doctrack/internal/adapters/document/textfile"
	"github.com/bnema/doctrack/internal/application"
	"github.com/bnema/doctrack/internal/domain"
	"github.com/spf13/cobra"
)

var errReplayFailed = errors.New("replay failed")

type replayOptions struct {
	logPath        string
	workers        int
	locator        string
	fuzzyThreshold float64
	dryRun         bool
	asJSON         bool
}

type replayOutcomeOutput struct {
	Target  string `json:"target"`
	Applied int    `json:"applied"`
	Error   string `json:"error,omitempty"`
}

type replayReportOutput struct {
	Records   int                   `json:"records"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	DryRun    bool                  `json:"dry_run"`
	Outcomes  []replayOutcomeOutput `json:"outcomes"`
}

func newReplayCmd(app *app) *cobra.Command {
	var opts replayOptions

	cmd := &cobra.Command{
		Use:   "replay <target>...",
		Short: "Apply the recorded changes to target documents",
		Long: "replay applies every recorded change, in order, to each target. A target is either fully patched " +
			"or left untouched; failing targets are reported and the command exits non-zero.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				opts.workers = app.settings.Workers
			}
			if !cmd.Flags().Changed("locator") {
				opts.locator = app.settings.Locator
			}
			if !cmd.Flags().Changed("fuzzy-threshold") {
				opts.fuzzyThreshold = app.settings.FuzzyThreshold
			}
			return runReplay(cmd, app, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.logPath, "log", "", "Replay an exported JSON log instead of the recorded one")
	cmd.Flags().IntVar(&opts.workers, "workers", application.DefaultReplayWorkers, "Targets patched concurrently")
	cmd.Flags().StringVar(&opts.locator, "locator", locatorExact, "Anchor matching: exact or fuzzy")
	cmd.Flags().Float64Var(&opts.fuzzyThreshold, "fuzzy-threshold", 0, "Fuzzy match tolerance from 0 (exact) to 1")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report outcomes without writing targets")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Render JSON output")

	return cmd
}

func runReplay(cmd *cobra.Command, app *app, targetPaths []string, opts replayOptions) error {
	records, err := loadReplayRecords(cmd, app, opts.logPath)
	if err != nil {
		return err
	}

	locator, err := app.locator(opts.locator, opts.fuzzyThreshold)
	if err != nil {
		return err
	}

	targets, err := textfile.OpenAll(targetPaths)
	if err != nil {
		return err
	}

	service := application.NewReplayService(application.ReplayOptions{
		Workers: opts.workers,
		Locator: locator,
		DryRun:  opts.dryRun,
		Logger:  app.logger(cmd),
	})
	replay := func(ctx context.Context) domain.ReplayReport {
		return service.ApplyRecords(ctx, records, targets)
	}

	var report domain.ReplayReport
	if opts.asJSON {
		report = replay(cmd.Context())
	} else {
		report, err = runReplaySpinner(cmd.Context(), cmd.ErrOrStderr(), len(targets), replay)
		if err != nil {
			return err
		}
	}

	if err := writeReplayReport(cmd, app, report, opts); err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%w: %d of %d targets", errReplayFailed, failed, len(report.Outcomes))
	}

	return nil
}

func loadReplayRecords(cmd *cobra.Command, app *app, logPath string) ([]domain.ChangeRecord, error) {
	if logPath != "" {
		records, err := app.exporter.Import(cmd.Context(), logPath)
		if err != nil {
			return nil, fmt.Errorf("import change log: %w", err)
		}
		return records, nil
	}

	log, err := app.changeLogs.ChangeLog(cmd.Context())
	if err != nil {
		return nil, err
	}

	return log.Records(), nil
}

func writeReplayReport(cmd *cobra.Command, app *app, report domain.ReplayReport, opts replayOptions) error {
	if opts.asJSON {
		output := replayReportOutput{
			Records:   report.Records,
			Succeeded: report.Succeeded(),
			Failed:    report.Failed(),
			DryRun:    opts.dryRun,
			Outcomes:  make([]replayOutcomeOutput, 0, len(report.Outcomes)),
		}
		for _, outcome := range report.Outcomes {
			entry := replayOutcomeOutput{Target: outcome.Target, Applied: outcome.Applied}
			if outcome.Err != nil {
				entry.Error = outcome.Err.Error()
			}
			output.Outcomes = append(output.Outcomes, entry)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	rendered, err := app.reportRenderer(report, opts.dryRun)
	if err != nil {
		return fmt.Errorf("render replay report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
