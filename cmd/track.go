package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bnema/doctrack/internal/adapters/document/textfile"
	"github.com/bnema/doctrack/internal/adapters/surface/watch"
	"github.com/bnema/doctrack/internal/application"
	"github.com/bnema/doctrack/internal/domain"
	"github.com/spf13/cobra"
)

type trackOptions struct {
	debounce     time.Duration
	contextWidth int
	exportPath   string
}

func newTrackCmd(app *app) *cobra.Command {
	var opts trackOptions

	cmd := &cobra.Command{
		Use:   "track <reference>",
		Short: "Record edits made to a reference document until interrupted",
		Long: "track loads the reference document, clears the change log and records every insertion and deletion " +
			"saved to the file. Template placeholders such as <name> are never recorded. Press Ctrl+C to stop.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("debounce") {
				opts.debounce = app.settings.Debounce
			}
			if !cmd.Flags().Changed("context") {
				opts.contextWidth = app.settings.ContextWidth
			}
			return runTrack(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().DurationVar(&opts.debounce, "debounce", application.DefaultDebounce, "Quiet period that closes a burst of edits")
	cmd.Flags().IntVar(&opts.contextWidth, "context", defaultContextWidth, "Runes of surrounding text stored with each record")
	cmd.Flags().StringVar(&opts.exportPath, "export", "", "Also export the log as JSON to this path on exit")

	return cmd
}

func runTrack(cmd *cobra.Command, app *app, referencePath string, opts trackOptions) error {
	if opts.debounce <= 0 {
		return fmt.Errorf("invalid debounce %s: must be positive", opts.debounce)
	}

	logger := app.logger(cmd)

	predicate, err := app.placeholder()
	if err != nil {
		return err
	}

	reference, err := textfile.Open(referencePath)
	if err != nil {
		return err
	}
	if reference.ReadOnly() {
		logger.Warn("reference is read-only, edits will not be recorded", "reference", reference.Name())
	}

	watcher, err := watch.New(reference.Path(), logger)
	if err != nil {
		return err
	}

	session := application.NewTrackingService(reference, app.repo, app.exporter, application.TrackingOptions{
		Debounce:        opts.debounce,
		ContextWidth:    opts.contextWidth,
		Placeholder:     predicate,
		BackspaceRegion: app.settings.BackspaceRegion,
		Logger:          logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.LoadReference(ctx, reference.Name()); err != nil {
		return err
	}
	if err := session.Persist(ctx); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	unsubscribe := session.Subscribe(func(record domain.ChangeRecord) {
		_, _ = fmt.Fprintln(out, recordSummary(record))
		// The timer goroutine is not tied to ctx; persist with a fresh context.
		if err := session.Persist(context.Background()); err != nil {
			logger.Error("persist change log", "error", err)
		}
	})
	defer unsubscribe()

	_, _ = fmt.Fprintf(out, "tracking %s (debounce %s)\n", reference.Name(), opts.debounce)

	runErr := watcher.Run(ctx, session.TextChanged)

	closeErr := session.Close(context.Background())
	if opts.exportPath != "" && closeErr == nil {
		closeErr = session.Export(context.Background(), opts.exportPath)
	}

	_, _ = fmt.Fprintf(out, "recorded %d changes\n", len(session.Records()))

	return errors.Join(runErr, closeErr)
}

func recordSummary(record domain.ChangeRecord) string {
	marker := "+"
	if record.Kind == domain.ChangeDelete {
		marker = "-"
	}

	return fmt.Sprintf("%s %s %s", marker, record.Kind, strconv.Quote(record.Text))
}
