package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// newLogger builds the text logger used by long-running commands. Time is
// dropped and INFO is implied.
func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var minLevel slog.Level
	if err := minLevel.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		minLevel = slog.LevelInfo
	}
	if verbose {
		minLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: minLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey && a.Value.String() == slog.LevelInfo.String() {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func (a *app) logger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool(verboseFlag)
	return newLogger(cmd.ErrOrStderr(), a.settings.LogLevel, verbose)
}
