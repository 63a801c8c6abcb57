package cmd

import (
	"fmt"

	jsonexport "github.com/bnema/doctrack/internal/adapters/export/json"
	changesrender "github.com/bnema/doctrack/internal/adapters/render/changes"
	"github.com/spf13/cobra"
)

func newLogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect and manage the recorded change log",
	}

	cmd.AddCommand(
		newLogShowCmd(app),
		newLogExportCmd(app),
		newLogImportCmd(app),
		newLogClearCmd(app),
	)

	return cmd
}

func newLogShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the recorded changes in capture order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stored, err := app.changeLogs.Load(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				data, err := jsonexport.Encode(stored.Records)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			rendered, err := app.logRenderer(stored.Records, changesrender.LogOptions{
				Reference: stored.Reference,
				SessionID: stored.SessionID,
			})
			if err != nil {
				return fmt.Errorf("render change log: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render the log in export format")

	return cmd
}

func newLogExportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export the change log as a JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.changeLogs.Export(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "exported change log to %s\n", args[0])
			return err
		},
	}
}

func newLogImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Replace the change log with a previously exported one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.changeLogs.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d changes from %s\n", n, args[0])
			return err
		},
	}
}

func newLogClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the recorded change log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.changeLogs.Clear(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "change log cleared")
			return err
		},
	}
}
