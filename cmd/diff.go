package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bnema/doctrack/internal/adapters/document/textfile"
	"github.com/bnema/doctrack/internal/diff"
	"github.com/spf13/cobra"
)

type diffSpanOutput struct {
	Tag           string `json:"tag"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	Text          string `json:"text"`
	ContextBefore string `json:"context_before"`
	ContextAfter  string `json:"context_after"`
	Placeholder   bool   `json:"placeholder"`
}

func newDiffCmd(app *app) *cobra.Command {
	var asJSON bool
	var contextWidth int

	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Show the insertions and deletions between two text files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("context") {
				contextWidth = app.settings.ContextWidth
			}
			return runDiff(cmd, app, args[0], args[1], contextWidth, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().IntVar(&contextWidth, "context", defaultContextWidth, "Runes of surrounding text to show")

	return cmd
}

func runDiff(cmd *cobra.Command, app *app, oldPath, newPath string, contextWidth int, asJSON bool) error {
	previous, err := readText(cmd, oldPath)
	if err != nil {
		return err
	}
	current, err := readText(cmd, newPath)
	if err != nil {
		return err
	}

	isPlaceholder, err := app.placeholder()
	if err != nil {
		return err
	}

	spans := diff.Spans(previous, current, diff.Compute(previous, current), contextWidth)
	output := make([]diffSpanOutput, 0, len(spans))
	for _, span := range spans {
		output = append(output, diffSpanOutput{
			Tag:           span.Tag.String(),
			Start:         span.Start,
			End:           span.End,
			Text:          span.Text,
			ContextBefore: span.Before,
			ContextAfter:  span.After,
			Placeholder:   isPlaceholder.IsPlaceholder(span.Text),
		})
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	if len(output) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "no differences")
		return err
	}

	for _, span := range output {
		line := fmt.Sprintf("%-6s [%d:%d] %s", span.Tag, span.Start, span.End, strconv.Quote(span.Text))
		if span.Placeholder {
			line += " (placeholder)"
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return err
		}
	}

	return nil
}

func readText(cmd *cobra.Command, path string) (string, error) {
	doc, err := textfile.Open(path)
	if err != nil {
		return "", err
	}

	return doc.FullText(cmd.Context())
}
