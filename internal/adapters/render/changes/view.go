package changes

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/doctrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	progressBarWidth = 24
	maxShownContext  = 24
)

type LogOptions struct {
	Reference string
	SessionID string
	// Pending is text still inside the debounce window, keyed by kind.
	Pending map[domain.ChangeKind]string
}

// RenderLog renders the change log as a numbered list of operations.
func RenderLog(records []domain.ChangeRecord, opts LogOptions) (string, error) {
	return run(func(s styles) string {
		return renderLog(records, opts, s)
	})
}

// RenderReport renders the per-target outcome of a replay.
func RenderReport(report domain.ReplayReport, dryRun bool) (string, error) {
	return run(func(s styles) string {
		return renderReport(report, dryRun, s)
	})
}

func renderLog(records []domain.ChangeRecord, opts LogOptions, s styles) string {
	header := fmt.Sprintf("records: %d", len(records))
	if opts.Reference != "" {
		header += "  reference: " + opts.Reference
	}
	if opts.SessionID != "" {
		header += "  session: " + opts.SessionID
	}

	lines := []string{
		s.title.Render("Change Log"),
		s.header.Render(header),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No changes recorded."))
	}

	width := len(strconv.Itoa(len(records)))
	for i, record := range records {
		lines = append(lines, recordLine(i+1, width, record, s))
	}

	for _, kind := range []domain.ChangeKind{domain.ChangeInsert, domain.ChangeDelete} {
		if text := opts.Pending[kind]; text != "" {
			lines = append(lines, s.warning.Render(fmt.Sprintf("pending %s: %s", kind, strconv.Quote(text))))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func recordLine(n, width int, record domain.ChangeRecord, s styles) string {
	kindStyle := s.insert
	marker := "+"
	if record.Kind == domain.ChangeDelete {
		kindStyle = s.delete
		marker = "-"
	}

	parts := []string{
		s.index.Render(fmt.Sprintf("%*d.", width, n)),
		" ",
		kindStyle.Render(fmt.Sprintf("%s %-6s", marker, record.Kind)),
		" ",
		s.detail.Render(strconv.Quote(record.Text)),
	}
	if record.Anchored() {
		parts = append(parts, " ", s.context.Render(contextLabel(record)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func contextLabel(record domain.ChangeRecord) string {
	before := shorten(record.ContextBefore, maxShownContext, true)
	after := shorten(record.ContextAfter, maxShownContext, false)
	return fmt.Sprintf("after %s before %s", strconv.Quote(before), strconv.Quote(after))
}

// shorten keeps at most limit runes, trimming from the far side of the edit.
func shorten(text string, limit int, keepTail bool) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if keepTail {
		return "…" + string(runes[len(runes)-limit:])
	}
	return string(runes[:limit]) + "…"
}

func renderReport(report domain.ReplayReport, dryRun bool, s styles) string {
	title := "Replay Report"
	if dryRun {
		title += " (dry run)"
	}

	targets := len(report.Outcomes)
	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("records: %d  targets: %d", report.Records, targets)),
	}

	if targets == 0 {
		lines = append(lines, s.empty.Render("No targets."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, summaryLine(report, s))

	outcomes := make([]string, 0, targets)
	for _, outcome := range report.Outcomes {
		outcomes = append(outcomes, outcomeLine(outcome, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, outcomes...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func summaryLine(report domain.ReplayReport, s styles) string {
	targets := len(report.Outcomes)
	succeeded := report.Succeeded()
	percent := 100 * float64(succeeded) / float64(targets)

	meta := s.success.Render(fmt.Sprintf("%d succeeded", succeeded))
	if failed := report.Failed(); failed > 0 {
		meta += " " + s.failure.Render(fmt.Sprintf("%d failed", failed))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderProgressBar(percent, progressBarWidth, s),
		" ",
		meta,
	)
}

func outcomeLine(outcome domain.ReplayOutcome, s styles) string {
	if outcome.Succeeded() {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.success.Render("ok  "),
			" ",
			s.target.Render(outcome.Target),
			" ",
			s.detail.Render(fmt.Sprintf("(%d applied)", outcome.Applied)),
		)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.failure.Render("FAIL"),
		" ",
		s.target.Render(outcome.Target),
		" ",
		s.detail.Render(outcome.Err.Error()),
	)
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
