package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/doctrack/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type replayDoneMsg struct {
	report domain.ReplayReport
}

type replaySpinnerModel struct {
	spinner spinner.Model
	label   string
	replay  tea.Cmd
	report  domain.ReplayReport
	done    bool
}

func newReplaySpinnerModel(label string, replay tea.Cmd) replaySpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return replaySpinnerModel{
		spinner: s,
		label:   label,
		replay:  replay,
	}
}

func (m replaySpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.replay)
}

func (m replaySpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case replayDoneMsg:
		m.done = true
		m.report = msg.report
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m replaySpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runReplaySpinner(ctx context.Context, output io.Writer, targets int, replay func(context.Context) domain.ReplayReport) (domain.ReplayReport, error) {
	replayCmd := func() tea.Msg {
		return replayDoneMsg{report: replay(ctx)}
	}

	p := tea.NewProgram(
		newReplaySpinnerModel(fmt.Sprintf("Replaying onto %d documents...", targets), replayCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.ReplayReport{}, err
	}

	result, ok := finalModel.(replaySpinnerModel)
	if !ok {
		return domain.ReplayReport{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.report, nil
}
