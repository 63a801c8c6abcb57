package changes

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	insert     lipgloss.Style
	delete     lipgloss.Style
	context    lipgloss.Style
	index      lipgloss.Style
	target     lipgloss.Style
	success    lipgloss.Style
	failure    lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		insert:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		delete:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		context:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		index:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		target:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		success:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		failure:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
