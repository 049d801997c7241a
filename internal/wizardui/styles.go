package wizardui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	progress lipgloss.Style
	prompt   lipgloss.Style
	cursor   lipgloss.Style
	help     lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			progress: plain,
			prompt:   plain.Bold(true),
			cursor:   plain,
			help:     plain,
		}
	}
	return styles{
		progress: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
