package report

import "charm.land/lipgloss/v2"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	renameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1D3"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

// paint renders text with style when colour output is enabled.
func (r *Reporter) paint(style lipgloss.Style, text string) string {
	if !r.colorize {
		return text
	}
	return style.Render(text)
}
