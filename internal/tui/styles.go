package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the Lip Gloss styles and checkbox glyphs the view pulls from.
type Theme struct {
	Title    lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Pending  lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
	Border   lipgloss.Style

	BoxUnchecked string
	BoxChecked   string
}

// NewTheme resolves a theme by name; unknown names fall back to classic.
func NewTheme(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Muted:        lipgloss.NewStyle().Faint(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Help:         lipgloss.NewStyle().Faint(true),
			Border:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13")).Padding(0, 1),
			BoxUnchecked: "◻",
			BoxChecked:   "◼",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Title:        plain,
			Accent:       plain,
			Muted:        plain,
			Pending:      plain,
			Error:        plain,
			Selected:     plain,
			Help:         plain,
			Border:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
		}
	default: // classic
		return Theme{
			Title:        lipgloss.NewStyle().Bold(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Muted:        lipgloss.NewStyle().Faint(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Help:         lipgloss.NewStyle().Faint(true),
			Border:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
			BoxUnchecked: "☐",
			BoxChecked:   "☑",
		}
	}
}
