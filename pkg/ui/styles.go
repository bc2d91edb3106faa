package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	// Brand colors
	Primary   = lipgloss.Color("#7D56F4") // Purple
	Secondary = lipgloss.Color("#00D4AA") // Cyan/Teal

	// Enforcement mode colors
	Blocking   = lipgloss.Color("#FF3838") // Red - traffic is enforced
	Monitoring = lipgloss.Color("#FFD93D") // Yellow - observe only
	Disabled   = lipgloss.Color("#6B7280") // Gray - no WAF applies

	// Status colors
	Success = lipgloss.Color("#00D26A")
	Warning = lipgloss.Color("#FFB800")
	Error   = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")
)

// Pre-configured styles
var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	DividerStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ConfigLabelStyle = lipgloss.NewStyle().
				Foreground(Muted)

	ConfigValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Secondary)
)

// ModeStyle returns the style for an enforcement mode string.
func ModeStyle(mode string) lipgloss.Style {
	switch mode {
	case "blocking":
		return lipgloss.NewStyle().Foreground(Blocking).Bold(true)
	case "monitoring":
		return lipgloss.NewStyle().Foreground(Monitoring)
	default:
		return lipgloss.NewStyle().Foreground(Disabled)
	}
}
