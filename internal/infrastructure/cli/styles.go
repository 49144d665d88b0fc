package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI colors for prompt fields and indicators.
const (
	ColorRed        = lipgloss.Color("1")
	ColorGreen      = lipgloss.Color("2")
	ColorYellow     = lipgloss.Color("3")
	ColorBlue       = lipgloss.Color("4")
	ColorMagenta    = lipgloss.Color("5")
	ColorCyan       = lipgloss.Color("6")
	ColorWhite      = lipgloss.Color("7")
	ColorBrightBlue = lipgloss.Color("12")
)

// Style definitions using Lip Gloss
var (
	// DirStyle colors the working directory field
	DirStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// MessageStyle colors the optional user message
	MessageStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)

	// IdentityStyle colors the repository identity field
	IdentityStyle = lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true)

	// ClusterStyle colors the kubernetes context and namespace fields
	ClusterStyle = lipgloss.NewStyle().Foreground(ColorBrightBlue).Bold(true)

	// CloudStyle colors the AWS profile and region fields
	CloudStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	// Indicator styles for the chevron row
	SuccessIndicator   = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	FailureIndicator   = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	DirtyIndicator     = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	UntrackedIndicator = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	DetachedIndicator  = lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)

	// PlainIndicator is the placeholder indicator outside a repository
	PlainIndicator = lipgloss.NewStyle().Bold(true)
)

// ForceColor enables styling unconditionally. The prompt is captured through
// command substitution, which looks like a pipe and would otherwise disable
// color detection.
func ForceColor() {
	lipgloss.SetColorProfile(termenv.ANSI)
}
