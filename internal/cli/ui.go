package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")  // primary values
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors / unreachable
)

var (
	// stylePath renders the resulting vertex sequence.
	stylePath = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleWeight renders the total path weight.
	styleWeight = lipgloss.NewStyle().Foreground(colorGreen)

	// styleMiss renders the "no path" marker.
	styleMiss = lipgloss.NewStyle().Foreground(colorRed)
)
