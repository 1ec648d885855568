// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Rust   = lipgloss.Color("#C2410C")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Header renders a section header in the brand color.
var Header = lipgloss.NewStyle().Bold(true).Foreground(Rust)

// Muted renders secondary information.
var Muted = lipgloss.NewStyle().Foreground(Slate)

// Good renders a fresh/success line.
var Good = lipgloss.NewStyle().Foreground(Green)

// Bad renders a stale/failure line.
var Bad = lipgloss.NewStyle().Foreground(Red)
