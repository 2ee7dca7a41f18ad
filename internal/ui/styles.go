package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorValue     = lipgloss.Color("34")  // Green
	ColorFile      = lipgloss.Color("170") // Magenta
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles groups the styles used by report output. They are bound to one
// renderer so colors follow the destination writer, not the process stdout.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Value  lipgloss.Style
	File   lipgloss.Style
	Path   lipgloss.Style
	Notice lipgloss.Style
	Border lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. When color is false the
// renderer emits plain text regardless of the terminal.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles builds the report styles on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Header: r.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			Padding(0, 1),
		Value: r.NewStyle().
			Foreground(ColorValue).
			Padding(0, 1),
		File: r.NewStyle().
			Foreground(ColorFile).
			Padding(0, 1),
		Path: r.NewStyle().
			Foreground(ColorFile),
		Notice: r.NewStyle().
			Bold(true).
			Foreground(ColorError),
		Border: r.NewStyle().
			Foreground(ColorMuted),
	}
}
