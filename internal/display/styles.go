package display

import (
	"github.com/MKhiriev/go-vault-client/models"
	"github.com/charmbracelet/lipgloss"
)

// ANSI palette indices of the bright colours.
const (
	colorRed           = lipgloss.Color("1")
	colorBrightRed     = lipgloss.Color("9")
	colorBrightGreen   = lipgloss.Color("10")
	colorBrightYellow  = lipgloss.Color("11")
	colorBrightBlue    = lipgloss.Color("12")
	colorBrightMagenta = lipgloss.Color("13")
	colorBrightCyan    = lipgloss.Color("14")
	colorBrightWhite   = lipgloss.Color("15")
)

type styleSet struct {
	header lipgloss.Style
	roles  map[models.Style]lipgloss.Style
}

func newStyleSet(r *lipgloss.Renderer) styleSet {
	bold := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c).Bold(true)
	}

	return styleSet{
		header: bold(colorBrightYellow),
		roles: map[models.Style]lipgloss.Style{
			models.StyleToken:        bold(colorBrightWhite),
			models.StyleURL:          bold(colorBrightCyan),
			models.StyleProtected:    bold(colorBrightMagenta),
			models.StyleUnprotected:  bold(colorBrightBlue),
			models.StyleRetention:    bold(colorBrightGreen),
			models.StyleErrorName:    bold(colorRed),
			models.StyleErrorMessage: bold(colorBrightYellow),
			models.StyleSuccess:      r.NewStyle().Foreground(colorBrightGreen),
			models.StyleFailure:      r.NewStyle().Foreground(colorBrightRed),
			models.StylePath:         bold(colorBrightGreen),
		},
	}
}

func (s styleSet) render(seg models.Segment) string {
	style, ok := s.roles[seg.Style]
	if !ok {
		return seg.Text
	}
	return style.Render(seg.Text)
}
