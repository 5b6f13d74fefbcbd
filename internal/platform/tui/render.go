package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Palette turns a core.Screen into styled terminal output. SSH sessions get
// a palette bound to the session's own renderer.
type Palette struct {
	styles []lipgloss.Style
}

// NewPalette builds styles for every core color. A nil renderer uses the
// process-wide default.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	colors := core.Colors()
	p := &Palette{styles: make([]lipgloss.Style, len(colors))}
	for i, c := range colors {
		style := r.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		p.styles[i] = style
	}
	return p
}

// style returns the style for c, falling back to the default color.
func (p *Palette) style(c core.Color) lipgloss.Style {
	if int(c) < len(p.styles) {
		return p.styles[c]
	}
	return p.styles[core.ColorDefault]
}

// Render converts a Screen buffer to a styled string.
// Adjacent cells with the same color share one escape sequence.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultPalette = NewPalette(nil)

// RenderScreen renders s with the process-wide default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}
