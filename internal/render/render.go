// Package render draws boards and pieces into a core.Screen and converts
// the screen to terminal text, styled with lipgloss or plain.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexblocks/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// Styled converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func Styled(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Options control text output.
type Options struct {
	Plain  bool   // No ANSI styling
	Frame  bool   // Draw a box around boards
	Glyphs Glyphs // Zero value picks ASCII when Plain, Unicode otherwise
}

// canvas returns a screen for a w x h drawing and the offset to draw it at.
// With Frame set the screen has a one-cell border.
func (o Options) canvas(w, h int) (*core.Screen, int, int) {
	if !o.Frame {
		return core.NewScreen(w, h), 0, 0
	}
	s := core.NewScreen(w+4, h+2)
	s.DrawBox(core.NewRect(0, 0, w+4, h+2), core.ColorGray)
	return s, 2, 1
}

func (o Options) glyphs() Glyphs {
	if o.Glyphs != (Glyphs{}) {
		return o.Glyphs
	}
	if o.Plain {
		return ASCII
	}
	return Unicode
}

func (o Options) text(s *core.Screen) string {
	if o.Plain {
		return s.String()
	}
	return Styled(s)
}
