package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/subkiller/internal/core"
)

// palette maps core colours to 256-colour terminal codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:          "160",
	core.ColorYellow:       "178",
	core.ColorBlue:         "33",
	core.ColorCyan:         "44",
	core.ColorWhite:        "252",
	core.ColorBrightYellow: "226",
	core.ColorBrightWhite:  "231",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
	core.ColorDarkGray:     "238",
	core.ColorNavy:         "18",
	core.ColorSand:         "180",
}

var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(code)
	}
	return styles
}

// styleFor returns the style of c, unknown colours render plain.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of one colour so a run costs one escape
// sequence, not one per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		row := s.Cells(y)
		for start := 0; start < len(row); {
			color := row[start].Color
			run.Reset()

			end := start
			for end < len(row) && row[end].Color == color {
				run.WriteRune(row[end].Rune)
				end++
			}

			sb.WriteString(styleFor(color).Render(run.String()))
			start = end
		}
	}
	return sb.String()
}
