package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-clangen/internal/core"
)

// colorCodes maps core.Color to terminal colors.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorBlack:        lipgloss.Color("0"),
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightRed:    lipgloss.Color("9"),
	core.ColorBrightGreen:  lipgloss.Color("10"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorBrown:        lipgloss.Color("94"),
	core.ColorBgDark:       lipgloss.Color("#393224"),
	core.ColorBgLight:      lipgloss.Color("#CEC2A8"),
	core.ColorBgTitle:      lipgloss.Color("#1E1A12"),
}

type colorPair struct {
	fg, bg core.Color
}

// palette caches one style per foreground/background pair for a renderer.
type palette struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) *palette {
	return &palette{renderer: r, styles: make(map[colorPair]lipgloss.Style)}
}

func (p *palette) style(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if st, ok := p.styles[key]; ok {
		return st
	}
	st := p.renderer.NewStyle()
	if c, ok := colorCodes[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := colorCodes[bg]; ok {
		st = st.Background(c)
	}
	p.styles[key] = st
	return st
}

// renderSurface converts a surface to a styled string for display.
// Adjacent cells with the same colors share one escape sequence.
func renderSurface(p *palette, s *core.Surface) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != first.FG || cell.BG != first.BG {
					break
				}
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}
			sb.WriteString(p.style(first.FG, first.BG).Render(run.String()))
		}
	}
	return sb.String()
}
