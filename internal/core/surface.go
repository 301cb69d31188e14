package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one character position on a Surface.
// A zero Rune marks the right half of a double-width character.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Surface is a 2D cell buffer the frame loop, the screens and the UI manager
// draw into. The terminal backend turns it into styled text once per frame.
type Surface struct {
	width  int
	height int
	cells  [][]Cell
}

// NewSurface creates a new surface with the given dimensions.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Surface) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the surface width in characters.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in characters.
func (s *Surface) Height() int {
	return s.height
}

// Bounds returns the whole surface as a Rect.
func (s *Surface) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the surface dimensions. Content is discarded; the next
// frame repaints everything anyway.
func (s *Surface) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
	s.Clear()
}

// Clear resets every cell to a blank with default colors.
func (s *Surface) Clear() {
	s.Fill(ColorDefault)
}

// Fill blanks every cell and paints it with the given background.
func (s *Surface) Fill(bg Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', BG: bg}
		}
	}
}

// FillRect blanks a rectangular area with the given background.
func (s *Surface) FillRect(r Rect, bg Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: ' ', BG: bg})
		}
	}
}

// SetCell replaces the cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Set places a rune with a foreground color, keeping the cell background.
func (s *Surface) Set(x, y int, r rune, fg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].FG = fg
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Surface) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Surface) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y) and returns the
// number of cells it occupied. Text past the right edge is clipped.
func (s *Surface) DrawText(x, y int, text string, fg Color) int {
	start := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.Set(x, y, r, fg)
		if w == 2 {
			s.Set(x+1, y, 0, fg)
		}
		x += w
	}
	return x - start
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Surface) DrawTextCentered(y int, text string, fg Color) {
	x := (s.width - runewidth.StringWidth(text)) / 2
	s.DrawText(x, y, text, fg)
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Surface) DrawBox(r Rect, fg Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	s.Set(r.X, r.Y, '┌', fg)
	s.Set(r.Right()-1, r.Y, '┐', fg)
	s.Set(r.X, r.Bottom()-1, '└', fg)
	s.Set(r.Right()-1, r.Bottom()-1, '┘', fg)

	s.DrawHLine(r.X+1, r.Y, r.W-2, '─', fg)
	s.DrawHLine(r.X+1, r.Bottom()-1, r.W-2, '─', fg)

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│', fg)
		s.Set(r.Right()-1, y, '│', fg)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Surface) DrawHLine(x, y, length int, r rune, fg Color) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r, fg)
	}
}

// String converts the surface to plain text, one line per row.
func (s *Surface) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Surface) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
