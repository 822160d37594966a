// Package terminal draws scroll box stages on a character terminal with
// tcell and feeds terminal mouse input back into them.
//
// Stage coordinates stay in pixels; each cell stands for a cellW x cellH
// block of them. A cell takes the color of a rectangle when the cell's
// center lies inside it.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/scrollbox"
)

// Cell is one buffered terminal cell. Colors are packed scrollbox colors.
type Cell struct {
	Ch rune
	Fg uint32
	Bg uint32
}

// Canvas implements scrollbox.Canvas on a tcell screen. Drawing goes to
// an internal buffer; Flush copies it to the screen.
type Canvas struct {
	screen       tcell.Screen
	cellW, cellH float32
	cols, rows   int
	cells        []Cell
	clips        []scrollbox.Rect
}

// NewCanvas creates a canvas whose cells each cover cellW x cellH pixels.
func NewCanvas(screen tcell.Screen, cellW, cellH float32) *Canvas {
	c := &Canvas{screen: screen, cellW: cellW, cellH: cellH}
	c.Begin()
	return c
}

// CellSize returns the pixel size of one cell.
func (c *Canvas) CellSize() (w, h float32) { return c.cellW, c.cellH }

// PixelSize returns the screen size in pixels.
func (c *Canvas) PixelSize() (w, h float32) {
	return float32(c.cols) * c.cellW, float32(c.rows) * c.cellH
}

// Begin starts a frame: the buffer is resized to the screen and cleared
// to black, and the clip stack is reset.
func (c *Canvas) Begin() {
	c.cols, c.rows = c.screen.Size()
	n := c.cols * c.rows
	if cap(c.cells) < n {
		c.cells = make([]Cell, n)
	}
	c.cells = c.cells[:n]
	for i := range c.cells {
		c.cells[i] = Cell{Ch: ' ', Fg: scrollbox.ColorWhite, Bg: scrollbox.ColorBlack}
	}
	c.clips = c.clips[:0]
}

// Flush writes the buffer to the screen and shows it.
func (c *Canvas) Flush() {
	for y := range c.rows {
		for x := range c.cols {
			cell := c.cells[y*c.cols+x]
			style := tcell.StyleDefault.
				Foreground(tcellColor(cell.Fg)).
				Background(tcellColor(cell.Bg))
			c.screen.SetContent(x, y, cell.Ch, nil, style)
		}
	}
	c.screen.Show()
}

// Cell returns the buffered cell at column x, row y.
func (c *Canvas) Cell(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return Cell{}, false
	}
	return c.cells[y*c.cols+x], true
}

// clip returns the active clip rectangle in pixels.
func (c *Canvas) clip() scrollbox.Rect {
	if n := len(c.clips); n > 0 {
		return c.clips[n-1]
	}
	w, h := c.PixelSize()
	return scrollbox.Rect{W: w, H: h}
}

// cellRange returns the half-open cell span whose centers fall in
// [lo, lo+size) along an axis of cells of the given pixel size.
func cellRange(lo, size, cell float32, limit int) (int, int) {
	first := int(math.Ceil(float64(lo/cell - 0.5)))
	last := int(math.Ceil(float64((lo+size)/cell - 0.5)))
	return max(first, 0), min(last, limit)
}

// FillRect implements scrollbox.Canvas. Translucent colors are blended
// over the buffered background.
func (c *Canvas) FillRect(r scrollbox.Rect, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	r = r.Intersect(c.clip())
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, x1 := cellRange(r.X, r.W, c.cellW, c.cols)
	y0, y1 := cellRange(r.Y, r.H, c.cellH, c.rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cell := &c.cells[y*c.cols+x]
			cell.Bg = blend(color, cell.Bg)
		}
	}
}

// DrawText implements scrollbox.Canvas. Glyphs occupy consecutive cells
// on the row through the vertical middle of the text, starting at the
// cell under the middle of the first glyph.
func (c *Canvas) DrawText(x, y float32, text string, size float32, color uint32) {
	if color&0xFF000000 == 0 || text == "" || size <= 0 {
		return
	}
	clip := c.clip()
	row := int(math.Floor(float64((y + size/2) / c.cellH)))
	col := int(math.Floor(float64((x + size/2) / c.cellW)))
	if row < 0 || row >= c.rows {
		return
	}
	cy := (float32(row) + 0.5) * c.cellH
	for _, ch := range text {
		cx := (float32(col) + 0.5) * c.cellW
		if col >= 0 && col < c.cols && clip.Contains(scrollbox.Vec2{X: cx, Y: cy}) {
			cell := &c.cells[row*c.cols+col]
			cell.Ch = ch
			cell.Fg = blend(color, cell.Bg)
		}
		col++
	}
}

// DrawImage implements scrollbox.Canvas. Cells cannot show pixels, so the
// image area is filled with its tint.
func (c *Canvas) DrawImage(r scrollbox.Rect, _ scrollbox.Texture, tint uint32) {
	c.FillRect(r, tint)
}

// PushClip implements scrollbox.Canvas.
func (c *Canvas) PushClip(r scrollbox.Rect) {
	c.clips = append(c.clips, r.Intersect(c.clip()))
}

// PopClip implements scrollbox.Canvas.
func (c *Canvas) PopClip() {
	if n := len(c.clips); n > 0 {
		c.clips = c.clips[:n-1]
	}
}

// blend composites src over an opaque dst.
func blend(src, dst uint32) uint32 {
	sr, sg, sb, sa := scrollbox.UnpackRGBA(src)
	if sa == 0xFF {
		return src
	}
	dr, dg, db, _ := scrollbox.UnpackRGBA(dst)
	a := float32(sa) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float32(s)*a + float32(d)*(1-a) + 0.5)
	}
	return scrollbox.RGBA(mix(sr, dr), mix(sg, dg), mix(sb, db), 0xFF)
}

func tcellColor(c uint32) tcell.Color {
	r, g, b, _ := scrollbox.UnpackRGBA(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
