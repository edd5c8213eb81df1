// Package draw renders frames to a terminal using half-block characters.
package draw

import (
	"math"
	"slices"
)

// Block characters for two stacked sub-pixels in one cell.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Point is a position in logical coordinates.
type Point struct {
	X, Y float64
}

// Canvas is a pixel buffer with 2x vertical resolution: every terminal cell
// holds an upper and a lower sub-pixel. Callers draw in a fixed logical
// coordinate space; the canvas scales it to fit the terminal, keeping the
// aspect ratio and centering the result.
type Canvas struct {
	logicalW, logicalH float64

	cols, rows int    // area used for drawing, in terminal cells
	pixels     []bool // [y*cols + x], y in sub-pixels (rows*2)
	scale      float64

	offsetCol, offsetRow int // cells skipped to center the area

	points []Point   // reusable polygon buffer
	hits   []float64 // reusable scanline intersections
}

// NewCanvas creates a canvas for the given logical size. Call Resize
// before drawing.
func NewCanvas(logicalW, logicalH float64) *Canvas {
	return &Canvas{logicalW: logicalW, logicalH: logicalH}
}

// Resize fits the logical area into a terminal of termCols x termRows.
func (c *Canvas) Resize(termCols, termRows int) {
	if termCols < 1 || termRows < 1 || c.logicalW <= 0 || c.logicalH <= 0 {
		c.cols, c.rows, c.scale = 0, 0, 0
		c.pixels = c.pixels[:0]
		return
	}

	scale := min(float64(termCols)/c.logicalW, float64(termRows*2)/c.logicalH)
	cols := min(termCols, int(math.Round(c.logicalW*scale)))
	rows := min(termRows, int(math.Ceil(c.logicalH*scale/2)))

	if cols != c.cols || rows != c.rows {
		c.pixels = make([]bool, cols*rows*2)
	}
	c.cols, c.rows, c.scale = cols, rows, scale
	c.offsetCol = (termCols - cols) / 2
	c.offsetRow = (termRows - rows) / 2
}

// Clear unsets every pixel.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Cols returns the width of the drawing area in terminal cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the height of the drawing area in terminal cells.
func (c *Canvas) Rows() int { return c.rows }

// Offset returns the number of cells skipped left and above the area.
func (c *Canvas) Offset() (col, row int) { return c.offsetCol, c.offsetRow }

// LogicalSize returns the coordinate space callers draw in.
func (c *Canvas) LogicalSize() (w, h float64) { return c.logicalW, c.logicalH }

// Lit reports whether the sub-pixel at (x, y) is set.
// Coordinates are in pixel space: x < Cols(), y < Rows()*2.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows*2 {
		return false
	}
	return c.pixels[y*c.cols+x]
}

func (c *Canvas) set(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.rows*2 {
		c.pixels[y*c.cols+x] = true
	}
}

func (c *Canvas) toPixel(p Point) (int, int) {
	return int(math.Round(p.X * c.scale)), int(math.Round(p.Y * c.scale))
}

// Plot sets the pixel under a logical point.
func (c *Canvas) Plot(p Point) {
	c.set(c.toPixel(p))
}

// Line draws a straight line between two logical points (Bresenham).
func (c *Canvas) Line(a, b Point) {
	x0, y0 := c.toPixel(a)
	x1, y1 := c.toPixel(b)

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Polygon draws the closed outline through pts, filling it when filled is set.
func (c *Canvas) Polygon(pts []Point, filled bool) {
	if len(pts) < 3 {
		return
	}
	if filled {
		c.fill(pts)
	}
	for i := range pts {
		c.Line(pts[i], pts[(i+1)%len(pts)])
	}
}

// fill rasterises a polygon with an even-odd scanline pass in pixel space.
func (c *Canvas) fill(pts []Point) {
	top, bottom := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		top = min(top, p.Y*c.scale)
		bottom = max(bottom, p.Y*c.scale)
	}

	for y := int(math.Floor(top)); y <= int(math.Ceil(bottom)); y++ {
		scan := float64(y) + 0.5
		c.hits = c.hits[:0]
		for i := range pts {
			ay, by := pts[i].Y*c.scale, pts[(i+1)%len(pts)].Y*c.scale
			if (ay <= scan) == (by <= scan) {
				continue
			}
			ax, bx := pts[i].X*c.scale, pts[(i+1)%len(pts)].X*c.scale
			c.hits = append(c.hits, ax+(scan-ay)/(by-ay)*(bx-ax))
		}
		slices.Sort(c.hits)
		for i := 0; i+1 < len(c.hits); i += 2 {
			for x := int(math.Ceil(c.hits[i])); x <= int(math.Floor(c.hits[i+1])); x++ {
				c.set(x, y)
			}
		}
	}
}

// Points returns a scratch slice of n points owned by the canvas.
// It is valid until the next call.
func (c *Canvas) Points(n int) []Point {
	if cap(c.points) < n {
		c.points = make([]Point, n)
	}
	return c.points[:n]
}

// cell returns the block rune for terminal cell (col, row), or 0 when empty.
func (c *Canvas) cell(col, row int) rune {
	top := c.pixels[(row*2)*c.cols+col]
	bottom := c.pixels[(row*2+1)*c.cols+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	}
	return 0
}

// Render writes the set cells to w, positioned with absolute cursor moves.
func (c *Canvas) Render(w *ChunkWriter) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			if ch := c.cell(col, row); ch != 0 {
				w.MoveCursor(c.offsetCol+col+1, c.offsetRow+row+1)
				w.WriteRune(ch)
			}
		}
	}
}

// RenderBorder frames the drawing area when the terminal leaves room for it.
func (c *Canvas) RenderBorder(w *ChunkWriter) {
	if c.offsetCol < 1 && c.offsetRow < 1 {
		return
	}
	left, right := c.offsetCol, c.offsetCol+c.cols+1
	top, bottom := c.offsetRow, c.offsetRow+c.rows+1

	if c.offsetRow >= 1 {
		for col := c.offsetCol + 1; col < right; col++ {
			w.MoveCursor(col, top)
			w.WriteRune('─')
			w.MoveCursor(col, bottom)
			w.WriteRune('─')
		}
	}
	if c.offsetCol >= 1 {
		for row := c.offsetRow + 1; row < bottom; row++ {
			w.MoveCursor(left, row)
			w.WriteRune('│')
			w.MoveCursor(right, row)
			w.WriteRune('│')
		}
	}
	if c.offsetCol >= 1 && c.offsetRow >= 1 {
		w.MoveCursor(left, top)
		w.WriteRune('┌')
		w.MoveCursor(right, top)
		w.WriteRune('┐')
		w.MoveCursor(left, bottom)
		w.WriteRune('└')
		w.MoveCursor(right, bottom)
		w.WriteRune('┘')
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
