package physics

import "math"

// SpatialGrid buckets item indices by position for broad-phase collision
// checks in a wrapping world. A query visits the 3x3 block of cells
// around a point, so the cell size must be at least the largest
// interaction distance.
type SpatialGrid struct {
	invCell    float64
	cols, rows int
	cells      [][]int
}

// NewSpatialGrid creates a grid covering bounds with square cells.
func NewSpatialGrid(bounds Bounds, cellSize float64) *SpatialGrid {
	cols := max(1, int(math.Ceil(bounds.Width/cellSize)))
	rows := max(1, int(math.Ceil(bounds.Height/cellSize)))
	return &SpatialGrid{
		invCell: 1 / cellSize,
		cols:    cols,
		rows:    rows,
		cells:   make([][]int, cols*rows),
	}
}

// Reset empties every cell, keeping the allocated capacity.
func (g *SpatialGrid) Reset() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert records item at a position.
func (g *SpatialGrid) Insert(x, y float64, item int) {
	col, row := g.cellOf(x, y)
	i := row*g.cols + col
	g.cells[i] = append(g.cells[i], item)
}

// Near calls fn for every item in the 3x3 neighbourhood of (x, y),
// wrapping across world edges. Iteration stops when fn returns false.
// An item can be reported more than once when the grid is narrower than
// three cells.
func (g *SpatialGrid) Near(x, y float64, fn func(item int) bool) {
	col, row := g.cellOf(x, y)
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.rows) % g.rows
		for dc := -1; dc <= 1; dc++ {
			c := (col + dc + g.cols) % g.cols
			for _, item := range g.cells[r*g.cols+c] {
				if !fn(item) {
					return
				}
			}
		}
	}
}

func (g *SpatialGrid) cellOf(x, y float64) (col, row int) {
	col = min(max(int(x*g.invCell), 0), g.cols-1)
	row = min(max(int(y*g.invCell), 0), g.rows-1)
	return col, row
}
