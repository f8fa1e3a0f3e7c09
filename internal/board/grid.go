// Package board holds the puzzle grid and the pure algorithms that operate
// on it: shifting with merges, spawning, displacement tracking for
// animation, and loss detection.
//
// A grid stores ranks, not face values. Rank 0 is an empty cell and rank k
// is displayed as 2^k.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions is returned when a grid would have a non-positive
// number of rows or columns, or rows of different lengths.
var ErrInvalidDimensions = errors.New("board: invalid grid dimensions")

// Cell addresses one grid position.
type Cell struct {
	Row int
	Col int
}

// String formats the cell as (row,col).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a fixed-size rows x cols matrix of ranks stored row-major in one
// flat slice. Copying a Grid value shares its storage; use Clone for an
// independent snapshot.
type Grid struct {
	rows  int
	cols  int
	cells []int
}

// New returns an empty grid.
func New(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return Grid{rows: rows, cols: cols, cells: make([]int, rows*cols)}, nil
}

// FromRows builds a grid from nested rows of ranks.
func FromRows(ranks [][]int) (Grid, error) {
	if len(ranks) == 0 || len(ranks[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: empty", ErrInvalidDimensions)
	}
	g, err := New(len(ranks), len(ranks[0]))
	if err != nil {
		return Grid{}, err
	}
	for r, row := range ranks {
		if len(row) != g.cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, r, len(row), g.cols)
		}
		for c, rank := range row {
			if rank < 0 {
				return Grid{}, fmt.Errorf("board: negative rank %d at %v", rank, Cell{r, c})
			}
			g.cells[r*g.cols+c] = rank
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the rank at c.
func (g Grid) At(c Cell) int {
	return g.cells[c.Row*g.cols+c.Col]
}

// Set writes rank at c.
func (g *Grid) Set(c Cell, rank int) {
	g.cells[c.Row*g.cols+c.Col] = rank
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := Grid{rows: g.rows, cols: g.cols}
	if g.cells != nil {
		out.cells = make([]int, len(g.cells))
		copy(out.cells, g.cells)
	}
	return out
}

// Equal reports cell-for-cell equality.
func (g Grid) Equal(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// Free returns the empty cells in row-major order.
func (g Grid) Free() []Cell {
	var free []Cell
	for i, v := range g.cells {
		if v == 0 {
			free = append(free, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return free
}

// Occupied returns the non-empty cells in row-major order.
func (g Grid) Occupied() []Cell {
	var occ []Cell
	for i, v := range g.cells {
		if v != 0 {
			occ = append(occ, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return occ
}

// MaxRank returns the highest rank on the grid, 0 when empty.
func (g Grid) MaxRank() int {
	best := 0
	for _, v := range g.cells {
		best = max(best, v)
	}
	return best
}

// Ranks returns a nested copy of the grid.
func (g Grid) Ranks() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// String renders ranks row by row, e.g. "[0 1]\n[2 0]".
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g.Ranks() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprint(&sb, row)
	}
	return sb.String()
}

// Value returns the face value of a rank: 0 for empty, 2^rank otherwise.
func Value(rank int) int {
	if rank <= 0 {
		return 0
	}
	return 1 << rank
}
