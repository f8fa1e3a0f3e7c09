package board

import "fmt"

// Direction is the direction tiles travel in a shift.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every valid direction.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// horizontal reports whether d moves tiles along rows.
func (d Direction) horizontal() bool {
	return d == Left || d == Right
}

// towardEnd reports whether tiles travel toward the highest index of the axis.
func (d Direction) towardEnd() bool {
	return d == Right || d == Down
}

// Every shift is reduced to one reference case: lines of cells, each
// indexed from its leading edge, compacted toward index 0. A line is a row
// for horizontal directions and a column for vertical ones.

func (g Grid) lineCount(d Direction) int {
	if d.horizontal() {
		return g.rows
	}
	return g.cols
}

func (g Grid) lineLen(d Direction) int {
	if d.horizontal() {
		return g.cols
	}
	return g.rows
}

// cellAt maps position k of line, counted from the leading edge, to grid
// coordinates.
func (g Grid) cellAt(d Direction, line, k int) Cell {
	pos := k
	if d.towardEnd() {
		pos = g.lineLen(d) - 1 - k
	}
	if d.horizontal() {
		return Cell{Row: line, Col: pos}
	}
	return Cell{Row: pos, Col: line}
}
