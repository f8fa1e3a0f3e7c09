package board

// IsLost reports whether no move can change g: every cell is occupied and
// no two horizontally or vertically adjacent cells hold the same rank.
func IsLost(g Grid) bool {
	for r := range g.rows {
		for c := range g.cols {
			v := g.At(Cell{r, c})
			if v == 0 {
				return false
			}
			if c+1 < g.cols && g.At(Cell{r, c + 1}) == v {
				return false
			}
			if r+1 < g.rows && g.At(Cell{r + 1, c}) == v {
				return false
			}
		}
	}
	return true
}
