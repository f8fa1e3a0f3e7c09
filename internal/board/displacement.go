package board

// Move is one tile's travel during a shift.
type Move struct {
	From Cell
	To   Cell
	Rank int // Rank before the shift
}

// Displacement maps every occupied cell of a pre-move grid to the cell it
// ends up in. Two sources sharing a destination mark a merge.
type Displacement struct {
	Direction Direction
	Moves     []Move
}

// Displace computes where each tile of g travels when shifted in d. It
// needs only the pre-move grid, so motion can be interpolated before the
// merge result is shown.
func Displace(g Grid, d Direction) Displacement {
	out := Displacement{Direction: d}
	n := g.lineLen(d)

	for line := range g.lineCount(d) {
		skipped := 0 // empty or absorbed cells ahead of the current tile
		last := 0    // rank still open for a merge, 0 when none
		for k := range n {
			from := g.cellAt(d, line, k)
			rank := g.At(from)
			if rank == 0 {
				skipped++
				continue
			}
			if rank == last {
				skipped++
				last = 0
			} else {
				last = rank
			}
			out.Moves = append(out.Moves, Move{From: from, To: g.cellAt(d, line, k-skipped), Rank: rank})
		}
	}

	return out
}

// MergeTargets returns every destination reached by more than one source,
// in the order the merges were found.
func (m Displacement) MergeTargets() []Cell {
	seen := make(map[Cell]int, len(m.Moves))
	var targets []Cell
	for _, mv := range m.Moves {
		seen[mv.To]++
		if seen[mv.To] == 2 {
			targets = append(targets, mv.To)
		}
	}
	return targets
}
