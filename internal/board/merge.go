package board

import "math/rand"

// SpawnRank is the rank of every newly spawned tile.
const SpawnRank = 1

// Compact moves the non-zero ranks of line toward index 0, keeping their
// order, and zero-fills the tail. It works in place.
func Compact(line []int) {
	w := 0
	for _, r := range line {
		if r != 0 {
			line[w] = r
			w++
		}
	}
	clear(line[w:])
}

// MergeLine compacts line toward index 0 and merges equal neighbours in a
// single scan, in place. A merged tile is never compared again in the same
// pass, so [1 1 1 0] becomes [2 1 0 0] and [1 1 1 1] becomes [2 2 0 0].
// It returns the score gained: 2^r for every merge producing rank r.
func MergeLine(line []int) int {
	Compact(line)

	score := 0
	for i := 0; i < len(line)-1; i++ {
		if line[i] == 0 || line[i] != line[i+1] {
			continue
		}
		line[i]++
		score += Value(line[i])
		copy(line[i+1:], line[i+2:])
		line[len(line)-1] = 0
	}

	Compact(line)
	return score
}

// Shift slides every line of g in direction d and returns the new grid and
// the score gained. g is not modified.
func Shift(g Grid, d Direction) (Grid, int) {
	out := g.Clone()
	n := g.lineLen(d)
	buf := make([]int, n)
	score := 0

	for line := range g.lineCount(d) {
		for k := range n {
			buf[k] = g.At(g.cellAt(d, line, k))
		}
		score += MergeLine(buf)
		for k := range n {
			out.Set(g.cellAt(d, line, k), buf[k])
		}
	}

	return out, score
}

// MoveResult is the outcome of a shift attempt.
type MoveResult struct {
	Grid  Grid // The new grid; the input grid itself on a no-op
	Moved bool // False when the shift left every cell unchanged
	Spawn Cell // Where the new tile appeared; valid only when Moved
	Score int  // Score gained by merges
}

// Engine applies moves. Its only state is the RNG that picks spawn cells.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an engine drawing spawn positions from rng.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Apply shifts g in direction d. When anything moved, a rank-1 tile is
// spawned in a uniformly chosen free cell of the result. A no-op returns g
// untouched and spawns nothing, as does an invalid direction.
func (e *Engine) Apply(g Grid, d Direction) MoveResult {
	if !d.Valid() {
		return MoveResult{Grid: g}
	}
	shifted, score := Shift(g, d)
	if shifted.Equal(g) {
		return MoveResult{Grid: g}
	}

	spawn, _ := e.Spawn(&shifted)
	return MoveResult{Grid: shifted, Moved: true, Spawn: spawn, Score: score}
}

// Spawn places a rank-1 tile in a random free cell of g.
// It returns false when g has no free cell.
func (e *Engine) Spawn(g *Grid) (Cell, bool) {
	free := g.Free()
	if len(free) == 0 {
		return Cell{}, false
	}
	c := free[e.rng.Intn(len(free))]
	g.Set(c, SpawnRank)
	return c, true
}

// Start returns a fresh grid holding tiles spawned tiles.
func (e *Engine) Start(rows, cols, tiles int) (Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return Grid{}, err
	}
	for range tiles {
		if _, ok := e.Spawn(&g); !ok {
			break
		}
	}
	return g, nil
}
