package t2048

import (
	"strconv"

	"github.com/vovakirdan/tilemerge/internal/board"
	"github.com/vovakirdan/tilemerge/internal/core"
)

// Tile is the precomputed appearance of one rank.
type Tile struct {
	Rank  int
	Value int
	Label string
	Color core.Color
}

// TileSet caches tile appearance by rank. It grows on demand, so there is
// no upper bound on the ranks it can show.
type TileSet struct {
	width int
	tiles []Tile
}

// NewTileSet creates a set whose labels fit in width columns.
func NewTileSet(width int) *TileSet {
	return &TileSet{width: width}
}

// Get returns the tile for rank, building any missing ranks up to it.
func (s *TileSet) Get(rank int) Tile {
	if rank < 0 {
		rank = 0
	}
	for len(s.tiles) <= rank {
		r := len(s.tiles)
		s.tiles = append(s.tiles, Tile{
			Rank:  r,
			Value: board.Value(r),
			Label: Label(r, s.width),
			Color: RankColor(r),
		})
	}
	return s.tiles[rank]
}

// Len returns how many ranks have been built.
func (s *TileSet) Len() int {
	return len(s.tiles)
}

var unitSuffixes = []string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// Label formats 2^rank in at most width columns. Values too wide are
// abbreviated with binary units, so at width 5 rank 17 is "128k".
func Label(rank, width int) string {
	if rank <= 0 {
		return ""
	}
	if rank < 63 {
		if s := strconv.Itoa(1 << rank); len(s) <= width {
			return s
		}
	}
	unit, rest := rank/10, rank%10
	if unit < len(unitSuffixes) {
		if s := strconv.Itoa(1<<rest) + unitSuffixes[unit]; len(s) <= width {
			return s
		}
	}
	return "2^" + strconv.Itoa(rank)
}

// RankColor returns the tile colour for rank: warm tones for small
// tiles, then yellow, red, blue and finally dark.
func RankColor(rank int) core.Color {
	switch {
	case rank <= 0:
		return core.ColorDarkGray
	case rank <= 2:
		return core.ColorPeach
	case rank <= 4:
		return core.ColorOrange
	case rank <= 6:
		return core.ColorBrightRed
	case rank <= 9:
		return core.ColorBrightYellow
	case rank <= 11:
		return core.ColorGold
	case rank <= 14:
		return core.ColorRed
	case rank == 15:
		return core.ColorSky
	case rank == 16:
		return core.ColorBrightBlue
	case rank == 17:
		return core.ColorBlue
	default:
		return core.ColorGray
	}
}
