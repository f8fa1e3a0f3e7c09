package config

import (
	"fmt"
	"strings"
)

// CustomVariantID is the variant whose board shape comes from the loaded
// configuration instead of a preset.
const CustomVariantID = "2048_custom"

// Variant is a named board shape. A zero shape takes the dimensions from
// the configuration's board section.
type Variant struct {
	ID   string
	Name string
	Rows int
	Cols int
}

// Variants lists the board shapes, classic first.
var Variants = []Variant{
	{ID: "2048", Name: "2048", Rows: 4, Cols: 4},
	{ID: "2048_mini", Name: "2048 Mini", Rows: 3, Cols: 3},
	{ID: "2048_big", Name: "2048 Big", Rows: 5, Cols: 5},
	{ID: "2048_wide", Name: "2048 Wide", Rows: 4, Cols: 6},
	{ID: CustomVariantID, Name: "2048 Custom"},
}

// FromConfig reports whether the variant uses the configured board shape.
func (v Variant) FromConfig() bool {
	return v.Rows == 0 || v.Cols == 0
}

// Size formats the board shape as "RxC" using cfg for custom variants.
func (v Variant) Size(cfg PuzzleConfig) string {
	if v.FromConfig() {
		return fmt.Sprintf("%dx%d", cfg.Board.Rows, cfg.Board.Cols)
	}
	return fmt.Sprintf("%dx%d", v.Rows, v.Cols)
}

// LookupVariant finds a variant by ID, ignoring case.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if strings.EqualFold(v.ID, id) {
			return v, true
		}
	}
	return Variant{}, false
}

// ApplyVariant sets the board dimensions of cfg from the variant id.
// The custom variant keeps cfg's dimensions. Start tiles are clamped to
// the resulting board size.
func ApplyVariant(cfg *PuzzleConfig, id string) error {
	v, ok := LookupVariant(id)
	if !ok {
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, id)
	}
	if !v.FromConfig() {
		cfg.Board.Rows = v.Rows
		cfg.Board.Cols = v.Cols
	}
	if cells := cfg.Board.Rows * cfg.Board.Cols; cells > 0 {
		cfg.Board.StartTiles = min(cfg.Board.StartTiles, cells)
	}
	return nil
}
