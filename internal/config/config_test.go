package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parsePuzzle(defaultPuzzleYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultPuzzleConfig() {
		t.Errorf("embedded = %+v, hardcoded = %+v", cfg, DefaultPuzzleConfig())
	}
}

func TestLoadPuzzleCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.yaml")
	data := []byte("board:\n  rows: 3\n  cols: 5\ninput:\n  max_buffer_ms: 120\nundo:\n  limit: 8\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPuzzle(path)
	if err != nil {
		t.Fatalf("LoadPuzzle: %v", err)
	}
	if cfg.Board.Rows != 3 || cfg.Board.Cols != 5 {
		t.Errorf("board = %dx%d, want 3x5", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Board.StartTiles != 2 {
		t.Errorf("missing start_tiles should default to 2, got %d", cfg.Board.StartTiles)
	}
	if cfg.Animation.SlideMs != 150 {
		t.Errorf("missing animation section should keep defaults, got %+v", cfg.Animation)
	}

	sc := cfg.Session()
	if sc.MaxBuffer != 120*time.Millisecond || sc.UndoLimit != 8 {
		t.Errorf("Session() = %+v", sc)
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("converted session config invalid: %v", err)
	}
}

func TestLoadPuzzleErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPuzzle(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPuzzle(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("animation:\n  max_scale: 0.9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPuzzle(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid values should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PuzzleConfig)
	}{
		{"zero rows", func(c *PuzzleConfig) { c.Board.Rows = 0 }},
		{"too many start tiles", func(c *PuzzleConfig) { c.Board.StartTiles = 17 }},
		{"negative slide", func(c *PuzzleConfig) { c.Animation.SlideMs = -1 }},
		{"zero min scale", func(c *PuzzleConfig) { c.Animation.MinScale = 0 }},
		{"max scale not above one", func(c *PuzzleConfig) { c.Animation.MaxScale = 1 }},
		{"zero buffer", func(c *PuzzleConfig) { c.Input.MaxBufferMs = 0 }},
		{"negative undo limit", func(c *PuzzleConfig) { c.Undo.Limit = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPuzzleConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyVariant(t *testing.T) {
	cfg := DefaultPuzzleConfig()
	if err := ApplyVariant(&cfg, "2048_WIDE"); err != nil {
		t.Fatalf("ApplyVariant: %v", err)
	}
	if cfg.Board.Rows != 4 || cfg.Board.Cols != 6 {
		t.Errorf("board = %dx%d, want 4x6", cfg.Board.Rows, cfg.Board.Cols)
	}

	if err := ApplyVariant(&cfg, "tetris"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown variant error = %v, want ErrInvalidConfig", err)
	}

	cfg.Board.StartTiles = 12
	if err := ApplyVariant(&cfg, "2048_mini"); err != nil {
		t.Fatal(err)
	}
	if cfg.Board.StartTiles != 9 {
		t.Errorf("start tiles should clamp to 9 on 3x3, got %d", cfg.Board.StartTiles)
	}
}

func TestCustomVariantKeepsConfiguredBoard(t *testing.T) {
	cfg := DefaultPuzzleConfig()
	cfg.Board.Rows, cfg.Board.Cols = 2, 7
	cfg.Board.StartTiles = 20

	if err := ApplyVariant(&cfg, CustomVariantID); err != nil {
		t.Fatalf("ApplyVariant: %v", err)
	}
	if cfg.Board.Rows != 2 || cfg.Board.Cols != 7 {
		t.Errorf("board = %dx%d, want the configured 2x7", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Board.StartTiles != 14 {
		t.Errorf("start tiles should clamp to 14, got %d", cfg.Board.StartTiles)
	}

	v, _ := LookupVariant(CustomVariantID)
	if got := v.Size(cfg); got != "2x7" {
		t.Errorf("Size() = %q, want 2x7", got)
	}
	mini, _ := LookupVariant("2048_mini")
	if got := mini.Size(cfg); got != "3x3" {
		t.Errorf("preset Size() = %q, want 3x3", got)
	}
}
