package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

// helpHeight is the number of rows reserved below the board for key help.
const helpHeight = 1

// resizer is implemented by games that can adapt to a new window size
// without losing their session.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for a running puzzle. It is used both by
// the local terminal and by SSH sessions.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	clock      core.Clock
	frame      core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the result has been saved for the current loss
}

// NewModel creates a model for game and starts a fresh session.
// A nil clock means the system clock.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, clock core.Clock) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if clock == nil {
		clock = core.SystemClock{}
	}

	screenCfg := cfg
	screenCfg.ScreenH = max(1, cfg.ScreenH-helpHeight)
	if err := game.Reset(screenCfg); err != nil {
		return Model{}, fmt.Errorf("tui: start %s: %w", game.ID(), err)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(screenCfg.ScreenW, screenCfg.ScreenH),
		store:     store,
		config:    cfg,
		clock:     clock,
		frame:     core.NewInputFrame(),
		gameState: game.State(),
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey stamps the key with the current time and buffers it for the
// next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.frame.Push(m.keys.Action(msg), m.clock.Now())
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := max(1, msg.Height-helpHeight)
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, h)
		return m, nil
	}

	// Games without resize support start over at the new size
	cfg := m.config
	cfg.ScreenH = h
	//nolint:errcheck // Config was accepted at startup, so Reset cannot fail here
	m.game.Reset(cfg)
	return m, nil
}

// handleTick advances the game to the current time.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frame.Now = m.clock.Now()
	result := m.game.Step(m.frame)
	m.gameState = result.State
	m.frame.Clear()

	// Save the result once per loss
	if m.gameState.GameOver {
		if !m.scoreSaved && m.gameState.Score > 0 && m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveResult(storage.Result{
				GameID:   m.game.ID(),
				Score:    m.gameState.Score,
				BestRank: m.gameState.BestRank,
				Moves:    m.gameState.Moves,
			})
		}
		m.scoreSaved = true
	} else {
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tilemerge", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := m.clock.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the board followed by the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state from the latest tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays game in the local terminal until the user leaves.
// It reports whether the user asked to quit rather than go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, clock core.Clock) (quit bool, err error) {
	model, err := NewModel(game, store, cfg, clock)
	if err != nil {
		return true, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return true, err
	}
	if m, ok := final.(Model); ok {
		return !m.BackToMenu(), nil
	}
	return true, nil
}
