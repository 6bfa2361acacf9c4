package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/core"
	"github.com/vovakirdan/welldone/internal/kitchen"
	"github.com/vovakirdan/welldone/internal/storage"
)

// Round identifies what is being played, for the history store.
type Round struct {
	LayoutID   string
	Difficulty string
	Logger     *log.Logger // Optional; discards when nil
}

// moveHoldTicks is how long a direction stays held after its last key
// event. Terminals report key repeats, not key releases.
const moveHoldTicks = 8

// directions maps movement actions to kitchen directions.
var directions = map[core.Action]kitchen.Direction{
	core.ActionUp:    kitchen.DirUp,
	core.ActionDown:  kitchen.DirDown,
	core.ActionLeft:  kitchen.DirLeft,
	core.ActionRight: kitchen.DirRight,
}

// Model is the Bubble Tea model for playing one kitchen layout.
type Model struct {
	loop       uint64
	game       *kitchen.Game
	sched      *teaScheduler
	round      Round
	title      string
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	held       map[kitchen.Direction]int // Ticks left per held direction
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	quitOnBack bool
	quitting   bool
	backToMenu bool
	roundSaved bool // Whether the current round has been recorded
}

// NewModel builds a kitchen from cfg and wraps it in a Bubble Tea model.
func NewModel(cfg config.KitchenConfig, store *storage.Store, rc core.RuntimeConfig, round Round) (Model, error) {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	logger := round.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	loop := nextLoopID()
	sched := newTeaScheduler(loop)
	game, err := kitchen.New(cfg,
		kitchen.WithSeed(rc.Seed),
		kitchen.WithScheduler(sched),
		kitchen.WithLogger(logger.WithPrefix("kitchen")),
	)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	title := cfg.Title
	if title == "" {
		title = cfg.Name
	}

	keyMapper := NewKeyMapper()
	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		loop:       loop,
		game:       game,
		sched:      sched,
		round:      round,
		title:      title,
		screen:     core.NewScreen(rc.ScreenW, core.Max(rc.ScreenH-footerRows, 1)),
		store:      store,
		config:     rc,
		inputFrame: core.NewInputFrame(),
		held:       make(map[kitchen.Direction]int),
		keyMapper:  keyMapper,
		help:       h,
		logger:     logger,
	}, nil
}

// Init starts the movement and clock loops.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.loop, m.config.TickRate), clockCmd(m.loop))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-footerRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()

	case ClockMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		m.game.ClockTick()
		m.recordRound()
		return m, clockCmd(m.loop)

	case scheduledMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		msg.fn()
		return m, m.sched.drain()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := directions[action]; ok {
		m.held[dir] = moveHoldTicks
		return m, nil
	}

	if action == core.ActionBack && (m.game.Paused() || m.game.RoundOver()) {
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick applies the actions collected since the last tick, then moves
// the chef.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame

	if in.Has(core.ActionRestart) {
		m.game.Restart()
		m.roundSaved = false
		clear(m.held)
	}
	if in.Has(core.ActionPause) {
		m.game.TogglePause()
	}
	if in.Has(core.ActionPrimary) {
		m.game.Primary()
	}
	if in.Has(core.ActionSecondary) {
		m.game.Secondary()
	}
	if in.Has(core.ActionProcess) {
		m.game.Process()
	}

	var dir kitchen.Direction
	for d, left := range m.held {
		if left <= 0 {
			delete(m.held, d)
			continue
		}
		dir |= d
		m.held[d] = left - 1
	}
	m.game.MovementTick(dir)

	m.inputFrame.Clear()
	return m, tea.Batch(tickCmd(m.loop, m.config.TickRate), m.sched.drain())
}

// recordRound saves the round once when the clock runs out.
func (m *Model) recordRound() {
	if !m.game.RoundOver() || m.roundSaved {
		return
	}
	m.roundSaved = true

	snap := m.game.Snapshot()
	m.logger.Info("round over", "layout", m.round.LayoutID, "score", snap.Score,
		"orders", snap.Stats.OrdersServed, "missed", snap.Stats.PlatesMissed)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRound(storage.RoundResult{
		LayoutID:     m.round.LayoutID,
		Difficulty:   m.round.Difficulty,
		Score:        snap.Score,
		OrdersServed: snap.Stats.OrdersServed,
		PlatesServed: snap.Stats.PlatesServed,
		PlatesMissed: snap.Stats.PlatesMissed,
		Duration:     m.game.Config().Round.DurationSecs,
	})
	if err != nil {
		m.logger.Warn("could not save round", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".welldone", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.round.LayoutID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m *Model) render() {
	m.screen.Clear()
	drawKitchen(m.screen, m.game, m.game.Snapshot(), m.title)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Game returns the running kitchen.
func (m Model) Game() *kitchen.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one layout in the local terminal until the user quits.
func Run(cfg config.KitchenConfig, store *storage.Store, rc core.RuntimeConfig, round Round) error {
	model, err := NewModel(cfg, store, rc, round)
	if err != nil {
		return err
	}
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
