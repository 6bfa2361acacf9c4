package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/core"
	"github.com/vovakirdan/welldone/internal/kitchen"
	"github.com/vovakirdan/welldone/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, store *storage.Store, mutate func(*config.KitchenConfig)) Model {
	t.Helper()
	cfg, err := config.Builtin("classic")
	require.NoError(t, err)
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := NewModel(cfg, store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 7}, Round{LayoutID: "classic"})
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update should return a Model")
	return out, cmd
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey('w'), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runeKey('d'), core.ActionRight, false},
		{runeKey('f'), core.ActionPrimary, false},
		{runeKey('e'), core.ActionPrimary, false},
		{runeKey('g'), core.ActionSecondary, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionProcess, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('z'), core.ActionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestHeldDirectionMovesChef(t *testing.T) {
	m := newTestModel(t, nil, nil)
	start := m.Game().Chef()

	m, _ = update(t, m, runeKey('d'))
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{Loop: m.loop})
	}
	assert.Equal(t, start.X+3*m.Game().Config().Chef.Speed, m.Game().Chef().X)
	assert.Equal(t, start.Y, m.Game().Chef().Y)
}

func TestHeldDirectionDecays(t *testing.T) {
	m := newTestModel(t, nil, nil)
	start := m.Game().Chef()

	m, _ = update(t, m, runeKey('d'))
	for i, n := 0, moveHoldTicks+5; i < n; i++ {
		m, _ = update(t, m, TickMsg{Loop: m.loop})
	}
	moved := m.Game().Chef().X - start.X
	assert.Equal(t, moveHoldTicks*m.Game().Config().Chef.Speed, moved)
}

func TestStaleLoopIsIgnored(t *testing.T) {
	m := newTestModel(t, nil, nil)
	start := m.Game().Chef()
	remaining := m.Game().Remaining()

	m, _ = update(t, m, runeKey('d'))
	m, cmd := update(t, m, TickMsg{Loop: m.loop + 1000})
	assert.Nil(t, cmd)
	m, cmd = update(t, m, ClockMsg{Loop: m.loop + 1000})
	assert.Nil(t, cmd)

	assert.Equal(t, start, m.Game().Chef())
	assert.Equal(t, remaining, m.Game().Remaining())
}

func TestPauseAndBack(t *testing.T) {
	m := newTestModel(t, nil, nil)

	// Back is ignored mid-round.
	m, _ = update(t, m, runeKey('b'))
	assert.False(t, m.BackToMenu())

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{Loop: m.loop})
	require.True(t, m.Game().Paused())

	m, cmd := update(t, m, runeKey('b'))
	assert.True(t, m.BackToMenu())
	assert.Nil(t, cmd, "an embedded model should not quit the program")
}

func TestRoundIsRecordedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := newTestModel(t, store, func(cfg *config.KitchenConfig) {
		cfg.Round.DurationSecs = 1
	})
	m.round.Difficulty = "hard"

	m, _ = update(t, m, ClockMsg{Loop: m.loop})
	require.True(t, m.Game().RoundOver())
	m, _ = update(t, m, ClockMsg{Loop: m.loop})

	rounds, err := store.TopRounds("classic", 10)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, "hard", rounds[0].Difficulty)
	assert.Equal(t, 1, rounds[0].Duration)

	// A restarted round is recorded again when it ends.
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{Loop: m.loop})
	require.False(t, m.Game().RoundOver())
	_, _ = update(t, m, ClockMsg{Loop: m.loop})

	rounds, err = store.TopRounds("classic", 10)
	require.NoError(t, err)
	assert.Len(t, rounds, 2)
}

func TestTeaSchedulerDrain(t *testing.T) {
	m := newTestModel(t, nil, nil)

	assert.Nil(t, m.sched.drain())
	m.sched.After(0, func() {})
	assert.NotNil(t, m.sched.drain())
	assert.Nil(t, m.sched.drain(), "drain should empty the queue")
}

func TestScheduledMsgRunsCallback(t *testing.T) {
	m := newTestModel(t, nil, nil)

	ran := false
	m, _ = update(t, m, scheduledMsg{loop: m.loop, fn: func() { ran = true }})
	assert.True(t, ran)

	ran = false
	_, _ = update(t, m, scheduledMsg{loop: m.loop + 1000, fn: func() { ran = true }})
	assert.False(t, ran, "callbacks from another loop must be dropped")
}

func TestViewShowsHUD(t *testing.T) {
	m := newTestModel(t, nil, nil)
	view := m.View()
	assert.Contains(t, view, "Classic Kitchen")
	assert.Contains(t, view, "2:00")
}

func TestViewportMapsCorners(t *testing.T) {
	vp := newViewport(core.NewRect(0, 0, 1000, 500), 100, 52)

	x, y := vp.cell(0, 0)
	assert.Equal(t, 0, x)
	assert.Equal(t, hudRows, y)

	x, y = vp.cell(999, 499)
	assert.Equal(t, 99, x)
	assert.Equal(t, hudRows+49, y)

	r := vp.rect(core.NewRect(0, 0, 1, 1))
	assert.Equal(t, 1, r.W, "tiny rects still cover a cell")
	assert.Equal(t, 1, r.H)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "lettuce+tomato", orderLabel("lettuce_chopped_tomato_chopped"))
	assert.Equal(t, "lettuce+tomato", contentsLabel([]string{"tomato_chopped", "lettuce_chopped"}))
	assert.Equal(t, 'T', ingredientGlyph(kitchen.Ingredient{Name: "tomato", Stage: kitchen.StageChopped}))
	assert.Equal(t, 't', ingredientGlyph(kitchen.Ingredient{Name: "tomato", Stage: kitchen.StageRaw}))
	assert.Equal(t, "onion ", truncate("onion soup", 6))
	assert.Equal(t, "", truncate("onion", 0))
}
