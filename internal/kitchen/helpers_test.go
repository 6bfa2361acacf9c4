package kitchen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/core"
)

// testConfig lays stations out on a 300px grid so that standing on one never
// puts the chef in range of another.
func testConfig() config.KitchenConfig {
	st := func(kind config.StationKind, x, y int) config.StationConfig {
		return config.StationConfig{Kind: kind, Name: string(kind), Rect: core.NewRect(x, y, 40, 40), Radius: 80}
	}
	spawn := func(ing string, x, y int) config.StationConfig {
		s := st(config.KindSpawn, x, y)
		s.Ingredient = ing
		return s
	}
	dispenser := st(config.KindDispenser, 700, 100)
	dispenser.Mode = "bounds"

	return config.KitchenConfig{
		Name:      "test",
		Playfield: core.NewRect(0, 0, 1000, 1000),
		Chef:      config.ChefConfig{Start: core.NewRect(450, 750, 100, 100), Speed: 10},
		Round: config.RoundConfig{
			DurationSecs: 5,
			ChopSecs:     3,
			OrderBonus:   20,
			PotBatch:     3,
			QueueLength:  3,
		},
		Reach: config.ReachConfig{Pickup: 50, Place: 50, Plate: 80, Chop: 120, Serve: 80},
		Stations: []config.StationConfig{
			st(config.KindBoard, 100, 100),
			st(config.KindPot, 400, 100),
			dispenser,
			st(config.KindTrash, 100, 400),
			st(config.KindServe, 400, 400),
			spawn("tomato", 700, 400),
			spawn("lettuce", 700, 700),
		},
		Orders: [][]string{
			{"tomato_chopped"},
			{"tomato_chopped", "lettuce_chopped"},
		},
	}
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestGame(t *testing.T, cfg config.KitchenConfig) (*Game, *ManualScheduler) {
	t.Helper()
	sched := NewManualScheduler()
	g, err := New(cfg, WithSeed(1), WithScheduler(sched), WithIDs(counterIDs()))
	require.NoError(t, err)
	return g, sched
}

// standAt centers the chef on the point (cx, cy).
func standAt(g *Game, cx, cy int) {
	c := g.r.chef
	g.r.chef = core.NewRect(cx-c.W/2, cy-c.H/2, c.W, c.H)
}

// standOn centers the chef on r.
func standOn(g *Game, r core.Rect) {
	standAt(g, r.X+r.W/2, r.Y+r.H/2)
}

func spawnOf(g *Game, ingredient string) Station {
	for _, s := range g.stations.Spawns {
		if s.Ingredient == ingredient {
			return s
		}
	}
	panic("no spawn for " + ingredient)
}

// grab picks up a fresh ingredient from its spawn.
func grab(t *testing.T, g *Game, ingredient string) Instance {
	t.Helper()
	standOn(g, spawnOf(g, ingredient).Rect)
	g.Primary()
	item, ok := g.Hand().Ingredient()
	require.True(t, ok, "expected to hold %s", ingredient)
	return item
}

// chopOnBoard places a fresh ingredient on the board and chops it to
// completion.
func chopOnBoard(t *testing.T, g *Game, sched *ManualScheduler, ingredient string) Instance {
	t.Helper()
	item := grab(t, g, ingredient)
	standOn(g, g.stations.Board.Rect)
	g.Primary()
	g.Process()
	sched.RunAll()
	i := g.r.board.indexOf(item.ID)
	require.GreaterOrEqual(t, i, 0)
	return g.r.board[i]
}

// pickFromBoard stands on the board item and picks it up.
func pickFromBoard(t *testing.T, g *Game, id InstanceID) {
	t.Helper()
	i := g.r.board.indexOf(id)
	require.GreaterOrEqual(t, i, 0)
	standOn(g, g.r.board[i].Rect)
	g.Primary()
	held, ok := g.Hand().Ingredient()
	require.True(t, ok)
	require.Equal(t, id, held.ID)
}
