package kitchen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeOnBoard puts a fresh ingredient on the board and leaves the chef
// standing at the board.
func placeOnBoard(t *testing.T, g *Game, ingredient string) Instance {
	t.Helper()
	item := grab(t, g, ingredient)
	standOn(g, g.stations.Board.Rect)
	g.Primary()
	require.GreaterOrEqual(t, g.r.board.indexOf(item.ID), 0)
	return item
}

func TestChopTakesConfiguredDuration(t *testing.T) {
	g, sched := newTestGame(t, testConfig())
	item := placeOnBoard(t, g, "tomato")

	g.Process()
	ticket, ok := g.Chopping()
	require.True(t, ok)
	assert.Equal(t, item.ID, ticket.Target)
	assert.True(t, g.Snapshot().Chopping)

	sched.Advance(2999 * time.Millisecond)
	assert.Equal(t, StageRaw, g.r.board[0].Ingredient.Stage)

	sched.Advance(time.Millisecond)
	assert.Equal(t, StageChopped, g.r.board[0].Ingredient.Stage)
	assert.Equal(t, "tomato_chopped", g.r.board[0].Ingredient.Key())
	_, ok = g.Chopping()
	assert.False(t, ok)
	assert.Equal(t, 1, g.Stats().ChopsCompleted)
}

func TestOnlyOneChopAtATime(t *testing.T) {
	g, sched := newTestGame(t, testConfig())
	placeOnBoard(t, g, "tomato")
	placeOnBoard(t, g, "lettuce")

	g.Process()
	g.Process()
	assert.Equal(t, 1, sched.Pending())
}

func TestProcessOutOfReach(t *testing.T) {
	g, sched := newTestGame(t, testConfig())
	placeOnBoard(t, g, "tomato")

	standOn(g, g.stations.Pot.Rect)
	g.Process()
	assert.Equal(t, 0, sched.Pending())
	assert.False(t, g.Snapshot().CanChop)

	g.r.board = nil
	standOn(g, g.stations.Board.Rect)
	g.Process()
	assert.Equal(t, 0, sched.Pending(), "empty board")
}

func TestChopIsIdempotent(t *testing.T) {
	g, sched := newTestGame(t, testConfig())
	placeOnBoard(t, g, "tomato")

	g.Process()
	sched.RunAll()
	g.Process()
	ticket, ok := g.Chopping()
	require.True(t, ok, "an already chopped item can still be processed")
	sched.RunAll()

	assert.Equal(t, "tomato_chopped", g.r.board[0].Ingredient.Key())
	assert.Equal(t, 1, g.Stats().ChopsCompleted)
	assert.False(t, g.CompleteChop(ticket), "ticket already consumed")
}

func TestChopTargetStaysOnBoardWhileChopping(t *testing.T) {
	g, sched := newTestGame(t, testConfig())
	item := placeOnBoard(t, g, "tomato")

	g.Process()
	standOn(g, g.r.board[0].Rect)
	g.Primary()
	assert.True(t, g.Hand().IsEmpty(), "the item being chopped cannot be picked up")

	sched.RunAll()
	pickFromBoard(t, g, item.ID)
}

func TestChopTargetGoneAbortsSilently(t *testing.T) {
	g, sched := newTestGame(t, testConfig())
	item := placeOnBoard(t, g, "tomato")

	g.Process()
	g.r.board.remove(item.ID)
	sched.RunAll()

	_, ok := g.Chopping()
	assert.False(t, ok, "chopping flag clears even when the target is gone")
	assert.Equal(t, 0, g.Stats().ChopsCompleted)
}

func TestChopScheduledBeforeRestartIsIgnored(t *testing.T) {
	g, sched := newTestGame(t, testConfig())
	placeOnBoard(t, g, "tomato")
	g.Process()
	old, _ := g.Chopping()

	g.Restart()
	fresh := placeOnBoard(t, g, "lettuce")
	g.Process()
	current, ok := g.Chopping()
	require.True(t, ok)
	assert.Greater(t, current.Seq, old.Seq)

	assert.False(t, g.CompleteChop(old))
	_, ok = g.Chopping()
	assert.True(t, ok, "a stale ticket must not clear the current chop")

	sched.RunAll()
	i := g.r.board.indexOf(fresh.ID)
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, StageChopped, g.r.board[i].Ingredient.Stage)
	assert.Equal(t, 1, g.Stats().ChopsCompleted)
}

func TestChopCompletesWhilePaused(t *testing.T) {
	g, sched := newTestGame(t, testConfig())
	placeOnBoard(t, g, "tomato")

	g.Process()
	g.Pause()
	sched.Advance(3 * time.Second)
	assert.Equal(t, StageChopped, g.r.board[0].Ingredient.Stage)
}
