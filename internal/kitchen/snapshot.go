package kitchen

import (
	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/core"
)

// Stats counts what happened during a round.
type Stats struct {
	OrdersServed       int
	PlatesServed       int // Includes misses
	PlatesMissed       int
	PlatesTrashed      int
	IngredientsTrashed int
	PotBatches         int
	ChopsCompleted     int
}

// Snapshot is a read-only copy of the round state for rendering.
// Slices are copies; mutating them does not affect the game.
type Snapshot struct {
	Chef       core.Rect
	HeldAnchor core.Rect // Where the held item or plate is drawn
	Hand       HandKind
	HeldItem   Instance
	HeldPlate  Plate

	Board   []Instance
	Pot     []Instance
	Floor   []Instance
	Staged  []string
	Dropped []DroppedPlate

	Orders    []string
	Score     int
	Remaining int

	Chopping   bool
	ChopTarget InstanceID
	CanChop    bool

	Nearby    []config.StationKind // Stations in proximity, registry order
	Paused    bool
	RoundOver bool
	Stats     Stats
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	r := g.r
	s := Snapshot{
		Chef:      r.chef,
		Hand:      r.hand.Kind(),
		Board:     r.board.clone(),
		Pot:       r.pot.items.clone(),
		Floor:     r.floor.clone(),
		Staged:    append([]string(nil), r.staged...),
		Dropped:   r.dropped.clone(),
		Orders:    r.orders.list(),
		Score:     r.score,
		Remaining: r.remaining,
		CanChop:   g.canChop(),
		Paused:    r.paused,
		RoundOver: r.over,
		Stats:     r.stats,
	}

	switch r.hand.Kind() {
	case HandIngredient:
		s.HeldItem, _ = r.hand.Ingredient()
		s.HeldAnchor = heldItemAnchor(r.chef)
	case HandPlate:
		s.HeldPlate, _ = r.hand.Plate()
		s.HeldAnchor = heldPlateAnchor(r.chef)
	}

	if r.chop != nil {
		s.Chopping = true
		s.ChopTarget = r.chop.Target
	}

	for _, st := range g.stations.All() {
		if g.inReach(st) {
			s.Nearby = append(s.Nearby, st.Kind)
		}
	}
	return s
}

// Stats returns the statistics of the current round.
func (g *Game) Stats() Stats {
	return g.r.stats
}
