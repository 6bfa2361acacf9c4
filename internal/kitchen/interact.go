package kitchen

import (
	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/core"
)

// Instance, dropped plate and held item sizes in playfield pixels.
const (
	itemSize      = 40
	plateSize     = 60
	heldPlateSize = 64
	dropOffset    = 40
)

// itemAnchor is where an ingredient lands when the chef puts it down: centered
// under the chef, slightly overlapping the feet.
func itemAnchor(chef core.Rect) core.Rect {
	return core.NewRect(chef.X+(chef.W-itemSize)/2, chef.Y+chef.H-10, itemSize, itemSize)
}

// heldItemAnchor is where a held ingredient is drawn, above the chef.
func heldItemAnchor(chef core.Rect) core.Rect {
	return core.NewRect(chef.X+(chef.W-itemSize)/2, chef.Y-45, itemSize, itemSize)
}

// heldPlateAnchor is where a held plate is drawn, above the chef.
func heldPlateAnchor(chef core.Rect) core.Rect {
	return core.NewRect(chef.X+(chef.W-heldPlateSize)/2, chef.Y-heldPlateSize+10, heldPlateSize, heldPlateSize)
}

func dropAnchor(chef core.Rect) core.Rect {
	return core.NewRect(chef.X+dropOffset, chef.Y+dropOffset, plateSize, plateSize)
}

// inReach reports whether the chef can act on st right now. Every action gate
// and the snapshot's Nearby list go through it, so they agree at the
// threshold. Board and pot use the placement reach, spawns the pickup reach,
// the serve counter its radius by center distance; the rest their own
// radius and mode.
func (g *Game) inReach(st Station) bool {
	chef := g.r.chef
	switch st.Kind {
	case config.KindBoard, config.KindPot:
		return core.Within(chef, st.Rect, g.cfg.Reach.Place)
	case config.KindSpawn:
		return core.Within(chef, st.Rect, g.cfg.Reach.Pickup)
	case config.KindServe:
		return core.Within(chef, st.Rect, st.Radius)
	default:
		return st.Near(chef)
	}
}

// Primary handles the primary action key. The first applicable branch wins.
func (g *Game) Primary() {
	if !g.acting() {
		return
	}
	switch g.r.hand.Kind() {
	case HandIngredient:
		g.primaryWithIngredient()
	case HandPlate:
		g.primaryWithPlate()
	default:
		if g.pickupPlate() {
			return
		}
		g.pickupIngredient()
	}
}

func (g *Game) primaryWithIngredient() {
	r := g.r
	item, _ := r.hand.Ingredient()
	chef := r.chef

	switch {
	case g.inReach(g.stations.Trash):
		r.hand = Hand{}
		r.stats.IngredientsTrashed++
		g.log.Debug("ingredient trashed", "id", item.ID, "key", item.Ingredient.Key())

	case g.inReach(g.stations.Dispenser):
		r.staged = append(r.staged, item.Ingredient.Key())
		r.hand = Hand{}
		g.log.Debug("ingredient staged", "key", item.Ingredient.Key(), "staged", r.staged)

	default:
		i := r.dropped.nearest(chef, func(p core.Rect) bool {
			return core.IsNear(chef, p, g.cfg.Reach.Plate, core.ProximityCenter)
		})
		if i >= 0 {
			p := &r.dropped[i]
			p.Contents = append(p.Contents, item.Ingredient.Key())
			r.hand = Hand{}
			g.log.Debug("ingredient added to dropped plate", "plate", p.ID, "contents", p.Contents)
			return
		}
		g.placeItem()
	}
}

func (g *Game) primaryWithPlate() {
	r := g.r
	plate, _ := r.hand.Plate()

	switch {
	case g.inReach(g.stations.Trash):
		r.hand = Hand{}
		r.stats.PlatesTrashed++
		g.log.Debug("plate trashed", "plate", plate.ID, "contents", plate.Contents)
	case g.inReach(g.stations.Serve):
		g.Serve()
	}
}

// Secondary handles the secondary action key: drop a held plate or put down a
// held ingredient.
func (g *Game) Secondary() {
	if !g.acting() {
		return
	}
	r := g.r
	switch r.hand.Kind() {
	case HandPlate:
		plate, _ := r.hand.Plate()
		r.dropped = append(r.dropped, DroppedPlate{Plate: plate, Rect: dropAnchor(r.chef)})
		r.hand = Hand{}
		g.log.Debug("plate dropped", "plate", plate.ID, "contents", plate.Contents)
	case HandIngredient:
		g.placeItem()
	}
}

// placeItem puts the held ingredient on the board, in the pot or on the floor,
// in that order of preference.
func (g *Game) placeItem() {
	r := g.r
	item, ok := r.hand.Ingredient()
	if !ok {
		return
	}
	item.Rect = itemAnchor(r.chef)

	switch {
	case g.inReach(g.stations.Board):
		r.board = append(r.board, item)
		g.log.Debug("placed on board", "id", item.ID, "key", item.Ingredient.Key())

	case g.inReach(g.stations.Pot):
		consumed := r.pot.add(item)
		g.log.Debug("placed in pot", "id", item.ID, "key", item.Ingredient.Key())
		if len(consumed) > 0 {
			r.stats.PotBatches++
			g.log.Debug("pot batch completed", "key", item.Ingredient.Key(), "count", len(consumed))
		}

	default:
		r.floor = append(r.floor, item)
		g.log.Debug("placed on floor", "id", item.ID, "key", item.Ingredient.Key(), "at", item.Rect)
	}
	r.hand = Hand{}
}

// pickupPlate takes the staged plate from the dispenser, or else the nearest
// dropped plate in reach. The hand must be empty.
func (g *Game) pickupPlate() bool {
	r := g.r
	if !r.hand.IsEmpty() {
		return false
	}

	if g.inReach(g.stations.Dispenser) {
		plate := Plate{ID: PlateID(g.newID()), Contents: r.staged}
		r.staged = nil
		r.hand = holdingPlate(plate)
		g.log.Debug("plate taken from dispenser", "plate", plate.ID, "contents", plate.Contents)
		return true
	}

	i := r.dropped.nearest(r.chef, func(p core.Rect) bool {
		return core.Within(r.chef, p, g.cfg.Reach.Plate)
	})
	if i < 0 {
		return false
	}
	dp := r.dropped.removeAt(i)
	r.hand = holdingPlate(dp.Plate)
	g.log.Debug("plate picked up", "plate", dp.ID, "contents", dp.Contents)
	return true
}

// pickupIngredient takes the first ingredient in reach: from a spawn, then the
// floor, then the board. The item being chopped stays on the board.
func (g *Game) pickupIngredient() bool {
	r := g.r
	if !r.hand.IsEmpty() {
		return false
	}
	reach := g.cfg.Reach.Pickup

	for _, sp := range g.stations.Spawns {
		if g.inReach(sp) {
			item := g.newInstance(Ingredient{Name: sp.Ingredient, Stage: StageRaw}, sp.Rect)
			r.hand = holdingIngredient(item)
			g.log.Debug("ingredient spawned", "id", item.ID, "key", item.Ingredient.Key())
			return true
		}
	}

	if item, ok := r.floor.firstWithin(r.chef, reach, nil); ok {
		r.floor.remove(item.ID)
		r.hand = holdingIngredient(item)
		g.log.Debug("picked up from floor", "id", item.ID, "key", item.Ingredient.Key())
		return true
	}

	busy := func(inst Instance) bool {
		return r.chop != nil && r.chop.Target == inst.ID
	}
	if item, ok := r.board.firstWithin(r.chef, reach, busy); ok {
		r.board.remove(item.ID)
		r.hand = holdingIngredient(item)
		g.log.Debug("picked up from board", "id", item.ID, "key", item.Ingredient.Key())
		return true
	}
	return false
}

// Serve hands a plate in at the serve counter. The chef must be in range of
// the counter. A held plate is served first; otherwise the first dropped
// plate lying at the counter. The plate leaves play whether or not it matches
// the head order. Serve reports whether a plate was served.
func (g *Game) Serve() bool {
	if !g.acting() {
		return false
	}
	r := g.r
	counter := g.stations.Serve
	if !g.inReach(counter) {
		return false
	}

	if plate, ok := r.hand.Plate(); ok {
		r.hand = Hand{}
		g.score(plate)
		return true
	}

	for i, dp := range r.dropped {
		if core.Within(counter.Rect, dp.Rect, g.cfg.Reach.Serve) {
			r.dropped.removeAt(i)
			g.score(dp.Plate)
			return true
		}
	}
	return false
}

func (g *Game) score(p Plate) {
	r := g.r
	r.stats.PlatesServed++
	key := p.Key()
	head := r.orders.head()
	if key != head {
		r.stats.PlatesMissed++
		g.log.Debug("plate served, no match", "plate", p.ID, "key", key, "want", head)
		return
	}
	r.score += g.cfg.Round.OrderBonus
	r.orders.fulfil(g.rng)
	r.stats.OrdersServed++
	g.log.Debug("order served", "key", key, "score", r.score, "orders", r.orders.keys)
}
