package kitchen

// ChopTicket identifies one chop request. Seq increases with every chop for
// the life of the Game, so a ticket issued before a restart never matches a
// later round.
type ChopTicket struct {
	Seq    uint64
	Target InstanceID
}

// Process starts chopping the board item nearest the chef. Only one chop runs
// at a time. The result lands when the scheduler calls CompleteChop.
func (g *Game) Process() {
	if !g.acting() {
		return
	}
	r := g.r
	if r.chop != nil {
		return
	}

	target, dist, ok := r.board.nearest(r.chef)
	if !ok || dist > g.cfg.Reach.Chop {
		return
	}

	g.chopSeq++
	ticket := ChopTicket{Seq: g.chopSeq, Target: target.ID}
	r.chop = &ticket
	g.log.Debug("chop started", "seq", ticket.Seq, "id", target.ID, "key", target.Ingredient.Key())

	g.sched.After(g.chopFor, func() {
		g.CompleteChop(ticket)
	})
}

// CompleteChop finishes the chop identified by t. Tickets that are not the
// in-flight chop of the current round are ignored. For the current ticket the
// chopping flag always clears; the target turns chopped only if it is still
// on the board and raw. It reports whether an ingredient was chopped.
func (g *Game) CompleteChop(t ChopTicket) bool {
	r := g.r
	if r.chop == nil || *r.chop != t {
		g.log.Debug("stale chop ignored", "seq", t.Seq, "id", t.Target)
		return false
	}
	r.chop = nil

	i := r.board.indexOf(t.Target)
	if i < 0 {
		g.log.Debug("chop target gone", "seq", t.Seq, "id", t.Target)
		return false
	}
	item := &r.board[i]
	if item.Ingredient.Stage == StageChopped {
		return false
	}
	item.Ingredient.Stage = StageChopped
	r.stats.ChopsCompleted++
	g.log.Debug("chop completed", "seq", t.Seq, "id", t.Target, "key", item.Ingredient.Key())
	return true
}

// Chopping returns the in-flight chop, if any.
func (g *Game) Chopping() (ChopTicket, bool) {
	if g.r.chop == nil {
		return ChopTicket{}, false
	}
	return *g.r.chop, true
}

// canChop reports whether Process would start a chop right now.
func (g *Game) canChop() bool {
	if g.r.chop != nil {
		return false
	}
	_, dist, ok := g.r.board.nearest(g.r.chef)
	return ok && dist <= g.cfg.Reach.Chop
}
