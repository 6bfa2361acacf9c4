package kitchen

// Direction is a set of held movement directions.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// DirNone means no movement key is held.
const DirNone Direction = 0

// Has reports whether d includes dir.
func (d Direction) Has(dir Direction) bool {
	return d&dir != 0
}

// MovementTick moves the chef one step in the held directions, staying inside
// the playfield. Opposite directions cancel out.
func (g *Game) MovementTick(d Direction) {
	if !g.acting() || d == DirNone {
		return
	}
	dx, dy := 0, 0
	if d.Has(DirLeft) {
		dx--
	}
	if d.Has(DirRight) {
		dx++
	}
	if d.Has(DirUp) {
		dy--
	}
	if d.Has(DirDown) {
		dy++
	}
	speed := g.cfg.Chef.Speed
	g.r.chef = g.r.chef.Translate(dx*speed, dy*speed).ClampInside(g.cfg.Playfield)
}
