package kitchen

import "github.com/vovakirdan/welldone/internal/core"

// instanceList is an insertion-ordered collection of ingredient instances,
// used for the board slot, the pot and the floor.
type instanceList []Instance

func (l instanceList) indexOf(id InstanceID) int {
	for i, inst := range l {
		if inst.ID == id {
			return i
		}
	}
	return -1
}

func (l *instanceList) remove(id InstanceID) (Instance, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Instance{}, false
	}
	inst := (*l)[i]
	*l = append((*l)[:i:i], (*l)[i+1:]...)
	return inst, true
}

// firstWithin returns the first instance, in insertion order, whose center is
// within reach of r and that skip does not reject.
func (l instanceList) firstWithin(r core.Rect, reach float64, skip func(Instance) bool) (Instance, bool) {
	for _, inst := range l {
		if skip != nil && skip(inst) {
			continue
		}
		if core.Within(r, inst.Rect, reach) {
			return inst, true
		}
	}
	return Instance{}, false
}

// nearest returns the instance closest to r by center distance.
func (l instanceList) nearest(r core.Rect) (Instance, float64, bool) {
	var best Instance
	bestDist := 0.0
	found := false
	for _, inst := range l {
		d := core.CenterDistance(r, inst.Rect)
		if !found || d < bestDist {
			best, bestDist, found = inst, d, true
		}
	}
	return best, bestDist, found
}

func (l instanceList) clone() []Instance {
	return append([]Instance(nil), l...)
}

// pot holds cooked ingredients until a batch completes.
type pot struct {
	items instanceList
	batch int
}

// add puts an ingredient in the pot. When the count of its key reaches the
// batch size exactly, the oldest batch-many instances with that key are
// removed and returned.
func (p *pot) add(inst Instance) []Instance {
	p.items = append(p.items, inst)

	key := inst.Ingredient.Key()
	if p.count(key) != p.batch {
		return nil
	}

	var consumed []Instance
	kept := p.items[:0:0]
	for _, it := range p.items {
		if len(consumed) < p.batch && it.Ingredient.Key() == key {
			consumed = append(consumed, it)
			continue
		}
		kept = append(kept, it)
	}
	p.items = kept
	return consumed
}

func (p *pot) count(key string) int {
	n := 0
	for _, it := range p.items {
		if it.Ingredient.Key() == key {
			n++
		}
	}
	return n
}

// counts returns the multiset of content keys.
func (p *pot) counts() map[string]int {
	out := make(map[string]int, len(p.items))
	for _, it := range p.items {
		out[it.Ingredient.Key()]++
	}
	return out
}

// droppedPlates is the floor plate collection.
type droppedPlates []DroppedPlate

// nearest returns the index of the plate closest to r among those accepted by
// inRange, or -1.
func (d droppedPlates) nearest(r core.Rect, inRange func(core.Rect) bool) int {
	best := -1
	bestDist := 0.0
	for i, p := range d {
		if !inRange(p.Rect) {
			continue
		}
		dist := core.CenterDistance(r, p.Rect)
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

func (d *droppedPlates) removeAt(i int) DroppedPlate {
	p := (*d)[i]
	*d = append((*d)[:i:i], (*d)[i+1:]...)
	return p
}

func (d droppedPlates) clone() []DroppedPlate {
	out := make([]DroppedPlate, len(d))
	for i, p := range d {
		out[i] = DroppedPlate{Plate: p.Plate.clone(), Rect: p.Rect}
	}
	return out
}
