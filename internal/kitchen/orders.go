package kitchen

import "math/rand"

// orderBook is the fixed-length queue of pending order keys.
type orderBook struct {
	universe []string
	keys     []string
	length   int
}

func newOrderBook(universe []string, length int, rng *rand.Rand) orderBook {
	ob := orderBook{universe: universe, length: length}
	ob.keys = make([]string, 0, length)
	for len(ob.keys) < length {
		ob.keys = append(ob.keys, ob.draw(rng))
	}
	return ob
}

func (ob *orderBook) draw(rng *rand.Rand) string {
	return ob.universe[rng.Intn(len(ob.universe))]
}

// head is the order currently being asked for.
func (ob *orderBook) head() string {
	return ob.keys[0]
}

// fulfil pops the head and appends a fresh draw, keeping the length fixed.
func (ob *orderBook) fulfil(rng *rand.Rand) {
	ob.keys = append(ob.keys[1:len(ob.keys):len(ob.keys)], ob.draw(rng))
}

func (ob *orderBook) list() []string {
	return append([]string(nil), ob.keys...)
}
