package kitchen

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/core"
)

// ErrEmptyUniverse is returned by New when no order combinations are configured.
var ErrEmptyUniverse = errors.New("kitchen: order universe is empty")

// Game is one kitchen: the station layout plus the state of the current round.
// All methods must be called from a single goroutine.
type Game struct {
	cfg      config.KitchenConfig
	stations Stations
	universe []string
	chopFor  time.Duration

	rng   *rand.Rand
	sched Scheduler
	log   *log.Logger
	newID func() string

	chopSeq uint64 // Survives restarts so old tickets never match
	r       *round
}

// round holds everything a restart resets.
type round struct {
	chef      core.Rect
	hand      Hand
	board     instanceList
	pot       pot
	floor     instanceList
	staged    []string
	dropped   droppedPlates
	orders    orderBook
	score     int
	remaining int
	paused    bool
	over      bool
	chop      *ChopTicket // In-flight chop, nil when idle
	stats     Stats
}

// Option configures a Game.
type Option func(*Game)

// WithSeed makes order draws deterministic.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScheduler sets the scheduler used for the chop delay.
func WithScheduler(s Scheduler) Option {
	return func(g *Game) {
		if s != nil {
			g.sched = s
		}
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithIDs replaces the ID generator for instances and plates.
func WithIDs(next func() string) Option {
	return func(g *Game) {
		if next != nil {
			g.newID = next
		}
	}
}

// New builds a kitchen from cfg and starts the first round.
func New(cfg config.KitchenConfig, opts ...Option) (*Game, error) {
	if len(cfg.Orders) == 0 {
		return nil, ErrEmptyUniverse
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("kitchen: %w", err)
	}
	stations, err := newStations(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		stations: stations,
		universe: cfg.UniverseKeys(),
		chopFor:  time.Duration(cfg.Round.ChopSecs * float64(time.Second)),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sched:    NewManualScheduler(),
		log:      log.New(io.Discard),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.r = g.newRound()
	g.log.Debug("round started", "layout", cfg.Name, "orders", g.r.orders.list())
	return g, nil
}

func (g *Game) newRound() *round {
	return &round{
		chef:      g.cfg.Chef.Start,
		pot:       pot{batch: g.cfg.Round.PotBatch},
		orders:    newOrderBook(g.universe, g.cfg.Round.QueueLength, g.rng),
		remaining: g.cfg.Round.DurationSecs,
	}
}

// Config returns the layout the game was built from.
func (g *Game) Config() config.KitchenConfig {
	return g.cfg
}

// Stations returns the station registry.
func (g *Game) Stations() Stations {
	return g.stations
}

// Restart discards the current round and starts a new one. It works in any
// state, including paused and round-over.
func (g *Game) Restart() {
	g.r = g.newRound()
	g.log.Debug("round restarted", "orders", g.r.orders.list())
}

// Pause stops movement, actions and the round clock. A running chop still
// completes.
func (g *Game) Pause() {
	if g.r.over {
		return
	}
	g.r.paused = true
}

// Resume undoes Pause.
func (g *Game) Resume() {
	g.r.paused = false
}

// TogglePause flips the paused state.
func (g *Game) TogglePause() {
	if g.r.paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// ClockTick advances the round clock by one second.
func (g *Game) ClockTick() {
	r := g.r
	if r.paused || r.over {
		return
	}
	if r.remaining > 0 {
		r.remaining--
	}
	if r.remaining == 0 {
		r.over = true
		g.log.Debug("round over", "score", r.score, "served", r.stats.OrdersServed)
	}
}

// acting reports whether player actions are currently accepted.
func (g *Game) acting() bool {
	return !g.r.paused && !g.r.over
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.r.score
}

// Remaining returns the seconds left in the round.
func (g *Game) Remaining() int {
	return g.r.remaining
}

// RoundOver reports whether the clock has run out.
func (g *Game) RoundOver() bool {
	return g.r.over
}

// Paused reports whether the round is paused.
func (g *Game) Paused() bool {
	return g.r.paused
}

// Orders returns a copy of the order queue, head first.
func (g *Game) Orders() []string {
	return g.r.orders.list()
}

// Hand returns what the chef is holding.
func (g *Game) Hand() Hand {
	return g.r.hand
}

// Chef returns the chef rectangle.
func (g *Game) Chef() core.Rect {
	return g.r.chef
}

func (g *Game) newInstance(ing Ingredient, at core.Rect) Instance {
	return Instance{ID: InstanceID(g.newID()), Ingredient: ing, Rect: at}
}
