// Package config provides YAML-based kitchen layout configuration, embedded
// default layouts and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/welldone/internal/core"
)

// StationKind names a kind of fixed interactable zone.
type StationKind string

const (
	KindBoard     StationKind = "board"
	KindPot       StationKind = "pot"
	KindDispenser StationKind = "dispenser"
	KindTrash     StationKind = "trash"
	KindServe     StationKind = "serve"
	KindSpawn     StationKind = "spawn"
)

// singletonKinds must appear exactly once per layout.
var singletonKinds = []StationKind{KindBoard, KindPot, KindDispenser, KindTrash, KindServe}

// KitchenConfig contains everything needed to build a kitchen round.
type KitchenConfig struct {
	Name      string          `yaml:"name"`
	Title     string          `yaml:"title"`
	Playfield core.Rect       `yaml:"playfield"`
	Chef      ChefConfig      `yaml:"chef"`
	Round     RoundConfig     `yaml:"round"`
	Reach     ReachConfig     `yaml:"reach"`
	Stations  []StationConfig `yaml:"stations"`
	Orders    [][]string      `yaml:"orders"` // Each entry is the contents of one valid plate
}

// ChefConfig defines the player character.
type ChefConfig struct {
	Start core.Rect `yaml:"start"`
	Speed int       `yaml:"speed"` // Pixels per movement tick
}

// RoundConfig defines timing and scoring rules.
type RoundConfig struct {
	DurationSecs int     `yaml:"duration_secs"`
	ChopSecs     float64 `yaml:"chop_secs"`
	OrderBonus   int     `yaml:"order_bonus"`
	PotBatch     int     `yaml:"pot_batch"`
	QueueLength  int     `yaml:"queue_length"`
}

// ReachConfig holds the distance thresholds of the item scans.
type ReachConfig struct {
	Pickup float64 `yaml:"pickup"` // Ingredient pickup (spawn, floor, board)
	Place  float64 `yaml:"place"`  // Board and pot placement
	Plate  float64 `yaml:"plate"`  // Dropped plate pickup and insertion
	Chop   float64 `yaml:"chop"`   // Maximum distance to the chopped item
	Serve  float64 `yaml:"serve"`  // Dropped plate to serve counter
}

// StationConfig describes one station.
type StationConfig struct {
	Kind       StationKind `yaml:"kind"`
	Name       string      `yaml:"name"`
	Ingredient string      `yaml:"ingredient,omitempty"` // Spawn stations only
	Rect       core.Rect   `yaml:"rect"`
	Radius     float64     `yaml:"radius"`
	Mode       string      `yaml:"mode"` // "center" or "bounds"
}

// Station returns the first station of the given kind.
func (c KitchenConfig) Station(kind StationKind) (StationConfig, bool) {
	for _, s := range c.Stations {
		if s.Kind == kind {
			return s, true
		}
	}
	return StationConfig{}, false
}

// Spawns returns all ingredient spawn stations in declaration order.
func (c KitchenConfig) Spawns() []StationConfig {
	var out []StationConfig
	for _, s := range c.Stations {
		if s.Kind == KindSpawn {
			out = append(out, s)
		}
	}
	return out
}

// Ingredients returns the distinct ingredient names offered by spawns.
func (c KitchenConfig) Ingredients() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range c.Spawns() {
		if !seen[s.Ingredient] {
			seen[s.Ingredient] = true
			out = append(out, s.Ingredient)
		}
	}
	return out
}

// CompositeKey sorts contents and joins them with "_", so the key does not
// depend on the order ingredients were added to a plate.
func CompositeKey(contents []string) string {
	sorted := append([]string(nil), contents...)
	sort.Strings(sorted)
	return strings.Join(sorted, "_")
}

// UniverseKeys returns the composite key of every configured order, in
// declaration order. Duplicates are kept and weight the draw.
func (c KitchenConfig) UniverseKeys() []string {
	keys := make([]string, 0, len(c.Orders))
	for _, contents := range c.Orders {
		keys = append(keys, CompositeKey(contents))
	}
	return keys
}

// Validate checks the configuration and reports every problem found.
func (c KitchenConfig) Validate() error {
	var errs []error

	if c.Playfield.W <= 0 || c.Playfield.H <= 0 {
		errs = append(errs, fmt.Errorf("playfield must have positive size, got %v", c.Playfield))
	}
	if c.Chef.Start.W <= 0 || c.Chef.Start.H <= 0 {
		errs = append(errs, fmt.Errorf("chef must have positive size, got %v", c.Chef.Start))
	}
	if c.Chef.Speed <= 0 {
		errs = append(errs, fmt.Errorf("chef speed must be positive, got %d", c.Chef.Speed))
	}
	if c.Round.DurationSecs <= 0 {
		errs = append(errs, fmt.Errorf("round duration must be positive, got %d", c.Round.DurationSecs))
	}
	if c.Round.ChopSecs <= 0 {
		errs = append(errs, fmt.Errorf("chop duration must be positive, got %v", c.Round.ChopSecs))
	}
	if c.Round.PotBatch < 1 {
		errs = append(errs, fmt.Errorf("pot batch must be at least 1, got %d", c.Round.PotBatch))
	}
	if c.Round.QueueLength < 1 {
		errs = append(errs, fmt.Errorf("order queue length must be at least 1, got %d", c.Round.QueueLength))
	}
	if c.Round.OrderBonus < 0 {
		errs = append(errs, fmt.Errorf("order bonus must not be negative, got %d", c.Round.OrderBonus))
	}

	for _, r := range []struct {
		name string
		v    float64
	}{
		{"pickup", c.Reach.Pickup},
		{"place", c.Reach.Place},
		{"plate", c.Reach.Plate},
		{"chop", c.Reach.Chop},
		{"serve", c.Reach.Serve},
	} {
		if r.v <= 0 {
			errs = append(errs, fmt.Errorf("%s reach must be positive, got %v", r.name, r.v))
		}
	}

	counts := make(map[StationKind]int)
	for i, s := range c.Stations {
		counts[s.Kind]++
		if _, err := core.ParseProximityMode(s.Mode); err != nil {
			errs = append(errs, fmt.Errorf("station %d (%s): %w", i, s.Kind, err))
		}
		if s.Rect.W <= 0 || s.Rect.H <= 0 {
			errs = append(errs, fmt.Errorf("station %d (%s): rect must have positive size", i, s.Kind))
		}
		switch s.Kind {
		case KindBoard, KindPot, KindDispenser, KindTrash, KindServe:
		case KindSpawn:
			if s.Ingredient == "" {
				errs = append(errs, fmt.Errorf("station %d: spawn has no ingredient", i))
			}
		default:
			errs = append(errs, fmt.Errorf("station %d: unknown kind %q", i, s.Kind))
		}
	}
	for _, kind := range singletonKinds {
		if counts[kind] != 1 {
			errs = append(errs, fmt.Errorf("layout needs exactly one %s station, found %d", kind, counts[kind]))
		}
	}
	if counts[KindSpawn] == 0 {
		errs = append(errs, errors.New("layout needs at least one ingredient spawn"))
	}

	if len(c.Orders) == 0 {
		errs = append(errs, errors.New("order universe is empty: at least one plate combination is required"))
	}
	for i, contents := range c.Orders {
		if len(contents) == 0 {
			errs = append(errs, fmt.Errorf("order %d has no contents", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid kitchen %q: %w", c.Name, errors.Join(errs...))
	}
	return nil
}
