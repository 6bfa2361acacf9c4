package kitchen

import (
	"fmt"

	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/core"
)

// Station is a fixed interactable zone.
type Station struct {
	Kind       config.StationKind
	Name       string
	Ingredient string // Spawn stations only
	Rect       core.Rect
	Radius     float64
	Mode       core.ProximityMode
}

// Near reports whether r is within the station's proximity radius.
func (s Station) Near(r core.Rect) bool {
	return core.IsNear(r, s.Rect, s.Radius, s.Mode)
}

// Stations is the station registry of a layout.
type Stations struct {
	Board     Station
	Pot       Station
	Dispenser Station
	Trash     Station
	Serve     Station
	Spawns    []Station
}

// All returns every station, singletons first, then spawns in layout order.
func (s Stations) All() []Station {
	all := []Station{s.Board, s.Pot, s.Dispenser, s.Trash, s.Serve}
	return append(all, s.Spawns...)
}

func newStations(cfg config.KitchenConfig) (Stations, error) {
	var st Stations
	seen := make(map[config.StationKind]bool)

	for i, sc := range cfg.Stations {
		mode, err := core.ParseProximityMode(sc.Mode)
		if err != nil {
			return Stations{}, fmt.Errorf("kitchen: station %d: %w", i, err)
		}
		radius := sc.Radius
		if radius <= 0 {
			radius = core.DefaultNearThreshold
		}
		s := Station{
			Kind:       sc.Kind,
			Name:       sc.Name,
			Ingredient: sc.Ingredient,
			Rect:       sc.Rect,
			Radius:     radius,
			Mode:       mode,
		}

		if sc.Kind != config.KindSpawn && seen[sc.Kind] {
			return Stations{}, fmt.Errorf("kitchen: duplicate %s station", sc.Kind)
		}
		seen[sc.Kind] = true

		switch sc.Kind {
		case config.KindBoard:
			st.Board = s
		case config.KindPot:
			st.Pot = s
		case config.KindDispenser:
			st.Dispenser = s
		case config.KindTrash:
			st.Trash = s
		case config.KindServe:
			st.Serve = s
		case config.KindSpawn:
			st.Spawns = append(st.Spawns, s)
		default:
			return Stations{}, fmt.Errorf("kitchen: station %d: unknown kind %q", i, sc.Kind)
		}
	}

	for _, kind := range []config.StationKind{config.KindBoard, config.KindPot, config.KindDispenser, config.KindTrash, config.KindServe} {
		if !seen[kind] {
			return Stations{}, fmt.Errorf("kitchen: layout has no %s station", kind)
		}
	}
	return st, nil
}
