// Package registry provides a global registry of kitchen layouts.
// Layouts register themselves in init() functions, allowing the CLI and the
// platform to discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/welldone/internal/config"
)

// Loader produces the configuration of a layout. customPath, when set,
// points at a YAML file overlaid on the layout's defaults.
type Loader func(customPath string) (config.KitchenConfig, error)

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	ID          string
	Title       string
	Stations    int
	Ingredients []string
}

type entry struct {
	info LayoutInfo
	load Loader
}

var (
	layouts = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a layout to the registry.
// Typically called from an init() function.
// Panics if a layout with the same ID is already registered or if its
// default configuration cannot be loaded.
func Register(id string, load Loader) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := layouts[id]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", id))
	}

	// Read metadata from the default configuration
	cfg, err := load("")
	if err != nil {
		panic(fmt.Sprintf("registry: layout %q: %v", id, err))
	}
	title := cfg.Title
	if title == "" {
		title = id
	}

	layouts[id] = entry{
		info: LayoutInfo{
			ID:          id,
			Title:       title,
			Stations:    len(cfg.Stations),
			Ingredients: cfg.Ingredients(),
		},
		load: load,
	}
}

// List returns information about all registered layouts, sorted by ID.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(layouts))
	for _, e := range layouts {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Load returns the configuration of a layout by its ID.
// Returns an error if the layout ID is not registered.
func Load(id, customPath string) (config.KitchenConfig, error) {
	mu.RLock()
	e, ok := layouts[id]
	mu.RUnlock()

	if !ok {
		return config.KitchenConfig{}, fmt.Errorf("registry: unknown layout %q", id)
	}
	return e.load(customPath)
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := layouts[id]
	return ok
}

// reset clears the registry. Used by tests.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	layouts = make(map[string]entry)
}
