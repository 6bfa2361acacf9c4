package config

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/welldone/internal/core"
)

//go:embed defaults/*.yaml
var defaultLayouts embed.FS

// DefaultLayout is the layout used when none is named.
const DefaultLayout = "classic"

// DefaultKitchenConfig returns the classic layout without touching the
// embedded files. It is the last fallback of the loader.
func DefaultKitchenConfig() KitchenConfig {
	return KitchenConfig{
		Name:      "classic",
		Title:     "Classic Kitchen",
		Playfield: core.NewRect(0, 0, 1320, 720),
		Chef: ChefConfig{
			Start: core.NewRect(200, 400, 112, 133),
			Speed: 8,
		},
		Round: RoundConfig{
			DurationSecs: 120,
			ChopSecs:     3,
			OrderBonus:   20,
			PotBatch:     3,
			QueueLength:  3,
		},
		Reach: ReachConfig{
			Pickup: 50,
			Place:  50,
			Plate:  80,
			Chop:   120,
			Serve:  80,
		},
		Stations: []StationConfig{
			{Kind: KindPot, Name: "Pot", Rect: core.NewRect(310, 154, 90, 106), Radius: 80, Mode: "center"},
			{Kind: KindBoard, Name: "Chopping Board", Rect: core.NewRect(467, 185, 70, 50), Radius: 80, Mode: "center"},
			{Kind: KindServe, Name: "Serve Counter", Rect: core.NewRect(1158, 163, 160, 229), Radius: 80, Mode: "center"},
			{Kind: KindDispenser, Name: "Plates", Rect: core.NewRect(1167, 353, 100, 85), Radius: 80, Mode: "bounds"},
			{Kind: KindTrash, Name: "Trash", Rect: core.NewRect(1045, 172, 90, 90), Radius: 80, Mode: "center"},
			{Kind: KindSpawn, Name: "Tomatoes", Ingredient: "tomato", Rect: core.NewRect(920, 477, 80, 80), Radius: 50, Mode: "center"},
			{Kind: KindSpawn, Name: "Lettuce", Ingredient: "lettuce", Rect: core.NewRect(853, 460, 90, 130), Radius: 50, Mode: "center"},
			{Kind: KindSpawn, Name: "Cucumbers", Ingredient: "cucumber", Rect: core.NewRect(980, 475, 90, 80), Radius: 50, Mode: "center"},
		},
		Orders: [][]string{
			{"tomato_chopped"},
			{"lettuce_chopped"},
			{"cucumber_chopped"},
		},
	}
}

// BuiltinLayouts returns the names of the embedded layouts, sorted.
func BuiltinLayouts() []string {
	entries, err := defaultLayouts.ReadDir("defaults")
	if err != nil {
		return []string{DefaultLayout}
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// GetDefaultYAML returns the embedded YAML for a layout, or nil if unknown.
func GetDefaultYAML(layout string) []byte {
	data, err := defaultLayouts.ReadFile(path.Join("defaults", layout+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// Builtin parses an embedded layout.
func Builtin(layout string) (KitchenConfig, error) {
	data := GetDefaultYAML(layout)
	if data == nil {
		return KitchenConfig{}, fmt.Errorf("config: unknown layout %q", layout)
	}
	var cfg KitchenConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if layout == DefaultLayout {
			return DefaultKitchenConfig(), nil // Fallback to hardcoded if embed is broken
		}
		return KitchenConfig{}, fmt.Errorf("config: failed to parse embedded layout %q: %w", layout, err)
	}
	return cfg, nil
}
