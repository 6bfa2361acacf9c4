package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinLayoutsValidate(t *testing.T) {
	names := BuiltinLayouts()
	if len(names) < 2 {
		t.Fatalf("expected at least 2 builtin layouts, got %v", names)
	}
	for _, name := range names {
		cfg, err := Builtin(name)
		if err != nil {
			t.Fatalf("Builtin(%q) failed: %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Builtin(%q) does not validate: %v", name, err)
		}
		if cfg.Name != name {
			t.Errorf("layout %q declares name %q", name, cfg.Name)
		}
	}
}

func TestDefaultKitchenConfigMatchesEmbedded(t *testing.T) {
	embedded, err := Builtin(DefaultLayout)
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}
	hard := DefaultKitchenConfig()

	if embedded.Playfield != hard.Playfield || embedded.Chef != hard.Chef || embedded.Round != hard.Round {
		t.Error("hardcoded default drifted from defaults/classic.yaml")
	}
	if len(embedded.Stations) != len(hard.Stations) {
		t.Errorf("station count %d vs %d", len(embedded.Stations), len(hard.Stations))
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("DefaultKitchenConfig() does not validate: %v", err)
	}
}

func TestValidateRejectsEmptyUniverse(t *testing.T) {
	cfg := DefaultKitchenConfig()
	cfg.Orders = nil

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty order universe")
	}
	if !strings.Contains(err.Error(), "order universe is empty") {
		t.Errorf("error should describe the empty universe, got: %v", err)
	}
}

func TestValidateStations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*KitchenConfig)
		want   string
	}{
		{"missing trash", func(c *KitchenConfig) { c.Stations = removeKind(c.Stations, KindTrash) }, "exactly one trash"},
		{"duplicate pot", func(c *KitchenConfig) { c.Stations = append(c.Stations, c.Stations[0]) }, "exactly one pot"},
		{"spawn without ingredient", func(c *KitchenConfig) { c.Stations[5].Ingredient = "" }, "spawn has no ingredient"},
		{"bad mode", func(c *KitchenConfig) { c.Stations[0].Mode = "edge" }, "unknown proximity mode"},
		{"unknown kind", func(c *KitchenConfig) { c.Stations[0].Kind = "oven" }, "unknown kind"},
		{"zero chop", func(c *KitchenConfig) { c.Round.ChopSecs = 0 }, "chop duration"},
		{"zero queue", func(c *KitchenConfig) { c.Round.QueueLength = 0 }, "queue length"},
		{"empty order", func(c *KitchenConfig) { c.Orders = append(c.Orders, nil) }, "has no contents"},
		{"zero reach", func(c *KitchenConfig) { c.Reach = ReachConfig{} }, "pickup reach must be positive"},
		{"negative chop reach", func(c *KitchenConfig) { c.Reach.Chop = -1 }, "chop reach must be positive"},
		{"zero serve reach", func(c *KitchenConfig) { c.Reach.Serve = 0 }, "serve reach must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKitchenConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quick.yaml")
	data := []byte("round:\n  duration_secs: 30\n  chop_secs: 1\n  order_bonus: 50\n  pot_batch: 3\n  queue_length: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("classic", path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Round.DurationSecs != 30 || cfg.Round.OrderBonus != 50 {
		t.Errorf("override not applied: %+v", cfg.Round)
	}
	if len(cfg.Stations) == 0 {
		t.Error("stations should come from the embedded layout")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("nope", ""); err == nil {
		t.Error("expected error for unknown layout")
	}
	if _, err := Load("classic", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("orders: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load("classic", bad); err == nil {
		t.Error("expected validation error for empty orders override")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultKitchenConfig()
	if err := ApplyPreset(&cfg, DifficultyEasy); err != nil {
		t.Fatal(err)
	}
	if cfg.Round.DurationSecs != 180 || cfg.Round.ChopSecs != 2 {
		t.Errorf("easy preset = %+v", cfg.Round)
	}

	cfg = DefaultKitchenConfig()
	if err := ApplyPreset(&cfg, DifficultyHard); err != nil {
		t.Fatal(err)
	}
	if cfg.Round.DurationSecs != 90 || cfg.Round.ChopSecs != 4 {
		t.Errorf("hard preset = %+v", cfg.Round)
	}

	if err := ApplyPreset(&cfg, "brutal"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestMarshalRoundTripsLayout(t *testing.T) {
	data, err := Marshal(DefaultKitchenConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "kind: dispenser") {
		t.Errorf("encoded YAML missing stations:\n%s", data)
	}
}

func removeKind(stations []StationConfig, kind StationKind) []StationConfig {
	var out []StationConfig
	for _, s := range stations {
		if s.Kind != kind {
			out = append(out, s)
		}
	}
	return out
}

func TestUniverseKeysNormalisesOrder(t *testing.T) {
	cfg := DefaultKitchenConfig()
	cfg.Orders = [][]string{
		{"tomato_chopped", "lettuce_chopped"},
		{"lettuce_chopped", "tomato_chopped"},
	}
	keys := cfg.UniverseKeys()
	if len(keys) != 2 || keys[0] != "lettuce_chopped_tomato_chopped" || keys[0] != keys[1] {
		t.Errorf("UniverseKeys() = %v", keys)
	}
}
