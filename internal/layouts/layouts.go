// Package layouts registers the built-in kitchen layouts with the registry.
// Import it for its side effects.
package layouts

import (
	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/registry"
)

func init() {
	for _, name := range config.BuiltinLayouts() {
		registry.Register(name, loader(name))
	}
}

func loader(name string) registry.Loader {
	return func(customPath string) (config.KitchenConfig, error) {
		return config.Load(name, customPath)
	}
}
