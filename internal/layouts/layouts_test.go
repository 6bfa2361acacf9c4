package layouts

import (
	"testing"

	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range config.BuiltinLayouts() {
		if !registry.Exists(name) {
			t.Errorf("layout %q not registered", name)
		}
	}
	if !registry.Exists(config.DefaultLayout) {
		t.Errorf("default layout %q not registered", config.DefaultLayout)
	}
}
