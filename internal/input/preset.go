package input

import (
	"fmt"

	"github.com/san-kum/paramosc/internal/config"
)

// Preset resolves a named parameter set.
func Preset(name string) (Provider, error) {
	p, ok := config.GetPreset(name)
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}
	return Fixed(p), nil
}

// FromConfig returns the params stored in cfg, if any.
func FromConfig(cfg *config.Config) (Provider, bool) {
	if cfg == nil || cfg.Params == nil {
		return nil, false
	}
	return Fixed(*cfg.Params), true
}
