package config

import (
	"sort"

	"github.com/san-kum/paramosc/internal/oscillator"
)

var Presets = map[string]oscillator.Params{
	// just inside the first instability tongue
	"resonant": {W0: 1.0, W: 1.01, H: 0.1},
	"edge":     {W0: 1.0, W: 1.0, H: 0.0},
	"detuned":  {W0: 1.0, W: 2.0, H: 0.01},
	"wide":     {W0: 1.0, W: 0.9, H: 0.5},
}

func GetPreset(name string) (oscillator.Params, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
