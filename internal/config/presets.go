package config

import "sort"

var Presets = map[string]*System{
	"single": {
		Name: "single", Dimension: Dim3,
		Particles: []ParticleConfig{
			{Q: 1e-6, Label: "a"},
		},
	},
	"dipole": {
		Name: "dipole", Dimension: Dim2,
		Particles: []ParticleConfig{
			{X: -0.5, Q: 1e-6, Label: "pos"},
			{X: 0.5, Q: -1e-6, Label: "neg"},
		},
	},
	"quadrupole": {
		Name: "quadrupole", Dimension: Dim2,
		Particles: []ParticleConfig{
			{X: 1, Y: 1, Q: 1e-6, Label: "pp"},
			{X: -1, Y: 1, Q: -1e-6, Label: "np"},
			{X: -1, Y: -1, Q: 1e-6, Label: "nn"},
			{X: 1, Y: -1, Q: -1e-6, Label: "pn"},
		},
	},
	"row": {
		Name: "row", Dimension: Dim2,
		Particles: []ParticleConfig{
			{X: -2, Q: 1e-6}, {X: -1, Q: 1e-6}, {Q: 1e-6},
			{X: 1, Q: 1e-6}, {X: 2, Q: 1e-6},
		},
	},
	"dipole3": {
		Name: "dipole3", Dimension: Dim3,
		Particles: []ParticleConfig{
			{Z: 0.5, Q: 1e-6, Label: "pos"},
			{Z: -0.5, Q: -1e-6, Label: "neg"},
		},
	},
	"square": {
		Name: "square", Dimension: Dim3,
		Particles: []ParticleConfig{
			{X: 1, Y: 1, Q: 1e-6, Label: "a"},
			{X: -1, Y: 1, Q: 1e-6, Label: "b"},
			{X: -1, Y: -1, Q: 1e-6, Label: "c"},
			{X: 1, Y: -1, Q: 1e-6, Label: "d"},
		},
	},
	"tetrahedron": {
		Name: "tetrahedron", Dimension: Dim3,
		Particles: []ParticleConfig{
			{X: 1, Y: 1, Z: 1, Q: 1e-6, Label: "a"},
			{X: 1, Y: -1, Z: -1, Q: 1e-6, Label: "b"},
			{X: -1, Y: 1, Z: -1, Q: 1e-6, Label: "c"},
			{X: -1, Y: -1, Z: 1, Q: 1e-6, Label: "d"},
		},
	},
}

// GetPreset returns the named preset system, or nil if unknown.
func GetPreset(name string) *System {
	return Presets[name]
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
