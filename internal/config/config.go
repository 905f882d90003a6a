package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/estat/internal/charge"
)

const (
	Dim2 = 2
	Dim3 = 3
)

// System describes a charge arrangement loaded from yaml or a preset.
type System struct {
	Name      string           `yaml:"name"`
	Dimension int              `yaml:"dimension"`
	Particles []ParticleConfig `yaml:"particles"`
}

// ParticleConfig is one particle entry. Z is ignored for 2D systems and an
// empty label means the particle is unaddressable.
type ParticleConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Q     float64 `yaml:"q"`
	Label string  `yaml:"label"`
}

// Default returns a single 1 uC charge at the origin in 3D.
func Default() *System {
	return &System{
		Name:      "single",
		Dimension: Dim3,
		Particles: []ParticleConfig{{Q: 1e-6, Label: "a"}},
	}
}

// Load reads a system config from a yaml file, filling unset fields from
// Default.
func Load(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sys := Default()
	if err := yaml.Unmarshal(data, sys); err != nil {
		return nil, err
	}
	if sys.Dimension != Dim2 && sys.Dimension != Dim3 {
		return nil, fmt.Errorf("config: dimension must be 2 or 3, got %d", sys.Dimension)
	}
	return sys, nil
}

// Save writes a system config to a yaml file.
func Save(path string, sys *System) error {
	data, err := yaml.Marshal(sys)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build2D constructs the 2D distribution this system describes.
func (s *System) Build2D() (*charge.Distribution, error) {
	if s.Dimension != Dim2 {
		return nil, fmt.Errorf("config: system %q is not 2D", s.Name)
	}
	particles := make([]charge.Particle, len(s.Particles))
	for i, pc := range s.Particles {
		particles[i] = charge.NewParticle(pc.X, pc.Y, pc.Q, pc.Label)
	}
	return charge.NewDistribution(particles...)
}

// Build3D constructs the 3D distribution this system describes.
func (s *System) Build3D() (*charge.Distribution3, error) {
	if s.Dimension != Dim3 {
		return nil, fmt.Errorf("config: system %q is not 3D", s.Name)
	}
	particles := make([]charge.Particle3, len(s.Particles))
	for i, pc := range s.Particles {
		particles[i] = charge.NewParticle3(pc.X, pc.Y, pc.Z, pc.Q, pc.Label)
	}
	return charge.NewDistribution3(particles...)
}
