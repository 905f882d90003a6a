package charge

import (
	"fmt"
	"slices"

	"github.com/san-kum/estat/internal/geom"
)

// Distribution3 is an ordered collection of 3D particles. Unlike the 2D
// variant it also aggregates scalar potential and total potential energy.
type Distribution3 struct {
	particles []Particle3
}

// NewDistribution3 creates a distribution and adds the given particles in
// order through the same validated path as Add. On a duplicate label the
// error is returned with particles added so far still in place.
func NewDistribution3(particles ...Particle3) (*Distribution3, error) {
	d := &Distribution3{}
	if err := d.AddAll(particles); err != nil {
		return d, err
	}
	return d, nil
}

// Len returns the number of particles held.
func (d *Distribution3) Len() int {
	return len(d.particles)
}

// Particles returns a copy of the particle list in insertion order.
func (d *Distribution3) Particles() []Particle3 {
	return slices.Clone(d.particles)
}

// Labels returns the non-empty labels currently in use, in insertion order.
func (d *Distribution3) Labels() []string {
	labels := make([]string, 0, len(d.particles))
	for _, p := range d.particles {
		if p.Label != "" {
			labels = append(labels, p.Label)
		}
	}
	return labels
}

// Add appends p to the distribution. A labeled particle whose label is
// already in use is rejected and the distribution is left unchanged.
func (d *Distribution3) Add(p Particle3) error {
	if p.Label != "" && slices.Contains(d.Labels(), p.Label) {
		return fmt.Errorf("add %q: %w", p.Label, ErrDuplicateLabel)
	}
	d.particles = append(d.particles, p)
	return nil
}

// AddAll adds the given particles in order. On failure, particles added
// before the failing one remain added.
func (d *Distribution3) AddAll(particles []Particle3) error {
	for _, p := range particles {
		if err := d.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the first particle, in insertion order, carrying the given
// label.
func (d *Distribution3) Get(label string) (Particle3, error) {
	for _, p := range d.particles {
		if p.Label != "" && p.Label == label {
			return p, nil
		}
	}
	return Particle3{}, fmt.Errorf("get %q: %w", label, ErrLabelNotFound)
}

// FieldAt returns the superposed electric field at pt from every particle
// whose label is not in exclude. Unlabeled particles always contribute.
func (d *Distribution3) FieldAt(pt geom.Vec3, exclude ...string) geom.Vec3 {
	var total geom.Vec3
	for _, p := range d.particles {
		if p.Label != "" && slices.Contains(exclude, p.Label) {
			continue
		}
		total = total.Add(p.FieldAt(pt))
	}
	return total
}

// PotentialAt returns the superposed scalar potential at pt from every
// particle whose label is not in exclude.
func (d *Distribution3) PotentialAt(pt geom.Vec3, exclude ...string) float64 {
	total := 0.0
	for _, p := range d.particles {
		if p.Label != "" && slices.Contains(exclude, p.Label) {
			continue
		}
		total += p.PotentialAt(pt)
	}
	return total
}

// ForceOn returns the net electrostatic force on the labeled particle due
// to every other particle in the distribution.
func (d *Distribution3) ForceOn(label string) (geom.Vec3, error) {
	p, err := d.Get(label)
	if err != nil {
		return geom.Vec3{}, fmt.Errorf("force: %w", err)
	}
	return d.FieldAt(p.Pos, label).Scale(p.Q), nil
}

// Energy returns the total electrostatic potential energy of the
// distribution, with U -> 0 as all separations go to infinity. The self
// term is skipped by index, so unlabeled or identically labeled particles
// never interact with themselves; each unordered pair is counted once.
func (d *Distribution3) Energy() float64 {
	total := 0.0
	for i, p := range d.particles {
		total += p.Q * d.potentialExcludingIndex(p.Pos, i)
	}
	return total / 2
}

func (d *Distribution3) potentialExcludingIndex(pt geom.Vec3, skip int) float64 {
	total := 0.0
	for j, p := range d.particles {
		if j == skip {
			continue
		}
		total += p.PotentialAt(pt)
	}
	return total
}

func (d *Distribution3) String() string {
	return fmt.Sprintf("Distribution3%v", d.particles)
}
