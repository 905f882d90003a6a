package charge

import (
	"fmt"
	"slices"

	"github.com/san-kum/estat/internal/geom"
)

// Distribution is an ordered collection of 2D particles. Particles are
// held by value; insertion order is the summation order for aggregates.
type Distribution struct {
	particles []Particle
}

// NewDistribution creates a distribution and adds the given particles in
// order through the same validated path as Add. On a duplicate label the
// error is returned with particles added so far still in place.
func NewDistribution(particles ...Particle) (*Distribution, error) {
	d := &Distribution{}
	if err := d.AddAll(particles); err != nil {
		return d, err
	}
	return d, nil
}

// Len returns the number of particles held.
func (d *Distribution) Len() int {
	return len(d.particles)
}

// Particles returns a copy of the particle list in insertion order.
func (d *Distribution) Particles() []Particle {
	return slices.Clone(d.particles)
}

// Labels returns the non-empty labels currently in use, in insertion order.
func (d *Distribution) Labels() []string {
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
func (d *Distribution) Add(p Particle) error {
	if p.Label != "" && slices.Contains(d.Labels(), p.Label) {
		return fmt.Errorf("add %q: %w", p.Label, ErrDuplicateLabel)
	}
	d.particles = append(d.particles, p)
	return nil
}

// AddAll adds the given particles in order. On failure, particles added
// before the failing one remain added.
func (d *Distribution) AddAll(particles []Particle) error {
	for _, p := range particles {
		if err := d.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the first particle, in insertion order, carrying the given
// label.
func (d *Distribution) Get(label string) (Particle, error) {
	for _, p := range d.particles {
		if p.Label != "" && p.Label == label {
			return p, nil
		}
	}
	return Particle{}, fmt.Errorf("get %q: %w", label, ErrLabelNotFound)
}

// FieldAt returns the superposed electric field at pt from every particle
// whose label is not in exclude. Unlabeled particles always contribute.
func (d *Distribution) FieldAt(pt geom.Vec2, exclude ...string) geom.Vec2 {
	var total geom.Vec2
	for _, p := range d.particles {
		if p.Label != "" && slices.Contains(exclude, p.Label) {
			continue
		}
		total = total.Add(p.FieldAt(pt))
	}
	return total
}

// ForceOn returns the net electrostatic force on the labeled particle due
// to every other particle in the distribution.
func (d *Distribution) ForceOn(label string) (geom.Vec2, error) {
	p, err := d.Get(label)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("force: %w", err)
	}
	return d.FieldAt(p.Pos, label).Scale(p.Q), nil
}

func (d *Distribution) String() string {
	return fmt.Sprintf("Distribution%v", d.particles)
}
