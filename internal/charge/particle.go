package charge

import (
	"fmt"

	"github.com/san-kum/estat/internal/geom"
)

// Coulomb's constant, N·m²/C².
const K = 8.99e9

// Particle is a point charge at a fixed 2D position. The zero Label marks
// an unlabeled particle that cannot be looked up or excluded.
type Particle struct {
	Pos   geom.Vec2
	Q     float64
	Label string
}

// NewParticle returns a particle of charge q at (x, y).
func NewParticle(x, y, q float64, label string) Particle {
	return Particle{Pos: geom.Vec2{X: x, Y: y}, Q: q, Label: label}
}

// R returns the particle's distance from the origin.
func (p Particle) R() float64 {
	return p.Pos.Norm()
}

// FieldAt returns the electric field this particle alone produces at pt.
// Evaluating at the particle's own position divides by zero.
func (p Particle) FieldAt(pt geom.Vec2) geom.Vec2 {
	delta := pt.Sub(p.Pos)
	r := delta.Norm()
	mag := K * p.Q / (r * r)
	return delta.Scale(mag / r)
}

func (p Particle) String() string {
	return fmt.Sprintf("Particle{pos: %v, q: %g, label: %q}", p.Pos, p.Q, p.Label)
}
