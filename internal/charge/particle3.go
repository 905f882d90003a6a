package charge

import (
	"fmt"

	"github.com/san-kum/estat/internal/geom"
)

// Particle3 is a point charge at a fixed 3D position.
type Particle3 struct {
	Pos   geom.Vec3
	Q     float64
	Label string
}

// NewParticle3 returns a particle of charge q at (x, y, z).
func NewParticle3(x, y, z, q float64, label string) Particle3 {
	return Particle3{Pos: geom.Vec3{X: x, Y: y, Z: z}, Q: q, Label: label}
}

// R returns the particle's distance from the origin.
func (p Particle3) R() float64 {
	return p.Pos.Norm()
}

// FieldAt returns the electric field this particle alone produces at pt.
// Evaluating at the particle's own position divides by zero.
func (p Particle3) FieldAt(pt geom.Vec3) geom.Vec3 {
	delta := pt.Sub(p.Pos)
	r := delta.Norm()
	mag := K * p.Q / (r * r)
	return delta.Scale(mag / r)
}

// PotentialAt returns the scalar potential at pt, with V -> 0 as the
// distance goes to infinity.
func (p Particle3) PotentialAt(pt geom.Vec3) float64 {
	return K * p.Q / pt.Sub(p.Pos).Norm()
}

func (p Particle3) String() string {
	return fmt.Sprintf("Particle3{pos: %v, q: %g, label: %q}", p.Pos, p.Q, p.Label)
}
