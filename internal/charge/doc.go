// Package charge models point-charge electrostatics in two and three
// dimensions.
//
// The package has two parallel halves:
//
//   - [Particle] / [Distribution]: 2D charges and their aggregate field
//   - [Particle3] / [Distribution3]: 3D charges, adding scalar potential
//     and total potential energy
//
// A Distribution holds particles by value in insertion order and evaluates
// superposed Coulomb quantities at arbitrary observation points. Particles
// may carry a label for lookup and exclusion; labels must be unique within
// a distribution, and an empty label means the particle is unaddressable.
//
// # Singularities
//
// Field and potential are undefined at a source particle's own position.
// Evaluations there are not guarded and follow IEEE arithmetic: components
// come back as Inf or NaN rather than a silently wrong finite value. Force
// and energy exclude the self term, so they stay finite for any
// configuration of distinct positions.
//
// The 2D variant has no potential or energy methods: the 2D electrostatic
// potential has a logarithmic form that is out of scope here.
package charge
