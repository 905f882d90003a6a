// Package probe evaluates aggregate field and potential over point sets,
// producing rows suitable for CSV or JSON export.
package probe

import (
	"github.com/san-kum/estat/internal/charge"
	"github.com/san-kum/estat/internal/geom"
)

// Sample is one evaluation of a 3D distribution at a point. Potential is
// only meaningful for 3D sources.
type Sample struct {
	Point     geom.Vec3 `json:"point"`
	Field     geom.Vec3 `json:"field"`
	FieldMag  float64   `json:"field_mag"`
	Potential float64   `json:"potential"`
}

// Sample2D is one evaluation of a 2D distribution at a point.
type Sample2D struct {
	Point    geom.Vec2 `json:"point"`
	Field    geom.Vec2 `json:"field"`
	FieldMag float64   `json:"field_mag"`
}

// Line evaluates the distribution at n points spaced evenly from `from` to
// `to`, endpoints included. n must be at least 2.
func Line(d *charge.Distribution3, from, to geom.Vec3, n int) []Sample {
	samples := make([]Sample, n)
	step := to.Sub(from).Scale(1 / float64(n-1))
	for i := range samples {
		pt := from.Add(step.Scale(float64(i)))
		e := d.FieldAt(pt)
		samples[i] = Sample{
			Point:     pt,
			Field:     e,
			FieldMag:  e.Norm(),
			Potential: d.PotentialAt(pt),
		}
	}
	return samples
}

// Line2D evaluates the 2D distribution at n points spaced evenly from
// `from` to `to`, endpoints included. n must be at least 2.
func Line2D(d *charge.Distribution, from, to geom.Vec2, n int) []Sample2D {
	samples := make([]Sample2D, n)
	step := to.Sub(from).Scale(1 / float64(n-1))
	for i := range samples {
		pt := from.Add(step.Scale(float64(i)))
		e := d.FieldAt(pt)
		samples[i] = Sample2D{Point: pt, Field: e, FieldMag: e.Norm()}
	}
	return samples
}

// Grid2D evaluates the 2D distribution over an nx by ny grid spanning
// [min, max], row-major from min.Y upward, endpoints included.
func Grid2D(d *charge.Distribution, min, max geom.Vec2, nx, ny int) []Sample2D {
	samples := make([]Sample2D, 0, nx*ny)
	dx := (max.X - min.X) / float64(nx-1)
	dy := (max.Y - min.Y) / float64(ny-1)
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			pt := geom.Vec2{X: min.X + float64(ix)*dx, Y: min.Y + float64(iy)*dy}
			e := d.FieldAt(pt)
			samples = append(samples, Sample2D{Point: pt, Field: e, FieldMag: e.Norm()})
		}
	}
	return samples
}
