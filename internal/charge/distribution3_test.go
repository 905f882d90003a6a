package charge_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/estat/internal/charge"
	"github.com/san-kum/estat/internal/geom"
)

var _ = Describe("Particle3", func() {
	It("computes the distance from the origin", func() {
		p := charge.NewParticle3(1, 2, 2, 1e-6, "")
		Expect(p.R()).To(Equal(3.0))
	})

	It("produces a radial inverse-square field", func() {
		p := charge.NewParticle3(0, 0, 0, 1e-6, "")

		e := p.FieldAt(geom.Vec3{X: 0, Y: 0, Z: 2})
		Expect(e.X).To(BeZero())
		Expect(e.Y).To(BeZero())
		Expect(e.Z).To(BeNumerically("~", charge.K*1e-6/4, 1e-3))
	})

	It("produces a 1/r potential vanishing at infinity", func() {
		p := charge.NewParticle3(0, 0, 0, 1e-6, "")

		near := p.PotentialAt(geom.Vec3{X: 1, Y: 0, Z: 0})
		far := p.PotentialAt(geom.Vec3{X: 1000, Y: 0, Z: 0})

		Expect(near).To(BeNumerically("~", charge.K*1e-6, 1e-3))
		Expect(near / far).To(BeNumerically("~", 1000.0, 1e-6))
	})

	It("is singular at its own position", func() {
		p := charge.NewParticle3(1, 1, 1, 1e-6, "")
		Expect(math.IsInf(p.PotentialAt(p.Pos), 1)).To(BeTrue())
	})
})

var _ = Describe("Distribution3", func() {
	var d *charge.Distribution3

	BeforeEach(func() {
		var err error
		d, err = charge.NewDistribution3(
			charge.NewParticle3(0, 0, 0, 1e-6, "a"),
			charge.NewParticle3(2, 0, 0, -1e-6, "b"),
			charge.NewParticle3(0, 0, 3, 5e-7, ""),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects duplicate labels and keeps membership unchanged", func() {
		err := d.Add(charge.NewParticle3(9, 9, 9, 1e-6, "a"))
		Expect(err).To(MatchError(charge.ErrDuplicateLabel))
		Expect(d.Len()).To(Equal(3))
	})

	It("lists non-empty labels in insertion order", func() {
		Expect(d.Labels()).To(Equal([]string{"a", "b"}))
	})

	It("superposes per-particle fields", func() {
		pt := geom.Vec3{X: 1, Y: 1, Z: 1}

		var want geom.Vec3
		for _, p := range d.Particles() {
			want = want.Add(p.FieldAt(pt))
		}
		got := d.FieldAt(pt)

		Expect(got.X).To(BeNumerically("~", want.X, 1e-6))
		Expect(got.Y).To(BeNumerically("~", want.Y, 1e-6))
		Expect(got.Z).To(BeNumerically("~", want.Z, 1e-6))
	})

	It("omits exactly the excluded particle's potential", func() {
		pt := geom.Vec3{X: 1, Y: 1, Z: 1}
		b, err := d.Get("b")
		Expect(err).NotTo(HaveOccurred())

		Expect(d.PotentialAt(pt, "b")).To(
			BeNumerically("~", d.PotentialAt(pt)-b.PotentialAt(pt), 1e-6))
	})

	It("never excludes unlabeled particles", func() {
		pt := geom.Vec3{X: 1, Y: 1, Z: 1}
		Expect(d.PotentialAt(pt, "")).To(Equal(d.PotentialAt(pt)))
	})

	It("computes a finite self-excluded force", func() {
		f, err := d.ForceOn("a")
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(f.Norm())).To(BeFalse())
		Expect(math.IsInf(f.Norm(), 0)).To(BeFalse())

		// Opposite charges attract: the force on a points toward b (+x).
		Expect(f.X).To(BeNumerically(">", 0.0))
	})

	It("fails force lookup for unknown labels", func() {
		_, err := d.ForceOn("missing")
		Expect(err).To(MatchError(charge.ErrLabelNotFound))
	})
})

var _ = Describe("Distribution3 energy", func() {
	It("matches the pair formula without double counting", func() {
		q1, q2 := 1e-6, -2e-6
		sep := 3.0
		d, err := charge.NewDistribution3(
			charge.NewParticle3(0, 0, 0, q1, "a"),
			charge.NewParticle3(sep, 0, 0, q2, "b"),
		)
		Expect(err).NotTo(HaveOccurred())

		want := charge.K * q1 * q2 / sep
		Expect(d.Energy()).To(BeNumerically("~", want, math.Abs(want)*1e-12))
	})

	It("sums pairwise terms for three charges", func() {
		d, err := charge.NewDistribution3(
			charge.NewParticle3(0, 0, 0, 1e-6, "a"),
			charge.NewParticle3(1, 0, 0, 1e-6, "b"),
			charge.NewParticle3(0, 1, 0, 1e-6, "c"),
		)
		Expect(err).NotTo(HaveOccurred())

		q2 := 1e-6 * 1e-6
		want := charge.K*q2/1 + charge.K*q2/1 + charge.K*q2/math.Sqrt2
		Expect(d.Energy()).To(BeNumerically("~", want, want*1e-12))
	})

	It("handles unlabeled particles without self-interaction", func() {
		d, err := charge.NewDistribution3(
			charge.NewParticle3(0, 0, 0, 1e-6, ""),
			charge.NewParticle3(2, 0, 0, 1e-6, ""),
		)
		Expect(err).NotTo(HaveOccurred())

		want := charge.K * 1e-6 * 1e-6 / 2
		Expect(d.Energy()).To(BeNumerically("~", want, want*1e-12))
	})

	It("leaves membership untouched", func() {
		d, err := charge.NewDistribution3(
			charge.NewParticle3(0, 0, 0, 1e-6, "a"),
			charge.NewParticle3(1, 0, 0, 1e-6, "b"),
		)
		Expect(err).NotTo(HaveOccurred())

		before := d.Particles()
		d.Energy()
		Expect(d.Particles()).To(Equal(before))
	})

	It("is zero for empty and single-particle distributions", func() {
		empty, _ := charge.NewDistribution3()
		Expect(empty.Energy()).To(BeZero())

		single, _ := charge.NewDistribution3(charge.NewParticle3(1, 2, 3, 1e-6, ""))
		Expect(single.Energy()).To(BeZero())
	})
})
