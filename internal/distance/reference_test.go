package distance_test

import (
	g "github.com/onsi/ginkgo/v2"
	o "github.com/onsi/gomega"
	"github.com/onsi/gomega/types"

	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/distance"
)

func calculator(h0, m, de, b float64, opts ...cosmology.Option) *distance.Calculator {
	omega, err := cosmology.NewOmegaFactors(m, de, b)
	o.Expect(err).NotTo(o.HaveOccurred())
	c, err := cosmology.New(h0, omega, opts...)
	o.Expect(err).NotTo(o.HaveOccurred())
	return distance.New(c)
}

func between(lo, hi float64) types.GomegaMatcher {
	return o.And(o.BeNumerically(">", lo), o.BeNumerically("<", hi))
}

// Ranges are checked against astropy FlatLambdaCDM/LambdaCDM.
var _ = g.Describe("Distance engine", func() {
	z2 := cosmology.MustRedshift(2)
	z3 := cosmology.MustRedshift(3)

	g.Context("flat, no radiation (0.286, 0.714, 0.05, H0=69.6)", func() {
		var d *distance.Calculator
		g.BeforeEach(func() { d = calculator(69.6, 0.286, 0.714, 0.05) })

		g.It("matches the reference distances at z=3", func() {
			o.Expect(d.RadialComoving(z3).Value()).To(between(6482.5, 6482.8))
			o.Expect(d.AngularDiameter(z3).Value()).To(between(1620.6, 1620.7))
			o.Expect(d.Luminosity(z3).Value()).To(between(25930.0, 25931.0))
		})

		g.It("takes the flat branch exactly", func() {
			o.Expect(d.TransverseComoving(z3).Value()).To(o.Equal(d.RadialComoving(z3).Value()))
		})
	})

	g.Context("open, no dark energy (0.286, 0, 0.05, H0=69.6)", func() {
		var d *distance.Calculator
		g.BeforeEach(func() { d = calculator(69.6, 0.286, 0, 0.05) })

		g.It("matches the reference distances at z=3", func() {
			o.Expect(d.RadialComoving(z3).Value()).To(between(5200, 5300))
			o.Expect(d.AngularDiameter(z3).Value()).To(between(1250, 1600))
			o.Expect(d.Luminosity(z3).Value()).To(between(22000, 24000))
		})
	})

	g.Context("closed (0.286, 0.8, 0.05, H0=69.6)", func() {
		var d *distance.Calculator
		g.BeforeEach(func() { d = calculator(69.6, 0.286, 0.8, 0.05) })

		g.It("matches the reference distances at z=2", func() {
			o.Expect(d.RadialComoving(z2).Value()).To(between(5000, 6000))
			o.Expect(d.AngularDiameter(z2).Value()).To(between(1500, 2000))
			o.Expect(d.Luminosity(z2).Value()).To(between(14000, 16000))
		})
	})

	g.It("integrates the two-component model", func() {
		c, err := cosmology.TwoComponent(0.286, 0.714, 69.6)
		o.Expect(err).NotTo(o.HaveOccurred())
		o.Expect(distance.New(c).RadialComoving(z2).Value()).To(between(5273, 5274))
	})

	g.Context("radiation without neutrinos (0.299, 0.7, 0.05, T=2.7255 K)", func() {
		var d *distance.Calculator
		g.BeforeEach(func() {
			d = calculator(69.6, 0.299, 0.7, 0.05, cosmology.WithCMBTemperature(2.7255), cosmology.WithNeutrinos(0))
		})

		g.It("matches the reference distances at z=3", func() {
			o.Expect(d.RadialComoving(z3).Value()).To(between(6395, 6399))
			o.Expect(d.AngularDiameter(z3).Value()).To(between(1599, 1600))
			// Midpoint value; a left Riemann sum lands a few tenths higher.
			o.Expect(d.Luminosity(z3).Value()).To(between(25588.6, 25588.8))
			o.Expect(d.Luminosity(z3).Value()).To(o.BeNumerically("~", d.AngularDiameter(z3).Value()*16, 1e-6))
		})
	})

	g.Context("radiation and neutrinos (0.25, 0.7, 0.05, T=2.7255 K, N_eff=3.04)", func() {
		var d *distance.Calculator
		g.BeforeEach(func() {
			d = calculator(69.6, 0.25, 0.7, 0.05, cosmology.WithCMBTemperature(2.7255))
		})

		g.It("matches the reference distances at z=3", func() {
			o.Expect(d.RadialComoving(z3).Value()).To(between(6598, 6598.5))
			o.Expect(d.AngularDiameter(z3).Value()).To(between(1600.5, 1700))
			o.Expect(d.Luminosity(z3).Value()).To(between(25000, 27000))
		})
	})

	g.It("computes the flat comoving volume to z=3", func() {
		d := calculator(70, 0.27, 0.73, 0.044)
		o.Expect(d.ComovingVolume(z3).Value()).To(between(1.179361698730e12, 1.17947e12))
	})
})
