package cosmology_test

import (
	g "github.com/onsi/ginkgo/v2"
	o "github.com/onsi/gomega"

	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/units"
)

func build(h0, m, de, b float64, opts ...cosmology.Option) *cosmology.FLRW {
	omega, err := cosmology.NewOmegaFactors(m, de, b)
	o.Expect(err).NotTo(o.HaveOccurred())
	c, err := cosmology.New(h0, omega, opts...)
	o.Expect(err).NotTo(o.HaveOccurred())
	return c
}

var _ = g.Describe("FLRW reference cosmologies", func() {
	g.Describe("concordance model (0.27, 0.73, 0.044, H0=70)", func() {
		var c *cosmology.FLRW

		g.BeforeEach(func() {
			c = build(70, 0.27, 0.73, 0.044)
		})

		g.It("has zero lookback time today", func() {
			o.Expect(c.LookbackTime(cosmology.MustRedshift(0)).Value()).To(o.BeZero())
		})

		g.It("looks back about 11.65 Gyr to z=3", func() {
			t := c.LookbackTime(cosmology.MustRedshift(3)).Value()
			o.Expect(t).To(o.BeNumerically(">", 11.64))
			o.Expect(t).To(o.BeNumerically("<", 11.65))
		})

		g.It("is exactly flat", func() {
			o.Expect(c.IsFlat()).To(o.BeTrue())
			o.Expect(c.Curvature()).To(o.Equal(cosmology.Flat))
		})
	})

	g.DescribeTable("E(0) is 1",
		func(h0, m, de, b float64, opts ...cosmology.Option) {
			c := build(h0, m, de, b, opts...)
			o.Expect(c.E(cosmology.MustRedshift(0))).To(o.BeNumerically("~", 1, 1e-9))
		},
		g.Entry("flat", 69.6, 0.286, 0.714, 0.05),
		g.Entry("open", 69.6, 0.286, 0.0, 0.05),
		g.Entry("closed", 69.6, 0.286, 0.8, 0.05),
		g.Entry("with radiation", 70.0, 0.299, 0.7, 0.05, cosmology.WithCMBTemperature(2.7255), cosmology.WithNeutrinos(0)),
		g.Entry("with neutrinos", 70.0, 0.25, 0.7, 0.04, cosmology.WithCMBTemperature(2.7255)),
	)

	g.Describe("construction errors", func() {
		g.It("rejects an N_eff that disagrees with the mass list", func() {
			omega, _ := cosmology.NewOmegaFactors(0.3, 0.7, 0.05)
			c, err := cosmology.New(70, omega, cosmology.WithNeutrinos(3.04, 0.1))
			o.Expect(err).To(o.MatchError(cosmology.ErrNeutrinoCountMismatch))
			o.Expect(c).To(o.BeNil())
		})

		g.It("rejects more baryons than matter", func() {
			_, err := cosmology.NewOmegaFactors(0.04, 0.7, 0.05)
			o.Expect(err).To(o.MatchError(cosmology.ErrInvalidCosmology))
		})

		g.It("rejects negative density parameters", func() {
			_, err := cosmology.NewOmegaFactors(0.3, -0.7, 0.05)
			o.Expect(err).To(o.MatchError(units.ErrInvalidValue))
		})

		g.It("rejects a negative redshift", func() {
			_, err := cosmology.NewRedshift(-1)
			o.Expect(err).To(o.MatchError(cosmology.ErrNegativeRedshift))
		})
	})

	g.Describe("radiation without neutrinos", func() {
		var c *cosmology.FLRW

		g.BeforeEach(func() {
			c = build(70, 0.299, 0.7, 0.05, cosmology.WithCMBTemperature(2.7255), cosmology.WithNeutrinos(0))
		})

		g.It("has photons but no neutrino density", func() {
			o.Expect(c.OmegaGamma0().Value()).To(o.BeNumerically(">", 0))
			o.Expect(c.OmegaNu0().IsZero()).To(o.BeTrue())
		})

		g.It("is slightly open", func() {
			o.Expect(c.OmegaK0().Value()).To(o.BeNumerically("~", 0.00095, 1e-5))
			o.Expect(c.Curvature()).To(o.Equal(cosmology.Open))
		})
	})
})
