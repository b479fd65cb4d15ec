// Package cosmology models a homogeneous, isotropic FLRW universe.
//
// An [FLRW] value holds the present-day density parameters ([OmegaFactors]),
// the Hubble constant and, optionally, the CMB temperature and neutrino
// content. Everything else is derived:
//
//   - the expansion function E(z) and H(z) = H0 E(z)
//   - density fractions Ω_x(z) and the critical density
//   - CMB and neutrino temperatures
//   - lookback time and lookback distance
//
// # Example
//
//	omega, _ := cosmology.NewOmegaFactors(0.286, 0.714, 0.05)
//	c, err := cosmology.New(69.6, omega, cosmology.WithName("flat"))
//	if err != nil {
//		return err
//	}
//	z := cosmology.MustRedshift(3)
//	fmt.Println(c.E(z), c.LookbackTime(z))
//
// # Thread Safety
//
// An FLRW is immutable after construction and safe for concurrent use.
// Construction rejects parameter sets for which E(z)^2 would turn negative
// at some z >= 0, so queries never produce NaN.
package cosmology
