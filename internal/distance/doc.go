// Package distance implements the cosmological distance measures of
// Hogg (2000), https://arxiv.org/abs/astro-ph/9905116.
//
// A [Calculator] wraps one cosmology. The radial comoving distance is a
// numerically integrated line-of-sight integral; everything else follows
// from it in closed form, branching on the sign of the curvature density
// Ω_k(z):
//
//	open   (Ω_k > 0): D_M = D_H/√Ω_k  sinh(√Ω_k D_C/D_H)
//	flat   (Ω_k = 0): D_M = D_C
//	closed (Ω_k < 0): D_M = D_H/√|Ω_k| sin(√|Ω_k| D_C/D_H)
//
// Luminosity distances are bolometric; no K-corrections are applied.
package distance
