// Package dispersion classifies the sampling law of a wavelength grid.
//
// A spectrum's dispersion determines how bin index maps to wavelength
// and how bin width varies across the grid:
//
//   - [TypeLinear]: constant Δλ, so resolving power λ/Δλ grows to the red
//   - [TypeLog]:    constant Δln λ, so resolving power is constant
//   - [TypeNone]:   irregular spacing with no closed-form law
//
// [Guess] infers the law from a wavelength column within a small
// relative tolerance. The resampling engine uses the result to pick
// the bin-edge formulas for regridding.
package dispersion
