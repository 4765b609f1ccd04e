// Package rebin regrids a spectrum onto a new dispersion law, range,
// and resolution while conserving the flux integral.
//
// The operation is flux-integral-preserving, not a value resample:
// each target bin is the overlap-weighted mean of the source flux
// density over the intersecting source bins, so
//
//	integrate(rebin(S, ll, ul, R), ll, ul) ≈ integrate(S, ll, ul)
//
// holds to within the discretization error of the two grids. Partial
// edge bins are weighted by the actually covered width, which avoids
// the classic edge-effect flux leak.
//
// Upsampling (target bins finer than the local source spacing) uses
// linear interpolation of the flux density instead of replicating the
// enclosing source value.
package rebin
