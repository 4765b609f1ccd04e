// Package broaden implements instrumental and rotational broadening of
// spectra.
//
// Both transforms are convolutions and both need a uniform working
// grid, which for spectra means logarithmic dispersion: a fixed
// resolving power R maps to a fixed kernel width in ln λ, and a fixed
// velocity maps to a fixed number of bins. Sources on other grids are
// rebinned internally; the result is therefore always on a log grid.
//
//   - [Instrumental] degrades the resolving power with a Gaussian
//     kernel. It refuses to sharpen: the target R must be strictly
//     below the source's native resolution.
//   - [Rotational] applies the classical vsini kernel with linear limb
//     darkening.
//
// Convolution itself is delegated to algo-dsp's conv package, which
// picks direct or FFT evaluation based on kernel size.
package broaden
