// Package spectrum provides the discretized stellar spectrum entity:
// paired wavelength/flux columns with dispersion metadata, plus the
// transforms that act on a single spectrum (crop, definite flux
// integration, Doppler shift, scalar multiplication).
//
// Wavelengths are in Å, velocities in km/s. Flux values are densities
// per unit wavelength, so integrals over a window are in flux units.
//
// # Ownership
//
// Every Spectrum is exclusively owned by its holder. Transforms that
// produce a result ([Spectrum.ApplyDopplerShift], [Spectrum.MultiplyBy],
// and the rebin/broaden/combine packages) return a fresh, independent
// instance and never mutate their source. In-place methods
// ([Spectrum.Crop], [Spectrum.Alloc], [Spectrum.Realloc]) either
// succeed fully or leave the receiver untouched.
//
// # Resolution vs. sampling
//
// A spectrum carries two resolving powers: R, the native (physical)
// resolution of the data, and Rs, the sampling resolution of the grid
// it is stored on. Rebinning changes Rs freely but can never raise R;
// broadening lowers R.
package spectrum
