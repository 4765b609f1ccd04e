package testutil

import (
	"math"

	"github.com/cwbudde/algo-spectra/spectra/dispersion"
	"github.com/cwbudde/algo-spectra/spectra/spectrum"
)

// FlatSpectrum returns a linear-dispersion spectrum with dim samples
// over [ll, ul] and constant flux density level.
func FlatSpectrum(ll, ul float64, dim int, level float64) *spectrum.Spectrum {
	wl := make([]float64, dim)
	flux := make([]float64, dim)

	step := (ul - ll) / float64(dim-1)
	for i := range wl {
		wl[i] = ll + float64(i)*step
		flux[i] = level
	}

	s, err := spectrum.FromColumns(wl, flux)
	if err != nil {
		panic(err)
	}
	return s
}

// AbsorptionSpectrum returns a linear-dispersion spectrum with a unit
// continuum carrying one Gaussian absorption line of the given center,
// standard deviation, and depth (0 < depth ≤ 1).
func AbsorptionSpectrum(ll, ul float64, dim int, center, sigma, depth float64) *spectrum.Spectrum {
	s := FlatSpectrum(ll, ul, dim, 1)

	wl, _ := s.Column(spectrum.ColWavelength)
	flux, _ := s.Column(spectrum.ColFlux)
	for i := range flux {
		d := wl[i] - center
		flux[i] = 1 - depth*math.Exp(-0.5*d*d/(sigma*sigma))
	}

	return s
}

// LogSpectrum returns a logarithmic-dispersion spectrum over [ll, ul]
// at resolving power R with constant flux density level.
func LogSpectrum(ll, ul, R, level float64) *spectrum.Spectrum {
	s, err := spectrum.Create(ll, ul, R, dispersion.TypeLog)
	if err != nil {
		panic(err)
	}

	flux, _ := s.Column(spectrum.ColFlux)
	for i := range flux {
		flux[i] = level
	}

	return s
}

// RampSpectrum returns a linear-dispersion spectrum whose flux density
// rises linearly from lo at ll to hi at ul, handy for checking
// interpolation paths.
func RampSpectrum(ll, ul float64, dim int, lo, hi float64) *spectrum.Spectrum {
	s := FlatSpectrum(ll, ul, dim, lo)

	wl, _ := s.Column(spectrum.ColWavelength)
	flux, _ := s.Column(spectrum.ColFlux)
	for i := range flux {
		flux[i] = lo + (hi-lo)*(wl[i]-ll)/(ul-ll)
	}

	return s
}
