package broaden

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/conv"
	"github.com/cwbudde/algo-spectra/spectra/dispersion"
	"github.com/cwbudde/algo-spectra/spectra/rebin"
	"github.com/cwbudde/algo-spectra/spectra/spectrum"
)

// Errors returned by the broadening engine.
var (
	ErrInvalidResolution = errors.New("broaden: target resolution must be positive and below the source resolution")
	ErrInvalidParameter  = errors.New("broaden: invalid kernel parameter")
	ErrEmptySource       = errors.New("broaden: source needs at least two samples")
)

// kernelCutoffSigmas bounds the Gaussian kernel support.
const kernelCutoffSigmas = 4.0

// Instrumental degrades src to resolving power R by convolution with a
// Gaussian kernel, returning a new spectrum on a uniform logarithmic
// grid.
//
// On a log grid a fixed R corresponds to a fixed kernel width in ln λ,
// so src is first rebinned to logarithmic dispersion (over its own
// range, at its own sampling resolution) unless already there. The
// kernel FWHM in ln λ is sqrt(1/R² − 1/R0²) with R0 the source's
// native resolution.
//
// Broadening can only degrade: R ≤ 0 or R ≥ R0 fails with
// ErrInvalidResolution rather than silently copying, so a caller that
// accidentally asks to sharpen finds out. src is not mutated.
func Instrumental(src *spectrum.Spectrum, R float64) (*spectrum.Spectrum, error) {
	if src == nil || src.Dim() < 2 {
		return nil, ErrEmptySource
	}

	r0 := src.Resolution()
	if R <= 0 || R >= r0 {
		return nil, ErrInvalidResolution
	}

	work, lnq, err := logWorkingGrid(src)
	if err != nil {
		return nil, err
	}

	fwhm := math.Sqrt(1/(R*R) - 1/(r0*r0))
	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))

	kernel := gaussianKernel(sigma, lnq)

	if err := convolveFlux(work, kernel); err != nil {
		return nil, err
	}

	if err := work.SetResolution(R); err != nil {
		return nil, err
	}

	return work, nil
}

// logWorkingGrid returns a spectrum on a uniform logarithmic grid
// covering src, together with the grid step in ln λ. A source already
// on a log grid is deep-copied; anything else is rebinned at the
// source's sampling resolution.
func logWorkingGrid(src *spectrum.Spectrum) (*spectrum.Spectrum, float64, error) {
	rs := src.Sampling()
	if rs <= 0 {
		rs = src.Resolution()
	}

	if src.Dispersion() == dispersion.TypeLog {
		wl, _ := src.Column(spectrum.ColWavelength)
		return src.Duplicate(), math.Log(wl[1] / wl[0]), nil
	}

	ll, ul := src.Bounds()

	work, err := rebin.Rebin(src, dispersion.TypeLog, ll, ul, rs)
	if err != nil {
		return nil, 0, err
	}

	return work, math.Log(1 + 1/rs), nil
}

// gaussianKernel samples a unit-area Gaussian at multiples of step,
// truncated at ±kernelCutoffSigmas·σ. The kernel length is always odd.
func gaussianKernel(sigma, step float64) []float64 {
	half := int(math.Ceil(kernelCutoffSigmas * sigma / step))
	if half < 1 {
		half = 1
	}

	kernel := make([]float64, 2*half+1)
	sum := 0.0

	for i := range kernel {
		x := float64(i-half) * step
		kernel[i] = math.Exp(-0.5 * x * x / (sigma * sigma))
		sum += kernel[i]
	}

	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

// convolveFlux replaces s's flux column with its convolution against
// kernel, keeping the original length (centered output). The kernel
// must be normalized and of odd length.
func convolveFlux(s *spectrum.Spectrum, kernel []float64) error {
	flux, _ := s.Column(spectrum.ColFlux)

	out, err := conv.ConvolveMode(flux, kernel, conv.ModeSame)
	if err != nil {
		return err
	}

	copy(flux, out)

	return nil
}
