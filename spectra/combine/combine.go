package combine

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-spectra/spectra/dispersion"
	"github.com/cwbudde/algo-spectra/spectra/rebin"
	"github.com/cwbudde/algo-spectra/spectra/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the pairwise combinators.
var (
	ErrInvalidRange      = errors.New("combine: invalid wavelength range")
	ErrInvalidResolution = errors.New("combine: resolution must be > 0")
	ErrNoOverlap         = errors.New("combine: wavelength coverage does not overlap")
	ErrEmptySource       = errors.New("combine: operands need at least two samples")
)

// gridEpsilon is the relative tolerance for treating two wavelength
// grids as identical.
const gridEpsilon = 1e-9

// Add returns the pointwise sum of two spectra.
//
// Operands on a common grid are summed directly. Otherwise both are
// brought onto a shared grid over the overlap of their coverage at the
// sampling resolution of the finer operand, so no information is lost
// from the better-sampled side; disjoint coverage fails with
// ErrNoOverlap.
func Add(s1, s2 *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	return pointwise(s1, s2, func(dst, a, b []float64) {
		vecmath.AddBlock(dst, a, b)
	})
}

// Subtract returns the pointwise difference s1 - s2, with the same
// grid-matching rules as Add.
func Subtract(s1, s2 *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	return pointwise(s1, s2, func(dst, a, b []float64) {
		for i := range dst {
			dst[i] = a[i] - b[i]
		}
	})
}

// Merge co-adds two spectra of possibly different native resolution
// and coverage into one working spectrum: both operands are resampled
// onto a logarithmic grid over [ll, ul] at sampling resolution Rs and
// combined as w1·flux1 + w2·flux2.
func Merge(s1, s2 *spectrum.Spectrum, w1, w2, ll, ul, Rs float64) (*spectrum.Spectrum, error) {
	if ll >= ul {
		return nil, ErrInvalidRange
	}

	a, b, err := commonGrid(s1, s2, ll, ul, Rs)
	if err != nil {
		return nil, err
	}

	fa, _ := a.Column(spectrum.ColFlux)
	fb, _ := b.Column(spectrum.ColFlux)

	vecmath.ScaleBlockInPlace(fa, w1)
	vecmath.ScaleBlockInPlace(fb, w2)
	vecmath.AddBlockInPlace(fa, fb)

	return a, nil
}

// Multiply returns the pointwise product of two spectra after both are
// resampled onto a logarithmic grid over [ll, ul] at resolving power
// R. This is the transform used to apply a transmission or response
// curve to a spectrum.
func Multiply(s1, s2 *spectrum.Spectrum, ll, ul, R float64) (*spectrum.Spectrum, error) {
	if ll >= ul {
		return nil, ErrInvalidRange
	}

	a, b, err := commonGrid(s1, s2, ll, ul, R)
	if err != nil {
		return nil, err
	}

	fa, _ := a.Column(spectrum.ColFlux)
	fb, _ := b.Column(spectrum.ColFlux)

	vecmath.MulBlockInPlace(fa, fb)

	return a, nil
}

// pointwise applies op to the flux columns of both operands after
// bringing them onto a common grid.
func pointwise(s1, s2 *spectrum.Spectrum, op func(dst, a, b []float64)) (*spectrum.Spectrum, error) {
	if s1 == nil || s2 == nil || s1.Dim() < 2 || s2.Dim() < 2 {
		return nil, ErrEmptySource
	}

	if sameGrid(s1, s2) {
		out := s1.Duplicate()
		fo, _ := out.Column(spectrum.ColFlux)
		f1, _ := s1.Column(spectrum.ColFlux)
		f2, _ := s2.Column(spectrum.ColFlux)
		op(fo, f1, f2)

		return out, nil
	}

	ll1, ul1 := s1.Bounds()
	ll2, ul2 := s2.Bounds()
	lo := math.Max(ll1, ll2)
	hi := math.Min(ul1, ul2)
	if lo >= hi {
		return nil, ErrNoOverlap
	}

	// Regrid onto the finer operand's sampling so the coarser one is
	// the only side that gets resampled up.
	rs1, rs2 := s1.Sampling(), s2.Sampling()
	rs := math.Max(rs1, rs2)

	disp := s1.Dispersion()
	if rs2 > rs1 {
		disp = s2.Dispersion()
	}
	if disp == dispersion.TypeNone {
		disp = dispersion.TypeLog
	}

	a, err := rebin.Rebin(s1, disp, lo, hi, rs)
	if err != nil {
		return nil, translate(err)
	}

	b, err := rebin.Rebin(s2, disp, lo, hi, rs)
	if err != nil {
		return nil, translate(err)
	}

	fa, _ := a.Column(spectrum.ColFlux)
	fb, _ := b.Column(spectrum.ColFlux)
	op(fa, fa, fb)

	return a, nil
}

// commonGrid resamples both operands onto the same analytic log grid.
func commonGrid(s1, s2 *spectrum.Spectrum, ll, ul, R float64) (a, b *spectrum.Spectrum, err error) {
	if s1 == nil || s2 == nil || s1.Dim() < 2 || s2.Dim() < 2 {
		return nil, nil, ErrEmptySource
	}

	a, err = rebin.Rebin(s1, dispersion.TypeLog, ll, ul, R)
	if err != nil {
		return nil, nil, translate(err)
	}

	b, err = rebin.Rebin(s2, dispersion.TypeLog, ll, ul, R)
	if err != nil {
		return nil, nil, translate(err)
	}

	return a, b, nil
}

// translate maps sentinels from the resampling engine onto this
// package's error set, so callers match one consistent set no matter
// which combinator produced the failure.
func translate(err error) error {
	switch {
	case errors.Is(err, rebin.ErrNoOverlap):
		return ErrNoOverlap
	case errors.Is(err, rebin.ErrInvalidRange):
		return ErrInvalidRange
	case errors.Is(err, rebin.ErrInvalidResolution):
		return ErrInvalidResolution
	case errors.Is(err, rebin.ErrEmptySource):
		return ErrEmptySource
	}

	return err
}

// sameGrid reports whether both spectra share one wavelength grid
// within a tight relative tolerance.
func sameGrid(s1, s2 *spectrum.Spectrum) bool {
	if s1.Dim() != s2.Dim() {
		return false
	}

	w1, _ := s1.Column(spectrum.ColWavelength)
	w2, _ := s2.Column(spectrum.ColWavelength)

	for i := range w1 {
		if math.Abs(w1[i]-w2[i]) > gridEpsilon*math.Abs(w1[i]) {
			return false
		}
	}

	return true
}
