package spectrum

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Crop truncates the spectrum in place to the samples inside [ll, ul],
// reallocating the columns to the smaller size. The dispersion law is
// unchanged since cropping removes whole bins.
func (s *Spectrum) Crop(ll, ul float64) error {
	if ll >= ul {
		return ErrInvalidRange
	}

	lo := sort.SearchFloat64s(s.wl, ll)
	hi := sort.Search(len(s.wl), func(i int) bool { return s.wl[i] > ul })

	if lo >= hi {
		return ErrNoOverlap
	}

	wl := make([]float64, hi-lo)
	flux := make([]float64, hi-lo)
	copy(wl, s.wl[lo:hi])
	copy(flux, s.flux[lo:hi])
	s.wl = wl
	s.flux = flux

	return nil
}

// Integrate computes the definite integral of the flux density over
// [ll, ul] by trapezoidal summation, restricted to the overlap of the
// grid and the window. Partial end segments are handled by linear
// interpolation of the flux density at the window edges.
func (s *Spectrum) Integrate(ll, ul float64) (float64, error) {
	if ll >= ul {
		return 0, ErrInvalidRange
	}
	if len(s.wl) < 2 {
		return 0, ErrNoOverlap
	}

	lo := math.Max(ll, s.wl[0])
	hi := math.Min(ul, s.wl[len(s.wl)-1])
	if lo >= hi {
		return 0, ErrNoOverlap
	}

	// First sample index strictly right of lo.
	i := sort.Search(len(s.wl), func(k int) bool { return s.wl[k] > lo })

	sum := 0.0
	prevWl := lo
	prevFlux := s.interpFlux(lo)

	for ; i < len(s.wl) && s.wl[i] < hi; i++ {
		sum += 0.5 * (prevFlux + s.flux[i]) * (s.wl[i] - prevWl)
		prevWl = s.wl[i]
		prevFlux = s.flux[i]
	}

	sum += 0.5 * (prevFlux + s.interpFlux(hi)) * (hi - prevWl)

	return sum, nil
}

// interpFlux linearly interpolates the flux density at wavelength l,
// which must lie inside the grid coverage.
func (s *Spectrum) interpFlux(l float64) float64 {
	i := sort.SearchFloat64s(s.wl, l)
	if i < len(s.wl) && s.wl[i] == l {
		return s.flux[i]
	}
	if i == 0 {
		return s.flux[0]
	}
	if i == len(s.wl) {
		return s.flux[len(s.wl)-1]
	}

	t := (l - s.wl[i-1]) / (s.wl[i] - s.wl[i-1])
	return s.flux[i-1] + t*(s.flux[i]-s.flux[i-1])
}

// ApplyDopplerShift returns a new spectrum with a rigid relativistic
// wavelength shift applied to every sample; flux values are unchanged
// (no relativistic flux correction). The grid is scaled by the full
// relativistic factor sqrt((1+β)/(1-β)) with β = v/c, which reduces to
// the classical λ' = λ(1+v/c) for |v| ≪ c and makes the transform an
// exact involution: shifting by -v restores the original grid to
// within floating-point rounding.
//
// The velocity is in km/s, positive for a receding source. |v| ≥ c
// fails with ErrInvalidParameter.
func (s *Spectrum) ApplyDopplerShift(velocity float64) (*Spectrum, error) {
	if math.Abs(velocity) >= SpeedOfLight {
		return nil, ErrInvalidParameter
	}

	beta := velocity / SpeedOfLight

	out := s.Duplicate()
	if len(out.wl) > 0 {
		vecmath.ScaleBlockInPlace(out.wl, math.Sqrt((1+beta)/(1-beta)))
	}

	// A rigid scale preserves both the dispersion law and λ/Δλ, so
	// the resolution metadata carries over untouched.
	return out, nil
}

// MultiplyBy returns a new spectrum with every flux value scaled by
// factor; the wavelength grid and metadata are unchanged.
func (s *Spectrum) MultiplyBy(factor float64) *Spectrum {
	out := s.Duplicate()
	if len(out.flux) > 0 {
		vecmath.ScaleBlockInPlace(out.flux, factor)
	}

	return out
}
