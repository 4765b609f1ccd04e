package spectrum

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-spectra/spectra/dispersion"
)

// SpeedOfLight is the vacuum speed of light in km/s, the unit used for
// all velocities in this module.
const SpeedOfLight = 299792.458

// Errors returned by spectrum operations.
var (
	ErrInvalidRange      = errors.New("spectrum: invalid wavelength range")
	ErrInvalidResolution = errors.New("spectrum: invalid resolving power")
	ErrInvalidDispersion = errors.New("spectrum: invalid dispersion type")
	ErrInvalidColumn     = errors.New("spectrum: column index must be 0 (wavelength) or 1 (flux)")
	ErrInvalidDim        = errors.New("spectrum: dimension must be > 0")
	ErrInvalidParameter  = errors.New("spectrum: invalid parameter")
	ErrNoOverlap         = errors.New("spectrum: window does not intersect spectrum coverage")
	ErrColumnMismatch    = errors.New("spectrum: wavelength and flux columns differ in length")
	ErrNonMonotonic      = errors.New("spectrum: wavelength column must be strictly increasing")
)

// Column indices accepted by [Spectrum.Column].
const (
	ColWavelength = 0
	ColFlux       = 1
)

// Spectrum is a discretized stellar spectrum: two equal-length columns
// of sample wavelengths (Å) and flux densities, plus the dispersion law
// of the grid, the native resolving power R, and the sampling
// resolution Rs of the grid itself.
//
// Invariant: the wavelength column is strictly increasing; for linear
// dispersion consecutive differences are constant, for logarithmic
// dispersion consecutive ratios are constant.
//
// A Spectrum is exclusively owned by its holder. Transform functions
// never mutate their source; they return a fresh instance. The few
// in-place methods (Crop, Alloc, Realloc, setters) mutate only the
// receiver.
type Spectrum struct {
	disp dispersion.Type
	r    float64
	rs   float64
	wl   []float64
	flux []float64
}

// New returns an empty spectrum with no samples and irregular
// dispersion. Populate it with Alloc and the column views, or use
// Create / FromColumns instead.
func New() *Spectrum {
	return &Spectrum{disp: dispersion.TypeNone}
}

// FromColumns builds a spectrum from existing wavelength and flux
// columns. The slices are copied. The dispersion law is guessed from
// the grid (an indeterminate grid is accepted as TypeNone), and both R
// and Rs default to the sampling resolution estimated at mid-grid;
// override the native resolution with SetResolution when it is known.
func FromColumns(wl, flux []float64) (*Spectrum, error) {
	if len(wl) != len(flux) {
		return nil, ErrColumnMismatch
	}
	if len(wl) == 0 {
		return nil, ErrInvalidDim
	}

	for i := 1; i < len(wl); i++ {
		if wl[i] <= wl[i-1] {
			return nil, ErrNonMonotonic
		}
	}

	s := &Spectrum{
		wl:   append([]float64(nil), wl...),
		flux: append([]float64(nil), flux...),
	}

	// Irregular grids are legal here; the caller declared them by
	// handing us the column as-is.
	s.disp, _ = dispersion.Guess(s.wl)

	s.rs = s.estimateSampling()
	s.r = s.rs

	return s, nil
}

// Create builds an analytic spectrum over [ll, ul] at resolving power R
// under the given dispersion law, with all flux values zero.
//
// For TypeLog the bin ratio is q = 1 + 1/R so that R = λ/Δλ holds at
// every sample; the grid has ceil(ln(ul/ll)/ln q) samples. For
// TypeLinear the bin width is the blue-end resolution element ll/R.
func Create(ll, ul, R float64, disp dispersion.Type) (*Spectrum, error) {
	if ll >= ul || ll <= 0 {
		return nil, ErrInvalidRange
	}
	if R <= 0 {
		return nil, ErrInvalidResolution
	}

	var wl []float64

	switch disp {
	case dispersion.TypeLinear:
		step := ll / R
		dim := int(math.Ceil((ul - ll) / step))
		wl = make([]float64, dim)
		for i := range wl {
			wl[i] = ll + float64(i)*step
		}
	case dispersion.TypeLog:
		q := 1 + 1/R
		dim := int(math.Ceil(math.Log(ul/ll) / math.Log(q)))
		wl = make([]float64, dim)
		for i := range wl {
			wl[i] = ll * math.Pow(q, float64(i))
		}
	default:
		return nil, ErrInvalidDispersion
	}

	return &Spectrum{
		disp: disp,
		r:    R,
		rs:   R,
		wl:   wl,
		flux: make([]float64, len(wl)),
	}, nil
}

// Duplicate returns a deep copy with independent backing storage for
// both columns.
func (s *Spectrum) Duplicate() *Spectrum {
	return &Spectrum{
		disp: s.disp,
		r:    s.r,
		rs:   s.rs,
		wl:   append([]float64(nil), s.wl...),
		flux: append([]float64(nil), s.flux...),
	}
}

// Alloc sizes the spectrum to dim zeroed samples, discarding any
// previous contents.
func (s *Spectrum) Alloc(dim int) error {
	if dim <= 0 {
		return ErrInvalidDim
	}

	s.wl = make([]float64, dim)
	s.flux = make([]float64, dim)

	return nil
}

// Realloc resizes the spectrum to dim samples, preserving existing
// samples up to the overlap. Grown regions are zeroed.
func (s *Spectrum) Realloc(dim int) error {
	if dim <= 0 {
		return ErrInvalidDim
	}

	wl := make([]float64, dim)
	flux := make([]float64, dim)
	copy(wl, s.wl)
	copy(flux, s.flux)
	s.wl = wl
	s.flux = flux

	return nil
}

// Column returns a live view of a column: index 0 is wavelength,
// index 1 is flux. Writes through the view are visible in the
// spectrum; callers mutating the wavelength column are responsible for
// keeping it strictly increasing.
func (s *Spectrum) Column(col int) ([]float64, error) {
	switch col {
	case ColWavelength:
		return s.wl, nil
	case ColFlux:
		return s.flux, nil
	default:
		return nil, ErrInvalidColumn
	}
}

// Dim returns the number of samples.
func (s *Spectrum) Dim() int {
	return len(s.wl)
}

// Bounds returns the first and last sample wavelengths. Both are zero
// for an empty spectrum.
func (s *Spectrum) Bounds() (ll, ul float64) {
	if len(s.wl) == 0 {
		return 0, 0
	}
	return s.wl[0], s.wl[len(s.wl)-1]
}

// Dispersion returns the grid's dispersion law.
func (s *Spectrum) Dispersion() dispersion.Type {
	return s.disp
}

// Resolution returns the native resolving power R.
func (s *Spectrum) Resolution() float64 {
	return s.r
}

// Sampling returns the sampling resolution Rs of the grid.
func (s *Spectrum) Sampling() float64 {
	return s.rs
}

// SetResolution overrides the native resolving power, typically after
// loading a record whose true resolution is known from its tag.
func (s *Spectrum) SetResolution(R float64) error {
	if R <= 0 {
		return ErrInvalidResolution
	}
	s.r = R
	return nil
}

// SetSampling overrides the sampling resolution of the grid.
func (s *Spectrum) SetSampling(Rs float64) error {
	if Rs <= 0 {
		return ErrInvalidResolution
	}
	s.rs = Rs
	return nil
}

// Validate checks the column invariants: equal lengths and a strictly
// increasing wavelength column.
func (s *Spectrum) Validate() error {
	if len(s.wl) != len(s.flux) {
		return ErrColumnMismatch
	}

	for i := 1; i < len(s.wl); i++ {
		if s.wl[i] <= s.wl[i-1] {
			return ErrNonMonotonic
		}
	}

	return nil
}

// estimateSampling returns λ/Δλ at mid-grid, or 0 for grids with
// fewer than two samples.
func (s *Spectrum) estimateSampling() float64 {
	if len(s.wl) < 2 {
		return 0
	}

	mid := len(s.wl) / 2
	if mid == len(s.wl)-1 {
		mid--
	}

	dl := s.wl[mid+1] - s.wl[mid]
	if dl <= 0 {
		return 0
	}

	return s.wl[mid] / dl
}
