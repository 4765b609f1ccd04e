package dispersion

import (
	"errors"
	"math"
)

// ErrIndeterminate indicates a wavelength grid whose spacing fits
// neither a linear nor a logarithmic model within tolerance.
var ErrIndeterminate = errors.New("dispersion: indeterminate grid spacing")

// Type identifies how sample index maps to wavelength.
type Type int

const (
	// TypeLinear has constant bin width: λ[i+1] - λ[i] = const.
	TypeLinear Type = iota

	// TypeLog has constant bin ratio: λ[i+1] / λ[i] = const,
	// equivalent to constant width in ln λ.
	TypeLog

	// TypeNone marks an irregular grid with no closed-form spacing.
	TypeNone
)

// String returns a human-readable dispersion name for diagnostics.
func (t Type) String() string {
	switch t {
	case TypeLinear:
		return "linear dispersion"
	case TypeLog:
		return "logarithmic dispersion"
	case TypeNone:
		return "no dispersion"
	default:
		return "unknown dispersion"
	}
}

// guessEpsilon is the relative tolerance used to accept successive
// bin widths (or ratios) as constant.
const guessEpsilon = 1e-6

// Guess classifies the dispersion of a wavelength column.
//
// Successive differences constant within tolerance yield TypeLinear,
// successive ratios constant within tolerance yield TypeLog. A grid
// matching neither model returns TypeNone together with
// ErrIndeterminate; callers working with deliberately irregular grids
// can ignore the error and use TypeNone.
func Guess(wl []float64) (Type, error) {
	if len(wl) < 2 {
		return TypeNone, ErrIndeterminate
	}

	if len(wl) == 2 {
		// A two-point grid fits both models; linear is the weaker claim.
		if wl[1] > wl[0] {
			return TypeLinear, nil
		}
		return TypeNone, ErrIndeterminate
	}

	for i := 1; i < len(wl); i++ {
		if wl[i] <= wl[i-1] {
			return TypeNone, ErrIndeterminate
		}
	}

	if constantWithin(wl, guessEpsilon, func(i int) float64 { return wl[i+1] - wl[i] }) {
		return TypeLinear, nil
	}

	if constantWithin(wl, guessEpsilon, func(i int) float64 { return wl[i+1] / wl[i] }) {
		return TypeLog, nil
	}

	return TypeNone, ErrIndeterminate
}

// constantWithin reports whether step(i) is constant over the grid to
// within relative tolerance eps.
func constantWithin(wl []float64, eps float64, step func(int) float64) bool {
	ref := step(0)
	if ref == 0 {
		return false
	}

	for i := 1; i < len(wl)-1; i++ {
		if math.Abs(step(i)-ref) > eps*math.Abs(ref) {
			return false
		}
	}

	return true
}
