package broaden

import (
	"math"

	"github.com/cwbudde/algo-spectra/spectra/spectrum"
)

// Rotational convolves src with the classical rotational-broadening
// kernel for projected rotational velocity vsini (km/s) under a linear
// limb-darkening law with coefficient ldx, returning a new spectrum on
// a uniform logarithmic grid.
//
// On a log grid one bin corresponds to a fixed velocity step
// Δv = c·Δln λ, so the kernel support is exactly the Doppler width
// ±vsini. The kernel profile at normalized velocity offset x = Δv/vsini
// is
//
//	G(x) ∝ 2(1-ldx)·sqrt(1-x²) + (π·ldx/2)·(1-x²),  |x| ≤ 1
//
// normalized to unit area. vsini = 0 is a no-op that returns a deep
// copy; negative vsini fails with ErrInvalidParameter. A vsini smaller
// than one velocity bin also degenerates to a copy, since the kernel
// cannot be resolved on the grid. src is not mutated.
func Rotational(src *spectrum.Spectrum, vsini, ldx float64) (*spectrum.Spectrum, error) {
	if src == nil || src.Dim() < 2 {
		return nil, ErrEmptySource
	}
	if vsini < 0 {
		return nil, ErrInvalidParameter
	}
	if vsini == 0 {
		return src.Duplicate(), nil
	}

	work, lnq, err := logWorkingGrid(src)
	if err != nil {
		return nil, err
	}

	dv := spectrum.SpeedOfLight * lnq

	half := int(vsini / dv)
	if half < 1 {
		return work, nil
	}

	kernel := rotationalKernel(half, dv, vsini, ldx)

	if err := convolveFlux(work, kernel); err != nil {
		return nil, err
	}

	return work, nil
}

// rotationalKernel samples the limb-darkened rotational profile at
// velocity steps dv over ±half bins and normalizes it to unit area.
func rotationalKernel(half int, dv, vsini, ldx float64) []float64 {
	kernel := make([]float64, 2*half+1)
	sum := 0.0

	for i := range kernel {
		x := float64(i-half) * dv / vsini
		u := 1 - x*x
		if u < 0 {
			continue
		}

		kernel[i] = 2*(1-ldx)*math.Sqrt(u) + 0.5*math.Pi*ldx*u
		sum += kernel[i]
	}

	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}
