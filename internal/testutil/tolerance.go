package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/spectra/spectrum"
)

// RequireNearlyEqual fails t if got and want differ by more than eps
// in relative terms (absolute terms near zero).
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()

	diff := math.Abs(got - want)
	scale := math.Max(math.Abs(got), math.Abs(want))
	if scale > 1 {
		diff /= scale
	}
	if diff > eps {
		t.Fatalf("got %v, want %v (relative diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or
// if any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireSpectraNearlyEqual fails t unless both spectra share dimension
// and dispersion and agree per-sample in both columns within eps.
func RequireSpectraNearlyEqual(t *testing.T, got, want *spectrum.Spectrum, eps float64) {
	t.Helper()

	if got.Dim() != want.Dim() {
		t.Fatalf("dimension mismatch: got %d, want %d", got.Dim(), want.Dim())
	}
	if got.Dispersion() != want.Dispersion() {
		t.Fatalf("dispersion mismatch: got %v, want %v", got.Dispersion(), want.Dispersion())
	}

	gw, _ := got.Column(spectrum.ColWavelength)
	ww, _ := want.Column(spectrum.ColWavelength)
	RequireSliceNearlyEqual(t, gw, ww, eps)

	gf, _ := got.Column(spectrum.ColFlux)
	wf, _ := want.Column(spectrum.ColFlux)
	RequireSliceNearlyEqual(t, gf, wf, eps)
}

// MaxAbsDiff returns the maximum absolute difference between two
// equal-length slices; it panics on length mismatch since test inputs
// are under the caller's control.
func MaxAbsDiff(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("testutil: length mismatch")
	}

	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
