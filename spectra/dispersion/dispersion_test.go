package dispersion

import (
	"errors"
	"math"
	"testing"
)

func linearGrid(ll, step float64, dim int) []float64 {
	wl := make([]float64, dim)
	for i := range wl {
		wl[i] = ll + float64(i)*step
	}
	return wl
}

func logGrid(ll, q float64, dim int) []float64 {
	wl := make([]float64, dim)
	for i := range wl {
		wl[i] = ll * math.Pow(q, float64(i))
	}
	return wl
}

func TestGuessLinear(t *testing.T) {
	got, err := Guess(linearGrid(4000, 0.5, 256))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != TypeLinear {
		t.Fatalf("got %v, want TypeLinear", got)
	}
}

func TestGuessLog(t *testing.T) {
	got, err := Guess(logGrid(4000, 1+1.0/5000, 256))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != TypeLog {
		t.Fatalf("got %v, want TypeLog", got)
	}
}

func TestGuessIrregular(t *testing.T) {
	wl := []float64{4000, 4001, 4003, 4007, 4015}

	got, err := Guess(wl)
	if !errors.Is(err, ErrIndeterminate) {
		t.Fatalf("got err %v, want ErrIndeterminate", err)
	}
	if got != TypeNone {
		t.Fatalf("got %v, want TypeNone", got)
	}
}

func TestGuessNonMonotonic(t *testing.T) {
	if _, err := Guess([]float64{4000, 4002, 4001, 4003}); !errors.Is(err, ErrIndeterminate) {
		t.Fatalf("got err %v, want ErrIndeterminate", err)
	}
}

func TestGuessDegenerateGrids(t *testing.T) {
	if _, err := Guess(nil); !errors.Is(err, ErrIndeterminate) {
		t.Fatalf("nil grid: got err %v, want ErrIndeterminate", err)
	}
	if _, err := Guess([]float64{4000}); !errors.Is(err, ErrIndeterminate) {
		t.Fatalf("single sample: got err %v, want ErrIndeterminate", err)
	}

	// Two increasing samples fit both models; linear wins as the
	// weaker claim.
	got, err := Guess([]float64{4000, 4001})
	if err != nil || got != TypeLinear {
		t.Fatalf("two samples: got %v, %v; want TypeLinear, nil", got, err)
	}
}

func TestGuessToleratesRounding(t *testing.T) {
	wl := linearGrid(4000, 0.5, 256)
	for i := range wl {
		wl[i] += 1e-9 * float64(i%3)
	}

	got, err := Guess(wl)
	if err != nil || got != TypeLinear {
		t.Fatalf("got %v, %v; want TypeLinear, nil", got, err)
	}
}

func TestTypeString(t *testing.T) {
	for _, tc := range []struct {
		typ  Type
		want string
	}{
		{TypeLinear, "linear dispersion"},
		{TypeLog, "logarithmic dispersion"},
		{TypeNone, "no dispersion"},
		{Type(99), "unknown dispersion"},
	} {
		if got := tc.typ.String(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}
