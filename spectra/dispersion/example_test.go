package dispersion_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/spectra/dispersion"
)

func ExampleGuess() {
	wl := []float64{5000, 5000.5, 5001, 5001.5, 5002}
	disp, _ := dispersion.Guess(wl)
	fmt.Println(disp)
	// Output:
	// linear dispersion
}
