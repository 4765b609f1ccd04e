package repository

import (
	"errors"
	"fmt"
)

// ErrBadRecordName indicates a record filename that does not follow
// the repository naming convention.
var ErrBadRecordName = errors.New("repository: malformed record filename")

// Tag is the immutable key identifying one physically distinct
// synthetic spectrum record: its native resolving power, wavelength
// coverage in Å, and the discrete atmosphere parameters it was
// computed for.
//
// Temperature is in K, Gravity is log g × 10, Metallicity is
// [M/H] × 10 (signed). All fields are integers because repository
// grids are discrete.
type Tag struct {
	Resolution  int
	LambdaMin   int
	LambdaMax   int
	Temperature int
	Metallicity int
	Gravity     int
}

// recordPattern is the filename convention for repository records,
// e.g. T06000_G45_M+00_R20000_4500_5500.spec for Teff = 6000 K,
// log g = 4.5, [M/H] = 0.0, R = 20000 over 4500–5500 Å.
const recordPattern = "T%05d_G%02d_M%+03d_R%d_%d_%d.spec"

// ParseTag decodes a record filename (base name, no directory) into
// its tag.
func ParseTag(name string) (Tag, error) {
	var t Tag

	n, err := fmt.Sscanf(name, "T%d_G%d_M%d_R%d_%d_%d.spec",
		&t.Temperature, &t.Gravity, &t.Metallicity,
		&t.Resolution, &t.LambdaMin, &t.LambdaMax)
	if err != nil || n != 6 {
		return Tag{}, fmt.Errorf("%w: %q", ErrBadRecordName, name)
	}

	if t.Resolution <= 0 || t.LambdaMin >= t.LambdaMax || t.Temperature <= 0 {
		return Tag{}, fmt.Errorf("%w: %q", ErrBadRecordName, name)
	}

	return t, nil
}

// Filename returns the canonical record filename for the tag.
func (t Tag) Filename() string {
	return fmt.Sprintf(recordPattern,
		t.Temperature, t.Gravity, t.Metallicity,
		t.Resolution, t.LambdaMin, t.LambdaMax)
}

// String renders the tag in physical units for diagnostics.
func (t Tag) String() string {
	return fmt.Sprintf("T=%dK logg=%.1f [M/H]=%+.1f R=%d [%d, %d] Å",
		t.Temperature, float64(t.Gravity)/10, float64(t.Metallicity)/10,
		t.Resolution, t.LambdaMin, t.LambdaMax)
}
